// Command server runs the HTTP API: phase, prompt window and deadline
// endpoints plus the scheduler-facing trigger endpoint.
//
// Configuration is read from CONFIG_PATH (default ./config.yaml) and the
// environment.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/promptcycle-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("server: %v", err)
	}
}
