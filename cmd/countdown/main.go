// Command countdown shows a live one-line countdown of the daily cycle in
// the terminal: the current phase, the prompt window and, when a token is
// given, the caller's personal response deadline.
//
// Flags:
//
//	--api       API base URL (default http://localhost:8080)
//	--token     bearer token; without it the deadline is not shown
//	--interval  redraw interval (default 1s)
//	--override  force the displayed phase: posting or viewing
//
// Stop with Ctrl-C.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/promptcycle-backend/internal/countdown"
	"github.com/heartmarshall/promptcycle-backend/pkg/cycle"
)

func main() {
	apiFlag := flag.String("api", "http://localhost:8080", "API base URL")
	tokenFlag := flag.String("token", os.Getenv("PROMPTCYCLE_TOKEN"), "bearer token")
	intervalFlag := flag.Duration("interval", time.Second, "redraw interval")
	overrideFlag := flag.String("override", "", "force the displayed phase: posting or viewing")
	flag.Parse()

	var override cycle.Phase
	if *overrideFlag != "" {
		p, err := cycle.ParsePhase(*overrideFlag)
		if err != nil {
			log.Fatalf("override: %v", err)
		}
		override = p
	}

	// Warnings go to stderr so they do not tear the status line on stdout.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	var src countdown.MarkSource
	if *tokenFlag != "" {
		src = countdown.NewHTTPMarkSource(*apiFlag, *tokenFlag, &http.Client{Timeout: 5 * time.Second})
	}

	ticker := countdown.NewTicker(clockwork.NewRealClock(), src, countdown.LineRenderer(os.Stdout), countdown.Options{
		Interval:      *intervalFlag,
		PhaseOverride: override,
		Logger:        logger,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := ticker.Start(ctx); err != nil {
		log.Fatalf("countdown: %v", err)
	}
	<-ctx.Done()
	ticker.Stop()
	fmt.Println()
}
