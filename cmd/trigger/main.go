// Command trigger handles one scheduled tick and exits. Schedule it at the
// civil times of the daily cycle (06:00 phase_flip, 18:00 reminder,
// America/New_York). Running it again for the same tick and cycle date
// enqueues nothing new.
//
// Flags:
//
//	--tick    tick name: phase_flip or reminder
//	--config  path to YAML config (default: CONFIG_PATH or ./config.yaml)
//
// Exit codes: 0 = success (including "nothing to send"), 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/promptcycle-backend/internal/app"
)

func main() {
	tickFlag := flag.String("tick", "", "tick name: phase_flip or reminder")
	configFlag := flag.String("config", "", "path to YAML config")
	flag.Parse()

	if *tickFlag == "" {
		flag.Usage()
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	res, err := app.RunTrigger(ctx, *configFlag, *tickFlag)
	if err != nil {
		log.Fatalf("trigger %s: %v", *tickFlag, err)
	}

	fmt.Printf("tick=%s cycle_date=%s decision=%s claimed=%t matched=%d enqueued=%d\n",
		*tickFlag, res.CycleDate, res.Decision.Type, res.Claimed, res.Recipients, res.Enqueued)
}
