// Command prompt schedules the prompt published on one civil date.
//
// Flags:
//
//	--date    civil date, YYYY-MM-DD
//	--text    prompt text
//	--config  path to YAML config (default: CONFIG_PATH or ./config.yaml)
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/heartmarshall/promptcycle-backend/internal/app"
)

func main() {
	dateFlag := flag.String("date", "", "civil date, YYYY-MM-DD")
	textFlag := flag.String("text", "", "prompt text")
	configFlag := flag.String("config", "", "path to YAML config")
	flag.Parse()

	if *dateFlag == "" || *textFlag == "" {
		flag.Usage()
		os.Exit(1)
	}

	p, err := app.SchedulePrompt(context.Background(), *configFlag, *dateFlag, *textFlag)
	if err != nil {
		log.Fatalf("schedule prompt: %v", err)
	}
	fmt.Printf("prompt %s scheduled for %s\n", p.ID, p.Date)
}
