package app

import (
	"fmt"

	"github.com/heartmarshall/promptcycle-backend/pkg/cycle"
)

// Build metadata, overridden at link time:
//
//	go build -ldflags "-X github.com/heartmarshall/promptcycle-backend/internal/app.Version=1.0.0"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion describes the binary and the daily schedule compiled into
// it. Every host logs it on startup.
func BuildVersion() string {
	s := cycle.DefaultSchedule()
	return fmt.Sprintf("%s (commit: %s, built: %s, cycle: %s flip %s reminder %s)",
		Version, Commit, BuildTime, cycle.ZoneName, s.Flip, s.Reminder)
}
