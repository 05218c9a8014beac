// Command token prints an access token for a user, signed with the
// configured secret. Pass it to countdown --token or as a bearer token.
//
// Flags:
//
//	--user    user ID (UUID)
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
	userFlag := flag.String("user", "", "user ID (UUID)")
	configFlag := flag.String("config", "", "path to YAML config")
	flag.Parse()

	if *userFlag == "" {
		flag.Usage()
		os.Exit(1)
	}

	token, err := app.IssueToken(context.Background(), *configFlag, *userFlag)
	if err != nil {
		log.Fatalf("issue token: %v", err)
	}
	fmt.Println(token)
}
