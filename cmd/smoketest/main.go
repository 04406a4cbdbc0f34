package main

import (
	"context"
	"log"
	"os"

	"github.com/GHutch55/demo-app/config"
	"github.com/GHutch55/demo-app/smoke"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Printf("failed to load config: %v", err)
		return 1
	}

	if err := smoke.Run(context.Background(), *cfg, os.Stdout); err != nil {
		return 1
	}
	return 0
}
