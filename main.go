package main

import (
	"log"

	"github.com/GHutch55/demo-app/config"
	"github.com/GHutch55/demo-app/server"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	srv := server.New(*cfg)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
