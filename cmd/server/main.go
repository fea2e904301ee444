package main

import (
	"context"
	"fracture-density-service/internal/cli"
	"fracture-density-service/internal/config"
	"fracture-density-service/internal/platform/logger"
	"log"
	"os"
	"os/signal"
	"syscall"
)

// main is the HTTP composition root. Configuration comes from the
// environment (optionally seeded by .env).
func main() {
	if err := config.LoadDotEnv(); err != nil {
		log.Println(err)
	}

	cfg, err := config.LoadServer()
	if err != nil {
		log.Fatal(err)
	}

	logger.Setup(logger.Config{Format: cfg.LogFormat, Debug: cfg.Debug})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.Serve(ctx, cfg); err != nil {
		log.Fatal(err)
	}
}
