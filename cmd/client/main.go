package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/avdeevm/storyhub/internal/client/cli"
	"github.com/avdeevm/storyhub/internal/client/config"
	"github.com/avdeevm/storyhub/internal/logging"
)

func main() {

	cfg := config.LoadConfig()
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(context.Background())
}
