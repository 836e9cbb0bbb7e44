package main

import (
	"context"
	"log"
	"os"

	"github.com/zayats-yacht/yachtclient/internal/buildinfo"
	"github.com/zayats-yacht/yachtclient/internal/client/cli"
	"github.com/zayats-yacht/yachtclient/internal/client/config"
	"github.com/zayats-yacht/yachtclient/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewTextSlogLogger(os.Stderr, cfg.LogLevel)

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}
