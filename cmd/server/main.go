package main

import (
	"context"
	"log"
	"os"

	"github.com/zayats-yacht/yachtclient/internal/buildinfo"
	"github.com/zayats-yacht/yachtclient/internal/logging"
	"github.com/zayats-yacht/yachtclient/internal/server"
	"github.com/zayats-yacht/yachtclient/internal/server/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewJSONZerologLogger(os.Stdout, cfg.LogLevel)

	app, err := server.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}
}
