package main

import (
	"github.com/rs/zerolog/log"

	"github.com/anupam2nd/mylavanya-sub003/config"
	"github.com/anupam2nd/mylavanya-sub003/di"
	"github.com/anupam2nd/mylavanya-sub003/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	app := di.InitializeApp()

	if err := app.Scheduler.Start(); err != nil {
		log.Fatal().Err(err).Msg("Failed to start background scheduler")
	}
	defer app.Scheduler.Stop()

	app.HTTP.Serve()
}
