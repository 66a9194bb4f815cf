package main

import (
	"context"
	"hotel/config"
	"hotel/di"
	"hotel/helper"
	"hotel/shared/logger"
	"hotel/shared/timezone"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	if err := timezone.Setup(cfg.App.Timezone); err != nil {
		log.Error().Err(err).Msg("Failed to load timezone, falling back to UTC")
	}

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to run database migrations")
		}
	}

	app := di.InitializeApp()

	app.HTTP.OnShutdown(func(shutdownCtx context.Context) {
		if err := app.Kafka.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close Kafka client")
		}

		if err := app.Otel.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Failed to flush traces")
		}
	})

	app.HTTP.Serve()
}
