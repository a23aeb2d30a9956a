package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/Jong-Youl/LINK/internal/app"
	"github.com/Jong-Youl/LINK/internal/config"
)

func main() {
	// Optional; real deployments set env vars directly
	_ = godotenv.Load()

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("APP_ENV") == "development" {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("config")
	}

	if err := app.Run(cfg, logger); err != nil {
		logger.Fatal().Err(err).Msg("app")
	}
}
