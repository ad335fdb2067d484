package main

import (
	"os"

	"gomoto/config"
	"gomoto/helper"
	"gomoto/shared/logger"

	"github.com/rs/zerolog/log"
)

const argLength = 2

func main() {
	logger.InitLogger()

	if len(os.Args) < argLength {
		log.Fatal().Msg("migration direction is required: up, down, step-up, drop or version")
	}

	cfg := config.Get()
	logger.SetLogLevel(cfg)

	if err := helper.Migrate(cfg, os.Args[1]); err != nil {
		log.Fatal().Err(err).Str("direction", os.Args[1]).Msg("failed to run migration")
	}
}
