// Package main runs the fitness studio API managing users, lessons,
// bookings, credit top-ups and direct payments.
package main

import (
	"github.com/rs/zerolog/log"

	"github.com/go-hanka/fit-studio/cmd/httpserver"
	"github.com/go-hanka/fit-studio/internal/middleware"
	"github.com/go-hanka/fit-studio/pkg/configpkg"
	"github.com/go-hanka/fit-studio/pkg/dbpkg"

	_ "github.com/lib/pq"
)

func main() {
	config, err := configpkg.Load("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logger := middleware.CreateLogger(config)

	db, err := dbpkg.Setup(config.DBDriver, config.DBSource)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot connect to database")
	}

	server, err := httpserver.New(db, logger, config)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot create server")
	}

	logger.Info().Msg("FIT STUDIO API SERVER HAS STARTED")

	err = server.Engine.Run(config.ServerAddress)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot start server")
	}
}
