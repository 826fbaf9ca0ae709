package main

import (
	"os"

	"github.com/senati/mobile-backend/internal/pkg/logger"
	"github.com/senati/mobile-backend/internal/server"
)

// @title SENATI Backend API
// @version 1.0.0
// @description API backend for the SENATI student mobile application

// @host localhost:8080
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT bearer token for authorization

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
	os.Exit(0)
}
