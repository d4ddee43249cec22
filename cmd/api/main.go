package main

import (
	"os"

	"github.com/revams/api/internal/pkg/logger"
	"github.com/revams/api/internal/server"
)

// @title ReVAMS API
// @version 1.0
// @description Attendance, fee and org chart API for campus events

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api
// @schemes http https

func main() {
	srv, err := server.NewServer()
	if err != nil {
		// Setup failures are logged in detail where they happen.
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Run blocks until a shutdown signal arrives.
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
