package main

import (
	"os"

	"github.com/yigit/marksportal/internal/pkg/logger"
	"github.com/yigit/marksportal/internal/server"
)

// @title MarksPortal API
// @version 1.0
// @description Student, subject and marks records with a per-category performance report

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:3000
// @BasePath /api
// @schemes http https

func main() {
	srv, err := server.NewServer()
	if err != nil {
		// Setup errors are already logged in detail by the bootstrap functions
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
