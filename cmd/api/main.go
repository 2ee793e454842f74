package main

import (
	"os"

	"github.com/yigit/campus-survey/internal/pkg/logger" // Still needed for initial error logging
	"github.com/yigit/campus-survey/internal/server"
)

// @title Campus Survey API
// @version 1.0
// @description Collects campus resource surveys and feedback and serves aggregate analytics.

// @host localhost:5001
// @BasePath /api

func main() {
	// NewServer orchestrates LoadConfigAndSetupLogger, SetupDatabase, BuildDependencies, SetupRouter
	srv, err := server.NewServer()
	if err != nil {
		// Use the default logger setup by the logger package's init
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Run the server (this blocks until shutdown signal)
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
