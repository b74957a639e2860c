package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/team-echo-club/echo-api/internal/pkg/logger"
	"github.com/team-echo-club/echo-api/internal/server"
)

// @title ECHO Club API
// @version 1.0
// @description API for the ECHO student club website: activities, gallery, team and club profile

// @contact.name ECHO Club
// @contact.email prajwalganiga06@gmail.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

func main() {
	// Load .env if present; real environment wins over file values
	if err := godotenv.Load(); err != nil {
		logger.Debug().Err(err).Msg("No .env file loaded")
	}

	// Initialize the server with all its dependencies
	srv, err := server.NewServer()
	if err != nil {
		// Error details are logged within NewServer's setup functions
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Run the server (this blocks until shutdown signal)
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
	os.Exit(0)
}
