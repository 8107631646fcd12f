package main

import (
	"context"
	"os"

	"github.com/college/academics/internal/pkg/logger"
	"github.com/college/academics/internal/server"
)

// @title College Academics API
// @version 1.0
// @description Admin API for batches, semesters, courses, students, staff, outcome assessment, timetable and attendance.

// @host localhost:5000
// @BasePath /
// @schemes http

func main() {
	srv, err := server.NewServer(context.Background())
	if err != nil {
		// Details are logged by the setup step that failed.
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Server exited gracefully")
}
