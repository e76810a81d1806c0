// main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"movie-booking/cmd"
	"movie-booking/internal/data/repository"
	"movie-booking/internal/tui"
	"movie-booking/internal/usecase"
	"movie-booking/internal/wire"
	"movie-booking/pkg/utils"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

func main() {
	console := flag.Bool("console", false, "run the interactive terminal client instead of the HTTP server")
	flag.Parse()

	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger; console mode logs to file only so the TUI owns stdout
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug, *console)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
		zap.Bool("console", *console),
	)

	// Initialize in-memory stores
	repos := repository.NewRepository(logger)

	// Wire services
	service := usecase.NewService(repos, config, logger)

	// Seed sample catalog
	if err := service.Movie.LoadSampleData(context.Background()); err != nil {
		logger.Fatal("Failed to load sample data", zap.Error(err))
	}

	if *console {
		if _, err := tea.NewProgram(tui.New(service), tea.WithAltScreen()).Run(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	// Wire handlers and routes
	app, err := wire.Wiring(service, config, logger)
	if err != nil {
		logger.Fatal("Failed to wire application", zap.Error(err))
	}

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
