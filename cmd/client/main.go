package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-note-keeper/internal/adapter"
	"github.com/MKhiriev/go-note-keeper/internal/catalog"
	"github.com/MKhiriev/go-note-keeper/internal/client"
	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/tui"
	"github.com/MKhiriev/go-note-keeper/internal/view"
	"github.com/MKhiriev/go-note-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	info := buildInfo()
	_, _ = info.WriteTo(os.Stdout)

	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger("go-note-client").Fatal().Err(err).Msg("error getting configs")
	}

	// The terminal belongs to the UI, so logs go to a file.
	log, logFile, err := logger.NewFileLogger("go-note-client", cfg.LogFilePath)
	if err != nil {
		logger.NewLogger("go-note-client").Fatal().Err(err).Msg("error opening log file")
	}
	defer logFile.Close()

	if err = run(cfg, info, log); err != nil {
		log.Error().Err(err).Msg("client run error")
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(cfg *config.ClientConfig, info models.AppBuildInfo, log *logger.Logger) error {
	cat := catalog.Default()
	if cfg.CatalogPath != "" {
		loaded, err := catalog.LoadFile(cfg.CatalogPath)
		if err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}
		cat = loaded
	}

	remote, err := adapter.NewHTTPNoteRepository(cfg.Adapter, log)
	if err != nil {
		return fmt.Errorf("create note service adapter: %w", err)
	}

	localStorage, err := store.NewClientStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("create local storage: %w", err)
	}
	defer localStorage.Close()

	services := service.NewClientServices(localStorage, remote, cfg.Notes, log)
	ui := tui.New(services, cat, info, log,
		view.WithLanguage(cfg.Notes.Language))

	app, err := client.NewApp(services, ui, cfg, log)
	if err != nil {
		return fmt.Errorf("init client app: %w", err)
	}

	return app.Run()
}

func buildInfo() models.AppBuildInfo {
	return models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
}
