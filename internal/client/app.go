package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/tui"
	"github.com/MKhiriev/go-note-keeper/models"
)

type App struct {
	services *service.ClientServices
	ui       UI

	identity        config.ClientApp
	refreshInterval time.Duration

	logger *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, ErrIncompleteApp
	}

	return &App{
		services:        services,
		ui:              ui,
		identity:        cfg.App,
		refreshInterval: cfg.Workers.RefreshInterval,
		logger:          log,
	}, nil
}

// Run blocks until the user quits or the process is interrupted.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	for {
		session, err := a.openSession(ctx)
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("open session: %w", err)
		}

		a.logger.Info().
			Str("func", "App.run").
			Str("user_id", session.UserID).
			Dur("refresh_interval", a.refreshInterval).
			Msg("session opened")

		a.services.RefreshJob.Start(ctx, session.UserID, a.refreshInterval)
		logout, err := a.ui.MainLoop(ctx, session)
		a.services.RefreshJob.Stop()

		if err != nil {
			return fmt.Errorf("main loop: %w", err)
		}
		if !logout {
			return nil
		}

		// The configured identity signs in only once per run; after a
		// logout the user chooses who to be.
		a.identity = config.ClientApp{}
	}
}

// openSession tries, in order, the persisted session, the configured
// identity and the sign-in screen.
func (a *App) openSession(ctx context.Context) (models.Session, error) {
	session, err := a.services.Session.Restore(ctx)
	if err == nil {
		return session, nil
	}
	if !errors.Is(err, service.ErrNoActiveUser) {
		a.logger.Warn().
			Str("func", "App.openSession").
			Err(err).
			Msg("could not restore session")
	}

	if a.identity.Token != "" || a.identity.UserID != "" {
		session, err = a.services.Session.Start(ctx, a.identity.Token, a.identity.UserID)
		if err == nil {
			return session, nil
		}
		a.logger.Warn().
			Str("func", "App.openSession").
			Err(err).
			Msg("configured identity rejected, asking the user")
	}

	return a.ui.LoginFlow(ctx, a.identity.UserID)
}
