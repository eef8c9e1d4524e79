// Package tui is the terminal presentation layer of the note client: the
// sign-in screen, the note list with its sidebar, search and filters, and
// the note editor.
package tui

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/internal/catalog"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/view"
	"github.com/MKhiriev/go-note-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	services  *service.ClientServices
	catalog   *catalog.Catalog
	projector *view.Projector
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	options []tea.ProgramOption
}

// New builds the terminal UI. opts configure the projector that orders and
// filters the note list.
func New(services *service.ClientServices, cat *catalog.Catalog, buildInfo models.AppBuildInfo, log *logger.Logger, opts ...view.Option) *TUI {
	return &TUI{
		services:  services,
		catalog:   cat,
		projector: view.NewProjector(cat, opts...),
		buildInfo: buildInfo,
		logger:    log,
		options:   []tea.ProgramOption{tea.WithAltScreen()},
	}
}

// LoginFlow shows the sign-in screen until a session is open. userID
// prefills the user field.
func (t *TUI) LoginFlow(ctx context.Context, userID string) (models.Session, error) {
	model := newLoginModel(ctx, t.services.Session, userID)
	finalModel, err := t.run(ctx, model)
	if err != nil {
		return models.Session{}, err
	}

	result, ok := finalModel.(*loginModel)
	if !ok {
		return models.Session{}, tea.ErrProgramKilled
	}
	if result.quitByUser || result.result.IsZero() {
		return models.Session{}, ErrUserQuit
	}

	return result.result, nil
}

// MainLoop runs the note list for session. It reports logout when the user
// signed out rather than quit.
func (t *TUI) MainLoop(ctx context.Context, session models.Session) (logout bool, err error) {
	model := newMainLoopModel(ctx, t.services, t.catalog, t.projector, session, t.buildInfo, t.logger)
	finalModel, err := t.run(ctx, model)
	if err != nil {
		return false, err
	}

	result, ok := finalModel.(*mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}

func (t *TUI) run(ctx context.Context, model tea.Model) (tea.Model, error) {
	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, t.options...)
	return tea.NewProgram(model, opts...).Run()
}
