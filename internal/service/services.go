package service

import (
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
)

// Services groups the business services of the note server.
type Services struct {
	NoteService    NoteService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.ServerConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("app info service: %w", err)
	}

	notes := NewNoteValidationService().Wrap(NewNoteService(storages.NoteRepository, logger))

	return &Services{
		NoteService:    notes,
		AppInfoService: appInfo,
	}, nil
}
