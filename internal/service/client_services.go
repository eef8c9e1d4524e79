package service

import (
	"github.com/MKhiriev/go-note-keeper/internal/adapter"
	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
)

// ClientServices groups the services the terminal UI works with.
type ClientServices struct {
	Notes       NoteCollection
	Session     ClientSessionService
	Preferences ClientPreferencesService
	RefreshJob  NoteRefreshJob
}

func NewClientServices(local *store.ClientStorages, remote adapter.NoteRepository, cfg config.ClientNotes, log *logger.Logger) *ClientServices {
	notes := NewNoteCollection(remote, NoteDefaults{
		Folder: cfg.DefaultFolder,
		Color:  cfg.DefaultColor,
	}, nil, log)

	return &ClientServices{
		Notes:       notes,
		Session:     NewClientSessionService(local.SessionRepository, remote, notes, log),
		Preferences: NewClientPreferencesService(local.PreferencesRepository, log),
		RefreshJob:  NewNoteRefreshJob(notes, log),
	}
}
