package store

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// SessionRepository keeps the single client session in the local database.
type SessionRepository interface {
	// Save replaces any stored session with session.
	Save(ctx context.Context, session models.Session) error

	// Load returns the stored session or ErrSessionNotFound.
	Load(ctx context.Context) (models.Session, error)

	// Delete forgets the stored session. Deleting nothing is not an error.
	Delete(ctx context.Context) error
}

// PreferencesRepository keeps per-user list settings in the local database.
type PreferencesRepository interface {
	// Get returns the preferences of userID or ErrPreferencesNotFound.
	Get(ctx context.Context, userID string) (models.Preferences, error)

	// Save inserts or replaces the preferences of prefs.UserID.
	Save(ctx context.Context, prefs models.Preferences) error
}
