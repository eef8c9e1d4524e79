package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-note-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_services_mock.go -package=mock

// NoteCollection is the single owner of the acting user's notes on the
// client. Every mutation goes to the remote repository first and is applied
// locally only after it succeeds; there is no optimistic update.
//
// Readers get snapshots: returned notes never share memory with the
// collection.
type NoteCollection interface {
	// Load replaces the collection with the notes the repository holds for
	// userID. Only the most recently started load may apply its result; an
	// older one returns ErrLoadSuperseded. On failure the collection is left
	// empty and State reports LoadStateFailed. Creates, updates and deletes
	// confirmed while the load runs are reapplied to its result.
	Load(ctx context.Context, userID string) error

	// CreateNote fills defaults into draft, stamps owner and timestamps,
	// validates it and persists it. The stored note is appended on success.
	// Returns ErrBusy while another CreateNote is in flight.
	CreateNote(ctx context.Context, draft models.Note) (models.Note, error)

	// UpdateNote merges patch into the note identified by id and persists
	// the result. Returns ErrNotFound without contacting the repository when
	// id is not in the collection, and ErrBusy when id has an operation in
	// flight.
	UpdateNote(ctx context.Context, id int64, patch models.NotePatch) (models.Note, error)

	// DeleteNote removes the note remotely and then locally. A note the
	// service no longer knows is removed locally as well.
	DeleteNote(ctx context.Context, id int64) error

	// DuplicateNote creates an unpinned copy of the note identified by id
	// titled "<title> (Copy)".
	DuplicateNote(ctx context.Context, id int64) (models.Note, error)

	// ToggleField flips a boolean flag. It waits for any operation already
	// in flight on id, then flips the value the collection holds at that
	// moment, so concurrent toggles never lose an update.
	ToggleField(ctx context.Context, id int64, field models.ToggleField) (models.Note, error)

	Notes() []models.Note
	Note(id int64) (models.Note, bool)
	State() models.LoadState
	UserID() string

	// IsPending reports whether id has an operation in flight.
	IsPending(id int64) bool

	// Changes delivers a signal after every change of the collection.
	// Signals coalesce: one pending signal stands for any number of changes.
	Changes() <-chan struct{}

	// Clear forgets the acting user and every note, and discards the result
	// of any load still in flight.
	Clear()
}

// ClientSessionService manages the authentication context of the client.
type ClientSessionService interface {
	// Start opens a session. With a bearer token the user id is read from
	// the token subject; otherwise userID is used as is. The session is
	// persisted so the next run can restore it.
	Start(ctx context.Context, token, userID string) (models.Session, error)

	// Restore reopens the persisted session. Returns ErrNoActiveUser when
	// none was saved.
	Restore(ctx context.Context) (models.Session, error)

	// Current returns the open session, if any.
	Current() (models.Session, bool)

	// Logout closes the session, forgets it on disk and clears the note
	// collection.
	Logout(ctx context.Context) error
}

// ClientPreferencesService loads and saves the per-user list settings.
type ClientPreferencesService interface {
	// Get returns the saved preferences of userID, or the defaults when
	// nothing was saved yet.
	Get(ctx context.Context, userID string) (models.Preferences, error)

	Save(ctx context.Context, prefs models.Preferences) error
}

// NoteRefreshJob periodically reloads the note collection in the background.
type NoteRefreshJob interface {
	// Start launches the background reload for userID every interval.
	// A non-positive interval leaves the job idle. Any previously running
	// job is stopped first.
	Start(ctx context.Context, userID string, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// terminated.
	Stop()
}
