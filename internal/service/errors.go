package service

import "errors"

// Error classes surfaced by the note collection. Adapter and store errors are
// wrapped into one of these so callers can branch with errors.Is while the
// original cause stays matchable too.
var (
	// ErrNetwork covers transport failures, server errors and any response
	// the collection cannot use. The operation may be retried.
	ErrNetwork = errors.New("note service unavailable")

	// ErrValidation means the note was rejected, locally or by the service.
	ErrValidation = errors.New("note validation failed")

	// ErrNotFound means the note does not exist locally or remotely.
	ErrNotFound = errors.New("note not found")

	// ErrBusy means another operation on the same note is still in flight.
	ErrBusy = errors.New("note has an operation in flight")

	// ErrLoadSuperseded is returned by a load whose result was discarded
	// because a newer load (or a logout) started after it.
	ErrLoadSuperseded = errors.New("load superseded by a newer request")

	// ErrNoActiveUser means no session is active.
	ErrNoActiveUser = errors.New("no active user")

	// ErrInvalidToggleField means the requested flag is not toggleable.
	ErrInvalidToggleField = errors.New("invalid toggle field")

	// ErrInvalidToken means a session token could not be read, or names a
	// different user than the one requested.
	ErrInvalidToken = errors.New("invalid session token")

	// ErrInvalidPreferences means a sort key, section or view mode is not
	// one the note list understands.
	ErrInvalidPreferences = errors.New("invalid preferences")

	// ErrStorage means the local or server database failed.
	ErrStorage = errors.New("storage failure")
)

// Server-side errors.
var (
	// ErrForbidden means the authenticated user tried to act on another
	// user's notes.
	ErrForbidden = errors.New("access to another user's notes")

	// ErrNoUserID means a request did not name the owning user.
	ErrNoUserID = errors.New("no user id provided")
)
