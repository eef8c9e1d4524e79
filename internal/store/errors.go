package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNoteNotFound is returned when a note id matches no row.
	ErrNoteNotFound = errors.New("note was not found")

	// ErrSessionNotFound is returned when no client session was saved.
	ErrSessionNotFound = errors.New("local session not found")

	// ErrPreferencesNotFound is returned when a user has never saved
	// preferences.
	ErrPreferencesNotFound = errors.New("preferences not found")

	// ErrConstraintViolation is returned when the database rejects a row
	// because it breaks a NOT NULL, CHECK or UNIQUE constraint.
	ErrConstraintViolation = errors.New("note violates a storage constraint")

	// ErrTemporarilyUnavailable wraps errors the classifier marks as
	// retryable: lost connections, serialization failures and deadlocks.
	ErrTemporarilyUnavailable = errors.New("storage temporarily unavailable")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	ErrBuildingSQLQuery   = errors.New("error building sql query")
	ErrExecutingQuery     = errors.New("error executing sql query")
	ErrExecutingStatement = errors.New("failed to executing statement")
	ErrScanningRow        = errors.New("failed to scan note row")
	ErrScanningRows       = errors.New("failed to scan note rows")

	// ErrEncodingTags and ErrDecodingTags report a tags column that could
	// not be converted to or from its JSON form.
	ErrEncodingTags = errors.New("failed to encode note tags")
	ErrDecodingTags = errors.New("failed to decode note tags")
)
