package store

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock -mock_names=NoteRepository=MockNoteStore

// NoteRepository persists notes on the server.
type NoteRepository interface {
	// ListByUser returns every note owned by userID ordered by id.
	ListByUser(ctx context.Context, userID string) ([]models.Note, error)

	// Get returns the note with the given id regardless of its owner.
	Get(ctx context.Context, id int64) (models.Note, error)

	// Create inserts note and returns the stored row with its new id.
	Create(ctx context.Context, note models.Note) (models.Note, error)

	// Update overwrites every mutable column of the row note.ID except
	// created_at and user_id.
	Update(ctx context.Context, note models.Note) (models.Note, error)

	Delete(ctx context.Context, id int64) error
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
