package service

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// NoteService serves the REST note contract. When the request context
// carries an authenticated user id, every operation is restricted to that
// user's notes.
type NoteService interface {
	List(ctx context.Context, userID string) ([]models.Note, error)
	Create(ctx context.Context, note models.Note) (models.Note, error)
	Update(ctx context.Context, id int64, note models.Note) (models.Note, error)
	Delete(ctx context.Context, id int64) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
