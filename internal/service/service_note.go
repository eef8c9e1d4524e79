package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
)

type noteService struct {
	noteRepository store.NoteRepository
	now            func() time.Time

	logger *logger.Logger
}

func NewNoteService(noteRepository store.NoteRepository, logger *logger.Logger) NoteService {
	return &noteService{
		noteRepository: noteRepository,
		now:            time.Now,
		logger:         logger,
	}
}

func (s *noteService) List(ctx context.Context, userID string) ([]models.Note, error) {
	if userID == "" {
		return nil, ErrNoUserID
	}
	if err := authorize(ctx, userID); err != nil {
		return nil, err
	}

	notes, err := s.noteRepository.ListByUser(ctx, userID)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return notes, nil
}

// Create stores note for its owner. With an authenticated caller a missing
// owner defaults to the caller. Missing timestamps are set to now.
func (s *noteService) Create(ctx context.Context, note models.Note) (models.Note, error) {
	if caller, ok := utils.GetUserIDFromContext(ctx); ok && note.UserID == "" {
		note.UserID = caller
	}
	if note.UserID == "" {
		return models.Note{}, ErrNoUserID
	}
	if err := authorize(ctx, note.UserID); err != nil {
		return models.Note{}, err
	}

	now := s.now()
	note.ID = 0
	note.Tags = models.NormalizeTags(note.Tags)
	if note.CreatedAt.IsZero() {
		note.CreatedAt = now
	}
	if note.UpdatedAt.Before(note.CreatedAt) {
		note.UpdatedAt = note.CreatedAt
	}

	created, err := s.noteRepository.Create(ctx, note)
	if err != nil {
		return models.Note{}, mapStoreError(err)
	}

	logger.FromContext(ctx).Info().
		Str("func", "noteService.Create").
		Int64("note_id", created.ID).
		Str("user_id", created.UserID).
		Msg("note created")
	return created, nil
}

// Update replaces the note id. The owner and creation time always come from
// the stored row, and UpdatedAt never moves backwards.
func (s *noteService) Update(ctx context.Context, id int64, note models.Note) (models.Note, error) {
	existing, err := s.owned(ctx, id)
	if err != nil {
		return models.Note{}, err
	}
	if note.UserID != "" && note.UserID != existing.UserID {
		return models.Note{}, fmt.Errorf("%w: note %d cannot change owner", ErrForbidden, id)
	}

	note.ID = id
	note.UserID = existing.UserID
	note.CreatedAt = existing.CreatedAt
	note.Tags = models.NormalizeTags(note.Tags)
	if note.UpdatedAt.IsZero() {
		note.UpdatedAt = s.now()
	}
	if note.UpdatedAt.Before(existing.UpdatedAt) {
		note.UpdatedAt = existing.UpdatedAt
	}

	updated, err := s.noteRepository.Update(ctx, note)
	if err != nil {
		return models.Note{}, mapStoreError(err)
	}
	return updated, nil
}

func (s *noteService) Delete(ctx context.Context, id int64) error {
	if _, err := s.owned(ctx, id); err != nil {
		return err
	}

	if err := s.noteRepository.Delete(ctx, id); err != nil {
		return mapStoreError(err)
	}

	logger.FromContext(ctx).Info().
		Str("func", "noteService.Delete").
		Int64("note_id", id).
		Msg("note deleted")
	return nil
}

// owned loads note id and checks that the caller may act on it.
func (s *noteService) owned(ctx context.Context, id int64) (models.Note, error) {
	existing, err := s.noteRepository.Get(ctx, id)
	if err != nil {
		return models.Note{}, mapStoreError(err)
	}
	if err = authorize(ctx, existing.UserID); err != nil {
		return models.Note{}, err
	}
	return existing, nil
}

// authorize rejects acting on owner's notes when an authenticated caller is
// somebody else. Without authentication every owner is allowed.
func authorize(ctx context.Context, owner string) error {
	caller, ok := utils.GetUserIDFromContext(ctx)
	if !ok || caller == owner {
		return nil
	}
	return fmt.Errorf("%w: %q acting on notes of %q", ErrForbidden, caller, owner)
}

func mapStoreError(err error) error {
	switch {
	case errors.Is(err, store.ErrNoteNotFound):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	case errors.Is(err, store.ErrConstraintViolation):
		return fmt.Errorf("%w: %w", ErrValidation, err)
	default:
		return fmt.Errorf("%w: %w", ErrStorage, err)
	}
}
