package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/validators"
	"github.com/MKhiriev/go-note-keeper/models"
)

// NoteServiceWrapper decorates a NoteService with additional behavior such
// as validation.
type NoteServiceWrapper interface {
	Wrap(NoteService) NoteService
}

// NoteValidationService rejects malformed notes before they reach the
// wrapped NoteService.
type NoteValidationService struct {
	inner     NoteService
	validator validators.Validator
}

func NewNoteValidationService() NoteServiceWrapper {
	return &NoteValidationService{
		validator: validators.NewNoteValidator(),
	}
}

func (v *NoteValidationService) Wrap(inner NoteService) NoteService {
	return &NoteValidationService{inner: inner, validator: v.validator}
}

func (v *NoteValidationService) List(ctx context.Context, userID string) ([]models.Note, error) {
	return v.inner.List(ctx, userID)
}

// Create checks everything but the owner, which the inner service may still
// fill in from the authenticated caller.
func (v *NoteValidationService) Create(ctx context.Context, note models.Note) (models.Note, error) {
	if err := v.validator.Validate(ctx, note, validators.FieldTags, validators.FieldFolder, validators.FieldColor); err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return v.inner.Create(ctx, note)
}

func (v *NoteValidationService) Update(ctx context.Context, id int64, note models.Note) (models.Note, error) {
	if id <= 0 {
		return models.Note{}, fmt.Errorf("%w: note id %d", ErrValidation, id)
	}
	if note.ID != 0 && note.ID != id {
		return models.Note{}, fmt.Errorf("%w: body id %d does not match path id %d", ErrValidation, note.ID, id)
	}
	if err := v.validator.Validate(ctx, note, validators.FieldTags, validators.FieldFolder, validators.FieldColor); err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return v.inner.Update(ctx, id, note)
}

func (v *NoteValidationService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: note id %d", ErrValidation, id)
	}
	return v.inner.Delete(ctx, id)
}
