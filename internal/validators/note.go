package validators

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/go-playground/validator/v10"
)

// Field names accepted by NoteValidator.Validate. They match the struct
// field names of models.Note.
const (
	FieldID     = "ID"
	FieldTags   = "Tags"
	FieldFolder = "Folder"
	FieldColor  = "Color"
	FieldUserID = "UserID"
)

var knownFields = []string{FieldID, FieldTags, FieldFolder, FieldColor, FieldUserID}

// NoteValidator checks notes and note patches against the rules declared in
// the `validate` tags of models.Note.
type NoteValidator struct {
	validate *validator.Validate
}

func NewNoteValidator() *NoteValidator {
	return &NoteValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate accepts models.Note, models.NotePatch or pointers to them. With
// fields, only those fields of a note are checked.
func (v *NoteValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Note:
		return v.validateNote(value, fields...)
	case *models.Note:
		return v.validateNote(*value, fields...)
	case models.NotePatch:
		return v.validatePatch(value)
	case *models.NotePatch:
		return v.validatePatch(*value)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *NoteValidator) validateNote(note models.Note, fields ...string) error {
	for _, f := range fields {
		if !slices.Contains(knownFields, f) {
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	var err error
	if len(fields) == 0 {
		err = v.validate.Struct(note)
	} else {
		err = v.validate.StructPartial(note, fields...)
	}
	return describe(err)
}

// validatePatch checks the fields a patch sets against the same rules as a
// full note.
func (v *NoteValidator) validatePatch(patch models.NotePatch) error {
	if patch.Folder != nil && strings.TrimSpace(*patch.Folder) == "" {
		return fmt.Errorf("%w: Folder is required", ErrInvalidNote)
	}
	if patch.Color != nil && *patch.Color != "" {
		if err := v.validate.Var(*patch.Color, "hexcolor"); err != nil {
			return fmt.Errorf("%w: Color must be a hex color", ErrInvalidNote)
		}
	}
	if patch.Tags != nil {
		if err := v.validate.Var(patch.Tags, "dive,required"); err != nil {
			return fmt.Errorf("%w: Tags must not contain empty names", ErrInvalidNote)
		}
	}
	return nil
}

func describe(err error) error {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", ErrInvalidNote, err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed on %q", fe.Field(), fe.Tag()))
	}
	return fmt.Errorf("%w: %s", ErrInvalidNote, strings.Join(msgs, "; "))
}
