package store

import (
	"encoding/json"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-note-keeper/models"
)

const notesTable = "notes"

var noteColumns = []string{
	"id", "user_id", "title", "content", "tags", "folder", "color",
	"is_pinned", "is_favorite", "created_at", "updated_at",
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func returningNote() string {
	return "RETURNING " + strings.Join(noteColumns, ", ")
}

func buildListNotesQuery(userID string) (string, []any, error) {
	return psql.Select(noteColumns...).
		From(notesTable).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("id").
		ToSql()
}

func buildGetNoteQuery(id int64) (string, []any, error) {
	return psql.Select(noteColumns...).
		From(notesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildInsertNoteQuery(note models.Note) (string, []any, error) {
	tags, err := encodeTags(note.Tags)
	if err != nil {
		return "", nil, err
	}

	return psql.Insert(notesTable).
		Columns("user_id", "title", "content", "tags", "folder", "color", "is_pinned", "is_favorite", "created_at", "updated_at").
		Values(note.UserID, note.Title, note.Content, tags, note.Folder, note.Color, note.IsPinned, note.IsFavorite, note.CreatedAt, note.UpdatedAt).
		Suffix(returningNote()).
		ToSql()
}

// buildUpdateNoteQuery leaves user_id and created_at untouched.
func buildUpdateNoteQuery(note models.Note) (string, []any, error) {
	tags, err := encodeTags(note.Tags)
	if err != nil {
		return "", nil, err
	}

	return psql.Update(notesTable).
		Set("title", note.Title).
		Set("content", note.Content).
		Set("tags", tags).
		Set("folder", note.Folder).
		Set("color", note.Color).
		Set("is_pinned", note.IsPinned).
		Set("is_favorite", note.IsFavorite).
		Set("updated_at", note.UpdatedAt).
		Where(sq.Eq{"id": note.ID}).
		Suffix(returningNote()).
		ToSql()
}

func buildDeleteNoteQuery(id int64) (string, []any, error) {
	return psql.Delete(notesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

// encodeTags renders tags as the JSON array stored in the jsonb column. A nil
// slice is stored as [].
func encodeTags(tags []string) (string, error) {
	if tags == nil {
		tags = []string{}
	}
	raw, err := json.Marshal(tags)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncodingTags, err)
	}
	return string(raw), nil
}

func decodeTags(raw []byte) ([]string, error) {
	if len(raw) == 0 {
		return []string{}, nil
	}
	var tags []string
	if err := json.Unmarshal(raw, &tags); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodingTags, err)
	}
	if tags == nil {
		tags = []string{}
	}
	return tags, nil
}
