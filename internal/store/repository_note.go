package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
)

// noteRepository is the PostgreSQL-backed implementation of [NoteRepository]
// over the "notes" table.
//
// Methods log through the context-scoped logger from [logger.FromContext] so
// entries carry the request's trace id.
type noteRepository struct {
	*DB
	logger *logger.Logger
}

func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating note repository")
	return &noteRepository{
		DB:     db,
		logger: logger,
	}
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanNote(row rowScanner) (models.Note, error) {
	var (
		note models.Note
		tags []byte
	)

	err := row.Scan(
		&note.ID,
		&note.UserID,
		&note.Title,
		&note.Content,
		&tags,
		&note.Folder,
		&note.Color,
		&note.IsPinned,
		&note.IsFavorite,
		&note.CreatedAt,
		&note.UpdatedAt,
	)
	if err != nil {
		return models.Note{}, err
	}

	if note.Tags, err = decodeTags(tags); err != nil {
		return models.Note{}, err
	}
	return note, nil
}

func (r *noteRepository) ListByUser(ctx context.Context, userID string) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListNotesQuery(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.ListByUser").
			Str("user_id", userID).
			Msg("failed to execute query for listing notes")
		return nil, r.wrapDBError(ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0, 32)
	for rows.Next() {
		note, scanErr := scanNote(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "noteRepository.ListByUser").
				Str("user_id", userID).
				Msg("failed to scan note row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		notes = append(notes, note)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).
			Str("func", "noteRepository.ListByUser").
			Str("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return notes, nil
}

func (r *noteRepository) Get(ctx context.Context, id int64) (models.Note, error) {
	query, args, err := buildGetNoteQuery(id)
	if err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryOne(ctx, "noteRepository.Get", id, query, args)
}

func (r *noteRepository) Create(ctx context.Context, note models.Note) (models.Note, error) {
	query, args, err := buildInsertNoteQuery(note)
	if err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := r.queryOne(ctx, "noteRepository.Create", 0, query, args)
	if err != nil {
		return models.Note{}, err
	}

	logger.FromContext(ctx).Debug().
		Str("func", "noteRepository.Create").
		Int64("note_id", created.ID).
		Str("user_id", created.UserID).
		Msg("note created")
	return created, nil
}

func (r *noteRepository) Update(ctx context.Context, note models.Note) (models.Note, error) {
	query, args, err := buildUpdateNoteQuery(note)
	if err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryOne(ctx, "noteRepository.Update", note.ID, query, args)
}

func (r *noteRepository) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteNoteQuery(id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.Delete").
			Int64("note_id", id).
			Msg("failed to delete note")
		return r.wrapDBError(ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: id %d", ErrNoteNotFound, id)
	}

	return nil
}

// queryOne runs a statement returning a single note row.
func (r *noteRepository) queryOne(ctx context.Context, fn string, id int64, query string, args []any) (models.Note, error) {
	note, err := scanNote(r.DB.QueryRowContext(ctx, query, args...))
	switch {
	case err == nil:
		return note, nil
	case errors.Is(err, sql.ErrNoRows):
		return models.Note{}, fmt.Errorf("%w: id %d", ErrNoteNotFound, id)
	case errors.Is(err, ErrDecodingTags):
		return models.Note{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	logger.FromContext(ctx).Err(err).
		Str("func", fn).
		Int64("note_id", id).
		Msg("note query failed")
	return models.Note{}, r.wrapDBError(ErrExecutingQuery, err)
}
