package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
)

type sessionRepository struct {
	*DB
	logger *logger.Logger
}

// NewSessionRepository constructs the SQLite-backed [SessionRepository].
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	return &sessionRepository{DB: db, logger: logger}
}

func (r *sessionRepository) Save(ctx context.Context, session models.Session) error {
	_, err := r.DB.ExecContext(ctx, saveSession, session.UserID, session.Token, session.CreatedAt.UTC())
	if err != nil {
		r.logger.Err(err).
			Str("func", "sessionRepository.Save").
			Str("user_id", session.UserID).
			Msg("failed to save session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (r *sessionRepository) Load(ctx context.Context) (models.Session, error) {
	var session models.Session

	err := r.DB.QueryRowContext(ctx, loadSession).Scan(&session.UserID, &session.Token, &session.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, ErrSessionNotFound
	}
	if err != nil {
		r.logger.Err(err).
			Str("func", "sessionRepository.Load").
			Msg("failed to load session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return session, nil
}

func (r *sessionRepository) Delete(ctx context.Context) error {
	if _, err := r.DB.ExecContext(ctx, deleteSession); err != nil {
		r.logger.Err(err).
			Str("func", "sessionRepository.Delete").
			Msg("failed to delete session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}
