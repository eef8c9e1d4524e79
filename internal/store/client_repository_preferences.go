package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
)

type preferencesRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewPreferencesRepository constructs the SQLite-backed
// [PreferencesRepository].
func NewPreferencesRepository(db *DB, logger *logger.Logger) PreferencesRepository {
	return &preferencesRepository{DB: db, logger: logger, now: time.Now}
}

func (r *preferencesRepository) Get(ctx context.Context, userID string) (models.Preferences, error) {
	var prefs models.Preferences

	err := r.DB.QueryRowContext(ctx, getPreferences, userID).
		Scan(&prefs.UserID, &prefs.SortKey, &prefs.Section, &prefs.ViewMode)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Preferences{}, ErrPreferencesNotFound
	}
	if err != nil {
		r.logger.Err(err).
			Str("func", "preferencesRepository.Get").
			Str("user_id", userID).
			Msg("failed to read preferences")
		return models.Preferences{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return prefs, nil
}

func (r *preferencesRepository) Save(ctx context.Context, prefs models.Preferences) error {
	_, err := r.DB.ExecContext(ctx, savePreferences,
		prefs.UserID, prefs.SortKey, prefs.Section, prefs.ViewMode, r.now().UTC())
	if err != nil {
		r.logger.Err(err).
			Str("func", "preferencesRepository.Save").
			Str("user_id", prefs.UserID).
			Msg("failed to save preferences")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}
