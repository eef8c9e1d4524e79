package service

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/view"
	"github.com/MKhiriev/go-note-keeper/models"
)

var viewModes = []string{models.ViewModeGrid, models.ViewModeList, models.ViewModeCompact}

type clientPreferencesService struct {
	repo   store.PreferencesRepository
	logger *logger.Logger
}

func NewClientPreferencesService(repo store.PreferencesRepository, log *logger.Logger) ClientPreferencesService {
	return &clientPreferencesService{repo: repo, logger: log}
}

// Get implements ClientPreferencesService. Stored values the list no longer
// understands fall back to their defaults one by one.
func (s *clientPreferencesService) Get(ctx context.Context, userID string) (models.Preferences, error) {
	if userID == "" {
		return models.Preferences{}, ErrNoActiveUser
	}

	defaults := models.DefaultPreferences(userID)

	prefs, err := s.repo.Get(ctx, userID)
	if errors.Is(err, store.ErrPreferencesNotFound) {
		return defaults, nil
	}
	if err != nil {
		return models.Preferences{}, fmt.Errorf("%w: read preferences: %w", ErrStorage, err)
	}

	prefs.UserID = userID
	if _, err = view.ParseSortKey(prefs.SortKey); err != nil {
		s.logDiscarded("sort_key", prefs.SortKey, userID)
		prefs.SortKey = defaults.SortKey
	}
	if _, err = view.ParseSection(prefs.Section); err != nil {
		s.logDiscarded("section", prefs.Section, userID)
		prefs.Section = defaults.Section
	}
	if !slices.Contains(viewModes, prefs.ViewMode) {
		s.logDiscarded("view_mode", prefs.ViewMode, userID)
		prefs.ViewMode = defaults.ViewMode
	}

	return prefs, nil
}

func (s *clientPreferencesService) Save(ctx context.Context, prefs models.Preferences) error {
	if prefs.UserID == "" {
		return ErrNoActiveUser
	}
	if _, err := view.ParseSortKey(prefs.SortKey); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPreferences, err)
	}
	if _, err := view.ParseSection(prefs.Section); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPreferences, err)
	}
	if !slices.Contains(viewModes, prefs.ViewMode) {
		return fmt.Errorf("%w: view mode %q", ErrInvalidPreferences, prefs.ViewMode)
	}

	if err := s.repo.Save(ctx, prefs); err != nil {
		return fmt.Errorf("%w: save preferences: %w", ErrStorage, err)
	}
	return nil
}

func (s *clientPreferencesService) logDiscarded(field, value, userID string) {
	s.logger.Warn().
		Str("func", "clientPreferencesService.Get").
		Str("user_id", userID).
		Str("field", field).
		Str("value", value).
		Msg("discarding unknown stored preference")
}
