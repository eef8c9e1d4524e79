package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/mock"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestPreferences(t *testing.T) (ClientPreferencesService, *mock.MockPreferencesRepository) {
	t.Helper()
	repo := mock.NewMockPreferencesRepository(gomock.NewController(t))
	return NewClientPreferencesService(repo, logger.Nop()), repo
}

// ── Get ──────────────────────────────────────────────────────────────────────

func TestPreferences_Get_Stored(t *testing.T) {
	svc, repo := newTestPreferences(t)
	saved := models.Preferences{UserID: "u-1", SortKey: "title", Section: "tag-3", ViewMode: models.ViewModeGrid}
	repo.EXPECT().Get(gomock.Any(), "u-1").Return(saved, nil)

	got, err := svc.Get(context.Background(), "u-1")

	require.NoError(t, err)
	assert.Equal(t, saved, got)
}

func TestPreferences_Get_DefaultsWhenNothingSaved(t *testing.T) {
	svc, repo := newTestPreferences(t)
	repo.EXPECT().Get(gomock.Any(), "u-1").Return(models.Preferences{}, store.ErrPreferencesNotFound)

	got, err := svc.Get(context.Background(), "u-1")

	require.NoError(t, err)
	assert.Equal(t, models.DefaultPreferences("u-1"), got)
}

func TestPreferences_Get_UnknownValuesFallBackOneByOne(t *testing.T) {
	svc, repo := newTestPreferences(t)
	repo.EXPECT().Get(gomock.Any(), "u-1").Return(models.Preferences{
		UserID:   "u-1",
		SortKey:  "title",
		Section:  "smart-folder",
		ViewMode: "cards",
	}, nil)

	got, err := svc.Get(context.Background(), "u-1")

	require.NoError(t, err)
	assert.Equal(t, "title", got.SortKey)
	assert.Equal(t, "all", got.Section)
	assert.Equal(t, models.ViewModeList, got.ViewMode)
}

func TestPreferences_Get_Failures(t *testing.T) {
	svc, repo := newTestPreferences(t)

	_, err := svc.Get(context.Background(), "")
	assert.ErrorIs(t, err, ErrNoActiveUser)

	repo.EXPECT().Get(gomock.Any(), "u-1").Return(models.Preferences{}, errors.New("locked"))
	_, err = svc.Get(context.Background(), "u-1")
	assert.ErrorIs(t, err, ErrStorage)
}

// ── Save ─────────────────────────────────────────────────────────────────────

func TestPreferences_Save(t *testing.T) {
	svc, repo := newTestPreferences(t)
	prefs := models.Preferences{UserID: "u-1", SortKey: "folder", Section: "folder-2", ViewMode: models.ViewModeCompact}
	repo.EXPECT().Save(gomock.Any(), prefs).Return(nil)

	assert.NoError(t, svc.Save(context.Background(), prefs))
}

func TestPreferences_Save_Rejections(t *testing.T) {
	valid := models.DefaultPreferences("u-1")

	tests := []struct {
		name   string
		mutate func(*models.Preferences)
		want   error
	}{
		{"no user", func(p *models.Preferences) { p.UserID = "" }, ErrNoActiveUser},
		{"sort key", func(p *models.Preferences) { p.SortKey = "size" }, ErrInvalidPreferences},
		{"section", func(p *models.Preferences) { p.Section = "folder-x" }, ErrInvalidPreferences},
		{"view mode", func(p *models.Preferences) { p.ViewMode = "cards" }, ErrInvalidPreferences},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestPreferences(t)
			prefs := valid
			tt.mutate(&prefs)

			assert.ErrorIs(t, svc.Save(context.Background(), prefs), tt.want)
		})
	}
}

func TestPreferences_Save_StorageFailure(t *testing.T) {
	svc, repo := newTestPreferences(t)
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("locked"))

	assert.ErrorIs(t, svc.Save(context.Background(), models.DefaultPreferences("u-1")), ErrStorage)
}
