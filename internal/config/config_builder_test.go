package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, data, 0o600))
	return p
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourcesOverride verifies that a later non-zero field wins and
// a later zero field keeps the earlier value.
func TestBuild_LaterSourcesOverride(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{
			Adapter: Adapter{HTTPAddress: "http://default", RequestTimeout: time.Second},
			Notes:   Notes{DefaultFolder: "Personal"},
		},
		&StructuredConfig{
			Adapter: Adapter{HTTPAddress: "http://override"},
		},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "http://override", cfg.Adapter.HTTPAddress)
	assert.Equal(t, time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "Personal", cfg.Notes.DefaultFolder)
}

// ── withDefaults ──────────────────────────────────────────────────────────────

func TestWithDefaults_NilIgnored(t *testing.T) {
	b := newConfigBuilder().withDefaults(nil)
	assert.Empty(t, b.configs)
}

// ── withDotEnv / withEnv ──────────────────────────────────────────────────────

func TestWithDotEnv_MissingFileIsNotAnError(t *testing.T) {
	b := newConfigBuilder().withDotEnv(filepath.Join(t.TempDir(), ".env"))
	assert.NoError(t, b.err)
	assert.Empty(t, b.dotEnv)
}

func TestWithEnv_RealEnvironmentBeatsDotEnv(t *testing.T) {
	p := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(p, []byte("NOTES_DEFAULT_FOLDER=Journal\nNOTES_DEFAULT_COLOR=#000000\n"), 0o600))
	t.Setenv("NOTES_DEFAULT_COLOR", "#FFFFFF")

	cfg, err := newConfigBuilder().withDotEnv(p).withEnv().build()

	require.NoError(t, err)
	assert.Equal(t, "Journal", cfg.Notes.DefaultFolder)
	assert.Equal(t, "#FFFFFF", cfg.Notes.DefaultColor)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_UnknownFlagRecordsError(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-no-such-flag"})
	assert.Error(t, b.err)

	_, err := b.build()
	assert.Error(t, err)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withJSON()
	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithJSON_OverridesFlags(t *testing.T) {
	p := writeTempJSONConfig(t, map[string]any{
		"adapter": map[string]any{"http_address": "http://from-json:9000"},
	})

	cfg, err := newConfigBuilder().
		withFlags([]string{"-r", "http://from-flags:8000", "-c", p}).
		withJSON().
		build()

	require.NoError(t, err)
	assert.Equal(t, "http://from-json:9000", cfg.Adapter.HTTPAddress)
}

func TestWithJSON_MissingFileRecordsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: filepath.Join(t.TempDir(), "absent.json")})

	b.withJSON()
	assert.Error(t, b.err)
}

// ── GetClientConfig / GetServerConfig ─────────────────────────────────────────

func TestGetClientConfig_DefaultsAreValid(t *testing.T) {
	cfg, err := GetClientConfig(nil)

	require.NoError(t, err)
	assert.Equal(t, "Personal", cfg.Notes.DefaultFolder)
	assert.Equal(t, "#FFC1E3", cfg.Notes.DefaultColor)
	assert.Equal(t, "http://localhost:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 10*time.Second, cfg.Adapter.RequestTimeout)
}

func TestGetClientConfig_FlagsApplied(t *testing.T) {
	cfg, err := GetClientConfig([]string{
		"-r", "https://notes.example.com",
		"-user", "u-1",
		"-default-folder", "Journal",
		"-refresh-interval", "45s",
	})

	require.NoError(t, err)
	assert.Equal(t, "https://notes.example.com", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "u-1", cfg.App.UserID)
	assert.Equal(t, "Journal", cfg.Notes.DefaultFolder)
	assert.Equal(t, 45*time.Second, cfg.Workers.RefreshInterval)
}

func TestGetServerConfig_RequiresDSN(t *testing.T) {
	_, err := GetServerConfig(nil)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

func TestGetServerConfig_FromEnv(t *testing.T) {
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://u:p@localhost/notes")
	t.Setenv("APP_TOKEN_SIGN_KEY", "secret")

	cfg, err := GetServerConfig([]string{"-a", ":9090"})

	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Server.HTTPAddress)
	assert.True(t, cfg.AuthEnabled())
	assert.Equal(t, "go-note-keeper", cfg.App.TokenIssuer)
	assert.Equal(t, 24*time.Hour, cfg.App.TokenDuration)
}
