package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	jsonBody := `{
		"app": {
			"token": "tok",
			"user_id": "u-1",
			"token_sign_key": "jwt_secret",
			"token_issuer": "test_issuer",
			"token_duration": "1h"
		},
		"server": { "http_address": "localhost:8080", "request_timeout": "30s" },
		"adapter": { "http_address": "http://localhost:8080", "request_timeout": 5000000000 },
		"storage": { "db": { "dsn": "notes.db" } },
		"workers": { "refresh_interval": "1m" },
		"notes": { "default_folder": "Journal", "default_color": "#FFAEBC" },
		"catalog": { "path": "catalog.yaml" },
		"log": { "file": "client.log" }
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	cfg, err := parseJSON(p)
	require.NoError(t, err)

	assert.Equal(t, "tok", cfg.App.Token)
	assert.Equal(t, "u-1", cfg.App.UserID)
	assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
	assert.Equal(t, "test_issuer", cfg.App.TokenIssuer)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "http://localhost:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "notes.db", cfg.Storage.DB.DSN)
	assert.Equal(t, time.Minute, cfg.Workers.RefreshInterval)
	assert.Equal(t, "Journal", cfg.Notes.DefaultFolder)
	assert.Equal(t, "#FFAEBC", cfg.Notes.DefaultColor)
	assert.Equal(t, "catalog.yaml", cfg.Catalog.Path)
	assert.Equal(t, "client.log", cfg.Log.FilePath)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"app":`), 0o600))

	_, err := parseJSON(p)
	assert.Error(t, err)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		input   string
		want    time.Duration
		wantErr bool
	}{
		{`"1h30m"`, 90 * time.Minute, false},
		{`1000`, 1000, false},
		{`"soon"`, 0, true},
		{`true`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalJSON([]byte(tt.input))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := Duration(90 * time.Second).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(b))
}
