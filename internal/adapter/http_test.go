// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T, serverURL string) *httpNoteRepository {
	t.Helper()
	repo, err := NewHTTPNoteRepository(config.ClientAdapter{
		HTTPAddress:    serverURL + "/",
		RequestTimeout: 2 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)
	return repo.(*httpNoteRepository)
}

var fixedTime = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

func samplePayload(id int64) models.NotePayload {
	return models.NotePayload{
		ID:        id,
		Title:     "Plan",
		Content:   "body",
		Tags:      []string{"Work"},
		Folder:    "Projects",
		Color:     "#A0E7E5",
		IsPinned:  true,
		CreatedAt: fixedTime.Format(time.RFC3339),
		UpdatedAt: fixedTime.Format(time.RFC3339),
		UserID:    "u-1",
	}
}

// ── constructor ──────────────────────────────────────────────────────────────

func TestNewHTTPNoteRepository_EmptyAddress(t *testing.T) {
	_, err := NewHTTPNoteRepository(config.ClientAdapter{HTTPAddress: "  "}, logger.Nop())
	assert.Error(t, err)
}

// ── FetchAll ─────────────────────────────────────────────────────────────────

func TestFetchAll_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/notes", r.URL.Path)
		assert.Equal(t, "u-1", r.URL.Query().Get("userId"))
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get(TraceIDHeader))

		_ = json.NewEncoder(w).Encode([]models.NotePayload{samplePayload(1), samplePayload(2)})
	}))
	defer srv.Close()

	repo := newTestRepository(t, srv.URL)
	repo.SetToken(" tok ")

	notes, err := repo.FetchAll(context.Background(), "u-1")

	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, int64(1), notes[0].ID)
	assert.Equal(t, "Plan", notes[0].Title)
	assert.True(t, notes[0].CreatedAt.Equal(fixedTime))
	assert.Equal(t, []string{"Work"}, notes[0].Tags)
}

func TestFetchAll_NoTokenNoAuthorizationHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	notes, err := newTestRepository(t, srv.URL).FetchAll(context.Background(), "u-1")

	require.NoError(t, err)
	assert.Empty(t, notes)
}

func TestFetchAll_PropagatesTraceIDFromContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "trace-123", r.Header.Get(TraceIDHeader))
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	ctx := utils.WithTraceID(context.Background(), "trace-123")
	_, err := newTestRepository(t, srv.URL).FetchAll(ctx, "u-1")
	require.NoError(t, err)
}

func TestFetchAll_StatusErrors(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrForbidden},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusConflict, ErrConflict},
		{http.StatusUnprocessableEntity, ErrUnprocessableEntity},
		{http.StatusInternalServerError, ErrInternalServerError},
		{http.StatusBadGateway, ErrBadGateway},
		{http.StatusServiceUnavailable, ErrServiceUnavailable},
		{http.StatusTeapot, ErrUnexpectedStatus},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte("boom"))
			}))
			defer srv.Close()

			_, err := newTestRepository(t, srv.URL).FetchAll(context.Background(), "u-1")
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.Contains(t, err.Error(), "boom")
		})
	}
}

func TestFetchAll_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not":"a list"}`))
	}))
	defer srv.Close()

	_, err := newTestRepository(t, srv.URL).FetchAll(context.Background(), "u-1")
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestFetchAll_MalformedTimestamp(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p := samplePayload(1)
		p.UpdatedAt = "yesterday"
		_ = json.NewEncoder(w).Encode([]models.NotePayload{p})
	}))
	defer srv.Close()

	_, err := newTestRepository(t, srv.URL).FetchAll(context.Background(), "u-1")
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestFetchAll_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := newTestRepository(t, url).FetchAll(context.Background(), "u-1")
	assert.ErrorIs(t, err, ErrTransport)
}

func TestFetchAll_CancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestRepository(t, srv.URL).FetchAll(ctx, "u-1")
	assert.ErrorIs(t, err, ErrTransport)
}

// ── Create ───────────────────────────────────────────────────────────────────

func TestCreate_SendsNoIDAndReturnsServerNote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/notes", r.URL.Path)

		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		var body map[string]any
		require.NoError(t, json.Unmarshal(raw, &body))
		assert.NotContains(t, body, "id")
		assert.Equal(t, "Plan", body["title"])
		assert.Equal(t, "u-1", body["userId"])

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(samplePayload(42))
	}))
	defer srv.Close()

	note, err := samplePayload(7).ToNote()
	require.NoError(t, err)

	created, err := newTestRepository(t, srv.URL).Create(context.Background(), note)

	require.NoError(t, err)
	assert.Equal(t, int64(42), created.ID)
}

func TestCreate_MissingIDIsMalformed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(samplePayload(0))
	}))
	defer srv.Close()

	_, err := newTestRepository(t, srv.URL).Create(context.Background(), models.Note{Title: "x"})
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestCreate_Unprocessable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"error":"folder is required"}`))
	}))
	defer srv.Close()

	_, err := newTestRepository(t, srv.URL).Create(context.Background(), models.Note{})
	assert.ErrorIs(t, err, ErrUnprocessableEntity)
}

// ── Update ───────────────────────────────────────────────────────────────────

func TestUpdate_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/notes/5", r.URL.Path)

		var body models.NotePayload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, int64(5), body.ID)

		body.Title = "Stored"
		_ = json.NewEncoder(w).Encode(body)
	}))
	defer srv.Close()

	updated, err := newTestRepository(t, srv.URL).Update(context.Background(), 5, models.Note{Title: "Plan", Folder: "Work"})

	require.NoError(t, err)
	assert.Equal(t, int64(5), updated.ID)
	assert.Equal(t, "Stored", updated.Title)
}

func TestUpdate_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := newTestRepository(t, srv.URL).Update(context.Background(), 5, models.Note{})
	assert.ErrorIs(t, err, ErrNotFound)
}

// ── Delete ───────────────────────────────────────────────────────────────────

func TestDelete_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/notes/9", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	assert.NoError(t, newTestRepository(t, srv.URL).Delete(context.Background(), 9))
}

func TestDelete_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	err := newTestRepository(t, srv.URL).Delete(context.Background(), 9)
	assert.ErrorIs(t, err, ErrNotFound)
}
