package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/mock"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testSignKey = "test-secret"
	testIssuer  = "go-note-keeper"
)

var testTime = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

type testServer struct {
	notes   *mock.MockNoteService
	appInfo *mock.MockAppInfoService
	handler *Handler
	router  http.Handler
}

func newTestServer(t *testing.T, auth config.ServerApp) testServer {
	t.Helper()
	ctrl := gomock.NewController(t)
	s := testServer{
		notes:   mock.NewMockNoteService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
	}
	s.handler = NewHandler(&service.Services{
		NoteService:    s.notes,
		AppInfoService: s.appInfo,
	}, auth, logger.Nop())
	s.router = s.handler.Init()
	return s
}

func authConfig() config.ServerApp {
	return config.ServerApp{TokenSignKey: testSignKey, TokenIssuer: testIssuer, TokenDuration: time.Hour}
}

func bearer(t *testing.T, userID string) string {
	t.Helper()
	token, err := utils.GenerateJWTToken(testIssuer, userID, time.Hour, testSignKey)
	require.NoError(t, err)
	return "Bearer " + token.SignedString
}

func (s testServer) do(t *testing.T, method, target string, body any, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	for k, v := range header {
		req.Header.Set(k, v)
	}

	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)
	return rr
}

func sampleNote(id int64) models.Note {
	return models.Note{
		ID:        id,
		Title:     "Plan",
		Tags:      []string{"Work"},
		Folder:    "Projects",
		UserID:    "u-1",
		CreatedAt: testTime,
		UpdatedAt: testTime,
	}
}

// ── GET /api/notes ───────────────────────────────────────────────────────────

func TestListNotes(t *testing.T) {
	s := newTestServer(t, config.ServerApp{})
	s.notes.EXPECT().List(gomock.Any(), "u-1").Return([]models.Note{sampleNote(1), sampleNote(2)}, nil)

	rr := s.do(t, http.MethodGet, "/api/notes?userId=u-1", nil, nil)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var got []models.NotePayload
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "2024-03-01T10:00:00Z", got[0].CreatedAt)
}

func TestListNotes_EmptyIsArray(t *testing.T) {
	s := newTestServer(t, config.ServerApp{})
	s.notes.EXPECT().List(gomock.Any(), "u-1").Return(nil, nil)

	rr := s.do(t, http.MethodGet, "/api/notes?userId=u-1", nil, nil)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestListNotes_ServiceErrors(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{service.ErrNoUserID, http.StatusBadRequest},
		{service.ErrForbidden, http.StatusForbidden},
		{service.ErrStorage, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			s := newTestServer(t, config.ServerApp{})
			s.notes.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, tt.err)

			rr := s.do(t, http.MethodGet, "/api/notes", nil, nil)

			assert.Equal(t, tt.want, rr.Code)
			assert.Contains(t, rr.Body.String(), `"error"`)
		})
	}
}

func TestListNotes_AuthenticatedCallerIsDefaultUser(t *testing.T) {
	s := newTestServer(t, authConfig())
	s.notes.EXPECT().List(gomock.Any(), "u-9").
		DoAndReturn(func(ctx context.Context, userID string) ([]models.Note, error) {
			caller, ok := utils.GetUserIDFromContext(ctx)
			assert.True(t, ok)
			assert.Equal(t, "u-9", caller)
			return nil, nil
		})

	rr := s.do(t, http.MethodGet, "/api/notes", nil, map[string]string{"Authorization": bearer(t, "u-9")})

	assert.Equal(t, http.StatusOK, rr.Code)
}

// ── POST /api/notes ──────────────────────────────────────────────────────────

func TestCreateNote(t *testing.T) {
	s := newTestServer(t, config.ServerApp{})
	s.notes.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n models.Note) (models.Note, error) {
			assert.Equal(t, "Plan", n.Title)
			assert.Equal(t, testTime, n.CreatedAt)
			n.ID = 42
			return n, nil
		})

	body := models.NewNotePayload(sampleNote(0))
	rr := s.do(t, http.MethodPost, "/api/notes", body, nil)

	require.Equal(t, http.StatusCreated, rr.Code)
	var got models.NotePayload
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, int64(42), got.ID)
}

func TestCreateNote_BadBodies(t *testing.T) {
	s := newTestServer(t, config.ServerApp{})

	req := httptest.NewRequest(http.MethodPost, "/api/notes", bytes.NewBufferString("{"))
	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	payload := models.NewNotePayload(sampleNote(0))
	payload.CreatedAt = "yesterday"
	rr = s.do(t, http.MethodPost, "/api/notes", payload, nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCreateNote_ValidationFailure(t *testing.T) {
	s := newTestServer(t, config.ServerApp{})
	s.notes.EXPECT().Create(gomock.Any(), gomock.Any()).Return(models.Note{}, service.ErrValidation)

	rr := s.do(t, http.MethodPost, "/api/notes", models.NewNotePayload(sampleNote(0)), nil)

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
}

// ── PUT /api/notes/{id} ──────────────────────────────────────────────────────

func TestUpdateNote(t *testing.T) {
	s := newTestServer(t, config.ServerApp{})
	s.notes.EXPECT().Update(gomock.Any(), int64(5), gomock.Any()).
		DoAndReturn(func(_ context.Context, id int64, n models.Note) (models.Note, error) {
			n.ID = id
			return n, nil
		})

	rr := s.do(t, http.MethodPut, "/api/notes/5", models.NewNotePayload(sampleNote(5)), nil)

	require.Equal(t, http.StatusOK, rr.Code)
	var got models.NotePayload
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, int64(5), got.ID)
}

func TestUpdateNote_NotFound(t *testing.T) {
	s := newTestServer(t, config.ServerApp{})
	s.notes.EXPECT().Update(gomock.Any(), int64(5), gomock.Any()).Return(models.Note{}, service.ErrNotFound)

	rr := s.do(t, http.MethodPut, "/api/notes/5", models.NewNotePayload(sampleNote(5)), nil)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestUpdateNote_BadID(t *testing.T) {
	s := newTestServer(t, config.ServerApp{})

	for _, id := range []string{"abc", "0", "-4"} {
		rr := s.do(t, http.MethodPut, "/api/notes/"+id, models.NewNotePayload(sampleNote(1)), nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code, id)
	}
}

// ── DELETE /api/notes/{id} ───────────────────────────────────────────────────

func TestDeleteNote(t *testing.T) {
	s := newTestServer(t, config.ServerApp{})
	s.notes.EXPECT().Delete(gomock.Any(), int64(9)).Return(nil)

	rr := s.do(t, http.MethodDelete, "/api/notes/9", nil, nil)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Body.String())
}

func TestDeleteNote_Errors(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{service.ErrNotFound, http.StatusNotFound},
		{service.ErrForbidden, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			s := newTestServer(t, config.ServerApp{})
			s.notes.EXPECT().Delete(gomock.Any(), int64(9)).Return(tt.err)

			rr := s.do(t, http.MethodDelete, "/api/notes/9", nil, nil)
			assert.Equal(t, tt.want, rr.Code)
		})
	}
}

// ── GET /api/version ─────────────────────────────────────────────────────────

func TestGetServerVersion(t *testing.T) {
	s := newTestServer(t, authConfig())
	s.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.4.0")

	rr := s.do(t, http.MethodGet, "/api/version", nil, nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/plain", rr.Header().Get("Content-Type"))
	assert.Equal(t, "1.4.0", rr.Body.String())
}

// ── routing ──────────────────────────────────────────────────────────────────

func TestRoutes_UnknownMethodIsNotFound(t *testing.T) {
	s := newTestServer(t, config.ServerApp{})

	rr := s.do(t, http.MethodPatch, "/api/version", nil, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = s.do(t, http.MethodGet, "/api/unknown", nil, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestRoutes_TraceIDEchoed(t *testing.T) {
	s := newTestServer(t, config.ServerApp{})
	s.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.0.0")

	rr := s.do(t, http.MethodGet, "/api/version", nil, map[string]string{traceIDHeader: "trace-1"})

	assert.Equal(t, "trace-1", rr.Header().Get(traceIDHeader))
}
