package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/go-resty/resty/v2"
)

// TraceIDHeader carries the request trace identifier to the note service.
const TraceIDHeader = "X-Trace-ID"

const notesPath = "/api/notes"

type httpNoteRepository struct {
	client  *utils.HTTPClient
	traceID *utils.UUIDGenerator

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPNoteRepository constructs the REST implementation of
// [NoteRepository] bound to adapterCfg.HTTPAddress.
func NewHTTPNoteRepository(adapterCfg config.ClientAdapter, log *logger.Logger) (NoteRepository, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(adapterCfg.HTTPAddress), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("invalid adapter http address: empty address")
	}

	return &httpNoteRepository{
		client:  utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		traceID: utils.NewUUIDGenerator(),
		logger:  log,
	}, nil
}

// SetToken implements [NoteRepository].
func (h *httpNoteRepository) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [NoteRepository].
func (h *httpNoteRepository) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// FetchAll implements [NoteRepository] via GET /api/notes?userId=<id>.
func (h *httpNoteRepository) FetchAll(ctx context.Context, userID string) ([]models.Note, error) {
	resp, err := h.request(ctx).
		SetQueryParam("userId", userID).
		Get(notesPath)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch notes: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logFailure("FetchAll", resp, err)
		return nil, err
	}

	var payloads []models.NotePayload
	if err = json.Unmarshal(resp.Body(), &payloads); err != nil {
		return nil, fmt.Errorf("%w: decode notes: %w", ErrMalformedResponse, err)
	}

	notes := make([]models.Note, 0, len(payloads))
	for _, p := range payloads {
		n, err := p.ToNote()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
		}
		notes = append(notes, n)
	}

	return notes, nil
}

// Create implements [NoteRepository] via POST /api/notes. The request body
// never carries an id.
func (h *httpNoteRepository) Create(ctx context.Context, note models.Note) (models.Note, error) {
	payload := models.NewNotePayload(note)
	payload.ID = 0

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post(notesPath)
	if err != nil {
		return models.Note{}, fmt.Errorf("%w: create note: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logFailure("Create", resp, err)
		return models.Note{}, err
	}

	created, err := decodeNote(resp)
	if err != nil {
		return models.Note{}, err
	}
	if created.ID == 0 {
		return models.Note{}, fmt.Errorf("%w: created note has no id", ErrMalformedResponse)
	}

	return created, nil
}

// Update implements [NoteRepository] via PUT /api/notes/<id>.
func (h *httpNoteRepository) Update(ctx context.Context, id int64, note models.Note) (models.Note, error) {
	payload := models.NewNotePayload(note)
	payload.ID = id

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Put(notePath(id))
	if err != nil {
		return models.Note{}, fmt.Errorf("%w: update note %d: %w", ErrTransport, id, err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logFailure("Update", resp, err)
		return models.Note{}, err
	}

	updated, err := decodeNote(resp)
	if err != nil {
		return models.Note{}, err
	}
	if updated.ID == 0 {
		updated.ID = id
	}

	return updated, nil
}

// Delete implements [NoteRepository] via DELETE /api/notes/<id>.
func (h *httpNoteRepository) Delete(ctx context.Context, id int64) error {
	resp, err := h.request(ctx).Delete(notePath(id))
	if err != nil {
		return fmt.Errorf("%w: delete note %d: %w", ErrTransport, id, err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logFailure("Delete", resp, err)
		return err
	}

	return nil
}

// request prepares a request carrying the bearer token, if any, and a trace
// id taken from ctx or freshly generated.
func (h *httpNoteRepository) request(ctx context.Context) *resty.Request {
	traceID, ok := utils.GetTraceIDFromContext(ctx)
	if !ok {
		traceID = h.traceID.Generate()
	}

	req := h.client.R().
		SetContext(ctx).
		SetHeader(TraceIDHeader, traceID)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func (h *httpNoteRepository) logFailure(fn string, resp *resty.Response, err error) {
	h.logger.Warn().
		Str("func", "httpNoteRepository."+fn).
		Str("trace_id", resp.Request.Header.Get(TraceIDHeader)).
		Int("status", resp.StatusCode()).
		Err(err).
		Msg("note service request failed")
}

func decodeNote(resp *resty.Response) (models.Note, error) {
	var payload models.NotePayload
	if err := json.Unmarshal(resp.Body(), &payload); err != nil {
		return models.Note{}, fmt.Errorf("%w: decode note: %w", ErrMalformedResponse, err)
	}

	note, err := payload.ToNote()
	if err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	return note, nil
}

func notePath(id int64) string {
	return notesPath + "/" + strconv.FormatInt(id, 10)
}
