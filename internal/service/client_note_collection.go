package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/adapter"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/validators"
	"github.com/MKhiriev/go-note-keeper/models"
)

// NoteDefaults are applied to drafts that leave the field empty.
type NoteDefaults struct {
	Folder string
	Color  string
}

type noteCollection struct {
	repo      adapter.NoteRepository
	validator validators.Validator
	defaults  NoteDefaults
	now       func() time.Time
	logger    *logger.Logger

	mu         sync.RWMutex
	notes      []models.Note
	userID     string
	state      models.LoadState
	generation uint64
	cancelLoad context.CancelFunc
	// inFlight holds mutations confirmed while a load is running; they are
	// replayed onto the fetched snapshot.
	inFlight []mutation

	pending *pendingSet
	changes chan struct{}
}

type mutationKind int

const (
	mutationUpsert mutationKind = iota
	mutationReplace
	mutationRemove
)

type mutation struct {
	kind mutationKind
	note models.Note
}

// creatingKey holds the pending slot of CreateNote. Persisted notes never
// carry id 0.
const creatingKey int64 = 0

// NewNoteCollection creates an empty collection backed by repo. now is the
// clock used for timestamps; nil means time.Now.
func NewNoteCollection(repo adapter.NoteRepository, defaults NoteDefaults, now func() time.Time, log *logger.Logger) NoteCollection {
	if now == nil {
		now = time.Now
	}

	return &noteCollection{
		repo:      repo,
		validator: validators.NewNoteValidator(),
		defaults:  defaults,
		now:       now,
		logger:    log,
		state:     models.LoadStateIdle,
		pending:   newPendingSet(),
		changes:   make(chan struct{}, 1),
	}
}

func (c *noteCollection) Load(ctx context.Context, userID string) error {
	if userID == "" {
		return ErrNoActiveUser
	}

	c.mu.Lock()
	if c.cancelLoad != nil {
		c.cancelLoad()
	}
	c.generation++
	gen := c.generation
	loadCtx, cancel := context.WithCancel(ctx)
	c.cancelLoad = cancel
	if c.userID != userID {
		c.notes = nil
	}
	c.userID = userID
	c.state = models.LoadStateLoading
	c.inFlight = nil
	c.mu.Unlock()
	c.notify()
	defer cancel()

	fetched, err := c.repo.FetchAll(loadCtx, userID)

	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.generation {
		return ErrLoadSuperseded
	}
	c.cancelLoad = nil
	replay := c.inFlight
	c.inFlight = nil

	if err != nil {
		c.notes = nil
		c.state = models.LoadStateFailed
		c.notify()

		c.logger.Error().
			Str("func", "noteCollection.Load").
			Str("user_id", userID).
			Err(err).
			Msg("failed to load notes")
		return mapAdapterError(err)
	}

	c.notes = c.adopt(fetched, userID)
	for _, m := range replay {
		c.apply(m)
	}
	c.state = models.LoadStateLoaded
	c.notify()

	c.logger.Debug().
		Str("func", "noteCollection.Load").
		Str("user_id", userID).
		Int("fetched", len(fetched)).
		Int("kept", len(c.notes)).
		Int("replayed", len(replay)).
		Msg("notes loaded")
	return nil
}

// adopt filters a fetched list down to notes the collection can own: notes
// without an id or belonging to another user are dropped, notes without an
// owner are assigned to userID, and a repeated id keeps its first position
// with the last value.
func (c *noteCollection) adopt(fetched []models.Note, userID string) []models.Note {
	out := make([]models.Note, 0, len(fetched))
	index := make(map[int64]int, len(fetched))

	for _, n := range fetched {
		if n.ID == 0 {
			continue
		}
		if n.UserID != "" && n.UserID != userID {
			continue
		}

		n = n.Clone()
		n.UserID = userID
		n.Tags = models.NormalizeTags(n.Tags)

		if i, ok := index[n.ID]; ok {
			out[i] = n
			continue
		}
		index[n.ID] = len(out)
		out = append(out, n)
	}

	return out
}

func (c *noteCollection) CreateNote(ctx context.Context, draft models.Note) (models.Note, error) {
	userID := c.UserID()
	if userID == "" {
		return models.Note{}, ErrNoActiveUser
	}

	release, ok := c.pending.tryAcquire(creatingKey)
	if !ok {
		return models.Note{}, fmt.Errorf("%w: another note is being created", ErrBusy)
	}
	defer release()

	return c.create(ctx, userID, draft)
}

func (c *noteCollection) create(ctx context.Context, userID string, draft models.Note) (models.Note, error) {
	note := draft.Clone()
	note.ID = 0
	if strings.TrimSpace(note.Folder) == "" {
		note.Folder = c.defaults.Folder
	}
	if note.Color == "" {
		note.Color = c.defaults.Color
	}
	note.Tags = models.NormalizeTags(note.Tags)

	now := c.now()
	note.UserID = userID
	note.CreatedAt = now
	note.UpdatedAt = now

	if err := c.validator.Validate(ctx, note); err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	created, err := c.repo.Create(ctx, note)
	if err != nil {
		return models.Note{}, mapAdapterError(err)
	}

	created.UserID = userID
	created.Tags = models.NormalizeTags(created.Tags)
	if created.CreatedAt.IsZero() {
		created.CreatedAt = now
	}
	if created.UpdatedAt.Before(created.CreatedAt) {
		created.UpdatedAt = created.CreatedAt
	}

	c.mu.Lock()
	if c.userID == userID {
		c.record(mutation{kind: mutationUpsert, note: created})
	}
	c.mu.Unlock()
	c.notify()

	return created.Clone(), nil
}

func (c *noteCollection) UpdateNote(ctx context.Context, id int64, patch models.NotePatch) (models.Note, error) {
	userID := c.UserID()
	if userID == "" {
		return models.Note{}, ErrNoActiveUser
	}

	release, ok := c.pending.tryAcquire(id)
	if !ok {
		return models.Note{}, fmt.Errorf("%w: note %d", ErrBusy, id)
	}
	defer release()

	return c.update(ctx, userID, id, patch)
}

// update must run while id is held in the pending set.
func (c *noteCollection) update(ctx context.Context, userID string, id int64, patch models.NotePatch) (models.Note, error) {
	current, ok := c.Note(id)
	if !ok {
		return models.Note{}, fmt.Errorf("%w: note %d", ErrNotFound, id)
	}

	if err := c.validator.Validate(ctx, patch); err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	merged := patch.Apply(current)
	merged.ID = id
	merged.UserID = userID
	merged.CreatedAt = current.CreatedAt
	merged.UpdatedAt = c.touch(current.UpdatedAt)

	if err := c.validator.Validate(ctx, merged); err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	stored, err := c.repo.Update(ctx, id, merged)
	if err != nil {
		return models.Note{}, mapAdapterError(err)
	}

	stored.ID = id
	stored.UserID = userID
	stored.Tags = models.NormalizeTags(stored.Tags)
	if !current.CreatedAt.IsZero() {
		stored.CreatedAt = current.CreatedAt
	}
	if stored.UpdatedAt.Before(merged.UpdatedAt) {
		stored.UpdatedAt = merged.UpdatedAt
	}

	c.mu.Lock()
	if c.userID == userID {
		c.record(mutation{kind: mutationReplace, note: stored})
	}
	c.mu.Unlock()
	c.notify()

	return stored.Clone(), nil
}

func (c *noteCollection) DeleteNote(ctx context.Context, id int64) error {
	userID := c.UserID()
	if userID == "" {
		return ErrNoActiveUser
	}

	release, ok := c.pending.tryAcquire(id)
	if !ok {
		return fmt.Errorf("%w: note %d", ErrBusy, id)
	}
	defer release()

	if err := c.repo.Delete(ctx, id); err != nil {
		if !errors.Is(err, adapter.ErrNotFound) {
			return mapAdapterError(err)
		}
		c.logger.Debug().
			Str("func", "noteCollection.DeleteNote").
			Int64("note_id", id).
			Msg("note already gone on the server, removing locally")
	}

	c.mu.Lock()
	if c.userID == userID {
		c.record(mutation{kind: mutationRemove, note: models.Note{ID: id}})
	}
	c.mu.Unlock()
	c.notify()

	return nil
}

func (c *noteCollection) DuplicateNote(ctx context.Context, id int64) (models.Note, error) {
	userID := c.UserID()
	if userID == "" {
		return models.Note{}, ErrNoActiveUser
	}

	release, ok := c.pending.tryAcquire(id)
	if !ok {
		return models.Note{}, fmt.Errorf("%w: note %d", ErrBusy, id)
	}
	defer release()

	source, ok := c.Note(id)
	if !ok {
		return models.Note{}, fmt.Errorf("%w: note %d", ErrNotFound, id)
	}

	return c.create(ctx, userID, source.Duplicate(c.now()))
}

func (c *noteCollection) ToggleField(ctx context.Context, id int64, field models.ToggleField) (models.Note, error) {
	if !field.Valid() {
		return models.Note{}, fmt.Errorf("%w: %d", ErrInvalidToggleField, field)
	}

	userID := c.UserID()
	if userID == "" {
		return models.Note{}, ErrNoActiveUser
	}

	release, err := c.pending.acquire(ctx, id)
	if err != nil {
		return models.Note{}, err
	}
	defer release()

	current, ok := c.Note(id)
	if !ok {
		return models.Note{}, fmt.Errorf("%w: note %d", ErrNotFound, id)
	}

	return c.update(ctx, userID, id, field.Patch(!field.Get(current)))
}

func (c *noteCollection) Notes() []models.Note {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]models.Note, len(c.notes))
	for i, n := range c.notes {
		out[i] = n.Clone()
	}
	return out
}

func (c *noteCollection) Note(id int64) (models.Note, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i := c.indexOf(id)
	if i < 0 {
		return models.Note{}, false
	}
	return c.notes[i].Clone(), true
}

func (c *noteCollection) State() models.LoadState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

func (c *noteCollection) UserID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.userID
}

func (c *noteCollection) IsPending(id int64) bool {
	return c.pending.has(id)
}

func (c *noteCollection) Changes() <-chan struct{} {
	return c.changes
}

func (c *noteCollection) Clear() {
	c.mu.Lock()
	if c.cancelLoad != nil {
		c.cancelLoad()
		c.cancelLoad = nil
	}
	c.generation++
	c.inFlight = nil
	c.notes = nil
	c.userID = ""
	c.state = models.LoadStateIdle
	c.mu.Unlock()
	c.notify()
}

// touch returns the current time, or prev when the clock reads earlier, so
// UpdatedAt never moves backwards.
func (c *noteCollection) touch(prev time.Time) time.Time {
	now := c.now()
	if now.Before(prev) {
		return prev
	}
	return now
}

func (c *noteCollection) notify() {
	select {
	case c.changes <- struct{}{}:
	default:
	}
}

// record, apply, indexOf, upsert, replace and remove must be called with
// c.mu held.

// record applies m to the collection and, while a load is running, keeps it
// for replay once the snapshot arrives.
func (c *noteCollection) record(m mutation) {
	c.apply(m)
	if c.cancelLoad != nil {
		c.inFlight = append(c.inFlight, mutation{kind: m.kind, note: m.note.Clone()})
	}
}

func (c *noteCollection) apply(m mutation) {
	switch m.kind {
	case mutationUpsert:
		c.upsert(m.note)
	case mutationReplace:
		c.replace(m.note)
	case mutationRemove:
		c.remove(m.note.ID)
	}
}

func (c *noteCollection) indexOf(id int64) int {
	return slices.IndexFunc(c.notes, func(n models.Note) bool { return n.ID == id })
}

func (c *noteCollection) upsert(n models.Note) {
	if i := c.indexOf(n.ID); i >= 0 {
		c.notes[i] = n.Clone()
		return
	}
	c.notes = append(c.notes, n.Clone())
}

// replace overwrites the entry in place. A note removed meanwhile stays
// removed.
func (c *noteCollection) replace(n models.Note) {
	if i := c.indexOf(n.ID); i >= 0 {
		c.notes[i] = n.Clone()
	}
}

func (c *noteCollection) remove(id int64) {
	if i := c.indexOf(id); i >= 0 {
		c.notes = slices.Delete(c.notes, i, i+1)
	}
}
