package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"slices"
	"sync"
	"testing"

	"github.com/MKhiriev/go-note-keeper/internal/adapter"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryNoteRepository keeps notes server-side in a map. echoID makes the
// next Create answer with an id that already exists, and repeatOnFetch makes
// FetchAll list the first note twice.
type memoryNoteRepository struct {
	mu            sync.Mutex
	token         string
	lastID        int64
	notes         map[int64]models.Note
	echoID        int64
	repeatOnFetch bool
}

func newMemoryNoteRepository() *memoryNoteRepository {
	return &memoryNoteRepository{notes: make(map[int64]models.Note)}
}

func (r *memoryNoteRepository) SetToken(token string) { r.token = token }

func (r *memoryNoteRepository) Token() string { return r.token }

func (r *memoryNoteRepository) FetchAll(_ context.Context, userID string) ([]models.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	keys := make([]int64, 0, len(r.notes))
	for id := range r.notes {
		keys = append(keys, id)
	}
	slices.Sort(keys)

	out := make([]models.Note, 0, len(keys)+1)
	for _, id := range keys {
		if n := r.notes[id]; n.UserID == userID {
			out = append(out, n.Clone())
		}
	}
	if r.repeatOnFetch && len(out) > 0 {
		out = append(out, out[0].Clone())
	}
	return out, nil
}

func (r *memoryNoteRepository) Create(_ context.Context, note models.Note) (models.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.echoID != 0 {
		note.ID, r.echoID = r.echoID, 0
	} else {
		r.lastID++
		note.ID = r.lastID
	}
	r.notes[note.ID] = note.Clone()
	return note, nil
}

func (r *memoryNoteRepository) Update(_ context.Context, id int64, note models.Note) (models.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.notes[id]; !ok {
		return models.Note{}, fmt.Errorf("%w: note %d", adapter.ErrNotFound, id)
	}
	note.ID = id
	r.notes[id] = note.Clone()
	return note, nil
}

func (r *memoryNoteRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.notes[id]; !ok {
		return fmt.Errorf("%w: note %d", adapter.ErrNotFound, id)
	}
	delete(r.notes, id)
	return nil
}

func (r *memoryNoteRepository) ids() []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]int64, 0, len(r.notes))
	for id := range r.notes {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}

// TestNoteCollection_IdentityUniquenessOverRandomSequences drives the
// collection through seeded random mixes of loads, creates (some answered
// with an existing id), duplicates, updates, toggles and deletes. After every
// step each id appears at most once and every note belongs to the user.
func TestNoteCollection_IdentityUniquenessOverRandomSequences(t *testing.T) {
	for seed := uint64(1); seed <= 8; seed++ {
		t.Run(fmt.Sprintf("seed=%d", seed), func(t *testing.T) {
			rng := rand.New(rand.NewPCG(seed, seed*31))
			repo := newMemoryNoteRepository()
			c := NewNoteCollection(repo, testDefaults(), fixedClock(t0), logger.Nop())
			ctx := context.Background()

			require.NoError(t, c.Load(ctx, testUser))

			pick := func() (int64, bool) {
				notes := c.Notes()
				if len(notes) == 0 {
					return 0, false
				}
				return notes[rng.IntN(len(notes))].ID, true
			}

			for step := range 200 {
				var op string
				switch rng.IntN(7) {
				case 0:
					op = "load"
					repo.repeatOnFetch = rng.IntN(2) == 0
					require.NoError(t, c.Load(ctx, testUser))
				case 1:
					op = "create"
					_, err := c.CreateNote(ctx, models.Note{Title: fmt.Sprintf("n%d", step)})
					require.NoError(t, err)
				case 2:
					op = "create-echo"
					if id, ok := pick(); ok {
						repo.echoID = id
					}
					_, err := c.CreateNote(ctx, models.Note{Title: fmt.Sprintf("e%d", step)})
					require.NoError(t, err)
				case 3:
					op = "duplicate"
					if id, ok := pick(); ok {
						_, err := c.DuplicateNote(ctx, id)
						require.NoError(t, err)
					}
				case 4:
					op = "update"
					if id, ok := pick(); ok {
						_, err := c.UpdateNote(ctx, id, models.NotePatch{Title: ptr(fmt.Sprintf("u%d", step))})
						require.NoError(t, err)
					}
				case 5:
					op = "toggle"
					if id, ok := pick(); ok {
						_, err := c.ToggleField(ctx, id, models.FieldFavorite)
						require.NoError(t, err)
					}
				case 6:
					op = "delete"
					if id, ok := pick(); ok {
						require.NoError(t, c.DeleteNote(ctx, id))
					}
				}

				notes := c.Notes()
				seen := make(map[int64]bool, len(notes))
				for _, n := range notes {
					require.NotZero(t, n.ID, "step %d (%s)", step, op)
					require.False(t, seen[n.ID], "step %d (%s): id %d listed twice", step, op, n.ID)
					require.Equal(t, testUser, n.UserID, "step %d (%s)", step, op)
					seen[n.ID] = true
				}
			}

			// Local and remote agree on which notes exist.
			local := ids(c.Notes())
			slices.Sort(local)
			assert.Equal(t, repo.ids(), local)
		})
	}
}
