package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
)

// noteLoader is the part of NoteCollection the refresh job drives.
type noteLoader interface {
	Load(ctx context.Context, userID string) error
}

type noteRefreshJob struct {
	loader noteLoader
	logger *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewNoteRefreshJob creates a job that reloads loader on a ticker. The job is
// idle until Start is called.
func NewNoteRefreshJob(loader noteLoader, log *logger.Logger) NoteRefreshJob {
	return &noteRefreshJob{loader: loader, logger: log}
}

// Start implements NoteRefreshJob. The goroutine exits when ctx is cancelled
// or Stop is called.
func (j *noteRefreshJob) Start(ctx context.Context, userID string, interval time.Duration) {
	j.Stop()

	if interval <= 0 || userID == "" {
		return
	}

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.refresh(jobCtx, userID)
			}
		}
	}()
}

func (j *noteRefreshJob) refresh(ctx context.Context, userID string) {
	err := j.loader.Load(ctx, userID)
	if err == nil || errors.Is(err, ErrLoadSuperseded) || ctx.Err() != nil {
		return
	}

	j.logger.Warn().
		Str("func", "noteRefreshJob.refresh").
		Str("user_id", userID).
		Err(err).
		Msg("background reload failed")
}

// Stop implements NoteRefreshJob. Safe to call when the job is not running.
func (j *noteRefreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
