// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spyLoader counts Load calls and records the last user id.
type spyLoader struct {
	calls atomic.Int64
	err   error

	mu       sync.Mutex
	lastUser string
}

func (s *spyLoader) Load(_ context.Context, userID string) error {
	s.calls.Add(1)
	s.mu.Lock()
	s.lastUser = userID
	s.mu.Unlock()
	return s.err
}

func (s *spyLoader) user() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastUser
}

// ── Start / Stop ─────────────────────────────────────────────────────────────

func TestNoteRefreshJob_Start_ReloadsPeriodically(t *testing.T) {
	spy := &spyLoader{}
	job := NewNoteRefreshJob(spy, logger.Nop())

	job.Start(context.Background(), "u-1", 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	assert.GreaterOrEqual(t, spy.calls.Load(), int64(3))
	assert.Equal(t, "u-1", spy.user())
}

func TestNoteRefreshJob_Stop_StopsGoroutine(t *testing.T) {
	spy := &spyLoader{}
	job := NewNoteRefreshJob(spy, logger.Nop())

	job.Start(context.Background(), "u-1", 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	afterStop := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, afterStop, spy.calls.Load())
}

func TestNoteRefreshJob_Stop_WithoutStart(t *testing.T) {
	job := NewNoteRefreshJob(&spyLoader{}, logger.Nop())

	assert.NotPanics(t, func() {
		job.Stop()
		job.Stop()
	})
}

func TestNoteRefreshJob_DisabledInterval(t *testing.T) {
	for _, interval := range []time.Duration{0, -time.Second} {
		spy := &spyLoader{}
		job := NewNoteRefreshJob(spy, logger.Nop())

		job.Start(context.Background(), "u-1", interval)
		time.Sleep(20 * time.Millisecond)
		job.Stop()

		assert.Zero(t, spy.calls.Load(), "interval %s", interval)
	}
}

func TestNoteRefreshJob_NoUser(t *testing.T) {
	spy := &spyLoader{}
	job := NewNoteRefreshJob(spy, logger.Nop())

	job.Start(context.Background(), "", 5*time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	job.Stop()

	assert.Zero(t, spy.calls.Load())
}

func TestNoteRefreshJob_Restart_SwitchesUser(t *testing.T) {
	spy := &spyLoader{}
	job := NewNoteRefreshJob(spy, logger.Nop())

	job.Start(context.Background(), "u-1", 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	require.Positive(t, spy.calls.Load())

	job.Start(context.Background(), "u-2", 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	assert.Equal(t, "u-2", spy.user())
}

func TestNoteRefreshJob_ContextCancel(t *testing.T) {
	job := NewNoteRefreshJob(&spyLoader{}, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())

	job.Start(ctx, "u-1", 10*time.Millisecond)
	cancel()

	done := make(chan struct{})
	go func() {
		job.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop hung after context cancellation")
	}
}

func TestNoteRefreshJob_LoadError_KeepsRunning(t *testing.T) {
	spy := &spyLoader{err: ErrNetwork}
	job := NewNoteRefreshJob(spy, logger.Nop())

	job.Start(context.Background(), "u-1", 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	assert.GreaterOrEqual(t, spy.calls.Load(), int64(3))
}
