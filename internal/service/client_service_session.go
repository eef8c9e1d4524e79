package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/adapter"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
)

type clientSessionService struct {
	sessions store.SessionRepository
	remote   adapter.NoteRepository
	notes    NoteCollection
	now      func() time.Time
	logger   *logger.Logger

	mu      sync.RWMutex
	current models.Session
}

// NewClientSessionService wires the session lifecycle: the token goes to
// remote, a change of user or a logout clears notes.
func NewClientSessionService(sessions store.SessionRepository, remote adapter.NoteRepository, notes NoteCollection, log *logger.Logger) ClientSessionService {
	return &clientSessionService{
		sessions: sessions,
		remote:   remote,
		notes:    notes,
		now:      time.Now,
		logger:   log,
	}
}

func (s *clientSessionService) Start(ctx context.Context, token, userID string) (models.Session, error) {
	token = strings.TrimSpace(token)
	userID = strings.TrimSpace(userID)

	if token != "" {
		subject, err := utils.ParseUserIDFromJWT(token)
		if err != nil {
			return models.Session{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
		}
		if userID != "" && userID != subject {
			return models.Session{}, fmt.Errorf("%w: token belongs to %q, not %q", ErrInvalidToken, subject, userID)
		}
		userID = subject
	}
	if userID == "" {
		return models.Session{}, ErrNoActiveUser
	}

	session := models.Session{UserID: userID, Token: token, CreatedAt: s.now()}
	if err := s.sessions.Save(ctx, session); err != nil {
		return models.Session{}, fmt.Errorf("%w: save session: %w", ErrStorage, err)
	}

	s.open(session)

	s.logger.Info().
		Str("func", "clientSessionService.Start").
		Str("user_id", userID).
		Bool("with_token", token != "").
		Msg("session started")
	return session, nil
}

func (s *clientSessionService) Restore(ctx context.Context) (models.Session, error) {
	session, err := s.sessions.Load(ctx)
	if errors.Is(err, store.ErrSessionNotFound) {
		return models.Session{}, ErrNoActiveUser
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: load session: %w", ErrStorage, err)
	}
	if session.IsZero() {
		return models.Session{}, ErrNoActiveUser
	}

	s.open(session)

	s.logger.Debug().
		Str("func", "clientSessionService.Restore").
		Str("user_id", session.UserID).
		Msg("session restored")
	return session, nil
}

// open makes session the current one. Notes of a previous user are dropped.
func (s *clientSessionService) open(session models.Session) {
	s.mu.Lock()
	previous := s.current
	s.current = session
	s.mu.Unlock()

	if previous.UserID != session.UserID {
		s.notes.Clear()
	}
	s.remote.SetToken(session.Token)
}

func (s *clientSessionService) Current() (models.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current, !s.current.IsZero()
}

// Logout forgets the session in memory first, so a failing delete still
// leaves the client signed out.
func (s *clientSessionService) Logout(ctx context.Context) error {
	s.mu.Lock()
	userID := s.current.UserID
	s.current = models.Session{}
	s.mu.Unlock()

	s.notes.Clear()
	s.remote.SetToken("")

	if err := s.sessions.Delete(ctx); err != nil {
		return fmt.Errorf("%w: delete session: %w", ErrStorage, err)
	}

	s.logger.Info().
		Str("func", "clientSessionService.Logout").
		Str("user_id", userID).
		Msg("session closed")
	return nil
}
