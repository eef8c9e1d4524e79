// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport-layer client of the remote note
// service.
//
// The primary abstraction is [NoteRepository], which decouples the note
// collection from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPNoteRepository]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrUnprocessableEntity] for 422).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/note_repository_mock.go -package=mock

// NoteRepository is the remote persistence boundary for notes. Every call is
// one request: there are no retries and no caching.
type NoteRepository interface {
	// SetToken stores the bearer token attached to all subsequent requests.
	// An empty token sends no Authorization header.
	SetToken(token string)

	// Token returns the bearer token currently held by the repository.
	Token() string

	// FetchAll returns every note owned by userID, in no particular order.
	FetchAll(ctx context.Context, userID string) ([]models.Note, error)

	// Create persists a new note. The ID of note is not sent; the returned
	// note carries the server-assigned ID and timestamps.
	Create(ctx context.Context, note models.Note) (models.Note, error)

	// Update fully replaces the note identified by id and returns the stored
	// version. Returns [ErrNotFound] (wrapped) when id does not exist.
	Update(ctx context.Context, id int64, note models.Note) (models.Note, error)

	// Delete removes the note identified by id. Returns [ErrNotFound]
	// (wrapped) when id does not exist.
	Delete(ctx context.Context, id int64) error
}
