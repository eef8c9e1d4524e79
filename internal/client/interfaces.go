// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/client_mock.go -package=mock

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run() error
}

// UI is the interactive front end the client drives.
type UI interface {
	// LoginFlow asks the user to sign in and returns the opened session.
	// userID prefills the sign-in form.
	LoginFlow(ctx context.Context, userID string) (models.Session, error)

	// MainLoop shows the notes of session until the user quits or logs
	// out, and reports which of the two happened.
	MainLoop(ctx context.Context, session models.Session) (logout bool, err error)
}
