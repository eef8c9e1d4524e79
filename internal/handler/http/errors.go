// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors written by the handlers and the authentication middleware.
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidToken covers a malformed header as well as a token that
	// fails signature, issuer or expiry checks.
	ErrInvalidToken = errors.New("invalid bearer token")

	ErrInvalidNoteID = errors.New("note id must be a positive integer")
)
