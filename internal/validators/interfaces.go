// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides input validation for notes, shared by the note
// client (before a request is sent) and the note server (before a note is
// stored).
//
// Usage patterns:
//  1. Inject a Validator into services.
//  2. Call Validate with context, value, and optional field names to restrict
//     the check to those fields.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {
	// Validate validates the provided input and optionally restricts
	// validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
