// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/adapter"
)

// mapAdapterError classifies an adapter error into a service error class.
// The result wraps both the class and err.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrBadRequest), errors.Is(err, adapter.ErrUnprocessableEntity):
		return fmt.Errorf("%w: %w", ErrValidation, err)
	case errors.Is(err, adapter.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	default:
		return fmt.Errorf("%w: %w", ErrNetwork, err)
	}
}
