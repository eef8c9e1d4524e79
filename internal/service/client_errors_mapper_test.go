package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-note-keeper/internal/adapter"
	"github.com/stretchr/testify/assert"
)

func TestMapAdapterError(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want error
	}{
		{"bad request", adapter.ErrBadRequest, ErrValidation},
		{"unprocessable", adapter.ErrUnprocessableEntity, ErrValidation},
		{"not found", adapter.ErrNotFound, ErrNotFound},
		{"unauthorized", adapter.ErrUnauthorized, ErrNetwork},
		{"forbidden", adapter.ErrForbidden, ErrNetwork},
		{"conflict", adapter.ErrConflict, ErrNetwork},
		{"server error", adapter.ErrInternalServerError, ErrNetwork},
		{"unexpected", adapter.ErrUnexpectedStatus, ErrNetwork},
		{"transport", adapter.ErrTransport, ErrNetwork},
		{"malformed", adapter.ErrMalformedResponse, ErrNetwork},
		{"context", context.DeadlineExceeded, ErrNetwork},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapAdapterError(tt.in)
			assert.ErrorIs(t, got, tt.want)
			assert.ErrorIs(t, got, tt.in)
		})
	}
}

func TestMapAdapterError_Nil(t *testing.T) {
	assert.NoError(t, mapAdapterError(nil))
}

func TestMapAdapterError_ClassesAreExclusive(t *testing.T) {
	err := mapAdapterError(adapter.ErrNotFound)
	assert.False(t, errors.Is(err, ErrNetwork))
	assert.False(t, errors.Is(err, ErrValidation))
}
