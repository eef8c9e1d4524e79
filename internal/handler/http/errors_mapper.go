package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/store"
)

var errorStatusMap = []struct {
	target error
	status int
}{
	{service.ErrNoUserID, http.StatusBadRequest},
	{service.ErrValidation, http.StatusUnprocessableEntity},
	{service.ErrForbidden, http.StatusForbidden},
	{service.ErrNotFound, http.StatusNotFound},
	{store.ErrTemporarilyUnavailable, http.StatusServiceUnavailable},
	{service.ErrStorage, http.StatusInternalServerError},
}

// statusFromError picks the status of the first matching class. Order
// matters: a storage error may wrap a more specific store sentinel.
func statusFromError(err error) int {
	for _, e := range errorStatusMap {
		if errors.Is(err, e.target) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}
