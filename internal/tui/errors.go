package tui

import (
	"errors"

	"github.com/MKhiriev/go-note-keeper/internal/app"
	"github.com/MKhiriev/go-note-keeper/internal/service"
)

// ErrUserQuit is returned by the flows when the user leaves the program.
var ErrUserQuit = errors.New("user quit")

var errorMessages = []struct {
	target  error
	message string
}{
	{service.ErrBusy, app.MsgNoteBusy},
	{service.ErrValidation, app.MsgNoteRejected},
	{service.ErrNotFound, app.MsgNoteNotFound},
	{service.ErrNetwork, app.MsgServiceUnavailable},
	{service.ErrNoActiveUser, app.MsgNoActiveUser},
	{service.ErrInvalidToken, app.MsgInvalidToken},
	{service.ErrStorage, app.MsgLocalStorageFailed},
}

// describeError turns a service error into a status line message.
// Validation failures keep their cause so the user can fix the field.
func describeError(err error) string {
	for _, m := range errorMessages {
		if !errors.Is(err, m.target) {
			continue
		}
		if m.target == service.ErrValidation {
			return m.message + ": " + err.Error()
		}
		return m.message
	}
	return app.MsgUnexpectedError + ": " + err.Error()
}
