package tui

import (
	"github.com/MKhiriev/go-note-keeper/models"
)

type sessionStartedMsg struct {
	session models.Session
	err     error
}

type notesChangedMsg struct{}

type loadDoneMsg struct {
	err    error
	manual bool
}

type prefsLoadedMsg struct {
	prefs models.Preferences
	err   error
}

type prefsSavedMsg struct {
	err error
}

type noteSavedMsg struct {
	note    models.Note
	created bool
	err     error
}

type noteDeletedMsg struct {
	id  int64
	err error
}

type noteToggledMsg struct {
	note models.Note
	err  error
}

type noteDuplicatedMsg struct {
	note models.Note
	err  error
}

type copiedMsg struct {
	err error
}

type loggedOutMsg struct {
	err error
}

type clearStatusMsg struct {
	seq int
}
