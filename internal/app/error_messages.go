// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing message strings shared by the client
// presentation layer.
//
// The Msg* constants are written into the status line and error overlays of
// the terminal UI. Keeping them in one place keeps the wording consistent
// across screens.
package app

const (
	// MsgLoadFailed is shown when the note list could not be fetched. The
	// list stays empty until the next successful reload.
	MsgLoadFailed = "could not load notes, press r to retry"

	// MsgServiceUnavailable is shown when a mutation failed because the note
	// service could not be reached or answered with a server error.
	MsgServiceUnavailable = "note service unavailable, try again"

	// MsgNoteRejected is shown when a note failed validation locally or on
	// the note service.
	MsgNoteRejected = "note rejected"

	// MsgNoteNotFound is shown when the note no longer exists.
	MsgNoteNotFound = "note not found, press r to reload"

	// MsgNoteBusy is shown when another operation on the same note is still
	// in flight.
	MsgNoteBusy = "note is being saved, wait a moment"

	// MsgNoActiveUser is shown when an operation needs a session and none
	// is open.
	MsgNoActiveUser = "not signed in"

	// MsgInvalidToken is shown when the login token cannot be read or names
	// another user.
	MsgInvalidToken = "token is invalid"

	// MsgLocalStorageFailed is shown when the local database failed.
	MsgLocalStorageFailed = "local storage failure"

	// MsgClipboardFailed is shown when note content could not be copied.
	MsgClipboardFailed = "could not copy to clipboard"

	// MsgUnexpectedError is the fallback for errors without a dedicated
	// message.
	MsgUnexpectedError = "unexpected error"

	MsgNoteCreated    = "note created"
	MsgNoteSaved      = "note saved"
	MsgNoteDeleted    = "note deleted"
	MsgNoteDuplicated = "note duplicated"
	MsgNoteCopied     = "content copied to clipboard"
	MsgNotesReloaded  = "notes reloaded"
)
