// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-note-keeper/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo, session models.Session) string {
	var b strings.Builder

	b.WriteString("Application: GoNoteKeeper\n")
	b.WriteString("Version: ")
	b.WriteString(info.Version())
	b.WriteString("\n")
	b.WriteString("Date: ")
	b.WriteString(info.Date())
	b.WriteString("\n")
	b.WriteString("Commit: ")
	b.WriteString(info.Commit())
	b.WriteString("\n\n")
	b.WriteString("Signed in as: ")
	b.WriteString(valueOrDash(session.UserID))
	if !session.CreatedAt.IsZero() {
		b.WriteString("\nSince: ")
		b.WriteString(session.CreatedAt.Local().Format("2006-01-02 15:04"))
	}

	return renderPage("ABOUT", b.String(), "esc: back")
}
