// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"time"
)

// NotePayload is the JSON shape of a note exchanged with the remote note
// service. Timestamps travel as RFC 3339 (ISO-8601) strings and are converted
// to time.Time at the repository boundary via [NotePayload.ToNote].
type NotePayload struct {
	ID         int64    `json:"id,omitempty"`
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	Tags       []string `json:"tags"`
	Folder     string   `json:"folder"`
	Color      string   `json:"color,omitempty"`
	IsPinned   bool     `json:"isPinned"`
	IsFavorite bool     `json:"isFavorite"`
	CreatedAt  string   `json:"createdAt,omitempty"`
	UpdatedAt  string   `json:"updatedAt,omitempty"`
	UserID     string   `json:"userId,omitempty"`
}

// NewNotePayload converts n into its wire representation. Zero timestamps
// are omitted.
func NewNotePayload(n Note) NotePayload {
	tags := n.Tags
	if tags == nil {
		tags = []string{}
	}

	return NotePayload{
		ID:         n.ID,
		Title:      n.Title,
		Content:    n.Content,
		Tags:       tags,
		Folder:     n.Folder,
		Color:      n.Color,
		IsPinned:   n.IsPinned,
		IsFavorite: n.IsFavorite,
		CreatedAt:  formatTimestamp(n.CreatedAt),
		UpdatedAt:  formatTimestamp(n.UpdatedAt),
		UserID:     n.UserID,
	}
}

// ToNote converts the wire representation back into a [Note]. It fails when
// a timestamp is present but is not a valid RFC 3339 string.
func (p NotePayload) ToNote() (Note, error) {
	createdAt, err := parseTimestamp(p.CreatedAt)
	if err != nil {
		return Note{}, fmt.Errorf("note %d createdAt: %w", p.ID, err)
	}
	updatedAt, err := parseTimestamp(p.UpdatedAt)
	if err != nil {
		return Note{}, fmt.Errorf("note %d updatedAt: %w", p.ID, err)
	}

	return Note{
		ID:         p.ID,
		Title:      p.Title,
		Content:    p.Content,
		Tags:       NormalizeTags(p.Tags),
		Folder:     p.Folder,
		Color:      p.Color,
		IsPinned:   p.IsPinned,
		IsFavorite: p.IsFavorite,
		CreatedAt:  createdAt,
		UpdatedAt:  updatedAt,
		UserID:     p.UserID,
	}, nil
}

// NotePayloads converts a slice of notes into wire payloads.
func NotePayloads(notes []Note) []NotePayload {
	out := make([]NotePayload, 0, len(notes))
	for _, n := range notes {
		out = append(out, NewNotePayload(n))
	}
	return out
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTimestamp(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339Nano, s)
}
