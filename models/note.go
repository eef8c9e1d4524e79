// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"slices"
	"time"
)

// CopyTitleSuffix is appended to the title of a duplicated note.
const CopyTitleSuffix = " (Copy)"

// Note is a user-authored document with a title, an opaque rich-text
// payload, tags, a folder, a display color and pin/favorite flags.
//
// A Note with ID == 0 has not been persisted yet. Once the remote note
// service assigns an identity, ID is non-zero and UserID equals the owner.
type Note struct {
	// ID is the server-assigned identity. Zero denotes a local draft.
	ID int64 `validate:"gte=0"`

	// Title is the human readable note title. Blank titles are allowed.
	Title string

	// Content is the serialized rich-text payload produced by the editor
	// surface. The client core never inspects it beyond substring search.
	Content string

	// Tags is the set of tag names attached to the note. Matching ignores
	// order, display uses insertion order.
	Tags []string `validate:"dive,required"`

	// Folder is the name of the single folder the note belongs to.
	Folder string `validate:"required"`

	// Color is an optional "#RRGGBB" display accent.
	Color string `validate:"omitempty,hexcolor"`

	IsPinned   bool
	IsFavorite bool

	// CreatedAt is set once on creation and never changes afterwards.
	CreatedAt time.Time

	// UpdatedAt is refreshed on every content, metadata, pin or favorite
	// change and never moves backwards.
	UpdatedAt time.Time

	// UserID identifies the owner of the note.
	UserID string `validate:"required"`
}

// Clone returns a deep copy of n so that callers never share the Tags
// backing array with the collection.
func (n Note) Clone() Note {
	n.Tags = slices.Clone(n.Tags)
	return n
}

// Duplicate derives an unsaved draft from n: no ID, title suffixed with
// CopyTitleSuffix, unpinned and timestamped at now. Content, folder, tags,
// color and the favorite flag are carried over.
func (n Note) Duplicate(now time.Time) Note {
	d := n.Clone()
	d.ID = 0
	d.Title = n.Title + CopyTitleSuffix
	d.IsPinned = false
	d.CreatedAt = now
	d.UpdatedAt = now
	return d
}

// HasTag reports whether the note carries a tag with exactly the given name.
func (n Note) HasTag(name string) bool {
	return slices.Contains(n.Tags, name)
}

// NormalizeTags removes duplicate tag names keeping the first occurrence, so
// the result behaves as a set while preserving insertion order.
func NormalizeTags(tags []string) []string {
	if tags == nil {
		return nil
	}

	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}

	return out
}

// NotePatch describes a partial note update. Nil fields are left untouched
// when the patch is applied.
type NotePatch struct {
	Title      *string
	Content    *string
	Tags       []string
	Folder     *string
	Color      *string
	IsPinned   *bool
	IsFavorite *bool
}

// IsEmpty reports whether the patch changes nothing.
func (p NotePatch) IsEmpty() bool {
	return p.Title == nil && p.Content == nil && p.Tags == nil && p.Folder == nil &&
		p.Color == nil && p.IsPinned == nil && p.IsFavorite == nil
}

// Apply returns a copy of n with every non-nil patch field written over it.
// Tags are normalized to set semantics.
func (p NotePatch) Apply(n Note) Note {
	out := n.Clone()

	if p.Title != nil {
		out.Title = *p.Title
	}
	if p.Content != nil {
		out.Content = *p.Content
	}
	if p.Tags != nil {
		out.Tags = NormalizeTags(p.Tags)
	}
	if p.Folder != nil {
		out.Folder = *p.Folder
	}
	if p.Color != nil {
		out.Color = *p.Color
	}
	if p.IsPinned != nil {
		out.IsPinned = *p.IsPinned
	}
	if p.IsFavorite != nil {
		out.IsFavorite = *p.IsFavorite
	}

	return out
}

// ToggleField names a boolean note flag that can be flipped in place.
type ToggleField int

const (
	// FieldPinned is the IsPinned flag.
	FieldPinned ToggleField = iota + 1
	// FieldFavorite is the IsFavorite flag.
	FieldFavorite
)

// String returns the wire name of the field.
func (f ToggleField) String() string {
	switch f {
	case FieldPinned:
		return "isPinned"
	case FieldFavorite:
		return "isFavorite"
	default:
		return "unknown"
	}
}

// Valid reports whether f is one of the known toggle fields.
func (f ToggleField) Valid() bool {
	return f == FieldPinned || f == FieldFavorite
}

// Get reads the flag named by f from n.
func (f ToggleField) Get(n Note) bool {
	if f == FieldFavorite {
		return n.IsFavorite
	}
	return n.IsPinned
}

// Patch builds a NotePatch that sets the flag named by f to value.
func (f ToggleField) Patch(value bool) NotePatch {
	if f == FieldFavorite {
		return NotePatch{IsFavorite: &value}
	}
	return NotePatch{IsPinned: &value}
}
