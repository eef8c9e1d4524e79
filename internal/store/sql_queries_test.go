// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildListNotesQuery(t *testing.T) {
	query, args, err := buildListNotesQuery("u-1")

	require.NoError(t, err)
	assert.Equal(t,
		"SELECT id, user_id, title, content, tags, folder, color, is_pinned, is_favorite, created_at, updated_at FROM notes WHERE user_id = $1 ORDER BY id",
		query)
	assert.Equal(t, []any{"u-1"}, args)
}

func TestBuildDeleteNoteQuery(t *testing.T) {
	query, args, err := buildDeleteNoteQuery(9)

	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM notes WHERE id = $1", query)
	assert.Equal(t, []any{int64(9)}, args)
}

func TestBuildUpdateNoteQuery_KeepsOwnerAndCreation(t *testing.T) {
	note := sampleNote()
	note.ID = 4

	query, _, err := buildUpdateNoteQuery(note)

	require.NoError(t, err)
	assert.NotContains(t, query, "user_id =")
	assert.NotContains(t, query, "created_at =")
	assert.Contains(t, query, "WHERE id = $9")
}

func TestTagsRoundTrip(t *testing.T) {
	raw, err := encodeTags([]string{"Work", "Ideas"})
	require.NoError(t, err)
	assert.Equal(t, `["Work","Ideas"]`, raw)

	tags, err := decodeTags([]byte(raw))
	require.NoError(t, err)
	assert.Equal(t, []string{"Work", "Ideas"}, tags)

	tags, err = decodeTags(nil)
	require.NoError(t, err)
	assert.Equal(t, []string{}, tags)

	tags, err = decodeTags([]byte("null"))
	require.NoError(t, err)
	assert.Equal(t, []string{}, tags)

	_, err = decodeTags([]byte("{"))
	assert.ErrorIs(t, err, ErrDecodingTags)
}
