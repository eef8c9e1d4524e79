// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/migrations"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

func newTestNoteRepo(t *testing.T) (*noteRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	l := logger.Nop()
	repo := &noteRepository{
		DB: &DB{
			DB:                 db,
			dialect:            migrations.Postgres,
			errorClassificator: NewPostgresErrorClassifier(),
			logger:             l,
		},
		logger: l,
	}
	return repo, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func noteRows() *sqlmock.Rows {
	return sqlmock.NewRows(noteColumns)
}

func addNoteRow(rows *sqlmock.Rows, id int64, title string) *sqlmock.Rows {
	return rows.AddRow(id, "u-1", title, "<p>"+title+"</p>", []byte(`["Work","Ideas"]`),
		"Projects", "#A0E7E5", true, false, t0, t0.Add(time.Hour))
}

func sampleNote() models.Note {
	return models.Note{
		Title: "Plan", Content: "body", Tags: []string{"Work"}, Folder: "Projects",
		Color: "#A0E7E5", CreatedAt: t0, UpdatedAt: t0, UserID: "u-1",
	}
}

// ── ListByUser ───────────────────────────────────────────────────────────────

func TestNoteRepository_ListByUser_Success(t *testing.T) {
	repo, mock := newTestNoteRepo(t)

	rows := addNoteRow(addNoteRow(noteRows(), 1, "first"), 2, "second")
	mock.ExpectQuery(`SELECT (.+) FROM notes WHERE user_id = \$1 ORDER BY id`).
		WithArgs("u-1").
		WillReturnRows(rows)

	notes, err := repo.ListByUser(context.Background(), "u-1")

	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, int64(1), notes[0].ID)
	assert.Equal(t, "first", notes[0].Title)
	assert.Equal(t, []string{"Work", "Ideas"}, notes[0].Tags)
	assert.True(t, notes[0].IsPinned)
	assert.Equal(t, t0.Add(time.Hour), notes[1].UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNoteRepository_ListByUser_Empty(t *testing.T) {
	repo, mock := newTestNoteRepo(t)

	mock.ExpectQuery(`SELECT (.+) FROM notes`).WithArgs("u-1").WillReturnRows(noteRows())

	notes, err := repo.ListByUser(context.Background(), "u-1")

	require.NoError(t, err)
	assert.NotNil(t, notes)
	assert.Empty(t, notes)
}

func TestNoteRepository_ListByUser_QueryError(t *testing.T) {
	repo, mock := newTestNoteRepo(t)

	mock.ExpectQuery(`SELECT (.+) FROM notes`).WillReturnError(pgError(pgerrcode.ConnectionFailure))

	_, err := repo.ListByUser(context.Background(), "u-1")

	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.ErrorIs(t, err, ErrTemporarilyUnavailable)
}

func TestNoteRepository_ListByUser_BadTags(t *testing.T) {
	repo, mock := newTestNoteRepo(t)

	rows := noteRows().AddRow(1, "u-1", "x", "", []byte(`{"not":"a list"}`), "F", "", false, false, t0, t0)
	mock.ExpectQuery(`SELECT (.+) FROM notes`).WillReturnRows(rows)

	_, err := repo.ListByUser(context.Background(), "u-1")

	assert.ErrorIs(t, err, ErrScanningRow)
	assert.ErrorIs(t, err, ErrDecodingTags)
}

func TestNoteRepository_ListByUser_RowError(t *testing.T) {
	repo, mock := newTestNoteRepo(t)

	rows := addNoteRow(noteRows(), 1, "x").RowError(0, errors.New("broken pipe"))
	mock.ExpectQuery(`SELECT (.+) FROM notes`).WillReturnRows(rows)

	_, err := repo.ListByUser(context.Background(), "u-1")
	assert.ErrorIs(t, err, ErrScanningRows)
}

// ── Get ──────────────────────────────────────────────────────────────────────

func TestNoteRepository_Get(t *testing.T) {
	repo, mock := newTestNoteRepo(t)

	mock.ExpectQuery(`SELECT (.+) FROM notes WHERE id = \$1`).
		WithArgs(int64(7)).
		WillReturnRows(addNoteRow(noteRows(), 7, "seven"))

	note, err := repo.Get(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, int64(7), note.ID)
	assert.Equal(t, "u-1", note.UserID)
}

func TestNoteRepository_Get_NotFound(t *testing.T) {
	repo, mock := newTestNoteRepo(t)

	mock.ExpectQuery(`SELECT (.+) FROM notes WHERE id = \$1`).
		WithArgs(int64(7)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), 7)
	assert.ErrorIs(t, err, ErrNoteNotFound)
}

// ── Create ───────────────────────────────────────────────────────────────────

func TestNoteRepository_Create_Success(t *testing.T) {
	repo, mock := newTestNoteRepo(t)
	note := sampleNote()

	mock.ExpectQuery(`INSERT INTO notes \(user_id,title,content,tags,folder,color,is_pinned,is_favorite,created_at,updated_at\) VALUES (.+) RETURNING id`).
		WithArgs("u-1", "Plan", "body", `["Work"]`, "Projects", "#A0E7E5", false, false, t0, t0).
		WillReturnRows(addNoteRow(noteRows(), 42, "Plan"))

	created, err := repo.Create(context.Background(), note)

	require.NoError(t, err)
	assert.Equal(t, int64(42), created.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNoteRepository_Create_NilTagsStoredAsEmptyArray(t *testing.T) {
	repo, mock := newTestNoteRepo(t)
	note := sampleNote()
	note.Tags = nil

	mock.ExpectQuery(`INSERT INTO notes`).
		WithArgs("u-1", "Plan", "body", `[]`, "Projects", "#A0E7E5", false, false, t0, t0).
		WillReturnRows(addNoteRow(noteRows(), 1, "Plan"))

	_, err := repo.Create(context.Background(), note)
	require.NoError(t, err)
}

func TestNoteRepository_Create_Errors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"not null", pgError(pgerrcode.NotNullViolation), ErrConstraintViolation},
		{"check", pgError(pgerrcode.CheckViolation), ErrConstraintViolation},
		{"deadlock", pgError(pgerrcode.DeadlockDetected), ErrTemporarilyUnavailable},
		{"other", errors.New("boom"), ErrExecutingQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestNoteRepo(t)
			mock.ExpectQuery(`INSERT INTO notes`).WillReturnError(tt.err)

			_, err := repo.Create(context.Background(), sampleNote())

			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, ErrExecutingQuery)
		})
	}
}

// ── Update ───────────────────────────────────────────────────────────────────

func TestNoteRepository_Update_Success(t *testing.T) {
	repo, mock := newTestNoteRepo(t)
	note := sampleNote()
	note.ID = 3
	note.IsPinned = true

	mock.ExpectQuery(`UPDATE notes SET title = \$1, content = \$2, tags = \$3, folder = \$4, color = \$5, is_pinned = \$6, is_favorite = \$7, updated_at = \$8 WHERE id = \$9 RETURNING`).
		WithArgs("Plan", "body", `["Work"]`, "Projects", "#A0E7E5", true, false, t0, int64(3)).
		WillReturnRows(addNoteRow(noteRows(), 3, "Plan"))

	updated, err := repo.Update(context.Background(), note)

	require.NoError(t, err)
	assert.Equal(t, int64(3), updated.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNoteRepository_Update_NotFound(t *testing.T) {
	repo, mock := newTestNoteRepo(t)
	note := sampleNote()
	note.ID = 3

	mock.ExpectQuery(`UPDATE notes`).WillReturnRows(noteRows())

	_, err := repo.Update(context.Background(), note)
	assert.ErrorIs(t, err, ErrNoteNotFound)
}

// ── Delete ───────────────────────────────────────────────────────────────────

func TestNoteRepository_Delete(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		execErr  error
		want     error
	}{
		{"deleted", 1, nil, nil},
		{"missing", 0, nil, ErrNoteNotFound},
		{"failure", 0, errors.New("boom"), ErrExecutingStatement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestNoteRepo(t)
			exp := mock.ExpectExec(`DELETE FROM notes WHERE id = \$1`).WithArgs(int64(5))
			if tt.execErr != nil {
				exp.WillReturnError(tt.execErr)
			} else {
				exp.WillReturnResult(sqlmock.NewResult(0, tt.affected))
			}

			err := repo.Delete(context.Background(), 5)

			if tt.want == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.want)
			}
		})
	}
}
