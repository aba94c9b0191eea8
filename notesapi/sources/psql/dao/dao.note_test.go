package dao

import (
	"context"
	"sort"
	"testing"
	"time"

	"notesapi/notesapi/sources/psql/models"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDAO(t *testing.T) *NoteDAO {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.Note{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return NewNoteDAO(db)
}

func mustCreate(t *testing.T, d *NoteDAO, title, content, category string) *models.Note {
	note := &models.Note{Title: title, Content: content, Category: category}
	require.NoError(t, d.CreateNote(context.Background(), note))
	return note
}

func TestCreateNote(t *testing.T) {
	d := setupTestDAO(t)

	note := mustCreate(t, d, "first note", "some content", "")

	assert.NotEqual(t, uuid.Nil, note.ID)
	assert.False(t, note.Published)
	assert.False(t, note.CreatedAt.IsZero())
	assert.False(t, note.UpdatedAt.Before(note.CreatedAt))

	got, err := d.GetNoteByID(context.Background(), note.ID)
	require.NoError(t, err)
	assert.Equal(t, note.ID, got.ID)
	assert.Equal(t, "first note", got.Title)
	assert.Equal(t, "some content", got.Content)
	assert.Equal(t, "", got.Category)
	assert.False(t, got.Published)
}

func TestCreateNoteDuplicateTitle(t *testing.T) {
	d := setupTestDAO(t)

	mustCreate(t, d, "unique title", "a", "")

	dup := &models.Note{Title: "unique title", Content: "b"}
	err := d.CreateNote(context.Background(), dup)
	assert.ErrorIs(t, err, ErrDuplicateTitle)
}

func TestGetNoteByIDNotFound(t *testing.T) {
	d := setupTestDAO(t)

	_, err := d.GetNoteByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNoteNotFound)
}

func TestUpdateNotePartialMerge(t *testing.T) {
	d := setupTestDAO(t)
	note := mustCreate(t, d, "title", "content", "ideas")

	published := true
	updated, err := d.UpdateNote(context.Background(), note.ID, map[string]interface{}{
		"published": published,
	})
	require.NoError(t, err)

	assert.Equal(t, "title", updated.Title)
	assert.Equal(t, "content", updated.Content)
	assert.Equal(t, "ideas", updated.Category)
	assert.True(t, updated.Published)
}

func TestUpdateNoteEmptyAdvancesUpdatedAt(t *testing.T) {
	d := setupTestDAO(t)
	note := mustCreate(t, d, "title", "content", "")

	time.Sleep(20 * time.Millisecond)
	updated, err := d.UpdateNote(context.Background(), note.ID, map[string]interface{}{})
	require.NoError(t, err)

	assert.Equal(t, note.Title, updated.Title)
	assert.Equal(t, note.Content, updated.Content)
	assert.True(t, updated.UpdatedAt.After(note.UpdatedAt))
}

func TestUpdateNoteNotFound(t *testing.T) {
	d := setupTestDAO(t)

	_, err := d.UpdateNote(context.Background(), uuid.New(), map[string]interface{}{"title": "x"})
	assert.ErrorIs(t, err, ErrNoteNotFound)
}

func TestUpdateNoteDuplicateTitle(t *testing.T) {
	d := setupTestDAO(t)
	mustCreate(t, d, "taken", "a", "")
	note := mustCreate(t, d, "mine", "b", "")

	_, err := d.UpdateNote(context.Background(), note.ID, map[string]interface{}{"title": "taken"})
	assert.ErrorIs(t, err, ErrDuplicateTitle)
}

func TestDeleteNote(t *testing.T) {
	d := setupTestDAO(t)
	note := mustCreate(t, d, "to delete", "content", "")

	require.NoError(t, d.DeleteNote(context.Background(), note.ID))

	_, err := d.GetNoteByID(context.Background(), note.ID)
	assert.ErrorIs(t, err, ErrNoteNotFound)

	err = d.DeleteNote(context.Background(), note.ID)
	assert.ErrorIs(t, err, ErrNoteNotFound)
}

func TestDeleteNoteNotFound(t *testing.T) {
	d := setupTestDAO(t)

	err := d.DeleteNote(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNoteNotFound)
}

func TestListNotesOrderAndBounds(t *testing.T) {
	d := setupTestDAO(t)

	titles := []string{"a", "b", "c", "d", "e"}
	ids := make([]string, 0, len(titles))
	for _, title := range titles {
		note := mustCreate(t, d, title, "content", "")
		ids = append(ids, note.ID.String())
	}
	sort.Strings(ids)

	notes, err := d.ListNotes(context.Background(), 3, 0)
	require.NoError(t, err)
	require.Len(t, notes, 3)
	for i, n := range notes {
		assert.Equal(t, ids[i], n.ID.String())
	}

	rest, err := d.ListNotes(context.Background(), 10, 3)
	require.NoError(t, err)
	require.Len(t, rest, 2)
	assert.Equal(t, ids[3], rest[0].ID.String())
	assert.Equal(t, ids[4], rest[1].ID.String())
}

func TestListNotesEmpty(t *testing.T) {
	d := setupTestDAO(t)

	notes, err := d.ListNotes(context.Background(), 10, 0)
	require.NoError(t, err)
	assert.NotNil(t, notes)
	assert.Len(t, notes, 0)
}
