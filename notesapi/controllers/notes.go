// notesapi/controllers/notes.go
package controllers

import (
	"context"

	"notesapi/notesapi/sources/psql/dao"
	"notesapi/notesapi/sources/psql/models"
	"notesapi/notesapi/types"

	"github.com/google/uuid"
)

const defaultPageSize = 10

type NotesController struct {
	dao *dao.NoteDAO
}

func NewNotesController(dao *dao.NoteDAO) *NotesController {
	return &NotesController{dao: dao}
}

// ListNotes clamps page and limit to positive values before translating
// them into LIMIT/OFFSET.
func (c *NotesController) ListNotes(ctx context.Context, page int, limit int) ([]models.Note, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageSize
	}
	offset := (page - 1) * limit
	return c.dao.ListNotes(ctx, limit, offset)
}

func (c *NotesController) CreateNote(ctx context.Context, title string, content string, category string) (*models.Note, error) {
	note := &models.Note{
		Title:    title,
		Content:  content,
		Category: category,
	}
	if err := c.dao.CreateNote(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

func (c *NotesController) GetNoteByID(ctx context.Context, id uuid.UUID) (*models.Note, error) {
	return c.dao.GetNoteByID(ctx, id)
}

func (c *NotesController) UpdateNote(ctx context.Context, id uuid.UUID, req types.UpdateNoteRequest) (*models.Note, error) {
	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Content != nil {
		updates["content"] = *req.Content
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Published != nil {
		updates["published"] = *req.Published
	}
	return c.dao.UpdateNote(ctx, id, updates)
}

func (c *NotesController) DeleteNote(ctx context.Context, id uuid.UUID) error {
	return c.dao.DeleteNote(ctx, id)
}
