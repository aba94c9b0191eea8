// notesapi/sources/psql/dao/dao.note.go
package dao

import (
	"context"
	"time"

	"notesapi/notesapi/sources/psql/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NoteDAO struct {
	DB *gorm.DB
}

func NewNoteDAO(db *gorm.DB) *NoteDAO {
	return &NoteDAO{DB: db}
}

func (dao *NoteDAO) ListNotes(ctx context.Context, limit int, offset int) ([]models.Note, error) {
	notes := make([]models.Note, 0)
	err := dao.DB.WithContext(ctx).Order("id asc").Limit(limit).Offset(offset).Find(&notes).Error
	if err != nil {
		return nil, classify("list notes", err)
	}
	return notes, nil
}

func (dao *NoteDAO) CreateNote(ctx context.Context, note *models.Note) error {
	if err := dao.DB.WithContext(ctx).Create(note).Error; err != nil {
		return classify("create note", err)
	}
	return nil
}

func (dao *NoteDAO) GetNoteByID(ctx context.Context, id uuid.UUID) (*models.Note, error) {
	var note models.Note
	if err := dao.DB.WithContext(ctx).First(&note, "id = ?", id).Error; err != nil {
		return nil, classify("get note", err)
	}
	return &note, nil
}

// UpdateNote reads the existing row, overlays the supplied columns and
// refreshes updated_at. The read and the write are two independent
// statements; concurrent writers to the same note are last-write-wins.
func (dao *NoteDAO) UpdateNote(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*models.Note, error) {
	note, err := dao.GetNoteByID(ctx, id)
	if err != nil {
		return nil, err
	}
	updates["updated_at"] = time.Now().UTC()
	if err := dao.DB.WithContext(ctx).Model(note).Updates(updates).Error; err != nil {
		return nil, classify("update note", err)
	}
	return dao.GetNoteByID(ctx, id)
}

func (dao *NoteDAO) DeleteNote(ctx context.Context, id uuid.UUID) error {
	res := dao.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.Note{})
	if res.Error != nil {
		return classify("delete note", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNoteNotFound
	}
	return nil
}
