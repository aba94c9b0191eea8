// notesapi/types/note.go
package types

type CreateNoteRequest struct {
	Title    string  `json:"title"`
	Content  string  `json:"content"`
	Category *string `json:"category,omitempty"`
}

// UpdateNoteRequest carries the PATCH body; nil means "leave unchanged".
type UpdateNoteRequest struct {
	Title     *string `json:"title,omitempty"`
	Content   *string `json:"content,omitempty"`
	Category  *string `json:"category,omitempty"`
	Published *bool   `json:"published,omitempty"`
}
