package rest

import (
	"time"

	"github.com/Workflow-Manager-admin/note-keeper/pkg/core"
)

// noteDTO is the wire representation of a note.
// Decoding accepts "text" as an alias for "content" (older backends name the
// body that way); encoding always emits "content".
type noteDTO struct {
	ID        int64      `json:"id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	Text      string     `json:"text,omitempty"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

func (d noteDTO) note() core.Note {
	n := core.Note{
		ID:      d.ID,
		Title:   d.Title,
		Content: d.Content,
	}
	if n.Content == "" && d.Text != "" {
		n.Content = d.Text
	}
	if d.CreatedAt != nil {
		n.CreatedAt = *d.CreatedAt
	}
	if d.UpdatedAt != nil {
		n.UpdatedAt = *d.UpdatedAt
	}
	return n
}

// notePayload is the request body for create and update calls.
// The ID travels in the URL, never in the body.
type notePayload struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func newPayload(n core.Note) notePayload {
	return notePayload{Title: n.Title, Content: n.Content}
}
