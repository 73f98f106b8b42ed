package core

import "time"

// MaxTitleLen bounds note titles. The backend treats titles as short text;
// anything longer is rejected before it goes on the wire.
const MaxTitleLen = 200

// Note is the central entity of the domain.
// It represents a single note as the backend owns it. IDs are assigned by
// the backend; the client never invents one.
type Note struct {
	ID        int64
	Title     string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Saved reports whether the note exists on the backend.
// A zero ID denotes a new, unsaved note.
func (n Note) Saved() bool {
	return n.ID != 0
}
