package notekeeper

import (
	"github.com/aretw0/introspection"
)

// SessionState is a diagnostic snapshot of the page state.
type SessionState struct {
	NoteCount     int    `json:"note_count"`
	SelectedID    int64  `json:"selected_id"`
	Editing       bool   `json:"editing"`
	Dirty         bool   `json:"dirty"`
	Busy          bool   `json:"busy"`
	LastError     string `json:"last_error,omitempty"`
	Polling       bool   `json:"polling"`
	DroppedEvents int64  `json:"dropped_events"`
}

// State implements introspection.Introspectable.
func (s *Session) State() any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := SessionState{
		NoteCount:     len(s.notes),
		SelectedID:    s.selected,
		Busy:          s.busy > 0,
		LastError:     s.lastErr,
		Polling:       s.poller != nil,
		DroppedEvents: s.broker.droppedCount(),
	}
	if s.draft != nil {
		st.Editing = true
		st.Dirty = s.draft.Dirty
	}

	return st
}

// ComponentType implements introspection.Component.
func (s *Session) ComponentType() string {
	return "session"
}

var (
	_ introspection.Introspectable = (*Session)(nil)
	_ introspection.Component      = (*Session)(nil)
)
