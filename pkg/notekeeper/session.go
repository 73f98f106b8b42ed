package notekeeper

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/Workflow-Manager-admin/note-keeper/pkg/core"
)

// Draft is the edit panel's working copy.
// A zero ID means saving will create a new note.
type Draft struct {
	ID      int64
	Title   string
	Content string
	Dirty   bool
}

// Session models a single list-plus-detail notes page: the sidebar list, the
// selected note, the draft under edit, and the error banner.
//
// All state is transient. The list is a cache refetched from the backend
// after every write; the backend stays the single owner of the notes.
type Session struct {
	svc    *core.Service
	logger *slog.Logger

	mu       sync.RWMutex
	notes    []core.Note
	selected int64
	draft    *Draft
	lastErr  string
	busy     int
	primed   bool

	broker       *broker
	poller       *poller
	pollInterval time.Duration
}

// Refresh refetches the list and replaces the cache. A selection whose note
// vanished server-side is cleared. Changes relative to the previous cache
// are published on the event feed.
func (s *Session) Refresh(ctx context.Context) error {
	done := s.beginOp()
	defer done()

	notes, err := s.svc.ListNotes(ctx)
	if err != nil {
		s.fail("refresh", err)
		return err
	}

	s.mu.Lock()
	prev := s.notes
	first := !s.primed
	s.primed = true
	s.notes = notes
	if s.selected != 0 && findNote(notes, s.selected) == nil {
		s.selected = 0
	}
	s.lastErr = ""
	s.mu.Unlock()

	// The very first fetch is baseline, not change.
	if !first {
		s.publishDiff(prev, notes)
	}

	s.logger.Debug("list refreshed", "count", len(notes))
	return nil
}

// Notes returns a copy of the cached list, in backend order.
func (s *Session) Notes() []core.Note {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]core.Note, len(s.notes))
	copy(out, s.notes)
	return out
}

// Note looks a note up in the cache.
func (s *Session) Note(id int64) (core.Note, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if n := findNote(s.notes, id); n != nil {
		return *n, true
	}
	return core.Note{}, false
}

// Select switches the detail panel to the given note. Any draft in progress
// is discarded, mirroring how the page swaps the editor content when the
// user clicks another sidebar entry.
func (s *Session) Select(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if findNote(s.notes, id) == nil {
		return core.ErrNotFound
	}
	s.selected = id
	s.draft = nil
	return nil
}

// Deselect clears the detail panel.
func (s *Session) Deselect() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = 0
	s.draft = nil
}

// Selected returns the note the detail panel shows.
func (s *Session) Selected() (core.Note, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.selected == 0 {
		return core.Note{}, false
	}
	if n := findNote(s.notes, s.selected); n != nil {
		return *n, true
	}
	return core.Note{}, false
}

// StartNew begins a draft for a note that does not exist yet.
func (s *Session) StartNew() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = 0
	s.draft = &Draft{}
}

// StartEdit begins a draft from the selected note.
func (s *Session) StartEdit() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.selected == 0 {
		return errors.New("no note selected")
	}
	n := findNote(s.notes, s.selected)
	if n == nil {
		return core.ErrNotFound
	}
	s.draft = &Draft{ID: n.ID, Title: n.Title, Content: n.Content}
	return nil
}

// SetTitle updates the draft title. No-op without a draft.
func (s *Session) SetTitle(title string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.draft == nil {
		return
	}
	s.draft.Title = title
	s.draft.Dirty = true
}

// SetContent updates the draft content. No-op without a draft.
func (s *Session) SetContent(content string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.draft == nil {
		return
	}
	s.draft.Content = content
	s.draft.Dirty = true
}

// Draft returns the draft under edit, if any.
func (s *Session) Draft() (Draft, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.draft == nil {
		return Draft{}, false
	}
	return *s.draft, true
}

// Discard drops the draft without saving.
func (s *Session) Discard() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = nil
}

// Save sends the draft to the backend: a create when the draft has no ID, an
// update otherwise. On success the list is refetched, the saved note becomes
// the selection, and the draft is cleared. The backend's copy is returned.
func (s *Session) Save(ctx context.Context) (core.Note, error) {
	s.mu.RLock()
	var d *Draft
	if s.draft != nil {
		cp := *s.draft
		d = &cp
	}
	s.mu.RUnlock()

	if d == nil {
		err := errors.New("no draft to save")
		s.fail("save", err)
		return core.Note{}, err
	}

	done := s.beginOp()
	defer done()

	var (
		saved core.Note
		err   error
	)
	if d.ID == 0 {
		saved, err = s.svc.CreateNote(ctx, d.Title, d.Content)
	} else {
		saved, err = s.svc.UpdateNote(ctx, d.ID, d.Title, d.Content)
	}
	if err != nil {
		s.fail("save", err)
		return core.Note{}, err
	}

	// The write stood. Clear the draft now so a retry after a failed
	// refetch cannot create the note twice.
	s.mu.Lock()
	s.draft = nil
	s.mu.Unlock()

	// The backend owns the list; refetch rather than patching the cache.
	if err := s.Refresh(ctx); err != nil {
		return saved, err
	}

	s.mu.Lock()
	if findNote(s.notes, saved.ID) != nil {
		s.selected = saved.ID
	}
	s.mu.Unlock()

	s.logger.Info("note saved", "id", saved.ID, "created", d.ID == 0)
	return saved, nil
}

// Delete removes a note and refetches the list. Deleting the selected note
// clears the detail panel.
func (s *Session) Delete(ctx context.Context, id int64) error {
	done := s.beginOp()
	defer done()

	if err := s.svc.DeleteNote(ctx, id); err != nil {
		s.fail("delete", err)
		return err
	}

	s.mu.Lock()
	if s.selected == id {
		s.selected = 0
	}
	if s.draft != nil && s.draft.ID == id {
		s.draft = nil
	}
	s.mu.Unlock()

	if err := s.Refresh(ctx); err != nil {
		return err
	}

	s.logger.Info("note deleted", "id", id)
	return nil
}

// Err returns the error banner, empty when the last backend call succeeded.
func (s *Session) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

// Busy reports whether a backend call is in flight.
func (s *Session) Busy() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.busy > 0
}

// Events exposes the session's change feed. Publishing never blocks; events
// are dropped when the consumer lags.
func (s *Session) Events() <-chan core.Event {
	return s.broker.events()
}

// Service exposes the underlying domain service.
func (s *Session) Service() *core.Service {
	return s.svc
}

// Close stops the poller and closes the event feed.
func (s *Session) Close() error {
	s.StopPolling(context.Background())
	s.broker.close()
	return nil
}

func (s *Session) beginOp() func() {
	s.mu.Lock()
	s.busy++
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		s.busy--
		s.mu.Unlock()
	}
}

func (s *Session) fail(op string, err error) {
	s.mu.Lock()
	s.lastErr = err.Error()
	s.mu.Unlock()
	s.logger.Warn("operation failed", "op", op, "error", err)
}

// publishDiff compares two cache generations and emits an event per change.
func (s *Session) publishDiff(prev, next []core.Note) {
	seen := make(map[int64]core.Note, len(prev))
	for _, n := range prev {
		seen[n.ID] = n
	}

	now := time.Now().Unix()
	for _, n := range next {
		old, ok := seen[n.ID]
		if !ok {
			s.broker.publish(core.Event{Type: core.EventCreate, ID: n.ID, Timestamp: now})
			continue
		}
		delete(seen, n.ID)
		if old.Title != n.Title || old.Content != n.Content || !old.UpdatedAt.Equal(n.UpdatedAt) {
			s.broker.publish(core.Event{Type: core.EventModify, ID: n.ID, Timestamp: now})
		}
	}
	for id := range seen {
		s.broker.publish(core.Event{Type: core.EventDelete, ID: id, Timestamp: now})
	}
}

func findNote(notes []core.Note, id int64) *core.Note {
	for i := range notes {
		if notes[i].ID == id {
			return &notes[i]
		}
	}
	return nil
}
