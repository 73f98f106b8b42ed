package core_test

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"

	"github.com/Workflow-Manager-admin/note-keeper/pkg/core"
)

// MockRepository implements core.Repository in memory.
// It deliberately does NOT implement core.Watchable to test capability errors.
type MockRepository struct {
	notes  map[int64]core.Note
	nextID int64
}

func NewMockRepository() *MockRepository {
	return &MockRepository{
		notes: make(map[int64]core.Note),
	}
}

func (m *MockRepository) List(ctx context.Context) ([]core.Note, error) {
	var notes []core.Note
	for _, n := range m.notes {
		notes = append(notes, n)
	}
	// Sort for deterministic tests
	sort.Slice(notes, func(i, j int) bool {
		return notes[i].ID < notes[j].ID
	})
	return notes, nil
}

func (m *MockRepository) Create(ctx context.Context, n core.Note) (core.Note, error) {
	m.nextID++
	n.ID = m.nextID
	m.notes[n.ID] = n
	return n, nil
}

func (m *MockRepository) Update(ctx context.Context, n core.Note) (core.Note, error) {
	if _, ok := m.notes[n.ID]; !ok {
		return core.Note{}, core.ErrNotFound
	}
	m.notes[n.ID] = n
	return n, nil
}

func (m *MockRepository) Delete(ctx context.Context, id int64) error {
	if _, ok := m.notes[id]; !ok {
		return core.ErrNotFound
	}
	delete(m.notes, id)
	return nil
}

func TestService_CRUD(t *testing.T) {
	repo := NewMockRepository()
	service := core.NewService(repo)
	ctx := context.TODO()

	// 1. Create
	created, err := service.CreateNote(ctx, "groceries", "milk, eggs")
	if err != nil {
		t.Fatalf("CreateNote failed: %v", err)
	}
	if !created.Saved() {
		t.Fatal("expected a backend-assigned ID, got 0")
	}

	// 2. List
	_, _ = service.CreateNote(ctx, "ideas", "")
	notes, err := service.ListNotes(ctx)
	if err != nil {
		t.Fatalf("ListNotes failed: %v", err)
	}
	if len(notes) != 2 {
		t.Errorf("expected 2 notes, got %d", len(notes))
	}

	// 3. Update
	updated, err := service.UpdateNote(ctx, created.ID, "groceries", "milk, eggs, bread")
	if err != nil {
		t.Fatalf("UpdateNote failed: %v", err)
	}
	if updated.Content != "milk, eggs, bread" {
		t.Errorf("expected updated content, got %q", updated.Content)
	}

	// 4. Delete
	if err := service.DeleteNote(ctx, created.ID); err != nil {
		t.Fatalf("DeleteNote failed: %v", err)
	}
	if err := service.DeleteNote(ctx, created.ID); !errors.Is(err, core.ErrNotFound) {
		t.Errorf("expected ErrNotFound after deletion, got %v", err)
	}
}

func TestService_TitleTrimmed(t *testing.T) {
	repo := NewMockRepository()
	service := core.NewService(repo)

	n, err := service.CreateNote(context.TODO(), "  padded  ", "body")
	if err != nil {
		t.Fatalf("CreateNote failed: %v", err)
	}
	if n.Title != "padded" {
		t.Errorf("expected trimmed title %q, got %q", "padded", n.Title)
	}
}

func TestService_Validation(t *testing.T) {
	repo := NewMockRepository()
	service := core.NewService(repo)
	ctx := context.TODO()
	seed, _ := service.CreateNote(ctx, "seed", "")

	tests := []struct {
		name    string
		op      func() error
		wantErr error
	}{
		{
			name:    "create with empty title",
			op:      func() error { _, err := service.CreateNote(ctx, "", "body"); return err },
			wantErr: core.ErrTitleRequired,
		},
		{
			name:    "create with whitespace title",
			op:      func() error { _, err := service.CreateNote(ctx, "   \t", "body"); return err },
			wantErr: core.ErrTitleRequired,
		},
		{
			name: "create with oversized title",
			op: func() error {
				_, err := service.CreateNote(ctx, strings.Repeat("x", core.MaxTitleLen+1), "")
				return err
			},
			wantErr: core.ErrTitleTooLong,
		},
		{
			name:    "update with zero ID",
			op:      func() error { _, err := service.UpdateNote(ctx, 0, "title", ""); return err },
			wantErr: core.ErrInvalidID,
		},
		{
			name:    "update with negative ID",
			op:      func() error { _, err := service.UpdateNote(ctx, -3, "title", ""); return err },
			wantErr: core.ErrInvalidID,
		},
		{
			name:    "update with empty title",
			op:      func() error { _, err := service.UpdateNote(ctx, seed.ID, " ", ""); return err },
			wantErr: core.ErrTitleRequired,
		},
		{
			name:    "delete with zero ID",
			op:      func() error { return service.DeleteNote(ctx, 0) },
			wantErr: core.ErrInvalidID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.op(); !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

// WatchMockRepository adds Watch support on top of MockRepository.
type WatchMockRepository struct {
	*MockRepository
	events chan core.Event
}

func (m *WatchMockRepository) Watch(ctx context.Context) (<-chan core.Event, error) {
	return m.events, nil
}

func TestService_Watch_Unsupported(t *testing.T) {
	repo := NewMockRepository()
	service := core.NewService(repo)

	_, err := service.Watch(context.TODO())
	if err == nil {
		t.Fatal("expected error for non-watchable repo")
	}
	if err.Error() != "repository does not support watching" {
		t.Errorf("unexpected error msg: %v", err)
	}
}

func TestService_Watch_Supported(t *testing.T) {
	repo := &WatchMockRepository{
		MockRepository: NewMockRepository(),
		events:         make(chan core.Event, 1),
	}
	service := core.NewService(repo)

	ch, err := service.Watch(context.TODO())
	if err != nil {
		t.Fatalf("Watch failed: %v", err)
	}

	repo.events <- core.Event{Type: core.EventCreate, ID: 7}
	e := <-ch
	if e.Type != core.EventCreate || e.ID != 7 {
		t.Errorf("unexpected event: %+v", e)
	}
}
