package platform_test

import (
	"context"
	"testing"

	notekeeper "github.com/Workflow-Manager-admin/note-keeper"
	"github.com/Workflow-Manager-admin/note-keeper/internal/platform"
	"github.com/Workflow-Manager-admin/note-keeper/pkg/adapters/rest"
	"github.com/Workflow-Manager-admin/note-keeper/pkg/core"
)

func TestInit(t *testing.T) {
	t.Run("Defaults to REST Adapter", func(t *testing.T) {
		repo, err := platform.Init("http://localhost:4000")
		if err != nil {
			t.Fatalf("Init failed: %v", err)
		}

		client, ok := repo.(*rest.Client)
		if !ok {
			t.Fatalf("Expected rest client, got %T", repo)
		}

		state, ok := client.State().(rest.ClientState)
		if !ok {
			t.Fatalf("Expected rest.ClientState, got %T", client.State())
		}
		if state.BaseURL != "http://localhost:4000" {
			t.Errorf("BaseURL = %q", state.BaseURL)
		}
	})

	t.Run("Empty URL Falls Back to Default", func(t *testing.T) {
		repo, err := platform.Init("")
		if err != nil {
			t.Fatalf("Init failed: %v", err)
		}

		state := repo.(*rest.Client).State().(rest.ClientState)
		if state.BaseURL != platform.DefaultBaseURL {
			t.Errorf("BaseURL = %q, want %q", state.BaseURL, platform.DefaultBaseURL)
		}
	})

	t.Run("Invalid URL Fails", func(t *testing.T) {
		if _, err := platform.Init("not a url"); err == nil {
			t.Error("Expected failure for URL without scheme")
		}
	})

	t.Run("Unknown Adapter Fails", func(t *testing.T) {
		if _, err := platform.Init("http://localhost:4000", platform.WithAdapter("bolt")); err == nil {
			t.Error("Expected failure for unknown adapter")
		}
	})

	t.Run("Injected Repository Short-Circuits", func(t *testing.T) {
		injected := &stubRepository{}

		repo, err := platform.Init("ignored", platform.WithRepository(injected))
		if err != nil {
			t.Fatalf("Init failed: %v", err)
		}
		if repo != injected {
			t.Errorf("Expected the injected repository back, got %T", repo)
		}
	})
}

func TestNew(t *testing.T) {
	svc, err := notekeeper.New("", notekeeper.WithRepository(&stubRepository{}))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	notes, err := svc.ListNotes(context.Background())
	if err != nil {
		t.Fatalf("ListNotes failed: %v", err)
	}
	if len(notes) != 1 || notes[0].Title != "stub" {
		t.Errorf("unexpected notes: %+v", notes)
	}
}

// stubRepository is the minimal core.Repository for wiring tests.
type stubRepository struct{}

func (s *stubRepository) List(ctx context.Context) ([]core.Note, error) {
	return []core.Note{{ID: 1, Title: "stub"}}, nil
}

func (s *stubRepository) Create(ctx context.Context, n core.Note) (core.Note, error) {
	n.ID = 1
	return n, nil
}

func (s *stubRepository) Update(ctx context.Context, n core.Note) (core.Note, error) {
	return n, nil
}

func (s *stubRepository) Delete(ctx context.Context, id int64) error {
	return nil
}
