package rest_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Workflow-Manager-admin/note-keeper/internal/apitest"
	"github.com/Workflow-Manager-admin/note-keeper/pkg/adapters/rest"
	"github.com/Workflow-Manager-admin/note-keeper/pkg/core"
)

func setupClient(t *testing.T) (*apitest.Server, *rest.Client) {
	t.Helper()

	srv := apitest.RunT(t)
	client, err := rest.NewClient(rest.Config{BaseURL: srv.URL()})
	require.NoError(t, err)
	return srv, client
}

func TestClient_CRUD(t *testing.T) {
	srv, client := setupClient(t)
	ctx := context.Background()

	srv.Seed("first", "alpha")
	srv.Seed("second", "beta")

	notes, err := client.List(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, "first", notes[0].Title, "backend order must be preserved")
	assert.Equal(t, "beta", notes[1].Content)
	assert.False(t, notes[0].UpdatedAt.IsZero(), "timestamps travel on the wire")

	created, err := client.Create(ctx, core.Note{Title: "third", Content: "gamma"})
	require.NoError(t, err)
	assert.True(t, created.Saved())
	assert.Equal(t, 3, srv.Len())

	created.Content = "gamma, revised"
	updated, err := client.Update(ctx, created)
	require.NoError(t, err)
	assert.Equal(t, "gamma, revised", updated.Content)

	stored, ok := srv.Get(created.ID)
	require.True(t, ok)
	assert.Equal(t, "gamma, revised", stored.Content)

	require.NoError(t, client.Delete(ctx, created.ID))
	_, ok = srv.Get(created.ID)
	assert.False(t, ok)
}

func TestClient_TextAlias(t *testing.T) {
	srv, client := setupClient(t)

	srv.Seed("legacy", "body in text field")
	srv.ServeText(true)

	notes, err := client.List(context.Background())
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "body in text field", notes[0].Content)
}

func TestClient_NotFound(t *testing.T) {
	_, client := setupClient(t)
	ctx := context.Background()

	_, err := client.Update(ctx, core.Note{ID: 999, Title: "ghost"})
	assert.ErrorIs(t, err, core.ErrNotFound)

	err = client.Delete(ctx, 999)
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestClient_ServerError(t *testing.T) {
	srv, client := setupClient(t)

	srv.FailNext(1)
	_, err := client.List(context.Background())
	require.Error(t, err)

	var apiErr *rest.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
	assert.Contains(t, apiErr.Body, "backend exploded")
}

func TestClient_CreateRejectsAssignedID(t *testing.T) {
	_, client := setupClient(t)

	_, err := client.Create(context.Background(), core.Note{ID: 5, Title: "nope"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already assigned")
}

func TestClient_RequestHeaders(t *testing.T) {
	var gotAgent, gotReqID string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
		gotReqID = r.Header.Get("X-Request-Id")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("[]"))
	}))
	defer ts.Close()

	client, err := rest.NewClient(rest.Config{BaseURL: ts.URL, UserAgent: "notekeeper/test"})
	require.NoError(t, err)

	_, err = client.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "notekeeper/test", gotAgent)
	assert.NotEmpty(t, gotReqID, "every request carries a correlation id")
}

func TestNewClient_Validation(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{"empty base URL", ""},
		{"missing scheme", "localhost:8080"},
		{"unsupported scheme", "ftp://example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := rest.NewClient(rest.Config{BaseURL: tt.url})
			assert.Error(t, err)
		})
	}
}

func TestClient_State(t *testing.T) {
	srv, client := setupClient(t)
	ctx := context.Background()

	srv.Seed("one", "")
	_, err := client.List(ctx)
	require.NoError(t, err)

	srv.FailNext(1)
	_, err = client.List(ctx)
	require.Error(t, err)

	state, ok := client.State().(rest.ClientState)
	require.True(t, ok)
	assert.Equal(t, int64(2), state.Requests)
	assert.Equal(t, int64(1), state.Failures)
	assert.Equal(t, srv.URL(), state.BaseURL)
	assert.Equal(t, "rest", client.ComponentType())
}

func TestClient_ContextCancelled(t *testing.T) {
	_, client := setupClient(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.List(ctx)
	assert.True(t, errors.Is(err, context.Canceled), "got %v", err)
}
