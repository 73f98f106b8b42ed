package editor

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Workflow-Manager-admin/note-keeper/internal/notefile"
)

func TestCommand(t *testing.T) {
	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", "")
	assert.Equal(t, "vi", Command())

	t.Setenv("EDITOR", "nano")
	assert.Equal(t, "nano", Command())

	// VISUAL wins over EDITOR.
	t.Setenv("VISUAL", "code --wait")
	assert.Equal(t, "code --wait", Command())
}

func TestDebouncer_Coalesces(t *testing.T) {
	d := newDebouncer(20 * time.Millisecond)
	var fired int64

	// A burst of adds within the window collapses into one callback.
	for i := 0; i < 5; i++ {
		d.add("k", func() { atomic.AddInt64(&fired, 1) })
		time.Sleep(2 * time.Millisecond)
	}

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int64(1), atomic.LoadInt64(&fired))
}

func TestDebouncer_StopAndWait(t *testing.T) {
	d := newDebouncer(10 * time.Millisecond)
	var fired int64

	d.add("k", func() { atomic.AddInt64(&fired, 1) })
	d.stopAndWait(time.Second)

	// Nothing pending fires after stop, and new work is rejected.
	d.add("k", func() { atomic.AddInt64(&fired, 1) })
	time.Sleep(50 * time.Millisecond)
	assert.Zero(t, atomic.LoadInt64(&fired))
}

func TestWatcher_DeliversSaves(t *testing.T) {
	tmp := t.TempDir()
	file := filepath.Join(tmp, "scratch.md")
	require.NoError(t, os.WriteFile(file, []byte("---\ntitle: v1\n---\nfirst"), 0o644))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	docs := make(chan *notefile.Document, 4)
	w := newWatcher(file, func(d *notefile.Document) { docs <- d }, watcherConfig{
		Debounce: 10 * time.Millisecond,
	})
	require.NoError(t, w.Start(ctx))
	defer w.Stop(context.Background())

	// Give the watcher a moment to arm before the first save.
	time.Sleep(100 * time.Millisecond)

	require.NoError(t, os.WriteFile(file, []byte("---\ntitle: v2\n---\nsecond"), 0o644))

	select {
	case doc := <-docs:
		assert.Equal(t, "v2", doc.Title)
		assert.Equal(t, "second", doc.Content)
	case <-ctx.Done():
		t.Fatal("timed out waiting for save delivery")
	}
}

func TestWatcher_IgnoresSiblings(t *testing.T) {
	tmp := t.TempDir()
	file := filepath.Join(tmp, "scratch.md")
	require.NoError(t, os.WriteFile(file, []byte("body"), 0o644))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	docs := make(chan *notefile.Document, 4)
	w := newWatcher(file, func(d *notefile.Document) { docs <- d }, watcherConfig{
		Debounce: 10 * time.Millisecond,
	})
	require.NoError(t, w.Start(ctx))
	defer w.Stop(context.Background())

	time.Sleep(100 * time.Millisecond)

	// A different file in the same directory must not trigger a delivery.
	require.NoError(t, os.WriteFile(filepath.Join(tmp, "other.md"), []byte("noise"), 0o644))

	select {
	case doc := <-docs:
		t.Fatalf("unexpected delivery: %+v", doc)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestEdit_RoundTrip(t *testing.T) {
	// "true" exits without touching the file, so Edit returns the note as
	// it was written to disk.
	doc := &notefile.Document{ID: 3, Title: "Untouched", Content: "as written\n"}

	got, err := Edit(context.Background(), doc, Options{Command: "true"})
	require.NoError(t, err)
	assert.Equal(t, doc.ID, got.ID)
	assert.Equal(t, doc.Title, got.Title)
	assert.Equal(t, doc.Content, got.Content)
}

func TestEdit_EditorFails(t *testing.T) {
	doc := &notefile.Document{Title: "Doomed"}

	_, err := Edit(context.Background(), doc, Options{Command: "false"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "editor")
}
