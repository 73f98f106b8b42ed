// Package editor opens notes in the user's text editor. The note is written
// to a scratch Markdown file, the editor runs attached to the terminal, and
// the file is parsed back when the editor exits. An optional watcher turns
// every save inside the editor into an immediate callback, so long sessions
// can push to the backend without waiting for the editor to close.
package editor

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/Workflow-Manager-admin/note-keeper/internal/notefile"
)

// Options configure an editing session.
type Options struct {
	// Command is the editor command line. Empty means Command().
	Command string
	// OnChange, when set, receives the parsed document after every save
	// inside the editor, debounced.
	OnChange func(*notefile.Document)
	// Debounce is the quiet window for OnChange. Zero means 50ms.
	Debounce time.Duration
	Logger   *slog.Logger
}

// Command returns the editor command line, honoring $VISUAL then $EDITOR.
func Command() string {
	if v := os.Getenv("VISUAL"); v != "" {
		return v
	}
	if e := os.Getenv("EDITOR"); e != "" {
		return e
	}
	return "vi"
}

// Edit writes doc to a scratch file, runs the editor on it, and returns the
// parsed result after the editor exits.
func Edit(ctx context.Context, doc *notefile.Document, opts Options) (*notefile.Document, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	text, err := doc.String()
	if err != nil {
		return nil, err
	}

	f, err := os.CreateTemp("", "notekeeper-*.md")
	if err != nil {
		return nil, fmt.Errorf("create scratch file: %w", err)
	}
	path := f.Name()
	defer os.Remove(path)

	if _, err := f.WriteString(text); err != nil {
		f.Close()
		return nil, fmt.Errorf("write scratch file: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, err
	}

	if opts.OnChange != nil {
		w := newWatcher(path, opts.OnChange, watcherConfig{
			Logger:   logger,
			Debounce: opts.Debounce,
		})
		if err := w.Start(ctx); err != nil {
			return nil, err
		}
		defer w.Stop(context.Background())
	}

	command := opts.Command
	if command == "" {
		command = Command()
	}
	logger.Debug("opening editor", "command", command, "file", path)

	if err := run(ctx, command, path); err != nil {
		return nil, err
	}

	out, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reopen scratch file: %w", err)
	}
	defer out.Close()

	return notefile.Parse(out)
}

// run launches the editor attached to the terminal. The command may carry
// arguments of its own, e.g. "code --wait".
func run(ctx context.Context, command, path string) error {
	parts := strings.Fields(command)
	args := append(parts[1:], path)

	cmd := exec.CommandContext(ctx, parts[0], args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("editor %q: %w", parts[0], err)
	}
	return nil
}
