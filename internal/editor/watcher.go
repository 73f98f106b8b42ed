package editor

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/aretw0/lifecycle/pkg/core/worker"
	"github.com/fsnotify/fsnotify"

	"github.com/Workflow-Manager-admin/note-keeper/internal/notefile"
)

const defaultDebounce = 50 * time.Millisecond

type watcherConfig struct {
	Logger   *slog.Logger
	Debounce time.Duration
}

// watcher delivers the scratch file's parsed content on every editor save.
// It runs as a lifecycle worker alongside the editor process.
type watcher struct {
	*worker.BaseWorker
	file     string
	onChange func(*notefile.Document)
	config   watcherConfig
	fsw      *fsnotify.Watcher
	debounce *debouncer
	cancel   context.CancelFunc
}

func newWatcher(file string, onChange func(*notefile.Document), cfg watcherConfig) *watcher {
	if cfg.Debounce <= 0 {
		cfg.Debounce = defaultDebounce
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	return &watcher{
		BaseWorker: worker.NewBaseWorker("editor-watcher"),
		file:       file,
		onChange:   onChange,
		config:     cfg,
	}
}

func (w *watcher) Start(ctx context.Context) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	status := w.State().Status
	if status != worker.StatusCreated && status != worker.StatusPending {
		return fmt.Errorf("watcher already started (status: %s)", status)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}

	// Watch the directory: editors replace the file via rename, which
	// silently detaches a watch placed on the file itself.
	if err := fsw.Add(filepath.Dir(w.file)); err != nil {
		_ = fsw.Close()
		return err
	}

	w.fsw = fsw
	w.debounce = newDebouncer(w.config.Debounce)

	runCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	w.SetStatus(worker.StatusRunning)
	return w.StartFunc(runCtx, w.run)
}

func (w *watcher) Stop(ctx context.Context) error {
	if w.cancel != nil {
		w.StopRequested = true
		w.cancel()
	}

	return w.BaseWorker.Stop(ctx)
}

func (w *watcher) State() worker.State {
	return w.ExportState(func(s *worker.State) {
		s.Metadata = map[string]string{
			worker.MetadataType: string(worker.TypeGoroutine),
		}
	})
}

func (w *watcher) run(ctx context.Context) (err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			panicErr := fmt.Errorf("watcher panic: %v", recovered)

			var stack string
			if w.config.Logger.Enabled(ctx, slog.LevelDebug) {
				stack = string(debug.Stack())
			}

			if stack != "" {
				w.config.Logger.Error("watcher panic", "error", panicErr, "stack", stack)
			} else {
				w.config.Logger.Error("watcher panic", "error", panicErr)
			}
		}
	}()
	defer w.fsw.Close()

	err = w.loop(ctx)

	// Stop accepting saves and let in-flight deliveries finish before the
	// caller tears the scratch file down.
	w.debounce.stopAndWait(5 * time.Second)

	return err
}

func (w *watcher) loop(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fsw.Events:
			if !ok {
				if w.StopRequested || ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher events channel closed")
			}
			if !w.relevant(event) {
				continue
			}
			w.debounce.add(w.file, func() { w.deliver(ctx) })

		case werr, ok := <-w.fsw.Errors:
			if !ok {
				if w.StopRequested || ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher errors channel closed")
			}
			w.config.Logger.Error("fsnotify error", "error", werr)
		}
	}
}

// relevant filters directory noise down to saves of the scratch file.
func (w *watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != filepath.Clean(w.file) {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}

// deliver re-reads the scratch file and hands the parsed document to the
// callback. Transient read failures are expected mid-rename and skipped.
func (w *watcher) deliver(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	f, err := os.Open(w.file)
	if err != nil {
		w.config.Logger.Debug("scratch file unreadable", "error", err)
		return
	}
	defer f.Close()

	doc, err := notefile.Parse(f)
	if err != nil {
		w.config.Logger.Warn("scratch file unparsable", "error", err)
		return
	}

	w.onChange(doc)
}
