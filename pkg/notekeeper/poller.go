package notekeeper

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/aretw0/lifecycle/pkg/core/worker"
)

// poller refreshes the session on a fixed interval so changes made by other
// clients show up without user action. It runs as a lifecycle worker.
type poller struct {
	*worker.BaseWorker
	session  *Session
	interval time.Duration
	cancel   context.CancelFunc
}

func newPoller(session *Session, interval time.Duration) *poller {
	return &poller{
		BaseWorker: worker.NewBaseWorker("session-poller"),
		session:    session,
		interval:   interval,
	}
}

func (p *poller) Start(ctx context.Context) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	status := p.State().Status
	if status != worker.StatusCreated && status != worker.StatusPending {
		return fmt.Errorf("poller already started (status: %s)", status)
	}

	runCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel

	p.SetStatus(worker.StatusRunning)
	return p.StartFunc(runCtx, p.run)
}

func (p *poller) Stop(ctx context.Context) error {
	if p.cancel != nil {
		p.StopRequested = true
		p.cancel()
	}

	return p.BaseWorker.Stop(ctx)
}

func (p *poller) State() worker.State {
	return p.ExportState(func(s *worker.State) {
		s.Metadata = map[string]string{
			worker.MetadataType: string(worker.TypeGoroutine),
		}
	})
}

// run is the poll loop.
func (p *poller) run(ctx context.Context) (err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			panicErr := fmt.Errorf("poller panic: %v", recovered)

			var stack string
			if p.session.logger.Enabled(ctx, slog.LevelDebug) {
				stack = string(debug.Stack())
			}

			if stack != "" {
				p.session.logger.Error("poller panic", "error", panicErr, "stack", stack)
			} else {
				p.session.logger.Error("poller panic", "error", panicErr)
			}
		}
	}()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := p.session.Refresh(ctx); err != nil {
				// The failure already sits on the banner; keep polling.
				p.session.logger.Debug("poll refresh failed", "error", err)
			}
		}
	}
}

// StartPolling begins auto-refreshing every interval. A non-positive
// interval falls back to the configured default.
func (s *Session) StartPolling(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = s.pollInterval
	}
	if interval <= 0 {
		return errors.New("poll interval not configured")
	}

	s.mu.Lock()
	if s.poller != nil {
		s.mu.Unlock()
		return errors.New("polling already active")
	}
	p := newPoller(s, interval)
	s.poller = p
	s.mu.Unlock()

	if err := p.Start(ctx); err != nil {
		s.mu.Lock()
		s.poller = nil
		s.mu.Unlock()
		return err
	}

	s.logger.Debug("polling started", "interval", interval)
	return nil
}

// StopPolling stops the auto-refresh worker and waits for it to wind down.
func (s *Session) StopPolling(ctx context.Context) {
	s.mu.Lock()
	p := s.poller
	s.poller = nil
	s.mu.Unlock()

	if p != nil {
		_ = p.Stop(ctx)
	}
}

// Polling reports whether the auto-refresh worker is active.
func (s *Session) Polling() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.poller != nil
}
