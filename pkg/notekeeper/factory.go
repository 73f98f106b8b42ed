package notekeeper

import (
	"log/slog"

	"github.com/Workflow-Manager-admin/note-keeper/internal/platform"
	"github.com/Workflow-Manager-admin/note-keeper/pkg/core"
)

const defaultEventBuffer = 100

// Open connects to the backend at baseURL and returns a ready session.
//
//	sess, err := notekeeper.Open("http://localhost:4000", notekeeper.WithLogger(logger))
func Open(baseURL string, opts ...Option) (*Session, error) {
	svc, err := platform.New(baseURL, opts...)
	if err != nil {
		return nil, err
	}

	return NewSession(svc, opts...), nil
}

// New builds the domain service without any page state.
// Most callers want Open; New serves headless integrations.
func New(baseURL string, opts ...Option) (*core.Service, error) {
	return platform.New(baseURL, opts...)
}

// NewSession wires a session over an existing service.
func NewSession(svc *core.Service, opts ...Option) *Session {
	st := platform.ParseSettings(opts...)

	logger := st.Logger
	if logger == nil {
		logger = slog.Default()
	}
	size := st.EventBuffer
	if size <= 0 {
		size = defaultEventBuffer
	}

	return &Session{
		svc:          svc,
		logger:       logger,
		broker:       newBroker(size),
		pollInterval: st.PollInterval,
	}
}
