package notekeeper

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/Workflow-Manager-admin/note-keeper/internal/platform"
	"github.com/Workflow-Manager-admin/note-keeper/pkg/core"
	keeper "github.com/Workflow-Manager-admin/note-keeper/pkg/notekeeper"
)

// Version exposes the version of the library.
const Version = "0.1.0"

// --- Types ---

// Note is a public alias for the domain note.
type Note = core.Note

// Event is a public alias for the change event.
type Event = core.Event

// EventType is a public alias for the change event type.
type EventType = core.EventType

// Repository is a public alias for the backend port.
type Repository = core.Repository

// Session is a public alias for the notes page session.
type Session = keeper.Session

// Draft is a public alias for the edit panel's working copy.
type Draft = keeper.Draft

// SessionState is a public alias for the session's diagnostic snapshot.
type SessionState = keeper.SessionState

// Event types emitted on the session feed.
const (
	EventCreate = core.EventCreate
	EventModify = core.EventModify
	EventDelete = core.EventDelete
)

// Sentinel errors surfaced by the service and adapters.
var (
	ErrNotFound      = core.ErrNotFound
	ErrTitleRequired = core.ErrTitleRequired
	ErrTitleTooLong  = core.ErrTitleTooLong
	ErrInvalidID     = core.ErrInvalidID
)

// --- Configuration ---

// Option defines a functional option for configuring the client.
type Option = platform.Option

// WithTimeout sets the per-request timeout for API calls.
func WithTimeout(d time.Duration) Option {
	return platform.WithTimeout(d)
}

// WithUserAgent overrides the User-Agent header sent with every API call.
func WithUserAgent(agent string) Option {
	return platform.WithUserAgent(agent)
}

// WithHTTPClient injects a custom HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return platform.WithHTTPClient(c)
}

// WithLogger sets the logger for the session and its adapters.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithRepository allows injecting a custom backend adapter.
func WithRepository(repo core.Repository) Option {
	return platform.WithRepository(repo)
}

// WithAdapter allows specifying the backend adapter to use by name.
func WithAdapter(name string) Option {
	return platform.WithAdapter(name)
}

// WithEventBuffer allows specifying the size of the event broker buffer.
func WithEventBuffer(size int) Option {
	return platform.WithEventBuffer(size)
}

// WithPollInterval sets the default interval for Session.StartPolling.
func WithPollInterval(d time.Duration) Option {
	return platform.WithPollInterval(d)
}

// --- Factory ---

// Open connects to the backend and returns a ready notes page session.
func Open(baseURL string, opts ...Option) (*Session, error) {
	return keeper.Open(baseURL, opts...)
}

// New creates the domain service without any page state.
func New(baseURL string, opts ...Option) (*core.Service, error) {
	return platform.New(baseURL, opts...)
}

// NewSession wires a session over an existing service.
func NewSession(svc *core.Service, opts ...Option) *Session {
	return keeper.NewSession(svc, opts...)
}

// Connect returns the raw backend repository, for callers that want the
// port without the service on top.
func Connect(baseURL string, opts ...Option) (core.Repository, error) {
	return platform.Init(baseURL, opts...)
}
