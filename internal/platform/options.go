package platform

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/Workflow-Manager-admin/note-keeper/pkg/core"
)

// options holds the internal configuration for the note keeper.
type options struct {
	repository core.Repository
	logger     *slog.Logger
	adapter    string
	config     map[string]interface{}
}

// Option defines a functional option for configuring the note keeper.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		repository: nil,
		logger:     nil,
		adapter:    "rest",
		config:     make(map[string]interface{}),
	}
}

// WithTimeout sets the per-request timeout for API calls.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		o.config["timeout"] = d
	}
}

// WithUserAgent overrides the User-Agent header sent with every API call.
func WithUserAgent(agent string) Option {
	return func(o *options) {
		o.config["user_agent"] = agent
	}
}

// WithHTTPClient injects a custom HTTP client (proxies, instrumented
// transports, test servers). When set, WithTimeout is ignored.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) {
		o.config["http_client"] = c
	}
}

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithRepository allows injecting a custom backend adapter (e.g. mock, in-memory).
// If provided, the default REST adapter will be skipped.
func WithRepository(repo core.Repository) Option {
	return func(o *options) {
		o.repository = repo
	}
}

// WithAdapter allows specifying the backend adapter to use by name (e.g. "rest").
// Defaults to "rest".
func WithAdapter(name string) Option {
	return func(o *options) {
		o.adapter = name
	}
}

// WithEventBuffer allows specifying the size of the event broker buffer.
// Zero means default (100).
func WithEventBuffer(size int) Option {
	return func(o *options) {
		o.config["event_buffer"] = size
	}
}

// WithPollInterval sets the default interval for the session's auto-refresh
// poller. Zero leaves polling off until started explicitly.
func WithPollInterval(d time.Duration) Option {
	return func(o *options) {
		o.config["poll_interval"] = d
	}
}

// Settings carries the cross-cutting knobs the session layer needs.
type Settings struct {
	Logger       *slog.Logger
	EventBuffer  int
	PollInterval time.Duration
}

// ParseSettings extracts session-level settings from an option list.
func ParseSettings(opts ...Option) Settings {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	s := Settings{Logger: o.logger}
	if size, ok := o.config["event_buffer"].(int); ok && size > 0 {
		s.EventBuffer = size
	}
	if d, ok := o.config["poll_interval"].(time.Duration); ok {
		s.PollInterval = d
	}
	return s
}
