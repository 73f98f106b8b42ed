package notekeeper

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/Workflow-Manager-admin/note-keeper/internal/platform"
	"github.com/Workflow-Manager-admin/note-keeper/pkg/core"
)

// Option defines a functional option for configuring the session.
type Option = platform.Option

// WithTimeout sets the per-request timeout for API calls.
func WithTimeout(d time.Duration) Option {
	return platform.WithTimeout(d)
}

// WithUserAgent overrides the User-Agent header sent with every API call.
func WithUserAgent(agent string) Option {
	return platform.WithUserAgent(agent)
}

// WithHTTPClient injects a custom HTTP client (proxies, instrumented
// transports, test servers). When set, WithTimeout is ignored.
func WithHTTPClient(c *http.Client) Option {
	return platform.WithHTTPClient(c)
}

// WithLogger sets the logger for the session and its adapters.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithRepository allows injecting a custom backend adapter (e.g. an
// in-memory fake). If provided, the default REST adapter is skipped.
func WithRepository(repo core.Repository) Option {
	return platform.WithRepository(repo)
}

// WithAdapter allows specifying the backend adapter by name. Defaults to "rest".
func WithAdapter(name string) Option {
	return platform.WithAdapter(name)
}

// WithEventBuffer allows specifying the size of the event broker buffer.
func WithEventBuffer(size int) Option {
	return platform.WithEventBuffer(size)
}

// WithPollInterval sets the default interval for StartPolling.
func WithPollInterval(d time.Duration) Option {
	return platform.WithPollInterval(d)
}
