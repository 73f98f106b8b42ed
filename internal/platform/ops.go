package platform

import (
	"fmt"
	"net/http"
	"time"

	"github.com/Workflow-Manager-admin/note-keeper/pkg/adapters/rest"
	"github.com/Workflow-Manager-admin/note-keeper/pkg/core"
)

// DefaultBaseURL is where a development backend usually listens.
const DefaultBaseURL = "http://localhost:4000"

// Init builds the repository for the given backend.
// The 'uri' argument is adapter-specific (the API base URL for 'rest').
//
// It returns the configured core.Repository.
func Init(uri string, opts ...Option) (core.Repository, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	// 1. Check for injected repository
	if o.repository != nil {
		return o.repository, nil
	}

	// 2. Initialize based on Adapter
	switch o.adapter {
	case "rest":
		return initREST(uri, o)
	default:
		return nil, fmt.Errorf("unknown adapter: %s", o.adapter)
	}
}

// initREST handles the initialization logic for the REST adapter.
func initREST(baseURL string, o *options) (core.Repository, error) {
	timeout, _ := o.config["timeout"].(time.Duration)
	agent, _ := o.config["user_agent"].(string)
	httpClient, _ := o.config["http_client"].(*http.Client)

	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return rest.NewClient(rest.Config{
		BaseURL:    baseURL,
		Timeout:    timeout,
		UserAgent:  agent,
		Logger:     o.logger,
		HTTPClient: httpClient,
	})
}
