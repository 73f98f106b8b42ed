package rest

import (
	"github.com/aretw0/introspection"
)

// ClientState exposes internal state for observability.
type ClientState struct {
	BaseURL  string `json:"base_url"`
	Requests int64  `json:"requests"`
	Failures int64  `json:"failures"`
}

// State implements introspection.Introspectable.
func (c *Client) State() any {
	c.mu.Lock()
	defer c.mu.Unlock()

	return ClientState{
		BaseURL:  c.base.String(),
		Requests: c.requests,
		Failures: c.failures,
	}
}

// ComponentType implements introspection.Component.
func (c *Client) ComponentType() string {
	return "rest"
}

var _ introspection.Introspectable = (*Client)(nil)
var _ introspection.Component = (*Client)(nil)

func (c *Client) record(failed bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.requests++
	if failed {
		c.failures++
	}
}
