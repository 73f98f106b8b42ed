package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Workflow-Manager-admin/note-keeper/pkg/core"
)

const defaultTimeout = 10 * time.Second

// Client implements core.Repository against a REST notes backend.
// It holds no note state of its own; every read goes back to the backend.
type Client struct {
	base   *url.URL
	http   *http.Client
	agent  string
	logger *slog.Logger

	mu       sync.Mutex
	requests int64
	failures int64
}

// Config holds the configuration for the REST repository.
type Config struct {
	BaseURL    string
	Timeout    time.Duration // Per-request timeout. Ignored when HTTPClient is set.
	UserAgent  string
	Logger     *slog.Logger
	HTTPClient *http.Client // Optional override, e.g. for tests.
}

// NewClient creates a new REST-backed repository.
// The notes collection lives under {BaseURL}/notes.
func NewClient(config Config) (*Client, error) {
	raw := strings.TrimRight(config.BaseURL, "/")
	if raw == "" {
		return nil, fmt.Errorf("base URL is required")
	}
	base, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", config.BaseURL, err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("unsupported scheme %q in base URL", base.Scheme)
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		timeout := config.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	agent := config.UserAgent
	if agent == "" {
		agent = "notekeeper"
	}

	return &Client{
		base:   base,
		http:   httpClient,
		agent:  agent,
		logger: logger,
	}, nil
}

// List returns all notes in backend order.
func (c *Client) List(ctx context.Context) ([]core.Note, error) {
	var dtos []noteDTO
	if err := c.do(ctx, http.MethodGet, c.notesURL(), nil, &dtos); err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}

	notes := make([]core.Note, 0, len(dtos))
	for _, d := range dtos {
		notes = append(notes, d.note())
	}
	return notes, nil
}

// Create posts a new note and returns the backend's copy with the assigned ID.
func (c *Client) Create(ctx context.Context, n core.Note) (core.Note, error) {
	if n.ID != 0 {
		return core.Note{}, fmt.Errorf("create note: ID %d already assigned", n.ID)
	}

	var dto noteDTO
	if err := c.do(ctx, http.MethodPost, c.notesURL(), newPayload(n), &dto); err != nil {
		return core.Note{}, fmt.Errorf("create note: %w", err)
	}
	return dto.note(), nil
}

// Update replaces the note identified by n.ID and returns the backend's copy.
func (c *Client) Update(ctx context.Context, n core.Note) (core.Note, error) {
	var dto noteDTO
	if err := c.do(ctx, http.MethodPut, c.noteURL(n.ID), newPayload(n), &dto); err != nil {
		return core.Note{}, fmt.Errorf("update note %d: %w", n.ID, err)
	}

	out := dto.note()
	if out.ID == 0 {
		// Backends answering 204 No Content send no body back.
		out = n
	}
	return out, nil
}

// Delete removes a note on the backend.
func (c *Client) Delete(ctx context.Context, id int64) error {
	if err := c.do(ctx, http.MethodDelete, c.noteURL(id), nil, nil); err != nil {
		return fmt.Errorf("delete note %d: %w", id, err)
	}
	return nil
}

func (c *Client) notesURL() string {
	return c.base.JoinPath("notes").String()
}

func (c *Client) noteURL(id int64) string {
	return c.base.JoinPath("notes", strconv.FormatInt(id, 10)).String()
}

// do performs one request/response cycle and decodes a JSON body into out
// when out is non-nil and the backend sent one.
func (c *Client) do(ctx context.Context, method, u string, payload, out any) error {
	err := c.roundTrip(ctx, method, u, payload, out)
	c.record(err != nil)
	return err
}

func (c *Client) roundTrip(ctx context.Context, method, u string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode payload: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return err
	}

	reqID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.agent)
	req.Header.Set("X-Request-Id", reqID)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debug("api request", "method", method, "url", u, "request_id", reqID)

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return core.ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn("api error",
			"method", method, "url", u, "status", resp.StatusCode, "request_id", reqID)
		return &APIError{Status: resp.StatusCode, Body: excerpt(data)}
	}

	if out != nil && len(bytes.TrimSpace(data)) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

var _ core.Repository = (*Client)(nil)
