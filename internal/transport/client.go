// Package transport is the JSON HTTP client the dashboard uses to talk to
// the API. A 401 answer triggers one session refresh followed by one retry.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"strings"

	"github.com/odyssey-erp/supplyhub/internal/shared"
)

// RefreshPath is the endpoint called after a 401.
const RefreshPath = "/auth/refresh"

// ErrSessionExpired is returned when the refresh after a 401 fails.
var ErrSessionExpired = errors.New("transport: session expired")

// Error is a non-2xx answer decoded from an RFC7807 body when possible.
type Error struct {
	Status int
	Title  string
	Detail string
	Fields shared.FieldErrors
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("transport: %d %s", e.Status, e.Title)
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

// Unwrap lets callers match the shared sentinels.
func (e *Error) Unwrap() error {
	switch e.Status {
	case http.StatusNotFound:
		return shared.ErrNotFound
	case http.StatusConflict:
		return shared.ErrDuplicate
	case http.StatusUnprocessableEntity:
		return &shared.ValidationError{Fields: e.Fields}
	}
	return nil
}

// IsNotFound reports whether err is a 404 answer.
func IsNotFound(err error) bool {
	return errors.Is(err, shared.ErrNotFound)
}

// Client sends JSON requests relative to a base URL. Cookies set by the
// server, including the session, are kept in a jar.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// New builds a Client for baseURL.
func New(baseURL string, logger *slog.Logger, opts ...Option) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("transport: cookie jar: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Jar: jar},
		logger:  logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Get decodes the answer of GET path into out.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.Do(ctx, http.MethodGet, path, nil, out)
}

// Post sends body to path and decodes the answer into out.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPost, path, body, out)
}

// Put sends body to path and decodes the answer into out.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPut, path, body, out)
}

// Do performs one request. out may be nil. A 401 is followed by exactly one
// refresh and one retry of the original request.
func (c *Client) Do(ctx context.Context, method, path string, body, out any) error {
	var payload []byte
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("transport: encode %s %s: %w", method, path, err)
		}
		payload = raw
	}

	resp, err := c.send(ctx, method, path, payload)
	if err != nil {
		return err
	}
	if resp.StatusCode == http.StatusUnauthorized && path != RefreshPath {
		drain(resp)
		c.logger.Debug("refreshing session", slog.String("path", path))
		if err := c.refresh(ctx); err != nil {
			return err
		}
		resp, err = c.send(ctx, method, path, payload)
		if err != nil {
			return err
		}
	}
	defer resp.Body.Close()
	return decode(resp, out)
}

func (c *Client) refresh(ctx context.Context) error {
	resp, err := c.send(ctx, http.MethodPost, RefreshPath, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSessionExpired, err)
	}
	defer drain(resp)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: refresh answered %d", ErrSessionExpired, resp.StatusCode)
	}
	return nil
}

func (c *Client) send(ctx context.Context, method, path string, payload []byte) (*http.Response, error) {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("transport: build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("transport: %s %s: %w", method, path, err)
	}
	return resp, nil
}

func decode(resp *http.Response, out any) error {
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return problem(resp)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("transport: decode %s: %w", resp.Request.URL.Path, err)
	}
	return nil
}

func problem(resp *http.Response) error {
	e := &Error{Status: resp.StatusCode, Title: http.StatusText(resp.StatusCode)}
	var body struct {
		Title  string             `json:"title"`
		Detail string             `json:"detail"`
		Errors shared.FieldErrors `json:"errors"`
	}
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err := json.Unmarshal(raw, &body); err == nil {
		if body.Title != "" {
			e.Title = body.Title
		}
		e.Detail = body.Detail
		e.Fields = body.Errors
	}
	return e
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}
