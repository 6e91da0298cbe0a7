package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

var (
	// ErrUnauthorized is returned on HTTP 401 from any endpoint. The
	// session-expired hook has already fired by the time callers see it.
	ErrUnauthorized = errors.New("session expired")

	ErrNotFound = errors.New("not found")
)

// envelope is the backend's standard response wrapper. Endpoints that
// return bare JSON are handled by falling back to the raw body.
type envelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// Client is the bearer-authorized HTTP client every service goes
// through. 401 handling is centralized here instead of per call site.
type Client struct {
	BaseURL string
	HTTP    *http.Client

	tokenFn   func() string
	expiredFn func()
	log       *slog.Logger
}

func New(baseURL string, timeout time.Duration, log *slog.Logger) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// SetTokenSource wires the auth store in; an empty token sends no header.
func (c *Client) SetTokenSource(fn func() string) { c.tokenFn = fn }

// OnSessionExpired registers the single hook invoked on any 401.
func (c *Client) OnSessionExpired(fn func()) { c.expiredFn = fn }

func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.Do(ctx, http.MethodGet, path, nil, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPatch, path, nil, body, out)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	return c.Do(ctx, http.MethodDelete, path, nil, nil, nil)
}

// Do performs one request. out may be nil when the response body is
// irrelevant; extra headers (e.g. Idempotency-Key) ride on headers.
func (c *Client) Do(ctx context.Context, method, path string, headers map[string]string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokenFn != nil {
		if token := c.tokenFn(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		c.log.Warn("session expired", "path", path)
		if c.expiredFn != nil {
			c.expiredFn()
		}
		return ErrUnauthorized
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := serverMessage(raw)
		if resp.StatusCode == http.StatusNotFound {
			return fmt.Errorf("%s: %w", msg, ErrNotFound)
		}
		return errors.New(msg)
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	return decodeBody(raw, out)
}

// decodeBody unwraps the {data, message} envelope when present and falls
// back to the raw body for endpoints that return bare JSON.
func decodeBody(raw []byte, out any) error {
	var env envelope
	if err := json.Unmarshal(raw, &env); err == nil {
		if len(env.Data) > 0 && string(env.Data) != "null" {
			if err := json.Unmarshal(env.Data, out); err != nil {
				return fmt.Errorf("decode response data: %w", err)
			}
			return nil
		}
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// serverMessage prefers the server-provided message, with a generic
// fallback when the body is not the standard envelope.
func serverMessage(raw []byte) string {
	var env envelope
	if err := json.Unmarshal(raw, &env); err == nil && env.Message != "" {
		return env.Message
	}
	if len(raw) > 0 && len(raw) < 200 {
		return strings.TrimSpace(string(raw))
	}
	return "request failed"
}
