// Package hrmsapi is the HTTP client adapter for the remote HRMS REST API.
//
// Two cross-cutting behaviors are layered onto every call: the request path
// attaches the persisted bearer token, and the response path intercepts 401s
// globally by clearing the token and firing the session-invalidated
// notification, regardless of which call triggered it. Everything else
// passes through to the caller.
package hrmsapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/peopledesk/console/internal/ports"
)

const defaultTimeout = 15 * time.Second

// maxErrorBody caps how much of an error response is retained for callers.
const maxErrorBody = 64 << 10

// Options holds the dependencies for creating a Client.
type Options struct {
	// BaseURL is the root of the HRMS API, without a trailing slash.
	BaseURL string

	// Tokens is read on every request and cleared on any 401 response.
	Tokens ports.TokenStore

	// OnUnauthorized is the session-invalidated notification, fired once per
	// 401 response after the token has been cleared. The adapter never
	// navigates; routing reacts to the session state instead.
	OnUnauthorized func()

	// HTTPClient overrides the transport (tests). A default with Timeout is
	// used when nil.
	HTTPClient *http.Client

	// Timeout applies to the default transport only.
	Timeout time.Duration

	Logger *slog.Logger
}

// Client dispatches verb-shaped requests against the HRMS API.
type Client struct {
	base           *url.URL
	http           *http.Client
	tokens         ports.TokenStore
	onUnauthorized func()
	logger         *slog.Logger
}

// New creates a Client from options.
func New(opts Options) (*Client, error) {
	if opts.BaseURL == "" {
		return nil, errors.New("base URL is required")
	}
	if opts.Tokens == nil {
		return nil, errors.New("token store is required")
	}

	base, err := url.Parse(strings.TrimRight(opts.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base URL: %w", err)
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		base:           base,
		http:           httpClient,
		tokens:         opts.Tokens,
		onUnauthorized: opts.OnUnauthorized,
		logger:         logger,
	}, nil
}

// Get issues a GET request. Query may be nil.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

// Post issues a POST request with a JSON body. Body may be nil.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

// Put issues a PUT request with a JSON body. Body may be nil.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	req, err := c.newRequest(ctx, method, path, query, body)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		// Transport failure: no server response, so no status. Callers treat
		// the absence of a status as "unknown/retry-worthy", distinct from a
		// defined HTTP error.
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.logger.Debug("close response body failed", "error", cerr)
		}
	}()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		return fmt.Errorf("%s %s: read response: %w", method, path, err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		c.invalidateSession()
		return newError(resp.StatusCode, payload)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return newError(resp.StatusCode, payload)
	}

	if out == nil || len(payload) == 0 {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("%s %s: decode response: %w", method, path, err)
	}
	return nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body any) (*http.Request, error) {
	u := c.base.JoinPath(path)
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	// Attach the bearer token when one is persisted. The token may be
	// cleared between read and use by a concurrent 401; that is fine, the
	// backend is the authority on validity.
	token, err := c.tokens.Load()
	switch {
	case err == nil:
		req.Header.Set("Authorization", "Bearer "+token)
	case errors.Is(err, ports.ErrNoToken):
		// Logged out: send the request unauthenticated.
	default:
		c.logger.Warn("load session token failed", "error", err)
	}

	return req, nil
}

// invalidateSession clears the persisted token and fires the
// session-invalidated notification. Fires on every 401, even for calls the
// caller meant to handle locally (e.g. a background poll).
func (c *Client) invalidateSession() {
	if err := c.tokens.Clear(); err != nil {
		c.logger.Warn("clear session token failed", "error", err)
	}
	if c.onUnauthorized != nil {
		c.onUnauthorized()
	}
}
