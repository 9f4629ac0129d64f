package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// maxResponseBody caps how much of a response is read into memory.
const maxResponseBody = 1 << 20

// Client issues authenticated calls against the marketplace API. The bearer
// credential is owned by the instance and guarded by a mutex: there is no
// process-wide header state, so two clients can carry two sessions and a
// credential swap can never leak into an unrelated call.
//
// Requests are single attempts; the client never retries. Auth flows must
// observe every failure, and the read-only dashboard fetches degrade
// gracefully instead.
type Client struct {
	apiBase    string
	httpClient *http.Client
	userAgent  string

	mu         sync.RWMutex
	credential string
}

// New creates a client for the API served under baseURL. The "/api" prefix
// is appended here; callers pass backend-relative paths like "/auth/login".
func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("%w: base URL is required", ErrInvalidBaseURL)
	}

	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%w: only http and https schemes are supported", ErrInvalidBaseURL)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("%w: host is required", ErrInvalidBaseURL)
	}

	c := &Client{
		apiBase:   strings.TrimRight(baseURL, "/") + "/api",
		userAgent: "domkit/1.0",
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// SetCredential attaches the bearer credential to all subsequent requests
// issued by this client instance.
func (c *Client) SetCredential(credential string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.credential = credential
}

// ClearCredential removes the bearer credential; subsequent requests go out
// unauthenticated.
func (c *Client) ClearCredential() {
	c.SetCredential("")
}

// Credential returns the currently configured bearer credential, if any.
func (c *Client) Credential() (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.credential, c.credential != ""
}

// Do performs one API call. body (when non-nil) is marshaled to JSON; a 2xx
// response is decoded into out (when non-nil). Non-2xx responses become
// *APIError carrying the server's detail message; transport failures wrap
// ErrNetwork and malformed response bodies wrap ErrDecode. No retries.
func (c *Client) Do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.apiBase+path, reader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	// Credential is read once per request; a concurrent SetCredential affects
	// later calls, never one already in flight.
	if credential, ok := c.Credential(); ok {
		req.Header.Set("Authorization", "Bearer "+credential)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return errors.Join(ErrNetwork, ctx.Err(), err)
		}
		return errors.Join(ErrNetwork, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return errors.Join(ErrNetwork, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newAPIError(resp.StatusCode, data)
	}

	if out == nil || len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		return errors.Join(ErrDecode, err)
	}

	return nil
}

// newAPIError extracts the server's structured detail field when present.
// FastAPI-style validation failures ship detail as an object; only plain
// string details are surfaced to users, anything else stays generic.
func newAPIError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: statusCode}

	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && len(envelope.Detail) > 0 {
		var detail string
		if err := json.Unmarshal(envelope.Detail, &detail); err == nil {
			apiErr.Detail = detail
		}
	}

	return apiErr
}
