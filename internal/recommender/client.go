// Package recommender provides a client for the external outfit recommendation service.
package recommender

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/jonathan/outfit-curator/internal/types"
)

// Paths of the recommendation service's endpoints.
const (
	RecommendPath       = "/api/v1/recommend-outfits"
	FilterInventoryPath = "/api/v1/filter-inventory"
	HealthPath          = "/health"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// DefaultUserAgent is the user agent string for HTTP requests.
const DefaultUserAgent = "OutfitCurator/1.0"

// Observer is notified after every call to the service.
// status is 0 when no response was received.
type Observer interface {
	ObserveRequest(endpoint string, status int, duration time.Duration, err error)
}

// Options configures the client behavior.
type Options struct {
	Timeout    time.Duration
	UserAgent  string
	Headers    map[string]string
	HTTPClient *http.Client
	Observer   Observer
}

// DefaultOptions returns sensible defaults for the client.
func DefaultOptions() *Options {
	return &Options{
		Timeout:   DefaultTimeout,
		UserAgent: DefaultUserAgent,
	}
}

// HealthStatus is the body of the service's health endpoint.
type HealthStatus struct {
	Status    string `json:"status"`
	Message   string `json:"message,omitempty"`
	Version   string `json:"version,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
}

// Client talks to the recommendation service. It never retries; each call issues
// at most one HTTP request bound to the caller's context.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	userAgent  string
	headers    map[string]string
	observer   Observer
}

// New creates a client for the service rooted at baseURL.
func New(baseURL string, opts *Options) (*Client, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	parsed, err := url.Parse(baseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("invalid recommender base URL %q", baseURL)
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	return &Client{
		baseURL:    parsed,
		httpClient: httpClient,
		userAgent:  userAgent,
		headers:    opts.Headers,
		observer:   opts.Observer,
	}, nil
}

// BaseURL returns the service root the client was created with.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// Recommend posts the request and returns the outfits in response order.
// A null or empty response yields an empty slice; a null outfit is an UnexpectedError.
func (c *Client) Recommend(ctx context.Context, req *types.RecommendationRequest) ([]types.Outfit, error) {
	var decoded []*types.Outfit
	if err := c.do(ctx, http.MethodPost, RecommendPath, req, &decoded); err != nil {
		return nil, err
	}

	outfits := make([]types.Outfit, 0, len(decoded))
	for i, outfit := range decoded {
		if outfit == nil {
			return nil, &UnexpectedError{Cause: fmt.Errorf("outfit %d is null", i+1)}
		}
		outfits = append(outfits, *outfit)
	}
	return outfits, nil
}

// FilterInventory asks the service which items suit the user and occasion.
func (c *Client) FilterInventory(ctx context.Context, req *types.FilterInventoryRequest) ([]json.RawMessage, error) {
	var items []json.RawMessage
	if err := c.do(ctx, http.MethodPost, FilterInventoryPath, req, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []json.RawMessage{}
	}
	return items, nil
}

// Health queries the service's health endpoint.
func (c *Client) Health(ctx context.Context) (*HealthStatus, error) {
	var status HealthStatus
	if err := c.do(ctx, http.MethodGet, HealthPath, nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) (err error) {
	start := time.Now()
	status := 0
	defer func() {
		if c.observer != nil {
			c.observer.ObserveRequest(path, status, time.Since(start), err)
		}
	}()

	var reader io.Reader
	if body != nil {
		payload, marshalErr := json.Marshal(body)
		if marshalErr != nil {
			return &UnexpectedError{Cause: fmt.Errorf("failed to encode request: %w", marshalErr)}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL.JoinPath(path).String(), reader)
	if err != nil {
		return &UnexpectedError{Cause: err}
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range c.headers {
		req.Header.Set(key, value)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &UnexpectedError{Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()
	status = resp.StatusCode

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &UnexpectedError{Cause: fmt.Errorf("failed to read response body: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &RequestFailedError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return &UnexpectedError{Cause: fmt.Errorf("failed to decode response: %w", err)}
	}
	return nil
}
