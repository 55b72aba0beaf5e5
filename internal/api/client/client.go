// Package client provides a typed HTTP client for the flip-analyzer API,
// used by the CLI commands.
package client

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const defaultTimeout = 5 * time.Minute // analysis calls wait on vision and eBay

// Client is a typed HTTP client for the flip-analyzer API.
type Client struct {
	rc *resty.Client
}

// New creates a new API client targeting the given base URL.
func New(baseURL string, opts ...Option) *Client {
	rc := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(defaultTimeout).
		SetHeader("Accept", "application/json")

	c := &Client{rc: rc}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Option configures the Client.
type Option func(*Client)

// WithTimeout overrides the default request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.rc.SetTimeout(d)
	}
}

// apiError is the error body the API returns for failed requests.
type apiError struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
	Error_ string `json:"error"`
}

func (e *apiError) message() string {
	if e.Detail != "" {
		return e.Detail
	}
	if e.Title != "" {
		return e.Title
	}
	return e.Error_
}

// checkResponse converts a non-2xx resty response into an error.
func checkResponse(resp *resty.Response, err error) error {
	if err != nil {
		if strings.Contains(err.Error(), "connection refused") {
			return fmt.Errorf("API server not running at %s", resp.Request.URL)
		}
		return fmt.Errorf("sending request: %w", err)
	}
	if resp.IsError() {
		if apiErr, ok := resp.Error().(*apiError); ok && apiErr.message() != "" {
			return fmt.Errorf("API error (HTTP %d): %s", resp.StatusCode(), apiErr.message())
		}
		return fmt.Errorf("API error (HTTP %d): %s", resp.StatusCode(), resp.String())
	}
	return nil
}
