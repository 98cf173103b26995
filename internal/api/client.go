package api

import (
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// Defaults match the backend in cmd/api started with no environment.
const (
	DefaultBaseURL   = "http://localhost:3001"
	DefaultUserAgent = "nexus-dashboard"

	defaultTimeout      = 10 * time.Second
	defaultReadRetries  = 2
	defaultRetryBackoff = 250 * time.Millisecond
)

// Client talks to the dashboard backend: notifications, orders, portfolio,
// market data and executions. Reads are retried on 5xx and 429; writes
// (toggling a notification, placing an order) go out exactly once so the
// notification store sees the first failure and can roll back.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	logger     *slog.Logger
	reads      retryPolicy
}

// retryPolicy applies to GET requests only.
type retryPolicy struct {
	retries int
	backoff time.Duration
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// NewClient returns a client for the backend at baseURL, or DefaultBaseURL
// when baseURL is empty.
func NewClient(baseURL string, opts ...ClientOption) *Client {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:    baseURL,
		userAgent:  DefaultUserAgent,
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     slog.Default(),
		reads:      retryPolicy{retries: defaultReadRetries, backoff: defaultRetryBackoff},
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With("component", "api", "base_url", c.baseURL)
	return c
}

// BaseURL returns the backend root the client sends requests to.
func (c *Client) BaseURL() string { return c.baseURL }

func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithRetries sets how many times a failed read is retried and the initial
// backoff, which doubles per attempt. Writes are never retried.
func WithRetries(retries int, backoff time.Duration) ClientOption {
	return func(c *Client) {
		c.reads = retryPolicy{retries: retries, backoff: backoff}
	}
}

func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithHTTPClient replaces the transport; WithTimeout applied after it
// adjusts the supplied client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithUserAgent sets the User-Agent header, e.g. "nexus-dashboard/1.4 (cli)".
func WithUserAgent(ua string) ClientOption {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}
