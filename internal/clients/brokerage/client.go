// Package brokerage provides a client for the trading backend API
package brokerage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/tradekit/tradekit/internal/common"
	"github.com/tradekit/tradekit/internal/interfaces"
)

const (
	DefaultBaseURL   = "https://api.tradebazaar.app/api"
	DefaultTimeout   = 30 * time.Second
	DefaultRateLimit = 10 // requests per second
)

// Client implements the BrokerageClient interface
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *common.Logger
	limiter    *rate.Limiter
	tokens     interfaces.TokenSource
}

// ClientOption configures the client
type ClientOption func(*Client)

// WithBaseURL sets the base URL
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithLogger sets the logger
func WithLogger(logger *common.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithRateLimit sets the rate limit
func WithRateLimit(requestsPerSecond int) ClientOption {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond)
	}
}

// WithTimeout sets the HTTP timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithTokenSource sets the bearer token source. The source is consulted
// fresh on every request; a "" result sends the request unauthenticated.
func WithTokenSource(tokens interfaces.TokenSource) ClientOption {
	return func(c *Client) {
		c.tokens = tokens
	}
}

// NewClient creates a new brokerage client
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		limiter: rate.NewLimiter(rate.Limit(DefaultRateLimit), DefaultRateLimit),
		logger:  common.NewSilentLogger(),
		tokens:  func() string { return "" },
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// APIError represents a non-success response from the backend. Message
// is the server-provided message field when one was decodable, otherwise
// a generic "API error: <status>". Error() surfaces Message verbatim so
// domain failures (insufficient funds, invalid symbol, duplicate
// watchlist entry) reach the user unchanged.
type APIError struct {
	StatusCode int
	Message    string
	Endpoint   string
}

func (e *APIError) Error() string {
	return e.Message
}

// messageEnvelope covers the backend's common {message} response shape.
type messageEnvelope struct {
	Message string `json:"message"`
}

// do performs a rate-limited JSON request against the backend.
//
// The bearer header is attached only when the token source currently
// yields a token. A JSON content-type is attached only when a body is
// present. A success response whose body is empty or not JSON is
// treated as "no data" rather than an error; callers see their result
// struct untouched.
func (c *Client) do(ctx context.Context, method, path string, body, result interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.tokens(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Accept", "application/json")

	corrID := uuid.New().String()[:8]
	req.Header.Set("X-Request-ID", corrID)

	c.logger.Debug().
		Str("method", method).
		Str("path", path).
		Str("correlation_id", corrID).
		Msg("Backend API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("API error: %d", resp.StatusCode),
			Endpoint:   path,
		}
		var env messageEnvelope
		if json.Unmarshal(data, &env) == nil && env.Message != "" {
			apiErr.Message = env.Message
		}
		c.logger.Debug().
			Int("status", resp.StatusCode).
			Str("path", path).
			Str("correlation_id", corrID).
			Msg("Backend API error response")
		return apiErr
	}

	if result == nil || len(data) == 0 {
		return nil
	}

	// Tolerate non-JSON success bodies as "no data"
	if err := json.Unmarshal(data, result); err != nil {
		c.logger.Debug().
			Str("path", path).
			Msg("Backend returned non-JSON success body, treating as empty")
	}

	return nil
}

// Ensure Client implements BrokerageClient
var _ interfaces.BrokerageClient = (*Client)(nil)
