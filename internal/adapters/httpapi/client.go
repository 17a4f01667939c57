// Package httpapi implements the marketplace gateways over the REST API.
package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/example/atelier/internal/ctxutil"
	"github.com/example/atelier/internal/ports/secondary"
)

// Stage token modes, matching config.StageToken*.
const (
	StageTokenTarget  = "target"
	StageTokenCurrent = "current"
)

const maxBodyBytes = 4 << 20

// Client calls the marketplace REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	stageToken string
	logger     *log.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout bounds every request. Zero keeps the transport default.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithStageToken selects which stage names the stage-update path segment.
func WithStageToken(mode string) Option {
	return func(c *Client) {
		c.stageToken = mode
	}
}

// WithLogger sets the logger used for transport failures.
func WithLogger(l *log.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewClient creates a client for the API rooted at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		stageToken: StageTokenTarget,
		logger:     log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// errorBody is the API's error convention.
type errorBody struct {
	Error string `json:"error"`
}

// do sends one request and decodes a JSON answer into out (if non-nil).
// Failures come back as *secondary.APIError or *secondary.TransportError.
func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	requestID := ctxutil.RequestIDFromContext(ctx)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	op := method + " " + path

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s request: %w", op, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build %s request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.transportError(op, requestID, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return c.transportError(op, requestID, fmt.Errorf("read response: %w", err))
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return apiError(resp, data, requestID)
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return c.transportError(op, requestID, fmt.Errorf("decode response: %w", err))
	}
	return nil
}

func (c *Client) transportError(op, requestID string, err error) error {
	c.logger.Printf("%s failed (request_id=%s): %v", op, requestID, err)
	return &secondary.TransportError{Op: op, RequestID: requestID, Err: err}
}

// apiError extracts the server's error string verbatim, or describes the status when absent.
func apiError(resp *http.Response, data []byte, requestID string) error {
	var eb errorBody
	if err := json.Unmarshal(data, &eb); err == nil && eb.Error != "" {
		return &secondary.APIError{StatusCode: resp.StatusCode, Message: eb.Error, RequestID: requestID}
	}
	return &secondary.APIError{
		StatusCode: resp.StatusCode,
		Message:    fmt.Sprintf("request failed: %s", resp.Status),
		RequestID:  requestID,
	}
}

// Ensure Client implements the gateways
var (
	_ secondary.CommissionGateway = (*Client)(nil)
	_ secondary.CatalogGateway    = (*Client)(nil)
	_ secondary.ArtistGateway     = (*Client)(nil)
	_ secondary.AuthGateway       = (*Client)(nil)
)
