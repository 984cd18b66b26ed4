// Package backend is the HTTP adapter for the appointment REST API. It
// attaches the session's bearer token to every request and normalizes
// failures into domain.ServerError and domain.TransportError.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/medibook/appointment-portal/internal/core/domain"
	"github.com/medibook/appointment-portal/internal/core/ports"
)

// maxBodyBytes caps how much of a response body is read.
const maxBodyBytes = 1 << 20

// Options configures a Client.
type Options struct {
	BaseURL string
	Timeout time.Duration
	// Rate limits outgoing requests per second. Zero disables limiting.
	Rate  float64
	Burst int
	// HTTPClient overrides the default client; Timeout is ignored when set.
	HTTPClient *http.Client
}

// Client implements ports.Backend over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
	creds   ports.CredentialSource
	limiter *rate.Limiter
	log     zerolog.Logger
}

var _ ports.Backend = (*Client)(nil)

// New creates a Client. creds may be nil, in which case every request goes
// out unauthenticated.
func New(opts Options, creds ports.CredentialSource, log zerolog.Logger) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if base == "" {
		return nil, fmt.Errorf("backend base url is required")
	}

	hc := opts.HTTPClient
	if hc == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		hc = &http.Client{
			Transport: &http.Transport{
				Proxy:               http.ProxyFromEnvironment,
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
			Timeout: timeout,
		}
	}

	var limiter *rate.Limiter
	if opts.Rate > 0 {
		burst := opts.Burst
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(opts.Rate), burst)
	}

	return &Client{baseURL: base, http: hc, creds: creds, limiter: limiter, log: log}, nil
}

// Close releases idle connections.
func (c *Client) Close() {
	c.http.CloseIdleConnections()
}

// do sends one request. body, when non-nil, is encoded as JSON; out, when
// non-nil, receives the decoded response. Empty and 204 responses leave out
// untouched.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	op := method + " " + path

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return &domain.TransportError{Op: op, Err: err}
		}
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s body: %w", op, err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create %s request: %w", op, err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.creds != nil {
		if token := c.creds.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug().Err(err).Str("op", op).Str("request_id", requestID).Msg("backend request failed")
		return &domain.TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return &domain.TransportError{Op: op, Err: err}
	}

	c.log.Debug().
		Str("op", op).
		Str("request_id", requestID).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("backend request")

	if resp.StatusCode >= http.StatusBadRequest {
		return &domain.ServerError{Status: resp.StatusCode, Message: errorMessage(payload)}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent || len(bytes.TrimSpace(payload)) == 0 {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return &domain.TransportError{Op: op, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}
