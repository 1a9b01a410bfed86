// Package wazuh provides the outbound adapter for the Wazuh manager REST API.
//
// It implements the two halves of the authenticated request cycle: exchanging
// basic credentials for a short-lived bearer token, and issuing one bearer-
// authenticated query per tool invocation. Tokens are used immediately after
// acquisition and never cached; the client holds no state between calls.
package wazuh

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/threat-hunter/wazuh-mcp/internal/config"
	"github.com/threat-hunter/wazuh-mcp/internal/domain/siem"
	"github.com/threat-hunter/wazuh-mcp/internal/port/outbound"
)

const (
	authEndpoint    = "/security/user/authenticate"
	agentsEndpoint  = "/agents"
	summaryEndpoint = "/agents/summary/status"

	// maxResponseBodySize caps response bodies read from upstream.
	// Prevents OOM from a misbehaving manager sending unbounded responses.
	maxResponseBodySize = 10 * 1024 * 1024 // 10MB
)

// Client talks to a single Wazuh manager. Safe for concurrent use: every
// method is a self-contained request cycle with no shared mutable state.
type Client struct {
	cfg        config.APIConfig
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// Option is a functional option for configuring Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client (used by tests).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a client for the Wazuh API described by cfg.
//
// The one timeout bounds authentication and queries alike. TLS certificate
// validation is on unless cfg.InsecureSkipVerify is set: disabling it is a
// deliberate trust relaxation for lab managers with self-signed certificates,
// opted into via configuration rather than hardcoded.
func NewClient(cfg config.APIConfig, logger *slog.Logger, opts ...Option) *Client {
	c := &Client{
		cfg:     cfg,
		baseURL: cfg.BaseURL(),
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout(),
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{
					MinVersion:         tls.VersionTLS12,
					InsecureSkipVerify: cfg.InsecureSkipVerify,
				},
				MaxIdleConns:    2,
				IdleConnTimeout: cfg.RequestTimeout(),
			},
		},
		logger: logger,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Authenticate exchanges the configured credentials for a bearer token.
// Every failure mode collapses into an error matching siem.ErrTokenUnavailable;
// the underlying cause stays wrapped for logging and tests.
func (c *Client) Authenticate(ctx context.Context) (string, error) {
	if !c.cfg.HasCredentials() {
		return "", fmt.Errorf("%w: %w", siem.ErrTokenUnavailable, siem.ErrNoCredentials)
	}

	var body authResponse
	err := c.get(ctx, "authenticate", authEndpoint, nil, func(req *http.Request) {
		req.SetBasicAuth(c.cfg.Username, c.cfg.Password)
	}, &body)
	if err != nil {
		c.logger.Debug("authentication failed", "error", err)
		return "", fmt.Errorf("%w: %w", siem.ErrTokenUnavailable, err)
	}
	if body.Data.Token == "" {
		return "", fmt.Errorf("%w: %w", siem.ErrTokenUnavailable, &siem.MissingFieldError{Field: "data.token"})
	}

	return body.Data.Token, nil
}

// ListAgents fetches the full set of monitored-host records. The returned
// array is the upstream data.affected_items value, byte-for-byte.
func (c *Client) ListAgents(ctx context.Context, token string) (json.RawMessage, error) {
	params := url.Values{"pretty": {"true"}}

	var body agentsResponse
	if err := c.get(ctx, "list agents", agentsEndpoint, params, bearerAuth(token), &body); err != nil {
		return nil, err
	}
	if body.Data.AffectedItems == nil {
		return nil, &siem.MissingFieldError{Field: "data.affected_items"}
	}

	return body.Data.AffectedItems, nil
}

// AgentSummary fetches the aggregate agent status counters. The returned
// object is the upstream data value, byte-for-byte.
func (c *Client) AgentSummary(ctx context.Context, token string) (json.RawMessage, error) {
	var body summaryResponse
	if err := c.get(ctx, "agent summary", summaryEndpoint, nil, bearerAuth(token), &body); err != nil {
		return nil, err
	}
	if body.Data == nil {
		return nil, &siem.MissingFieldError{Field: "data"}
	}

	return body.Data, nil
}

// get performs one GET against baseURL+endpoint and decodes a 200 response
// into v. Non-200 becomes *APIError with the exact status and body; anything
// that prevents a usable response becomes *TransportError.
func (c *Client) get(ctx context.Context, op, endpoint string, params url.Values, auth func(*http.Request), v any) error {
	u := c.baseURL + endpoint
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return &siem.TransportError{Op: op, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	auth(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &siem.TransportError{Op: op, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
	if err != nil {
		return &siem.TransportError{Op: op, Err: fmt.Errorf("read response: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		return &siem.APIError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	if err := json.Unmarshal(raw, v); err != nil {
		return &siem.TransportError{Op: op, Err: fmt.Errorf("decode response: %w", err)}
	}

	return nil
}

func bearerAuth(token string) func(*http.Request) {
	return func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

// Compile-time check that Client implements the SIEMClient port.
var _ outbound.SIEMClient = (*Client)(nil)
