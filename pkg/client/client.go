// Package client is a typed HTTP client for the simulator's two endpoints,
// for integration environments that poll vehicle state over the network.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"uav-simulator/internal/models"
)

const (
	healthPath = "/health"
	statePath  = "/api/v1/state"

	defaultTimeout = 5 * time.Second
)

// Config configures a Client.
type Config struct {
	BaseURL string        // e.g. "http://10.0.0.5:9090"
	Timeout time.Duration // per-request; defaults to 5s
}

// Client queries a running simulator over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a client for the simulator at cfg.BaseURL.
func New(cfg Config) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout},
	}
}

// Health performs the liveness probe.
func (c *Client) Health(ctx context.Context) (models.HealthResponse, error) {
	var resp models.HealthResponse
	if err := c.getJSON(ctx, healthPath, &resp); err != nil {
		return models.HealthResponse{}, err
	}
	return resp, nil
}

// State fetches a full telemetry snapshot.
func (c *Client) State(ctx context.Context) (models.TelemetrySnapshot, error) {
	var resp models.StateResponse
	if err := c.getJSON(ctx, statePath, &resp); err != nil {
		return models.TelemetrySnapshot{}, err
	}
	if resp.Status != "success" {
		return models.TelemetrySnapshot{}, fmt.Errorf("client: unexpected response status %q", resp.Status)
	}
	return resp.Data, nil
}

// getJSON issues a GET and decodes a 200 response body into out.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("client: build request for %s: %w", path, err)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("client: GET %s: %w", path, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("client: GET %s: unexpected status %d", path, res.StatusCode)
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("client: decode %s response: %w", path, err)
	}
	return nil
}
