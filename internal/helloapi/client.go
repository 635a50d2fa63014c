// Package helloapi issues the shell's one real network call against the
// placeholder backend.
package helloapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tinytelemetry/dashshell/internal/model"
)

// Client calls GET <base>/hello.
type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a client for baseURL. A non-positive timeout uses the default.
func New(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = model.DefaultHelloURL
	}
	if timeout <= 0 {
		timeout = model.DefaultHelloTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// Get fetches /hello and returns the raw JSON payload.
func (c *Client) Get(ctx context.Context) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/hello", nil)
	if err != nil {
		return nil, fmt.Errorf("helloapi: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("helloapi: get hello: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("helloapi: read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("helloapi: unexpected status %d", resp.StatusCode)
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("helloapi: response is not JSON")
	}
	return json.RawMessage(body), nil
}
