package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

const (
	// DefaultBaseURL points at a locally running analytics backend.
	DefaultBaseURL = "http://localhost:8000/api"

	// DefaultTimeout bounds each request so a hung backend cannot wedge
	// a refresh cycle forever.
	DefaultTimeout = 10 * time.Second

	// casesPageSize is the fixed number of recent cases fetched per cycle.
	casesPageSize = 20
)

// Client fetches analytics payloads from the backend API. It performs no
// retries; retry policy belongs to the caller.
type Client struct {
	baseURL string
	http    *http.Client
}

// Options configure the API client.
type Options struct {
	BaseURL string
	Timeout time.Duration
}

// NewClient creates a client for the given backend.
func NewClient(opts Options) *Client {
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// FetchAll issues the three analytics requests concurrently and waits for
// all of them. There is no partial-success path: if any request fails, the
// whole cycle fails with the first error encountered.
func (c *Client) FetchAll(ctx context.Context) (Report, error) {
	var report Report

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return c.getJSON(ctx, "/analytics/dashboard", &report.Dashboard)
	})
	group.Go(func() error {
		return c.getJSON(ctx, "/analytics/dca-performance", &report.Performance)
	})
	group.Go(func() error {
		return c.getJSON(ctx, fmt.Sprintf("/cases?limit=%d", casesPageSize), &report.Cases)
	})

	if err := group.Wait(); err != nil {
		return Report{}, err
	}
	return report, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", path, err)
	}
	defer resp.Body.Close()

	// The status check runs before any decode so a non-2xx response is
	// reported as such even when the body is not valid JSON.
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("fetch %s: unexpected status %s", path, resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
