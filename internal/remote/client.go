// Package remote implements the fetch-by-id lookups the aggregators use to
// reconstruct composite DTOs from the other services, plus the strategies
// controlling how the lookups of a single record are dispatched.
package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// FetchError reports a lookup that could not complete, either because the
// remote side was unreachable or because it answered with a non-200 status.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("remote fetch %s failed: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("remote fetch %s returned status %d", e.URL, e.StatusCode)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Client is a thin outbound HTTP client bound to one service's base URL.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewClient(baseURL string, timeout time.Duration, l *zap.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     l,
	}
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	endpoint := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build request for %s: %w", endpoint, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Remote lookup request failed", zap.String("url", endpoint), zap.Error(err))
		return &FetchError{URL: endpoint, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("Remote lookup returned non-OK status",
			zap.String("url", endpoint),
			zap.Int("status", resp.StatusCode))
		return &FetchError{URL: endpoint, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &FetchError{URL: endpoint, Err: fmt.Errorf("failed to decode response: %w", err)}
	}
	return nil
}
