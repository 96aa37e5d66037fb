package intensity

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/penwyp/go-carbon-monitor/internal/util"
)

// ErrNoData is returned when the endpoint answers with an empty data array.
var ErrNoData = errors.New("intensity response contains no data")

// Client fetches the current intensity window from an /intensity endpoint.
type Client struct {
	url        string
	httpClient *http.Client
}

// NewClient creates a client for the full endpoint URL.
func NewClient(url string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// URL returns the endpoint the client queries.
func (c *Client) URL() string {
	return c.url
}

// Current returns the first window of the response.
func (c *Client) Current(ctx context.Context) (*Forecast, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	util.LogDebug(fmt.Sprintf("Fetching carbon intensity from %s", c.url))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch intensity: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code %d from %s", resp.StatusCode, c.url)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var payload Response
	if err := sonic.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode intensity response: %w", err)
	}
	if len(payload.Data) == 0 {
		return nil, ErrNoData
	}

	forecast, err := payload.Data[0].Decode()
	if err != nil {
		return nil, fmt.Errorf("invalid intensity window: %w", err)
	}
	return forecast, nil
}
