// Package directory is the HTTP client for the podcast directory API.
package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/amiyamandal-dev/podgrid/internal/domain"
	"github.com/amiyamandal-dev/podgrid/pkg/logger"
)

// maxBodySize caps how much of a response body is read
const maxBodySize = 8 << 20

// Client queries the directory API. Every call is a single attempt.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *logger.Logger
}

// NewClient creates a client for the API rooted at baseURL
func NewClient(baseURL string, timeout time.Duration, log *logger.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     log.WithComponent("directory-client"),
	}
}

// Search runs GET /api/search?q=
func (c *Client) Search(ctx context.Context, q string) (*domain.PodcastListResponse, error) {
	var out domain.PodcastListResponse
	if err := c.get(ctx, "search", "/api/search?q="+url.QueryEscape(q), &out); err != nil {
		return nil, err
	}
	if out.Error != "" {
		return nil, &domain.APIError{Message: out.Error}
	}
	return &out, nil
}

// Trending runs GET /api/trending
func (c *Client) Trending(ctx context.Context) (*domain.PodcastListResponse, error) {
	var out domain.PodcastListResponse
	if err := c.get(ctx, "trending", "/api/trending", &out); err != nil {
		return nil, err
	}
	if out.Error != "" {
		return nil, &domain.APIError{Message: out.Error}
	}
	return &out, nil
}

// Recent runs GET /api/recent
func (c *Client) Recent(ctx context.Context) (*domain.EpisodeListResponse, error) {
	var out domain.EpisodeListResponse
	if err := c.get(ctx, "recent", "/api/recent", &out); err != nil {
		return nil, err
	}
	if out.Error != "" {
		return nil, &domain.APIError{Message: out.Error}
	}
	return &out, nil
}

// Episodes runs GET /api/podcast/{id}/episodes
func (c *Client) Episodes(ctx context.Context, podcastID int64) (*domain.EpisodeListResponse, error) {
	var out domain.EpisodeListResponse
	path := "/api/podcast/" + strconv.FormatInt(podcastID, 10) + "/episodes"
	if err := c.get(ctx, "episodes", path, &out); err != nil {
		return nil, err
	}
	if out.Error != "" {
		return nil, &domain.APIError{Message: out.Error}
	}
	return &out, nil
}

// get decodes the JSON body into out regardless of the status code: the
// API reports failures as {"error": "..."} with a 4xx/5xx status.
func (c *Client) get(ctx context.Context, op, path string, out interface{}) error {
	reqURL := c.baseURL + path
	c.logger.Debug("Sending request to directory API", "op", op, "url", reqURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return &domain.TransportError{Op: op, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Directory request failed", "op", op, "error", err)
		return &domain.TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		c.logger.Error("Failed to read directory response", "op", op, "error", err)
		return &domain.TransportError{Op: op, Err: err}
	}
	if err := json.Unmarshal(body, out); err != nil {
		c.logger.Error("Malformed directory response",
			"op", op,
			"status", resp.StatusCode,
			"error", err,
		)
		return &domain.TransportError{Op: op, Err: fmt.Errorf("decode response (status %d): %w", resp.StatusCode, err)}
	}

	c.logger.Debug("Directory response received",
		"op", op,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}
