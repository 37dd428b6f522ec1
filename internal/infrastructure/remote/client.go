// Package remote reads the product catalog from an upstream HTTP service.
package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/aromax/storefront/internal/domain"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

const (
	maxAttempts      = 3
	baseBackoff      = 500 * time.Millisecond
	maxErrorBodySize = 4096
	maxCatalogSize   = 16 << 20
)

// Client fetches the catalog from an upstream product service
type Client struct {
	httpClient  *http.Client
	apiKey      string
	baseURL     string
	rateLimiter *rate.Limiter
	logger      zerolog.Logger
	debug       bool
}

// NewClient creates a new catalog client
func NewClient(apiKey, baseURL string, logger zerolog.Logger) *Client {
	// One catalog fetch per second is plenty; allow a small burst for retries.
	limiter := rate.NewLimiter(rate.Limit(1), 3)

	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		apiKey:      apiKey,
		baseURL:     baseURL,
		rateLimiter: limiter,
		logger:      logger,
	}
}

// SetDebug toggles verbose request logging
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// Describe names the source for logs
func (c *Client) Describe() string {
	return "remote:" + c.baseURL
}

func (c *Client) debugLog(format string, args ...interface{}) {
	if c.debug {
		c.logger.Debug().Msgf(format, args...)
	}
}

// exponentialBackoff returns the wait before retrying after attempt (1-based)
func exponentialBackoff(attempt int) time.Duration {
	return baseBackoff * time.Duration(1<<(attempt-1))
}

// readLimitedBody reads at most limit bytes
func readLimitedBody(r io.Reader, limit int64) ([]byte, error) {
	return io.ReadAll(io.LimitReader(r, limit))
}

// retryable reports whether a status is worth another attempt
func retryable(status int) bool {
	return status == http.StatusTooManyRequests || status >= http.StatusInternalServerError
}

// newRequest builds the catalog GET request with proper headers
func (c *Client) newRequest(ctx context.Context, reqURL string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "AromaX-Storefront/1.0")
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}
	return req, nil
}

// doRequest executes req, wrapping transport failures
func (c *Client) doRequest(req *http.Request) (*http.Response, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}
	return resp, nil
}

// FetchProducts downloads the raw product list
func (c *Client) FetchProducts(ctx context.Context) (*ProductListResponse, error) {
	reqURL := fmt.Sprintf("%s/v1/products", c.baseURL)
	c.debugLog("fetching catalog from %s", reqURL)

	req, err := c.newRequest(ctx, reqURL)
	if err != nil {
		return nil, err
	}

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(exponentialBackoff(attempt - 1)):
			}
		}

		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter error: %w", err)
		}

		resp, err := c.doRequest(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, err
			}
			c.logger.Warn().Err(err).Int("attempt", attempt).Msg("catalog request failed")
			lastErr = err
			continue
		}

		if resp.StatusCode != http.StatusOK {
			body, _ := readLimitedBody(resp.Body, maxErrorBodySize)
			resp.Body.Close()

			c.logger.Warn().
				Int("attempt", attempt).
				Int("status", resp.StatusCode).
				Str("body", string(body)).
				Msg("catalog service error")

			if resp.StatusCode == http.StatusNotFound {
				return nil, fmt.Errorf("%w: %s not found", domain.ErrCatalogUnavailable, reqURL)
			}
			lastErr = fmt.Errorf("%w: status %d", domain.ErrCatalogUnavailable, resp.StatusCode)
			if !retryable(resp.StatusCode) {
				return nil, lastErr
			}
			continue
		}

		body, err := readLimitedBody(resp.Body, maxCatalogSize)
		resp.Body.Close()
		if err != nil {
			lastErr = fmt.Errorf("%w: read body: %v", domain.ErrCatalogUnavailable, err)
			continue
		}

		var list ProductListResponse
		if err := json.Unmarshal(body, &list); err != nil {
			return nil, fmt.Errorf("failed to decode response: %w", err)
		}

		c.debugLog("received %d products", len(list.Products))
		return &list, nil
	}

	c.logger.Error().Err(lastErr).Str("url", reqURL).Msg("all catalog fetch attempts failed")
	return nil, lastErr
}

// Load fetches and maps the catalog. Records that fail mapping are skipped;
// duplicate ids fail the whole load.
func (c *Client) Load(ctx context.Context) ([]domain.Product, error) {
	list, err := c.FetchProducts(ctx)
	if err != nil {
		return nil, err
	}

	products, skipped := MapProducts(list.Products)
	for _, err := range skipped {
		c.logger.Warn().Err(err).Msg("skipping catalog record")
	}

	if err := domain.ValidateProducts(products); err != nil {
		return nil, err
	}
	return products, nil
}
