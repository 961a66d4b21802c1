package contentapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/svfranklindemo/saharan-luma-18022026-43226/internal/domain"
)

// ClientConfig holds transport settings for the content API client
type ClientConfig struct {
	Timeout   time.Duration
	RateLimit float64 // requests per second
	RateBurst int
}

// Client issues the persisted GraphQL queries against the content API
type Client struct {
	httpClient  *http.Client
	endpoints   Endpoints
	rateLimiter *rate.Limiter
	extractors  []ItemsExtractor
	logger      *zap.Logger
}

// NewClient creates a new content API client
func NewClient(endpoints Endpoints, cfg ClientConfig, logger *zap.Logger) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.RateLimit <= 0 {
		cfg.RateLimit = 5
	}
	if cfg.RateBurst <= 0 {
		cfg.RateBurst = 10
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		endpoints:   endpoints,
		rateLimiter: rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst),
		extractors:  DefaultExtractors,
		logger:      logger.Named("contentapi"),
	}
}

// SetExtractors replaces the ordered item-list extractors
func (c *Client) SetExtractors(extractors []ItemsExtractor) {
	c.extractors = extractors
}

// doRequest executes a fresh GET; intermediate caches must never answer
func (c *Client) doRequest(ctx context.Context, reqURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-cache, no-store, must-revalidate")
	req.Header.Set("Pragma", "no-cache")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrContentAPIFailure, err)
	}

	return resp, nil
}

// QueryProducts runs the persisted query for the folder and returns the raw
// item list. An empty folder path yields no items and no request.
func (c *Client) QueryProducts(ctx context.Context, query domain.ProductQuery) ([]domain.ProductRecord, error) {
	if query.FolderPath == "" {
		return []domain.ProductRecord{}, nil
	}

	reqURL := BuildRequestURL(c.endpoints.Select(query.IsLegacy, query.IsAuthor), query.FolderPath)
	c.logger.Debug("querying products",
		zap.String("url", reqURL),
		zap.Bool("legacy", query.IsLegacy),
		zap.Bool("author", query.IsAuthor))

	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	resp, err := c.doRequest(ctx, reqURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %v", domain.ErrContentAPIFailure, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d", domain.ErrUnexpectedStatus, resp.StatusCode)
	}

	items, schema, err := extractItems(body, c.extractors, func(index int, err error) {
		c.logger.Debug("skipping malformed product",
			zap.Int("index", index),
			zap.Error(err))
	})
	if err != nil {
		return nil, err
	}

	c.logger.Debug("products received",
		zap.String("schema", schema),
		zap.Int("count", len(items)))
	return items, nil
}
