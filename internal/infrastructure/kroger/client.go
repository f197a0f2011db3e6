package kroger

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/aislefinder/backend/internal/domain"
	"github.com/aislefinder/backend/internal/retry"
	"golang.org/x/time/rate"
)

// searchPageSize caps how many candidates a search returns; the resolver
// only ever inspects the first three
const searchPageSize = "10"

// Client handles communication with the Kroger catalog API
type Client struct {
	httpClient  *http.Client
	baseURL     string
	tokens      domain.TokenSource
	rateLimiter *rate.Limiter
	retryPolicy retry.Policy
	debug       bool
}

// NewClient creates a new Kroger API client
func NewClient(baseURL string, tokens domain.TokenSource) *Client {
	// Kroger's public tier allows 10000 calls per day; a small steady rate
	// with a burst keeps a single list fast without burning the quota
	limiter := rate.NewLimiter(rate.Limit(2), 5)

	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL:     baseURL,
		tokens:      tokens,
		rateLimiter: limiter,
		retryPolicy: retry.DefaultPolicy(),
	}
}

// SetDebug enables or disables debug logging
func (c *Client) SetDebug(enabled bool) {
	c.debug = enabled
}

// SetRetryPolicy overrides the default retry policy for catalog calls
func (c *Client) SetRetryPolicy(policy retry.Policy) {
	c.retryPolicy = policy
}

func (c *Client) debugLog(format string, args ...interface{}) {
	if c.debug {
		log.Printf("[KROGER] "+format, args...)
	}
}

// SearchProducts searches the catalog for a term, filtered to a store when
// locationID is set. Zero candidates is a valid result, not an error.
func (c *Client) SearchProducts(ctx context.Context, term, locationID string) ([]domain.CatalogProduct, error) {
	if strings.TrimSpace(term) == "" {
		return nil, domain.ErrInvalidRequest
	}

	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("filter.term", term)
	params.Set("filter.limit", searchPageSize)
	if locationID != "" {
		params.Set("filter.locationId", locationID)
	}
	reqURL := fmt.Sprintf("%s/products?%s", c.baseURL, params.Encode())

	c.debugLog("SearchProducts term=%q location=%q", term, locationID)

	return retry.Do(ctx, c.retryPolicy, func(ctx context.Context) ([]domain.CatalogProduct, error) {
		var response searchResponse
		if err := c.getJSON(ctx, reqURL, token, &response); err != nil {
			return nil, err
		}
		products := mapProducts(response.Data)
		c.debugLog("SearchProducts term=%q returned %d candidates", term, len(products))
		return products, nil
	})
}

// FindStores looks up nearby stores for a postal code. Records missing
// required fields are skipped individually, never fatal.
func (c *Client) FindStores(ctx context.Context, zipCode string) ([]domain.Store, error) {
	if strings.TrimSpace(zipCode) == "" {
		return nil, domain.ErrInvalidRequest
	}

	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("filter.zipCode.near", zipCode)
	reqURL := fmt.Sprintf("%s/locations?%s", c.baseURL, params.Encode())

	return retry.Do(ctx, c.retryPolicy, func(ctx context.Context) ([]domain.Store, error) {
		var response locationsResponse
		if err := c.getJSON(ctx, reqURL, token, &response); err != nil {
			return nil, err
		}
		return mapStores(response.Data), nil
	})
}

// getJSON executes an authorized GET and decodes the JSON body into out.
// Transport failures, 5xx statuses, and malformed bodies are transient;
// auth rejections and caller-side 4xx are permanent.
func (c *Client) getJSON(ctx context.Context, reqURL, token string, out interface{}) error {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return retry.Permanent(fmt.Errorf("rate limiter error: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return retry.Permanent(fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrCatalogAPIFailure, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return retry.Permanent(fmt.Errorf("%w: status %d", domain.ErrAuthFailed, resp.StatusCode))
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return retry.Permanent(fmt.Errorf("%w: status %d", domain.ErrInvalidRequest, resp.StatusCode))
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("%w: status %d", domain.ErrCatalogAPIFailure, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", domain.ErrCatalogAPIFailure, err)
	}

	return nil
}
