package marketplace

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/jmorrow/flip-analyzer/internal/metrics"
	domain "github.com/jmorrow/flip-analyzer/pkg/types"
)

const (
	defaultSalesURL    = "https://api.ebay.com/buy/marketplace_insights/v1_beta/item_sales/search"
	defaultMarketplace = "EBAY_US"
	defaultLimit       = 50
	defaultLookback    = 90 * 24 * time.Hour
)

// InsightsClient implements SalesClient against the eBay Marketplace
// Insights item_sales API. It also satisfies the engine's comparable
// searcher contract through SearchSold.
type InsightsClient struct {
	tokens      TokenProvider
	salesURL    string
	marketplace string
	client      *http.Client
	rateLimiter *RateLimiter
	lookback    time.Duration
	limit       int
	nowFunc     func() time.Time
}

// ClientOption configures the InsightsClient.
type ClientOption func(*InsightsClient)

// WithSalesURL overrides the default item_sales endpoint.
func WithSalesURL(u string) ClientOption {
	return func(c *InsightsClient) {
		c.salesURL = u
	}
}

// WithMarketplace overrides the default marketplace.
func WithMarketplace(m string) ClientOption {
	return func(c *InsightsClient) {
		c.marketplace = m
	}
}

// WithClientHTTPClient overrides the default HTTP client.
func WithClientHTTPClient(hc *http.Client) ClientOption {
	return func(c *InsightsClient) {
		c.client = hc
	}
}

// WithRateLimiter injects a rate limiter. When set, every search goes
// through Wait() first.
func WithRateLimiter(r *RateLimiter) ClientOption {
	return func(c *InsightsClient) {
		c.rateLimiter = r
	}
}

// WithLookback sets how far back sold comparables are requested.
func WithLookback(d time.Duration) ClientOption {
	return func(c *InsightsClient) {
		c.lookback = d
	}
}

// WithSearchLimit caps the number of comparables requested per search.
func WithSearchLimit(n int) ClientOption {
	return func(c *InsightsClient) {
		c.limit = n
	}
}

// WithClientNowFunc overrides the time function for testing.
func WithClientNowFunc(f func() time.Time) ClientOption {
	return func(c *InsightsClient) {
		c.nowFunc = f
	}
}

// NewInsightsClient creates a Marketplace Insights client.
func NewInsightsClient(tokens TokenProvider, opts ...ClientOption) *InsightsClient {
	c := &InsightsClient{
		tokens:      tokens,
		salesURL:    defaultSalesURL,
		marketplace: defaultMarketplace,
		client:      &http.Client{Timeout: 30 * time.Second},
		lookback:    defaultLookback,
		limit:       defaultLimit,
		nowFunc:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type salesAPIResponse struct {
	ItemSales []ItemSale `json:"itemSales"`
	Total     int        `json:"total"`
	Offset    int        `json:"offset"`
	Limit     int        `json:"limit"`
	Next      string     `json:"next"`
}

// SearchSales implements SalesClient by querying the item_sales API.
func (c *InsightsClient) SearchSales(ctx context.Context, req SalesRequest) (*SalesResponse, error) {
	if c.rateLimiter != nil {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			if errors.Is(err, ErrDailyLimitReached) {
				metrics.MarketplaceDailyLimitHits.Inc()
			}
			return nil, fmt.Errorf("rate limit: %w", err)
		}
		metrics.MarketplaceCallsTotal.Inc()
		metrics.MarketplaceDailyUsage.Set(float64(c.rateLimiter.DailyCount()))
	}

	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("getting auth token: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.buildSalesURL(req), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating HTTP request: %w", err)
	}

	httpReq.Header.Set("Authorization", "Bearer "+token)
	httpReq.Header.Set("X-EBAY-C-MARKETPLACE-ID", c.marketplace)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("executing sales search: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("marketplace API error (status %d): %s", resp.StatusCode, string(body))
	}

	var apiResp salesAPIResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, fmt.Errorf("parsing sales response: %w", err)
	}

	return &SalesResponse{
		Items:   apiResp.ItemSales,
		Total:   apiResp.Total,
		Offset:  apiResp.Offset,
		Limit:   apiResp.Limit,
		HasMore: apiResp.Next != "",
	}, nil
}

// SearchSold returns sold-listing observations for a query, bounded by the
// configured lookback window. This is the adapter the analysis engine calls
// during its query cascade.
func (c *InsightsClient) SearchSold(ctx context.Context, query string) ([]domain.SoldListing, error) {
	since := c.nowFunc().Add(-c.lookback).UTC().Format(time.RFC3339)
	resp, err := c.SearchSales(ctx, SalesRequest{
		Query: query,
		Limit: c.limit,
		Filters: map[string]string{
			"filter": "lastSoldDate:[" + since + "..]",
		},
	})
	if err != nil {
		return nil, err
	}
	return ToSoldListings(resp.Items), nil
}

func (c *InsightsClient) buildSalesURL(req SalesRequest) string {
	params := url.Values{}
	params.Set("q", req.Query)

	if req.CategoryID != "" {
		params.Set("category_ids", req.CategoryID)
	}

	limit := req.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	params.Set("limit", strconv.Itoa(limit))

	if req.Offset > 0 {
		params.Set("offset", strconv.Itoa(req.Offset))
	}

	for k, v := range req.Filters {
		params.Set(k, v)
	}

	return c.salesURL + "?" + params.Encode()
}
