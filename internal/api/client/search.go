package client

import (
	"context"

	domain "github.com/jmorrow/flip-analyzer/pkg/types"
)

// SearchRequest is the request body for a sold-comparable search.
type SearchRequest struct {
	Query      string            `json:"query"`
	CategoryID string            `json:"category_id,omitempty"`
	Limit      int               `json:"limit,omitempty"`
	Offset     int               `json:"offset,omitempty"`
	Filters    map[string]string `json:"filters,omitempty"`
}

// SearchResponse is the response from a sold-comparable search.
type SearchResponse struct {
	Listings []domain.SoldListing `json:"listings"`
	Total    int                  `json:"total"`
	HasMore  bool                 `json:"has_more"`
}

// Search queries sold listings through the API server.
func (c *Client) Search(ctx context.Context, req SearchRequest) (*SearchResponse, error) {
	var out SearchResponse
	resp, err := c.rc.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		SetError(&apiError{}).
		Post("/api/v1/search")
	if err := checkResponse(resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}
