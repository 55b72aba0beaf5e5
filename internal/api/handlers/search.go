package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/jmorrow/flip-analyzer/internal/marketplace"
	domain "github.com/jmorrow/flip-analyzer/pkg/types"
)

// SearchHandler handles sold-comparable search requests.
type SearchHandler struct {
	client marketplace.SalesClient
}

// NewSearchHandler creates a new SearchHandler.
func NewSearchHandler(client marketplace.SalesClient) *SearchHandler {
	return &SearchHandler{client: client}
}

// SearchInput is the request body for the search endpoint.
type SearchInput struct {
	Body struct {
		Query      string            `json:"query" minLength:"1" doc:"Sold-item search query" example:"Nike Air Max 90 size 10"`
		CategoryID string            `json:"category_id,omitempty" doc:"eBay category ID" example:"15709"`
		Limit      int               `json:"limit,omitempty" minimum:"1" doc:"Maximum results to return (default 10)" example:"10"`
		Offset     int               `json:"offset,omitempty" minimum:"0" doc:"Pagination offset"`
		Filters    map[string]string `json:"filters,omitempty" doc:"Additional eBay filters"`
	}
}

// SearchOutput is the response body for the search endpoint.
type SearchOutput struct {
	Body struct {
		Listings []domain.SoldListing `json:"listings" doc:"Converted sold listings"`
		Total    int                  `json:"total" doc:"Total matching sales"`
		HasMore  bool                 `json:"has_more" doc:"Whether more results are available"`
	}
}

// Search proxies a search request to the eBay Marketplace Insights API.
func (h *SearchHandler) Search(ctx context.Context, input *SearchInput) (*SearchOutput, error) {
	limit := input.Body.Limit
	if limit <= 0 {
		limit = 10
	}

	resp, err := h.client.SearchSales(ctx, marketplace.SalesRequest{
		Query:      input.Body.Query,
		CategoryID: input.Body.CategoryID,
		Limit:      limit,
		Offset:     input.Body.Offset,
		Filters:    input.Body.Filters,
	})
	if err != nil {
		return nil, huma.Error502BadGateway("eBay API error: " + err.Error())
	}

	out := &SearchOutput{}
	out.Body.Listings = marketplace.ToSoldListings(resp.Items)
	out.Body.Total = resp.Total
	out.Body.HasMore = resp.HasMore
	return out, nil
}

// RegisterSearchRoutes registers search endpoints with the Huma API.
func RegisterSearchRoutes(api huma.API, h *SearchHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "search-sold",
		Method:      http.MethodPost,
		Path:        "/api/v1/search",
		Summary:     "Search sold listings",
		Description: "Proxies a search request to the eBay Marketplace Insights API and returns sold listings.",
		Tags:        []string{"search"},
		Errors:      []int{http.StatusBadGateway},
	}, h.Search)
}
