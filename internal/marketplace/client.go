// Package marketplace provides the eBay sold-comparables client, abstracted
// behind interfaces for testability.
package marketplace

import (
	"context"
)

// SalesRequest defines the parameters for a completed-sales search.
type SalesRequest struct {
	Query      string
	CategoryID string
	Limit      int
	Offset     int
	Filters    map[string]string
}

// SalesResponse holds one page of completed-sale records.
type SalesResponse struct {
	Items   []ItemSale
	Total   int
	Offset  int
	Limit   int
	HasMore bool
}

// SalesClient defines the interface for querying completed-sale records.
type SalesClient interface {
	SearchSales(ctx context.Context, req SalesRequest) (*SalesResponse, error)
}

// TokenProvider defines the interface for obtaining OAuth2 tokens.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}
