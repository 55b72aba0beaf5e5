// Package store defines the datastore abstraction for flip-analyzer.
// Business logic depends on the Store interface, never on concrete
// implementations, so it can be tested with mocks and no database.
package store

import (
	"context"
	"errors"
	"time"

	domain "github.com/jmorrow/flip-analyzer/pkg/types"
)

// ErrNotFound is returned when a requested analysis does not exist.
var ErrNotFound = errors.New("analysis not found")

// AnalysisQuery defines optional filters for analysis listing queries.
type AnalysisQuery struct {
	Brand    *string
	Category *string
	Demand   *string
	MinPrice *float64
	MaxPrice *float64
	Limit    int // default 50
	Offset   int
	OrderBy  string // "created_at", "market_price", "demand"
}

// Store defines all data access operations for flip-analyzer.
type Store interface {
	SaveAnalysis(ctx context.Context, a *domain.Analysis) error
	GetAnalysis(ctx context.Context, id string) (*domain.Analysis, error)
	ListAnalyses(ctx context.Context, opts *AnalysisQuery) ([]domain.Analysis, int, error)
	ListStaleAnalyses(ctx context.Context, olderThan time.Duration, limit int) ([]domain.Analysis, error)
	UpdateAnalysisMarket(
		ctx context.Context,
		id string,
		market domain.MarketSummary,
		rawLadder domain.PriceLadder,
		ladder domain.PriceLadder,
		samples []domain.SoldListing,
	) error
	DeleteAnalysis(ctx context.Context, id string) error

	// Migrations
	Migrate(ctx context.Context) error

	// Health
	Ping(ctx context.Context) error
	Close()
}
