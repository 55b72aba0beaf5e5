package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/jmorrow/flip-analyzer/pkg/types"
)

func listingsWithPrices(prices ...float64) []domain.SoldListing {
	out := make([]domain.SoldListing, len(prices))
	for i, p := range prices {
		out[i] = domain.SoldListing{Title: "comp", Price: p}
	}
	return out
}

func TestBuildLadderMarketData(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	market := domain.MarketSummary{SeasonalMultiplier: 1.0, Trend: domain.TrendStable}

	// five observations with one high outlier
	ladder := cfg.BuildLadder(listingsWithPrices(40, 45, 50, 55, 200), domain.Identification{}, market)

	assert.Equal(t, 5, ladder.SampleSize)
	assert.InDelta(t, 40, ladder.P10, 1e-9)
	assert.InDelta(t, 45, ladder.P25, 1e-9)
	assert.InDelta(t, 50, ladder.Median, 1e-9)
	assert.InDelta(t, 55, ladder.P75, 1e-9)
	assert.InDelta(t, 200, ladder.P90, 1e-9)

	assert.InDelta(t, 40, ladder.QuickSale, 1e-9)
	assert.InDelta(t, 50, ladder.Market, 1e-9)
	assert.InDelta(t, 55, ladder.Premium, 1e-9)
	assert.InDelta(t, 78, ladder.Average, 1e-9)
	assert.InDelta(t, 50*0.83, ladder.FeeAdjustedMarket, 1e-9)
	assert.InDelta(t, 160, ladder.Spread, 1e-9)
	assert.Equal(t, domain.TrendStable, ladder.Trend)
}

func TestBuildLadderSeasonalScaling(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	market := domain.MarketSummary{SeasonalMultiplier: 1.2}

	ladder := cfg.BuildLadder(listingsWithPrices(40, 50, 60), domain.Identification{}, market)

	// percentiles stay raw, sellable points carry the multiplier
	assert.InDelta(t, 50, ladder.Median, 1e-9)
	assert.InDelta(t, 60, ladder.Market, 1e-9)
	assert.InDelta(t, 48, ladder.QuickSale, 1e-9)
	assert.InDelta(t, 60*0.83, ladder.FeeAdjustedMarket, 1e-9)
	assert.InDelta(t, 1.2, ladder.SeasonalMultiplier, 1e-9)
}

func TestBuildLadderPercentileMonotonic(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	market := domain.MarketSummary{SeasonalMultiplier: 1.0}

	priceSets := [][]float64{
		{10, 20, 30},
		{5, 5, 5, 5},
		{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
		{100, 40, 70, 55, 90, 20, 65},
		{19.99, 24.99, 22.50, 31, 27.25, 18},
	}

	for _, prices := range priceSets {
		ladder := cfg.BuildLadder(listingsWithPrices(prices...), domain.Identification{}, market)
		assert.LessOrEqual(t, ladder.P10, ladder.P25)
		assert.LessOrEqual(t, ladder.P25, ladder.Median)
		assert.LessOrEqual(t, ladder.Median, ladder.P75)
		assert.LessOrEqual(t, ladder.P75, ladder.P90)
	}
}

func TestBuildLadderHeuristicFallback(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	market := domain.MarketSummary{SeasonalMultiplier: 1.0}

	tests := []struct {
		name       string
		listings   []domain.SoldListing
		id         domain.Identification
		wantMarket float64
	}{
		{
			name:       "no observations premium sneaker brand",
			listings:   nil,
			id:         domain.Identification{Brand: "Nike", Category: "Sneakers"},
			wantMarket: 140 * 1.2,
		},
		{
			name:       "two observations below threshold",
			listings:   listingsWithPrices(30, 35),
			id:         domain.Identification{Brand: "Apple", Category: "Electronics"},
			wantMarket: 250 * 2.2,
		},
		{
			name:       "all zero prices treated as no sample",
			listings:   listingsWithPrices(0, 0, 0, 0),
			id:         domain.Identification{Brand: "Patagonia", Category: "Outerwear"},
			wantMarket: 65 * 1.5,
		},
		{
			name:       "zero prices filtered before the threshold check",
			listings:   listingsWithPrices(0, 0, 40, 45),
			id:         domain.Identification{Brand: "Carhartt", Category: "Jacket"},
			wantMarket: 65 * 1.5,
		},
		{
			name:       "unknown brand unknown category",
			listings:   nil,
			id:         domain.Identification{Brand: "Mystery Co", Category: "Collectibles"},
			wantMarket: 30,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ladder := cfg.BuildLadder(tt.listings, tt.id, market)

			require.Zero(t, ladder.SampleSize)
			assert.InDelta(t, tt.wantMarket, ladder.Market, 1e-9)
			assert.InDelta(t, tt.wantMarket*0.7, ladder.QuickSale, 1e-9)
			assert.InDelta(t, tt.wantMarket*1.35, ladder.Premium, 1e-9)
			assert.InDelta(t, tt.wantMarket*1.1, ladder.Average, 1e-9)
			assert.InDelta(t, tt.wantMarket*0.83, ladder.FeeAdjustedMarket, 1e-9)
		})
	}
}

func TestHeuristicLadderOrdering(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	market := domain.MarketSummary{SeasonalMultiplier: 1.0}

	brands := []string{"", "nike", "apple", "patagonia", "shein", "Mystery Co"}
	categories := []string{"", "sneakers", "electronics", "outerwear", "collectibles"}

	for _, brand := range brands {
		for _, category := range categories {
			id := domain.Identification{Brand: brand, Category: category}
			ladder := cfg.heuristicLadder(id, market)
			assert.Less(t, ladder.QuickSale, ladder.Market, "brand=%q category=%q", brand, category)
			assert.Less(t, ladder.Market, ladder.Premium, "brand=%q category=%q", brand, category)
		}
	}
}

func TestHeuristicLadderSeasonalApplied(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	id := domain.Identification{Brand: "Patagonia", Category: "Outerwear"}

	inSeason := cfg.heuristicLadder(id, domain.MarketSummary{SeasonalMultiplier: 1.2})
	assert.InDelta(t, 65*1.5*1.2, inSeason.Market, 1e-9)

	// a zero multiplier from an empty summary falls back to the default
	fallback := cfg.heuristicLadder(id, domain.MarketSummary{})
	assert.InDelta(t, 65*1.5, fallback.Market, 1e-9)
}

func TestPercentileIndexes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n    int
		p    float64
		ceil bool
		want int
	}{
		{5, 0.10, true, 0},
		{5, 0.25, true, 1},
		{5, 0.75, false, 3},
		{5, 0.90, false, 4},
		{3, 0.10, true, 0},
		{10, 0.25, true, 2},
		{10, 0.75, false, 7},
		{10, 0.90, false, 9},
		{4, 0.90, false, 3},
	}

	for _, tt := range tests {
		if tt.ceil {
			assert.Equal(t, tt.want, ceilIndex(tt.n, tt.p), "ceil n=%d p=%v", tt.n, tt.p)
		} else {
			assert.Equal(t, tt.want, floorIndex(tt.n, tt.p), "floor n=%d p=%v", tt.n, tt.p)
		}
	}
}

func TestMedian(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 50, median([]float64{40, 50, 60}), 1e-9)
	assert.InDelta(t, 45, median([]float64{40, 50}), 1e-9)
	assert.Zero(t, median(nil))
}

func TestLadderAdjust(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	market := domain.MarketSummary{SeasonalMultiplier: 1.0, Trend: domain.TrendRising}
	raw := cfg.BuildLadder(listingsWithPrices(40, 45, 50, 55, 200), domain.Identification{}, market)

	adjusted := raw.Adjust(0.85)

	assert.InDelta(t, raw.QuickSale*0.85, adjusted.QuickSale, 1e-9)
	assert.InDelta(t, raw.Market*0.85, adjusted.Market, 1e-9)
	assert.InDelta(t, raw.Premium*0.85, adjusted.Premium, 1e-9)
	assert.InDelta(t, raw.Average*0.85, adjusted.Average, 1e-9)
	assert.InDelta(t, raw.FeeAdjustedMarket*0.85, adjusted.FeeAdjustedMarket, 1e-9)
	assert.InDelta(t, raw.Spread*0.85, adjusted.Spread, 1e-9)

	// distribution facts are untouched
	assert.Equal(t, raw.SampleSize, adjusted.SampleSize)
	assert.Equal(t, raw.Median, adjusted.Median)
	assert.Equal(t, raw.SeasonalMultiplier, adjusted.SeasonalMultiplier)
	assert.Equal(t, raw.Trend, adjusted.Trend)
}
