package engine

import (
	"math"
	"sort"
	"strings"

	domain "github.com/jmorrow/flip-analyzer/pkg/types"
)

// BuildLadder produces the raw price ladder for an item. With enough usable
// observations it derives percentile-based prices from the sold data;
// otherwise it falls back to brand/category heuristics. Zero-price
// observations are dropped before any computation, and a set that loses all
// its members that way also falls back to heuristics.
func (c Config) BuildLadder(listings []domain.SoldListing, id domain.Identification, market domain.MarketSummary) domain.PriceLadder {
	prices := make([]float64, 0, len(listings))
	for i := range listings {
		if listings[i].Price > 0 {
			prices = append(prices, listings[i].Price)
		}
	}
	if len(prices) < c.MinMarketSamples {
		return c.heuristicLadder(id, market)
	}

	sort.Float64s(prices)
	n := len(prices)

	// low percentiles index with ceil(n*p)-1, high ones with floor(n*p)
	p10 := prices[ceilIndex(n, 0.10)]
	p25 := prices[ceilIndex(n, 0.25)]
	med := median(prices)
	p75 := prices[floorIndex(n, 0.75)]
	p90 := prices[floorIndex(n, 0.90)]
	avg := mean(prices)

	seasonal := market.SeasonalMultiplier
	marketPrice := med * seasonal

	return domain.PriceLadder{
		QuickSale:          p10 * seasonal,
		Market:             marketPrice,
		Premium:            p75 * seasonal,
		Average:            avg * seasonal,
		P10:                p10,
		P25:                p25,
		Median:             med,
		P75:                p75,
		P90:                p90,
		SampleSize:         n,
		Spread:             p90 - p10,
		FeeAdjustedMarket:  marketPrice * c.FeeRate,
		SeasonalMultiplier: seasonal,
		Trend:              market.Trend,
	}
}

// heuristicLadder prices an item from brand tier and category multiplier
// tables when too few comparables exist. SampleSize stays 0 so downstream
// consumers can tell heuristic pricing from market-backed pricing.
func (c Config) heuristicLadder(id domain.Identification, market domain.MarketSummary) domain.PriceLadder {
	base := c.DefaultBasePrice
	if tier, ok := c.BrandTiers[strings.ToLower(clean(id.Brand))]; ok {
		base = tier
	}
	base *= c.categoryMultiplier(id)

	seasonal := market.SeasonalMultiplier
	if seasonal == 0 {
		seasonal = c.DefaultSeasonal
	}
	base *= seasonal

	quick := base * c.QuickSaleRatio
	premium := base * c.PremiumRatio

	return domain.PriceLadder{
		QuickSale:          quick,
		Market:             base,
		Premium:            premium,
		Average:            base * c.AverageRatio,
		SampleSize:         0,
		Spread:             premium - quick,
		FeeAdjustedMarket:  base * c.FeeRate,
		SeasonalMultiplier: seasonal,
		Trend:              market.Trend,
	}
}

func (c Config) categoryMultiplier(id domain.Identification) float64 {
	haystack := strings.ToLower(id.Category + " " + id.Subcategory + " " + id.Name)
	for _, cm := range c.CategoryMultipliers {
		if containsAny(haystack, cm.Keywords) {
			return cm.Multiplier
		}
	}
	return 1.0
}

func ceilIndex(n int, p float64) int {
	return max(0, int(math.Ceil(float64(n)*p))-1)
}

func floorIndex(n int, p float64) int {
	return min(n-1, int(math.Floor(float64(n)*p)))
}

// median returns the midpoint of a sorted slice.
func median(sorted []float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

func mean(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	var sum float64
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}
