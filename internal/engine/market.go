package engine

import (
	"sort"
	"strings"
	"time"

	domain "github.com/jmorrow/flip-analyzer/pkg/types"
)

// AnalyzeMarket converts sold-listing observations into demand, confidence,
// trend and seasonality signals. now anchors the recency window and the
// seasonal month check.
func (c Config) AnalyzeMarket(listings []domain.SoldListing, id domain.Identification, now time.Time) domain.MarketSummary {
	total := len(listings)

	recent := 0
	cutoff := now.Add(-c.RecentWindow)
	for i := range listings {
		if listings[i].SoldAt != nil && listings[i].SoldAt.After(cutoff) {
			recent++
		}
	}

	level, confidence := c.demandFor(total)
	confidence = min(confidence+min(float64(recent)*c.RecencyBoost, c.RecencyBoostCap), 1.0)

	competitors := min(total*c.CompetitorFactor, c.CompetitorCap)

	days, ok := c.SaleDaysByDemand[level]
	if !ok {
		days = c.DefaultSaleDays
	}

	return domain.MarketSummary{
		Demand:             level,
		Confidence:         confidence,
		RecentSales:        recent,
		TotalSales:         total,
		Trend:              c.priceTrend(listings),
		CompetitorCount:    competitors,
		EstSaleDays:        days,
		SeasonalMultiplier: c.seasonalMultiplier(id, now.Month()),
	}
}

// demandFor picks the demand level and base confidence for a total
// observation count. Buckets are inclusive upper bounds; -1 is unbounded.
func (c Config) demandFor(total int) (domain.DemandLevel, float64) {
	for _, b := range c.DemandBuckets {
		if b.MaxCount < 0 || total <= b.MaxCount {
			return b.Level, b.Confidence
		}
	}
	return domain.DemandNoData, 0
}

// priceTrend compares the mean price of the most recent dated sales against
// the most distant ones. Fewer than TrendMinSamples dated observations means
// no verdict.
func (c Config) priceTrend(listings []domain.SoldListing) domain.PriceTrend {
	dated := make([]domain.SoldListing, 0, len(listings))
	for i := range listings {
		if listings[i].SoldAt != nil {
			dated = append(dated, listings[i])
		}
	}
	if len(dated) < c.TrendMinSamples {
		return domain.TrendInsufficient
	}

	sort.SliceStable(dated, func(i, j int) bool {
		return dated[i].SoldAt.After(*dated[j].SoldAt)
	})

	newest := meanPrice(dated[:c.TrendWindow])
	oldest := meanPrice(dated[len(dated)-c.TrendWindow:])
	if oldest == 0 {
		return domain.TrendStable
	}

	change := (newest - oldest) / oldest
	switch {
	case change > c.TrendThreshold:
		return domain.TrendRising
	case change < -c.TrendThreshold:
		return domain.TrendDeclining
	default:
		return domain.TrendStable
	}
}

func meanPrice(listings []domain.SoldListing) float64 {
	if len(listings) == 0 {
		return 0
	}
	var sum float64
	for i := range listings {
		sum += listings[i].Price
	}
	return sum / float64(len(listings))
}

// seasonalMultiplier matches product keywords against the seasonal rule
// table. The first matching rule wins; unmatched products get the default.
func (c Config) seasonalMultiplier(id domain.Identification, month time.Month) float64 {
	haystack := strings.ToLower(id.Category + " " + id.Subcategory + " " + id.Name)
	for _, rule := range c.SeasonalRules {
		if !containsAny(haystack, rule.Keywords) {
			continue
		}
		for _, m := range rule.Months {
			if m == month {
				return rule.InSeason
			}
		}
		return rule.OffSeason
	}
	return c.DefaultSeasonal
}
