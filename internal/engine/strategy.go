package engine

import (
	"fmt"
	"strings"

	domain "github.com/jmorrow/flip-analyzer/pkg/types"
)

// AdviseStrategy selects a listing format, pricing posture, timing guidance
// and sourcing tips from the demand classification and the condition-adjusted
// ladder.
func (c Config) AdviseStrategy(id domain.Identification, market domain.MarketSummary, ladder domain.PriceLadder) domain.SellingStrategy {
	var (
		format  domain.ListingFormat
		pricing string
		timing  string
	)

	switch market.Demand {
	case domain.DemandVeryHigh, domain.DemandHigh:
		format = domain.FormatFixedPriceBestOffer
		pricing = fmt.Sprintf("List at $%.2f and hold firm; demand supports full market price", ladder.Market)
		timing = "List immediately, items like this move fast"
	case domain.DemandMedium:
		format = domain.FormatFixedPriceBestOffer
		pricing = fmt.Sprintf("List at $%.2f and accept offers down to $%.2f", ladder.Premium, ladder.Market)
		timing = "List within the week and expect steady interest"
	case domain.DemandLow, domain.DemandVeryLow:
		format = domain.FormatAuction
		pricing = "Run a 5-day auction starting at $0.99 and let the market set the price"
		timing = "End the auction on a Sunday evening for peak traffic"
	default:
		format = domain.FormatFixedPrice
		pricing = fmt.Sprintf("List conservatively at $%.2f; little market data to anchor higher", ladder.Market)
		timing = "List when convenient and adjust based on watchers"
	}

	return domain.SellingStrategy{
		Format:           format,
		Pricing:          pricing,
		Timing:           timing,
		SourcingInsights: c.sourcingInsights(id, ladder),
		EstSaleDays:      market.EstSaleDays,
		TargetMargin:     c.TargetMargin,
	}
}

// sourcingInsights leads with the max-buy price that preserves the target
// margin, then appends brand- and category-specific tips.
func (c Config) sourcingInsights(id domain.Identification, ladder domain.PriceLadder) []string {
	insights := []string{
		fmt.Sprintf("Pay at most $%.2f to clear a %.0f%% return after fees",
			ladder.QuickSale*c.MaxBuyRatio, c.TargetMargin*100),
	}

	brand := strings.ToLower(clean(id.Brand))
	for _, tip := range c.BrandTips {
		if containsAny(brand, tip.Keywords) {
			insights = append(insights, tip.Tip)
		}
	}

	haystack := strings.ToLower(id.Category + " " + id.Subcategory + " " + id.Name)
	for _, tip := range c.CategoryTips {
		if containsAny(haystack, tip.Keywords) {
			insights = append(insights, tip.Tip)
		}
	}
	return insights
}
