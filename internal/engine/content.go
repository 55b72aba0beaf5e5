package engine

import (
	"fmt"
	"strings"

	domain "github.com/jmorrow/flip-analyzer/pkg/types"
)

// GenerateContent builds the listing package: an SEO title, a structured
// description, a deduplicated keyword set, a category code and fulfillment
// guidance.
func (c Config) GenerateContent(id domain.Identification, cond domain.ConditionAssessment, market domain.MarketSummary) domain.ListingContent {
	return domain.ListingContent{
		Title:            c.buildTitle(id, cond),
		Description:      c.buildDescription(id, cond, market),
		Keywords:         c.buildKeywords(id),
		CategoryID:       c.categoryCode(id),
		ShippingStrategy: c.shippingStrategy(id),
		ReturnPolicy:     "30-day returns accepted, buyer pays return shipping",
		Enhancements:     c.enhancements(cond, market),
	}
}

// buildTitle concatenates the identity fields most buyers search by. The
// style code is only appended while the title is still short, and the
// condition suffix is skipped for ordinary used grades. Hard cap at
// TitleMaxLen characters.
func (c Config) buildTitle(id domain.Identification, cond domain.ConditionAssessment) string {
	parts := make([]string, 0, 4)
	brand := clean(id.Brand)
	if brand != "" {
		parts = append(parts, brand)
	}
	if m := clean(id.Model); m != "" {
		parts = append(parts, m)
	} else if n := stripBrand(clean(id.Name), brand); n != "" {
		parts = append(parts, n)
	}
	if cw := clean(id.Colorway); cw != "" && !isPlaceholder(cw) {
		parts = append(parts, cw)
	}
	if sz := clean(id.Size); sz != "" && !isPlaceholder(sz) {
		parts = append(parts, "Size "+sz)
	}

	title := strings.Join(parts, " ")
	if sc := clean(id.StyleCode); sc != "" && len(title) < c.TitleStyleCut {
		title = strings.TrimSpace(title + " " + sc)
	}
	if !isGoodFamily(cond.Grade) {
		title = strings.TrimSpace(title + " - " + cond.Grade.Label())
	}
	// Cut on a rune boundary so accented names survive truncation intact.
	if runes := []rune(title); len(runes) > c.TitleMaxLen {
		title = strings.TrimSpace(string(runes[:c.TitleMaxLen]))
	}
	return title
}

func isGoodFamily(g domain.ConditionGrade) bool {
	return g == domain.ConditionGood || g == domain.ConditionVeryGood
}

func (c Config) buildDescription(id domain.Identification, cond domain.ConditionAssessment, market domain.MarketSummary) string {
	var b strings.Builder

	name := clean(id.Name)
	if name == "" {
		name = clean(id.Brand)
	}
	fmt.Fprintf(&b, "%s\n\n", name)

	b.WriteString("Item Details:\n")
	writeDetail(&b, "Brand", id.Brand)
	writeDetail(&b, "Model", id.Model)
	writeDetail(&b, "Size", id.Size)
	writeDetail(&b, "Colorway", id.Colorway)
	writeDetail(&b, "Style Code", id.StyleCode)
	writeDetail(&b, "Condition", cond.Grade.Label())

	if len(cond.Notes) > 0 {
		b.WriteString("\nCondition Notes:\n")
		for _, note := range cond.Notes {
			fmt.Fprintf(&b, "- %s\n", note)
		}
	}

	if market.TotalSales > 0 {
		fmt.Fprintf(&b,
			"\nMarket Insight: based on %d recent sales this item shows %s demand with a %s price trend.\n",
			market.TotalSales,
			strings.ToLower(market.Demand.Label()),
			strings.ToLower(market.Trend.Label()),
		)
	}

	b.WriteString("\nShips fast with tracking. Carefully packaged. Smoke-free home.\n")
	b.WriteString("Questions? Message me anytime before buying.\n\n")
	b.WriteString(closingLine(market.Demand))

	return b.String()
}

func writeDetail(b *strings.Builder, label, value string) {
	v := clean(value)
	if v == "" || isPlaceholder(v) {
		return
	}
	fmt.Fprintf(b, "- %s: %s\n", label, v)
}

func closingLine(demand domain.DemandLevel) string {
	switch demand {
	case domain.DemandVeryHigh, domain.DemandHigh:
		return "These sell quickly, so don't wait. Buy now before it's gone!"
	case domain.DemandMedium:
		return "Priced to sell. Add it to your cart today!"
	default:
		return "A great find for the right buyer. Make it yours!"
	}
}

// buildKeywords collects lower-cased search terms from the identity fields,
// deduplicated and capped at KeywordCap entries.
func (c Config) buildKeywords(id domain.Identification) []string {
	keywords := make([]string, 0, c.KeywordCap)
	seen := make(map[string]struct{}, c.KeywordCap)

	add := func(s string) {
		s = strings.ToLower(clean(s))
		if s == "" || isPlaceholder(s) {
			return
		}
		if _, ok := seen[s]; ok {
			return
		}
		if len(keywords) >= c.KeywordCap {
			return
		}
		seen[s] = struct{}{}
		keywords = append(keywords, s)
	}

	add(id.Name)
	add(id.Brand)
	add(id.Model)
	add(id.Category)
	add(id.StyleCode)
	add(id.Colorway)
	if sz := clean(id.Size); sz != "" && !isPlaceholder(sz) {
		add("size " + sz)
	}
	return keywords
}

func (c Config) categoryCode(id domain.Identification) string {
	haystack := strings.ToLower(id.Category + " " + id.Subcategory)
	for _, cc := range c.CategoryCodes {
		if containsAny(haystack, cc.Keywords) {
			return cc.Code
		}
	}
	return c.DefaultCode
}

func (c Config) shippingStrategy(id domain.Identification) string {
	haystack := strings.ToLower(id.Category + " " + id.Subcategory + " " + id.Name)
	switch {
	case containsAny(haystack, []string{"electronic", "console", "camera", "headphone"}):
		return "Calculated shipping with full insurance"
	case containsAny(haystack, []string{"sneaker", "shoe", "boot", "footwear"}):
		return "Flat-rate priority shipping in a shoe-safe box"
	default:
		return "Flat-rate ground shipping"
	}
}

func (c Config) enhancements(cond domain.ConditionAssessment, market domain.MarketSummary) []string {
	var out []string
	if cond.Grade == domain.ConditionNewWithTags || cond.Grade == domain.ConditionNewWithoutTags {
		out = append(out, "highlight_new_condition")
	}
	switch market.Demand {
	case domain.DemandVeryHigh, domain.DemandHigh:
		out = append(out, "promote_listing")
	case domain.DemandLow, domain.DemandVeryLow, domain.DemandNoData:
		out = append(out, "enable_best_offer")
	}
	return out
}
