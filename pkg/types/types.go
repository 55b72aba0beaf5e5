// Package domain defines the core business types for flip-analyzer.
package domain

import (
	"time"
)

// DemandLevel summarizes sold-item volume for a product.
type DemandLevel string

// Demand level constants, ordered from no data to very high.
const (
	DemandNoData   DemandLevel = "no_market_data"
	DemandVeryLow  DemandLevel = "very_low"
	DemandLow      DemandLevel = "low"
	DemandMedium   DemandLevel = "medium"
	DemandHigh     DemandLevel = "high"
	DemandVeryHigh DemandLevel = "very_high"
)

// Label returns the human-readable form of the demand level.
func (d DemandLevel) Label() string {
	switch d {
	case DemandNoData:
		return "No Market Data"
	case DemandVeryLow:
		return "Very Low"
	case DemandLow:
		return "Low"
	case DemandMedium:
		return "Medium"
	case DemandHigh:
		return "High"
	case DemandVeryHigh:
		return "Very High"
	default:
		return string(d)
	}
}

// PriceTrend describes the recent direction of sold prices.
type PriceTrend string

// Price trend constants.
const (
	TrendRising       PriceTrend = "rising"
	TrendDeclining    PriceTrend = "declining"
	TrendStable       PriceTrend = "stable"
	TrendInsufficient PriceTrend = "insufficient_data"
)

// Label returns the human-readable form of the trend.
func (t PriceTrend) Label() string {
	switch t {
	case TrendRising:
		return "Rising"
	case TrendDeclining:
		return "Declining"
	case TrendStable:
		return "Stable"
	case TrendInsufficient:
		return "Insufficient Data"
	default:
		return string(t)
	}
}

// ConditionGrade represents a normalized item condition.
type ConditionGrade string

// Condition grade constants, best to worst.
const (
	ConditionNewWithTags    ConditionGrade = "new_with_tags"
	ConditionNewWithoutTags ConditionGrade = "new_without_tags"
	ConditionLikeNew        ConditionGrade = "like_new"
	ConditionExcellent      ConditionGrade = "excellent"
	ConditionVeryGood       ConditionGrade = "very_good"
	ConditionGood           ConditionGrade = "good"
)

// Label returns the human-readable form of the grade.
func (c ConditionGrade) Label() string {
	switch c {
	case ConditionNewWithTags:
		return "New with tags"
	case ConditionNewWithoutTags:
		return "New without tags"
	case ConditionLikeNew:
		return "Like New"
	case ConditionExcellent:
		return "Excellent"
	case ConditionVeryGood:
		return "Very Good"
	case ConditionGood:
		return "Good"
	default:
		return string(c)
	}
}

// ListingFormat represents the recommended marketplace listing format.
type ListingFormat string

// Listing format constants.
const (
	FormatFixedPrice          ListingFormat = "fixed_price"
	FormatFixedPriceBestOffer ListingFormat = "fixed_price_best_offer"
	FormatAuction             ListingFormat = "auction"
)

// Image is a raw item photo handed to the vision collaborator.
type Image struct {
	Data     []byte `json:"data"`
	MIMEType string `json:"mime_type"`
}

// Identification is the structured product identity produced by the vision
// collaborator. Optional fields are empty strings when the model could not
// determine them.
type Identification struct {
	Name         string  `json:"name"                    db:"name"`
	Brand        string  `json:"brand,omitempty"         db:"brand"`
	Category     string  `json:"category,omitempty"      db:"category"`
	Subcategory  string  `json:"subcategory,omitempty"   db:"subcategory"`
	Model        string  `json:"model,omitempty"         db:"model"`
	StyleCode    string  `json:"style_code,omitempty"    db:"style_code"`
	Size         string  `json:"size,omitempty"          db:"size"`
	Colorway     string  `json:"colorway,omitempty"      db:"colorway"`
	ReleaseYear  int     `json:"release_year,omitempty"  db:"release_year"`
	ConditionRaw string  `json:"condition_raw,omitempty" db:"condition_raw"`
	Confidence   float64 `json:"confidence"              db:"confidence"`
}

// SoldListing is one completed-sale observation used as market evidence.
type SoldListing struct {
	Title             string     `json:"title"`
	Price             float64    `json:"price"`
	Currency          string     `json:"currency,omitempty"`
	ConditionRaw      string     `json:"condition_raw,omitempty"`
	SoldAt            *time.Time `json:"sold_at,omitempty"`
	ShippingCost      *float64   `json:"shipping_cost,omitempty"`
	BestOfferAccepted bool       `json:"best_offer_accepted,omitempty"`
	ItemURL           string     `json:"item_url,omitempty"`
	ImageURL          string     `json:"image_url,omitempty"`
}

// TotalPrice returns the sale price including shipping when known.
func (s *SoldListing) TotalPrice() float64 {
	if s.ShippingCost != nil {
		return s.Price + *s.ShippingCost
	}
	return s.Price
}

// MarketSummary aggregates sold-listing observations into demand and
// confidence signals for one analysis.
type MarketSummary struct {
	Demand             DemandLevel `json:"demand"`
	Confidence         float64     `json:"confidence"`
	RecentSales        int         `json:"recent_sales"`
	TotalSales         int         `json:"total_sales"`
	Trend              PriceTrend  `json:"trend"`
	CompetitorCount    int         `json:"competitor_count"`
	EstSaleDays        int         `json:"est_sale_days"`
	SeasonalMultiplier float64     `json:"seasonal_multiplier"`
}

// PriceLadder is the set of named price points produced for one analysis.
// Percentile fields hold the raw observed distribution; QuickSale, Market,
// Premium and Average carry the seasonal multiplier. SampleSize 0 means the
// ladder came from brand/category heuristics instead of market data.
type PriceLadder struct {
	QuickSale         float64    `json:"quick_sale"`
	Market            float64    `json:"market"`
	Premium           float64    `json:"premium"`
	Average           float64    `json:"average"`
	P10               float64    `json:"p10"`
	P25               float64    `json:"p25"`
	Median            float64    `json:"median"`
	P75               float64    `json:"p75"`
	P90               float64    `json:"p90"`
	SampleSize        int        `json:"sample_size"`
	Spread            float64    `json:"spread"`
	FeeAdjustedMarket float64    `json:"fee_adjusted_market"`
	SeasonalMultiplier float64   `json:"seasonal_multiplier"`
	Trend             PriceTrend `json:"trend"`
}

// Adjust returns a copy of the ladder with the sellable price points and
// spread scaled by mult. Percentiles, sample size, seasonal multiplier and
// trend are distribution facts and stay untouched.
func (l PriceLadder) Adjust(mult float64) PriceLadder {
	out := l
	out.QuickSale = l.QuickSale * mult
	out.Market = l.Market * mult
	out.Premium = l.Premium * mult
	out.Average = l.Average * mult
	out.FeeAdjustedMarket = l.FeeAdjustedMarket * mult
	out.Spread = l.Spread * mult
	return out
}

// ConditionAssessment is the normalized condition verdict for an item.
type ConditionAssessment struct {
	Grade                  ConditionGrade `json:"grade"`
	Notes                  []string       `json:"notes,omitempty"`
	PriceImpact            float64        `json:"price_impact"`
	Completeness           float64        `json:"completeness"`
	AuthenticityConfidence float64        `json:"authenticity_confidence"`
}

// ListingContent is the machine-generated listing package.
type ListingContent struct {
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	Keywords         []string `json:"keywords"`
	CategoryID       string   `json:"category_id"`
	ShippingStrategy string   `json:"shipping_strategy"`
	ReturnPolicy     string   `json:"return_policy"`
	Enhancements     []string `json:"enhancements,omitempty"`
}

// SellingStrategy is the recommended selling approach for an item.
type SellingStrategy struct {
	Format           ListingFormat `json:"format"`
	Pricing          string        `json:"pricing"`
	Timing           string        `json:"timing"`
	SourcingInsights []string      `json:"sourcing_insights,omitempty"`
	EstSaleDays      int           `json:"est_sale_days"`
	TargetMargin     float64       `json:"target_margin"`
}

// Analysis is the final artifact of one end-to-end analysis run. Ladder is
// the condition-adjusted ladder; RawLadder preserves the pre-adjustment
// values for transparency. Samples holds at most ten sold listings for
// display.
type Analysis struct {
	ID             string              `json:"id"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
	Identification Identification      `json:"identification"`
	Market         MarketSummary       `json:"market"`
	RawLadder      PriceLadder         `json:"raw_ladder"`
	Ladder         PriceLadder         `json:"ladder"`
	Condition      ConditionAssessment `json:"condition"`
	Content        ListingContent      `json:"content"`
	Strategy       SellingStrategy     `json:"strategy"`
	Samples        []SoldListing       `json:"samples,omitempty"`
}
