package engine

import (
	"time"

	domain "github.com/jmorrow/flip-analyzer/pkg/types"
)

// Config holds every tunable threshold and lookup table used by the engine.
// All tables are data rather than inline conditionals so they can be unit
// tested and overridden independently of the pipeline.
type Config struct {
	// FeeRate is the fraction of the market price kept after marketplace
	// and payment fees (flat estimate).
	FeeRate float64

	// MaxQueries caps the comparable-search cascade.
	MaxQueries int

	// RecentWindow is the lookback for "recent" sales.
	RecentWindow time.Duration

	// MinMarketSamples is the observation count below which pricing falls
	// back to brand/category heuristics.
	MinMarketSamples int

	// Demand bucketing.
	DemandBuckets    []DemandBucket
	RecencyBoost     float64 // confidence added per recent sale
	RecencyBoostCap  float64
	CompetitorFactor int // estimated competitors per observation
	CompetitorCap    int
	SaleDaysByDemand map[domain.DemandLevel]int
	DefaultSaleDays  int

	// Trend detection.
	TrendMinSamples int     // dated observations required
	TrendWindow     int     // observations compared at each end
	TrendThreshold  float64 // relative change for rising/declining

	// Seasonality.
	SeasonalRules   []SeasonalRule
	DefaultSeasonal float64

	// Heuristic pricing.
	BrandTiers          map[string]float64
	DefaultBasePrice    float64
	CategoryMultipliers []CategoryMultiplier
	QuickSaleRatio      float64
	PremiumRatio        float64
	AverageRatio        float64

	// Condition mapping, checked in order; the last entry is the default.
	ConditionRules []ConditionRule

	// Listing content.
	TitleMaxLen    int
	TitleStyleCut  int // style code only appended below this length
	KeywordCap     int
	CategoryCodes  []CategoryCode
	DefaultCode    string

	// Strategy.
	MaxBuyRatio  float64 // of quick-sale price
	TargetMargin float64
	BrandTips    []KeywordTip
	CategoryTips []KeywordTip

	// Result assembly.
	MaxSamples int
}

// DemandBucket maps a total observation count to a demand level and base
// confidence. Buckets are evaluated in order; MaxCount is inclusive and -1
// means unbounded.
type DemandBucket struct {
	MaxCount   int
	Level      domain.DemandLevel
	Confidence float64
}

// SeasonalRule scales prices for keyword-matched categories by calendar
// month. Keywords match case-insensitively against category and product name.
type SeasonalRule struct {
	Name      string
	Keywords  []string
	Months    []time.Month
	InSeason  float64
	OffSeason float64
}

// CategoryMultiplier scales the heuristic base price for matching categories.
type CategoryMultiplier struct {
	Keywords   []string
	Multiplier float64
}

// ConditionRule maps a condition-text substring to a normalized grade,
// a descriptive note, and a price-impact multiplier.
type ConditionRule struct {
	Substring  string // empty matches anything (default rule)
	Grade      domain.ConditionGrade
	Note       string
	Multiplier float64
}

// CategoryCode maps category keywords to a marketplace category code.
type CategoryCode struct {
	Keywords []string
	Code     string
}

// KeywordTip attaches a sourcing tip to brand or category keywords.
type KeywordTip struct {
	Keywords []string
	Tip      string
}

// DefaultConfig returns the engine configuration with the standard tables.
func DefaultConfig() Config {
	return Config{
		FeeRate:          0.83,
		MaxQueries:       3,
		RecentWindow:     30 * 24 * time.Hour,
		MinMarketSamples: 3,

		DemandBuckets: []DemandBucket{
			{MaxCount: 0, Level: domain.DemandNoData, Confidence: 0.30},
			{MaxCount: 3, Level: domain.DemandVeryLow, Confidence: 0.50},
			{MaxCount: 8, Level: domain.DemandLow, Confidence: 0.65},
			{MaxCount: 15, Level: domain.DemandMedium, Confidence: 0.80},
			{MaxCount: 30, Level: domain.DemandHigh, Confidence: 0.90},
			{MaxCount: -1, Level: domain.DemandVeryHigh, Confidence: 0.95},
		},
		RecencyBoost:     0.05,
		RecencyBoostCap:  0.10,
		CompetitorFactor: 3,
		CompetitorCap:    150,
		SaleDaysByDemand: map[domain.DemandLevel]int{
			domain.DemandVeryHigh: 2,
			domain.DemandHigh:     5,
			domain.DemandMedium:   10,
			domain.DemandLow:      21,
			domain.DemandVeryLow:  45,
		},
		DefaultSaleDays: 30,

		TrendMinSamples: 4,
		TrendWindow:     3,
		TrendThreshold:  0.10,

		SeasonalRules: []SeasonalRule{
			{
				Name:     "winter",
				Keywords: []string{"coat", "jacket", "winter", "boots", "fleece", "parka"},
				Months: []time.Month{
					time.November, time.December, time.January, time.February,
				},
				InSeason:  1.2,
				OffSeason: 0.8,
			},
			{
				Name:     "summer",
				Keywords: []string{"swimwear", "swimsuit", "shorts", "sandal", "summer"},
				Months: []time.Month{
					time.May, time.June, time.July, time.August,
				},
				InSeason:  1.15,
				OffSeason: 0.85,
			},
			{
				Name:     "holiday",
				Keywords: []string{"holiday", "christmas", "ornament", "ugly sweater"},
				Months:   []time.Month{time.November, time.December},
				InSeason: 1.3,
				OffSeason: 0.7,
			},
		},
		DefaultSeasonal: 1.0,

		BrandTiers: map[string]float64{
			// premium sneakers / streetwear
			"nike":      140,
			"jordan":    140,
			"adidas":    140,
			"yeezy":     140,
			"supreme":   140,
			"off-white": 140,
			"bape":      140,
			// mid-tier apparel
			"levi's":         65,
			"levis":          65,
			"patagonia":      65,
			"the north face": 65,
			"carhartt":       65,
			"ralph lauren":   65,
			// premium electronics
			"apple":    250,
			"sony":     250,
			"bose":     250,
			"dyson":    250,
			"nintendo": 250,
			// budget apparel
			"shein":      40,
			"h&m":        40,
			"old navy":   40,
			"forever 21": 40,
		},
		DefaultBasePrice: 30,
		CategoryMultipliers: []CategoryMultiplier{
			{Keywords: []string{"sneaker", "shoe", "footwear", "boot"}, Multiplier: 1.2},
			{Keywords: []string{"electronic", "console", "headphone", "camera", "phone"}, Multiplier: 2.2},
			{Keywords: []string{"coat", "jacket", "outerwear", "parka"}, Multiplier: 1.5},
		},
		QuickSaleRatio: 0.7,
		PremiumRatio:   1.35,
		AverageRatio:   1.1,

		ConditionRules: []ConditionRule{
			{
				Substring:  "new with tags",
				Grade:      domain.ConditionNewWithTags,
				Note:       "Brand new with original tags attached",
				Multiplier: 1.0,
			},
			{
				Substring:  "new without tags",
				Grade:      domain.ConditionNewWithoutTags,
				Note:       "New condition, tags removed",
				Multiplier: 0.95,
			},
			{
				Substring:  "like new",
				Grade:      domain.ConditionLikeNew,
				Note:       "Worn once or twice, no visible flaws",
				Multiplier: 0.90,
			},
			{
				Substring:  "excellent",
				Grade:      domain.ConditionExcellent,
				Note:       "Light use with minimal signs of wear",
				Multiplier: 0.85,
			},
			{
				Substring:  "very good",
				Grade:      domain.ConditionVeryGood,
				Note:       "Gently used with minor wear",
				Multiplier: 0.80,
			},
			{
				Substring:  "good",
				Grade:      domain.ConditionGood,
				Note:       "Used with normal signs of wear",
				Multiplier: 0.75,
			},
			// default: unrecognized text is treated as plain used/good
			{
				Substring:  "",
				Grade:      domain.ConditionGood,
				Note:       "Used with normal signs of wear",
				Multiplier: 0.75,
			},
		},

		TitleMaxLen:   80,
		TitleStyleCut: 60,
		KeywordCap:    8,
		CategoryCodes: []CategoryCode{
			{Keywords: []string{"sneaker", "athletic"}, Code: "15709"},
			{Keywords: []string{"shoe", "footwear", "boot"}, Code: "93427"},
			{Keywords: []string{"electronic", "console", "headphone", "camera"}, Code: "293"},
			{Keywords: []string{"clothing", "apparel", "shirt", "jacket", "coat", "dress"}, Code: "11450"},
		},
		DefaultCode: "267",

		MaxBuyRatio:  0.6,
		TargetMargin: 0.5,
		BrandTips: []KeywordTip{
			{
				Keywords: []string{"nike", "jordan", "adidas", "yeezy", "supreme", "off-white", "bape"},
				Tip:      "Verify authenticity before buying; this brand is heavily counterfeited",
			},
			{
				Keywords: []string{"apple", "sony", "bose", "dyson", "nintendo"},
				Tip:      "Check battery health and confirm there is no activation or account lock",
			},
		},
		CategoryTips: []KeywordTip{
			{
				Keywords: []string{"sneaker", "shoe", "footwear", "boot"},
				Tip:      "Mid-range sizes sell fastest; confirm the size tag matches the box",
			},
			{
				Keywords: []string{"electronic", "console", "headphone", "camera"},
				Tip:      "Original box and charger materially raise the sale price",
			},
			{
				Keywords: []string{"coat", "jacket", "outerwear"},
				Tip:      "Source in spring when seasonal prices bottom out",
			},
		},

		MaxSamples: 10,
	}
}
