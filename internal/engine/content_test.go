package engine

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/jmorrow/flip-analyzer/pkg/types"
)

func fullIdentity() domain.Identification {
	return domain.Identification{
		Name:         "Nike Air Max 90",
		Brand:        "Nike",
		Category:     "Sneakers",
		Subcategory:  "Athletic Shoes",
		Model:        "Air Max 90",
		StyleCode:    "DD1391-100",
		Size:         "10",
		Colorway:     "Infrared",
		ConditionRaw: "like new",
		Confidence:   0.9,
	}
}

func TestBuildTitle(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	tests := []struct {
		name string
		id   domain.Identification
		cond domain.ConditionAssessment
		want string
	}{
		{
			name: "model preferred over product name",
			id:   fullIdentity(),
			cond: domain.ConditionAssessment{Grade: domain.ConditionLikeNew},
			want: "Nike Air Max 90 Infrared Size 10 DD1391-100 - Like New",
		},
		{
			name: "good condition suffix omitted",
			id: domain.Identification{
				Name:  "Levi's 501 Jeans",
				Brand: "Levi's",
				Size:  "32x32",
			},
			cond: domain.ConditionAssessment{Grade: domain.ConditionGood},
			want: "Levi's 501 Jeans Size 32x32",
		},
		{
			name: "very good also counts as ordinary",
			id:   domain.Identification{Name: "Sony WH-1000XM4", Brand: "Sony"},
			cond: domain.ConditionAssessment{Grade: domain.ConditionVeryGood},
			want: "Sony WH-1000XM4",
		},
		{
			name: "placeholder size skipped",
			id:   domain.Identification{Name: "Air Force 1", Brand: "Nike", Size: "N/A"},
			cond: domain.ConditionAssessment{Grade: domain.ConditionGood},
			want: "Nike Air Force 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, cfg.buildTitle(tt.id, tt.cond))
		})
	}
}

func TestBuildTitleNeverExceedsCap(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	id := domain.Identification{
		Name:      strings.Repeat("Super Long Product Name ", 5),
		Brand:     "Extraordinarily Long Brand Name Company",
		Colorway:  "Multi-Color Rainbow Gradient Special Edition",
		Size:      "10.5 US Mens / 44.5 EU",
		StyleCode: "ABCDEF-123456",
	}
	cond := domain.ConditionAssessment{Grade: domain.ConditionNewWithTags}

	title := cfg.buildTitle(id, cond)
	assert.LessOrEqual(t, len(title), cfg.TitleMaxLen)
	assert.NotEmpty(t, title)
}

func TestBuildTitleTruncatesOnRuneBoundary(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	id := domain.Identification{
		Brand:    "Maison Margiela",
		Model:    "Replica Sneakers Édition Limitée du Printemps",
		Colorway: "Blanc Cassé Crème",
		Size:     "43 EU / 10 US",
	}
	cond := domain.ConditionAssessment{Grade: domain.ConditionNewWithoutTags}

	title := cfg.buildTitle(id, cond)
	assert.True(t, utf8.ValidString(title), "truncation must not split a multi-byte character")
	assert.LessOrEqual(t, utf8.RuneCountInString(title), cfg.TitleMaxLen)
	assert.NotEmpty(t, title)
}

func TestBuildTitleStyleCodeOnlyWhenShort(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	long := domain.Identification{
		Brand:     "Nike",
		Model:     "Air Max 90 Premium Retro Special Anniversary Edition Release",
		StyleCode: "DD1391-100",
	}
	title := cfg.buildTitle(long, domain.ConditionAssessment{Grade: domain.ConditionGood})
	assert.NotContains(t, title, "DD1391-100")

	short := domain.Identification{Brand: "Nike", Model: "Air Max 90", StyleCode: "DD1391-100"}
	title = cfg.buildTitle(short, domain.ConditionAssessment{Grade: domain.ConditionGood})
	assert.Contains(t, title, "DD1391-100")
}

func TestBuildDescription(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cond := cfg.AssessCondition(fullIdentity())

	market := domain.MarketSummary{
		Demand:     domain.DemandHigh,
		TotalSales: 25,
		Trend:      domain.TrendRising,
	}
	desc := cfg.buildDescription(fullIdentity(), cond, market)

	assert.Contains(t, desc, "Nike Air Max 90")
	assert.Contains(t, desc, "- Brand: Nike")
	assert.Contains(t, desc, "- Size: 10")
	assert.Contains(t, desc, "- Style Code: DD1391-100")
	assert.Contains(t, desc, "- Condition: Like New")
	assert.Contains(t, desc, "based on 25 recent sales")
	assert.Contains(t, desc, "high demand")
	assert.Contains(t, desc, "rising price trend")
	assert.Contains(t, desc, "Buy now before it's gone!")
}

func TestBuildDescriptionOmitsMarketInsightWithoutSales(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	id := domain.Identification{Name: "Mystery Widget"}
	cond := cfg.AssessCondition(id)

	desc := cfg.buildDescription(id, cond, domain.MarketSummary{Demand: domain.DemandNoData})

	assert.NotContains(t, desc, "Market Insight")
	assert.Contains(t, desc, "Make it yours!")
}

func TestBuildKeywords(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	keywords := cfg.buildKeywords(fullIdentity())

	assert.LessOrEqual(t, len(keywords), cfg.KeywordCap)
	assert.Contains(t, keywords, "nike")
	assert.Contains(t, keywords, "air max 90")
	assert.Contains(t, keywords, "dd1391-100")
	assert.Contains(t, keywords, "size 10")

	seen := make(map[string]struct{}, len(keywords))
	for _, kw := range keywords {
		assert.Equal(t, strings.ToLower(kw), kw, "keywords are lower-cased")
		_, dup := seen[kw]
		require.False(t, dup, "duplicate keyword %q", kw)
		seen[kw] = struct{}{}
	}
}

func TestBuildKeywordsDeduplicatesCaseInsensitively(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	id := domain.Identification{
		Name:  "NIKE",
		Brand: "Nike",
		Model: "nike",
	}
	keywords := cfg.buildKeywords(id)
	assert.Equal(t, []string{"nike"}, keywords)
}

func TestCategoryCode(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	tests := []struct {
		category string
		want     string
	}{
		{"Sneakers", "15709"},
		{"Athletic Footwear", "15709"},
		{"Boots", "93427"},
		{"Consumer Electronics", "293"},
		{"Clothing", "11450"},
		{"Collectibles", "267"},
		{"", "267"},
	}

	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			t.Parallel()
			got := cfg.categoryCode(domain.Identification{Category: tt.category})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGenerateContent(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	id := fullIdentity()
	cond := cfg.AssessCondition(id)
	market := domain.MarketSummary{Demand: domain.DemandHigh, TotalSales: 20, Trend: domain.TrendStable}

	content := cfg.GenerateContent(id, cond, market)

	assert.NotEmpty(t, content.Title)
	assert.NotEmpty(t, content.Description)
	assert.NotEmpty(t, content.Keywords)
	assert.Equal(t, "15709", content.CategoryID)
	assert.Contains(t, content.ShippingStrategy, "shoe-safe")
	assert.NotEmpty(t, content.ReturnPolicy)
	assert.Contains(t, content.Enhancements, "promote_listing")
}
