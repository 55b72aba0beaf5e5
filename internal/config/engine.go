package config

import (
	"fmt"
	"maps"
	"time"

	"github.com/jmorrow/flip-analyzer/internal/engine"
)

// EngineConfig overrides the pricing engine's thresholds and lookup tables.
// Zero values keep the built-in defaults. brand_tiers entries merge over the
// default tier table; seasonal_rules replaces the default rule table when
// set, since partial seasonal tables are ambiguous.
type EngineConfig struct {
	FeeRate          float64              `yaml:"fee_rate"`
	MinMarketSamples int                  `yaml:"min_market_samples"`
	MaxSamples       int                  `yaml:"max_samples"`
	QuickSaleRatio   float64              `yaml:"quick_sale_ratio"`
	PremiumRatio     float64              `yaml:"premium_ratio"`
	AverageRatio     float64              `yaml:"average_ratio"`
	MaxBuyRatio      float64              `yaml:"max_buy_ratio"`
	TargetMargin     float64              `yaml:"target_margin"`
	DefaultBasePrice float64              `yaml:"default_base_price"`
	BrandTiers       map[string]float64   `yaml:"brand_tiers"`
	SeasonalRules    []SeasonalRuleConfig `yaml:"seasonal_rules"`
}

// SeasonalRuleConfig is the YAML form of one seasonal pricing rule.
type SeasonalRuleConfig struct {
	Name      string   `yaml:"name"`
	Keywords  []string `yaml:"keywords"`
	Months    []int    `yaml:"months"`
	InSeason  float64  `yaml:"in_season"`
	OffSeason float64  `yaml:"off_season"`
}

// Apply layers the configured overrides onto base and returns the result.
// The base is not modified.
func (e *EngineConfig) Apply(base engine.Config) engine.Config {
	out := base

	if e.FeeRate > 0 {
		out.FeeRate = e.FeeRate
	}
	if e.MinMarketSamples > 0 {
		out.MinMarketSamples = e.MinMarketSamples
	}
	if e.MaxSamples > 0 {
		out.MaxSamples = e.MaxSamples
	}
	if e.QuickSaleRatio > 0 {
		out.QuickSaleRatio = e.QuickSaleRatio
	}
	if e.PremiumRatio > 0 {
		out.PremiumRatio = e.PremiumRatio
	}
	if e.AverageRatio > 0 {
		out.AverageRatio = e.AverageRatio
	}
	if e.MaxBuyRatio > 0 {
		out.MaxBuyRatio = e.MaxBuyRatio
	}
	if e.TargetMargin > 0 {
		out.TargetMargin = e.TargetMargin
	}
	if e.DefaultBasePrice > 0 {
		out.DefaultBasePrice = e.DefaultBasePrice
	}

	if len(e.BrandTiers) > 0 {
		tiers := maps.Clone(base.BrandTiers)
		if tiers == nil {
			tiers = make(map[string]float64, len(e.BrandTiers))
		}
		maps.Copy(tiers, e.BrandTiers)
		out.BrandTiers = tiers
	}

	if len(e.SeasonalRules) > 0 {
		rules := make([]engine.SeasonalRule, len(e.SeasonalRules))
		for i, r := range e.SeasonalRules {
			months := make([]time.Month, len(r.Months))
			for j, m := range r.Months {
				months[j] = time.Month(m)
			}
			rules[i] = engine.SeasonalRule{
				Name:      r.Name,
				Keywords:  r.Keywords,
				Months:    months,
				InSeason:  r.InSeason,
				OffSeason: r.OffSeason,
			}
		}
		out.SeasonalRules = rules
	}

	return out
}

func validateEngine(e *EngineConfig) []error {
	var errs []error

	if e.FeeRate < 0 || e.FeeRate > 1 {
		errs = append(errs, fmt.Errorf("engine.fee_rate must be in (0, 1] (got %g)", e.FeeRate))
	}
	for _, field := range []struct {
		name  string
		value float64
	}{
		{"engine.quick_sale_ratio", e.QuickSaleRatio},
		{"engine.premium_ratio", e.PremiumRatio},
		{"engine.average_ratio", e.AverageRatio},
		{"engine.max_buy_ratio", e.MaxBuyRatio},
		{"engine.default_base_price", e.DefaultBasePrice},
	} {
		if field.value < 0 {
			errs = append(errs, fmt.Errorf("%s must not be negative (got %g)", field.name, field.value))
		}
	}

	for _, rule := range e.SeasonalRules {
		if rule.Name == "" {
			errs = append(errs, fmt.Errorf("engine.seasonal_rules entries need a name"))
			continue
		}
		if rule.InSeason <= 0 || rule.OffSeason <= 0 {
			errs = append(errs, fmt.Errorf(
				"engine.seasonal_rules[%s]: in_season and off_season must be positive", rule.Name,
			))
		}
		for _, m := range rule.Months {
			if m < 1 || m > 12 {
				errs = append(errs, fmt.Errorf(
					"engine.seasonal_rules[%s]: month %d out of range 1-12", rule.Name, m,
				))
			}
		}
	}

	return errs
}
