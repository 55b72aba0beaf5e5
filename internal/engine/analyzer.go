// Package engine implements the market analysis and pricing pipeline:
// query cascade, market summary, price ladder, condition adjustment,
// listing content and selling strategy, sequenced by the Engine
// orchestrator.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/jmorrow/flip-analyzer/internal/metrics"
	domain "github.com/jmorrow/flip-analyzer/pkg/types"
)

// ErrNoIdentification is returned when the vision collaborator cannot
// produce a usable product identity. It is the only terminal pipeline error.
var ErrNoIdentification = errors.New("no product identification")

// Stage identifies one step of the analysis pipeline, reported to the
// caller for progress feedback.
type Stage int

// Pipeline stages in execution order.
const (
	StageIdentify Stage = iota + 1
	StageBuildQueries
	StageSearchComps
	StageMarketAnalysis
	StagePricing
	StageCondition
	StageAdjustPricing
	StageContent
	StageStrategy
	StageAssemble
)

// StageCount is the total number of pipeline stages.
const StageCount = 10

func (s Stage) String() string {
	switch s {
	case StageIdentify:
		return "identifying item"
	case StageBuildQueries:
		return "building search queries"
	case StageSearchComps:
		return "searching sold comparables"
	case StageMarketAnalysis:
		return "analyzing market demand"
	case StagePricing:
		return "computing price ladder"
	case StageCondition:
		return "assessing condition"
	case StageAdjustPricing:
		return "adjusting prices for condition"
	case StageContent:
		return "generating listing content"
	case StageStrategy:
		return "building selling strategy"
	case StageAssemble:
		return "assembling result"
	default:
		return "unknown"
	}
}

// Identifier produces a structured product identity from item photos.
type Identifier interface {
	Identify(ctx context.Context, images []domain.Image) (*domain.Identification, error)
}

// CompSearcher returns sold-listing observations for a search query.
type CompSearcher interface {
	SearchSold(ctx context.Context, query string) ([]domain.SoldListing, error)
}

// ProgressFunc receives stage notifications during an analysis.
type ProgressFunc func(stage Stage, index, total int)

// Engine runs the end-to-end analysis pipeline. It holds no mutable state
// across invocations; a single Engine is safe for concurrent use.
type Engine struct {
	cfg        Config
	identifier Identifier
	searcher   CompSearcher
	logger     *slog.Logger
	nowFunc    func() time.Time
	progress   ProgressFunc
}

// Option configures an Engine.
type Option func(*Engine)

// WithConfig overrides the default lookup tables and thresholds.
func WithConfig(cfg Config) Option {
	return func(e *Engine) { e.cfg = cfg }
}

// WithLogger sets the engine logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithNowFunc overrides the time source for deterministic tests.
func WithNowFunc(fn func() time.Time) Option {
	return func(e *Engine) { e.nowFunc = fn }
}

// WithProgress registers a callback for stage notifications.
func WithProgress(fn ProgressFunc) Option {
	return func(e *Engine) { e.progress = fn }
}

// New creates an Engine with the given collaborators.
func New(identifier Identifier, searcher CompSearcher, opts ...Option) *Engine {
	e := &Engine{
		cfg:        DefaultConfig(),
		identifier: identifier,
		searcher:   searcher,
		logger:     slog.Default(),
		nowFunc:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Config returns the engine's active configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Analyze runs the full pipeline over the given item photos and returns the
// assembled analysis. Identification failure is terminal; every other
// degradation (search failures, empty results, thin samples) produces a
// best-effort result with reduced confidence.
func (e *Engine) Analyze(ctx context.Context, images []domain.Image) (*domain.Analysis, error) {
	start := e.nowFunc()

	analysis, err := e.run(ctx, images)
	if err != nil {
		metrics.AnalysesTotal.WithLabelValues("failed").Inc()
		return nil, err
	}

	metrics.AnalysesTotal.WithLabelValues("completed").Inc()
	metrics.AnalysisDuration.Observe(e.nowFunc().Sub(start).Seconds())
	return analysis, nil
}

func (e *Engine) run(ctx context.Context, images []domain.Image) (*domain.Analysis, error) {
	if err := e.step(ctx, StageIdentify); err != nil {
		return nil, err
	}
	ident, err := e.identifier.Identify(ctx, images)
	if err != nil {
		e.logger.Error("identification failed", "error", err)
		return nil, fmt.Errorf("%w: %s", ErrNoIdentification, err)
	}
	if ident == nil || (clean(ident.Name) == "" && clean(ident.Brand) == "") {
		return nil, ErrNoIdentification
	}
	e.logger.Info("item identified",
		"name", ident.Name,
		"brand", ident.Brand,
		"confidence", ident.Confidence,
	)

	if err := e.step(ctx, StageBuildQueries); err != nil {
		return nil, err
	}
	queries := e.cfg.BuildQueries(*ident)

	if err := e.step(ctx, StageSearchComps); err != nil {
		return nil, err
	}
	listings := e.searchComps(ctx, queries)

	if err := e.step(ctx, StageMarketAnalysis); err != nil {
		return nil, err
	}
	now := e.nowFunc()
	market := e.cfg.AnalyzeMarket(listings, *ident, now)

	if err := e.step(ctx, StagePricing); err != nil {
		return nil, err
	}
	raw := e.cfg.BuildLadder(listings, *ident, market)
	if raw.SampleSize == 0 {
		metrics.HeuristicModeTotal.Inc()
		e.logger.Info("heuristic pricing engaged", "brand", ident.Brand, "category", ident.Category)
	}

	if err := e.step(ctx, StageCondition); err != nil {
		return nil, err
	}
	condition := e.cfg.AssessCondition(*ident)

	if err := e.step(ctx, StageAdjustPricing); err != nil {
		return nil, err
	}
	adjusted := raw.Adjust(condition.PriceImpact)

	if err := e.step(ctx, StageContent); err != nil {
		return nil, err
	}
	content := e.cfg.GenerateContent(*ident, condition, market)

	if err := e.step(ctx, StageStrategy); err != nil {
		return nil, err
	}
	strategy := e.cfg.AdviseStrategy(*ident, market, adjusted)

	if err := e.step(ctx, StageAssemble); err != nil {
		return nil, err
	}
	return &domain.Analysis{
		ID:             uuid.NewString(),
		CreatedAt:      now,
		UpdatedAt:      now,
		Identification: *ident,
		Market:         market,
		RawLadder:      raw,
		Ladder:         adjusted,
		Condition:      condition,
		Content:        content,
		Strategy:       strategy,
		Samples:        sampleListings(listings, e.cfg.MaxSamples),
	}, nil
}

// step aborts on a cancelled context, then reports the stage to the
// progress callback.
func (e *Engine) step(ctx context.Context, s Stage) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("analysis cancelled at stage %q: %w", s, err)
	}
	if e.progress != nil {
		e.progress(s, int(s), StageCount)
	}
	return nil
}

// searchComps walks the query cascade: each query is attempted at most once,
// stopping at the first non-empty result. Search failures are logged and
// treated the same as empty results.
func (e *Engine) searchComps(ctx context.Context, queries []string) []domain.SoldListing {
	for i, q := range queries {
		listings, err := e.searcher.SearchSold(ctx, q)
		if err != nil {
			e.logger.Warn("comparable search failed", "query", q, "attempt", i+1, "error", err)
			metrics.CompSearchTotal.WithLabelValues("error").Inc()
			continue
		}
		if len(listings) > 0 {
			e.logger.Debug("comparables found", "query", q, "attempt", i+1, "count", len(listings))
			metrics.CompSearchTotal.WithLabelValues("hit").Inc()
			metrics.CascadeDepth.Observe(float64(i + 1))
			return listings
		}
		metrics.CompSearchTotal.WithLabelValues("empty").Inc()
	}
	metrics.CascadeDepth.Observe(float64(len(queries)))
	return nil
}

func sampleListings(listings []domain.SoldListing, limit int) []domain.SoldListing {
	if len(listings) <= limit {
		return listings
	}
	return listings[:limit]
}
