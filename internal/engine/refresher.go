package engine

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/jmorrow/flip-analyzer/internal/metrics"
	"github.com/jmorrow/flip-analyzer/internal/notify"
	"github.com/jmorrow/flip-analyzer/internal/store"
	domain "github.com/jmorrow/flip-analyzer/pkg/types"
)

const (
	defaultStaleAfter     = 24 * time.Hour
	defaultRefreshBatch   = 20
	defaultAlertThreshold = 10.0 // percent move before notifying
)

// Refresher re-runs the market half of the pipeline for stored analyses whose
// data has gone stale, and notifies when prices move meaningfully.
type Refresher struct {
	engine   *Engine
	store    store.Store
	notifier notify.Notifier
	logger   *slog.Logger
	nowFunc  func() time.Time

	staleAfter     time.Duration
	batchSize      int
	alertThreshold float64
}

// RefresherOption configures a Refresher.
type RefresherOption func(*Refresher)

// WithStaleAfter sets how old an analysis must be before it is refreshed.
func WithStaleAfter(d time.Duration) RefresherOption {
	return func(r *Refresher) {
		r.staleAfter = d
	}
}

// WithRefreshBatchSize limits how many analyses one run refreshes.
func WithRefreshBatchSize(n int) RefresherOption {
	return func(r *Refresher) {
		r.batchSize = n
	}
}

// WithAlertThreshold sets the percent price move that triggers a notification.
func WithAlertThreshold(pct float64) RefresherOption {
	return func(r *Refresher) {
		r.alertThreshold = pct
	}
}

// WithRefresherLogger sets the logger.
func WithRefresherLogger(l *slog.Logger) RefresherOption {
	return func(r *Refresher) {
		r.logger = l
	}
}

// WithRefresherNowFunc overrides the clock, for tests.
func WithRefresherNowFunc(now func() time.Time) RefresherOption {
	return func(r *Refresher) {
		r.nowFunc = now
	}
}

// NewRefresher creates a Refresher over the given engine, store and notifier.
func NewRefresher(
	eng *Engine,
	st store.Store,
	notifier notify.Notifier,
	opts ...RefresherOption,
) *Refresher {
	r := &Refresher{
		engine:         eng,
		store:          st,
		notifier:       notifier,
		logger:         slog.Default(),
		nowFunc:        time.Now,
		staleAfter:     defaultStaleAfter,
		batchSize:      defaultRefreshBatch,
		alertThreshold: defaultAlertThreshold,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run refreshes one batch of stale analyses. Failures on individual analyses
// are logged and skipped; the run only fails when the store itself does.
func (r *Refresher) Run(ctx context.Context) error {
	stale, err := r.store.ListStaleAnalyses(ctx, r.staleAfter, r.batchSize)
	if err != nil {
		metrics.RefreshRunsTotal.WithLabelValues("failed").Inc()
		return fmt.Errorf("listing stale analyses: %w", err)
	}
	if len(stale) == 0 {
		metrics.RefreshRunsTotal.WithLabelValues("empty").Inc()
		return nil
	}

	var alerts []notify.PriceAlert
	refreshed := 0

	for i := range stale {
		if err := ctx.Err(); err != nil {
			metrics.RefreshRunsTotal.WithLabelValues("failed").Inc()
			return err
		}

		alert, err := r.refreshOne(ctx, &stale[i])
		if err != nil {
			r.logger.Warn("analysis refresh failed",
				"analysis_id", stale[i].ID,
				"error", err,
			)
			continue
		}
		refreshed++
		if alert != nil {
			alerts = append(alerts, *alert)
		}
	}

	metrics.RefreshedAnalysesTotal.Add(float64(refreshed))
	metrics.RefreshRunsTotal.WithLabelValues("completed").Inc()

	r.logger.Info("refresh run completed",
		"stale", len(stale),
		"refreshed", refreshed,
		"alerts", len(alerts),
	)

	if len(alerts) == 1 {
		return r.notifier.SendPriceAlert(ctx, &alerts[0])
	}
	if len(alerts) > 1 {
		return r.notifier.SendBatchAlert(ctx, alerts)
	}
	return nil
}

// refreshOne re-runs comparable search, market analysis and pricing for one
// stored analysis, keeping its identification and condition verdict.
func (r *Refresher) refreshOne(ctx context.Context, a *domain.Analysis) (*notify.PriceAlert, error) {
	ident := a.Identification
	now := r.nowFunc()

	queries := r.engine.cfg.BuildQueries(ident)
	listings := r.engine.searchComps(ctx, queries)

	market := r.engine.cfg.AnalyzeMarket(listings, ident, now)
	rawLadder := r.engine.cfg.BuildLadder(listings, ident, market)
	ladder := rawLadder.Adjust(a.Condition.PriceImpact)
	samples := sampleListings(listings, r.engine.cfg.MaxSamples)

	if err := r.store.UpdateAnalysisMarket(ctx, a.ID, market, rawLadder, ladder, samples); err != nil {
		return nil, err
	}

	oldPrice := a.Ladder.Market
	if oldPrice <= 0 {
		return nil, nil
	}

	changePct := (ladder.Market - oldPrice) / oldPrice * 100
	if math.Abs(changePct) < r.alertThreshold {
		return nil, nil
	}

	alert := &notify.PriceAlert{
		AnalysisID: a.ID,
		ItemName:   ident.Name,
		Brand:      ident.Brand,
		OldPrice:   oldPrice,
		NewPrice:   ladder.Market,
		ChangePct:  changePct,
		Demand:     market.Demand.Label(),
		Trend:      market.Trend.Label(),
	}
	if len(samples) > 0 {
		alert.ImageURL = samples[0].ImageURL
	}
	return alert, nil
}
