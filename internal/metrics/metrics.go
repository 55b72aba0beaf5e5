// Package metrics defines the Prometheus collectors for flip-analyzer.
// All collectors are registered on the default registry via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "flip"

var (
	// AnalysesTotal counts finished analyses by outcome (completed, failed).
	AnalysesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "analyses_total",
		Help:      "Total analyses run, labeled by outcome.",
	}, []string{"outcome"})

	// AnalysisDuration observes end-to-end analysis latency.
	AnalysisDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "analysis_duration_seconds",
		Help:      "End-to-end analysis duration.",
		Buckets:   []float64{0.5, 1, 2.5, 5, 10, 20, 30, 60},
	})

	// CascadeDepth observes how many search queries each analysis needed.
	CascadeDepth = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "comp_cascade_depth",
		Help:      "Number of comparable-search queries issued per analysis.",
		Buckets:   []float64{1, 2, 3},
	})

	// HeuristicModeTotal counts analyses priced without market data.
	HeuristicModeTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "heuristic_pricing_total",
		Help:      "Analyses that fell back to brand/category heuristic pricing.",
	})

	// MarketplaceCallsTotal counts raw marketplace API calls.
	MarketplaceCallsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "marketplace_api_calls_total",
		Help:      "Raw marketplace API calls issued.",
	})

	// MarketplaceDailyUsage tracks API calls used in the current daily window.
	MarketplaceDailyUsage = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "marketplace_daily_usage",
		Help:      "Marketplace API calls used in the current 24-hour window.",
	})

	// MarketplaceDailyLimitHits counts calls rejected by the daily quota.
	MarketplaceDailyLimitHits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "marketplace_daily_limit_hits_total",
		Help:      "Marketplace API calls rejected because the daily quota was exhausted.",
	})

	// CompSearchTotal counts marketplace sold-item searches by result.
	CompSearchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "comp_searches_total",
		Help:      "Marketplace comparable searches, labeled by result (hit, empty, error).",
	}, []string{"result"})

	// VisionCallsTotal counts identification calls by backend and result.
	VisionCallsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "vision_calls_total",
		Help:      "Vision identification calls, labeled by backend and result.",
	}, []string{"backend", "result"})

	// VisionTokensTotal accumulates vision token usage by backend and kind.
	VisionTokensTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "vision_tokens_total",
		Help:      "Vision model token usage, labeled by backend and kind (input, output).",
	}, []string{"backend", "kind"})

	// RefreshRunsTotal counts scheduled repricing runs by outcome.
	RefreshRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "refresh_runs_total",
		Help:      "Scheduled repricing runs, labeled by outcome.",
	}, []string{"outcome"})

	// RefreshedAnalysesTotal counts analyses touched by the refresher.
	RefreshedAnalysesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "refreshed_analyses_total",
		Help:      "Stored analyses repriced by the scheduled refresher.",
	})

	// HTTPRequestsTotal counts API requests by method, path and status.
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests, labeled by method, path and status code.",
	}, []string{"method", "path", "status"})

	// HTTPRequestDuration observes API request latency by method and path.
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request duration, labeled by method and path.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path"})

	// HealthzUp reports liveness as seen by the health handler.
	HealthzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "healthz_up",
		Help:      "1 when the service is live.",
	})

	// ReadyzUp reports readiness as seen by the health handler.
	ReadyzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "readyz_up",
		Help:      "1 when the service is ready to serve traffic.",
	})
)
