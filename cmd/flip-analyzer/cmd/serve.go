package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/jmorrow/flip-analyzer/internal/api/handlers"
	apimw "github.com/jmorrow/flip-analyzer/internal/api/middleware"
	"github.com/jmorrow/flip-analyzer/internal/config"
	"github.com/jmorrow/flip-analyzer/internal/engine"
	"github.com/jmorrow/flip-analyzer/internal/marketplace"
	"github.com/jmorrow/flip-analyzer/internal/notify"
	"github.com/jmorrow/flip-analyzer/internal/store"
	"github.com/jmorrow/flip-analyzer/internal/vision"
	"github.com/jmorrow/flip-analyzer/pkg/logger"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the API server and refresh scheduler",
		RunE:  runServe,
	}
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	st, err := store.NewPostgresStore(ctx, cfg.Database.DSN())
	cancel()
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer st.Close()

	identifier, err := newVisionBackend(cfg, log)
	if err != nil {
		return err
	}

	tokens := marketplace.NewAppTokenProvider(
		cfg.Ebay.AppID, cfg.Ebay.CertID,
		marketplace.WithTokenURL(cfg.Ebay.TokenURL),
	)
	limiter := marketplace.NewRateLimiter(
		cfg.Ebay.RateLimit.PerSecond,
		cfg.Ebay.RateLimit.Burst,
		cfg.Ebay.RateLimit.DailyLimit,
	)
	insights := marketplace.NewInsightsClient(
		tokens,
		marketplace.WithSalesURL(cfg.Ebay.SalesURL),
		marketplace.WithMarketplace(cfg.Ebay.Marketplace),
		marketplace.WithRateLimiter(limiter),
		marketplace.WithLookback(time.Duration(cfg.Ebay.LookbackDays)*24*time.Hour),
	)

	eng := engine.New(identifier, insights,
		engine.WithConfig(cfg.Engine.Apply(engine.DefaultConfig())),
		engine.WithLogger(log),
	)

	var notifier notify.Notifier
	if cfg.Notifications.Discord.Enabled {
		notifier = notify.NewDiscordNotifier(cfg.Notifications.Discord.WebhookURL)
	} else {
		notifier = notify.NewNoOpNotifier(log)
	}

	var scheduler *engine.Scheduler
	if cfg.Refresh.Enabled {
		refresher := engine.NewRefresher(eng, st, notifier,
			engine.WithStaleAfter(cfg.Refresh.StaleAfter),
			engine.WithRefreshBatchSize(cfg.Refresh.BatchSize),
			engine.WithAlertThreshold(cfg.Refresh.AlertThreshold),
			engine.WithRefresherLogger(log),
		)
		scheduler, err = engine.NewScheduler(refresher, cfg.Refresh.Interval, log)
		if err != nil {
			return fmt.Errorf("creating scheduler: %w", err)
		}
		scheduler.Start()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(apimw.RequestLog(log))
	e.Use(apimw.Recovery(log))
	e.Use(apimw.Metrics())

	healthHandler := handlers.NewHealthHandler(st)
	e.GET("/healthz", healthHandler.Healthz)
	e.GET("/readyz", healthHandler.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	humaCfg := huma.DefaultConfig("flip-analyzer", Version)
	humaCfg.Info.Description = "Market analysis and pricing for resale items."
	api := humaecho.New(e, humaCfg)

	handlers.RegisterAnalysisRoutes(api, handlers.NewAnalysesHandler(eng, st))
	handlers.RegisterSearchRoutes(api, handlers.NewSearchHandler(insights))

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info("starting server", "addr", addr, "vision_backend", cfg.Vision.Backend)

	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")

	if scheduler != nil {
		<-scheduler.Stop().Done()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	log.Info("server stopped")
	return nil
}

func newVisionBackend(cfg *config.Config, log *slog.Logger) (engine.Identifier, error) {
	switch cfg.Vision.Backend {
	case "gemini":
		opts := []vision.GeminiOption{vision.WithGeminiLogger(log)}
		if cfg.Vision.Gemini.Model != "" {
			opts = append(opts, vision.WithGeminiModel(cfg.Vision.Gemini.Model))
		}
		backend, err := vision.NewGeminiBackend(
			context.Background(), os.Getenv("GEMINI_API_KEY"), opts...,
		)
		if err != nil {
			return nil, fmt.Errorf("creating gemini backend: %w", err)
		}
		return backend, nil
	default:
		opts := []vision.AnthropicOption{vision.WithAnthropicLogger(log)}
		if cfg.Vision.Anthropic.Model != "" {
			opts = append(opts, vision.WithAnthropicModel(cfg.Vision.Anthropic.Model))
		}
		return vision.NewAnthropicBackend(opts...), nil
	}
}
