// Package middleware provides Echo middleware for flip-analyzer.
package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const requestIDHeader = "X-Request-ID"

type contextKey int

const requestIDKey contextKey = iota

// operationalPaths are probe and scrape endpoints excluded from request
// logging and HTTP metrics. They fire every few seconds and would drown
// out the analysis traffic.
var operationalPaths = map[string]struct{}{
	"/metrics": {},
	"/healthz": {},
	"/readyz":  {},
}

// RequestID returns the request ID stored in ctx, or "" when the request
// did not pass through RequestLog. Handlers and the engine can attach it
// to their own log lines to correlate with the access log.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// RequestLog returns Echo middleware that assigns each request an ID and
// logs it on completion. The ID comes from the X-Request-ID header when the
// caller supplies one; it is echoed on the response and stored in both the
// echo context and the request context. Completions log at a level matching
// the outcome: Error for 5xx, Warn for 4xx, Info otherwise.
func RequestLog(log *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			reqID := req.Header.Get(requestIDHeader)
			if reqID == "" {
				reqID = uuid.NewString()
			}
			c.Set("request_id", reqID)
			c.Response().Header().Set(requestIDHeader, reqID)
			c.SetRequest(req.WithContext(
				context.WithValue(req.Context(), requestIDKey, reqID),
			))

			if _, skip := operationalPaths[req.URL.Path]; skip {
				return next(c)
			}

			start := time.Now()
			err := next(c)

			status := c.Response().Status
			attrs := []any{
				"method", req.Method,
				"path", req.URL.Path,
				"status", status,
				"duration_ms", time.Since(start).Milliseconds(),
				"bytes_out", c.Response().Size,
				"request_id", reqID,
			}
			switch {
			case status >= 500:
				log.Error("request", attrs...)
			case status >= 400:
				log.Warn("request", attrs...)
			default:
				log.Info("request", attrs...)
			}

			return err
		}
	}
}
