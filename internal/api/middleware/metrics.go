package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/jmorrow/flip-analyzer/internal/metrics"
)

// Metrics returns Echo middleware that records request duration and status.
// Operational endpoints are skipped; the health handlers maintain their own
// gauges.
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Path()
			if path == "" {
				path = c.Request().URL.Path
			}

			if _, skip := operationalPaths[path]; skip {
				return next(c)
			}

			start := time.Now()

			err := next(c)

			duration := time.Since(start).Seconds()
			status := strconv.Itoa(c.Response().Status)
			method := c.Request().Method

			metrics.HTTPRequestDuration.
				WithLabelValues(method, path).
				Observe(duration)
			metrics.HTTPRequestsTotal.
				WithLabelValues(method, path, status).
				Inc()

			return err
		}
	}
}
