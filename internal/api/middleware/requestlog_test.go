package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runLoggedRequest(
	t *testing.T,
	method, path, providedID string,
	handler echo.HandlerFunc,
) (*bytes.Buffer, *httptest.ResponseRecorder, echo.Context) {
	t.Helper()

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	e := echo.New()
	req := httptest.NewRequest(method, path, http.NoBody)
	if providedID != "" {
		req.Header.Set(requestIDHeader, providedID)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, RequestLog(log)(handler)(c))
	return &buf, rec, c
}

func TestRequestLogLevels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		status    int
		wantLevel string
	}{
		{name: "2xx logs at info", status: http.StatusOK, wantLevel: "level=INFO"},
		{name: "4xx logs at warn", status: http.StatusNotFound, wantLevel: "level=WARN"},
		{name: "5xx logs at error", status: http.StatusBadGateway, wantLevel: "level=ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			buf, _, _ := runLoggedRequest(t, http.MethodGet, "/api/v1/analyses", "",
				func(c echo.Context) error {
					return c.NoContent(tt.status)
				})

			out := buf.String()
			assert.Contains(t, out, tt.wantLevel)
			assert.Contains(t, out, "method=GET")
			assert.Contains(t, out, "path=/api/v1/analyses")
			assert.Contains(t, out, "duration_ms=")
			assert.Contains(t, out, "bytes_out=")
			assert.Contains(t, out, "request_id=")
		})
	}
}

func TestRequestLogGeneratesAndPropagatesID(t *testing.T) {
	t.Parallel()

	var seenCtxID string
	_, rec, c := runLoggedRequest(t, http.MethodPost, "/api/v1/analyses", "",
		func(c echo.Context) error {
			seenCtxID = RequestID(c.Request().Context())
			return c.NoContent(http.StatusCreated)
		})

	respID := rec.Header().Get(requestIDHeader)
	require.NotEmpty(t, respID)

	// The same ID reaches the echo context, the request context and the
	// response header.
	assert.Equal(t, respID, c.Get("request_id"))
	assert.Equal(t, respID, seenCtxID)
}

func TestRequestLogKeepsProvidedID(t *testing.T) {
	t.Parallel()

	buf, rec, _ := runLoggedRequest(t, http.MethodGet, "/test", "custom-req-id-123",
		func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})

	assert.Equal(t, "custom-req-id-123", rec.Header().Get(requestIDHeader))
	assert.Contains(t, buf.String(), "request_id=custom-req-id-123")
}

func TestRequestLogSkipsOperationalPaths(t *testing.T) {
	t.Parallel()

	buf, rec, _ := runLoggedRequest(t, http.MethodGet, "/healthz", "",
		func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})

	// No access log line, but the request still gets an ID for correlation.
	assert.Empty(t, buf.String())
	assert.NotEmpty(t, rec.Header().Get(requestIDHeader))
}

func TestRequestIDMissing(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/test", http.NoBody)
	assert.Empty(t, RequestID(req.Context()))
}
