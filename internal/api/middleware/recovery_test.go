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

func TestRecoveryNoPanic(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/test", http.NoBody)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Recovery(log)(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, buf.String(), "no panic should produce no log output")
}

func TestRecoveryPanics(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		method     string
		path       string
		panicValue any
		wantInLog  []string
	}{
		{
			name:       "string panic",
			method:     http.MethodGet,
			path:       "/panic",
			panicValue: "boom in handler",
			wantInLog:  []string{"panic recovered", "boom in handler", "path=/panic"},
		},
		{
			name:       "non-string panic",
			method:     http.MethodPost,
			path:       "/api/crash",
			panicValue: 42,
			wantInLog:  []string{"panic recovered", "panic=42", "method=POST"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			log := slog.New(slog.NewTextHandler(&buf, nil))

			e := echo.New()
			req := httptest.NewRequest(tt.method, tt.path, http.NoBody)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			c.Set("request_id", "req-77")

			handler := Recovery(log)(func(_ echo.Context) error {
				panic(tt.panicValue)
			})

			require.NoError(t, handler(c))
			assert.Equal(t, http.StatusInternalServerError, rec.Code)

			// The client gets the request ID so the report can be matched
			// to the logged stack.
			body := rec.Body.String()
			assert.Contains(t, body, "internal server error")
			assert.Contains(t, body, "req-77")

			out := buf.String()
			for _, want := range tt.wantInLog {
				assert.Contains(t, out, want)
			}
			assert.Contains(t, out, "request_id=req-77")
			assert.Contains(t, out, "stack=")
		})
	}
}
