package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"contacts/config"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func newRateLimitedEcho(enabled bool) *echo.Echo {
	cfg := &config.Config{
		RateLimit: &config.RateLimitConfig{Enabled: enabled, Requests: 1, Window: 5 * time.Second},
	}
	store := echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
		Rate:  rate.Every(time.Minute),
		Burst: 1,
	})

	e := echo.New()
	e.HTTPErrorHandler = NewErrorMiddleware(newDiscardLogger()).HandleHTTPError
	e.Use(NewRateLimitMiddleware(RateLimitParams{Store: store, Config: cfg, Logger: newDiscardLogger()}).Handler())

	ok := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	e.GET("/ping", ok)
	e.GET("/health", ok)

	return e
}

func get(e *echo.Echo, path, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.RemoteAddr = remoteAddr
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestRateLimitMiddleware_DeniesOverLimit(t *testing.T) {
	e := newRateLimitedEcho(true)

	assert.Equal(t, http.StatusOK, get(e, "/ping", "192.0.2.1:1000").Code)

	rec := get(e, "/ping", "192.0.2.1:1001")
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "5", rec.Header().Get("Retry-After"))
	assert.Equal(t, "TOO_MANY_REQUESTS", decodeError(t, rec).Error.Code)

	// Another client has its own budget.
	assert.Equal(t, http.StatusOK, get(e, "/ping", "198.51.100.7:1000").Code)
}

func TestRateLimitMiddleware_SkipsHealth(t *testing.T) {
	e := newRateLimitedEcho(true)

	for range 3 {
		assert.Equal(t, http.StatusOK, get(e, "/health", "192.0.2.1:1000").Code)
	}
}

func TestRateLimitMiddleware_Disabled(t *testing.T) {
	e := newRateLimitedEcho(false)

	for range 3 {
		assert.Equal(t, http.StatusOK, get(e, "/ping", "192.0.2.1:1000").Code)
	}
}
