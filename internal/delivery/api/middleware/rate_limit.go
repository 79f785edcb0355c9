package middleware

import (
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"contacts/config"
	"contacts/internal/delivery/api/response"
	deliverycontext "contacts/internal/delivery/context"
	domainerrors "contacts/internal/domain/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

// RateLimitParams holds dependencies for the rate limiter, injected by Fx.
type RateLimitParams struct {
	fx.In

	Store  echomiddleware.RateLimiterStore
	Config *config.Config
	Logger *slog.Logger
}

// RateLimitMiddleware admits a bounded number of requests per client IP.
type RateLimitMiddleware struct {
	store      echomiddleware.RateLimiterStore
	enabled    bool
	retryAfter string
	logger     *slog.Logger
}

// NewRateLimitMiddleware is the constructor for RateLimitMiddleware.
func NewRateLimitMiddleware(params RateLimitParams) *RateLimitMiddleware {
	cfg := params.Config.RateLimit

	return &RateLimitMiddleware{
		store:      params.Store,
		enabled:    cfg.Enabled,
		retryAfter: strconv.Itoa(int(math.Ceil(cfg.Window.Seconds()))),
		logger:     params.Logger,
	}
}

// Handler returns the echo middleware. Health checks are never limited.
func (m *RateLimitMiddleware) Handler() echo.MiddlewareFunc {
	return echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Skipper: func(c echo.Context) bool {
			return !m.enabled || c.Path() == "/health"
		},
		Store: m.store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		DenyHandler: m.deny,
	})
}

func (m *RateLimitMiddleware) deny(c echo.Context, identifier string, err error) error {
	deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Warn("Rate limit exceeded",
		slog.String("identifier", identifier),
		slog.String("path", c.Request().URL.Path),
	)

	c.Response().Header().Set("Retry-After", m.retryAfter)
	appErr := domainerrors.ErrTooManyRequests

	return response.Error(c, http.StatusTooManyRequests, appErr.ErrorCode(), appErr.Message(), nil)
}
