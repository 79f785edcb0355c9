// Package ratelimit provides the stores behind the global request admission middleware.
package ratelimit

import (
	"context"
	"log/slog"
	"time"

	"contacts/config"

	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

const (
	keyPrefix         = "ratelimit:"
	storeCallTimeout  = 200 * time.Millisecond
	memoryStoreExpiry = 3 * time.Minute
)

// fixedWindowScript increments the window counter and arms its expiry on first hit.
var fixedWindowScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
	redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return current
`)

// StoreParams holds dependencies for the rate limiter store, injected by Fx.
type StoreParams struct {
	fx.In

	Client *redis.Client `optional:"true"`
	Config *config.Config
	Logger *slog.Logger
}

// NewStore returns a Redis fixed-window store shared by every instance, or
// echo's in-process token bucket when Redis is not configured.
func NewStore(params StoreParams) middleware.RateLimiterStore {
	cfg := params.Config.RateLimit

	if params.Client == nil {
		params.Logger.Info("Rate limiter using in-memory store",
			slog.Int("requests", cfg.Requests),
			slog.Duration("window", cfg.Window),
		)

		return middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(float64(cfg.Requests) / cfg.Window.Seconds()),
			Burst:     cfg.Requests,
			ExpiresIn: memoryStoreExpiry,
		})
	}

	return NewRedisStore(params.Client, cfg.Requests, cfg.Window, params.Logger)
}

// RedisStore admits at most limit requests per identifier in each fixed window.
type RedisStore struct {
	client *redis.Client
	limit  int
	window time.Duration
	logger *slog.Logger
}

// NewRedisStore builds a fixed-window store.
func NewRedisStore(client *redis.Client, limit int, window time.Duration, logger *slog.Logger) *RedisStore {
	return &RedisStore{
		client: client,
		limit:  limit,
		window: window,
		logger: logger,
	}
}

// Allow implements middleware.RateLimiterStore. Redis failures admit the request.
func (s *RedisStore) Allow(identifier string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), storeCallTimeout)
	defer cancel()

	count, err := fixedWindowScript.Run(ctx, s.client, []string{keyPrefix + identifier}, s.window.Milliseconds()).Int64()
	if err != nil {
		s.logger.Warn("Rate limiter store unavailable, admitting request",
			slog.String("identifier", identifier),
			slog.Any("error", err),
		)

		return true, errors.Wrap(err, "rate limiter store")
	}

	return count <= int64(s.limit), nil
}

// Window returns the configured window, used for the Retry-After header.
func (s *RedisStore) Window() time.Duration {
	return s.window
}
