package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"contacts/internal/domain/constants"
	"contacts/internal/domain/entity"
	"contacts/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// SessionCacheParams holds dependencies for the session cache, injected by Fx.
type SessionCacheParams struct {
	fx.In

	Client *redis.Client `optional:"true"`
	Logger *slog.Logger
}

// NewSessionCache returns the Redis-backed cache, or a no-op cache when Redis is not configured.
func NewSessionCache(params SessionCacheParams) service.SessionCache {
	if params.Client == nil {
		params.Logger.Info("Session cache disabled, every lookup goes to the user store")

		return &noopSessionCache{}
	}

	return NewRedisSessionCache(params.Client)
}

// redisSessionCache stores a JSON CachedUser under "user:<email>".
type redisSessionCache struct {
	client *redis.Client
}

// NewRedisSessionCache builds a session cache on an existing client.
func NewRedisSessionCache(client *redis.Client) service.SessionCache {
	return &redisSessionCache{client: client}
}

func sessionKey(email string) string {
	return constants.SessionCacheKeyPrefix + email
}

func (c *redisSessionCache) Get(ctx context.Context, email string) (*entity.User, bool, error) {
	raw, err := c.client.Get(ctx, sessionKey(email)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrap(err, "failed to read session cache")
	}

	var cached entity.CachedUser
	if err := json.Unmarshal(raw, &cached); err != nil {
		return nil, false, errors.Wrap(err, "failed to decode cached user")
	}

	return cached.User(), true, nil
}

func (c *redisSessionCache) Put(ctx context.Context, user *entity.User, ttl time.Duration) error {
	raw, err := json.Marshal(entity.NewCachedUser(user))
	if err != nil {
		return errors.Wrap(err, "failed to encode cached user")
	}

	if err := c.client.Set(ctx, sessionKey(user.Email), raw, ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to write session cache")
	}

	return nil
}

// noopSessionCache always misses.
type noopSessionCache struct{}

func (*noopSessionCache) Get(context.Context, string) (*entity.User, bool, error) {
	return nil, false, nil
}

func (*noopSessionCache) Put(context.Context, *entity.User, time.Duration) error {
	return nil
}
