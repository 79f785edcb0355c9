package cache

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"contacts/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSessionCache_WithoutRedisIsNoop(t *testing.T) {
	cache := NewSessionCache(SessionCacheParams{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	ctx := context.Background()
	require.NoError(t, cache.Put(ctx, &entity.User{Email: "a@example.com"}, time.Minute))

	user, hit, err := cache.Get(ctx, "a@example.com")
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Nil(t, user)
}

func TestSessionKey(t *testing.T) {
	assert.Equal(t, "user:alice@example.com", sessionKey("alice@example.com"))
}
