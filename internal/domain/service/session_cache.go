package service

import (
	"context"
	"time"

	"contacts/internal/domain/entity"
)

// SessionCache is a lookaside store of user snapshots keyed by email.
// Entries are never invalidated; they expire after the ttl given to Put.
type SessionCache interface {
	// Get returns the cached snapshot. A miss is (nil, false, nil).
	Get(ctx context.Context, email string) (*entity.User, bool, error)

	// Put stores a snapshot of user for ttl.
	Put(ctx context.Context, user *entity.User, ttl time.Duration) error
}
