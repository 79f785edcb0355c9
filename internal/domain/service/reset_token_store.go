package service

import (
	"context"
	"time"

	"contacts/internal/domain/entity"
)

// ResetTokenStore manages the single-use password reset token kept on the user record.
type ResetTokenStore interface {
	// RequestReset issues a fresh token, persists it with its expiry and returns it.
	RequestReset(ctx context.Context, user *entity.User) (string, error)

	// Validate returns the user holding token, or repository.ErrUserNotFound.
	Validate(ctx context.Context, token string) (*entity.User, error)

	// IsExpired reports whether expiry has passed. A nil expiry never expires.
	IsExpired(expiry *time.Time) bool

	// Consume clears the token and persists the user, together with any pending changes on it.
	Consume(ctx context.Context, user *entity.User) error
}
