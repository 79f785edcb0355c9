package auth

import (
	"context"
	"crypto/rand"
	"time"

	"contacts/config"
	"contacts/internal/domain/constants"
	"contacts/internal/domain/entity"
	"contacts/internal/domain/repository"
	"contacts/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// resetTokenStore keeps the reset token on the user row.
type resetTokenStore struct {
	userRepo repository.UserRepository
	clock    service.Clock
	ttl      time.Duration
	newToken func() string
}

// ResetTokenStoreParams holds dependencies for the reset token store, injected by Fx.
type ResetTokenStoreParams struct {
	fx.In

	UserRepo repository.UserRepository
	Clock    service.Clock
	Config   *config.Config
}

// NewResetTokenStore builds the store. Tokens are 130-bit random strings from crypto/rand.
func NewResetTokenStore(params ResetTokenStoreParams) service.ResetTokenStore {
	ttl := constants.DefaultResetTokenTTL
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.ResetTokenTTL > 0 {
		ttl = params.Config.Auth.ResetTokenTTL
	}

	return &resetTokenStore{
		userRepo: params.UserRepo,
		clock:    params.Clock,
		ttl:      ttl,
		newToken: rand.Text,
	}
}

func (s *resetTokenStore) RequestReset(ctx context.Context, user *entity.User) (string, error) {
	token := s.newToken()
	user.SetResetToken(token, s.clock.Now().Add(s.ttl))

	if err := s.userRepo.Update(ctx, user); err != nil {
		return "", errors.Wrap(err, "failed to persist reset token")
	}

	return token, nil
}

func (s *resetTokenStore) Validate(ctx context.Context, token string) (*entity.User, error) {
	user, err := s.userRepo.FindByResetToken(ctx, token)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user by reset token")
	}

	return user, nil
}

func (s *resetTokenStore) IsExpired(expiry *time.Time) bool {
	if expiry == nil {
		return false
	}

	return s.clock.Now().UTC().After(expiry.UTC())
}

func (s *resetTokenStore) Consume(ctx context.Context, user *entity.User) error {
	user.ClearResetToken()

	if err := s.userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to consume reset token")
	}

	return nil
}
