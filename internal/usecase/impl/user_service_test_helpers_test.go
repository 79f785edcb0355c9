package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"contacts/config"
	"contacts/internal/domain/repository"
	mockRepo "contacts/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:           4,
			AccessTokenTTL:       15 * time.Minute,
			RefreshTokenTTL:      7 * 24 * time.Hour,
			VerificationTokenTTL: 7 * 24 * time.Hour,
			ResetTokenTTL:        time.Hour,
			SessionCacheTTL:      900 * time.Second,
		},
		Avatar: &config.AvatarConfig{MaxSize: 1 << 20},
	}
}

// expectTx runs the transaction callback against a factory handing out repo.
func expectTx(txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		}).
		Once()
}
