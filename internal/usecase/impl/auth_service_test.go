package impl

import (
	"context"
	"testing"
	"time"

	"contacts/internal/domain/constants"
	"contacts/internal/domain/entity"
	domainerrors "contacts/internal/domain/errors"
	"contacts/internal/domain/repository"
	"contacts/internal/domain/service"
	"contacts/internal/infra/auth"
	mockRepo "contacts/internal/mocks/repository"
	mockSvc "contacts/internal/mocks/service"
	"contacts/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	txManager    *mockRepo.MockTransactionManager
	txFactory    *mockRepo.MockRepositoryFactory
	txUserRepo   *mockRepo.MockUserRepository
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
	resetTokens  *mockSvc.MockResetTokenStore
	sessionCache *mockSvc.MockSessionCache
	notifier     *mockSvc.MockEmailNotifier
	avatars      *mockSvc.MockAvatarStore
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	fx := authServiceFixtures{
		txManager:    mockRepo.NewMockTransactionManager(t),
		txFactory:    mockRepo.NewMockRepositoryFactory(t),
		txUserRepo:   mockRepo.NewMockUserRepository(t),
		userRepo:     mockRepo.NewMockUserRepository(t),
		hasher:       mockSvc.NewMockPasswordHasher(t),
		tokenService: mockSvc.NewMockTokenService(t),
		resetTokens:  mockSvc.NewMockResetTokenStore(t),
		sessionCache: mockSvc.NewMockSessionCache(t),
		notifier:     mockSvc.NewMockEmailNotifier(t),
		avatars:      mockSvc.NewMockAvatarStore(t),
	}

	fx.service = NewAuthService(AuthServiceParams{
		TxManager:    fx.txManager,
		UserRepo:     fx.userRepo,
		Hasher:       fx.hasher,
		TokenService: fx.tokenService,
		ResetTokens:  fx.resetTokens,
		SessionCache: fx.sessionCache,
		Notifier:     fx.notifier,
		Avatars:      fx.avatars,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})

	return fx
}

func (fx authServiceFixtures) expectTx() {
	fx.txFactory.EXPECT().UserRepo().Return(fx.txUserRepo).Maybe()
	expectTx(fx.txManager, fx.txFactory)
}

func confirmedUser(email string) *entity.User {
	return &entity.User{
		ID:           uuid.New(),
		Username:     "neo",
		Email:        email,
		PasswordHash: "hashed",
		Confirmed:    true,
	}
}

func TestAuthService_Signup_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	input := &usecase.SignupInput{Username: "neo", Email: "neo@example.com", Password: "123456789", BaseHost: "http://localhost:8000/"}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed", nil)
	fx.avatars.EXPECT().DefaultURL(input.Email).Return("https://gravatar/neo")
	fx.expectTx()
	fx.txUserRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)
	fx.txUserRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) { user.ID = uuid.New() }).
		Return(nil)
	fx.tokenService.EXPECT().Issue(input.Email, 7*24*time.Hour, constants.ScopeNone).Return("verify-token", nil)
	fx.notifier.EXPECT().NotifyConfirmation(ctx, input.Email, "neo", "verify-token", input.BaseHost).Return()

	user, err := fx.service.Signup(ctx, input)

	require.NoError(t, err)
	assert.False(t, user.Confirmed)
	assert.Equal(t, "hashed", user.PasswordHash)
	assert.Equal(t, "https://gravatar/neo", user.Avatar)
	assert.NotEqual(t, uuid.Nil, user.ID)
}

func TestAuthService_Signup_Conflict(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	input := &usecase.SignupInput{Username: "neo", Email: "neo@example.com", Password: "123456789"}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed", nil)
	fx.avatars.EXPECT().DefaultURL(input.Email).Return("")
	fx.expectTx()
	fx.txUserRepo.EXPECT().FindByEmail(ctx, input.Email).Return(confirmedUser(input.Email), nil)

	_, err := fx.service.Signup(ctx, input)

	assert.True(t, errors.Is(err, domainerrors.ErrAccountAlreadyExists))
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown email", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.userRepo.EXPECT().FindByEmail(ctx, "neo@example.com").Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "neo@example.com", Password: "x"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidEmail)
	})

	t.Run("not confirmed", func(t *testing.T) {
		fx := createTestAuthService(t)
		user := confirmedUser("neo@example.com")
		user.Confirmed = false
		fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "123456789"})
		assert.ErrorIs(t, err, domainerrors.ErrEmailNotConfirmed)
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestAuthService(t)
		user := confirmedUser("neo@example.com")
		fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
		fx.hasher.EXPECT().Check("bad", "hashed").Return(false)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "bad"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidPassword)
	})

	t.Run("success stores refresh token", func(t *testing.T) {
		fx := createTestAuthService(t)
		user := confirmedUser("neo@example.com")
		fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
		fx.hasher.EXPECT().Check("123456789", "hashed").Return(true)
		fx.tokenService.EXPECT().Issue(user.Email, 15*time.Minute, constants.ScopeAccessToken).Return("access", nil)
		fx.tokenService.EXPECT().Issue(user.Email, 7*24*time.Hour, constants.ScopeRefreshToken).Return("refresh", nil)
		fx.userRepo.EXPECT().
			Update(ctx, mock.MatchedBy(func(u *entity.User) bool { return u.HasRefreshToken("refresh") })).
			Return(nil)

		out, err := fx.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "123456789"})

		require.NoError(t, err)
		assert.Equal(t, "access", out.AccessToken)
		assert.Equal(t, "refresh", out.RefreshToken)
		assert.Equal(t, "bearer", out.TokenType)
	})
}

func TestAuthService_Refresh_Rotates(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	user := confirmedUser("neo@example.com")
	user.SetRefreshToken("old-refresh")

	fx.tokenService.EXPECT().Decode("old-refresh", constants.ScopeRefreshToken).Return(&service.Claims{Subject: user.Email, Scope: constants.ScopeRefreshToken}, nil)
	fx.expectTx()
	fx.txUserRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.tokenService.EXPECT().Issue(user.Email, 15*time.Minute, constants.ScopeAccessToken).Return("new-access", nil)
	fx.tokenService.EXPECT().Issue(user.Email, 7*24*time.Hour, constants.ScopeRefreshToken).Return("new-refresh", nil)
	fx.txUserRepo.EXPECT().Update(ctx, user).Return(nil)

	out, err := fx.service.Refresh(ctx, "old-refresh")

	require.NoError(t, err)
	assert.Equal(t, "new-refresh", out.RefreshToken)
	assert.True(t, user.HasRefreshToken("new-refresh"))
	assert.False(t, user.HasRefreshToken("old-refresh"))
}

func TestAuthService_Refresh_RotatesWithinSameSecond(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	clock := &fixedClock{now: time.Date(2025, time.March, 1, 12, 0, 0, 100_000_000, time.UTC)}

	cfg := newTestConfig()
	cfg.SecretKey.Secret = "refresh_rotation_secret"
	codec, err := auth.NewJWTService(cfg, clock)
	require.NoError(t, err)

	fx.service = NewAuthService(AuthServiceParams{
		TxManager:    fx.txManager,
		UserRepo:     fx.userRepo,
		Hasher:       fx.hasher,
		TokenService: codec,
		ResetTokens:  fx.resetTokens,
		SessionCache: fx.sessionCache,
		Notifier:     fx.notifier,
		Avatars:      fx.avatars,
		Config:       cfg,
		Logger:       newDiscardLogger(),
	})

	user := confirmedUser("neo@example.com")
	loginRefresh, err := codec.Issue(user.Email, 7*24*time.Hour, constants.ScopeRefreshToken)
	require.NoError(t, err)
	user.SetRefreshToken(loginRefresh)

	fx.expectTx()
	fx.expectTx()
	fx.txUserRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil).Times(2)
	fx.txUserRepo.EXPECT().Update(ctx, user).Return(nil).Times(2)

	clock.now = clock.now.Add(300 * time.Millisecond)
	out, err := fx.service.Refresh(ctx, loginRefresh)
	require.NoError(t, err)
	assert.NotEqual(t, loginRefresh, out.RefreshToken)
	assert.True(t, user.HasRefreshToken(out.RefreshToken))

	_, err = fx.service.Refresh(ctx, loginRefresh)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidRefreshToken)
	assert.Nil(t, user.RefreshToken)
}

func TestAuthService_Refresh_MismatchRevokesSession(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	user := confirmedUser("neo@example.com")
	user.SetRefreshToken("current")

	fx.tokenService.EXPECT().Decode("stale", constants.ScopeRefreshToken).Return(&service.Claims{Subject: user.Email}, nil)
	fx.expectTx()
	fx.txUserRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.txUserRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(u *entity.User) bool { return u.RefreshToken == nil })).
		Return(nil)

	_, err := fx.service.Refresh(ctx, "stale")

	assert.ErrorIs(t, err, domainerrors.ErrInvalidRefreshToken)
	assert.Nil(t, user.RefreshToken)
}

func TestAuthService_Refresh_Rejected(t *testing.T) {
	ctx := context.Background()

	t.Run("decode failure", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.tokenService.EXPECT().Decode("access-token", constants.ScopeRefreshToken).Return(nil, service.ErrTokenScopeMismatch)

		_, err := fx.service.Refresh(ctx, "access-token")
		assert.ErrorIs(t, err, domainerrors.ErrInvalidRefreshToken)
	})

	t.Run("unknown subject", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.tokenService.EXPECT().Decode("r", constants.ScopeRefreshToken).Return(&service.Claims{Subject: "gone@example.com"}, nil)
		fx.expectTx()
		fx.txUserRepo.EXPECT().FindByEmail(ctx, "gone@example.com").Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.Refresh(ctx, "r")
		assert.ErrorIs(t, err, domainerrors.ErrInvalidRefreshToken)
	})
}

func TestAuthService_ConfirmEmail(t *testing.T) {
	ctx := context.Background()

	t.Run("confirms once then reports already confirmed", func(t *testing.T) {
		fx := createTestAuthService(t)
		user := confirmedUser("neo@example.com")
		user.Confirmed = false

		fx.tokenService.EXPECT().Decode("verify", constants.ScopeNone).Return(&service.Claims{Subject: user.Email}, nil).Twice()
		fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil).Twice()
		fx.userRepo.EXPECT().Update(ctx, user).Return(nil).Once()

		msg, err := fx.service.ConfirmEmail(ctx, "verify")
		require.NoError(t, err)
		assert.Equal(t, MsgEmailConfirmed, msg)
		assert.True(t, user.Confirmed)

		msg, err = fx.service.ConfirmEmail(ctx, "verify")
		require.NoError(t, err)
		assert.Equal(t, MsgEmailAlreadyConfirmed, msg)
	})

	tests := []struct {
		name      string
		decodeErr error
		want      error
	}{
		{name: "expired", decodeErr: service.ErrTokenExpired, want: domainerrors.ErrVerificationTokenExpired},
		{name: "malformed", decodeErr: service.ErrTokenMalformed, want: domainerrors.ErrInvalidTokenFormat},
		{name: "bad signature", decodeErr: service.ErrTokenInvalidSignature, want: domainerrors.ErrInvalidVerificationToken},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuthService(t)
			fx.tokenService.EXPECT().Decode("tok", constants.ScopeNone).Return(nil, errors.Wrap(tt.decodeErr, "decode"))

			_, err := fx.service.ConfirmEmail(ctx, "tok")
			assert.ErrorIs(t, err, tt.want)
		})
	}

	t.Run("unknown subject", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.tokenService.EXPECT().Decode("tok", constants.ScopeNone).Return(&service.Claims{Subject: "gone@example.com"}, nil)
		fx.userRepo.EXPECT().FindByEmail(ctx, "gone@example.com").Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.ConfirmEmail(ctx, "tok")
		assert.ErrorIs(t, err, domainerrors.ErrVerificationFailed)
	})
}

func TestAuthService_RequestConfirmationEmail(t *testing.T) {
	ctx := context.Background()

	t.Run("unconfirmed user gets a new email", func(t *testing.T) {
		fx := createTestAuthService(t)
		user := confirmedUser("neo@example.com")
		user.Confirmed = false
		fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
		fx.tokenService.EXPECT().Issue(user.Email, 7*24*time.Hour, constants.ScopeNone).Return("verify", nil)
		fx.notifier.EXPECT().NotifyConfirmation(ctx, user.Email, user.Username, "verify", "http://h/").Return()

		msg, err := fx.service.RequestConfirmationEmail(ctx, user.Email, "http://h/")
		require.NoError(t, err)
		assert.Equal(t, MsgCheckEmail, msg)
	})

	t.Run("confirmed user", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.userRepo.EXPECT().FindByEmail(ctx, "neo@example.com").Return(confirmedUser("neo@example.com"), nil)

		msg, err := fx.service.RequestConfirmationEmail(ctx, "neo@example.com", "http://h/")
		require.NoError(t, err)
		assert.Equal(t, MsgEmailAlreadyConfirmed, msg)
	})

	t.Run("unknown email sends nothing", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.userRepo.EXPECT().FindByEmail(ctx, "x@example.com").Return(nil, repository.ErrUserNotFound)

		msg, err := fx.service.RequestConfirmationEmail(ctx, "x@example.com", "http://h/")
		require.NoError(t, err)
		assert.Equal(t, MsgCheckEmail, msg)
	})
}

func TestAuthService_RequestPasswordReset(t *testing.T) {
	ctx := context.Background()
	caller := confirmedUser("neo@example.com")

	t.Run("success", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.userRepo.EXPECT().FindByEmail(ctx, caller.Email).Return(caller, nil)
		fx.resetTokens.EXPECT().RequestReset(ctx, caller).Return("reset-token", nil)
		fx.notifier.EXPECT().NotifyPasswordReset(ctx, caller.Email, caller.Username, "reset-token", "http://h/").Return()

		err := fx.service.RequestPasswordReset(ctx, &usecase.PasswordResetRequestInput{Caller: caller, Email: caller.Email, BaseHost: "http://h/"})
		require.NoError(t, err)
	})

	t.Run("missing email", func(t *testing.T) {
		fx := createTestAuthService(t)

		err := fx.service.RequestPasswordReset(ctx, &usecase.PasswordResetRequestInput{Caller: caller})
		assert.ErrorIs(t, err, domainerrors.ErrEmailRequired)
	})

	t.Run("someone else's account", func(t *testing.T) {
		fx := createTestAuthService(t)

		err := fx.service.RequestPasswordReset(ctx, &usecase.PasswordResetRequestInput{Caller: caller, Email: "trinity@example.com"})
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("user vanished", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.userRepo.EXPECT().FindByEmail(ctx, caller.Email).Return(nil, repository.ErrUserNotFound)

		err := fx.service.RequestPasswordReset(ctx, &usecase.PasswordResetRequestInput{Caller: caller, Email: caller.Email})
		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	})
}

func TestAuthService_VerifyResetToken(t *testing.T) {
	ctx := context.Background()
	expiry := time.Now().Add(time.Hour)

	t.Run("valid", func(t *testing.T) {
		fx := createTestAuthService(t)
		user := confirmedUser("neo@example.com")
		user.SetResetToken("tok", expiry)
		fx.resetTokens.EXPECT().Validate(ctx, "tok").Return(user, nil)
		fx.resetTokens.EXPECT().IsExpired(user.ResetTokenExpiry).Return(false)

		got, err := fx.service.VerifyResetToken(ctx, "tok")
		require.NoError(t, err)
		assert.Equal(t, "tok", got)
	})

	t.Run("unknown", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.resetTokens.EXPECT().Validate(ctx, "tok").Return(nil, errors.Wrap(repository.ErrUserNotFound, "lookup"))

		_, err := fx.service.VerifyResetToken(ctx, "tok")
		assert.ErrorIs(t, err, domainerrors.ErrInvalidResetToken)
	})

	t.Run("expired", func(t *testing.T) {
		fx := createTestAuthService(t)
		user := confirmedUser("neo@example.com")
		user.SetResetToken("tok", expiry)
		fx.resetTokens.EXPECT().Validate(ctx, "tok").Return(user, nil)
		fx.resetTokens.EXPECT().IsExpired(user.ResetTokenExpiry).Return(true)

		_, err := fx.service.VerifyResetToken(ctx, "tok")
		assert.ErrorIs(t, err, domainerrors.ErrResetTokenExpired)
	})
}

func TestAuthService_SetNewPassword_SingleUse(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	user := confirmedUser("neo@example.com")
	user.SetResetToken("tok", time.Now().Add(time.Hour))

	fx.resetTokens.EXPECT().Validate(ctx, "tok").Return(user, nil).Once()
	fx.resetTokens.EXPECT().IsExpired(user.ResetTokenExpiry).Return(false).Once()
	fx.hasher.EXPECT().Hash("newpassword").Return("new-hash", nil)
	fx.resetTokens.EXPECT().
		Consume(ctx, mock.MatchedBy(func(u *entity.User) bool { return u.PasswordHash == "new-hash" })).
		Return(nil).
		Once()

	err := fx.service.SetNewPassword(ctx, &usecase.SetNewPasswordInput{Token: "tok", NewPassword: "newpassword"})
	require.NoError(t, err)

	// The consumed token is no longer found.
	fx.resetTokens.EXPECT().Validate(ctx, "tok").Return(nil, repository.ErrUserNotFound).Once()

	err = fx.service.SetNewPassword(ctx, &usecase.SetNewPasswordInput{Token: "tok", NewPassword: "newpassword"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidResetToken)
}

func TestAuthService_CurrentUser(t *testing.T) {
	ctx := context.Background()
	claims := &service.Claims{Subject: "neo@example.com", Scope: constants.ScopeAccessToken}

	t.Run("cache hit", func(t *testing.T) {
		fx := createTestAuthService(t)
		cached := confirmedUser(claims.Subject)
		fx.tokenService.EXPECT().Decode("access", constants.ScopeAccessToken).Return(claims, nil)
		fx.sessionCache.EXPECT().Get(ctx, claims.Subject).Return(cached, true, nil)

		user, err := fx.service.CurrentUser(ctx, "access")
		require.NoError(t, err)
		assert.Same(t, cached, user)
	})

	t.Run("cache miss populates cache", func(t *testing.T) {
		fx := createTestAuthService(t)
		stored := confirmedUser(claims.Subject)
		fx.tokenService.EXPECT().Decode("access", constants.ScopeAccessToken).Return(claims, nil)
		fx.sessionCache.EXPECT().Get(ctx, claims.Subject).Return(nil, false, nil)
		fx.userRepo.EXPECT().FindByEmail(ctx, claims.Subject).Return(stored, nil)
		fx.sessionCache.EXPECT().Put(ctx, stored, 900*time.Second).Return(nil)

		user, err := fx.service.CurrentUser(ctx, "access")
		require.NoError(t, err)
		assert.Same(t, stored, user)
	})

	t.Run("cache failure falls through", func(t *testing.T) {
		fx := createTestAuthService(t)
		stored := confirmedUser(claims.Subject)
		fx.tokenService.EXPECT().Decode("access", constants.ScopeAccessToken).Return(claims, nil)
		fx.sessionCache.EXPECT().Get(ctx, claims.Subject).Return(nil, false, errors.New("redis down"))
		fx.userRepo.EXPECT().FindByEmail(ctx, claims.Subject).Return(stored, nil)
		fx.sessionCache.EXPECT().Put(ctx, stored, 900*time.Second).Return(errors.New("redis down"))

		user, err := fx.service.CurrentUser(ctx, "access")
		require.NoError(t, err)
		assert.Equal(t, stored.ID, user.ID)
	})

	t.Run("refresh token used as access token", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.tokenService.EXPECT().Decode("refresh", constants.ScopeAccessToken).Return(nil, service.ErrTokenScopeMismatch)

		_, err := fx.service.CurrentUser(ctx, "refresh")
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("deleted user", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.tokenService.EXPECT().Decode("access", constants.ScopeAccessToken).Return(claims, nil)
		fx.sessionCache.EXPECT().Get(ctx, claims.Subject).Return(nil, false, nil)
		fx.userRepo.EXPECT().FindByEmail(ctx, claims.Subject).Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.CurrentUser(ctx, "access")
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})
}
