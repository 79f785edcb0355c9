// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"contacts/config"
	deliverycontext "contacts/internal/delivery/context"
	"contacts/internal/domain/constants"
	"contacts/internal/domain/entity"
	domainerrors "contacts/internal/domain/errors"
	"contacts/internal/domain/repository"
	"contacts/internal/domain/service"
	"contacts/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Messages returned by the confirmation flows.
const (
	MsgEmailConfirmed        = "Email confirmed"
	MsgEmailAlreadyConfirmed = "Your email is already confirmed"
	MsgCheckEmail            = "Check your email for confirmation."
)

type tokenLifetimes struct {
	access       time.Duration
	refresh      time.Duration
	verification time.Duration
	sessionCache time.Duration
}

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	resetTokens  service.ResetTokenStore
	sessionCache service.SessionCache
	notifier     service.EmailNotifier
	avatars      service.AvatarStore
	ttl          tokenLifetimes
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	ResetTokens  service.ResetTokenStore
	SessionCache service.SessionCache
	Notifier     service.EmailNotifier
	Avatars      service.AvatarStore
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	ttl := tokenLifetimes{
		access:       constants.DefaultAccessTokenTTL,
		refresh:      constants.DefaultRefreshTokenTTL,
		verification: constants.DefaultVerificationTokenTTL,
		sessionCache: constants.DefaultSessionCacheTTL,
	}
	if params.Config != nil && params.Config.Auth != nil {
		auth := params.Config.Auth
		ttl.access = orDefault(auth.AccessTokenTTL, ttl.access)
		ttl.refresh = orDefault(auth.RefreshTokenTTL, ttl.refresh)
		ttl.verification = orDefault(auth.VerificationTokenTTL, ttl.verification)
		ttl.sessionCache = orDefault(auth.SessionCacheTTL, ttl.sessionCache)
	}

	return &authService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		resetTokens:  params.ResetTokens,
		sessionCache: params.SessionCache,
		notifier:     params.Notifier,
		avatars:      params.Avatars,
		ttl:          ttl,
		logger:       params.Logger,
	}
}

func orDefault(v, def time.Duration) time.Duration {
	if v > 0 {
		return v
	}

	return def
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Signup registers an unconfirmed user and sends the confirmation email.
func (srv *authService) Signup(ctx context.Context, input *usecase.SignupInput) (*entity.User, error) {
	srv.log(ctx).Info("Starting signup", slog.String("email", input.Email))

	// Hash outside the transaction (bcrypt is CPU-bound).
	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during signup", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	newUser := &entity.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Avatar:       srv.avatars.DefaultURL(input.Email),
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		_, findErr := userRepo.FindByEmail(ctx, input.Email)
		if findErr == nil {
			return domainerrors.ErrAccountAlreadyExists
		}
		if !errors.Is(findErr, repository.ErrUserNotFound) {
			return errors.Wrap(findErr, "failed to check existing account")
		}

		return userRepo.Create(ctx, newUser)
	})
	if err != nil {
		srv.log(ctx).Warn("Signup failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute signup transaction")
	}

	verificationToken, err := srv.tokenService.Issue(newUser.Email, srv.ttl.verification, constants.ScopeNone)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue verification token")
	}
	srv.notifier.NotifyConfirmation(ctx, newUser.Email, newUser.Username, verificationToken, input.BaseHost)

	srv.log(ctx).Debug("Signup completed", slog.Any("userID", newUser.ID))

	return newUser, nil
}

// Login checks the credentials of a confirmed user and starts a new session.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.TokenOutput, error) {
	srv.log(ctx).Debug("Starting user login", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed: unknown email", slog.String("email", input.Email))

			return nil, domainerrors.ErrInvalidEmail
		}

		return nil, errors.Wrap(err, "failed to load user for login")
	}

	if !user.Confirmed {
		srv.log(ctx).Warn("Login failed: email not confirmed", slog.Any("userID", user.ID))

		return nil, domainerrors.ErrEmailNotConfirmed
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed: invalid password", slog.Any("userID", user.ID))

		return nil, domainerrors.ErrInvalidPassword
	}

	output, err := srv.issueSession(ctx, srv.userRepo, user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to start session")
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", user.ID))

	return output, nil
}

// Refresh rotates the refresh token. A token that does not match the stored
// one revokes the session before the request is rejected.
func (srv *authService) Refresh(ctx context.Context, refreshToken string) (*usecase.TokenOutput, error) {
	srv.log(ctx).Info("Attempting to refresh access token")

	claims, err := srv.tokenService.Decode(refreshToken, constants.ScopeRefreshToken)
	if err != nil {
		srv.log(ctx).Warn("Refresh token rejected", slog.Any("error", err))

		return nil, domainerrors.ErrInvalidRefreshToken
	}

	var output *usecase.TokenOutput
	revoked := false

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, findErr := userRepo.FindByEmail(ctx, claims.Subject)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrUserNotFound) {
				return domainerrors.ErrInvalidRefreshToken
			}

			return errors.Wrap(findErr, "failed to load user for refresh")
		}

		if !user.HasRefreshToken(refreshToken) {
			user.SetRefreshToken("")
			if updateErr := userRepo.Update(ctx, user); updateErr != nil {
				return errors.Wrap(updateErr, "failed to revoke refresh token")
			}
			revoked = true

			return nil
		}

		var issueErr error
		output, issueErr = srv.issueSession(ctx, userRepo, user)

		return issueErr
	})
	if err != nil {
		srv.log(ctx).Warn("Refresh failed", slog.Any("error", err))

		if errors.Is(err, domainerrors.ErrInvalidRefreshToken) {
			return nil, domainerrors.ErrInvalidRefreshToken
		}

		return nil, errors.Wrap(err, "failed to execute refresh transaction")
	}

	if revoked {
		srv.log(ctx).Warn("Stale refresh token presented, session revoked", slog.String("email", claims.Subject))

		return nil, domainerrors.ErrInvalidRefreshToken
	}

	return output, nil
}

// issueSession signs a new token pair and stores the refresh token on user.
func (srv *authService) issueSession(ctx context.Context, userRepo repository.UserRepository, user *entity.User) (*usecase.TokenOutput, error) {
	accessToken, err := srv.tokenService.Issue(user.Email, srv.ttl.access, constants.ScopeAccessToken)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue access token")
	}

	refreshToken, err := srv.tokenService.Issue(user.Email, srv.ttl.refresh, constants.ScopeRefreshToken)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue refresh token")
	}

	user.SetRefreshToken(refreshToken)
	if err := userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to store refresh token")
	}

	return &usecase.TokenOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    constants.TokenTypeBearer,
	}, nil
}

// ConfirmEmail marks the token's subject as confirmed. Confirming twice is a no-op.
func (srv *authService) ConfirmEmail(ctx context.Context, token string) (string, error) {
	claims, err := srv.tokenService.Decode(token, constants.ScopeNone)
	if err != nil {
		srv.log(ctx).Warn("Email verification token rejected", slog.Any("error", err))

		switch {
		case errors.Is(err, service.ErrTokenExpired):
			return "", domainerrors.ErrVerificationTokenExpired
		case errors.Is(err, service.ErrTokenMalformed):
			return "", domainerrors.ErrInvalidTokenFormat
		default:
			return "", domainerrors.ErrInvalidVerificationToken
		}
	}

	user, err := srv.userRepo.FindByEmail(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", domainerrors.ErrVerificationFailed
		}

		return "", errors.Wrap(err, "failed to load user for confirmation")
	}

	if user.Confirmed {
		return MsgEmailAlreadyConfirmed, nil
	}

	user.Confirmed = true
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return "", errors.Wrap(err, "failed to confirm email")
	}

	srv.log(ctx).Info("Email confirmed", slog.Any("userID", user.ID))

	return MsgEmailConfirmed, nil
}

// RequestConfirmationEmail re-sends the confirmation email. Unknown addresses
// get the same answer as known ones and nothing is sent.
func (srv *authService) RequestConfirmationEmail(ctx context.Context, email, baseHost string) (string, error) {
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Info("Confirmation requested for unknown email", slog.String("email", email))

			return MsgCheckEmail, nil
		}

		return "", errors.Wrap(err, "failed to load user for confirmation email")
	}

	if user.Confirmed {
		return MsgEmailAlreadyConfirmed, nil
	}

	verificationToken, err := srv.tokenService.Issue(user.Email, srv.ttl.verification, constants.ScopeNone)
	if err != nil {
		return "", errors.Wrap(err, "failed to issue verification token")
	}
	srv.notifier.NotifyConfirmation(ctx, user.Email, user.Username, verificationToken, baseHost)

	return MsgCheckEmail, nil
}

// RequestPasswordReset issues a reset token for the caller's own account.
func (srv *authService) RequestPasswordReset(ctx context.Context, input *usecase.PasswordResetRequestInput) error {
	if input.Email == "" {
		return domainerrors.ErrEmailRequired
	}
	if input.Caller == nil || input.Caller.Email != input.Email {
		srv.log(ctx).Warn("Password reset requested for another account", slog.String("email", input.Email))

		return domainerrors.ErrForbidden.WithDetails("password reset is limited to your own account")
	}

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to load user for password reset")
	}

	resetToken, err := srv.resetTokens.RequestReset(ctx, user)
	if err != nil {
		return errors.Wrap(err, "failed to issue reset token")
	}
	srv.notifier.NotifyPasswordReset(ctx, user.Email, user.Username, resetToken, input.BaseHost)

	srv.log(ctx).Info("Password reset requested", slog.Any("userID", user.ID))

	return nil
}

// VerifyResetToken checks the token without consuming it and echoes it back.
func (srv *authService) VerifyResetToken(ctx context.Context, token string) (string, error) {
	if _, err := srv.loadResetUser(ctx, token); err != nil {
		return "", err
	}

	return token, nil
}

// SetNewPassword replaces the password and consumes the reset token.
func (srv *authService) SetNewPassword(ctx context.Context, input *usecase.SetNewPasswordInput) error {
	user, err := srv.loadResetUser(ctx, input.Token)
	if err != nil {
		return err
	}

	hashedPassword, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		srv.log(ctx).Error("Failed to hash new password", slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	user.PasswordHash = hashedPassword
	if err := srv.resetTokens.Consume(ctx, user); err != nil {
		return errors.Wrap(err, "failed to store new password")
	}

	srv.log(ctx).Info("Password updated", slog.Any("userID", user.ID))

	return nil
}

func (srv *authService) loadResetUser(ctx context.Context, token string) (*entity.User, error) {
	if token == "" {
		return nil, domainerrors.ErrInvalidResetToken
	}

	user, err := srv.resetTokens.Validate(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidResetToken
		}

		return nil, errors.Wrap(err, "failed to validate reset token")
	}

	if srv.resetTokens.IsExpired(user.ResetTokenExpiry) {
		return nil, domainerrors.ErrResetTokenExpired
	}

	return user, nil
}

// CurrentUser resolves an access token. The session cache is consulted first;
// cache failures are logged and fall through to the user store.
func (srv *authService) CurrentUser(ctx context.Context, accessToken string) (*entity.User, error) {
	claims, err := srv.tokenService.Decode(accessToken, constants.ScopeAccessToken)
	if err != nil {
		srv.log(ctx).Debug("Access token rejected", slog.Any("error", err))

		return nil, domainerrors.ErrInvalidCredentials
	}

	cached, hit, err := srv.sessionCache.Get(ctx, claims.Subject)
	if err != nil {
		srv.log(ctx).Warn("Session cache read failed", slog.Any("error", err))
	}
	if hit {
		return cached, nil
	}

	user, err := srv.userRepo.FindByEmail(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to load current user")
	}

	if err := srv.sessionCache.Put(ctx, user, srv.ttl.sessionCache); err != nil {
		srv.log(ctx).Warn("Session cache write failed", slog.Any("error", err))
	}

	return user, nil
}
