// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"contacts/internal/domain/entity"
)

// --- Input DTOs ---

// SignupInput defines the data required to register a new user.
type SignupInput struct {
	Username string
	Email    string
	Password string
	// BaseHost is embedded in the confirmation link.
	BaseHost string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// PasswordResetRequestInput identifies whose password to reset.
type PasswordResetRequestInput struct {
	Caller   *entity.User
	Email    string
	BaseHost string
}

// SetNewPasswordInput carries the reset token and the replacement password.
type SetNewPasswordInput struct {
	Token       string
	NewPassword string
}

// --- Output DTOs ---

// TokenOutput is returned by login and refresh.
type TokenOutput struct {
	AccessToken  string
	RefreshToken string
	TokenType    string
}

// AuthUsecase defines the authentication and session flows.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	Signup(ctx context.Context, input *SignupInput) (*entity.User, error)
	Login(ctx context.Context, input *LoginInput) (*TokenOutput, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenOutput, error)

	// ConfirmEmail returns the human-readable outcome message.
	ConfirmEmail(ctx context.Context, token string) (string, error)
	RequestConfirmationEmail(ctx context.Context, email, baseHost string) (string, error)

	RequestPasswordReset(ctx context.Context, input *PasswordResetRequestInput) error
	VerifyResetToken(ctx context.Context, token string) (string, error)
	SetNewPassword(ctx context.Context, input *SetNewPasswordInput) error

	// CurrentUser resolves a bearer access token to its user, consulting the session cache first.
	CurrentUser(ctx context.Context, accessToken string) (*entity.User, error)
}
