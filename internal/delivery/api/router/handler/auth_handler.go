package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"contacts/config"
	"contacts/internal/delivery/api/middleware"
	"contacts/internal/delivery/api/response"
	"contacts/internal/delivery/api/validator"
	domainerrors "contacts/internal/domain/errors"
	"contacts/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	msgSignupSucceeded        = "User successfully created. Check your email for confirmation"
	msgPasswordResetEmailSent = "Password reset email sent"
	msgPasswordUpdated        = "Password updated successfully"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Config *config.Config
	Logger *slog.Logger
}

// AuthHandler serves the /api/auth endpoints.
type AuthHandler struct {
	authUC  usecase.AuthUsecase
	baseURL string
	logger  *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC:  params.AuthUC,
		baseURL: params.Config.HTTP.BaseURL,
		logger:  params.Logger,
	}
}

// SignupRequest accepts either a form or a JSON body.
type SignupRequest struct {
	Username string `json:"username" form:"username" validate:"required,min=3,max=16"`
	Email    string `json:"email" form:"email" validate:"required,email,max=250"`
	Password string `json:"password" form:"password" validate:"required,min=6,max=15"`
}

// LoginRequest accepts an OAuth2 password form (username holds the email) or a JSON body.
type LoginRequest struct {
	Email    string `json:"email" form:"email"`
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// EmailRequest carries a single email address.
type EmailRequest struct {
	Email string `json:"email" form:"email" validate:"required,email"`
}

// PasswordResetRequest names the account whose password should be reset.
type PasswordResetRequest struct {
	Email string `json:"email" form:"email"`
}

// SetNewPasswordRequest accepts the token and password from the query string or the body.
type SetNewPasswordRequest struct {
	Token       string `json:"token" form:"token" query:"token" validate:"required"`
	NewPassword string `json:"new_password" form:"new_password" query:"new_password" validate:"required,min=6,max=15"`
}

// Signup registers an unconfirmed account and sends the confirmation email.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid signup input")
	}
	req.Email = strings.TrimSpace(req.Email)

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, validator.FieldErrors(err))
	}

	user, err := h.authUC.Signup(c.Request().Context(), &usecase.SignupInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		BaseHost: h.baseHost(c),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, &SignupResponse{
		User:   newUserResponse(user),
		Detail: msgSignupSucceeded,
	})
}

// Login exchanges credentials for an access and refresh token pair.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid login input")
	}

	email := strings.TrimSpace(req.Email)
	if email == "" {
		email = strings.TrimSpace(req.Username)
	}
	if email == "" || req.Password == "" {
		fields := map[string]string{}
		if email == "" {
			fields["email"] = "required"
		}
		if req.Password == "" {
			fields["password"] = "required"
		}

		return response.ValidationError(c, fields)
	}

	tokens, err := h.authUC.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newTokenResponse(tokens))
}

// RefreshToken rotates the session using the bearer refresh token.
func (h *AuthHandler) RefreshToken(c echo.Context) error {
	token, ok := middleware.BearerToken(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrInvalidRefreshToken)
	}

	tokens, err := h.authUC.Refresh(c.Request().Context(), token)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newTokenResponse(tokens))
}

// ConfirmEmail consumes an email-verification token from the confirmation link.
func (h *AuthHandler) ConfirmEmail(c echo.Context) error {
	message, err := h.authUC.ConfirmEmail(c.Request().Context(), c.Param("token"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, message)
}

// RequestEmail re-sends the confirmation email.
func (h *AuthHandler) RequestEmail(c echo.Context) error {
	var req EmailRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid email input")
	}
	req.Email = strings.TrimSpace(req.Email)

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, validator.FieldErrors(err))
	}

	message, err := h.authUC.RequestConfirmationEmail(c.Request().Context(), req.Email, h.baseHost(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, message)
}

// RequestPasswordReset issues a reset token for the authenticated caller and mails it.
func (h *AuthHandler) RequestPasswordReset(c echo.Context) error {
	caller, ok := middleware.GetCurrentUser(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrInvalidCredentials)
	}

	var req PasswordResetRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid password reset input")
	}

	err := h.authUC.RequestPasswordReset(c.Request().Context(), &usecase.PasswordResetRequestInput{
		Caller:   caller,
		Email:    strings.TrimSpace(req.Email),
		BaseHost: h.baseHost(c),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, msgPasswordResetEmailSent)
}

// VerifyResetToken checks the token from the reset link without consuming it.
func (h *AuthHandler) VerifyResetToken(c echo.Context) error {
	token, err := h.authUC.VerifyResetToken(c.Request().Context(), c.QueryParam("token"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"reset-token": token})
}

// SetNewPassword replaces the password and consumes the reset token.
func (h *AuthHandler) SetNewPassword(c echo.Context) error {
	var req SetNewPasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid password input")
	}
	// echo only binds the query string for GET, DELETE and HEAD.
	if req.Token == "" {
		req.Token = c.QueryParam("token")
	}
	if req.NewPassword == "" {
		req.NewPassword = c.QueryParam("new_password")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, validator.FieldErrors(err))
	}

	err := h.authUC.SetNewPassword(c.Request().Context(), &usecase.SetNewPasswordInput{
		Token:       req.Token,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, msgPasswordUpdated)
}

// baseHost is the public origin embedded in emailed links.
func (h *AuthHandler) baseHost(c echo.Context) string {
	if h.baseURL != "" {
		return h.baseURL
	}

	return c.Scheme() + "://" + c.Request().Host + "/"
}

func newTokenResponse(tokens *usecase.TokenOutput) *TokenResponse {
	return &TokenResponse{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		TokenType:    tokens.TokenType,
	}
}
