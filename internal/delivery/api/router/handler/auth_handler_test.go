package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"contacts/internal/domain/constants"
	"contacts/internal/domain/entity"
	domainerrors "contacts/internal/domain/errors"
	"contacts/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuthHandler_Signup(t *testing.T) {
	fx := setupFixtures(t, newTestConfig())

	created := &entity.User{ID: uuid.New(), Username: "alice", Email: "alice@example.com", Avatar: "avatar-url"}
	fx.authUC.EXPECT().
		Signup(mock.Anything, &usecase.SignupInput{
			Username: "alice",
			Email:    "alice@example.com",
			Password: "secret1",
			BaseHost: "http://localhost:8000/",
		}).
		Return(created, nil)

	rec := fx.do(newJSONRequest(http.MethodPost, "/api/auth/signup",
		`{"username":"alice","email":" alice@example.com ","password":"secret1"}`))

	require.Equal(t, http.StatusCreated, rec.Code)

	var body SignupResponse
	decodeData(t, rec, &body)
	assert.Equal(t, msgSignupSucceeded, body.Detail)
	assert.Equal(t, created.ID, body.User.ID)
	assert.Equal(t, "alice@example.com", body.User.Email)
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestAuthHandler_SignupForm(t *testing.T) {
	fx := setupFixtures(t, newTestConfig())

	fx.authUC.EXPECT().
		Signup(mock.Anything, mock.MatchedBy(func(in *usecase.SignupInput) bool {
			return in.Username == "bob" && in.Email == "bob@example.com" && in.Password == "hunter22"
		})).
		Return(&entity.User{ID: uuid.New(), Username: "bob", Email: "bob@example.com"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup",
		strings.NewReader("username=bob&email=bob%40example.com&password=hunter22"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)

	rec := fx.do(req)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestAuthHandler_SignupValidation(t *testing.T) {
	fx := setupFixtures(t, newTestConfig())

	rec := fx.do(newJSONRequest(http.MethodPost, "/api/auth/signup",
		`{"username":"al","email":"alice@example.com","password":"123"}`))

	require.Equal(t, http.StatusBadRequest, rec.Code)

	env := decodeEnvelope(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Equal(t, map[string]any{"username": "min=3", "password": "min=6"}, env.Error.Details)
}

func TestAuthHandler_SignupConflict(t *testing.T) {
	fx := setupFixtures(t, newTestConfig())

	fx.authUC.EXPECT().Signup(mock.Anything, mock.Anything).
		Return(nil, errors.WithStack(domainerrors.ErrAccountAlreadyExists))

	rec := fx.do(newJSONRequest(http.MethodPost, "/api/auth/signup",
		`{"username":"alice","email":"alice@example.com","password":"secret1"}`))

	require.Equal(t, http.StatusConflict, rec.Code)

	env := decodeEnvelope(t, rec)
	assert.Equal(t, "ACCOUNT_ALREADY_EXISTS", env.Error.Code)
	assert.Equal(t, "Account already exists", env.Error.Message)
}

func TestAuthHandler_SignupUsesRequestHostWithoutBaseURL(t *testing.T) {
	cfg := newTestConfig()
	cfg.HTTP.BaseURL = ""
	fx := setupFixtures(t, cfg)

	fx.authUC.EXPECT().
		Signup(mock.Anything, mock.MatchedBy(func(in *usecase.SignupInput) bool {
			return in.BaseHost == "http://contacts.test/"
		})).
		Return(&entity.User{ID: uuid.New()}, nil)

	req := newJSONRequest(http.MethodPost, "/api/auth/signup",
		`{"username":"alice","email":"alice@example.com","password":"secret1"}`)
	req.Host = "contacts.test"

	rec := fx.do(req)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestAuthHandler_Login(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		body        string
	}{
		{
			name:        "password form uses username as email",
			contentType: echo.MIMEApplicationForm,
			body:        "username=alice%40example.com&password=secret1",
		},
		{
			name:        "json body",
			contentType: echo.MIMEApplicationJSON,
			body:        `{"email":"alice@example.com","password":"secret1"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := setupFixtures(t, newTestConfig())

			fx.authUC.EXPECT().
				Login(mock.Anything, &usecase.LoginInput{Email: "alice@example.com", Password: "secret1"}).
				Return(&usecase.TokenOutput{
					AccessToken:  "access",
					RefreshToken: "refresh",
					TokenType:    constants.TokenTypeBearer,
				}, nil)

			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(tt.body))
			req.Header.Set(echo.HeaderContentType, tt.contentType)

			rec := fx.do(req)
			require.Equal(t, http.StatusOK, rec.Code)

			var tokens TokenResponse
			decodeData(t, rec, &tokens)
			assert.Equal(t, TokenResponse{AccessToken: "access", RefreshToken: "refresh", TokenType: "bearer"}, tokens)
		})
	}
}

func TestAuthHandler_LoginFailures(t *testing.T) {
	t.Run("missing fields", func(t *testing.T) {
		fx := setupFixtures(t, newTestConfig())

		rec := fx.do(newJSONRequest(http.MethodPost, "/api/auth/login", `{"email":"alice@example.com"}`))

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, map[string]any{"password": "required"}, decodeEnvelope(t, rec).Error.Details)
	})

	for _, appErr := range []*domainerrors.BaseError{
		domainerrors.ErrInvalidEmail,
		domainerrors.ErrEmailNotConfirmed,
		domainerrors.ErrInvalidPassword,
	} {
		t.Run(appErr.ErrorCode(), func(t *testing.T) {
			fx := setupFixtures(t, newTestConfig())

			fx.authUC.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, errors.WithStack(appErr))

			rec := fx.do(newJSONRequest(http.MethodPost, "/api/auth/login",
				`{"email":"alice@example.com","password":"secret1"}`))

			require.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, appErr.Message(), decodeEnvelope(t, rec).Error.Message)
		})
	}
}

func TestAuthHandler_RefreshToken(t *testing.T) {
	t.Run("missing bearer", func(t *testing.T) {
		fx := setupFixtures(t, newTestConfig())

		rec := fx.do(httptest.NewRequest(http.MethodGet, "/api/auth/refresh_token", nil))

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Invalid refresh token", decodeEnvelope(t, rec).Error.Message)
	})

	t.Run("rotates", func(t *testing.T) {
		fx := setupFixtures(t, newTestConfig())

		fx.authUC.EXPECT().Refresh(mock.Anything, "old.refresh.token").
			Return(&usecase.TokenOutput{AccessToken: "a2", RefreshToken: "r2", TokenType: "bearer"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/auth/refresh_token", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer old.refresh.token")

		rec := fx.do(req)
		require.Equal(t, http.StatusOK, rec.Code)

		var tokens TokenResponse
		decodeData(t, rec, &tokens)
		assert.Equal(t, "r2", tokens.RefreshToken)
	})

	t.Run("mismatch", func(t *testing.T) {
		fx := setupFixtures(t, newTestConfig())

		fx.authUC.EXPECT().Refresh(mock.Anything, "stale").
			Return(nil, errors.WithStack(domainerrors.ErrInvalidRefreshToken))

		req := httptest.NewRequest(http.MethodGet, "/api/auth/refresh_token", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer stale")

		rec := fx.do(req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAuthHandler_ConfirmEmail(t *testing.T) {
	tests := []struct {
		name       string
		message    string
		err        error
		wantStatus int
	}{
		{name: "confirmed", message: "Email confirmed", wantStatus: http.StatusOK},
		{name: "already confirmed", message: "Your email is already confirmed", wantStatus: http.StatusOK},
		{name: "malformed", err: domainerrors.ErrInvalidTokenFormat, wantStatus: http.StatusUnprocessableEntity},
		{name: "expired", err: domainerrors.ErrVerificationTokenExpired, wantStatus: http.StatusUnauthorized},
		{name: "unknown user", err: domainerrors.ErrVerificationFailed, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := setupFixtures(t, newTestConfig())

			fx.authUC.EXPECT().ConfirmEmail(mock.Anything, "a.b.c").Return(tt.message, tt.err)

			rec := fx.do(httptest.NewRequest(http.MethodGet, "/api/auth/confirmed_email/a.b.c", nil))
			require.Equal(t, tt.wantStatus, rec.Code)

			if tt.err == nil {
				var body map[string]string
				decodeData(t, rec, &body)
				assert.Equal(t, tt.message, body["message"])
			}
		})
	}
}

func TestAuthHandler_RequestEmail(t *testing.T) {
	fx := setupFixtures(t, newTestConfig())

	fx.authUC.EXPECT().
		RequestConfirmationEmail(mock.Anything, "alice@example.com", "http://localhost:8000/").
		Return("Check your email for confirmation.", nil)

	rec := fx.do(newJSONRequest(http.MethodPost, "/api/auth/request_email", `{"email":"alice@example.com"}`))
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	decodeData(t, rec, &body)
	assert.Equal(t, "Check your email for confirmation.", body["message"])

	rec = fx.do(newJSONRequest(http.MethodPost, "/api/auth/request_email", `{"email":"nope"}`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthHandler_RequestPasswordReset(t *testing.T) {
	t.Run("requires authentication", func(t *testing.T) {
		fx := setupFixtures(t, newTestConfig())

		rec := fx.do(newJSONRequest(http.MethodPost, "/api/auth/password-reset-request", `{"email":"alice@example.com"}`))

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Could not validate credentials", decodeEnvelope(t, rec).Error.Message)
	})

	t.Run("sends reset email", func(t *testing.T) {
		fx := setupFixtures(t, newTestConfig())
		fx.authenticate()

		fx.authUC.EXPECT().
			RequestPasswordReset(mock.Anything, &usecase.PasswordResetRequestInput{
				Caller:   fx.caller,
				Email:    "alice@example.com",
				BaseHost: "http://localhost:8000/",
			}).
			Return(nil)

		rec := fx.do(withBearer(newJSONRequest(http.MethodPost, "/api/auth/password-reset-request",
			`{"email":"alice@example.com"}`)))
		require.Equal(t, http.StatusOK, rec.Code)

		var body map[string]string
		decodeData(t, rec, &body)
		assert.Equal(t, msgPasswordResetEmailSent, body["message"])
	})

	t.Run("other account is forbidden", func(t *testing.T) {
		fx := setupFixtures(t, newTestConfig())
		fx.authenticate()

		fx.authUC.EXPECT().RequestPasswordReset(mock.Anything, mock.Anything).
			Return(errors.WithStack(domainerrors.ErrForbidden.WithDetails("email does not belong to caller")))

		rec := fx.do(withBearer(newJSONRequest(http.MethodPost, "/api/auth/password-reset-request",
			`{"email":"mallory@example.com"}`)))

		require.Equal(t, http.StatusForbidden, rec.Code)
		assert.Nil(t, decodeEnvelope(t, rec).Error.Details)
	})
}

func TestAuthHandler_VerifyResetToken(t *testing.T) {
	fx := setupFixtures(t, newTestConfig())

	fx.authUC.EXPECT().VerifyResetToken(mock.Anything, "tok").Return("tok", nil)
	fx.authUC.EXPECT().VerifyResetToken(mock.Anything, "old").Return("", errors.WithStack(domainerrors.ErrResetTokenExpired))

	rec := fx.do(httptest.NewRequest(http.MethodGet, "/api/auth/password-reset?token=tok", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	decodeData(t, rec, &body)
	assert.Equal(t, "tok", body["reset-token"])

	rec = fx.do(httptest.NewRequest(http.MethodGet, "/api/auth/password-reset?token=old", nil))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Reset token expired", decodeEnvelope(t, rec).Error.Message)
}

func TestAuthHandler_SetNewPassword(t *testing.T) {
	t.Run("query parameters", func(t *testing.T) {
		fx := setupFixtures(t, newTestConfig())

		fx.authUC.EXPECT().
			SetNewPassword(mock.Anything, &usecase.SetNewPasswordInput{Token: "tok", NewPassword: "newpass1"}).
			Return(nil)

		rec := fx.do(httptest.NewRequest(http.MethodPost, "/api/auth/set-new-password?token=tok&new_password=newpass1", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		var body map[string]string
		decodeData(t, rec, &body)
		assert.Equal(t, msgPasswordUpdated, body["message"])
	})

	t.Run("json body, token already used", func(t *testing.T) {
		fx := setupFixtures(t, newTestConfig())

		fx.authUC.EXPECT().SetNewPassword(mock.Anything, mock.Anything).
			Return(errors.WithStack(domainerrors.ErrInvalidResetToken))

		rec := fx.do(newJSONRequest(http.MethodPost, "/api/auth/set-new-password",
			`{"token":"tok","new_password":"newpass1"}`))

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid reset token", decodeEnvelope(t, rec).Error.Message)
	})

	t.Run("missing password", func(t *testing.T) {
		fx := setupFixtures(t, newTestConfig())

		rec := fx.do(httptest.NewRequest(http.MethodPost, "/api/auth/set-new-password?token=tok", nil))

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, map[string]any{"new_password": "required"}, decodeEnvelope(t, rec).Error.Details)
	})
}
