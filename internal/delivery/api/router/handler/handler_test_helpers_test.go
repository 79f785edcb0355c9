package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"contacts/config"
	"contacts/internal/delivery/api/middleware"
	"contacts/internal/delivery/api/response"
	"contacts/internal/delivery/api/validator"
	"contacts/internal/domain/entity"
	mockUsecase "contacts/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testAccessToken = "access.token.value"

type envelope struct {
	Data  json.RawMessage     `json:"data"`
	Error *response.ErrorInfo `json:"error"`
	Meta  *response.MetaInfo  `json:"meta"`
}

type fixtures struct {
	e         *echo.Echo
	authUC    *mockUsecase.MockAuthUsecase
	userUC    *mockUsecase.MockUserUsecase
	contactUC *mockUsecase.MockContactUsecase
	caller    *entity.User
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.HTTP.BaseURL = "http://localhost:8000/"

	return cfg
}

// setupFixtures wires every handler onto a bare echo instance the way the router does.
func setupFixtures(t *testing.T, cfg *config.Config) *fixtures {
	t.Helper()

	fx := &fixtures{
		e:         echo.New(),
		authUC:    mockUsecase.NewMockAuthUsecase(t),
		userUC:    mockUsecase.NewMockUserUsecase(t),
		contactUC: mockUsecase.NewMockContactUsecase(t),
		caller: &entity.User{
			ID:        uuid.New(),
			Username:  "alice",
			Email:     "alice@example.com",
			Avatar:    "https://www.gravatar.com/avatar/x?d=identicon",
			Confirmed: true,
			CreatedAt: time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC),
		},
	}

	logger := newDiscardLogger()
	fx.e.Validator = validator.New()
	fx.e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	authMW := middleware.NewAuthMiddleware(middleware.AuthMiddlewareParams{AuthUC: fx.authUC})
	authH := NewAuthHandler(AuthHandlerParams{AuthUC: fx.authUC, Config: cfg, Logger: logger})
	userH := NewUserHandler(UserHandlerParams{UserUC: fx.userUC, Logger: logger})
	contactH := NewContactHandler(ContactHandlerParams{ContactUC: fx.contactUC, Logger: logger})

	auth := fx.e.Group("/api/auth")
	auth.POST("/signup", authH.Signup)
	auth.POST("/login", authH.Login)
	auth.GET("/refresh_token", authH.RefreshToken)
	auth.GET("/confirmed_email/:token", authH.ConfirmEmail)
	auth.POST("/request_email", authH.RequestEmail)
	auth.POST("/password-reset-request", authH.RequestPasswordReset, authMW.Authenticate)
	auth.GET("/password-reset", authH.VerifyResetToken)
	auth.POST("/set-new-password", authH.SetNewPassword)

	users := fx.e.Group("/api/users", authMW.Authenticate)
	users.GET("/me", userH.Me)
	users.PATCH("/avatar", userH.UpdateAvatar)

	contacts := fx.e.Group("/api/contacts", authMW.Authenticate)
	contacts.POST("", contactH.Create)
	contacts.GET("", contactH.List)
	contacts.GET("/upcoming-birthdays", contactH.UpcomingBirthdays)
	contacts.GET("/by-first-name/:name", contactH.ByFirstName)
	contacts.GET("/by-last-name/:name", contactH.ByLastName)
	contacts.GET("/by-email/:email", contactH.ByEmail)
	contacts.GET("/:id", contactH.Get)
	contacts.PUT("/:id", contactH.Update)
	contacts.DELETE("/:id", contactH.Delete)

	return fx
}

// authenticate makes the mocked orchestrator resolve testAccessToken to the caller.
func (fx *fixtures) authenticate() {
	fx.authUC.EXPECT().CurrentUser(mock.Anything, testAccessToken).Return(fx.caller, nil)
}

func (fx *fixtures) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	fx.e.ServeHTTP(rec, req)

	return rec
}

func newJSONRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	return req
}

func withBearer(req *http.Request) *http.Request {
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+testAccessToken)

	return req
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) *envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return &env
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()

	env := decodeEnvelope(t, rec)
	require.NoError(t, json.Unmarshal(env.Data, out), string(env.Data))
}
