package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"contacts/config"
	apimiddleware "contacts/internal/delivery/api/middleware"
	"contacts/internal/delivery/api/response"
	"contacts/internal/delivery/api/router"
	"contacts/internal/delivery/api/router/handler"
	deliverycontext "contacts/internal/delivery/context"
	"contacts/internal/infra/ratelimit"
	mockUsecase "contacts/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	cfg.ApplyDefaults()

	authUC := mockUsecase.NewMockAuthUsecase(t)
	store := ratelimit.NewStore(ratelimit.StoreParams{Config: cfg, Logger: logger})

	return newEcho(ServerParams{
		Lc:        fxtest.NewLifecycle(t),
		Cfg:       cfg,
		Logger:    logger,
		RateLimit: apimiddleware.NewRateLimitMiddleware(apimiddleware.RateLimitParams{Store: store, Config: cfg, Logger: logger}),
		RouterParams: router.RouterParams{
			AuthHandler:    handler.NewAuthHandler(handler.AuthHandlerParams{AuthUC: authUC, Config: cfg, Logger: logger}),
			UserHandler:    handler.NewUserHandler(handler.UserHandlerParams{UserUC: mockUsecase.NewMockUserUsecase(t), Logger: logger}),
			ContactHandler: handler.NewContactHandler(handler.ContactHandlerParams{ContactUC: mockUsecase.NewMockContactUsecase(t), Logger: logger}),
			AuthMiddleware: apimiddleware.NewAuthMiddleware(apimiddleware.AuthMiddlewareParams{AuthUC: authUC}),
		},
	})
}

func serve(e *echo.Echo, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestServer_Health(t *testing.T) {
	e := newTestServer(t)

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestServer_RequestIDIsEchoed(t *testing.T) {
	e := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/unknown", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-123")
	rec := serve(e, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "req-123", rec.Header().Get(deliverycontext.HeaderXRequestID))

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "NOT_FOUND", body.Error.Code)
	assert.Equal(t, "req-123", body.Meta.RequestID)
}

func TestServer_TrailingSlashHitsProtectedRoute(t *testing.T) {
	e := newTestServer(t)

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/api/contacts/", nil))

	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "INVALID_CREDENTIALS", body.Error.Code)
}
