package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"contacts/internal/domain/entity"
	domainerrors "contacts/internal/domain/errors"
	mockUsecase "contacts/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header    string
		wantToken string
		wantOK    bool
	}{
		{header: "Bearer abc.def.ghi", wantToken: "abc.def.ghi", wantOK: true},
		{header: "bearer abc.def.ghi", wantToken: "abc.def.ghi", wantOK: true},
		{header: "BEARER   abc ", wantToken: "abc", wantOK: true},
		{header: "", wantOK: false},
		{header: "Bearer ", wantOK: false},
		{header: "Basic dXNlcjpwYXNz", wantOK: false},
		{header: "abc.def.ghi", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			c := echo.New().NewContext(req, httptest.NewRecorder())

			token, ok := BearerToken(c)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Email: "alice@example.com"}

	newContext := func(header string) (echo.Context, *httptest.ResponseRecorder) {
		req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
		if header != "" {
			req.Header.Set(echo.HeaderAuthorization, header)
		}
		rec := httptest.NewRecorder()

		return echo.New().NewContext(req, rec), rec
	}

	t.Run("stores the current user", func(t *testing.T) {
		authUC := mockUsecase.NewMockAuthUsecase(t)
		authUC.EXPECT().CurrentUser(mock.Anything, "good").Return(user, nil)

		c, _ := newContext("Bearer good")
		called := false
		err := NewAuthMiddleware(AuthMiddlewareParams{AuthUC: authUC}).Authenticate(func(c echo.Context) error {
			called = true
			got, ok := GetCurrentUser(c)
			assert.True(t, ok)
			assert.Same(t, user, got)

			return nil
		})(c)

		require.NoError(t, err)
		assert.True(t, called)
	})

	t.Run("missing header", func(t *testing.T) {
		authUC := mockUsecase.NewMockAuthUsecase(t)

		c, rec := newContext("")
		err := NewAuthMiddleware(AuthMiddlewareParams{AuthUC: authUC}).Authenticate(func(echo.Context) error {
			t.Fatal("handler must not run")

			return nil
		})(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "INVALID_CREDENTIALS", decodeError(t, rec).Error.Code)
	})

	t.Run("rejected token", func(t *testing.T) {
		authUC := mockUsecase.NewMockAuthUsecase(t)
		authUC.EXPECT().CurrentUser(mock.Anything, "bad").
			Return(nil, errors.WithStack(domainerrors.ErrInvalidCredentials))

		c, rec := newContext("Bearer bad")
		err := NewAuthMiddleware(AuthMiddlewareParams{AuthUC: authUC}).Authenticate(func(echo.Context) error {
			t.Fatal("handler must not run")

			return nil
		})(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestGetCurrentUser_Absent(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	_, ok := GetCurrentUser(c)
	assert.False(t, ok)
}
