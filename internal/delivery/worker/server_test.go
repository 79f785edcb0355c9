package worker

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"contacts/config"
	"contacts/internal/delivery/worker/handler"
	"contacts/internal/domain/entity"
	"contacts/internal/domain/service"
	mockService "contacts/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestWorkerServer_Routes(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}

	renderer := mockService.NewMockMailRenderer(t)
	sender := mockService.NewMockMailSender(t)
	mail := &service.Mail{To: "bob@example.com"}
	renderer.EXPECT().Render(mock.Anything).Return(mail, nil).Once()
	sender.EXPECT().Send(mock.Anything, mail).Return(nil).Once()

	e := newEcho(ServerParams{
		Lc:     fxtest.NewLifecycle(t),
		Cfg:    cfg,
		Logger: logger,
		PushHandler: handler.NewPushHandler(handler.PushHandlerParams{
			Config: cfg, Logger: logger, Renderer: renderer, Sender: sender,
		}),
	})

	t.Run("health", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
	})

	t.Run("push", func(t *testing.T) {
		data, err := json.Marshal(&service.MailEvent{Kind: entity.MailKindPasswordReset, Email: "bob@example.com"})
		require.NoError(t, err)
		body := `{"message":{"data":"` + base64.StdEncoding.EncodeToString(data) + `"}}`

		req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
