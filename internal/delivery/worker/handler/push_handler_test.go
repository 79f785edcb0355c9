package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"contacts/config"
	deliverycontext "contacts/internal/delivery/context"
	"contacts/internal/domain/constants"
	"contacts/internal/domain/entity"
	"contacts/internal/domain/service"
	mockService "contacts/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

type pushFixtures struct {
	renderer *mockService.MockMailRenderer
	sender   *mockService.MockMailSender
	handler  *PushHandler
}

func setupPushFixtures(t *testing.T) *pushFixtures {
	t.Helper()

	renderer := mockService.NewMockMailRenderer(t)
	sender := mockService.NewMockMailSender(t)

	return &pushFixtures{
		renderer: renderer,
		sender:   sender,
		handler: NewPushHandler(PushHandlerParams{
			Config:   &config.Config{},
			Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
			Renderer: renderer,
			Sender:   sender,
		}),
	}
}

func newPushRequest(t *testing.T, event *service.MailEvent, attributes map[string]string) *http.Request {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = "pubsub-1"
	msg.Message.Attributes = attributes
	body, err := json.Marshal(msg)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(string(body)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

func (fx *pushFixtures) push(req *http.Request) *httptest.ResponseRecorder {
	e := echo.New()
	rec := httptest.NewRecorder()
	_ = fx.handler.HandlePush(e.NewContext(req, rec))

	return rec
}

func sampleMailEvent() *service.MailEvent {
	return &service.MailEvent{
		MessageID: "msg-1",
		Kind:      entity.MailKindConfirmEmail,
		Email:     "alice@example.com",
		Username:  "alice",
		Token:     "tok",
		Host:      "http://localhost:8000/",
	}
}

func TestPushHandler_HandlePush(t *testing.T) {
	rendered := &service.Mail{To: "alice@example.com", Subject: "Confirm your email", HTMLBody: "<p>hi</p>"}

	tests := []struct {
		name       string
		setup      func(fx *pushFixtures)
		wantStatus int
	}{
		{
			name: "delivered",
			setup: func(fx *pushFixtures) {
				fx.renderer.EXPECT().Render(mock.AnythingOfType("*service.MailEvent")).Return(rendered, nil).Once()
				fx.sender.EXPECT().Send(mock.Anything, rendered).Return(nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "render failure is acknowledged",
			setup: func(fx *pushFixtures) {
				fx.renderer.EXPECT().Render(mock.Anything).Return(nil, errors.New("unknown mail kind")).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "rejected recipient is acknowledged",
			setup: func(fx *pushFixtures) {
				fx.renderer.EXPECT().Render(mock.Anything).Return(rendered, nil).Once()
				fx.sender.EXPECT().Send(mock.Anything, rendered).
					Return(errors.Wrap(service.ErrMailRejected, "550 no such user")).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "transient send failure is retried",
			setup: func(fx *pushFixtures) {
				fx.renderer.EXPECT().Render(mock.Anything).Return(rendered, nil).Once()
				fx.sender.EXPECT().Send(mock.Anything, rendered).Return(errors.New("connection refused")).Once()
			},
			wantStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := setupPushFixtures(t)
			tt.setup(fx)

			rec := fx.push(newPushRequest(t, sampleMailEvent(), nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestPushHandler_MalformedMessages(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: "{"},
		{name: "data not base64", body: `{"message":{"data":"%%%"}}`},
		{name: "data not an event", body: `{"message":{"data":"` + base64.StdEncoding.EncodeToString([]byte("[]")) + `"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := setupPushFixtures(t)

			req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(tt.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := fx.push(req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestPushHandler_TokenVerification(t *testing.T) {
	googlePayload := &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": true}}

	tests := []struct {
		name         string
		audience     string
		header       string
		forwarded    string
		validate     tokenValidator
		wantAudience string
		wantStatus   int
	}{
		{
			name:         "configured audience wins over the request URL",
			audience:     "https://mail-worker.example.run.app/push",
			header:       "Bearer signed",
			validate:     func(context.Context, string, string) (*idtoken.Payload, error) { return googlePayload, nil },
			wantAudience: "https://mail-worker.example.run.app/push",
			wantStatus:   http.StatusOK,
		},
		{
			name:         "forwarded scheme used without configured audience",
			header:       "Bearer signed",
			forwarded:    "https",
			validate:     func(context.Context, string, string) (*idtoken.Payload, error) { return googlePayload, nil },
			wantAudience: "https://example.com/push",
			wantStatus:   http.StatusOK,
		},
		{
			name:       "missing header",
			validate:   func(context.Context, string, string) (*idtoken.Payload, error) { return googlePayload, nil },
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:         "validation failure",
			audience:     "https://mail-worker.example.run.app/push",
			header:       "Bearer forged",
			validate:     func(context.Context, string, string) (*idtoken.Payload, error) { return nil, errors.New("bad token") },
			wantAudience: "https://mail-worker.example.run.app/push",
			wantStatus:   http.StatusUnauthorized,
		},
		{
			name:     "foreign issuer",
			audience: "https://mail-worker.example.run.app/push",
			header:   "Bearer signed",
			validate: func(context.Context, string, string) (*idtoken.Payload, error) {
				return &idtoken.Payload{Issuer: "https://evil.example.com"}, nil
			},
			wantAudience: "https://mail-worker.example.run.app/push",
			wantStatus:   http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := setupPushFixtures(t)
			fx.handler.verifyPush = true
			fx.handler.audience = tt.audience

			var gotAudience string
			fx.handler.validateToken = func(ctx context.Context, token, audience string) (*idtoken.Payload, error) {
				gotAudience = audience

				return tt.validate(ctx, token, audience)
			}
			if tt.wantStatus == http.StatusOK {
				mail := &service.Mail{To: "alice@example.com"}
				fx.renderer.EXPECT().Render(mock.Anything).Return(mail, nil).Once()
				fx.sender.EXPECT().Send(mock.Anything, mail).Return(nil).Once()
			}

			req := newPushRequest(t, sampleMailEvent(), nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			if tt.forwarded != "" {
				req.Header.Set(echo.HeaderXForwardedProto, tt.forwarded)
			}
			rec := fx.push(req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantAudience, gotAudience)
		})
	}
}

func TestNewPushHandler_VerifiesOnlyGooglePushOutsideDevelop(t *testing.T) {
	tests := []struct {
		name       string
		provider   string
		env        string
		wantVerify bool
	}{
		{name: "google in production", provider: constants.PubSubProviderGoogle, env: "production", wantVerify: true},
		{name: "google in develop", provider: constants.PubSubProviderGoogle, env: constants.EnvDevelop},
		{name: "local", provider: constants.PubSubProviderLocal, env: "production"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{PubSub: &config.PubSubConfig{
				Provider:     tt.provider,
				PushAudience: "https://mail-worker.example.run.app/push",
			}}
			cfg.Env.Env = tt.env

			h := NewPushHandler(PushHandlerParams{Config: cfg, Logger: slog.Default()})

			assert.Equal(t, tt.wantVerify, h.verifyPush)
			assert.Equal(t, "https://mail-worker.example.run.app/push", h.audience)
		})
	}
}

func TestPushHandler_ExtractRequestID(t *testing.T) {
	h := &PushHandler{}
	event := sampleMailEvent()

	var msg PubSubMessage
	msg.Message.Attributes = map[string]string{"request_id": "from-attr"}
	event.RequestID = "from-event"
	ctx := deliverycontext.WithRequestID(context.Background(), "from-ctx")

	assert.Equal(t, "from-attr", h.extractRequestID(ctx, &msg, event))

	msg.Message.Attributes = nil
	assert.Equal(t, "from-event", h.extractRequestID(ctx, &msg, event))

	event.RequestID = ""
	assert.Equal(t, "from-ctx", h.extractRequestID(ctx, &msg, event))

	assert.NotEmpty(t, h.extractRequestID(context.Background(), &msg, event))
}
