package mail

import (
	"context"
	"log/slog"
	"sync"
	"time"

	deliverycontext "contacts/internal/delivery/context"
	"contacts/internal/domain/entity"
	"contacts/internal/domain/lifecycle"
	"contacts/internal/domain/service"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// Notifier hands mail events to the broker in the background. The request
// that triggered the mail never waits on, or fails because of, delivery.
type Notifier struct {
	publisher service.EventPublisher
	logger    *slog.Logger
	timeout   time.Duration
	inflight  sync.WaitGroup
}

// NotifierParams holds dependencies for Notifier, injected by Fx
type NotifierParams struct {
	fx.In

	Lc        fx.Lifecycle
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewEmailNotifier creates the notifier and drains pending publishes on stop.
func NewEmailNotifier(params NotifierParams) service.EmailNotifier {
	n := newNotifier(params.Publisher, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			n.Wait(ctx)

			return nil
		},
	})

	return n
}

func newNotifier(publisher service.EventPublisher, logger *slog.Logger) *Notifier {
	return &Notifier{
		publisher: publisher,
		logger:    logger,
		timeout:   lifecycle.DefaultTimeout,
	}
}

func (n *Notifier) NotifyConfirmation(ctx context.Context, email, username, verificationToken, baseHost string) {
	n.dispatch(ctx, &service.MailEvent{
		Kind:     entity.MailKindConfirmEmail,
		Email:    email,
		Username: username,
		Token:    verificationToken,
		Host:     baseHost,
	})
}

func (n *Notifier) NotifyPasswordReset(ctx context.Context, email, username, resetToken, baseHost string) {
	n.dispatch(ctx, &service.MailEvent{
		Kind:     entity.MailKindPasswordReset,
		Email:    email,
		Username: username,
		Token:    resetToken,
		Host:     baseHost,
	})
}

// Wait blocks until in-flight publishes finish or ctx is done.
func (n *Notifier) Wait(ctx context.Context) {
	done := make(chan struct{})
	go func() {
		n.inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		n.logger.Warn("Stopped waiting for pending mail events", slog.Any("error", ctx.Err()))
	}
}

func (n *Notifier) dispatch(ctx context.Context, event *service.MailEvent) {
	event.MessageID = uuid.NewString()
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	logger := deliverycontext.GetLoggerOrDefault(ctx, n.logger)

	// Detach from the request so the publish outlives the response.
	bg := context.WithoutCancel(ctx)

	n.inflight.Add(1)
	go func() {
		defer n.inflight.Done()

		pubCtx, cancel := context.WithTimeout(bg, n.timeout)
		defer cancel()

		if err := n.publisher.PublishMailEvent(pubCtx, event); err != nil {
			logger.Error("Failed to publish mail event",
				slog.String("message_id", event.MessageID),
				slog.String("kind", string(event.Kind)),
				slog.Any("error", err),
			)

			return
		}

		logger.Debug("Mail event published",
			slog.String("message_id", event.MessageID),
			slog.String("kind", string(event.Kind)),
		)
	}()
}
