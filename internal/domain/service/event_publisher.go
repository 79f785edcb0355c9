package service

import (
	"context"

	"contacts/internal/domain/entity"
)

// MailEvent is the payload consumed by the mail worker.
type MailEvent struct {
	RequestID string          `json:"request_id,omitempty"` // For distributed tracing
	MessageID string          `json:"message_id"`
	Kind      entity.MailKind `json:"kind"`
	Email     string          `json:"email"`
	Username  string          `json:"username"`
	Token     string          `json:"token"`
	Host      string          `json:"host"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishMailEvent publishes a mail event for async delivery
	PublishMailEvent(ctx context.Context, event *MailEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
