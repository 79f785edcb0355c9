package service

import "context"

// EmailNotifier schedules transactional emails. Delivery is best effort:
// failures are logged by the implementation and never reach the caller.
type EmailNotifier interface {
	NotifyConfirmation(ctx context.Context, email, username, verificationToken, baseHost string)
	NotifyPasswordReset(ctx context.Context, email, username, resetToken, baseHost string)
}
