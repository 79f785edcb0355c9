package mail

import (
	"testing"
	"time"

	"contacts/internal/domain/entity"
	"contacts/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_ConfirmEmail(t *testing.T) {
	r := NewRenderer(time.Hour)

	mail, err := r.Render(&service.MailEvent{
		Kind:     entity.MailKindConfirmEmail,
		Email:    "alice@example.com",
		Username: "alice",
		Token:    "aaa.bbb.ccc",
		Host:     "http://localhost:8000",
	})
	require.NoError(t, err)

	assert.Equal(t, "alice@example.com", mail.To)
	assert.Equal(t, "Confirm your email", mail.Subject)
	assert.Contains(t, mail.HTMLBody, "Hi alice,")
	assert.Contains(t, mail.HTMLBody, `href="http://localhost:8000/api/auth/confirmed_email/aaa.bbb.ccc"`)
}

func TestRenderer_PasswordReset(t *testing.T) {
	r := NewRenderer(time.Hour)

	mail, err := r.Render(&service.MailEvent{
		Kind:     entity.MailKindPasswordReset,
		Email:    "alice@example.com",
		Username: "<b>alice</b>",
		Token:    "RESETTOKEN",
		Host:     "https://contacts.example.com/",
	})
	require.NoError(t, err)

	assert.Equal(t, "Reset your password", mail.Subject)
	assert.Contains(t, mail.HTMLBody, `href="https://contacts.example.com/api/auth/password-reset?token=RESETTOKEN"`)
	assert.Contains(t, mail.HTMLBody, "valid for 1h0m")
	assert.NotContains(t, mail.HTMLBody, "<b>alice</b>")
}

func TestRenderer_Rejects(t *testing.T) {
	r := NewRenderer(0)

	_, err := r.Render(&service.MailEvent{Kind: "newsletter", Email: "alice@example.com"})
	assert.Error(t, err)

	_, err = r.Render(&service.MailEvent{Kind: entity.MailKindConfirmEmail})
	assert.Error(t, err)
}
