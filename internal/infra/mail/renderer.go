package mail

import (
	"bytes"
	"embed"
	"html/template"
	"strings"
	"time"

	"contacts/internal/domain/constants"
	"contacts/internal/domain/entity"
	"contacts/internal/domain/service"
	"contacts/internal/util"

	"github.com/pkg/errors"
)

//go:embed templates/*.html
var templateFS embed.FS

var mailTemplates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

type templateSpec struct {
	file    string
	subject string
}

var templatesByKind = map[entity.MailKind]templateSpec{
	entity.MailKindConfirmEmail:  {file: "confirm_email.html", subject: "Confirm your email"},
	entity.MailKindPasswordReset: {file: "password_reset.html", subject: "Reset your password"},
}

type templateData struct {
	Username string
	Host     string
	Token    string
	ValidFor string
}

// Renderer turns mail events into HTML messages.
type Renderer struct {
	resetTTL time.Duration
}

// NewRenderer builds a renderer. resetTTL is quoted in the reset email.
func NewRenderer(resetTTL time.Duration) *Renderer {
	if resetTTL <= 0 {
		resetTTL = constants.DefaultResetTokenTTL
	}

	return &Renderer{resetTTL: resetTTL}
}

// Render builds the message for event. Unknown kinds are rejected.
func (r *Renderer) Render(event *service.MailEvent) (*service.Mail, error) {
	spec, ok := templatesByKind[event.Kind]
	if !ok {
		return nil, errors.Errorf("unknown mail kind: %q", event.Kind)
	}
	if event.Email == "" {
		return nil, errors.New("mail event has no recipient")
	}

	host := event.Host
	if !strings.HasSuffix(host, "/") {
		host += "/"
	}

	var body bytes.Buffer
	err := mailTemplates.ExecuteTemplate(&body, spec.file, templateData{
		Username: event.Username,
		Host:     host,
		Token:    event.Token,
		ValidFor: util.FormatDuration(r.resetTTL),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "render %s", spec.file)
	}

	return &service.Mail{
		To:       event.Email,
		Subject:  spec.subject,
		HTMLBody: body.String(),
	}, nil
}
