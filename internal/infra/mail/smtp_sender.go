package mail

import (
	"context"
	"crypto/tls"
	"log/slog"
	"time"

	"contacts/config"
	"contacts/internal/domain/service"

	"github.com/pkg/errors"
	gomail "github.com/wneessen/go-mail"
)

// SMTPSender delivers mail over SMTP, either implicit TLS or STARTTLS.
type SMTPSender struct {
	cfg    *config.MailConfig
	logger *slog.Logger
	now    func() time.Time
}

// NewSMTPSender creates a sender from the mail section of the config.
func NewSMTPSender(cfg *config.Config, logger *slog.Logger) (service.MailSender, error) {
	if cfg.Mail == nil || cfg.Mail.Host == "" {
		return nil, errors.New("mail host is not configured")
	}
	if err := gomail.NewMsg().From(cfg.Mail.From); err != nil {
		return nil, errors.Wrapf(err, "invalid mail from address %q", cfg.Mail.From)
	}

	return &SMTPSender{cfg: cfg.Mail, logger: logger, now: time.Now}, nil
}

// Send dials the server, authenticates when credentials are set and writes
// one message. The whole exchange is bounded by ctx and SendTimeout.
func (s *SMTPSender) Send(ctx context.Context, msg *service.Mail) error {
	m, err := s.buildMessage(msg)
	if err != nil {
		return err
	}

	client, err := s.newClient()
	if err != nil {
		return errors.Wrap(err, "create smtp client")
	}

	if s.cfg.SendTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.SendTimeout)
		defer cancel()
	}

	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return classifySendError(err)
	}

	s.logger.Debug("Mail sent", slog.String("to", msg.To), slog.String("subject", msg.Subject))

	return nil
}

func (s *SMTPSender) newClient() (*gomail.Client, error) {
	policy := gomail.NoTLS
	if s.cfg.StartTLS {
		policy = gomail.TLSMandatory
	}

	opts := []gomail.Option{
		gomail.WithTLSPolicy(policy),
		gomail.WithTLSConfig(&tls.Config{ServerName: s.cfg.Host, MinVersion: tls.VersionTLS12}),
	}
	if s.cfg.Port > 0 {
		opts = append(opts, gomail.WithPort(s.cfg.Port))
	}
	// Implicit TLS unless the server upgrades with STARTTLS.
	if s.cfg.SSLTLS && !s.cfg.StartTLS {
		opts = append(opts, gomail.WithSSL())
	}
	if s.cfg.SendTimeout > 0 {
		opts = append(opts, gomail.WithTimeout(s.cfg.SendTimeout))
	}
	if s.cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(s.cfg.Username),
			gomail.WithPassword(s.cfg.Password),
		)
	}

	return gomail.NewClient(s.cfg.Host, opts...)
}

func (s *SMTPSender) buildMessage(msg *service.Mail) (*gomail.Msg, error) {
	m := gomail.NewMsg()

	var err error
	if s.cfg.FromName != "" {
		err = m.FromFormat(s.cfg.FromName, s.cfg.From)
	} else {
		err = m.From(s.cfg.From)
	}
	if err != nil {
		return nil, errors.Wrap(err, "set sender")
	}

	if err := m.To(msg.To); err != nil {
		return nil, errors.Wrapf(service.ErrMailRejected, "invalid recipient %q: %v", msg.To, err)
	}

	m.Subject(msg.Subject)
	m.SetDateWithValue(s.now())
	m.SetMessageID()
	m.SetBodyString(gomail.TypeTextHTML, msg.HTMLBody)

	return m, nil
}

// classifySendError marks permanent server replies to the envelope or the
// message as rejected. Everything else, including 4xx replies, stays retryable.
func classifySendError(err error) error {
	var sendErr *gomail.SendError
	if errors.As(err, &sendErr) && !sendErr.IsTemp() {
		switch sendErr.Reason {
		case gomail.ErrSMTPMailFrom, gomail.ErrSMTPRcptTo, gomail.ErrSMTPData, gomail.ErrSMTPDataClose:
			return errors.Wrapf(service.ErrMailRejected, "smtp: %v", err)
		}
	}

	return errors.Wrap(err, "send mail")
}
