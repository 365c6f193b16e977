package email

import (
	"wantly_backend/internal/config"
	"wantly_backend/internal/logger"

	"gopkg.in/gomail.v2"
)

// Sender delivers transactional emails. Services depend on this
// interface so tests can substitute a recording fake.
type Sender interface {
	Send(to, subject, body string) error
}

type SMTPSender struct {
	cfg *config.Config
}

func NewSMTPSender(cfg *config.Config) *SMTPSender {
	return &SMTPSender{cfg: cfg}
}

func (e *SMTPSender) Send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", e.cfg.Email.FromEmail, e.cfg.Email.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(
		e.cfg.Email.SMTPHost,
		e.cfg.Email.SMTPPort,
		e.cfg.Email.SMTPUsername,
		e.cfg.Email.SMTPPassword,
	)

	return d.DialAndSend(m)
}

// NoopSender is used when SMTP is not configured. Mails are logged
// instead of sent so local development does not need a mail server.
type NoopSender struct{}

func (NoopSender) Send(to, subject, _ string) error {
	logger.Warn("Email delivery disabled, dropping message", "to", to, "subject", subject)
	return nil
}

func NewSender(cfg *config.Config) Sender {
	if cfg.Email.SMTPHost == "" {
		return NoopSender{}
	}
	return NewSMTPSender(cfg)
}
