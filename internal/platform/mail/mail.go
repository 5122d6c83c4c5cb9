// Package mail はSMTP経由のメール送信を提供します。
package mail

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"stockevent_backend/internal/platform/config"
)

// Sender sends plain-text emails over SMTP.
type Sender struct {
	dialer *gomail.Dialer
	from   string
}

// NewSender は設定からSMTP送信クライアントを生成します。
func NewSender(cfg config.Config) *Sender {
	return &Sender{
		dialer: gomail.NewDialer(cfg.SMTPServer, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword),
		from:   cfg.EmailFrom,
	}
}

// Send delivers a plain-text message to a single recipient.
func (s *Sender) Send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send mail to %s: %w", to, err)
	}
	return nil
}
