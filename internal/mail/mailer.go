// Package mail delivers the contact-form messages over SMTP.
package mail

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"insighthub/internal/config"
)

type Mailer interface {
	SendContact(name, email, message string) error
}

type smtpMailer struct {
	dialer    *gomail.Dialer
	from      string
	recipient string
}

func NewMailer(cfg *config.Config) Mailer {
	return &smtpMailer{
		dialer:    gomail.NewDialer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password),
		from:      cfg.SMTP.Username,
		recipient: cfg.SMTP.ContactRecipient,
	}
}

func (m *smtpMailer) SendContact(name, email, message string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", m.recipient)
	msg.SetHeader("Reply-To", email)
	msg.SetHeader("Subject", fmt.Sprintf("Contact form message from %s", name))
	msg.SetBody("text/plain", fmt.Sprintf("From: %s <%s>\n\n%s", name, email, message))

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send contact email: %w", err)
	}

	return nil
}
