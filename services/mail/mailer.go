package mail

import (
	"fmt"
	"net/smtp"

	"partyplan/config"
)

// Mailer sends plain-text mail.
type Mailer interface {
	Send(to, subject, body string) error
}

// SMTPMailer implements Mailer over authenticated SMTP.
type SMTPMailer struct {
	Host string
	Port string
	User string
	Pass string
}

// NewSMTPMailer builds a mailer from the loaded configuration.
func NewSMTPMailer() *SMTPMailer {
	return &SMTPMailer{
		Host: config.AppConfig.SMTPHost,
		Port: config.AppConfig.SMTPPort,
		User: config.AppConfig.SMTPUser,
		Pass: config.AppConfig.SMTPPass,
	}
}

// Send delivers a single message. The configured SMTP user is the sender.
func (m *SMTPMailer) Send(to, subject, body string) error {
	if m.Host == "" || m.User == "" {
		return fmt.Errorf("smtp is not configured")
	}

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		m.User, to, subject, body)

	addr := m.Host + ":" + m.Port
	auth := smtp.PlainAuth("", m.User, m.Pass, m.Host)

	if err := smtp.SendMail(addr, auth, m.User, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	return nil
}
