// Package mailer delivers plaintext dashboard reports over SMTP.
package mailer

import (
	"errors"
	"fmt"
	"net/smtp"
	"strconv"
	"strings"
)

// ErrMailDelivery is returned when a report cannot be handed to the SMTP
// server.
var ErrMailDelivery = errors.New("mail delivery failed")

// Mailer sends one plaintext message to a single recipient.
type Mailer interface {
	Send(to, subject, body string) error
}

// SMTPConfig configures the SMTP mailer.
type SMTPConfig struct {
	Host     string
	Port     int
	From     string
	Username string
	Password string
}

// SMTPMailer is a Mailer backed by a plain SMTP server.
type SMTPMailer struct {
	cfg SMTPConfig
}

// NewSMTPMailer returns a Mailer for the given server.
func NewSMTPMailer(cfg SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

// Send delivers a plaintext message. Authentication is used only when a
// username is configured.
func (m *SMTPMailer) Send(to, subject, body string) error {
	addr := m.cfg.Host + ":" + strconv.Itoa(m.cfg.Port)

	msg := strings.Join([]string{
		"From: " + m.cfg.From,
		"To: " + to,
		"Subject: " + subject,
		"Content-Type: text/plain; charset=utf-8",
		"",
		body,
	}, "\r\n")

	var auth smtp.Auth
	if m.cfg.Username != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}

	if err := smtp.SendMail(addr, auth, m.cfg.From, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("%w: %w", ErrMailDelivery, err)
	}

	return nil
}
