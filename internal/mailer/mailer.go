// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package mailer delivers transactional email over SMTP.
package mailer

import (
	"context"
	"fmt"

	"github.com/MKhiriev/pro-directory/internal/config"
	"github.com/MKhiriev/pro-directory/internal/logger"
	"gopkg.in/gomail.v2"
)

// Message is a multipart email with a plain text and an HTML alternative.
type Message struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

// Sender delivers a single message.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

type smtpSender struct {
	dialer *gomail.Dialer
	from   string
}

// NewSender returns an SMTP sender for cfg. When no SMTP host is configured
// messages are only logged.
func NewSender(cfg config.Mailer, log *logger.Logger) Sender {
	if cfg.Host == "" {
		log.Warn().Msg("SMTP host is not configured, emails will be logged only")
		return &logSender{logger: log}
	}

	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	dialer.SSL = cfg.SSL

	return &smtpSender{dialer: dialer, from: cfg.From}
}

func (s *smtpSender) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := s.dialer.DialAndSend(compose(s.from, msg)); err != nil {
		return fmt.Errorf("%w: %w", ErrSendingMail, err)
	}

	return nil
}

// compose builds the MIME message: text/plain first, text/html as the
// preferred alternative.
func compose(from string, msg Message) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Text)
	if msg.HTML != "" {
		m.AddAlternative("text/html", msg.HTML)
	}
	return m
}

type logSender struct {
	logger *logger.Logger
}

func (s *logSender) Send(_ context.Context, msg Message) error {
	s.logger.Info().
		Str("to", msg.To).
		Str("subject", msg.Subject).
		Str("text", msg.Text).
		Msg("email not sent: SMTP is not configured")
	return nil
}
