// Package mailer delivers OTP emails.
package mailer

import (
	"context"
	"fmt"
	"log/slog"

	"gopkg.in/gomail.v2"
)

// Sender delivers a one-time password to an address.
type Sender interface {
	SendOTP(ctx context.Context, to, code string) error
}

// SMTPConfig holds SMTP connection settings.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// SMTPSender sends mail through an SMTP server with STARTTLS.
type SMTPSender struct {
	cfg    SMTPConfig
	dialer *gomail.Dialer
}

// NewSMTPSender creates an SMTP sender. From defaults to Username.
func NewSMTPSender(cfg SMTPConfig) *SMTPSender {
	if cfg.From == "" {
		cfg.From = cfg.Username
	}
	return &SMTPSender{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
	}
}

// SendOTP sends the password reset code.
func (s *SMTPSender) SendOTP(ctx context.Context, to, code string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", Subject)
	m.SetBody("text/plain", Body(code))

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send otp mail to %s: %w", to, err)
	}
	return nil
}

// Subject is the OTP mail subject line.
const Subject = "Your OTP for mPin Reset"

// Body renders the OTP mail text.
func Body(code string) string {
	return fmt.Sprintf("Your OTP for resetting mPin is: %s\nThis OTP is valid for 10 minutes.", code)
}

// LogSender writes OTPs to the log instead of mailing them.
type LogSender struct {
	Logger *slog.Logger
}

// SendOTP logs the code at warn level.
func (s LogSender) SendOTP(_ context.Context, to, code string) error {
	logger := s.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Warn("SMTP not configured, OTP not mailed", "to", to, "otp", code)
	return nil
}
