package mailer

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBody(t *testing.T) {
	assert.Contains(t, Body("012345"), "012345")
	assert.Contains(t, Body("012345"), "10 minutes")
}

func TestNewSMTPSender(t *testing.T) {
	s := NewSMTPSender(SMTPConfig{Host: "smtp.example.com", Port: 587, Username: "me@example.com"})
	assert.Equal(t, "me@example.com", s.cfg.From)
}

func TestSMTPSenderCancelled(t *testing.T) {
	s := NewSMTPSender(SMTPConfig{Host: "127.0.0.1", Port: 1})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.SendOTP(ctx, "a@example.com", "123456")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLogSender(t *testing.T) {
	var buf bytes.Buffer
	s := LogSender{Logger: slog.New(slog.NewTextHandler(&buf, nil))}

	err := s.SendOTP(context.Background(), "a@example.com", "654321")
	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "654321")
}
