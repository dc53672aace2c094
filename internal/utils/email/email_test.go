package email

import (
	"errors"
	"io"
	"net/smtp"
	"strings"
	"testing"

	"github.com/Dan9191/fitbyte/internal/config"
	"github.com/jordan-wright/email"
	"github.com/sirupsen/logrus"
)

func newTestSender() *Sender {
	log := logrus.New()
	log.SetOutput(io.Discard)
	cfg := &config.Config{SMTPHost: "smtp.example.com", SMTPPort: "587", SenderEmail: "FitByte <no-reply@fitbyte.local>"}
	return NewSender(cfg, log)
}

func TestSendWelcome(t *testing.T) {
	s := newTestSender()
	var (
		gotAddr string
		gotMail *email.Email
		gotAuth smtp.Auth
	)
	s.send = func(e *email.Email, addr string, a smtp.Auth) error {
		gotMail, gotAddr, gotAuth = e, addr, a
		return nil
	}

	if err := s.SendWelcome("alice@example.com", "alice"); err != nil {
		t.Fatalf("SendWelcome failed: %v", err)
	}
	if gotAddr != "smtp.example.com:587" {
		t.Errorf("addr = %q", gotAddr)
	}
	if gotAuth != nil {
		t.Error("expected no auth without SMTP_USERNAME")
	}
	if len(gotMail.To) != 1 || gotMail.To[0] != "alice@example.com" {
		t.Errorf("to = %v", gotMail.To)
	}
	if !strings.Contains(string(gotMail.Text), "Hi alice") {
		t.Errorf("body = %q", gotMail.Text)
	}
}

func TestSendWelcomeError(t *testing.T) {
	s := newTestSender()
	s.send = func(*email.Email, string, smtp.Auth) error { return errors.New("connection refused") }

	if err := s.SendWelcome("alice@example.com", "alice"); err == nil {
		t.Fatal("expected error")
	}
}
