package email

import (
	"fmt"
	"net/smtp"

	"github.com/Dan9191/fitbyte/internal/config"
	"github.com/jordan-wright/email"
	"github.com/sirupsen/logrus"
)

// sendFunc delivers a prepared message; tests replace it.
type sendFunc func(e *email.Email, addr string, a smtp.Auth) error

// Sender handles sending emails via SMTP
type Sender struct {
	cfg    *config.Config
	logger *logrus.Logger
	send   sendFunc
}

// NewSender creates a new email sender
func NewSender(cfg *config.Config, logger *logrus.Logger) *Sender {
	return &Sender{
		cfg:    cfg,
		logger: logger,
		send: func(e *email.Email, addr string, a smtp.Auth) error {
			return e.Send(addr, a)
		},
	}
}

// welcomeMessage builds the registration greeting.
func (s *Sender) welcomeMessage(to, username string) *email.Email {
	e := email.NewEmail()
	e.From = s.cfg.SenderEmail
	e.To = []string{to}
	e.Subject = "Welcome to FitByte"

	body := fmt.Sprintf("Hi %s,\n\n", username)
	body += "Your FitByte account is ready.\n" +
		"Start by creating a workout, setting a goal or logging a meal.\n"
	body += "\nSee you at the gym,\nThe FitByte team"
	e.Text = []byte(body)
	return e
}

// SendWelcome sends the welcome email after registration
func (s *Sender) SendWelcome(to, username string) error {
	e := s.welcomeMessage(to, username)

	addr := fmt.Sprintf("%s:%s", s.cfg.SMTPHost, s.cfg.SMTPPort)
	var auth smtp.Auth
	if s.cfg.SMTPUsername != "" {
		auth = smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)
	}
	if err := s.send(e, addr, auth); err != nil {
		s.logger.Errorf("Failed to send email to %s: %v", to, err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Infof("Email sent to %s: %s", to, e.Subject)
	return nil
}
