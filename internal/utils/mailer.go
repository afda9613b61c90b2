package utils

import (
	"fmt"
	"net/smtp"

	"TOURSANDTRAVELS_BACK-END/internal/config"
)

// EmailService handles email sending operations
type EmailService struct {
	config *config.EmailConfig
}

// NewEmailService creates a new email service instance
func NewEmailService(cfg *config.EmailConfig) *EmailService {
	return &EmailService{
		config: cfg,
	}
}

// SendContactMessage forwards a contact-us submission to the operator inbox.
func (e *EmailService) SendContactMessage(name, email, subject, message string) error {
	if subject == "" {
		subject = "Contact form message"
	}
	body := fmt.Sprintf(`
New contact form submission.

From: %s <%s>

%s
	`, name, email, message)

	return e.sendEmail(e.config.ContactEmail, subject, body)
}

// sendEmail sends an email using SMTP
func (e *EmailService) sendEmail(to, subject, body string) error {
	// Check if credentials are set
	if e.config.SMTPUsername == "" || e.config.SMTPPassword == "" {
		return fmt.Errorf("email credentials not configured")
	}

	// Setup authentication
	auth := smtp.PlainAuth("", e.config.SMTPUsername, e.config.SMTPPassword, e.config.SMTPHost)

	// Compose message
	fromEmail := e.config.FromEmail
	if fromEmail == "" {
		fromEmail = e.config.SMTPUsername
	}

	msg := []byte(fmt.Sprintf(
		"From: %s <%s>\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"\r\n"+
			"%s\r\n",
		e.config.FromName, fromEmail, to, subject, body))

	// Send email
	addr := e.config.SMTPHost + ":" + e.config.SMTPPort
	if err := smtp.SendMail(addr, auth, fromEmail, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send email: %v", err)
	}

	return nil
}
