package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"influencer-platform-backend/internal/logger"
)

type emailService struct {
	apiKey        string
	fromEmail     string
	fromName      string
	signupBaseURL string
}

func NewEmailService(apiKey, fromEmail, fromName, signupBaseURL string) EmailService {
	return &emailService{
		apiKey:        apiKey,
		fromEmail:     fromEmail,
		fromName:      fromName,
		signupBaseURL: signupBaseURL,
	}
}

func (s *emailService) SendApprovalNotice(ctx context.Context, email, name, token string) error {
	signupLink := fmt.Sprintf("%s/signup?token=%s", s.signupBaseURL, token)

	subject := "Your Influencer Request is Approved"
	plainText := fmt.Sprintf("Hello %s,\n\nYour request has been approved! Complete your signup here: %s\n\nThis link will expire in 24 hours.", name, signupLink)
	htmlContent := fmt.Sprintf(`
		<p>Hello %s,</p>
		<p>Your request has been approved! Click the link below to complete your signup:</p>
		<a href="%s">Click here to Complete Signup Process.</a>
		<p>This link will expire in 24 hours.</p>
	`, name, signupLink)

	return s.send(email, name, subject, plainText, htmlContent)
}

func (s *emailService) SendRejectionNotice(ctx context.Context, email, name string) error {
	subject := "Your Influencer Request was Rejected"
	plainText := fmt.Sprintf("Hello %s,\n\nThank you for applying. Unfortunately, your request has NOT been approved at this time. You may try again in the future.", name)
	htmlContent := fmt.Sprintf(`
		<p>Hello %s,</p>
		<p>Thank you for applying. Unfortunately, your request has NOT been approved at this time.</p>
		<p>You may try again in the future.</p>
	`, name)

	return s.send(email, name, subject, plainText, htmlContent)
}

func (s *emailService) send(to, toName, subject, plainText, htmlContent string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, htmlContent)

	logger.ExternalServiceCall("sendgrid", "send", "to", to, "subject", subject)
	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		logger.ExternalServiceResult("sendgrid", "send", err)
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		err := fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
		logger.ExternalServiceResult("sendgrid", "send", err)
		return err
	}
	logger.ExternalServiceResult("sendgrid", "send", nil)
	return nil
}
