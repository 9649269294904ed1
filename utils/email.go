package utils

import (
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// EmailService sends transactional mail through SendGrid.
type EmailService struct {
	client *sendgrid.Client
	sender string
}

// NewEmailService builds an EmailService for the given API key and sender
// address.
func NewEmailService(apiKey, sender string) *EmailService {
	return &EmailService{
		client: sendgrid.NewSendClient(apiKey),
		sender: sender,
	}
}

// SendEmail sends a basic email to the specified recipient.
func (es *EmailService) SendEmail(toEmail, subject, htmlContent string) error {
	from := mail.NewEmail("Bistro Boss", es.sender)
	to := mail.NewEmail("", toEmail)
	message := mail.NewSingleEmail(from, subject, to, htmlContent, htmlContent)

	resp, err := es.client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("failed to send email: status %d", resp.StatusCode)
	}
	return nil
}

// SendPaymentConfirmation notifies the user that their payment settled.
func (es *EmailService) SendPaymentConfirmation(toEmail, transactionID string, amount float64) error {
	subject := "Payment Confirmation - Bistro Boss"
	htmlContent := fmt.Sprintf(
		"<strong>Thank you for your order!</strong><br><br>Your payment of <strong>$%.2f</strong> has been received.<br>Transaction ID: <strong>%s</strong><br><br>Bon appétit!",
		amount,
		transactionID,
	)
	return es.SendEmail(toEmail, subject, htmlContent)
}
