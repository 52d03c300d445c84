package devo

import (
	"context"
	"time"

	"github.com/andyle182810/devohub/httpclient"
)

type EmailService struct {
	service
}

type SendEmailParams struct {
	Subject   string
	Body      string
	Sender    string
	Recipient string
}

type emailSendRequest struct {
	Subject   string `json:"subject"`
	Body      string `json:"body"`
	Sender    string `json:"sender"`
	Recipient string `json:"recipient"`
}

type EmailSendResponse struct {
	Success     bool       `json:"success"`
	MessageID   string     `json:"message_id"`
	BulkEmailID string     `json:"bulk_email_id"`
	Subject     string     `json:"subject"`
	Status      string     `json:"status"`
	Message     string     `json:"message"`
	Timestamp   *time.Time `json:"timestamp,omitempty"`
}

func (s *EmailService) SendEmail(ctx context.Context, params SendEmailParams) (*EmailSendResponse, error) {
	subject, err := s.validate.RequireString("subject", params.Subject)
	if err != nil {
		return nil, err
	}

	body, err := s.validate.RequireString("body", params.Body)
	if err != nil {
		return nil, err
	}

	sender, err := s.validate.NormalizeEmail("sender", params.Sender)
	if err != nil {
		return nil, err
	}

	recipient, err := s.validate.NormalizeEmail("recipient", params.Recipient)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("recipient", recipient).Msg("Sending email")

	request := emailSendRequest{
		Subject:   subject,
		Body:      body,
		Sender:    sender,
		Recipient: recipient,
	}

	result, err := httpclient.PostJSON[EmailSendResponse](ctx, s.http, "email/send", request)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("message_id", result.MessageID).Str("status", result.Status).Msg("Email sent")

	return &result, nil
}
