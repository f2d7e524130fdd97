package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/heergandhi/axon-backend/internal/logger"
)

const sendGridURL = "https://api.sendgrid.com/v3/mail/send"

// Mailer delivers transactional email
type Mailer interface {
	Send(ctx context.Context, to, subject, html string) error
}

// SendGridMailer posts to the SendGrid v3 mail/send endpoint. With no API
// key configured it logs a warning and drops the message, so local setups
// work without email credentials.
type SendGridMailer struct {
	apiKey string
	from   string
	client *http.Client
}

func NewSendGridMailer(apiKey, from string) *SendGridMailer {
	return &SendGridMailer{
		apiKey: apiKey,
		from:   from,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

type sendGridRequest struct {
	Personalizations []personalization `json:"personalizations"`
	From             emailAddress      `json:"from"`
	Subject          string            `json:"subject"`
	Content          []content         `json:"content"`
}

type personalization struct {
	To []emailAddress `json:"to"`
}

type emailAddress struct {
	Email string `json:"email"`
}

type content struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

func (m *SendGridMailer) Send(ctx context.Context, to, subject, html string) error {
	if m.apiKey == "" {
		logger.Warn("SendGrid API key missing, email not sent", "to", to, "subject", subject)
		return nil
	}

	payload := sendGridRequest{
		Personalizations: []personalization{{To: []emailAddress{{Email: to}}}},
		From:             emailAddress{Email: m.from},
		Subject:          subject,
		Content:          []content{{Type: "text/html", Value: html}},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode mail payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, sendGridURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build mail request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("SendGrid returned %d: %s", resp.StatusCode, string(detail))
	}

	logger.Info("email sent", "to", to, "subject", subject)
	return nil
}
