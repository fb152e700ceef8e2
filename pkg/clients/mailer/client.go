package mailer

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/vighnaharta/engineers-backend/internal/config"
)

// Client exposes the email relay operations used by the contact form.
type Client interface {
	SendContactMessage(ctx context.Context, msg ContactMessage) error
}

// ContactMessage carries the template parameters for the contact template.
type ContactMessage struct {
	Name    string
	Email   string
	Message string
}

// APIClient is a resty-backed implementation of Client against the EmailJS REST API.
type APIClient struct {
	httpClient *resty.Client
	serviceID  string
	templateID string
	publicKey  string
}

// NewClient builds an EmailJS client using the provided configuration values.
func NewClient(cfg config.MailConfig) *APIClient {
	restyClient := resty.New()
	restyClient.
		SetBaseURL(strings.TrimSuffix(cfg.BaseURL, "/")).
		SetHeader("Content-Type", "application/json").
		SetTimeout(15 * time.Second)

	return &APIClient{
		httpClient: restyClient,
		serviceID:  cfg.ServiceID,
		templateID: cfg.TemplateID,
		publicKey:  cfg.PublicKey,
	}
}

// SendContactMessage relays a contact form submission through the configured template.
func (c *APIClient) SendContactMessage(ctx context.Context, msg ContactMessage) error {
	payload := map[string]any{
		"service_id":  c.serviceID,
		"template_id": c.templateID,
		"user_id":     c.publicKey,
		"template_params": map[string]any{
			"from_name": msg.Name,
			"reply_to":  msg.Email,
			"message":   msg.Message,
		},
	}

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(payload).
		Post("/api/v1.0/email/send")
	if err != nil {
		return fmt.Errorf("send contact message: %w", err)
	}

	// EmailJS answers plain text: "OK" on success, the error reason otherwise.
	if resp.StatusCode() >= http.StatusBadRequest {
		return fmt.Errorf("emailjs error: code=%d, message=%s", resp.StatusCode(), strings.TrimSpace(resp.String()))
	}

	return nil
}
