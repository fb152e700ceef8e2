package contact

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/vighnaharta/engineers-backend/internal/domain/models"
	"github.com/vighnaharta/engineers-backend/pkg/clients/mailer"
)

// Service validates contact form submissions and relays them through the
// email relay. Validation runs before any I/O; a failed relay is surfaced to
// the caller and never retried.
type Service struct {
	mailer mailer.Client
	logger *zap.Logger
}

// NewService wires a new contact service instance.
func NewService(mailerClient mailer.Client, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{mailer: mailerClient, logger: logger}
}

// Submit relays one contact form submission.
func (s *Service) Submit(ctx context.Context, req models.ContactRequest) error {
	var missing []string
	if strings.TrimSpace(req.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(req.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(req.Message) == "" {
		missing = append(missing, "message")
	}
	if err := models.NewValidationError(missing...); err != nil {
		return err
	}

	msg := mailer.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	}
	if err := s.mailer.SendContactMessage(ctx, msg); err != nil {
		return fmt.Errorf("relay contact message: %w", err)
	}

	s.logger.Info("contact message relayed", zap.String("from", req.Email))
	return nil
}
