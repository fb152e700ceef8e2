package contact

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/vighnaharta/engineers-backend/internal/domain/models"
	"github.com/vighnaharta/engineers-backend/pkg/clients/mailer"
)

type fakeMailer struct {
	sent []mailer.ContactMessage
	fail bool
}

func (f *fakeMailer) SendContactMessage(_ context.Context, msg mailer.ContactMessage) error {
	if f.fail {
		return errors.New("relay unavailable")
	}
	f.sent = append(f.sent, msg)
	return nil
}

func TestSubmitRelaysMessage(t *testing.T) {
	m := &fakeMailer{}
	svc := NewService(m, zap.NewNop())

	err := svc.Submit(context.Background(), models.ContactRequest{
		Name:    "Jane",
		Email:   "jane@example.com",
		Message: "Need a quote for 500 brackets",
	})
	require.NoError(t, err)

	require.Len(t, m.sent, 1)
	assert.Equal(t, "jane@example.com", m.sent[0].Email)
}

func TestSubmitValidatesBeforeRelay(t *testing.T) {
	m := &fakeMailer{}
	svc := NewService(m, zap.NewNop())

	err := svc.Submit(context.Background(), models.ContactRequest{Name: "Jane"})

	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.ElementsMatch(t, []string{"email", "message"}, verr.Fields)
	assert.Empty(t, m.sent)
}

func TestSubmitSurfacesRelayFailure(t *testing.T) {
	svc := NewService(&fakeMailer{fail: true}, zap.NewNop())

	err := svc.Submit(context.Background(), models.ContactRequest{
		Name:    "Jane",
		Email:   "jane@example.com",
		Message: "hello",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "relay contact message")
}
