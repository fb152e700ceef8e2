package invoicing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/vighnaharta/engineers-backend/internal/config"
	"github.com/vighnaharta/engineers-backend/internal/domain/models"
	"github.com/vighnaharta/engineers-backend/internal/repository/mongodb"
)

type fakeInvoiceRepo struct {
	inserted []models.Invoice
}

func (f *fakeInvoiceRepo) InsertInvoice(_ context.Context, inv models.Invoice) (string, error) {
	f.inserted = append(f.inserted, inv)
	return "64b000000000000000000001", nil
}

func (f *fakeInvoiceRepo) ListInvoices(context.Context) ([]models.Invoice, error) {
	return f.inserted, nil
}

func (f *fakeInvoiceRepo) GetInvoice(context.Context, string) (models.Invoice, error) {
	return models.Invoice{}, mongodb.ErrNotFound
}

type fakeLedger struct {
	appended []models.Invoice
}

func (f *fakeLedger) AppendInvoice(_ context.Context, inv models.Invoice) error {
	f.appended = append(f.appended, inv)
	return nil
}

func invoiceCfg() config.InvoiceConfig {
	return config.InvoiceConfig{
		GSTRate:        0.18,
		CompanyName:    "VIGHNAHARTA ENGINEERS",
		CompanyGSTIN:   "27AAKFV7481P1ZC",
		CompanyUAN:     "MH19A0001234",
		CompanyAddress: "Pune, Maharashtra",
	}
}

func TestSaveInvoiceComputesTotalsAndPersists(t *testing.T) {
	repo := &fakeInvoiceRepo{}
	ledger := &fakeLedger{}
	svc := NewService(repo, ledger, invoiceCfg(), zap.NewNop())
	svc.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }

	items := []models.InvoiceLineItem{
		{Description: "Bolt", Quantity: 10, Rate: 5},
		{Description: "Weld", Quantity: 2, Rate: 150},
	}
	form := InvoiceForm{ClientName: "Acme Fabrication", Date: "2025-06-01"}

	saved, err := svc.SaveInvoice(context.Background(), form, items)
	require.NoError(t, err)

	assert.InDelta(t, 350, saved.Subtotal, 1e-9)
	assert.InDelta(t, 63, saved.GST, 1e-9)
	assert.InDelta(t, 413, saved.Total, 1e-9)
	assert.Equal(t, "INV-1748779200000", saved.InvoiceNo)
	assert.Equal(t, "VIGHNAHARTA ENGINEERS", saved.Company.Name)
	assert.False(t, saved.CreatedAt.IsZero())
	assert.False(t, saved.ID.IsZero())

	require.Len(t, repo.inserted, 1)
	require.Len(t, ledger.appended, 1)
	assert.Equal(t, saved.InvoiceNo, ledger.appended[0].InvoiceNo)
}

func TestSaveInvoiceMissingClientNameWritesNothing(t *testing.T) {
	repo := &fakeInvoiceRepo{}
	svc := NewService(repo, nil, invoiceCfg(), zap.NewNop())

	items := []models.InvoiceLineItem{{Description: "Bolt", Quantity: 1, Rate: 5}}
	_, err := svc.SaveInvoice(context.Background(), InvoiceForm{}, items)

	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "clientName")
	assert.Empty(t, repo.inserted)
}

func TestSaveInvoiceRequiresDescribedLineItem(t *testing.T) {
	repo := &fakeInvoiceRepo{}
	svc := NewService(repo, nil, invoiceCfg(), zap.NewNop())

	items := []models.InvoiceLineItem{{Description: "   ", Quantity: 1, Rate: 5}}
	_, err := svc.SaveInvoice(context.Background(), InvoiceForm{ClientName: "Acme"}, items)

	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "items")
	assert.Empty(t, repo.inserted)
}

func TestBuildInvoiceDefaultsNumberAndDate(t *testing.T) {
	svc := NewService(&fakeInvoiceRepo{}, nil, invoiceCfg(), zap.NewNop())
	fixed := time.Date(2025, 3, 15, 9, 30, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	inv := svc.BuildInvoice(InvoiceForm{ClientName: "Acme"}, nil)
	assert.Equal(t, "INV-1742031000000", inv.InvoiceNo)
	assert.Equal(t, "2025-03-15", inv.Date)
	assert.Equal(t, fixed, inv.CreatedAt)
}

func TestRenderPDFProducesDocument(t *testing.T) {
	svc := NewService(&fakeInvoiceRepo{}, nil, invoiceCfg(), zap.NewNop())
	inv := svc.BuildInvoice(InvoiceForm{
		ClientName:     "Acme Fabrication",
		BillingAddress: "Plot 4, MIDC, Pune",
		Notes:          "Payment due in 30 days",
	}, []models.InvoiceLineItem{
		{Description: "Bracket assembly", Quantity: 24, Rate: 112.5},
	})

	data, err := RenderPDF(inv)
	require.NoError(t, err)
	assert.Greater(t, len(data), 500)
	assert.Equal(t, "%PDF", string(data[:4]))
}
