package invoicing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/vighnaharta/engineers-backend/internal/config"
	"github.com/vighnaharta/engineers-backend/internal/domain/models"
	"github.com/vighnaharta/engineers-backend/internal/invoice"
	"github.com/vighnaharta/engineers-backend/internal/repository/mongodb"
	"github.com/vighnaharta/engineers-backend/internal/repository/sheets"
)

const dateLayout = "2006-01-02"

// InvoiceForm carries the operator-entered header fields of an invoice.
type InvoiceForm struct {
	InvoiceNo       string `json:"invoiceNo"`
	Date            string `json:"date"`
	PONumber        string `json:"poNumber"`
	PODate          string `json:"poDate"`
	ModeOfTransport string `json:"modeOfTransport"`
	VehicleNo       string `json:"vehicleNo"`
	PlaceOfSupply   string `json:"placeOfSupply"`
	ClientName      string `json:"clientName"`
	BillingAddress  string `json:"billingAddress"`
	ShippingAddress string `json:"shippingAddress"`
	Notes           string `json:"notes"`
}

// Service assembles, persists and renders invoices. Saved invoices are
// write-once; a correction produces a new invoice rather than an update.
type Service struct {
	repo    mongodb.InvoiceRepository
	ledger  sheets.Ledger
	company models.CompanyInfo
	gstRate float64
	logger  *zap.Logger
	now     func() time.Time
}

// NewService wires a new invoicing service instance. ledger may be nil when
// the spreadsheet export is not configured.
func NewService(repo mongodb.InvoiceRepository, ledger sheets.Ledger, cfg config.InvoiceConfig, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		repo:   repo,
		ledger: ledger,
		company: models.CompanyInfo{
			Name:       cfg.CompanyName,
			GSTIN:      cfg.CompanyGSTIN,
			VendorCode: cfg.CompanyVendorCode,
			UAN:        cfg.CompanyUAN,
			Address:    cfg.CompanyAddress,
		},
		gstRate: cfg.GSTRate,
		logger:  logger,
		now:     time.Now,
	}
}

// BuildInvoice assembles the full invoice record with computed totals and a
// server-assigned creation timestamp. Missing invoice number and date fall
// back to generated defaults.
func (s *Service) BuildInvoice(form InvoiceForm, items []models.InvoiceLineItem) models.Invoice {
	now := s.now()

	invoiceNo := strings.TrimSpace(form.InvoiceNo)
	if invoiceNo == "" {
		invoiceNo = fmt.Sprintf("INV-%d", now.UnixMilli())
	}
	date := strings.TrimSpace(form.Date)
	if date == "" {
		date = now.Format(dateLayout)
	}

	items = invoice.Sanitize(items)
	subtotal, gst, total := invoice.Totals(items, s.gstRate)

	return models.Invoice{
		InvoiceNo:       invoiceNo,
		Date:            date,
		PONumber:        form.PONumber,
		PODate:          form.PODate,
		ModeOfTransport: form.ModeOfTransport,
		VehicleNo:       form.VehicleNo,
		PlaceOfSupply:   form.PlaceOfSupply,
		ClientName:      form.ClientName,
		BillingAddress:  form.BillingAddress,
		ShippingAddress: form.ShippingAddress,
		Notes:           form.Notes,
		Items:           items,
		Subtotal:        subtotal,
		GST:             gst,
		Total:           total,
		Company:         s.company,
		CreatedAt:       now.UTC(),
	}
}

// SaveInvoice validates, assembles and persists an invoice. Validation runs
// before any write: a rejected save performs zero writes.
func (s *Service) SaveInvoice(ctx context.Context, form InvoiceForm, items []models.InvoiceLineItem) (models.Invoice, error) {
	if err := validate(form, items); err != nil {
		return models.Invoice{}, err
	}

	inv := s.BuildInvoice(form, items)

	id, err := s.repo.InsertInvoice(ctx, inv)
	if err != nil {
		return models.Invoice{}, fmt.Errorf("save invoice %s: %w", inv.InvoiceNo, err)
	}

	s.logger.Info("invoice saved",
		zap.String("id", id),
		zap.String("invoice_no", inv.InvoiceNo),
		zap.Float64("total", inv.Total))

	// The ledger export is best-effort bookkeeping; a failure must not fail
	// the already-persisted invoice.
	if s.ledger != nil {
		if err := s.ledger.AppendInvoice(ctx, inv); err != nil {
			s.logger.Warn("failed to append invoice to ledger", zap.String("invoice_no", inv.InvoiceNo), zap.Error(err))
		}
	}

	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		inv.ID = oid
	}
	return inv, nil
}

// ListInvoices returns saved invoices, newest first.
func (s *Service) ListInvoices(ctx context.Context) ([]models.Invoice, error) {
	return s.repo.ListInvoices(ctx)
}

// GetInvoice fetches one saved invoice.
func (s *Service) GetInvoice(ctx context.Context, id string) (models.Invoice, error) {
	return s.repo.GetInvoice(ctx, id)
}

func validate(form InvoiceForm, items []models.InvoiceLineItem) error {
	var missing []string

	if strings.TrimSpace(form.ClientName) == "" {
		missing = append(missing, "clientName")
	}

	described := false
	for _, item := range items {
		if strings.TrimSpace(item.Description) != "" {
			described = true
			break
		}
	}
	if !described {
		missing = append(missing, "items")
	}

	return models.NewValidationError(missing...)
}
