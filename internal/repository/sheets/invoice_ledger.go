package sheets

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/vighnaharta/engineers-backend/internal/config"
	"github.com/vighnaharta/engineers-backend/internal/domain/models"
)

const ledgerRange = "Invoices!A:F"

// Ledger records a one-row summary of each saved invoice for bookkeeping.
type Ledger interface {
	AppendInvoice(ctx context.Context, invoice models.Invoice) error
}

// GoogleSheetLedger implements Ledger using the official Google Sheets API.
type GoogleSheetLedger struct {
	service       *sheetsapi.Service
	spreadsheetID string
	logger        *zap.Logger
}

// NewGoogleSheetLedger builds a Google Sheets backed ledger instance.
func NewGoogleSheetLedger(ctx context.Context, cfg config.SheetsConfig, logger *zap.Logger) (*GoogleSheetLedger, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	service, err := sheetsapi.NewService(ctx, option.WithCredentialsFile(cfg.CredentialsPath), option.WithScopes(sheetsapi.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize sheets client: %w", err)
	}

	return &GoogleSheetLedger{
		service:       service,
		spreadsheetID: cfg.SpreadsheetID,
		logger:        logger,
	}, nil
}

// AppendInvoice appends the invoice summary row to the ledger sheet.
func (l *GoogleSheetLedger) AppendInvoice(ctx context.Context, invoice models.Invoice) error {
	values := []interface{}{
		invoice.InvoiceNo,
		invoice.Date,
		invoice.ClientName,
		invoice.Subtotal,
		invoice.GST,
		invoice.Total,
	}
	payload := &sheetsapi.ValueRange{Values: [][]interface{}{values}}

	call := l.service.Spreadsheets.Values.Append(l.spreadsheetID, ledgerRange, payload).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx)

	if _, err := call.Do(); err != nil {
		return fmt.Errorf("append invoice %s to ledger: %w", invoice.InvoiceNo, err)
	}

	l.logger.Debug("invoice appended to ledger", zap.String("invoice_no", invoice.InvoiceNo))
	return nil
}
