package invoicing

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/vighnaharta/engineers-backend/internal/domain/models"
)

// RenderPDF produces an A4 PDF rendition of a saved invoice.
func RenderPDF(inv models.Invoice) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	// Header: company identity left, invoice number and date right.
	pdf.SetFont("Arial", "B", 20)
	pdf.CellFormat(120, 10, "Invoice", "", 0, "L", false, 0, "")
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(70, 10, fmt.Sprintf("Invoice No: %s", inv.InvoiceNo), "", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(120, 5, inv.Company.Name, "", 0, "L", false, 0, "")
	pdf.CellFormat(70, 5, fmt.Sprintf("Date: %s", inv.Date), "", 1, "R", false, 0, "")
	pdf.SetFont("Arial", "", 8)
	pdf.CellFormat(190, 4, fmt.Sprintf("GSTIN: %s | UAN: %s | Vendor Code: %s", inv.Company.GSTIN, inv.Company.UAN, inv.Company.VendorCode), "", 1, "L", false, 0, "")
	pdf.MultiCell(190, 4, inv.Company.Address, "", "L", false)
	pdf.Ln(4)

	// PO and transport details.
	pdf.SetFont("Arial", "", 9)
	detail := func(label, value string) {
		if value == "" {
			return
		}
		pdf.CellFormat(95, 5, fmt.Sprintf("%s: %s", label, value), "", 1, "L", false, 0, "")
	}
	detail("PO Number", inv.PONumber)
	detail("PO Date", inv.PODate)
	detail("Mode of Transport", inv.ModeOfTransport)
	detail("Vehicle No", inv.VehicleNo)
	detail("Place of Supply", inv.PlaceOfSupply)
	pdf.Ln(2)

	// Parties.
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(95, 6, "Billing To", "", 0, "L", false, 0, "")
	pdf.CellFormat(95, 6, "Shipping To", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	yBefore := pdf.GetY()
	pdf.MultiCell(95, 4, inv.ClientName+"\n"+inv.BillingAddress, "", "L", false)
	yLeft := pdf.GetY()
	pdf.SetXY(105, yBefore)
	pdf.MultiCell(95, 4, inv.ShippingAddress, "", "L", false)
	if pdf.GetY() < yLeft {
		pdf.SetY(yLeft)
	}
	pdf.Ln(4)

	// Items table.
	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(95, 7, "Description", "1", 0, "L", true, 0, "")
	pdf.CellFormat(25, 7, "Quantity", "1", 0, "R", true, 0, "")
	pdf.CellFormat(35, 7, "Rate", "1", 0, "R", true, 0, "")
	pdf.CellFormat(35, 7, "Total", "1", 1, "R", true, 0, "")

	pdf.SetFont("Arial", "", 9)
	for _, item := range inv.Items {
		pdf.CellFormat(95, 6, item.Description, "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 6, trimZeros(item.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 6, fmt.Sprintf("%.2f", item.Rate), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 6, fmt.Sprintf("%.2f", item.Quantity*item.Rate), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(4)

	// Totals.
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(155, 6, "Subtotal", "", 0, "R", false, 0, "")
	pdf.CellFormat(35, 6, fmt.Sprintf("%.2f", inv.Subtotal), "", 1, "R", false, 0, "")
	pdf.CellFormat(155, 6, "GST", "", 0, "R", false, 0, "")
	pdf.CellFormat(35, 6, fmt.Sprintf("%.2f", inv.GST), "", 1, "R", false, 0, "")
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(155, 8, "Grand Total", "", 0, "R", false, 0, "")
	pdf.CellFormat(35, 8, fmt.Sprintf("%.2f", inv.Total), "", 1, "R", false, 0, "")

	if inv.Notes != "" {
		pdf.Ln(4)
		pdf.SetFont("Arial", "I", 9)
		pdf.MultiCell(190, 4, "Notes: "+inv.Notes, "", "L", false)
	}

	pdf.Ln(16)
	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(190, 5, "Authorized Signatory", "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render invoice %s pdf: %w", inv.InvoiceNo, err)
	}
	return buf.Bytes(), nil
}

func trimZeros(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.2f", v)
}
