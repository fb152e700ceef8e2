// Package invoice holds the pure arithmetic behind invoice generation:
// line-item editing, subtotal, GST and grand total. Persistence and PDF
// rendering live in the invoicing service.
package invoice

import (
	"math"
	"strconv"
	"strings"

	"github.com/vighnaharta/engineers-backend/internal/domain/models"
)

// DefaultGSTRate is the rate applied when no rate is configured.
const DefaultGSTRate = 0.18

// Field names an editable line-item column.
type Field string

const (
	FieldDescription Field = "description"
	FieldQuantity    Field = "quantity"
	FieldRate        Field = "rate"
)

// AppendBlank appends the default new row: empty description, quantity 1, rate 0.
func AppendBlank(items []models.InvoiceLineItem) []models.InvoiceLineItem {
	return append(items, models.InvoiceLineItem{Quantity: 1})
}

// SetField replaces one field of one item and returns the updated list.
// An out-of-range index leaves the list unchanged. Numeric fields go through
// ParseAmount, so bad input becomes 0 and never reaches the totals as NaN.
func SetField(items []models.InvoiceLineItem, index int, field Field, raw string) []models.InvoiceLineItem {
	if index < 0 || index >= len(items) {
		return items
	}

	switch field {
	case FieldDescription:
		items[index].Description = raw
	case FieldQuantity:
		items[index].Quantity = ParseAmount(raw)
	case FieldRate:
		items[index].Rate = ParseAmount(raw)
	}

	return items
}

// ParseAmount converts free-form numeric input into a non-negative amount.
// Anything that does not parse as a non-negative finite number coerces to 0.
func ParseAmount(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// Sanitize clamps negative or non-finite numeric fields to 0, mirroring the
// parse-or-default rule for values that arrive already decoded.
func Sanitize(items []models.InvoiceLineItem) []models.InvoiceLineItem {
	out := make([]models.InvoiceLineItem, len(items))
	copy(out, items)
	for i := range out {
		if math.IsNaN(out[i].Quantity) || math.IsInf(out[i].Quantity, 0) || out[i].Quantity < 0 {
			out[i].Quantity = 0
		}
		if math.IsNaN(out[i].Rate) || math.IsInf(out[i].Rate, 0) || out[i].Rate < 0 {
			out[i].Rate = 0
		}
	}
	return out
}

// LineTotal is quantity times unit rate for one row.
func LineTotal(item models.InvoiceLineItem) float64 {
	return item.Quantity * item.Rate
}

// Subtotal sums the line totals of all items.
func Subtotal(items []models.InvoiceLineItem) float64 {
	var sum float64
	for _, item := range items {
		sum += LineTotal(item)
	}
	return sum
}

// Tax applies the GST rate to a subtotal.
func Tax(subtotal, rate float64) float64 {
	return subtotal * rate
}

// Total is subtotal plus tax.
func Total(subtotal, tax float64) float64 {
	return subtotal + tax
}

// Totals computes subtotal, tax and grand total in one pass.
func Totals(items []models.InvoiceLineItem, rate float64) (subtotal, tax, total float64) {
	subtotal = Subtotal(items)
	tax = Tax(subtotal, rate)
	total = Total(subtotal, tax)
	return subtotal, tax, total
}
