package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InvoiceLineItem is one billable row of an invoice.
type InvoiceLineItem struct {
	Description string  `bson:"description" json:"description"`
	Quantity    float64 `bson:"quantity" json:"quantity"`
	Rate        float64 `bson:"rate" json:"rate"`
}

// CompanyInfo identifies the issuing company as printed on every invoice.
type CompanyInfo struct {
	Name       string `bson:"name" json:"name"`
	GSTIN      string `bson:"gstin" json:"gstin"`
	VendorCode string `bson:"vendor_code" json:"vendorCode"`
	UAN        string `bson:"uan" json:"uan"`
	Address    string `bson:"address" json:"address"`
}

// Invoice is the persisted snapshot of a generated invoice. Once saved it is
// never updated; a correction is a new invoice.
type Invoice struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	InvoiceNo       string             `bson:"invoice_no" json:"invoiceNo"`
	Date            string             `bson:"date" json:"date"`
	PONumber        string             `bson:"po_number" json:"poNumber"`
	PODate          string             `bson:"po_date" json:"poDate"`
	ModeOfTransport string             `bson:"mode_of_transport" json:"modeOfTransport"`
	VehicleNo       string             `bson:"vehicle_no" json:"vehicleNo"`
	PlaceOfSupply   string             `bson:"place_of_supply" json:"placeOfSupply"`
	ClientName      string             `bson:"client_name" json:"clientName"`
	BillingAddress  string             `bson:"billing_address" json:"billingAddress"`
	ShippingAddress string             `bson:"shipping_address" json:"shippingAddress"`
	Notes           string             `bson:"notes" json:"notes"`
	Items           []InvoiceLineItem  `bson:"items" json:"items"`
	Subtotal        float64            `bson:"subtotal" json:"subtotal"`
	GST             float64            `bson:"gst" json:"gst"`
	Total           float64            `bson:"total" json:"total"`
	Company         CompanyInfo        `bson:"company_info" json:"companyInfo"`
	CreatedAt       time.Time          `bson:"created_at" json:"createdAt"`
}
