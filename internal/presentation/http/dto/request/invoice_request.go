package request

import "github.com/google/uuid"

// InvoiceItemRequest represents one line of an invoice creation request
type InvoiceItemRequest struct {
	Barcode     string   `json:"barcode" binding:"omitempty,max=100"`
	Description string   `json:"description" binding:"required,max=255"`
	HSNCode     string   `json:"hsn_code" binding:"omitempty,max=20"`
	Quantity    float64  `json:"quantity" binding:"omitempty,min=0"`
	Rate        float64  `json:"rate" binding:"required,gt=0"`
	Amount      *float64 `json:"amount" binding:"omitempty,gt=0"`
}

// CreateInvoiceRequest represents an invoice creation request. Either
// client_id or client_name must be supplied; the invoice number is derived
// when absent.
type CreateInvoiceRequest struct {
	InvoiceNumber string               `json:"invoice_number" binding:"omitempty,max=100"`
	RefNumber     string               `json:"ref_number" binding:"omitempty,max=100"`
	InvoiceDate   string               `json:"invoice_date" binding:"required"`
	ClientID      *uuid.UUID           `json:"client_id"`
	ClientName    string               `json:"client_name" binding:"omitempty,max=255"`
	Items         []InvoiceItemRequest `json:"items" binding:"required,min=1,dive"`
}

// UpdateInvoiceStatusRequest represents an invoice status change request
type UpdateInvoiceStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=draft sent paid cancelled"`
}

// UpdateInvoiceNumberRequest renames an invoice. The reference number is
// kept in step with the invoice number.
type UpdateInvoiceNumberRequest struct {
	InvoiceNumber string `json:"invoice_number" binding:"required,max=100"`
}

// GenerateInvoicesRequest asks for draft invoices from an imported batch
type GenerateInvoicesRequest struct {
	ClientName string `json:"client_name" binding:"required,max=255"`
}
