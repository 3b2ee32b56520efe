package entity

import (
	"time"

	"github.com/alkbooks/invoicing-api/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Invoice is a tax invoice with a denormalized snapshot of the client at
// issue time. Invoice numbers follow "<companyCode>/<financialYear>/<seq>"
// and are unique across the system.
type Invoice struct {
	ID              uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceNumber   string             `gorm:"size:100;uniqueIndex;not null" json:"invoice_number"`
	RefNumber       string             `gorm:"size:100" json:"ref_number"`
	InvoiceDate     string             `gorm:"size:10;index" json:"invoice_date"`
	FinancialYear   string             `gorm:"size:5;index" json:"financial_year"`
	ClientID        uuid.UUID          `gorm:"type:uuid;index" json:"client_id"`
	ClientName      string             `gorm:"size:255" json:"client_name"`
	ClientAddress   string             `gorm:"type:text" json:"client_address"`
	ClientGSTIN     string             `gorm:"size:20" json:"client_gstin"`
	ClientStateName string             `gorm:"size:100" json:"client_state_name"`
	ClientStateCode string             `gorm:"size:10" json:"client_state_code"`
	TotalQuantity   float64            `gorm:"type:numeric(12,2)" json:"total_quantity"`
	GrandTotal      float64            `gorm:"type:numeric(12,2)" json:"grand_total"`
	AmountInWords   string             `gorm:"type:text" json:"amount_in_words"`
	DeclarationText string             `gorm:"type:text" json:"declaration_text"`
	Status          enum.InvoiceStatus `gorm:"default:0" json:"status"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
	DeletedAt       gorm.DeletedAt     `gorm:"index" json:"-"`

	// Relationships
	Client *Client       `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Items  []InvoiceItem `gorm:"foreignKey:InvoiceID" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new invoice
func (i *Invoice) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// InvoiceItem is one line of an invoice, exclusively owned by it.
// RowIndex preserves the source file order for display and printing.
type InvoiceItem struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"invoice_id"`
	RowIndex    int            `gorm:"not null" json:"row_index"`
	Barcode     string         `gorm:"size:100" json:"barcode"`
	Description string         `gorm:"size:255" json:"description"`
	HSNCode     string         `gorm:"size:20" json:"hsn_code"`
	Quantity    float64        `gorm:"type:numeric(12,2);default:1" json:"quantity"`
	Unit        string         `gorm:"size:20" json:"unit"`
	Rate        float64        `gorm:"type:numeric(12,2)" json:"rate"`
	Amount      float64        `gorm:"type:numeric(12,2)" json:"amount"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new invoice item
func (i *InvoiceItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
