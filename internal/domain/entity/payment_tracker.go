package entity

import (
	"time"

	"github.com/alkbooks/invoicing-api/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PaymentTrackerEntry tracks money received against one sale, 1:1 with
// SalesRecord by barcode. Balance and status are always recomputed from
// sale and received amounts, never stored independently of them.
type PaymentTrackerEntry struct {
	ID             uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	ImportBatchID  string             `gorm:"size:50;index" json:"import_batch_id"`
	Barcode        string             `gorm:"size:100;uniqueIndex;not null" json:"barcode"`
	SaleAmount     float64            `gorm:"type:numeric(12,2);not null" json:"sale_amount"`
	ReceivedAmount float64            `gorm:"type:numeric(12,2);default:0" json:"received_amount"`
	Balance        float64            `gorm:"type:numeric(12,2)" json:"balance"`
	Status         enum.PaymentStatus `gorm:"default:0" json:"status"`
	SaleDate       string             `gorm:"size:10;index" json:"sale_date"`
	PaymentDate    string             `gorm:"size:10" json:"payment_date"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
	DeletedAt      gorm.DeletedAt     `gorm:"index" json:"-"`
}

// ApplyPayment adds a received amount and rederives balance and status.
func (p *PaymentTrackerEntry) ApplyPayment(amount float64, paymentDate string) {
	p.ReceivedAmount += amount
	p.Balance = p.SaleAmount - p.ReceivedAmount
	p.Status = enum.DerivePaymentStatus(p.ReceivedAmount, p.SaleAmount)
	p.PaymentDate = paymentDate
}

// BeforeCreate generates a UUID before creating a new payment tracker entry
func (p *PaymentTrackerEntry) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
