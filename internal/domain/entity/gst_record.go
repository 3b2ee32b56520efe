package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GSTRecord is the margin-scheme tax row for one sale. Only the taxable
// margin is edited directly; purchase amount and GST amount are derived
// from it (purchase = sale - margin, gst = margin * rate).
type GSTRecord struct {
	ID             uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	ImportBatchID  string         `gorm:"size:50;index" json:"import_batch_id"`
	SrNo           int            `gorm:"index" json:"sr_no"`
	Barcode        string         `gorm:"size:100;index;not null" json:"barcode"`
	Description    string         `gorm:"size:255" json:"description"`
	Colour         string         `gorm:"size:100" json:"colour"`
	Size           string         `gorm:"size:50" json:"size"`
	SaleAmount     float64        `gorm:"type:numeric(12,2);not null" json:"sale_amount"`
	MarginTaxable  float64        `gorm:"type:numeric(12,2)" json:"margin_taxable"`
	PurchaseAmount float64        `gorm:"type:numeric(12,2)" json:"purchase_amount"`
	GSTAmount      float64        `gorm:"type:numeric(12,2)" json:"gst_amount"`
	Month          int            `gorm:"index" json:"month"`
	Year           int            `gorm:"index" json:"year"`
	SaleDate       string         `gorm:"size:10;index" json:"sale_date"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new GST record
func (g *GSTRecord) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}
