package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SalesRecord is one imported sale line. The barcode is the global natural
// key: duplicates are rejected both within a file and against storage.
// Records are created only by imports and never mutated afterwards.
// Dates are stored as canonical YYYY-MM-DD strings, which sort correctly
// and round-trip through the import pipeline without timezone drift.
type SalesRecord struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	ImportBatchID string         `gorm:"size:50;index" json:"import_batch_id"`
	Barcode       string         `gorm:"size:100;uniqueIndex;not null" json:"barcode"`
	Description   string         `gorm:"size:255" json:"description"`
	Colour        string         `gorm:"size:100" json:"colour"`
	Size          string         `gorm:"size:50" json:"size"`
	Price         float64        `gorm:"type:numeric(12,2);not null" json:"price"`
	SaleDate      string         `gorm:"size:10;index" json:"sale_date"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new sales record
func (s *SalesRecord) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
