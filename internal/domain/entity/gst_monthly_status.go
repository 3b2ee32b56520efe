package entity

import (
	"time"

	"github.com/alkbooks/invoicing-api/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GSTMonthlyStatus records the filing progress of one calendar month's
// GST return. At most one row exists per month and year.
type GSTMonthlyStatus struct {
	ID        uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	Month     int               `gorm:"not null;uniqueIndex:idx_gst_status_period" json:"month"`
	Year      int               `gorm:"not null;uniqueIndex:idx_gst_status_period" json:"year"`
	Status    enum.FilingStatus `gorm:"default:0" json:"status"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
	DeletedAt gorm.DeletedAt    `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new monthly status
func (g *GSTMonthlyStatus) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}
