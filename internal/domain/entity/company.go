package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Company holds the issuing business profile. The company code is the
// first segment of generated invoice numbers.
type Company struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name        string         `gorm:"size:255;not null" json:"name"`
	CompanyCode string         `gorm:"size:20;not null" json:"company_code"`
	Address     string         `gorm:"type:text" json:"address"`
	GSTIN       string         `gorm:"size:20" json:"gstin"`
	StateName   string         `gorm:"size:100" json:"state_name"`
	StateCode   string         `gorm:"size:10" json:"state_code"`
	Email       string         `gorm:"size:255" json:"email"`
	Phone       string         `gorm:"size:20" json:"phone"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new company
func (c *Company) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
