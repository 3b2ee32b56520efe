package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Client represents a buying party. Clients are looked up by fuzzy
// party-name match during imports and created on first unmatched reference.
type Client struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	PartyName string         `gorm:"size:255;not null;index" json:"party_name"`
	Address   string         `gorm:"type:text" json:"address"`
	GSTIN     string         `gorm:"size:20" json:"gstin"`
	StateName string         `gorm:"size:100" json:"state_name"`
	StateCode string         `gorm:"size:10" json:"state_code"`
	Email     string         `gorm:"size:255" json:"email"`
	Phone     string         `gorm:"size:20" json:"phone"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new client
func (c *Client) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
