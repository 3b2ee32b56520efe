package repository

import (
	"context"

	"github.com/alkbooks/invoicing-api/internal/domain/entity"
	"github.com/google/uuid"
)

// ClientRepository defines the interface for client data operations
type ClientRepository interface {
	List(ctx context.Context, sort string) ([]entity.Client, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Client, error)
	Create(ctx context.Context, client *entity.Client) error
	Update(ctx context.Context, client *entity.Client) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// CompanyRepository defines the interface for company profile data operations
type CompanyRepository interface {
	// GetDefault returns the first configured company, or nil when none exists.
	GetDefault(ctx context.Context) (*entity.Company, error)
	Create(ctx context.Context, company *entity.Company) error
	Update(ctx context.Context, company *entity.Company) error
}
