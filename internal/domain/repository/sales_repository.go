package repository

import (
	"context"

	"github.com/alkbooks/invoicing-api/internal/domain/entity"
	"github.com/alkbooks/invoicing-api/pkg/pagination"
	"github.com/google/uuid"
)

// SalesRepository defines the interface for sales record data operations.
// Filter applies equality predicates ANDed together, mirroring the remote
// collaborator contract the import pipeline was written against.
type SalesRepository interface {
	List(ctx context.Context, sort string) ([]entity.SalesRecord, error)
	ListPaged(ctx context.Context, params *pagination.PaginationParams, sort string) ([]entity.SalesRecord, int64, error)
	Filter(ctx context.Context, fields map[string]interface{}) ([]entity.SalesRecord, error)
	ListBarcodes(ctx context.Context) ([]string, error)
	Create(ctx context.Context, record *entity.SalesRecord) error
	BulkCreate(ctx context.Context, records []entity.SalesRecord) error
	Update(ctx context.Context, record *entity.SalesRecord) error
	Delete(ctx context.Context, id uuid.UUID) error
	// DeleteByImportBatch removes every record written by one import call.
	// This is the manual undo path keyed by batch identity.
	DeleteByImportBatch(ctx context.Context, batchID string) (int64, error)
}
