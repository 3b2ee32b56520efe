package repository

import (
	"context"

	"github.com/alkbooks/invoicing-api/internal/domain/entity"
	"github.com/alkbooks/invoicing-api/internal/domain/enum"
	"github.com/alkbooks/invoicing-api/pkg/pagination"
	"github.com/google/uuid"
)

// PaymentTrackerRepository defines the interface for payment tracker data operations
type PaymentTrackerRepository interface {
	List(ctx context.Context, sort string) ([]entity.PaymentTrackerEntry, error)
	ListPaged(ctx context.Context, params *pagination.PaginationParams, sort string) ([]entity.PaymentTrackerEntry, int64, error)
	Filter(ctx context.Context, fields map[string]interface{}) ([]entity.PaymentTrackerEntry, error)
	GetByBarcode(ctx context.Context, barcode string) (*entity.PaymentTrackerEntry, error)
	ListByStatus(ctx context.Context, status enum.PaymentStatus) ([]entity.PaymentTrackerEntry, error)
	Create(ctx context.Context, entry *entity.PaymentTrackerEntry) error
	BulkCreate(ctx context.Context, entries []entity.PaymentTrackerEntry) error
	Update(ctx context.Context, entry *entity.PaymentTrackerEntry) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByImportBatch(ctx context.Context, batchID string) (int64, error)
}
