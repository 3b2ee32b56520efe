package repository

import (
	"context"

	"github.com/alkbooks/invoicing-api/internal/domain/entity"
	"github.com/google/uuid"
)

// GSTRepository defines the interface for GST record data operations
type GSTRepository interface {
	List(ctx context.Context, sort string) ([]entity.GSTRecord, error)
	Filter(ctx context.Context, fields map[string]interface{}) ([]entity.GSTRecord, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.GSTRecord, error)
	ListByYear(ctx context.Context, year int) ([]entity.GSTRecord, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, record *entity.GSTRecord) error
	BulkCreate(ctx context.Context, records []entity.GSTRecord) error
	Update(ctx context.Context, record *entity.GSTRecord) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByImportBatch(ctx context.Context, batchID string) (int64, error)
}

// GSTMonthlyStatusRepository defines the interface for filing status data
// operations. One row per month and year; GetByPeriod returns nil when the
// month has never been touched.
type GSTMonthlyStatusRepository interface {
	GetByPeriod(ctx context.Context, month, year int) (*entity.GSTMonthlyStatus, error)
	ListByYear(ctx context.Context, year int) ([]entity.GSTMonthlyStatus, error)
	Create(ctx context.Context, status *entity.GSTMonthlyStatus) error
	Update(ctx context.Context, status *entity.GSTMonthlyStatus) error
}
