package repository

import (
	"context"

	"github.com/alkbooks/invoicing-api/internal/domain/entity"
	domainRepo "github.com/alkbooks/invoicing-api/internal/domain/repository"
	"github.com/alkbooks/invoicing-api/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type salesRepository struct {
	db *gorm.DB
}

// NewSalesRepository creates a new sales repository
func NewSalesRepository(db *gorm.DB) domainRepo.SalesRepository {
	return &salesRepository{db: db}
}

func (r *salesRepository) List(ctx context.Context, sort string) ([]entity.SalesRecord, error) {
	var records []entity.SalesRecord
	query := r.db.WithContext(ctx).Model(&entity.SalesRecord{})
	if sort != "" {
		query = query.Order(sort)
	} else {
		query = query.Order("created_at DESC")
	}
	err := query.Find(&records).Error
	return records, err
}

func (r *salesRepository) ListPaged(ctx context.Context, params *pagination.PaginationParams, sort string) ([]entity.SalesRecord, int64, error) {
	params.Validate()

	var total int64
	if err := r.db.WithContext(ctx).Model(&entity.SalesRecord{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if sort == "" {
		sort = "created_at DESC"
	}
	var records []entity.SalesRecord
	err := r.db.WithContext(ctx).Model(&entity.SalesRecord{}).
		Order(sort).
		Offset(params.Offset()).
		Limit(params.PerPage).
		Find(&records).Error
	return records, total, err
}

func (r *salesRepository) Filter(ctx context.Context, fields map[string]interface{}) ([]entity.SalesRecord, error) {
	var records []entity.SalesRecord
	err := r.db.WithContext(ctx).Where(fields).Find(&records).Error
	return records, err
}

func (r *salesRepository) ListBarcodes(ctx context.Context) ([]string, error) {
	var barcodes []string
	err := r.db.WithContext(ctx).Model(&entity.SalesRecord{}).Pluck("barcode", &barcodes).Error
	return barcodes, err
}

func (r *salesRepository) Create(ctx context.Context, record *entity.SalesRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *salesRepository) BulkCreate(ctx context.Context, records []entity.SalesRecord) error {
	if len(records) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(records, 100).Error
}

func (r *salesRepository) Update(ctx context.Context, record *entity.SalesRecord) error {
	return r.db.WithContext(ctx).Save(record).Error
}

func (r *salesRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.SalesRecord{}, "id = ?", id).Error
}

func (r *salesRepository) DeleteByImportBatch(ctx context.Context, batchID string) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&entity.SalesRecord{}, "import_batch_id = ?", batchID)
	return result.RowsAffected, result.Error
}
