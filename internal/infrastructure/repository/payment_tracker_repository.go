package repository

import (
	"context"
	"errors"

	"github.com/alkbooks/invoicing-api/internal/domain/entity"
	"github.com/alkbooks/invoicing-api/internal/domain/enum"
	domainRepo "github.com/alkbooks/invoicing-api/internal/domain/repository"
	"github.com/alkbooks/invoicing-api/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type paymentTrackerRepository struct {
	db *gorm.DB
}

// NewPaymentTrackerRepository creates a new payment tracker repository
func NewPaymentTrackerRepository(db *gorm.DB) domainRepo.PaymentTrackerRepository {
	return &paymentTrackerRepository{db: db}
}

func (r *paymentTrackerRepository) List(ctx context.Context, sort string) ([]entity.PaymentTrackerEntry, error) {
	var entries []entity.PaymentTrackerEntry
	query := r.db.WithContext(ctx).Model(&entity.PaymentTrackerEntry{})
	if sort != "" {
		query = query.Order(sort)
	} else {
		query = query.Order("created_at DESC")
	}
	err := query.Find(&entries).Error
	return entries, err
}

func (r *paymentTrackerRepository) ListPaged(ctx context.Context, params *pagination.PaginationParams, sort string) ([]entity.PaymentTrackerEntry, int64, error) {
	params.Validate()

	var total int64
	if err := r.db.WithContext(ctx).Model(&entity.PaymentTrackerEntry{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if sort == "" {
		sort = "sale_date DESC"
	}
	var entries []entity.PaymentTrackerEntry
	err := r.db.WithContext(ctx).Model(&entity.PaymentTrackerEntry{}).
		Order(sort).
		Offset(params.Offset()).
		Limit(params.PerPage).
		Find(&entries).Error
	return entries, total, err
}

func (r *paymentTrackerRepository) Filter(ctx context.Context, fields map[string]interface{}) ([]entity.PaymentTrackerEntry, error) {
	var entries []entity.PaymentTrackerEntry
	err := r.db.WithContext(ctx).Where(fields).Find(&entries).Error
	return entries, err
}

func (r *paymentTrackerRepository) GetByBarcode(ctx context.Context, barcode string) (*entity.PaymentTrackerEntry, error) {
	var entry entity.PaymentTrackerEntry
	err := r.db.WithContext(ctx).First(&entry, "barcode = ?", barcode).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &entry, err
}

func (r *paymentTrackerRepository) ListByStatus(ctx context.Context, status enum.PaymentStatus) ([]entity.PaymentTrackerEntry, error) {
	var entries []entity.PaymentTrackerEntry
	err := r.db.WithContext(ctx).Where("status = ?", status).Order("sale_date DESC").Find(&entries).Error
	return entries, err
}

func (r *paymentTrackerRepository) Create(ctx context.Context, entry *entity.PaymentTrackerEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *paymentTrackerRepository) BulkCreate(ctx context.Context, entries []entity.PaymentTrackerEntry) error {
	if len(entries) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(entries, 100).Error
}

func (r *paymentTrackerRepository) Update(ctx context.Context, entry *entity.PaymentTrackerEntry) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

func (r *paymentTrackerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.PaymentTrackerEntry{}, "id = ?", id).Error
}

func (r *paymentTrackerRepository) DeleteByImportBatch(ctx context.Context, batchID string) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&entity.PaymentTrackerEntry{}, "import_batch_id = ?", batchID)
	return result.RowsAffected, result.Error
}
