package repository

import (
	"context"
	"errors"

	"github.com/alkbooks/invoicing-api/internal/domain/entity"
	domainRepo "github.com/alkbooks/invoicing-api/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type gstRepository struct {
	db *gorm.DB
}

// NewGSTRepository creates a new GST repository
func NewGSTRepository(db *gorm.DB) domainRepo.GSTRepository {
	return &gstRepository{db: db}
}

func (r *gstRepository) List(ctx context.Context, sort string) ([]entity.GSTRecord, error) {
	var records []entity.GSTRecord
	query := r.db.WithContext(ctx).Model(&entity.GSTRecord{})
	if sort != "" {
		query = query.Order(sort)
	} else {
		query = query.Order("sr_no ASC")
	}
	err := query.Find(&records).Error
	return records, err
}

func (r *gstRepository) Filter(ctx context.Context, fields map[string]interface{}) ([]entity.GSTRecord, error) {
	var records []entity.GSTRecord
	err := r.db.WithContext(ctx).Where(fields).Find(&records).Error
	return records, err
}

func (r *gstRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.GSTRecord, error) {
	var record entity.GSTRecord
	err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &record, err
}

func (r *gstRepository) ListByYear(ctx context.Context, year int) ([]entity.GSTRecord, error) {
	var records []entity.GSTRecord
	err := r.db.WithContext(ctx).Where("year = ?", year).Order("month ASC, sr_no ASC").Find(&records).Error
	return records, err
}

func (r *gstRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.GSTRecord{}).Count(&count).Error
	return count, err
}

func (r *gstRepository) Create(ctx context.Context, record *entity.GSTRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *gstRepository) BulkCreate(ctx context.Context, records []entity.GSTRecord) error {
	if len(records) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(records, 100).Error
}

func (r *gstRepository) Update(ctx context.Context, record *entity.GSTRecord) error {
	return r.db.WithContext(ctx).Save(record).Error
}

func (r *gstRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.GSTRecord{}, "id = ?", id).Error
}

func (r *gstRepository) DeleteByImportBatch(ctx context.Context, batchID string) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&entity.GSTRecord{}, "import_batch_id = ?", batchID)
	return result.RowsAffected, result.Error
}

type gstMonthlyStatusRepository struct {
	db *gorm.DB
}

// NewGSTMonthlyStatusRepository creates a new GST filing status repository
func NewGSTMonthlyStatusRepository(db *gorm.DB) domainRepo.GSTMonthlyStatusRepository {
	return &gstMonthlyStatusRepository{db: db}
}

func (r *gstMonthlyStatusRepository) GetByPeriod(ctx context.Context, month, year int) (*entity.GSTMonthlyStatus, error) {
	var status entity.GSTMonthlyStatus
	err := r.db.WithContext(ctx).First(&status, "month = ? AND year = ?", month, year).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &status, err
}

func (r *gstMonthlyStatusRepository) ListByYear(ctx context.Context, year int) ([]entity.GSTMonthlyStatus, error) {
	var statuses []entity.GSTMonthlyStatus
	err := r.db.WithContext(ctx).Where("year = ?", year).Order("month ASC").Find(&statuses).Error
	return statuses, err
}

func (r *gstMonthlyStatusRepository) Create(ctx context.Context, status *entity.GSTMonthlyStatus) error {
	return r.db.WithContext(ctx).Create(status).Error
}

func (r *gstMonthlyStatusRepository) Update(ctx context.Context, status *entity.GSTMonthlyStatus) error {
	return r.db.WithContext(ctx).Save(status).Error
}
