package repository

import (
	"context"
	"errors"

	"github.com/alkbooks/invoicing-api/internal/domain/entity"
	"github.com/alkbooks/invoicing-api/internal/domain/enum"
	domainRepo "github.com/alkbooks/invoicing-api/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type invoiceRepository struct {
	db *gorm.DB
}

// NewInvoiceRepository creates a new invoice repository
func NewInvoiceRepository(db *gorm.DB) domainRepo.InvoiceRepository {
	return &invoiceRepository{db: db}
}

func (r *invoiceRepository) List(ctx context.Context, sort string) ([]entity.Invoice, error) {
	var invoices []entity.Invoice
	query := r.db.WithContext(ctx).Model(&entity.Invoice{})
	if sort != "" {
		query = query.Order(sort)
	} else {
		query = query.Order("invoice_date DESC")
	}
	err := query.Find(&invoices).Error
	return invoices, err
}

func (r *invoiceRepository) Filter(ctx context.Context, fields map[string]interface{}) ([]entity.Invoice, error) {
	var invoices []entity.Invoice
	err := r.db.WithContext(ctx).Where(fields).Find(&invoices).Error
	return invoices, err
}

func (r *invoiceRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	var invoice entity.Invoice
	err := r.db.WithContext(ctx).First(&invoice, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &invoice, err
}

func (r *invoiceRepository) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	var invoice entity.Invoice
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("row_index ASC")
		}).
		First(&invoice, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &invoice, err
}

func (r *invoiceRepository) ListNumbersByFinancialYear(ctx context.Context, financialYear string) ([]string, error) {
	var numbers []string
	err := r.db.WithContext(ctx).Model(&entity.Invoice{}).
		Where("financial_year = ?", financialYear).
		Pluck("invoice_number", &numbers).Error
	return numbers, err
}

func (r *invoiceRepository) ListExistingNumbers(ctx context.Context) ([]string, error) {
	var numbers []string
	err := r.db.WithContext(ctx).Model(&entity.Invoice{}).Pluck("invoice_number", &numbers).Error
	return numbers, err
}

func (r *invoiceRepository) Create(ctx context.Context, invoice *entity.Invoice) error {
	return r.db.WithContext(ctx).Create(invoice).Error
}

func (r *invoiceRepository) Update(ctx context.Context, invoice *entity.Invoice) error {
	return r.db.WithContext(ctx).Save(invoice).Error
}

func (r *invoiceRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.InvoiceStatus) error {
	return r.db.WithContext(ctx).Model(&entity.Invoice{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *invoiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Invoice{}, "id = ?", id).Error
}

type invoiceItemRepository struct {
	db *gorm.DB
}

// NewInvoiceItemRepository creates a new invoice item repository
func NewInvoiceItemRepository(db *gorm.DB) domainRepo.InvoiceItemRepository {
	return &invoiceItemRepository{db: db}
}

func (r *invoiceItemRepository) GetByInvoiceID(ctx context.Context, invoiceID uuid.UUID) ([]entity.InvoiceItem, error) {
	var items []entity.InvoiceItem
	err := r.db.WithContext(ctx).Where("invoice_id = ?", invoiceID).Order("row_index ASC").Find(&items).Error
	return items, err
}

func (r *invoiceItemRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.InvoiceItem, error) {
	var item entity.InvoiceItem
	err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &item, err
}

func (r *invoiceItemRepository) ListByBarcode(ctx context.Context, barcode string) ([]entity.InvoiceItem, error) {
	var items []entity.InvoiceItem
	err := r.db.WithContext(ctx).Where("barcode = ?", barcode).Order("row_index ASC").Find(&items).Error
	return items, err
}

func (r *invoiceItemRepository) CountByInvoiceID(ctx context.Context, invoiceID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.InvoiceItem{}).
		Where("invoice_id = ?", invoiceID).
		Count(&count).Error
	return count, err
}

func (r *invoiceItemRepository) Create(ctx context.Context, item *entity.InvoiceItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *invoiceItemRepository) BulkCreate(ctx context.Context, items []entity.InvoiceItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(items, 100).Error
}

func (r *invoiceItemRepository) Update(ctx context.Context, item *entity.InvoiceItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *invoiceItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.InvoiceItem{}, "id = ?", id).Error
}

func (r *invoiceItemRepository) DeleteByInvoiceID(ctx context.Context, invoiceID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.InvoiceItem{}, "invoice_id = ?", invoiceID).Error
}
