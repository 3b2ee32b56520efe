package repository

import (
	"context"

	"github.com/alkbooks/invoicing-api/internal/domain/entity"
	"github.com/alkbooks/invoicing-api/internal/domain/enum"
	"github.com/google/uuid"
)

// InvoiceRepository defines the interface for invoice data operations
type InvoiceRepository interface {
	List(ctx context.Context, sort string) ([]entity.Invoice, error)
	Filter(ctx context.Context, fields map[string]interface{}) ([]entity.Invoice, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error)
	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Invoice, error)
	// ListNumbersByFinancialYear feeds sequential number derivation; it only
	// returns the invoice number column.
	ListNumbersByFinancialYear(ctx context.Context, financialYear string) ([]string, error)
	ListExistingNumbers(ctx context.Context) ([]string, error)
	Create(ctx context.Context, invoice *entity.Invoice) error
	Update(ctx context.Context, invoice *entity.Invoice) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.InvoiceStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// InvoiceItemRepository defines the interface for invoice item data operations
type InvoiceItemRepository interface {
	GetByInvoiceID(ctx context.Context, invoiceID uuid.UUID) ([]entity.InvoiceItem, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.InvoiceItem, error)
	ListByBarcode(ctx context.Context, barcode string) ([]entity.InvoiceItem, error)
	CountByInvoiceID(ctx context.Context, invoiceID uuid.UUID) (int64, error)
	Create(ctx context.Context, item *entity.InvoiceItem) error
	BulkCreate(ctx context.Context, items []entity.InvoiceItem) error
	Update(ctx context.Context, item *entity.InvoiceItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByInvoiceID(ctx context.Context, invoiceID uuid.UUID) error
}
