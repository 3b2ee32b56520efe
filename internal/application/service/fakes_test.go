package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/alkbooks/invoicing-api/internal/domain/entity"
	"github.com/alkbooks/invoicing-api/internal/domain/enum"
	"github.com/alkbooks/invoicing-api/pkg/pagination"
)

// In-memory repository fakes. They keep insertion order, which the
// grouping and numbering tests rely on.

type fakeSalesRepo struct {
	records []entity.SalesRecord
}

func (f *fakeSalesRepo) List(ctx context.Context, sort string) ([]entity.SalesRecord, error) {
	return f.records, nil
}

func (f *fakeSalesRepo) ListPaged(ctx context.Context, params *pagination.PaginationParams, sort string) ([]entity.SalesRecord, int64, error) {
	return f.records, int64(len(f.records)), nil
}

func (f *fakeSalesRepo) Filter(ctx context.Context, fields map[string]interface{}) ([]entity.SalesRecord, error) {
	var out []entity.SalesRecord
	for _, r := range f.records {
		if batch, ok := fields["import_batch_id"]; ok && r.ImportBatchID != batch.(string) {
			continue
		}
		if id, ok := fields["id"]; ok && r.ID != id.(uuid.UUID) {
			continue
		}
		if bc, ok := fields["barcode"]; ok && r.Barcode != bc.(string) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeSalesRepo) ListBarcodes(ctx context.Context) ([]string, error) {
	barcodes := make([]string, 0, len(f.records))
	for _, r := range f.records {
		barcodes = append(barcodes, r.Barcode)
	}
	return barcodes, nil
}

func (f *fakeSalesRepo) Create(ctx context.Context, record *entity.SalesRecord) error {
	record.ID = uuid.New()
	f.records = append(f.records, *record)
	return nil
}

func (f *fakeSalesRepo) BulkCreate(ctx context.Context, records []entity.SalesRecord) error {
	for i := range records {
		records[i].ID = uuid.New()
		f.records = append(f.records, records[i])
	}
	return nil
}

func (f *fakeSalesRepo) Update(ctx context.Context, record *entity.SalesRecord) error {
	for i := range f.records {
		if f.records[i].ID == record.ID {
			f.records[i] = *record
		}
	}
	return nil
}

func (f *fakeSalesRepo) Delete(ctx context.Context, id uuid.UUID) error {
	out := make([]entity.SalesRecord, 0, len(f.records))
	for _, r := range f.records {
		if r.ID != id {
			out = append(out, r)
		}
	}
	f.records = out
	return nil
}

func (f *fakeSalesRepo) DeleteByImportBatch(ctx context.Context, batchID string) (int64, error) {
	var deleted int64
	out := make([]entity.SalesRecord, 0, len(f.records))
	for _, r := range f.records {
		if r.ImportBatchID == batchID {
			deleted++
			continue
		}
		out = append(out, r)
	}
	f.records = out
	return deleted, nil
}

type fakeTrackerRepo struct {
	entries []entity.PaymentTrackerEntry
}

func (f *fakeTrackerRepo) List(ctx context.Context, sort string) ([]entity.PaymentTrackerEntry, error) {
	return f.entries, nil
}

func (f *fakeTrackerRepo) ListPaged(ctx context.Context, params *pagination.PaginationParams, sort string) ([]entity.PaymentTrackerEntry, int64, error) {
	return f.entries, int64(len(f.entries)), nil
}

func (f *fakeTrackerRepo) Filter(ctx context.Context, fields map[string]interface{}) ([]entity.PaymentTrackerEntry, error) {
	return f.entries, nil
}

func (f *fakeTrackerRepo) GetByBarcode(ctx context.Context, barcode string) (*entity.PaymentTrackerEntry, error) {
	for i := range f.entries {
		if f.entries[i].Barcode == barcode {
			return &f.entries[i], nil
		}
	}
	return nil, nil
}

func (f *fakeTrackerRepo) ListByStatus(ctx context.Context, status enum.PaymentStatus) ([]entity.PaymentTrackerEntry, error) {
	var out []entity.PaymentTrackerEntry
	for _, e := range f.entries {
		if e.Status == status {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeTrackerRepo) Create(ctx context.Context, entry *entity.PaymentTrackerEntry) error {
	entry.ID = uuid.New()
	f.entries = append(f.entries, *entry)
	return nil
}

func (f *fakeTrackerRepo) BulkCreate(ctx context.Context, entries []entity.PaymentTrackerEntry) error {
	for i := range entries {
		entries[i].ID = uuid.New()
		f.entries = append(f.entries, entries[i])
	}
	return nil
}

func (f *fakeTrackerRepo) Update(ctx context.Context, entry *entity.PaymentTrackerEntry) error {
	for i := range f.entries {
		if f.entries[i].ID == entry.ID {
			f.entries[i] = *entry
		}
	}
	return nil
}

func (f *fakeTrackerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	out := make([]entity.PaymentTrackerEntry, 0, len(f.entries))
	for _, e := range f.entries {
		if e.ID != id {
			out = append(out, e)
		}
	}
	f.entries = out
	return nil
}

func (f *fakeTrackerRepo) DeleteByImportBatch(ctx context.Context, batchID string) (int64, error) {
	var deleted int64
	out := make([]entity.PaymentTrackerEntry, 0, len(f.entries))
	for _, e := range f.entries {
		if e.ImportBatchID == batchID {
			deleted++
			continue
		}
		out = append(out, e)
	}
	f.entries = out
	return deleted, nil
}

type fakeGSTRepo struct {
	records []entity.GSTRecord
}

func (f *fakeGSTRepo) List(ctx context.Context, sort string) ([]entity.GSTRecord, error) {
	return f.records, nil
}

func (f *fakeGSTRepo) Filter(ctx context.Context, fields map[string]interface{}) ([]entity.GSTRecord, error) {
	var out []entity.GSTRecord
	for _, r := range f.records {
		if m, ok := fields["month"]; ok && r.Month != m.(int) {
			continue
		}
		if y, ok := fields["year"]; ok && r.Year != y.(int) {
			continue
		}
		if bc, ok := fields["barcode"]; ok && r.Barcode != bc.(string) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeGSTRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.GSTRecord, error) {
	for i := range f.records {
		if f.records[i].ID == id {
			return &f.records[i], nil
		}
	}
	return nil, nil
}

func (f *fakeGSTRepo) ListByYear(ctx context.Context, year int) ([]entity.GSTRecord, error) {
	var out []entity.GSTRecord
	for _, r := range f.records {
		if r.Year == year {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeGSTRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.records)), nil
}

func (f *fakeGSTRepo) Create(ctx context.Context, record *entity.GSTRecord) error {
	record.ID = uuid.New()
	f.records = append(f.records, *record)
	return nil
}

func (f *fakeGSTRepo) BulkCreate(ctx context.Context, records []entity.GSTRecord) error {
	for i := range records {
		records[i].ID = uuid.New()
		f.records = append(f.records, records[i])
	}
	return nil
}

func (f *fakeGSTRepo) Update(ctx context.Context, record *entity.GSTRecord) error {
	for i := range f.records {
		if f.records[i].ID == record.ID {
			f.records[i] = *record
		}
	}
	return nil
}

func (f *fakeGSTRepo) Delete(ctx context.Context, id uuid.UUID) error {
	out := make([]entity.GSTRecord, 0, len(f.records))
	for _, r := range f.records {
		if r.ID != id {
			out = append(out, r)
		}
	}
	f.records = out
	return nil
}

func (f *fakeGSTRepo) DeleteByImportBatch(ctx context.Context, batchID string) (int64, error) {
	var deleted int64
	out := make([]entity.GSTRecord, 0, len(f.records))
	for _, r := range f.records {
		if r.ImportBatchID == batchID {
			deleted++
			continue
		}
		out = append(out, r)
	}
	f.records = out
	return deleted, nil
}

type fakeInvoiceRepo struct {
	invoices []entity.Invoice
}

func (f *fakeInvoiceRepo) List(ctx context.Context, sort string) ([]entity.Invoice, error) {
	return f.invoices, nil
}

func (f *fakeInvoiceRepo) Filter(ctx context.Context, fields map[string]interface{}) ([]entity.Invoice, error) {
	var out []entity.Invoice
	for _, inv := range f.invoices {
		if fy, ok := fields["financial_year"]; ok && inv.FinancialYear != fy.(string) {
			continue
		}
		out = append(out, inv)
	}
	return out, nil
}

func (f *fakeInvoiceRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	for i := range f.invoices {
		if f.invoices[i].ID == id {
			return &f.invoices[i], nil
		}
	}
	return nil, nil
}

func (f *fakeInvoiceRepo) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	return f.GetByID(ctx, id)
}

func (f *fakeInvoiceRepo) ListNumbersByFinancialYear(ctx context.Context, financialYear string) ([]string, error) {
	var out []string
	for _, inv := range f.invoices {
		if inv.FinancialYear == financialYear {
			out = append(out, inv.InvoiceNumber)
		}
	}
	return out, nil
}

func (f *fakeInvoiceRepo) ListExistingNumbers(ctx context.Context) ([]string, error) {
	out := make([]string, 0, len(f.invoices))
	for _, inv := range f.invoices {
		out = append(out, inv.InvoiceNumber)
	}
	return out, nil
}

func (f *fakeInvoiceRepo) Create(ctx context.Context, invoice *entity.Invoice) error {
	invoice.ID = uuid.New()
	f.invoices = append(f.invoices, *invoice)
	return nil
}

func (f *fakeInvoiceRepo) Update(ctx context.Context, invoice *entity.Invoice) error {
	for i := range f.invoices {
		if f.invoices[i].ID == invoice.ID {
			f.invoices[i] = *invoice
		}
	}
	return nil
}

func (f *fakeInvoiceRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.InvoiceStatus) error {
	for i := range f.invoices {
		if f.invoices[i].ID == id {
			f.invoices[i].Status = status
		}
	}
	return nil
}

func (f *fakeInvoiceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	out := make([]entity.Invoice, 0, len(f.invoices))
	for _, inv := range f.invoices {
		if inv.ID != id {
			out = append(out, inv)
		}
	}
	f.invoices = out
	return nil
}

type fakeItemRepo struct {
	items []entity.InvoiceItem
}

func (f *fakeItemRepo) GetByInvoiceID(ctx context.Context, invoiceID uuid.UUID) ([]entity.InvoiceItem, error) {
	var out []entity.InvoiceItem
	for _, item := range f.items {
		if item.InvoiceID == invoiceID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (f *fakeItemRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.InvoiceItem, error) {
	for i := range f.items {
		if f.items[i].ID == id {
			return &f.items[i], nil
		}
	}
	return nil, nil
}

func (f *fakeItemRepo) ListByBarcode(ctx context.Context, barcode string) ([]entity.InvoiceItem, error) {
	var out []entity.InvoiceItem
	for _, item := range f.items {
		if item.Barcode == barcode {
			out = append(out, item)
		}
	}
	return out, nil
}

func (f *fakeItemRepo) CountByInvoiceID(ctx context.Context, invoiceID uuid.UUID) (int64, error) {
	items, _ := f.GetByInvoiceID(ctx, invoiceID)
	return int64(len(items)), nil
}

func (f *fakeItemRepo) Create(ctx context.Context, item *entity.InvoiceItem) error {
	item.ID = uuid.New()
	f.items = append(f.items, *item)
	return nil
}

func (f *fakeItemRepo) BulkCreate(ctx context.Context, items []entity.InvoiceItem) error {
	for i := range items {
		items[i].ID = uuid.New()
		f.items = append(f.items, items[i])
	}
	return nil
}

func (f *fakeItemRepo) Update(ctx context.Context, item *entity.InvoiceItem) error {
	for i := range f.items {
		if f.items[i].ID == item.ID {
			f.items[i] = *item
		}
	}
	return nil
}

func (f *fakeItemRepo) Delete(ctx context.Context, id uuid.UUID) error {
	out := make([]entity.InvoiceItem, 0, len(f.items))
	for _, item := range f.items {
		if item.ID != id {
			out = append(out, item)
		}
	}
	f.items = out
	return nil
}

func (f *fakeItemRepo) DeleteByInvoiceID(ctx context.Context, invoiceID uuid.UUID) error {
	out := make([]entity.InvoiceItem, 0, len(f.items))
	for _, item := range f.items {
		if item.InvoiceID != invoiceID {
			out = append(out, item)
		}
	}
	f.items = out
	return nil
}

type fakeClientRepo struct {
	clients []entity.Client
}

func (f *fakeClientRepo) List(ctx context.Context, sort string) ([]entity.Client, error) {
	return f.clients, nil
}

func (f *fakeClientRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Client, error) {
	for i := range f.clients {
		if f.clients[i].ID == id {
			return &f.clients[i], nil
		}
	}
	return nil, nil
}

func (f *fakeClientRepo) Create(ctx context.Context, client *entity.Client) error {
	client.ID = uuid.New()
	f.clients = append(f.clients, *client)
	return nil
}

func (f *fakeClientRepo) Update(ctx context.Context, client *entity.Client) error {
	for i := range f.clients {
		if f.clients[i].ID == client.ID {
			f.clients[i] = *client
		}
	}
	return nil
}

func (f *fakeClientRepo) Delete(ctx context.Context, id uuid.UUID) error {
	out := make([]entity.Client, 0, len(f.clients))
	for _, c := range f.clients {
		if c.ID != id {
			out = append(out, c)
		}
	}
	f.clients = out
	return nil
}

type fakeCompanyRepo struct {
	company *entity.Company
}

func (f *fakeCompanyRepo) GetDefault(ctx context.Context) (*entity.Company, error) {
	return f.company, nil
}

func (f *fakeCompanyRepo) Create(ctx context.Context, company *entity.Company) error {
	company.ID = uuid.New()
	f.company = company
	return nil
}

func (f *fakeCompanyRepo) Update(ctx context.Context, company *entity.Company) error {
	f.company = company
	return nil
}

type fakeGSTStatusRepo struct {
	statuses []entity.GSTMonthlyStatus
}

func (f *fakeGSTStatusRepo) GetByPeriod(ctx context.Context, month, year int) (*entity.GSTMonthlyStatus, error) {
	for i := range f.statuses {
		if f.statuses[i].Month == month && f.statuses[i].Year == year {
			return &f.statuses[i], nil
		}
	}
	return nil, nil
}

func (f *fakeGSTStatusRepo) ListByYear(ctx context.Context, year int) ([]entity.GSTMonthlyStatus, error) {
	var out []entity.GSTMonthlyStatus
	for _, st := range f.statuses {
		if st.Year == year {
			out = append(out, st)
		}
	}
	return out, nil
}

func (f *fakeGSTStatusRepo) Create(ctx context.Context, status *entity.GSTMonthlyStatus) error {
	status.ID = uuid.New()
	f.statuses = append(f.statuses, *status)
	return nil
}

func (f *fakeGSTStatusRepo) Update(ctx context.Context, status *entity.GSTMonthlyStatus) error {
	for i := range f.statuses {
		if f.statuses[i].ID == status.ID {
			f.statuses[i] = *status
		}
	}
	return nil
}
