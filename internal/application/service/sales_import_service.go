package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/alkbooks/invoicing-api/internal/config"
	"github.com/alkbooks/invoicing-api/internal/domain/entity"
	"github.com/alkbooks/invoicing-api/internal/domain/enum"
	"github.com/alkbooks/invoicing-api/internal/domain/repository"
	"github.com/alkbooks/invoicing-api/internal/infrastructure/extract"
	"github.com/alkbooks/invoicing-api/pkg/apperror"
	"github.com/alkbooks/invoicing-api/pkg/dateparse"
	"github.com/alkbooks/invoicing-api/pkg/pagination"
)

// SalesImportService runs the sales spreadsheet import: extract, map,
// validate the whole batch, then write SalesRecord, PaymentTrackerEntry and
// GSTRecord rows together and reconcile them. Validation always finishes
// before the first write; a batch with any error writes nothing.
type SalesImportService struct {
	salesRepo   repository.SalesRepository
	trackerRepo repository.PaymentTrackerRepository
	gstRepo     repository.GSTRepository
	invoiceSvc  *InvoiceService
	deriver     *Deriver
	cfg         config.InvoicingConfig
}

func NewSalesImportService(
	salesRepo repository.SalesRepository,
	trackerRepo repository.PaymentTrackerRepository,
	gstRepo repository.GSTRepository,
	invoiceSvc *InvoiceService,
	deriver *Deriver,
	cfg config.InvoicingConfig,
) *SalesImportService {
	return &SalesImportService{
		salesRepo:   salesRepo,
		trackerRepo: trackerRepo,
		gstRepo:     gstRepo,
		invoiceSvc:  invoiceSvc,
		deriver:     deriver,
		cfg:         cfg,
	}
}

// SalesImportResult summarizes a completed sales import
type SalesImportResult struct {
	BatchID    string  `json:"batch_id"`
	RowCount   int     `json:"row_count"`
	TotalSales float64 `json:"total_sales"`
}

// ImportPreview summarizes an import dry run: the resolved column mapping
// and the validation outcome, with nothing written.
type ImportPreview struct {
	Mapping       FieldMapping        `json:"mapping"`
	MissingFields []string            `json:"missing_fields,omitempty"`
	TotalRows     int                 `json:"total_rows"`
	ValidRows     int                 `json:"valid_rows"`
	Errors        []apperror.RowError `json:"errors,omitempty"`
}

// salesRow is one validated sales import row in canonical fields
type salesRow struct {
	RowIndex    int
	Barcode     string
	Description string
	Colour      string
	Size        string
	Price       float64
	Margin      float64
	SaleDate    string
}

func newBatchID(prefix string) string {
	return fmt.Sprintf("%s_%d", prefix, time.Now().UnixMilli())
}

// Preview extracts and validates the file without writing anything.
func (s *SalesImportService) Preview(ctx context.Context, r io.Reader, filename string) (*ImportPreview, error) {
	rows, mapping, missing, err := s.prepare(ctx, r, filename)
	if err != nil {
		return nil, err
	}
	preview := &ImportPreview{Mapping: mapping, MissingFields: missing, TotalRows: len(rows)}
	if len(missing) > 0 {
		return preview, nil
	}

	valid, rowErrors, err := s.validate(ctx, rows, mapping)
	if err != nil {
		return nil, err
	}
	preview.ValidRows = len(valid)
	preview.Errors = rowErrors
	return preview, nil
}

// Import runs the full pipeline and returns the batch summary.
func (s *SalesImportService) Import(ctx context.Context, r io.Reader, filename string) (*SalesImportResult, error) {
	rows, mapping, missing, err := s.prepare(ctx, r, filename)
	if err != nil {
		return nil, err
	}
	if len(missing) > 0 {
		return nil, apperror.NewMappingError(missing)
	}

	valid, rowErrors, err := s.validate(ctx, rows, mapping)
	if err != nil {
		return nil, err
	}
	if len(rowErrors) > 0 {
		return nil, apperror.NewRowValidationError(rowErrors)
	}

	batchID := newBatchID("IMPORT")

	srNo, err := s.gstRepo.Count(ctx)
	if err != nil {
		return nil, apperror.NewTransportError(err)
	}

	sales := make([]entity.SalesRecord, 0, len(valid))
	tracker := make([]entity.PaymentTrackerEntry, 0, len(valid))
	gst := make([]entity.GSTRecord, 0, len(valid))

	for i, row := range valid {
		sales = append(sales, entity.SalesRecord{
			ImportBatchID: batchID,
			Barcode:       row.Barcode,
			Description:   row.Description,
			Colour:        row.Colour,
			Size:          row.Size,
			Price:         row.Price,
			SaleDate:      row.SaleDate,
		})
		tracker = append(tracker, entity.PaymentTrackerEntry{
			ImportBatchID: batchID,
			Barcode:       row.Barcode,
			SaleAmount:    row.Price,
			Balance:       row.Price,
			Status:        enum.PaymentStatusUnpaid,
			SaleDate:      row.SaleDate,
		})

		purchase, gstAmount := s.deriver.Margin(row.Price, row.Margin)
		month, year := MonthYear(row.SaleDate)
		gst = append(gst, entity.GSTRecord{
			ImportBatchID:  batchID,
			SrNo:           int(srNo) + i + 1,
			Barcode:        row.Barcode,
			Description:    row.Description,
			Colour:         row.Colour,
			Size:           row.Size,
			SaleAmount:     row.Price,
			MarginTaxable:  row.Margin,
			PurchaseAmount: purchase,
			GSTAmount:      gstAmount,
			Month:          month,
			Year:           year,
			SaleDate:       row.SaleDate,
		})
	}

	if err := s.salesRepo.BulkCreate(ctx, sales); err != nil {
		return nil, apperror.NewTransportError(err)
	}
	if err := s.trackerRepo.BulkCreate(ctx, tracker); err != nil {
		return nil, apperror.NewTransportError(err)
	}
	if err := s.gstRepo.BulkCreate(ctx, gst); err != nil {
		return nil, apperror.NewTransportError(err)
	}

	if err := Reconcile(batchID, sales, tracker, gst); err != nil {
		return nil, err
	}

	total := 0.0
	for _, r := range sales {
		total += r.Price
	}
	return &SalesImportResult{
		BatchID:    batchID,
		RowCount:   len(sales),
		TotalSales: total,
	}, nil
}

func (s *SalesImportService) prepare(ctx context.Context, r io.Reader, filename string) ([]extract.RawRow, FieldMapping, []string, error) {
	extractor, err := extract.ForFilename(filename)
	if err != nil {
		return nil, nil, nil, err
	}
	rows, err := extractor.ExtractRows(ctx, r)
	if err != nil {
		return nil, nil, nil, err
	}
	mapping, missing := MapFields(rows[0], salesImportSchema)
	return rows, mapping, missing, nil
}

// validate scans every row before anything is written. Each row yields at
// most one error; the first failing check wins.
func (s *SalesImportService) validate(ctx context.Context, rows []extract.RawRow, mapping FieldMapping) ([]salesRow, []apperror.RowError, error) {
	existing, err := s.salesRepo.ListBarcodes(ctx)
	if err != nil {
		return nil, nil, apperror.NewTransportError(err)
	}
	existingSet := make(map[string]bool, len(existing))
	for _, b := range existing {
		existingSet[b] = true
	}

	seen := make(map[string]bool, len(rows))
	var valid []salesRow
	var rowErrors []apperror.RowError

	for i, row := range rows {
		rowNum := i + 2

		barcode := fieldString(row, mapping, "barcode")
		if barcode == "" {
			rowErrors = append(rowErrors, apperror.RowError{Row: rowNum, Message: "Barcode is required"})
			continue
		}
		if existingSet[barcode] {
			rowErrors = append(rowErrors, apperror.RowError{Row: rowNum, Message: fmt.Sprintf("Barcode '%s' already exists", barcode)})
			continue
		}
		if seen[barcode] {
			rowErrors = append(rowErrors, apperror.RowError{Row: rowNum, Message: fmt.Sprintf("Duplicate barcode '%s' in file", barcode)})
			continue
		}

		price, ok := fieldFloat(row, mapping, "price")
		if !ok || price <= 0 {
			rowErrors = append(rowErrors, apperror.RowError{Row: rowNum, Message: "Price must be a number greater than zero"})
			continue
		}

		margin := s.cfg.DefaultMarginTaxable
		if raw := fieldString(row, mapping, "margin"); raw != "" {
			m, ok := fieldFloat(row, mapping, "margin")
			if !ok {
				rowErrors = append(rowErrors, apperror.RowError{Row: rowNum, Message: "Margin must be numeric"})
				continue
			}
			margin = m
		}

		seen[barcode] = true
		valid = append(valid, salesRow{
			RowIndex:    i,
			Barcode:     barcode,
			Description: fieldString(row, mapping, "model"),
			Colour:      fieldString(row, mapping, "colour"),
			Size:        fieldString(row, mapping, "size"),
			Price:       price,
			Margin:      margin,
			SaleDate:    dateparse.NormalizeOrToday(fieldRaw(row, mapping, "date")),
		})
	}

	return valid, rowErrors, nil
}

// GenerateInvoices creates one draft invoice per distinct sale date from a
// previously imported batch. Items keep file order within each day; the
// invoice quantity is the line count since each sale row is one pair.
func (s *SalesImportService) GenerateInvoices(ctx context.Context, batchID string, clientName string) ([]entity.Invoice, error) {
	records, err := s.salesRepo.Filter(ctx, map[string]interface{}{"import_batch_id": batchID})
	if err != nil {
		return nil, apperror.NewTransportError(err)
	}
	if len(records) == 0 {
		return nil, apperror.NewNotFoundError("Import batch")
	}

	lines := make([]ImportLine, 0, len(records))
	for i, rec := range records {
		lines = append(lines, ImportLine{
			RowIndex:    i,
			Date:        rec.SaleDate,
			Barcode:     rec.Barcode,
			Description: ComposeDescription(rec.Description, rec.Colour, rec.Size),
			Quantity:    1,
			Amount:      rec.Price,
		})
	}

	var invoices []entity.Invoice
	for _, group := range GroupBySaleDate(lines) {
		items := make([]InvoiceItemInput, 0, len(group.Lines))
		for _, line := range group.Lines {
			items = append(items, InvoiceItemInput{
				Barcode:     line.Barcode,
				Description: line.Description,
				Quantity:    1,
				Rate:        line.Amount,
			})
		}

		invoice, err := s.invoiceSvc.CreateInvoice(ctx, &CreateInvoiceInput{
			InvoiceDate:         group.Key,
			ClientName:          clientName,
			Status:              enum.InvoiceStatusDraft,
			QuantityAsLineCount: true,
			Items:               items,
		})
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, *invoice)
	}

	return invoices, nil
}

// DeleteBatch removes every row written by one import call from all three
// sibling tables. This is the manual undo used after a failed
// reconciliation; the returned count is the number of sales rows removed.
func (s *SalesImportService) DeleteBatch(ctx context.Context, batchID string) (int64, error) {
	if _, err := s.gstRepo.DeleteByImportBatch(ctx, batchID); err != nil {
		return 0, apperror.NewTransportError(err)
	}
	if _, err := s.trackerRepo.DeleteByImportBatch(ctx, batchID); err != nil {
		return 0, apperror.NewTransportError(err)
	}
	deleted, err := s.salesRepo.DeleteByImportBatch(ctx, batchID)
	if err != nil {
		return 0, apperror.NewTransportError(err)
	}
	return deleted, nil
}

// DeleteSale removes one sale and every row derived from it: the payment
// tracker entry and GST record sharing its barcode, plus any invoice items
// carrying the barcode. Removing an invoice's last item removes the
// invoice itself, same as deleting the item directly.
func (s *SalesImportService) DeleteSale(ctx context.Context, id uuid.UUID) error {
	sale, err := s.GetSalesRecord(ctx, id)
	if err != nil {
		return err
	}

	entry, err := s.trackerRepo.GetByBarcode(ctx, sale.Barcode)
	if err != nil {
		return apperror.NewTransportError(err)
	}
	if entry != nil {
		if err := s.trackerRepo.Delete(ctx, entry.ID); err != nil {
			return apperror.NewTransportError(err)
		}
	}

	gstRecords, err := s.gstRepo.Filter(ctx, map[string]interface{}{"barcode": sale.Barcode})
	if err != nil {
		return apperror.NewTransportError(err)
	}
	for _, rec := range gstRecords {
		if err := s.gstRepo.Delete(ctx, rec.ID); err != nil {
			return apperror.NewTransportError(err)
		}
	}

	if err := s.invoiceSvc.DeleteItemsByBarcode(ctx, sale.Barcode); err != nil {
		return err
	}

	if err := s.salesRepo.Delete(ctx, sale.ID); err != nil {
		return apperror.NewTransportError(err)
	}
	return nil
}

// ListSales lists sales records, most recent first
func (s *SalesImportService) ListSales(ctx context.Context) ([]entity.SalesRecord, error) {
	return s.salesRepo.List(ctx, "created_at desc")
}

// ListSalesPaged lists sales records one page at a time
func (s *SalesImportService) ListSalesPaged(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.SalesRecord], error) {
	records, total, err := s.salesRepo.ListPaged(ctx, params, "created_at DESC")
	if err != nil {
		return nil, err
	}
	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(records, pag), nil
}

// GetSalesRecord retrieves one sales record
func (s *SalesImportService) GetSalesRecord(ctx context.Context, id uuid.UUID) (*entity.SalesRecord, error) {
	records, err := s.salesRepo.Filter(ctx, map[string]interface{}{"id": id})
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, apperror.NewNotFoundError("Sales record")
	}
	return &records[0], nil
}
