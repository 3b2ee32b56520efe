package service

import (
	"context"
	"fmt"
	"io"

	"github.com/alkbooks/invoicing-api/internal/config"
	"github.com/alkbooks/invoicing-api/internal/domain/entity"
	"github.com/alkbooks/invoicing-api/internal/domain/enum"
	"github.com/alkbooks/invoicing-api/internal/domain/repository"
	"github.com/alkbooks/invoicing-api/internal/infrastructure/extract"
	"github.com/alkbooks/invoicing-api/pkg/apperror"
	"github.com/alkbooks/invoicing-api/pkg/dateparse"
	"github.com/alkbooks/invoicing-api/pkg/fiscal"
)

// HistoricalImportService ingests already-invoiced past sales: each file
// carries explicit invoice numbers, one row per sold item. For every
// invoice it creates the Invoice with its items plus the sibling Sales,
// PaymentTracker and GST rows, then reconciles the accumulated batch.
type HistoricalImportService struct {
	salesRepo   repository.SalesRepository
	trackerRepo repository.PaymentTrackerRepository
	gstRepo     repository.GSTRepository
	invoiceRepo repository.InvoiceRepository
	itemRepo    repository.InvoiceItemRepository
	clientSvc   *ClientService
	deriver     *Deriver
	cfg         config.InvoicingConfig
}

func NewHistoricalImportService(
	salesRepo repository.SalesRepository,
	trackerRepo repository.PaymentTrackerRepository,
	gstRepo repository.GSTRepository,
	invoiceRepo repository.InvoiceRepository,
	itemRepo repository.InvoiceItemRepository,
	clientSvc *ClientService,
	deriver *Deriver,
	cfg config.InvoicingConfig,
) *HistoricalImportService {
	return &HistoricalImportService{
		salesRepo:   salesRepo,
		trackerRepo: trackerRepo,
		gstRepo:     gstRepo,
		invoiceRepo: invoiceRepo,
		itemRepo:    itemRepo,
		clientSvc:   clientSvc,
		deriver:     deriver,
		cfg:         cfg,
	}
}

// HistoricalImportResult summarizes a completed historical import
type HistoricalImportResult struct {
	BatchID      string  `json:"batch_id"`
	InvoiceCount int     `json:"invoice_count"`
	RowCount     int     `json:"row_count"`
	TotalSales   float64 `json:"total_sales"`
}

// Preview extracts and validates the file without writing anything.
func (s *HistoricalImportService) Preview(ctx context.Context, r io.Reader, filename string) (*ImportPreview, error) {
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
func (s *HistoricalImportService) Import(ctx context.Context, r io.Reader, filename string) (*HistoricalImportResult, error) {
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

	batchID := newBatchID("HIST")
	groups := GroupByInvoiceNumber(valid)

	srNo, err := s.gstRepo.Count(ctx)
	if err != nil {
		return nil, apperror.NewTransportError(err)
	}

	var allSales []entity.SalesRecord
	var allTracker []entity.PaymentTrackerEntry
	var allGST []entity.GSTRecord

	for _, group := range groups {
		client, err := s.clientSvc.FindOrCreateByName(ctx, group.Customer)
		if err != nil {
			return nil, err
		}

		grandTotal := GrandTotal(group.Lines)
		financialYear, err := fiscalYear(group.Date)
		if err != nil {
			return nil, err
		}

		invoice := &entity.Invoice{
			InvoiceNumber:   group.Key,
			InvoiceDate:     group.Date,
			FinancialYear:   financialYear,
			ClientID:        client.ID,
			ClientName:      client.PartyName,
			ClientAddress:   client.Address,
			ClientGSTIN:     client.GSTIN,
			ClientStateName: client.StateName,
			ClientStateCode: client.StateCode,
			TotalQuantity:   float64(len(group.Lines)),
			GrandTotal:      grandTotal,
			AmountInWords:   AmountInWords(grandTotal),
			DeclarationText: s.cfg.DeclarationText,
			Status:          enum.InvoiceStatusSent,
		}
		if err := s.invoiceRepo.Create(ctx, invoice); err != nil {
			return nil, apperror.NewTransportError(err)
		}

		items := make([]entity.InvoiceItem, 0, len(group.Lines))
		for i, line := range group.Lines {
			hsn := line.HSNCode
			if hsn == "" {
				hsn = s.cfg.DefaultHSNCode
			}
			items = append(items, entity.InvoiceItem{
				InvoiceID:   invoice.ID,
				RowIndex:    i,
				Barcode:     line.Barcode,
				Description: ComposeDescription(line.Description, line.Colour, line.Size),
				HSNCode:     hsn,
				Quantity:    1,
				Unit:        s.cfg.DefaultUnit,
				Rate:        line.Amount,
				Amount:      line.Amount,
			})
		}
		if err := s.itemRepo.BulkCreate(ctx, items); err != nil {
			return nil, apperror.NewTransportError(err)
		}

		for _, line := range group.Lines {
			allSales = append(allSales, entity.SalesRecord{
				ImportBatchID: batchID,
				Barcode:       line.Barcode,
				Description:   line.Description,
				Colour:        line.Colour,
				Size:          line.Size,
				Price:         line.Amount,
				SaleDate:      line.Date,
			})
			allTracker = append(allTracker, entity.PaymentTrackerEntry{
				ImportBatchID: batchID,
				Barcode:       line.Barcode,
				SaleAmount:    line.Amount,
				Balance:       line.Amount,
				Status:        enum.PaymentStatusUnpaid,
				SaleDate:      line.Date,
			})

			purchase, gstAmount := s.deriver.Margin(line.Amount, line.Margin)
			month, year := MonthYear(line.Date)
			allGST = append(allGST, entity.GSTRecord{
				ImportBatchID:  batchID,
				SrNo:           int(srNo) + len(allGST) + 1,
				Barcode:        line.Barcode,
				Description:    line.Description,
				Colour:         line.Colour,
				Size:           line.Size,
				SaleAmount:     line.Amount,
				MarginTaxable:  line.Margin,
				PurchaseAmount: purchase,
				GSTAmount:      gstAmount,
				Month:          month,
				Year:           year,
				SaleDate:       line.Date,
			})
		}
	}

	if err := s.salesRepo.BulkCreate(ctx, allSales); err != nil {
		return nil, apperror.NewTransportError(err)
	}
	if err := s.trackerRepo.BulkCreate(ctx, allTracker); err != nil {
		return nil, apperror.NewTransportError(err)
	}
	if err := s.gstRepo.BulkCreate(ctx, allGST); err != nil {
		return nil, apperror.NewTransportError(err)
	}

	if err := Reconcile(batchID, allSales, allTracker, allGST); err != nil {
		return nil, err
	}

	total := 0.0
	for _, r := range allSales {
		total += r.Price
	}
	return &HistoricalImportResult{
		BatchID:      batchID,
		InvoiceCount: len(groups),
		RowCount:     len(allSales),
		TotalSales:   total,
	}, nil
}

func (s *HistoricalImportService) prepare(ctx context.Context, r io.Reader, filename string) ([]extract.RawRow, FieldMapping, []string, error) {
	extractor, err := extract.ForFilename(filename)
	if err != nil {
		return nil, nil, nil, err
	}
	rows, err := extractor.ExtractRows(ctx, r)
	if err != nil {
		return nil, nil, nil, err
	}
	mapping, missing := MapFields(rows[0], historicalImportSchema)
	return rows, mapping, missing, nil
}

// validate checks every row before any write. Invoice numbers may repeat
// within the file (multi-item invoices) but must not collide with stored
// invoices; barcodes must be unique everywhere.
func (s *HistoricalImportService) validate(ctx context.Context, rows []extract.RawRow, mapping FieldMapping) ([]ImportLine, []apperror.RowError, error) {
	existingBarcodes, err := s.salesRepo.ListBarcodes(ctx)
	if err != nil {
		return nil, nil, apperror.NewTransportError(err)
	}
	barcodeSet := make(map[string]bool, len(existingBarcodes))
	for _, b := range existingBarcodes {
		barcodeSet[b] = true
	}

	existingNumbers, err := s.invoiceRepo.ListExistingNumbers(ctx)
	if err != nil {
		return nil, nil, apperror.NewTransportError(err)
	}
	numberSet := make(map[string]bool, len(existingNumbers))
	for _, n := range existingNumbers {
		numberSet[n] = true
	}

	seenBarcodes := make(map[string]bool, len(rows))
	var valid []ImportLine
	var rowErrors []apperror.RowError

	for i, row := range rows {
		rowNum := i + 2
		fail := func(msg string) {
			rowErrors = append(rowErrors, apperror.RowError{Row: rowNum, Message: msg})
		}

		invoiceNumber := fieldString(row, mapping, "invoiceNumber")
		if invoiceNumber == "" {
			fail("Invoice number is required")
			continue
		}
		if numberSet[invoiceNumber] {
			fail(fmt.Sprintf("Invoice number '%s' already exists", invoiceNumber))
			continue
		}

		customer := fieldString(row, mapping, "customer")
		if customer == "" {
			fail("Customer name is required")
			continue
		}

		date, ok := dateparse.Normalize(fieldRaw(row, mapping, "date"))
		if !ok {
			fail("Date could not be parsed")
			continue
		}

		barcode := fieldString(row, mapping, "barcode")
		if barcode == "" {
			fail("Barcode is required")
			continue
		}
		if barcodeSet[barcode] {
			fail(fmt.Sprintf("Barcode '%s' already exists", barcode))
			continue
		}
		if seenBarcodes[barcode] {
			fail(fmt.Sprintf("Duplicate barcode '%s' in file", barcode))
			continue
		}

		model := fieldString(row, mapping, "model")
		colour := fieldString(row, mapping, "colour")
		size := fieldString(row, mapping, "size")
		if model == "" || colour == "" || size == "" {
			fail("Description, colour and size are required")
			continue
		}

		amount, ok := fieldFloat(row, mapping, "salesAmount")
		if !ok || amount <= 0 {
			fail("Sales amount must be a number greater than zero")
			continue
		}

		margin, ok := fieldFloat(row, mapping, "margin")
		if !ok {
			fail("Margin must be numeric")
			continue
		}

		seenBarcodes[barcode] = true
		valid = append(valid, ImportLine{
			RowIndex:      i,
			InvoiceNumber: invoiceNumber,
			Customer:      customer,
			Date:          date,
			Barcode:       barcode,
			Description:   model,
			Colour:        colour,
			Size:          size,
			HSNCode:       fieldString(row, mapping, "hsn"),
			Quantity:      1,
			Amount:        amount,
			Margin:        margin,
		})
	}

	return valid, rowErrors, nil
}

func fiscalYear(date string) (string, error) {
	fy, err := fiscal.YearOfString(date)
	if err != nil {
		return "", apperror.NewBadRequestError("Invalid date: " + date)
	}
	return fy, nil
}
