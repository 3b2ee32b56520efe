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
)

// BulkInvoiceService uploads pre-grouped invoice data: rows carry explicit
// invoice numbers and line details, and only invoices and their items are
// written. The sales, payment tracker and GST tables are untouched by this
// flow.
type BulkInvoiceService struct {
	invoiceRepo repository.InvoiceRepository
	itemRepo    repository.InvoiceItemRepository
	clientSvc   *ClientService
	cfg         config.InvoicingConfig
}

func NewBulkInvoiceService(
	invoiceRepo repository.InvoiceRepository,
	itemRepo repository.InvoiceItemRepository,
	clientSvc *ClientService,
	cfg config.InvoicingConfig,
) *BulkInvoiceService {
	return &BulkInvoiceService{
		invoiceRepo: invoiceRepo,
		itemRepo:    itemRepo,
		clientSvc:   clientSvc,
		cfg:         cfg,
	}
}

// BulkInvoiceResult summarizes a completed bulk invoice upload
type BulkInvoiceResult struct {
	InvoiceCount int     `json:"invoice_count"`
	RowCount     int     `json:"row_count"`
	GrandTotal   float64 `json:"grand_total"`
}

// Preview extracts and validates the file without writing anything. The
// caller confirms the returned column mapping before running Import; any
// missing required column blocks progression.
func (s *BulkInvoiceService) Preview(ctx context.Context, r io.Reader, filename string) (*ImportPreview, error) {
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

// Import creates one draft invoice per invoice number in the file.
func (s *BulkInvoiceService) Import(ctx context.Context, r io.Reader, filename string) (*BulkInvoiceResult, error) {
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

	groups := GroupByInvoiceNumber(valid)
	grandTotal := 0.0

	for _, group := range groups {
		client, err := s.clientSvc.FindOrCreateByName(ctx, group.Customer)
		if err != nil {
			return nil, err
		}

		total := GrandTotal(group.Lines)
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
			TotalQuantity:   TotalQuantity(group.Lines),
			GrandTotal:      total,
			AmountInWords:   AmountInWords(total),
			DeclarationText: s.cfg.DeclarationText,
			Status:          enum.InvoiceStatusDraft,
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
				Description: line.Description,
				HSNCode:     hsn,
				Quantity:    line.Quantity,
				Unit:        s.cfg.DefaultUnit,
				Rate:        line.Rate,
				Amount:      line.Amount,
			})
		}
		if err := s.itemRepo.BulkCreate(ctx, items); err != nil {
			return nil, apperror.NewTransportError(err)
		}

		grandTotal += total
	}

	return &BulkInvoiceResult{
		InvoiceCount: len(groups),
		RowCount:     len(valid),
		GrandTotal:   grandTotal,
	}, nil
}

func (s *BulkInvoiceService) prepare(ctx context.Context, r io.Reader, filename string) ([]extract.RawRow, FieldMapping, []string, error) {
	extractor, err := extract.ForFilename(filename)
	if err != nil {
		return nil, nil, nil, err
	}
	rows, err := extractor.ExtractRows(ctx, r)
	if err != nil {
		return nil, nil, nil, err
	}
	mapping, missing := MapFields(rows[0], bulkInvoiceSchema)
	return rows, mapping, missing, nil
}

func (s *BulkInvoiceService) validate(ctx context.Context, rows []extract.RawRow, mapping FieldMapping) ([]ImportLine, []apperror.RowError, error) {
	existingNumbers, err := s.invoiceRepo.ListExistingNumbers(ctx)
	if err != nil {
		return nil, nil, apperror.NewTransportError(err)
	}
	numberSet := make(map[string]bool, len(existingNumbers))
	for _, n := range existingNumbers {
		numberSet[n] = true
	}

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

		description := ComposeDescription(
			fieldString(row, mapping, "model"),
			fieldString(row, mapping, "colour"),
			fieldString(row, mapping, "size"),
		)
		if description == "" {
			fail("Item description is required")
			continue
		}

		price, ok := fieldFloat(row, mapping, "price")
		if !ok || price <= 0 {
			fail("Price must be a number greater than zero")
			continue
		}

		quantity, ok := fieldFloat(row, mapping, "quantity")
		if !ok || quantity <= 0 {
			quantity = 1
		}

		valid = append(valid, ImportLine{
			RowIndex:      i,
			InvoiceNumber: invoiceNumber,
			Customer:      customer,
			Date:          date,
			Barcode:       fieldString(row, mapping, "barcode"),
			Description:   description,
			HSNCode:       fieldString(row, mapping, "hsn"),
			Quantity:      quantity,
			Rate:          price,
			Amount:        quantity * price,
		})
	}

	return valid, rowErrors, nil
}
