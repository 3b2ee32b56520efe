package service

import (
	"context"
	"io"

	"github.com/alkbooks/invoicing-api/internal/domain/repository"
	"github.com/alkbooks/invoicing-api/internal/infrastructure/extract"
	"github.com/alkbooks/invoicing-api/pkg/apperror"
	"github.com/alkbooks/invoicing-api/pkg/dateparse"
)

// PaymentImportService applies received payments to payment tracker entries
// by barcode. Unlike the other import flows this one is tolerant per row:
// unmatched barcodes and bad amounts are counted and reported while every
// matchable row is still applied.
type PaymentImportService struct {
	trackerRepo repository.PaymentTrackerRepository
}

func NewPaymentImportService(trackerRepo repository.PaymentTrackerRepository) *PaymentImportService {
	return &PaymentImportService{trackerRepo: trackerRepo}
}

// PaymentImportResult summarizes a payment import run
type PaymentImportResult struct {
	TotalRows int                 `json:"total_rows"`
	Applied   int                 `json:"applied"`
	NotFound  []string            `json:"not_found,omitempty"`
	Errors    []apperror.RowError `json:"errors,omitempty"`
}

// Import reads the payment file and applies each row to its tracker entry.
// Received amounts only ever grow; balance and status are rederived on
// every application.
func (s *PaymentImportService) Import(ctx context.Context, r io.Reader, filename string) (*PaymentImportResult, error) {
	extractor, err := extract.ForFilename(filename)
	if err != nil {
		return nil, err
	}
	rows, err := extractor.ExtractRows(ctx, r)
	if err != nil {
		return nil, err
	}

	mapping, missing := MapFields(rows[0], paymentImportSchema)
	if len(missing) > 0 {
		return nil, apperror.NewMappingError(missing)
	}

	result := &PaymentImportResult{TotalRows: len(rows)}

	for i, row := range rows {
		rowNum := i + 2

		barcode := fieldString(row, mapping, "barcode")
		if barcode == "" {
			result.Errors = append(result.Errors, apperror.RowError{Row: rowNum, Message: "Barcode is required"})
			continue
		}

		amount, ok := fieldFloat(row, mapping, "paidAmount")
		if !ok || amount <= 0 {
			result.Errors = append(result.Errors, apperror.RowError{Row: rowNum, Message: "Paid amount must be a number greater than zero"})
			continue
		}

		entry, err := s.trackerRepo.GetByBarcode(ctx, barcode)
		if err != nil {
			return nil, apperror.NewTransportError(err)
		}
		if entry == nil {
			result.NotFound = append(result.NotFound, barcode)
			continue
		}

		paymentDate := dateparse.NormalizeOrToday(fieldRaw(row, mapping, "paymentDate"))
		entry.ApplyPayment(amount, paymentDate)

		if err := s.trackerRepo.Update(ctx, entry); err != nil {
			return nil, apperror.NewTransportError(err)
		}
		result.Applied++
	}

	return result, nil
}
