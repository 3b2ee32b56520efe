package service

import (
	"context"

	"github.com/alkbooks/invoicing-api/internal/domain/entity"
	"github.com/alkbooks/invoicing-api/internal/domain/enum"
	"github.com/alkbooks/invoicing-api/internal/domain/repository"
	"github.com/alkbooks/invoicing-api/pkg/apperror"
	"github.com/alkbooks/invoicing-api/pkg/dateparse"
	"github.com/alkbooks/invoicing-api/pkg/pagination"
)

// PaymentTrackerService handles payment tracker queries and manual payments
type PaymentTrackerService struct {
	trackerRepo repository.PaymentTrackerRepository
}

func NewPaymentTrackerService(trackerRepo repository.PaymentTrackerRepository) *PaymentTrackerService {
	return &PaymentTrackerService{trackerRepo: trackerRepo}
}

// ListEntries lists tracker entries, most recent sale first
func (s *PaymentTrackerService) ListEntries(ctx context.Context) ([]entity.PaymentTrackerEntry, error) {
	return s.trackerRepo.List(ctx, "sale_date desc")
}

// ListEntriesPaged lists tracker entries one page at a time
func (s *PaymentTrackerService) ListEntriesPaged(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.PaymentTrackerEntry], error) {
	entries, total, err := s.trackerRepo.ListPaged(ctx, params, "sale_date DESC")
	if err != nil {
		return nil, err
	}
	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(entries, pag), nil
}

// ListEntriesByStatus lists tracker entries with one payment status
func (s *PaymentTrackerService) ListEntriesByStatus(ctx context.Context, status enum.PaymentStatus) ([]entity.PaymentTrackerEntry, error) {
	return s.trackerRepo.ListByStatus(ctx, status)
}

// GetEntry retrieves one tracker entry by barcode
func (s *PaymentTrackerService) GetEntry(ctx context.Context, barcode string) (*entity.PaymentTrackerEntry, error) {
	entry, err := s.trackerRepo.GetByBarcode(ctx, barcode)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, apperror.NewNotFoundError("Payment tracker entry")
	}
	return entry, nil
}

// RecordPayment applies a single manual payment to one entry. The received
// amount only ever grows; balance and status are rederived together.
func (s *PaymentTrackerService) RecordPayment(ctx context.Context, barcode string, amount float64, paymentDate string) (*entity.PaymentTrackerEntry, error) {
	if amount <= 0 {
		return nil, apperror.NewBadRequestError("Payment amount must be greater than zero")
	}

	entry, err := s.GetEntry(ctx, barcode)
	if err != nil {
		return nil, err
	}

	date, ok := dateparse.Normalize(paymentDate)
	if !ok {
		date = dateparse.Today()
	}
	entry.ApplyPayment(amount, date)

	if err := s.trackerRepo.Update(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}
