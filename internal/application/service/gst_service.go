package service

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/alkbooks/invoicing-api/internal/domain/entity"
	"github.com/alkbooks/invoicing-api/internal/domain/enum"
	"github.com/alkbooks/invoicing-api/internal/domain/repository"
	"github.com/alkbooks/invoicing-api/pkg/apperror"
)

// GSTService handles GST record queries, margin edits and filing status
type GSTService struct {
	gstRepo     repository.GSTRepository
	salesRepo   repository.SalesRepository
	trackerRepo repository.PaymentTrackerRepository
	statusRepo  repository.GSTMonthlyStatusRepository
	deriver     *Deriver
}

func NewGSTService(
	gstRepo repository.GSTRepository,
	salesRepo repository.SalesRepository,
	trackerRepo repository.PaymentTrackerRepository,
	statusRepo repository.GSTMonthlyStatusRepository,
	deriver *Deriver,
) *GSTService {
	return &GSTService{
		gstRepo:     gstRepo,
		salesRepo:   salesRepo,
		trackerRepo: trackerRepo,
		statusRepo:  statusRepo,
		deriver:     deriver,
	}
}

// ListRecords lists GST records in serial order
func (s *GSTService) ListRecords(ctx context.Context) ([]entity.GSTRecord, error) {
	return s.gstRepo.List(ctx, "sr_no asc")
}

// ListRecordsByPeriod lists GST records for one month and year
func (s *GSTService) ListRecordsByPeriod(ctx context.Context, month, year int) ([]entity.GSTRecord, error) {
	return s.gstRepo.Filter(ctx, map[string]interface{}{"month": month, "year": year})
}

// UpdateMargin changes the taxable margin of one record and recomputes the
// purchase and GST amounts from it. The derived fields are never updated
// independently.
func (s *GSTService) UpdateMargin(ctx context.Context, id uuid.UUID, marginTaxable float64) (*entity.GSTRecord, error) {
	record, err := s.gstRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, apperror.NewNotFoundError("GST record")
	}

	record.MarginTaxable = marginTaxable
	record.PurchaseAmount, record.GSTAmount = s.deriver.Margin(record.SaleAmount, marginTaxable)

	if err := s.gstRepo.Update(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// DeleteRecord removes one GST record together with the sales and payment
// tracker rows that share its barcode.
func (s *GSTService) DeleteRecord(ctx context.Context, id uuid.UUID) error {
	record, err := s.gstRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if record == nil {
		return apperror.NewNotFoundError("GST record")
	}

	if err := s.gstRepo.Delete(ctx, record.ID); err != nil {
		return apperror.NewTransportError(err)
	}

	sales, err := s.salesRepo.Filter(ctx, map[string]interface{}{"barcode": record.Barcode})
	if err != nil {
		return apperror.NewTransportError(err)
	}
	for i := range sales {
		if err := s.salesRepo.Delete(ctx, sales[i].ID); err != nil {
			return apperror.NewTransportError(err)
		}
	}

	entry, err := s.trackerRepo.GetByBarcode(ctx, record.Barcode)
	if err != nil {
		return apperror.NewTransportError(err)
	}
	if entry != nil {
		if err := s.trackerRepo.Delete(ctx, entry.ID); err != nil {
			return apperror.NewTransportError(err)
		}
	}

	return nil
}

// MonthlyStatus returns the filing status for one period, defaulting to
// draft when no row exists yet.
func (s *GSTService) MonthlyStatus(ctx context.Context, month, year int) (*entity.GSTMonthlyStatus, error) {
	status, err := s.statusRepo.GetByPeriod(ctx, month, year)
	if err != nil {
		return nil, err
	}
	if status == nil {
		return &entity.GSTMonthlyStatus{
			Month:  month,
			Year:   year,
			Status: enum.FilingStatusDraft,
		}, nil
	}
	return status, nil
}

// SetMonthlyStatus upserts the filing status for one period
func (s *GSTService) SetMonthlyStatus(ctx context.Context, month, year int, filing enum.FilingStatus) (*entity.GSTMonthlyStatus, error) {
	status, err := s.statusRepo.GetByPeriod(ctx, month, year)
	if err != nil {
		return nil, err
	}
	if status == nil {
		status = &entity.GSTMonthlyStatus{
			Month:  month,
			Year:   year,
			Status: filing,
		}
		if err := s.statusRepo.Create(ctx, status); err != nil {
			return nil, apperror.NewTransportError(err)
		}
		return status, nil
	}

	status.Status = filing
	if err := s.statusRepo.Update(ctx, status); err != nil {
		return nil, apperror.NewTransportError(err)
	}
	return status, nil
}

// MonthlySummary aggregates one month's GST figures
type MonthlySummary struct {
	Month         int     `json:"month"`
	Year          int     `json:"year"`
	RecordCount   int     `json:"record_count"`
	TotalSales    float64 `json:"total_sales"`
	TotalMargin   float64 `json:"total_margin"`
	TotalPurchase float64 `json:"total_purchase"`
	TotalGST      float64 `json:"total_gst"`
	FilingStatus  string  `json:"filing_status"`
}

// MonthlySummaries groups a year's GST records by month with totals,
// earliest month first.
func (s *GSTService) MonthlySummaries(ctx context.Context, year int) ([]MonthlySummary, error) {
	records, err := s.gstRepo.ListByYear(ctx, year)
	if err != nil {
		return nil, err
	}

	statuses, err := s.statusRepo.ListByYear(ctx, year)
	if err != nil {
		return nil, err
	}
	statusByMonth := make(map[int]enum.FilingStatus, len(statuses))
	for _, st := range statuses {
		statusByMonth[st.Month] = st.Status
	}

	type bucket struct {
		count    int
		sales    decimal.Decimal
		margin   decimal.Decimal
		purchase decimal.Decimal
		gst      decimal.Decimal
	}
	buckets := make(map[int]*bucket)

	for _, rec := range records {
		b, ok := buckets[rec.Month]
		if !ok {
			b = &bucket{}
			buckets[rec.Month] = b
		}
		b.count++
		b.sales = b.sales.Add(decimal.NewFromFloat(rec.SaleAmount))
		b.margin = b.margin.Add(decimal.NewFromFloat(rec.MarginTaxable))
		b.purchase = b.purchase.Add(decimal.NewFromFloat(rec.PurchaseAmount))
		b.gst = b.gst.Add(decimal.NewFromFloat(rec.GSTAmount))
	}

	months := make([]int, 0, len(buckets))
	for m := range buckets {
		months = append(months, m)
	}
	sort.Ints(months)

	summaries := make([]MonthlySummary, 0, len(months))
	for _, m := range months {
		b := buckets[m]
		sales, _ := b.sales.Round(2).Float64()
		margin, _ := b.margin.Round(2).Float64()
		purchase, _ := b.purchase.Round(2).Float64()
		gst, _ := b.gst.Round(2).Float64()
		summaries = append(summaries, MonthlySummary{
			Month:         m,
			Year:          year,
			RecordCount:   b.count,
			TotalSales:    sales,
			TotalMargin:   margin,
			TotalPurchase: purchase,
			TotalGST:      gst,
			FilingStatus:  statusByMonth[m].String(),
		})
	}

	return summaries, nil
}
