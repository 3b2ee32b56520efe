package service

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/alkbooks/invoicing-api/internal/config"
	"github.com/alkbooks/invoicing-api/internal/domain/entity"
	"github.com/alkbooks/invoicing-api/internal/domain/enum"
	"github.com/alkbooks/invoicing-api/internal/domain/repository"
	"github.com/alkbooks/invoicing-api/pkg/apperror"
	"github.com/alkbooks/invoicing-api/pkg/fiscal"
)

// InvoiceService handles invoice creation, numbering and CRUD. Sequential
// numbers are derived as max-suffix-plus-one over the financial year, so
// the read-derive-write window is serialized with a mutex; two concurrent
// creations can otherwise compute the same "next" number.
type InvoiceService struct {
	invoiceRepo repository.InvoiceRepository
	itemRepo    repository.InvoiceItemRepository
	clientSvc   *ClientService
	companyRepo repository.CompanyRepository
	cfg         config.InvoicingConfig

	numberMu sync.Mutex
}

func NewInvoiceService(
	invoiceRepo repository.InvoiceRepository,
	itemRepo repository.InvoiceItemRepository,
	clientSvc *ClientService,
	companyRepo repository.CompanyRepository,
	cfg config.InvoicingConfig,
) *InvoiceService {
	return &InvoiceService{
		invoiceRepo: invoiceRepo,
		itemRepo:    itemRepo,
		clientSvc:   clientSvc,
		companyRepo: companyRepo,
		cfg:         cfg,
	}
}

// InvoiceItemInput represents one line of a new invoice
type InvoiceItemInput struct {
	Barcode     string
	Description string
	HSNCode     string
	Quantity    float64
	Rate        float64
	Amount      *float64
}

// CreateInvoiceInput represents the create invoice input. When
// InvoiceNumber is empty the next sequential number for the invoice date's
// financial year is derived. When ClientID is nil the client is resolved
// from ClientName by fuzzy match, created if absent.
type CreateInvoiceInput struct {
	InvoiceNumber       string
	RefNumber           string
	InvoiceDate         string
	ClientID            *uuid.UUID
	ClientName          string
	Status              enum.InvoiceStatus
	QuantityAsLineCount bool
	Items               []InvoiceItemInput
}

// CreateInvoice builds and persists an invoice with its items. The mutex is
// held across number derivation and the invoice write.
func (s *InvoiceService) CreateInvoice(ctx context.Context, input *CreateInvoiceInput) (*entity.Invoice, error) {
	if len(input.Items) == 0 {
		return nil, apperror.NewBadRequestError("Invoice requires at least one item")
	}
	if input.InvoiceDate == "" {
		return nil, apperror.NewBadRequestError("Invoice date is required")
	}

	financialYear, err := fiscal.YearOfString(input.InvoiceDate)
	if err != nil {
		return nil, apperror.NewBadRequestError("Invalid invoice date: " + input.InvoiceDate)
	}

	client, err := s.resolveClient(ctx, input.ClientID, input.ClientName)
	if err != nil {
		return nil, err
	}

	items := s.buildItems(input.Items)
	grandTotal := itemsTotal(items)
	totalQuantity := itemsQuantity(items)
	if input.QuantityAsLineCount {
		totalQuantity = float64(len(items))
	}

	invoice := &entity.Invoice{
		RefNumber:       input.RefNumber,
		InvoiceDate:     input.InvoiceDate,
		FinancialYear:   financialYear,
		ClientID:        client.ID,
		ClientName:      client.PartyName,
		ClientAddress:   client.Address,
		ClientGSTIN:     client.GSTIN,
		ClientStateName: client.StateName,
		ClientStateCode: client.StateCode,
		TotalQuantity:   totalQuantity,
		GrandTotal:      grandTotal,
		AmountInWords:   AmountInWords(grandTotal),
		DeclarationText: s.cfg.DeclarationText,
		Status:          input.Status,
	}

	s.numberMu.Lock()
	defer s.numberMu.Unlock()

	if input.InvoiceNumber != "" {
		invoice.InvoiceNumber = strings.TrimSpace(input.InvoiceNumber)
	} else {
		code, err := s.companyCode(ctx)
		if err != nil {
			return nil, err
		}
		numbers, err := s.invoiceRepo.ListNumbersByFinancialYear(ctx, financialYear)
		if err != nil {
			return nil, err
		}
		seq := fiscal.NextSequence(numbers)
		invoice.InvoiceNumber = fiscal.FormatInvoiceNumber(code, financialYear, seq)
	}

	if err := s.invoiceRepo.Create(ctx, invoice); err != nil {
		return nil, err
	}

	for i := range items {
		items[i].InvoiceID = invoice.ID
	}
	if err := s.itemRepo.BulkCreate(ctx, items); err != nil {
		return nil, err
	}
	invoice.Items = items

	return invoice, nil
}

// companyCode returns the stored company profile's code, falling back to
// the static config when no profile is saved.
func (s *InvoiceService) companyCode(ctx context.Context) (string, error) {
	company, err := s.companyRepo.GetDefault(ctx)
	if err != nil {
		return "", err
	}
	if company != nil && company.CompanyCode != "" {
		return company.CompanyCode, nil
	}
	return s.cfg.CompanyCode, nil
}

func (s *InvoiceService) resolveClient(ctx context.Context, clientID *uuid.UUID, name string) (*entity.Client, error) {
	if clientID != nil {
		return s.clientSvc.GetClient(ctx, *clientID)
	}
	return s.clientSvc.FindOrCreateByName(ctx, name)
}

func (s *InvoiceService) buildItems(inputs []InvoiceItemInput) []entity.InvoiceItem {
	items := make([]entity.InvoiceItem, 0, len(inputs))
	for i, in := range inputs {
		quantity := in.Quantity
		if quantity == 0 {
			quantity = 1
		}
		hsn := in.HSNCode
		if hsn == "" {
			hsn = s.cfg.DefaultHSNCode
		}
		amount := quantity * in.Rate
		if in.Amount != nil {
			amount = *in.Amount
		}
		items = append(items, entity.InvoiceItem{
			RowIndex:    i,
			Barcode:     in.Barcode,
			Description: in.Description,
			HSNCode:     hsn,
			Quantity:    quantity,
			Unit:        s.cfg.DefaultUnit,
			Rate:        in.Rate,
			Amount:      amount,
		})
	}
	return items
}

func itemsTotal(items []entity.InvoiceItem) float64 {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(decimal.NewFromFloat(item.Amount))
	}
	f, _ := total.Round(2).Float64()
	return f
}

func itemsQuantity(items []entity.InvoiceItem) float64 {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(decimal.NewFromFloat(item.Quantity))
	}
	f, _ := total.Round(2).Float64()
	return f
}

// ListInvoices lists invoices, most recent first
func (s *InvoiceService) ListInvoices(ctx context.Context) ([]entity.Invoice, error) {
	return s.invoiceRepo.List(ctx, "created_at desc")
}

// ListInvoicesByFinancialYear lists invoices for one financial year
func (s *InvoiceService) ListInvoicesByFinancialYear(ctx context.Context, financialYear string) ([]entity.Invoice, error) {
	return s.invoiceRepo.Filter(ctx, map[string]interface{}{"financial_year": financialYear})
}

// GetInvoice retrieves an invoice with its items in row order
func (s *InvoiceService) GetInvoice(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	invoice, err := s.invoiceRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}
	return invoice, nil
}

// UpdateInvoiceNumber renames an invoice. The new number must be unique
// across all invoices; the ref number is kept in sync with it.
func (s *InvoiceService) UpdateInvoiceNumber(ctx context.Context, id uuid.UUID, number string) (*entity.Invoice, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return nil, apperror.NewBadRequestError("Invoice number is required")
	}

	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}
	if number == invoice.InvoiceNumber {
		return invoice, nil
	}

	existing, err := s.invoiceRepo.ListExistingNumbers(ctx)
	if err != nil {
		return nil, err
	}
	for _, n := range existing {
		if n == number {
			return nil, apperror.NewConflictError("Invoice number '" + number + "' already exists")
		}
	}

	invoice.InvoiceNumber = number
	invoice.RefNumber = number
	if err := s.invoiceRepo.Update(ctx, invoice); err != nil {
		return nil, err
	}
	return invoice, nil
}

// UpdateInvoiceStatus updates an invoice's status
func (s *InvoiceService) UpdateInvoiceStatus(ctx context.Context, id uuid.UUID, status enum.InvoiceStatus) error {
	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if invoice == nil {
		return apperror.NewNotFoundError("Invoice")
	}
	return s.invoiceRepo.UpdateStatus(ctx, id, status)
}

// DeleteInvoice deletes an invoice and its items
func (s *InvoiceService) DeleteInvoice(ctx context.Context, id uuid.UUID) error {
	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if invoice == nil {
		return apperror.NewNotFoundError("Invoice")
	}
	if err := s.itemRepo.DeleteByInvoiceID(ctx, id); err != nil {
		return err
	}
	return s.invoiceRepo.Delete(ctx, id)
}

// DeleteInvoiceItem removes one line from an invoice and refreshes the
// invoice totals. Deleting the last remaining item deletes the invoice
// itself.
func (s *InvoiceService) DeleteInvoiceItem(ctx context.Context, itemID uuid.UUID) error {
	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return err
	}
	if item == nil {
		return apperror.NewNotFoundError("Invoice item")
	}

	count, err := s.itemRepo.CountByInvoiceID(ctx, item.InvoiceID)
	if err != nil {
		return err
	}
	if count <= 1 {
		if err := s.itemRepo.Delete(ctx, itemID); err != nil {
			return err
		}
		return s.invoiceRepo.Delete(ctx, item.InvoiceID)
	}

	if err := s.itemRepo.Delete(ctx, itemID); err != nil {
		return err
	}
	return s.refreshTotals(ctx, item.InvoiceID)
}

// DeleteItemsByBarcode removes every invoice line carrying the barcode,
// with the usual last-item cascade per affected invoice. Used when a sale
// is deleted so no invoice keeps billing a removed item.
func (s *InvoiceService) DeleteItemsByBarcode(ctx context.Context, barcode string) error {
	items, err := s.itemRepo.ListByBarcode(ctx, barcode)
	if err != nil {
		return err
	}
	for _, item := range items {
		if err := s.DeleteInvoiceItem(ctx, item.ID); err != nil {
			return err
		}
	}
	return nil
}

func (s *InvoiceService) refreshTotals(ctx context.Context, invoiceID uuid.UUID) error {
	invoice, err := s.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		return err
	}
	if invoice == nil {
		return apperror.NewNotFoundError("Invoice")
	}

	items, err := s.itemRepo.GetByInvoiceID(ctx, invoiceID)
	if err != nil {
		return err
	}

	invoice.GrandTotal = itemsTotal(items)
	invoice.TotalQuantity = itemsQuantity(items)
	invoice.AmountInWords = AmountInWords(invoice.GrandTotal)
	return s.invoiceRepo.Update(ctx, invoice)
}
