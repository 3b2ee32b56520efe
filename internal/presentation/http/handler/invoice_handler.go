package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/alkbooks/invoicing-api/internal/application/service"
	"github.com/alkbooks/invoicing-api/internal/domain/enum"
	"github.com/alkbooks/invoicing-api/internal/presentation/http/dto/request"
	"github.com/alkbooks/invoicing-api/internal/presentation/http/dto/response"
)

// InvoiceHandler handles invoice-related HTTP requests
type InvoiceHandler struct {
	invoiceService *service.InvoiceService
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(invoiceService *service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

// List handles listing invoices, optionally filtered by financial year
func (h *InvoiceHandler) List(c *gin.Context) {
	if fy := c.Query("financial_year"); fy != "" {
		invoices, err := h.invoiceService.ListInvoicesByFinancialYear(c.Request.Context(), fy)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, "Invoices retrieved successfully", invoices)
		return
	}

	invoices, err := h.invoiceService.ListInvoices(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Invoices retrieved successfully", invoices)
}

// Get handles retrieving an invoice with its items
func (h *InvoiceHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	invoice, err := h.invoiceService.GetInvoice(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Invoice retrieved successfully", invoice)
}

// Create handles creating an invoice
func (h *InvoiceHandler) Create(c *gin.Context) {
	var req request.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	items := make([]service.InvoiceItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, service.InvoiceItemInput{
			Barcode:     item.Barcode,
			Description: item.Description,
			HSNCode:     item.HSNCode,
			Quantity:    item.Quantity,
			Rate:        item.Rate,
			Amount:      item.Amount,
		})
	}

	invoice, err := h.invoiceService.CreateInvoice(c.Request.Context(), &service.CreateInvoiceInput{
		InvoiceNumber: req.InvoiceNumber,
		RefNumber:     req.RefNumber,
		InvoiceDate:   req.InvoiceDate,
		ClientID:      req.ClientID,
		ClientName:    req.ClientName,
		Status:        enum.InvoiceStatusDraft,
		Items:         items,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Invoice created successfully", invoice)
}

// UpdateStatus handles changing an invoice's status
func (h *InvoiceHandler) UpdateStatus(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req request.UpdateInvoiceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	status, ok := enum.ParseInvoiceStatus(req.Status)
	if !ok {
		response.BadRequest(c, "Unknown invoice status: "+req.Status)
		return
	}

	if err := h.invoiceService.UpdateInvoiceStatus(c.Request.Context(), id, status); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Invoice status updated", nil)
}

// UpdateNumber handles renaming an invoice. The new number must not be in
// use by another invoice.
func (h *InvoiceHandler) UpdateNumber(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req request.UpdateInvoiceNumberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	invoice, err := h.invoiceService.UpdateInvoiceNumber(c.Request.Context(), id, req.InvoiceNumber)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Invoice number updated", invoice)
}

// Delete handles deleting an invoice and its items
func (h *InvoiceHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.invoiceService.DeleteInvoice(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// DeleteItem handles removing one line from an invoice. Deleting the last
// line deletes the whole invoice.
func (h *InvoiceHandler) DeleteItem(c *gin.Context) {
	itemID, err := parseIDParam(c, "itemID")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.invoiceService.DeleteInvoiceItem(c.Request.Context(), itemID); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
