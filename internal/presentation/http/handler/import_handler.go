package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/alkbooks/invoicing-api/internal/application/service"
	"github.com/alkbooks/invoicing-api/internal/presentation/http/dto/request"
	"github.com/alkbooks/invoicing-api/internal/presentation/http/dto/response"
)

// ImportHandler handles the four bulk import flows
type ImportHandler struct {
	salesImport      *service.SalesImportService
	historicalImport *service.HistoricalImportService
	bulkInvoice      *service.BulkInvoiceService
	paymentImport    *service.PaymentImportService
}

// NewImportHandler creates a new import handler
func NewImportHandler(
	salesImport *service.SalesImportService,
	historicalImport *service.HistoricalImportService,
	bulkInvoice *service.BulkInvoiceService,
	paymentImport *service.PaymentImportService,
) *ImportHandler {
	return &ImportHandler{
		salesImport:      salesImport,
		historicalImport: historicalImport,
		bulkInvoice:      bulkInvoice,
		paymentImport:    paymentImport,
	}
}

// PreviewSales handles a sales import dry run
func (h *ImportHandler) PreviewSales(c *gin.Context) {
	f, filename, err := openUpload(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer f.Close()

	preview, err := h.salesImport.Preview(c.Request.Context(), f, filename)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Sales import preview", preview)
}

// ImportSales handles a sales import
func (h *ImportHandler) ImportSales(c *gin.Context) {
	f, filename, err := openUpload(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer f.Close()

	result, err := h.salesImport.Import(c.Request.Context(), f, filename)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Sales imported successfully", result)
}

// PreviewHistorical handles a historical import dry run
func (h *ImportHandler) PreviewHistorical(c *gin.Context) {
	f, filename, err := openUpload(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer f.Close()

	preview, err := h.historicalImport.Preview(c.Request.Context(), f, filename)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Historical import preview", preview)
}

// ImportHistorical handles a historical import
func (h *ImportHandler) ImportHistorical(c *gin.Context) {
	f, filename, err := openUpload(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer f.Close()

	result, err := h.historicalImport.Import(c.Request.Context(), f, filename)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Historical data imported successfully", result)
}

// PreviewBulkInvoices handles a bulk invoice upload dry run
func (h *ImportHandler) PreviewBulkInvoices(c *gin.Context) {
	f, filename, err := openUpload(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer f.Close()

	preview, err := h.bulkInvoice.Preview(c.Request.Context(), f, filename)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Bulk invoice preview", preview)
}

// ImportBulkInvoices handles a bulk invoice upload
func (h *ImportHandler) ImportBulkInvoices(c *gin.Context) {
	f, filename, err := openUpload(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer f.Close()

	result, err := h.bulkInvoice.Import(c.Request.Context(), f, filename)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Invoices imported successfully", result)
}

// ImportPayments handles a payment import
func (h *ImportHandler) ImportPayments(c *gin.Context) {
	f, filename, err := openUpload(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer f.Close()

	result, err := h.paymentImport.Import(c.Request.Context(), f, filename)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Payments applied", result)
}

// GenerateInvoices creates draft invoices from a previously imported batch
func (h *ImportHandler) GenerateInvoices(c *gin.Context) {
	var req request.GenerateInvoicesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	invoices, err := h.salesImport.GenerateInvoices(c.Request.Context(), c.Param("batchID"), req.ClientName)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Invoices generated successfully", invoices)
}

// DeleteBatch removes every sales record of one import batch
func (h *ImportHandler) DeleteBatch(c *gin.Context) {
	deleted, err := h.salesImport.DeleteBatch(c.Request.Context(), c.Param("batchID"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Import batch deleted", gin.H{"deleted": deleted})
}
