package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/alkbooks/invoicing-api/internal/application/service"
	"github.com/alkbooks/invoicing-api/internal/presentation/http/dto/response"
	"github.com/alkbooks/invoicing-api/pkg/pagination"
)

// SalesHandler handles sales record HTTP requests
type SalesHandler struct {
	salesImport *service.SalesImportService
}

// NewSalesHandler creates a new sales handler
func NewSalesHandler(salesImport *service.SalesImportService) *SalesHandler {
	return &SalesHandler{salesImport: salesImport}
}

// List handles listing sales records one page at a time
func (h *SalesHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	result, err := h.salesImport.ListSalesPaged(c.Request.Context(), &pagination.PaginationParams{
		Page:    page,
		PerPage: perPage,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPagination(c, 200, "Sales records retrieved successfully", result)
}

// Get handles retrieving one sales record
func (h *SalesHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	record, err := h.salesImport.GetSalesRecord(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Sales record retrieved successfully", record)
}

// Delete handles removing one sales record with its payment tracker, GST
// and invoice line siblings
func (h *SalesHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.salesImport.DeleteSale(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
