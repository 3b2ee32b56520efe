package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/alkbooks/invoicing-api/internal/application/service"
	"github.com/alkbooks/invoicing-api/internal/domain/enum"
	"github.com/alkbooks/invoicing-api/internal/presentation/http/dto/request"
	"github.com/alkbooks/invoicing-api/internal/presentation/http/dto/response"
	"github.com/alkbooks/invoicing-api/pkg/pagination"
)

// PaymentHandler handles payment tracker HTTP requests
type PaymentHandler struct {
	trackerService *service.PaymentTrackerService
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(trackerService *service.PaymentTrackerService) *PaymentHandler {
	return &PaymentHandler{trackerService: trackerService}
}

// List handles listing tracker entries, paged, optionally by status
func (h *PaymentHandler) List(c *gin.Context) {
	if statusStr := c.Query("status"); statusStr != "" {
		status, ok := enum.ParsePaymentStatus(statusStr)
		if !ok {
			response.BadRequest(c, "Unknown payment status: "+statusStr)
			return
		}
		entries, err := h.trackerService.ListEntriesByStatus(c.Request.Context(), status)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, "Payment tracker entries retrieved successfully", entries)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	result, err := h.trackerService.ListEntriesPaged(c.Request.Context(), &pagination.PaginationParams{
		Page:    page,
		PerPage: perPage,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPagination(c, 200, "Payment tracker entries retrieved successfully", result)
}

// Get handles retrieving one tracker entry by barcode
func (h *PaymentHandler) Get(c *gin.Context) {
	entry, err := h.trackerService.GetEntry(c.Request.Context(), c.Param("barcode"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Payment tracker entry retrieved successfully", entry)
}

// RecordPayment handles applying one manual payment
func (h *PaymentHandler) RecordPayment(c *gin.Context) {
	var req request.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	entry, err := h.trackerService.RecordPayment(c.Request.Context(), c.Param("barcode"), req.Amount, req.PaymentDate)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Payment recorded successfully", entry)
}
