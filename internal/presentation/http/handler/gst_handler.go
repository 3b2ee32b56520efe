package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/alkbooks/invoicing-api/internal/application/service"
	"github.com/alkbooks/invoicing-api/internal/domain/enum"
	"github.com/alkbooks/invoicing-api/internal/presentation/http/dto/request"
	"github.com/alkbooks/invoicing-api/internal/presentation/http/dto/response"
)

// GSTHandler handles GST record HTTP requests
type GSTHandler struct {
	gstService *service.GSTService
}

// NewGSTHandler creates a new GST handler
func NewGSTHandler(gstService *service.GSTService) *GSTHandler {
	return &GSTHandler{gstService: gstService}
}

// List handles listing GST records, optionally for one month and year
func (h *GSTHandler) List(c *gin.Context) {
	monthStr, yearStr := c.Query("month"), c.Query("year")
	if monthStr != "" && yearStr != "" {
		month, err1 := strconv.Atoi(monthStr)
		year, err2 := strconv.Atoi(yearStr)
		if err1 != nil || err2 != nil || month < 1 || month > 12 {
			response.BadRequest(c, "month and year must be numeric, month between 1 and 12")
			return
		}
		records, err := h.gstService.ListRecordsByPeriod(c.Request.Context(), month, year)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, "GST records retrieved successfully", records)
		return
	}

	records, err := h.gstService.ListRecords(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "GST records retrieved successfully", records)
}

// UpdateMargin handles editing the taxable margin of one record
func (h *GSTHandler) UpdateMargin(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req request.UpdateMarginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	record, err := h.gstService.UpdateMargin(c.Request.Context(), id, *req.MarginTaxable)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Margin updated successfully", record)
}

// Delete handles removing one GST record together with the sales and
// payment tracker rows sharing its barcode
func (h *GSTHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.gstService.DeleteRecord(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// GetFilingStatus handles reading the filing status of one period
func (h *GSTHandler) GetFilingStatus(c *gin.Context) {
	month, year, ok := parsePeriodParams(c)
	if !ok {
		return
	}

	status, err := h.gstService.MonthlyStatus(c.Request.Context(), month, year)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Filing status retrieved successfully", status)
}

// UpdateFilingStatus handles setting the filing status of one period
func (h *GSTHandler) UpdateFilingStatus(c *gin.Context) {
	month, year, ok := parsePeriodParams(c)
	if !ok {
		return
	}

	var req request.UpdateFilingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	filing, ok := enum.ParseFilingStatus(req.Status)
	if !ok {
		response.BadRequest(c, "Unknown filing status: "+req.Status)
		return
	}

	status, err := h.gstService.SetMonthlyStatus(c.Request.Context(), month, year, filing)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Filing status updated successfully", status)
}

func parsePeriodParams(c *gin.Context) (month, year int, ok bool) {
	month, err1 := strconv.Atoi(c.Param("month"))
	year, err2 := strconv.Atoi(c.Param("year"))
	if err1 != nil || err2 != nil || month < 1 || month > 12 {
		response.BadRequest(c, "month and year must be numeric, month between 1 and 12")
		return 0, 0, false
	}
	return month, year, true
}

// MonthlySummary handles the per-month GST totals for one year
func (h *GSTHandler) MonthlySummary(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		response.BadRequest(c, "Invalid year")
		return
	}

	summaries, err := h.gstService.MonthlySummaries(c.Request.Context(), year)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "GST summary retrieved successfully", summaries)
}
