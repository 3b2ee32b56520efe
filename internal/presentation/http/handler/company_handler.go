package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/alkbooks/invoicing-api/internal/application/service"
	"github.com/alkbooks/invoicing-api/internal/presentation/http/dto/request"
	"github.com/alkbooks/invoicing-api/internal/presentation/http/dto/response"
)

// CompanyHandler handles company profile HTTP requests
type CompanyHandler struct {
	companyService *service.CompanyService
}

// NewCompanyHandler creates a new company handler
func NewCompanyHandler(companyService *service.CompanyService) *CompanyHandler {
	return &CompanyHandler{companyService: companyService}
}

// Get handles retrieving the company profile
func (h *CompanyHandler) Get(c *gin.Context) {
	company, err := h.companyService.GetProfile(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Company profile retrieved successfully", company)
}

// Update handles saving the company profile
func (h *CompanyHandler) Update(c *gin.Context) {
	var req request.UpsertCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	company, err := h.companyService.UpsertProfile(c.Request.Context(), &service.UpsertCompanyInput{
		Name:        req.Name,
		CompanyCode: req.CompanyCode,
		Address:     req.Address,
		GSTIN:       req.GSTIN,
		StateName:   req.StateName,
		StateCode:   req.StateCode,
		Email:       req.Email,
		Phone:       req.Phone,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Company profile saved successfully", company)
}
