package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/alkbooks/invoicing-api/internal/application/service"
	"github.com/alkbooks/invoicing-api/internal/presentation/http/dto/request"
	"github.com/alkbooks/invoicing-api/internal/presentation/http/dto/response"
)

// ClientHandler handles client-related HTTP requests
type ClientHandler struct {
	clientService *service.ClientService
}

// NewClientHandler creates a new client handler
func NewClientHandler(clientService *service.ClientService) *ClientHandler {
	return &ClientHandler{clientService: clientService}
}

// List handles listing clients
func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.clientService.ListClients(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Clients retrieved successfully", clients)
}

// Get handles retrieving a client
func (h *ClientHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	client, err := h.clientService.GetClient(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Client retrieved successfully", client)
}

// Create handles creating a client
func (h *ClientHandler) Create(c *gin.Context) {
	var req request.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	client, err := h.clientService.CreateClient(c.Request.Context(), &service.CreateClientInput{
		PartyName: req.PartyName,
		Address:   req.Address,
		GSTIN:     req.GSTIN,
		StateName: req.StateName,
		StateCode: req.StateCode,
		Email:     req.Email,
		Phone:     req.Phone,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Client created successfully", client)
}

// Update handles updating a client
func (h *ClientHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req request.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	client, err := h.clientService.UpdateClient(c.Request.Context(), id, &service.UpdateClientInput{
		PartyName: req.PartyName,
		Address:   req.Address,
		GSTIN:     req.GSTIN,
		StateName: req.StateName,
		StateCode: req.StateCode,
		Email:     req.Email,
		Phone:     req.Phone,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Client updated successfully", client)
}

// Delete handles deleting a client
func (h *ClientHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.clientService.DeleteClient(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
