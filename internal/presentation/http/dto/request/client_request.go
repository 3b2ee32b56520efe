package request

// CreateClientRequest represents a client creation request
type CreateClientRequest struct {
	PartyName string `json:"party_name" binding:"required,min=2,max=255"`
	Address   string `json:"address" binding:"omitempty"`
	GSTIN     string `json:"gstin" binding:"omitempty,max=20"`
	StateName string `json:"state_name" binding:"omitempty,max=100"`
	StateCode string `json:"state_code" binding:"omitempty,max=10"`
	Email     string `json:"email" binding:"omitempty,email"`
	Phone     string `json:"phone" binding:"omitempty,max=20"`
}

// UpdateClientRequest represents a client update request
type UpdateClientRequest struct {
	PartyName *string `json:"party_name" binding:"omitempty,min=2,max=255"`
	Address   *string `json:"address"`
	GSTIN     *string `json:"gstin" binding:"omitempty,max=20"`
	StateName *string `json:"state_name" binding:"omitempty,max=100"`
	StateCode *string `json:"state_code" binding:"omitempty,max=10"`
	Email     *string `json:"email" binding:"omitempty,email"`
	Phone     *string `json:"phone" binding:"omitempty,max=20"`
}
