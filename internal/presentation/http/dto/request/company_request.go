package request

// UpsertCompanyRequest represents the company profile save request. The
// same payload creates the profile on first save and replaces it afterward.
type UpsertCompanyRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=255"`
	CompanyCode string `json:"company_code" binding:"required,min=1,max=20"`
	Address     string `json:"address" binding:"omitempty"`
	GSTIN       string `json:"gstin" binding:"omitempty,max=20"`
	StateName   string `json:"state_name" binding:"omitempty,max=100"`
	StateCode   string `json:"state_code" binding:"omitempty,max=10"`
	Email       string `json:"email" binding:"omitempty,email"`
	Phone       string `json:"phone" binding:"omitempty,max=20"`
}
