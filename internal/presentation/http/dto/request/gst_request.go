package request

// UpdateMarginRequest changes the taxable margin of one GST record.
// Margin may be zero but never negative.
type UpdateMarginRequest struct {
	MarginTaxable *float64 `json:"margin_taxable" binding:"required,min=0"`
}

// UpdateFilingStatusRequest sets the filing status of one GST period
type UpdateFilingStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=draft working filed"`
}
