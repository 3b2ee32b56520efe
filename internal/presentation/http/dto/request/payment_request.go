package request

// RecordPaymentRequest applies one manual payment to a tracker entry
type RecordPaymentRequest struct {
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	PaymentDate string  `json:"payment_date" binding:"omitempty"`
}
