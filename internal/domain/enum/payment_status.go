package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// PaymentStatus represents how much of a sale has been received.
// The invariant is derived, never set directly: unpaid iff nothing received,
// paid iff received covers the sale amount, partial otherwise.
type PaymentStatus int

const (
	PaymentStatusUnpaid  PaymentStatus = 0
	PaymentStatusPartial PaymentStatus = 1
	PaymentStatusPaid    PaymentStatus = 2
)

// DerivePaymentStatus computes the status from received vs sale amount.
func DerivePaymentStatus(receivedAmount, saleAmount float64) PaymentStatus {
	switch {
	case receivedAmount == 0:
		return PaymentStatusUnpaid
	case receivedAmount < saleAmount:
		return PaymentStatusPartial
	default:
		return PaymentStatusPaid
	}
}

func (s PaymentStatus) String() string {
	return [...]string{"unpaid", "partial", "paid"}[s]
}

// ParsePaymentStatus maps a status name to its enum value.
func ParsePaymentStatus(s string) (PaymentStatus, bool) {
	switch s {
	case "unpaid":
		return PaymentStatusUnpaid, true
	case "partial":
		return PaymentStatusPartial, true
	case "paid":
		return PaymentStatusPaid, true
	}
	return PaymentStatusUnpaid, false
}

func (s PaymentStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *PaymentStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = PaymentStatus(i)
		return nil
	}
	switch str {
	case "unpaid":
		*s = PaymentStatusUnpaid
	case "partial":
		*s = PaymentStatusPartial
	case "paid":
		*s = PaymentStatusPaid
	}
	return nil
}

func (s PaymentStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *PaymentStatus) Scan(value interface{}) error {
	if value == nil {
		*s = PaymentStatusUnpaid
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = PaymentStatus(v)
	case int:
		*s = PaymentStatus(v)
	}
	return nil
}
