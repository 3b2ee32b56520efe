package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// InvoiceStatus represents the lifecycle state of an invoice
type InvoiceStatus int

const (
	InvoiceStatusDraft     InvoiceStatus = 0
	InvoiceStatusSent      InvoiceStatus = 1
	InvoiceStatusPaid      InvoiceStatus = 2
	InvoiceStatusCancelled InvoiceStatus = 3
)

func (s InvoiceStatus) String() string {
	return [...]string{"draft", "sent", "paid", "cancelled"}[s]
}

// ParseInvoiceStatus maps a status name to its enum value.
func ParseInvoiceStatus(s string) (InvoiceStatus, bool) {
	switch s {
	case "draft":
		return InvoiceStatusDraft, true
	case "sent":
		return InvoiceStatusSent, true
	case "paid":
		return InvoiceStatusPaid, true
	case "cancelled":
		return InvoiceStatusCancelled, true
	}
	return InvoiceStatusDraft, false
}

func (s InvoiceStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *InvoiceStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = InvoiceStatus(i)
		return nil
	}
	switch str {
	case "draft":
		*s = InvoiceStatusDraft
	case "sent":
		*s = InvoiceStatusSent
	case "paid":
		*s = InvoiceStatusPaid
	case "cancelled":
		*s = InvoiceStatusCancelled
	}
	return nil
}

func (s InvoiceStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *InvoiceStatus) Scan(value interface{}) error {
	if value == nil {
		*s = InvoiceStatusDraft
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = InvoiceStatus(v)
	case int:
		*s = InvoiceStatus(v)
	}
	return nil
}
