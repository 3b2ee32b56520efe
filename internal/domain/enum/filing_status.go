package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// FilingStatus tracks how far one month's GST return has progressed.
type FilingStatus int

const (
	FilingStatusDraft   FilingStatus = 0
	FilingStatusWorking FilingStatus = 1
	FilingStatusFiled   FilingStatus = 2
)

func (s FilingStatus) String() string {
	return [...]string{"draft", "working", "filed"}[s]
}

// ParseFilingStatus maps a status name to its enum value.
func ParseFilingStatus(s string) (FilingStatus, bool) {
	switch s {
	case "draft":
		return FilingStatusDraft, true
	case "working":
		return FilingStatusWorking, true
	case "filed":
		return FilingStatusFiled, true
	}
	return FilingStatusDraft, false
}

func (s FilingStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *FilingStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = FilingStatus(i)
		return nil
	}
	if parsed, ok := ParseFilingStatus(str); ok {
		*s = parsed
	}
	return nil
}

func (s FilingStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *FilingStatus) Scan(value interface{}) error {
	if value == nil {
		*s = FilingStatusDraft
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = FilingStatus(v)
	case int:
		*s = FilingStatus(v)
	}
	return nil
}
