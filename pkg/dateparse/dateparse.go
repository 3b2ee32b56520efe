package dateparse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Excel stores dates as day counts from 1899-12-30 (the serial epoch).
var serialEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

var (
	isoPattern    = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})`)
	dmyPattern    = regexp.MustCompile(`^(\d{1,2})[/\-](\d{1,2})[/\-](\d{4})$`)
	numberPattern = regexp.MustCompile(`^\d+(\.\d+)?$`)
)

// Normalize converts a raw spreadsheet cell value into a canonical YYYY-MM-DD
// string. Supported shapes: Excel serial numbers, ISO-ish strings
// (YYYY-M-D, optionally followed by a time part), and D/M/YYYY strings.
// The second return value reports whether the value could be parsed;
// callers decide the fallback policy (error vs today's date).
func Normalize(raw interface{}) (string, bool) {
	switch v := raw.(type) {
	case nil:
		return "", false
	case float64:
		return fromSerial(v), true
	case float32:
		return fromSerial(float64(v)), true
	case int:
		return fromSerial(float64(v)), true
	case int64:
		return fromSerial(float64(v)), true
	case string:
		return normalizeString(v)
	default:
		return "", false
	}
}

// NormalizeOrToday applies the import-flow fallback: unparsable values
// become today's date.
func NormalizeOrToday(raw interface{}) string {
	if date, ok := Normalize(raw); ok {
		return date
	}
	return Today()
}

// Today returns the current calendar date as YYYY-MM-DD.
func Today() string {
	return time.Now().Format("2006-01-02")
}

func fromSerial(serial float64) string {
	d := serialEpoch.Add(time.Duration(serial * float64(24*time.Hour)))
	return d.UTC().Format("2006-01-02")
}

func normalizeString(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}

	// Spreadsheet extractors sometimes hand serial dates through as strings.
	if numberPattern.MatchString(s) {
		serial, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return "", false
		}
		return fromSerial(serial), true
	}

	if m := isoPattern.FindStringSubmatch(s); m != nil {
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		return fmt.Sprintf("%s-%02d-%02d", m[1], month, day), true
	}

	if m := dmyPattern.FindStringSubmatch(s); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		if day >= 1 && day <= 31 && month >= 1 && month <= 12 && year >= 1900 {
			return fmt.Sprintf("%04d-%02d-%02d", year, month, day), true
		}
		return "", false
	}

	return "", false
}
