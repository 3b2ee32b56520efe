// Package fiscal handles Indian financial-year arithmetic (April 1 to
// March 31, encoded as two 2-digit years, e.g. "24-25") and invoice-number
// formatting built on top of it.
package fiscal

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

var suffixPattern = regexp.MustCompile(`/(\d+)$`)

// YearOf returns the financial year a date falls in, as "YY-YY".
// Dates in January–March belong to the year that started the previous April.
func YearOf(date time.Time) string {
	year := date.Year()
	if date.Month() >= time.April {
		return fmt.Sprintf("%02d-%02d", year%100, (year+1)%100)
	}
	return fmt.Sprintf("%02d-%02d", (year-1)%100, year%100)
}

// YearOfString parses a YYYY-MM-DD date and returns its financial year.
func YearOfString(date string) (string, error) {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: %w", date, err)
	}
	return YearOf(d), nil
}

// FormatInvoiceNumber builds "<code>/<financialYear>/<sequence>".
func FormatInvoiceNumber(companyCode, financialYear string, sequence int) string {
	return fmt.Sprintf("%s/%s/%d", companyCode, financialYear, sequence)
}

// Sequence extracts the trailing numeric suffix of an invoice number
// ("ALK/24-25/12" -> 12). Numbers without a parseable suffix yield 0.
func Sequence(invoiceNumber string) int {
	m := suffixPattern.FindStringSubmatch(invoiceNumber)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}

// NextSequence returns max(existing suffixes)+1, or 1 when the list is empty.
func NextSequence(invoiceNumbers []string) int {
	max := 0
	for _, num := range invoiceNumbers {
		if seq := Sequence(num); seq > max {
			max = seq
		}
	}
	return max + 1
}
