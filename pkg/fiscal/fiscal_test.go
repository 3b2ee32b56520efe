package fiscal

import (
	"testing"
	"time"
)

func TestYearOf(t *testing.T) {
	tests := []struct {
		date string
		want string
	}{
		{"2024-03-31", "23-24"},
		{"2024-04-01", "24-25"},
		{"2024-12-31", "24-25"},
		{"2025-01-15", "24-25"},
		{"2000-04-01", "00-01"},
		{"1999-04-01", "99-00"},
	}

	for _, tt := range tests {
		d, err := time.Parse("2006-01-02", tt.date)
		if err != nil {
			t.Fatal(err)
		}
		if got := YearOf(d); got != tt.want {
			t.Errorf("YearOf(%s) = %q, want %q", tt.date, got, tt.want)
		}
	}
}

func TestYearOfString(t *testing.T) {
	if _, err := YearOfString("not a date"); err == nil {
		t.Error("YearOfString accepted an invalid date")
	}
	got, err := YearOfString("2024-04-01")
	if err != nil || got != "24-25" {
		t.Errorf("YearOfString(2024-04-01) = %q, %v", got, err)
	}
}

func TestSequence(t *testing.T) {
	tests := []struct {
		number string
		want   int
	}{
		{"ALK/24-25/12", 12},
		{"ALK/24-25/1", 1},
		{"HIST-2021-003", 0},
		{"no suffix", 0},
	}

	for _, tt := range tests {
		if got := Sequence(tt.number); got != tt.want {
			t.Errorf("Sequence(%q) = %d, want %d", tt.number, got, tt.want)
		}
	}
}

func TestNextSequence(t *testing.T) {
	if got := NextSequence(nil); got != 1 {
		t.Errorf("NextSequence(empty) = %d, want 1", got)
	}

	numbers := []string{"ALK/24-25/3", "ALK/24-25/7", "ALK/24-25/2"}
	if got := NextSequence(numbers); got != 8 {
		t.Errorf("NextSequence = %d, want 8", got)
	}

	// Unparseable suffixes are ignored, not treated as errors.
	mixed := []string{"LEGACY-0042", "ALK/24-25/5"}
	if got := NextSequence(mixed); got != 6 {
		t.Errorf("NextSequence(mixed) = %d, want 6", got)
	}
}

func TestFormatInvoiceNumber(t *testing.T) {
	if got := FormatInvoiceNumber("ALK", "24-25", 8); got != "ALK/24-25/8" {
		t.Errorf("FormatInvoiceNumber = %q", got)
	}
}
