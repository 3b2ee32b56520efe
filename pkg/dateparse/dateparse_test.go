package dateparse

import "testing"

func TestNormalizeSerial(t *testing.T) {
	tests := []struct {
		name   string
		serial float64
		want   string
	}{
		{"epoch day zero", 0, "1899-12-30"},
		{"epoch day one", 1, "1899-12-31"},
		{"before 1900 leap boundary", 60, "1900-02-28"},
		{"modern date", 44927, "2023-01-01"},
		{"leap day", 45351, "2024-02-29"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Normalize(tt.serial)
			if !ok {
				t.Fatalf("Normalize(%v) not parsed", tt.serial)
			}
			if got != tt.want {
				t.Errorf("Normalize(%v) = %q, want %q", tt.serial, got, tt.want)
			}
		})
	}
}

func TestNormalizeSerialString(t *testing.T) {
	got, ok := Normalize("44927")
	if !ok || got != "2023-01-01" {
		t.Errorf("Normalize(\"44927\") = %q, %v, want 2023-01-01, true", got, ok)
	}
}

func TestNormalizeISO(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2024-06-15", "2024-06-15"},
		{"2024-6-5", "2024-06-05"},
		{"2024-06-15T10:30:00Z", "2024-06-15"},
		{"2024-06-15 10:30:00", "2024-06-15"},
	}

	for _, tt := range tests {
		got, ok := Normalize(tt.in)
		if !ok {
			t.Fatalf("Normalize(%q) not parsed", tt.in)
		}
		if got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeDMY(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"15/06/2024", "2024-06-15", true},
		{"1/4/2024", "2024-04-01", true},
		{"15-06-2024", "2024-06-15", true},
		{"31/12/1900", "1900-12-31", true},
		{"32/06/2024", "", false},
		{"15/13/2024", "", false},
		{"15/06/1899", "", false},
	}

	for _, tt := range tests {
		got, ok := Normalize(tt.in)
		if ok != tt.ok {
			t.Fatalf("Normalize(%q) ok = %v, want %v", tt.in, ok, tt.ok)
		}
		if got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeUnparsable(t *testing.T) {
	for _, in := range []interface{}{nil, "", "not a date", "06/15", struct{}{}} {
		if got, ok := Normalize(in); ok {
			t.Errorf("Normalize(%v) = %q, want unparsable", in, got)
		}
	}
}

// Canonical output fed back in must come out unchanged.
func TestNormalizeIdempotent(t *testing.T) {
	inputs := []interface{}{"15/06/2024", float64(44927), "2024-2-29"}
	for _, in := range inputs {
		first, ok := Normalize(in)
		if !ok {
			t.Fatalf("Normalize(%v) not parsed", in)
		}
		second, ok := Normalize(first)
		if !ok || second != first {
			t.Errorf("Normalize(%q) = %q, want fixed point", first, second)
		}
	}
}

func TestNormalizeOrToday(t *testing.T) {
	if got := NormalizeOrToday("garbage"); got != Today() {
		t.Errorf("NormalizeOrToday fallback = %q, want today %q", got, Today())
	}
	if got := NormalizeOrToday("15/06/2024"); got != "2024-06-15" {
		t.Errorf("NormalizeOrToday parsed = %q, want 2024-06-15", got)
	}
}
