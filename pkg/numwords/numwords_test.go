package numwords

import "testing"

func TestConvert(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "Zero"},
		{5, "Five"},
		{13, "Thirteen"},
		{20, "Twenty"},
		{42, "Forty Two"},
		{100, "One Hundred"},
		{105, "One Hundred and Five"},
		{999, "Nine Hundred and Ninety Nine"},
		{1000, "One Thousand"},
		{1500, "One Thousand Five Hundred"},
		{12345, "Twelve Thousand Three Hundred and Forty Five"},
		{100000, "One Lakh"},
		{250000, "Two Lakh Fifty Thousand"},
		{10000000, "One Crore"},
		{12345678, "One Crore Twenty Three Lakh Forty Five Thousand Six Hundred and Seventy Eight"},
	}

	for _, tt := range tests {
		if got := Convert(tt.n); got != tt.want {
			t.Errorf("Convert(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestFromAmount(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "Zero"},
		{-10, "Zero"},
		{1500.99, "One Thousand Five Hundred"},
		{200, "Two Hundred"},
	}

	for _, tt := range tests {
		if got := FromAmount(tt.amount); got != tt.want {
			t.Errorf("FromAmount(%v) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}
