// Package numwords converts amounts to English words using the Indian
// numbering system (Hundred, Thousand, Lakh, Crore). Every invoice surface
// must use this single implementation so the wording on printed invoices
// never drifts between flows.
package numwords

import "math"

var (
	ones  = []string{"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine"}
	teens = []string{"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen", "Seventeen", "Eighteen", "Nineteen"}
	tens  = []string{"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety"}
)

// Convert spells out a non-negative integer. Zero yields "Zero".
func Convert(n int64) string {
	if n == 0 {
		return "Zero"
	}
	return convert(n)
}

// FromAmount floors a monetary amount and spells out the rupee part.
func FromAmount(amount float64) string {
	if amount <= 0 {
		return Convert(0)
	}
	return Convert(int64(math.Floor(amount)))
}

func convert(n int64) string {
	switch {
	case n < 10:
		return ones[n]
	case n < 20:
		return teens[n-10]
	case n < 100:
		s := tens[n/10]
		if n%10 != 0 {
			s += " " + ones[n%10]
		}
		return s
	case n < 1000:
		s := ones[n/100] + " Hundred"
		if n%100 != 0 {
			s += " and " + convert(n%100)
		}
		return s
	case n < 100000:
		s := convert(n/1000) + " Thousand"
		if n%1000 != 0 {
			s += " " + convert(n%1000)
		}
		return s
	case n < 10000000:
		s := convert(n/100000) + " Lakh"
		if n%100000 != 0 {
			s += " " + convert(n%100000)
		}
		return s
	default:
		s := convert(n/10000000) + " Crore"
		if n%10000000 != 0 {
			s += " " + convert(n%10000000)
		}
		return s
	}
}
