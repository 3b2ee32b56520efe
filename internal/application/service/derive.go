package service

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/alkbooks/invoicing-api/pkg/numwords"
)

// Deriver computes the financial fields that follow from validated input.
// Every method is a pure function; the only state is the configured GST
// rate, applied to the taxable margin under the margin scheme.
type Deriver struct {
	gstRate float64
}

func NewDeriver(gstRate float64) *Deriver {
	return &Deriver{gstRate: gstRate}
}

// Margin derives purchase amount and GST amount from a sale amount and its
// taxable margin. Both are always recomputed together; storing one without
// the other would let them drift after a margin edit.
func (d *Deriver) Margin(saleAmount, marginTaxable float64) (purchaseAmount, gstAmount float64) {
	sale := decimal.NewFromFloat(saleAmount)
	margin := decimal.NewFromFloat(marginTaxable)
	rate := decimal.NewFromFloat(d.gstRate)

	purchaseAmount, _ = sale.Sub(margin).Round(2).Float64()
	gstAmount, _ = margin.Mul(rate).Round(2).Float64()
	return purchaseAmount, gstAmount
}

// GrandTotal sums line amounts with decimal arithmetic so the result feeds
// the reconciliation comparison without float drift.
func GrandTotal(lines []ImportLine) float64 {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(decimal.NewFromFloat(line.Amount))
	}
	f, _ := total.Round(2).Float64()
	return f
}

// TotalQuantity sums explicit line quantities. Flows that fix quantity at
// one sale per row use the line count instead.
func TotalQuantity(lines []ImportLine) float64 {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(decimal.NewFromFloat(line.Quantity))
	}
	f, _ := total.Round(2).Float64()
	return f
}

// AmountInWords renders a rupee amount in Indian-system words with the
// invoice suffix. The paise part is dropped.
func AmountInWords(amount float64) string {
	return numwords.FromAmount(amount) + " Rupees Only"
}

// ComposeDescription joins model, colour and size into the printed line
// description, skipping empty parts.
func ComposeDescription(model, colour, size string) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{model, colour, size} {
		if strings.TrimSpace(p) != "" {
			parts = append(parts, strings.TrimSpace(p))
		}
	}
	return strings.Join(parts, " - ")
}

// MonthYear splits a canonical YYYY-MM-DD date into its calendar month and
// year for GST period bucketing.
func MonthYear(date string) (month, year int) {
	parts := strings.Split(date, "-")
	if len(parts) != 3 {
		return 0, 0
	}
	year, _ = strconv.Atoi(parts[0])
	month, _ = strconv.Atoi(parts[1])
	return month, year
}
