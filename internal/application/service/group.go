package service

// ImportLine is one validated row of an invoice-bearing import file, in
// canonical fields. RowIndex is the zero-based position in the source file
// and defines item order within an invoice.
type ImportLine struct {
	RowIndex      int
	InvoiceNumber string
	Customer      string
	Date          string
	Barcode       string
	Description   string
	Colour        string
	Size          string
	HSNCode       string
	Quantity      float64
	Rate          float64
	Amount        float64
	Margin        float64
}

// InvoiceGroup collects the lines of one logical invoice. Header fields
// come from the first line seen for the key; later lines with conflicting
// header values are not reconciled.
type InvoiceGroup struct {
	Key      string
	Customer string
	Date     string
	Lines    []ImportLine
}

// GroupLines buckets lines by key, preserving both the first-seen order of
// groups and the source order of lines within each group. Lines are never
// reordered by key or value.
func GroupLines(lines []ImportLine, key func(ImportLine) string) []InvoiceGroup {
	index := make(map[string]int)
	groups := make([]InvoiceGroup, 0)

	for _, line := range lines {
		k := key(line)
		i, seen := index[k]
		if !seen {
			i = len(groups)
			index[k] = i
			groups = append(groups, InvoiceGroup{
				Key:      k,
				Customer: line.Customer,
				Date:     line.Date,
			})
		}
		groups[i].Lines = append(groups[i].Lines, line)
	}

	return groups
}

// GroupByInvoiceNumber groups pre-grouped invoice data (historical and bulk
// uploads) by the explicit invoice number column.
func GroupByInvoiceNumber(lines []ImportLine) []InvoiceGroup {
	return GroupLines(lines, func(l ImportLine) string { return l.InvoiceNumber })
}

// GroupBySaleDate synthesizes one invoice per day from ungrouped sales rows.
func GroupBySaleDate(lines []ImportLine) []InvoiceGroup {
	return GroupLines(lines, func(l ImportLine) string { return l.Date })
}
