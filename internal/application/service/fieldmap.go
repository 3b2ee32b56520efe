package service

import (
	"strconv"
	"strings"

	"github.com/alkbooks/invoicing-api/internal/infrastructure/extract"
)

// FieldSpec declares one logical field of an import schema and the column
// headers that may carry it. Alias matching is case-sensitive exact match,
// first alias wins; fallback chains (price falling back to rate or amount)
// are expressed by alias order.
type FieldSpec struct {
	Field    string
	Aliases  []string
	Required bool
}

// FieldMapping is the resolved logical-field to actual-header mapping for
// one uploaded file.
type FieldMapping map[string]string

var salesImportSchema = []FieldSpec{
	{Field: "barcode", Aliases: []string{"Barcode", "barcode", "BARCODE"}, Required: true},
	{Field: "model", Aliases: []string{"Description", "Model", "model", "description"}, Required: false},
	{Field: "colour", Aliases: []string{"Colour", "colour", "Color", "color"}, Required: false},
	{Field: "size", Aliases: []string{"Size", "size"}, Required: false},
	{Field: "price", Aliases: []string{"Price", "price", "Rate", "rate", "Amount", "amount"}, Required: true},
	{Field: "margin", Aliases: []string{"Margin Taxable", "Margin", "margin"}, Required: false},
	{Field: "date", Aliases: []string{"Sale Date", "Date", "date"}, Required: false},
}

var historicalImportSchema = []FieldSpec{
	{Field: "invoiceNumber", Aliases: []string{"Invoice No", "Invoice Number", "invoice_no", "InvoiceNo"}, Required: true},
	{Field: "customer", Aliases: []string{"Customer", "Customer Name", "Party Name", "customer"}, Required: true},
	{Field: "date", Aliases: []string{"Date", "Invoice Date", "date"}, Required: true},
	{Field: "barcode", Aliases: []string{"Barcode", "barcode"}, Required: true},
	{Field: "model", Aliases: []string{"Description", "Model", "model", "description"}, Required: true},
	{Field: "colour", Aliases: []string{"Colour", "colour", "Color", "color"}, Required: true},
	{Field: "size", Aliases: []string{"Size", "size"}, Required: true},
	{Field: "salesAmount", Aliases: []string{"Sales Amount", "Sale Amount", "Amount", "Price", "amount"}, Required: true},
	{Field: "margin", Aliases: []string{"Margin Taxable", "Margin", "margin"}, Required: true},
	{Field: "hsn", Aliases: []string{"HSN Code", "HSN", "hsn"}, Required: false},
}

var bulkInvoiceSchema = []FieldSpec{
	{Field: "invoiceNumber", Aliases: []string{"Invoice No", "Invoice Number", "invoice_no", "InvoiceNo"}, Required: true},
	{Field: "customer", Aliases: []string{"Customer", "Customer Name", "Party Name", "customer"}, Required: true},
	{Field: "date", Aliases: []string{"Date", "Invoice Date", "date"}, Required: true},
	{Field: "model", Aliases: []string{"Description", "Model", "model", "description"}, Required: false},
	{Field: "colour", Aliases: []string{"Colour", "colour", "Color", "color"}, Required: false},
	{Field: "size", Aliases: []string{"Size", "size"}, Required: false},
	{Field: "hsn", Aliases: []string{"HSN Code", "HSN", "hsn"}, Required: false},
	{Field: "quantity", Aliases: []string{"Quantity", "Qty", "quantity", "qty"}, Required: false},
	{Field: "price", Aliases: []string{"Price", "price", "Rate", "rate", "Amount", "amount"}, Required: true},
	{Field: "barcode", Aliases: []string{"Barcode", "barcode"}, Required: false},
}

var paymentImportSchema = []FieldSpec{
	{Field: "barcode", Aliases: []string{"Barcode", "barcode"}, Required: true},
	{Field: "paidAmount", Aliases: []string{"Paid Amount", "Paid", "Received", "Amount", "amount"}, Required: true},
	{Field: "paymentDate", Aliases: []string{"Payment Date", "Date", "date"}, Required: false},
}

// MapFields resolves the schema against the headers present in the first
// row. It returns the mapping and the list of required logical fields that
// matched no column. No fuzzy matching happens here: either a header is an
// exact alias or the field stays unmapped.
func MapFields(firstRow extract.RawRow, schema []FieldSpec) (FieldMapping, []string) {
	mapping := make(FieldMapping, len(schema))
	var missing []string

	for _, spec := range schema {
		matched := ""
		for _, alias := range spec.Aliases {
			if _, ok := firstRow[alias]; ok {
				matched = alias
				break
			}
		}
		if matched != "" {
			mapping[spec.Field] = matched
		} else if spec.Required {
			missing = append(missing, spec.Field)
		}
	}

	return mapping, missing
}

// fieldString returns the mapped cell as a trimmed string, "" when the
// field is unmapped or the cell is empty.
func fieldString(row extract.RawRow, mapping FieldMapping, field string) string {
	header, ok := mapping[field]
	if !ok {
		return ""
	}
	value, ok := row[header]
	if !ok || value == nil {
		return ""
	}
	switch v := value.(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	default:
		return ""
	}
}

// fieldFloat parses the mapped cell as a number. The second return is false
// when the cell is empty or not numeric.
func fieldFloat(row extract.RawRow, mapping FieldMapping, field string) (float64, bool) {
	s := fieldString(row, mapping, field)
	if s == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// fieldRaw returns the mapped cell unconverted, for values whose shape
// matters downstream (date cells may be serial numbers or strings).
func fieldRaw(row extract.RawRow, mapping FieldMapping, field string) interface{} {
	header, ok := mapping[field]
	if !ok {
		return nil
	}
	return row[header]
}
