package extract

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/alkbooks/invoicing-api/pkg/apperror"
)

// RawRow is a single data row keyed by the column headers of the
// uploaded file. Values are the raw cell contents, untrimmed except
// for the header keys themselves.
type RawRow map[string]interface{}

// RowExtractor turns an uploaded spreadsheet into ordered raw rows.
// The first row of the sheet is treated as the header row and never
// appears in the result.
type RowExtractor interface {
	ExtractRows(ctx context.Context, r io.Reader) ([]RawRow, error)
}

// ForFilename picks an extractor based on the upload's file extension.
func ForFilename(filename string) (RowExtractor, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xls":
		return NewExcelExtractor(), nil
	case ".csv":
		return NewCSVExtractor(), nil
	default:
		return nil, apperror.NewExtractionError("unsupported file type: " + filepath.Ext(filename))
	}
}

// buildRows pairs each data row with the header row. Cells beyond the
// header width are dropped, short rows leave the trailing headers
// unset.
func buildRows(headers []string, records [][]string) []RawRow {
	rows := make([]RawRow, 0, len(records))
	for _, record := range records {
		row := make(RawRow, len(headers))
		for i, header := range headers {
			key := strings.TrimSpace(header)
			if key == "" {
				continue
			}
			if i < len(record) {
				row[key] = record[i]
			}
		}
		rows = append(rows, row)
	}
	return rows
}
