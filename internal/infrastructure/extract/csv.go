package extract

import (
	"context"
	"encoding/csv"
	"io"

	"github.com/alkbooks/invoicing-api/pkg/apperror"
)

type CSVExtractor struct{}

func NewCSVExtractor() *CSVExtractor {
	return &CSVExtractor{}
}

func (e *CSVExtractor) ExtractRows(ctx context.Context, r io.Reader) ([]RawRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, apperror.NewExtractionError("failed to parse csv: " + err.Error())
	}
	if len(records) < 2 {
		return nil, apperror.NewExtractionError("no data rows found in file")
	}

	return buildRows(records[0], records[1:]), nil
}
