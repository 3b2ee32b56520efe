package extract

import (
	"context"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/alkbooks/invoicing-api/pkg/apperror"
)

type ExcelExtractor struct{}

func NewExcelExtractor() *ExcelExtractor {
	return &ExcelExtractor{}
}

// ExtractRows reads the first sheet of an xlsx workbook. Row order is
// preserved exactly as it appears in the sheet.
func (e *ExcelExtractor) ExtractRows(ctx context.Context, r io.Reader) ([]RawRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, apperror.NewExtractionError("failed to open workbook: " + err.Error())
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, apperror.NewExtractionError("workbook has no sheets")
	}

	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, apperror.NewExtractionError("failed to read sheet: " + err.Error())
	}
	if len(records) < 2 {
		return nil, apperror.NewExtractionError("no data rows found in file")
	}

	return buildRows(records[0], records[1:]), nil
}
