package codec

import (
	"io"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/sheetops/gsheets/table"
)

// XLSX reads the first worksheet of an Excel workbook and writes a table to a
// single worksheet workbook.
type XLSX struct {
}

func (x XLSX) Format() string {
	return "xlsx"
}

func (x XLSX) Read(r io.Reader) (*table.Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "invalid xlsx file")
	}

	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("xlsx file has no worksheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, errors.WithStack(err)
	}

	values := make([][]any, 0, len(rows))
	for _, record := range rows {
		row := make([]any, len(record))
		for i, v := range record {
			row[i] = v
		}

		values = append(values, row)
	}

	return table.FromValues(values), nil
}

func (x XLSX) Write(w io.Writer, t *table.Table) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	for i, row := range t.Values() {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return errors.WithStack(err)
		}

		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return errors.WithStack(err)
		}
	}

	if err := f.Write(w); err != nil {
		return errors.Wrap(err, "error writing xlsx file")
	}

	return nil
}
