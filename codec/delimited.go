package codec

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/sheetops/gsheets/table"
)

var TSV = Delimited{Comma: '\t', Name: "tsv"}
var CSV = Delimited{Comma: ',', Name: "csv"}

// Delimited handles TSV and CSV files with the header in the first line.
type Delimited struct {
	Comma rune
	Name  string
}

func (d Delimited) Format() string {
	return d.Name
}

func (d Delimited) Read(f io.Reader) (*table.Table, error) {
	r := csv.NewReader(f)
	r.Comma = d.Comma
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "invalid %v file", d.Name)
	}

	if len(records) == 0 {
		return nil, errors.Errorf("%v file is empty", d.Name)
	}

	values := make([][]any, 0, len(records))
	for _, record := range records {
		row := make([]any, len(record))
		for i, v := range record {
			row[i] = v
		}

		values = append(values, row)
	}

	return table.FromValues(values), nil
}

func (d Delimited) Write(f io.Writer, t *table.Table) error {
	w := csv.NewWriter(f)
	w.Comma = d.Comma

	for _, row := range t.Values() {
		record := make([]string, len(row))
		for i, v := range row {
			record[i] = fmt.Sprintf("%v", v)
		}

		if err := w.Write(record); err != nil {
			return errors.WithStack(err)
		}
	}

	w.Flush()

	return errors.WithStack(w.Error())
}
