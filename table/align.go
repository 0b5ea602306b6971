package table

import (
	"github.com/pkg/errors"
)

// Align rearranges the rows of a table to match the given header by column name,
// for appending below an existing worksheet. Columns of the header missing from the
// table are left empty; a table column that is not in the header is an error.
func Align(header []string, t *Table) ([][]any, error) {
	xref := map[int]int{}

	for i, h := range t.Header {
		ix := -1
		for j, v := range header {
			if v == h {
				ix = j
				break
			}
		}

		if ix < 0 {
			return nil, errors.Wrapf(ErrUnknownColumn, "'%v'", h)
		}

		xref[i] = ix
	}

	rows := make([][]any, 0, len(t.Rows))
	for _, row := range t.Rows {
		record := make([]any, len(header))
		for i := range record {
			record[i] = ""
		}

		for i := range t.Header {
			record[xref[i]] = value(row, i)
		}

		rows = append(rows, record)
	}

	return rows, nil
}
