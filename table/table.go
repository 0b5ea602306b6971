package table

import (
	"fmt"
)

// Table is the in-memory projection of a worksheet. The first worksheet row is the
// header, every following row is a record aligned by position to the header. Column
// names are not required to be unique and rows may be shorter than the header.
type Table struct {
	Header []string
	Rows   [][]any
}

func New(header []string, rows ...[]any) *Table {
	return &Table{
		Header: header,
		Rows:   rows,
	}
}

// FromValues converts the cell grid returned by the Sheets values API into a table.
func FromValues(values [][]any) *Table {
	t := Table{
		Header: []string{},
		Rows:   [][]any{},
	}

	if len(values) == 0 {
		return &t
	}

	for _, v := range values[0] {
		t.Header = append(t.Header, clean(v))
	}

	for _, row := range values[1:] {
		record := make([]any, len(row))
		copy(record, row)
		t.Rows = append(t.Rows, record)
	}

	return &t
}

// Values returns the header and rows as a rectangular block, padding short rows
// with empty strings.
func (t *Table) Values() [][]any {
	width := t.Width()
	values := make([][]any, 0, len(t.Rows)+1)

	header := make([]any, width)
	for i := range header {
		header[i] = ""
	}
	for i, h := range t.Header {
		header[i] = h
	}

	values = append(values, header)

	for _, row := range t.Rows {
		record := make([]any, width)
		for i := range record {
			if i < len(row) && row[i] != nil {
				record[i] = row[i]
			} else {
				record[i] = ""
			}
		}

		values = append(values, record)
	}

	return values
}

// Width is the number of columns, i.e. the longer of the header and the widest row.
func (t *Table) Width() int {
	if t == nil {
		return 0
	}

	width := len(t.Header)
	for _, row := range t.Rows {
		if len(row) > width {
			width = len(row)
		}
	}

	return width
}

// Empty is true for a table without any data rows or without any columns.
func (t *Table) Empty() bool {
	return t == nil || len(t.Rows) == 0 || t.Width() == 0
}

// Index returns the position of the first column with the given name, or -1.
func (t *Table) Index(column string) int {
	for i, h := range t.Header {
		if h == column {
			return i
		}
	}

	return -1
}

// Cell returns the value at (row, col) as a string, with missing cells as "".
func (t *Table) Cell(row, col int) string {
	if row < 0 || row >= len(t.Rows) {
		return ""
	}

	return cell(t.Rows[row], col)
}

func cell(row []any, col int) string {
	if col < 0 || col >= len(row) || row[col] == nil {
		return ""
	}

	return fmt.Sprintf("%v", row[col])
}

func clean(v any) string {
	if v == nil {
		return ""
	}

	return fmt.Sprintf("%v", v)
}
