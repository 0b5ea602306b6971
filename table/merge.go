package table

import (
	"strings"
)

// Merge combines two tables with a full outer join on the columns they share.
//
// The merged header is the left header followed by the right columns that do not
// appear in the left table. Left rows that are wider than the left header keep the
// extra cells, under blank column names. Each left row is paired with every right row
// that has the same values in the shared columns, so duplicated keys multiply rows
// rather than appending them. Left rows without a match get 'fill' in the right-only
// columns and unmatched right rows are added at the end with 'fill' in the left-only
// columns. Cells missing from a short row are treated as empty strings.
//
// Rows keep their original order: the left rows (each followed by its matches), then
// the unmatched right rows. They are not sorted by key.
func Merge(left, right *Table, fill any) (*Table, error) {
	keys := shared(left.Header, right.Header)
	if len(keys) == 0 {
		return nil, ErrNoSharedColumns
	}

	lk := make([]int, len(keys))
	rk := make([]int, len(keys))
	for i, k := range keys {
		if count(left.Header, k) > 1 || count(right.Header, k) > 1 {
			return nil, ErrDuplicateColumns
		}

		lk[i] = left.Index(k)
		rk[i] = right.Index(k)
	}

	// ... right-only columns
	extra := []int{}
	for j, h := range right.Header {
		if left.Index(h) < 0 {
			extra = append(extra, j)
		}
	}

	// ... blank names for ragged left cells
	header := append([]string{}, left.Header...)
	for len(header) < left.Width() {
		header = append(header, "")
	}

	width := len(header)
	for _, j := range extra {
		header = append(header, right.Header[j])
	}

	// ... index right rows by key
	index := map[string][]int{}
	for j, row := range right.Rows {
		k := key(row, rk)
		index[k] = append(index[k], j)
	}

	rows := [][]any{}
	matched := make([]bool, len(right.Rows))

	for _, row := range left.Rows {
		record := make([]any, 0, len(header))
		for i := 0; i < width; i++ {
			record = append(record, value(row, i))
		}

		if list, ok := index[key(row, lk)]; ok {
			for _, j := range list {
				merged := append([]any{}, record...)
				for _, ix := range extra {
					merged = append(merged, value(right.Rows[j], ix))
				}

				rows = append(rows, merged)
				matched[j] = true
			}

			continue
		}

		for range extra {
			record = append(record, fill)
		}

		rows = append(rows, record)
	}

	for j, row := range right.Rows {
		if matched[j] {
			continue
		}

		record := make([]any, 0, len(header))
		for i := 0; i < width; i++ {
			if i >= len(left.Header) {
				record = append(record, fill)
			} else if ix := right.Index(left.Header[i]); ix >= 0 {
				record = append(record, value(row, ix))
			} else {
				record = append(record, fill)
			}
		}

		for _, ix := range extra {
			record = append(record, value(row, ix))
		}

		rows = append(rows, record)
	}

	return &Table{
		Header: header,
		Rows:   rows,
	}, nil
}

func shared(left, right []string) []string {
	keys := []string{}
	seen := map[string]bool{}

	for _, h := range left {
		if !seen[h] && count(right, h) > 0 {
			keys = append(keys, h)
		}

		seen[h] = true
	}

	return keys
}

func count(header []string, column string) int {
	n := 0
	for _, h := range header {
		if h == column {
			n++
		}
	}

	return n
}

func key(row []any, columns []int) string {
	parts := make([]string, len(columns))
	for i, c := range columns {
		parts[i] = cell(row, c)
	}

	return strings.Join(parts, "\x1f")
}

func value(row []any, col int) any {
	if col < 0 || col >= len(row) || row[col] == nil {
		return ""
	}

	return row[col]
}
