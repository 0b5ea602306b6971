package table

import (
	"fmt"
	"regexp"
	"strings"
)

var bare = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// A1 and R1C1 cell references e.g. Q4, FY2024, R2C3, R1, C7
var reference = regexp.MustCompile(`^(?:[A-Za-z]+[0-9]+|[Rr][0-9]*(?:[Cc][0-9]*)?|[Cc][0-9]*)$`)

// ColumnName converts a zero-based column index to the spreadsheet column name
// i.e. 0 is A, 25 is Z, 26 is AA and 701 is ZZ.
func ColumnName(index int) string {
	if index < 0 {
		return ""
	}

	name := []byte{}
	for n := index + 1; n > 0; n = (n - 1) / 26 {
		name = append([]byte{byte('A' + (n-1)%26)}, name...)
	}

	return string(name)
}

// Range returns the A1 range spanning the header and every row of the table,
// anchored at A1 on the named sheet e.g. Data!A1:C3 for 3 columns and 2 rows.
func Range(sheet string, t *Table) (string, error) {
	width := t.Width()
	if width == 0 {
		return "", ErrEmptyTable
	}

	return fmt.Sprintf("%v!A1:%v%v", Quote(sheet), ColumnName(width-1), len(t.Rows)+1), nil
}

// Quote returns the sheet title in the form used in A1 notation, quoting titles
// that contain anything other than letters, digits and underscores and titles that
// would otherwise be read as a cell reference.
func Quote(sheet string) string {
	if bare.MatchString(sheet) && !reference.MatchString(sheet) {
		return sheet
	}

	return "'" + strings.ReplaceAll(sheet, "'", "''") + "'"
}
