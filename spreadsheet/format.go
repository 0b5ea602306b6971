package spreadsheet

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"google.golang.org/api/sheets/v4"

	"github.com/sheetops/gsheets/logging"
	"github.com/sheetops/gsheets/table"
)

type SortOrder string

const (
	Ascending  SortOrder = "ASCENDING"
	Descending SortOrder = "DESCENDING"
)

type SortKey struct {
	Column string
	Order  SortOrder
}

func ParseSortOrder(s string) (SortOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "asc", "ascending":
		return Ascending, nil

	case "desc", "descending":
		return Descending, nil

	default:
		return "", errors.Errorf("invalid sort order '%v'", s)
	}
}

// Freeze sets the number of frozen rows at the top of the sheet. Zero unfreezes.
func (c *Client) Freeze(ctx context.Context, name string, rows int64) error {
	if rows < 0 {
		return errors.Errorf("invalid number of frozen rows (%v)", rows)
	}

	id, err := c.SheetID(ctx, name)
	if err != nil {
		return err
	}

	rq := sheets.Request{
		UpdateSheetProperties: &sheets.UpdateSheetPropertiesRequest{
			Properties: &sheets.SheetProperties{
				SheetId: id,
				GridProperties: &sheets.GridProperties{
					FrozenRowCount:  rows,
					ForceSendFields: []string{"FrozenRowCount"},
				},
				ForceSendFields: []string{"SheetId"},
			},
			Fields: "gridProperties.frozenRowCount",
		},
	}

	if _, err := c.batch(ctx, &rq); err != nil {
		return err
	}

	logging.Infof("%v rows frozen in sheet '%v'", rows, name)

	return nil
}

// Sort orders the rows below the header row by the given columns, the first key
// being the most significant.
//
// A sortRange request is issued per key, least significant first, so that each
// stable sort leaves the earlier keys dominant.
func (c *Client) Sort(ctx context.Context, name string, keys ...SortKey) error {
	if len(keys) == 0 {
		return nil
	}

	for _, k := range keys {
		if k.Order != Ascending && k.Order != Descending {
			return errors.Errorf("invalid sort order '%v' for column '%v'", k.Order, k.Column)
		}
	}

	id, err := c.SheetID(ctx, name)
	if err != nil {
		return err
	}

	response, err := c.google.Spreadsheets.Values.Get(c.id, table.Quote(name)).Context(ctx).Do()
	if err != nil {
		return errors.Wrapf(err, "unable to retrieve data from sheet '%v'", name)
	}

	if len(response.Values) == 0 {
		return errors.Wrapf(table.ErrEmptyTable, "sheet '%v' has no header row", name)
	}

	t := table.FromValues(response.Values)
	columns := make([]int, len(keys))
	for i, k := range keys {
		if columns[i] = t.Index(k.Column); columns[i] < 0 {
			return errors.Wrapf(table.ErrUnknownColumn, "'%v'", k.Column)
		}
	}

	for i := len(keys) - 1; i >= 0; i-- {
		rq := sheets.Request{
			SortRange: &sheets.SortRangeRequest{
				Range: &sheets.GridRange{
					SheetId:          id,
					StartRowIndex:    1,
					EndRowIndex:      int64(len(t.Rows) + 1),
					StartColumnIndex: 0,
					EndColumnIndex:   int64(len(t.Header)),
					ForceSendFields:  []string{"SheetId", "StartColumnIndex"},
				},
				SortSpecs: []*sheets.SortSpec{
					{
						DimensionIndex:  int64(columns[i]),
						SortOrder:       string(keys[i].Order),
						ForceSendFields: []string{"DimensionIndex"},
					},
				},
			},
		}

		if _, err := c.batch(ctx, &rq); err != nil {
			return err
		}

		logging.Infof("sheet '%v' sorted by column '%v' in %v order", name, keys[i].Column, keys[i].Order)
	}

	return nil
}
