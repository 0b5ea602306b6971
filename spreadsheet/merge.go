package spreadsheet

import (
	"context"

	"github.com/pkg/errors"
	"google.golang.org/api/sheets/v4"

	"github.com/sheetops/gsheets/logging"
	"github.com/sheetops/gsheets/table"
)

// AppendOrUpdate merges the table into the sheet and writes the result back.
//
// An empty sheet is simply overwritten with the table. Otherwise the two tables are
// combined with a full outer join on their shared columns (see table.Merge), which
// can add both rows and columns and multiplies rows that share key values. Use
// Append to add rows below the existing data instead.
func (c *Client) AppendOrUpdate(ctx context.Context, t *table.Table, name string) (*table.Table, error) {
	existing, err := c.Read(ctx, name)
	if err != nil {
		return nil, err
	}

	if existing.Empty() {
		if _, err := c.Write(ctx, t, name); err != nil {
			return nil, err
		}

		return t, nil
	}

	if t.Empty() {
		return nil, errors.Wrap(table.ErrEmptyTable, "nothing to append")
	}

	merged, err := table.Merge(existing, t, c.Fill)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to merge with sheet '%v'", name)
	}

	if _, err := c.Write(ctx, merged, name); err != nil {
		return nil, err
	}

	return merged, nil
}

// Append adds the table rows below the existing rows of the sheet, matching the
// table columns to the sheet header by name. A sheet without a header is written
// with the table as is.
func (c *Client) Append(ctx context.Context, t *table.Table, name string) (*table.Table, error) {
	existing, err := c.Read(ctx, name)
	if err != nil {
		return nil, err
	}

	if len(existing.Header) == 0 {
		if _, err := c.Write(ctx, t, name); err != nil {
			return nil, err
		}

		return t, nil
	}

	if t.Empty() {
		return nil, errors.Wrap(table.ErrEmptyTable, "nothing to append")
	}

	rows, err := table.Align(existing.Header, t)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to append to sheet '%v'", name)
	}

	values := sheets.ValueRange{
		Values: rows,
	}

	response, err := c.google.Spreadsheets.Values.Append(c.id, table.Quote(name), &values).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return nil, errors.Wrapf(err, "error appending to sheet '%v'", name)
	}

	if response.Updates != nil {
		logging.Infof("%v rows appended to sheet '%v'", response.Updates.UpdatedRows, name)
	}

	return &table.Table{
		Header: existing.Header,
		Rows:   rows,
	}, nil
}
