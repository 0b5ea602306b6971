package spreadsheet

import (
	"context"

	"github.com/pkg/errors"
	"google.golang.org/api/sheets/v4"

	"github.com/sheetops/gsheets/logging"
	"github.com/sheetops/gsheets/table"
)

// DataRange returns the range of the sheet reported by the Sheets API as holding
// data, e.g. "Data!A1:C3".
func (c *Client) DataRange(ctx context.Context, name string) (string, error) {
	if exists, err := c.Exists(ctx, name); err != nil {
		return "", err
	} else if !exists {
		return "", errors.Wrapf(ErrSheetNotFound, "'%v'", name)
	}

	response, err := c.google.Spreadsheets.Values.Get(c.id, table.Quote(name)).Context(ctx).Do()
	if err != nil {
		return "", errors.Wrapf(err, "unable to retrieve range for sheet '%v'", name)
	}

	return response.Range, nil
}

// Read retrieves the sheet as a table, with the first row as the header. An empty
// sheet is an empty table.
func (c *Client) Read(ctx context.Context, name string) (*table.Table, error) {
	rng, err := c.DataRange(ctx, name)
	if err != nil {
		return nil, err
	}

	response, err := c.google.Spreadsheets.Values.Get(c.id, rng).Context(ctx).Do()
	if err != nil {
		return nil, errors.Wrapf(err, "unable to retrieve data from sheet '%v'", name)
	}

	return table.FromValues(response.Values), nil
}

// Write stores the table header and rows in the sheet starting at A1. Values are
// interpreted as if typed by a user, so numbers and formulas are not stored as text.
func (c *Client) Write(ctx context.Context, t *table.Table, name string) (int64, error) {
	rng, err := table.Range(name, t)
	if err != nil {
		return 0, err
	}

	values := sheets.ValueRange{
		Range:  rng,
		Values: t.Values(),
	}

	response, err := c.google.Spreadsheets.Values.Update(c.id, rng, &values).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do()
	if err != nil {
		return 0, errors.Wrapf(err, "unable to update sheet '%v'", name)
	}

	logging.Infof("%v cells updated", response.UpdatedCells)

	return response.UpdatedCells, nil
}

// Clear erases all the values in the sheet, leaving the formatting.
func (c *Client) Clear(ctx context.Context, name string) error {
	if exists, err := c.Exists(ctx, name); err != nil {
		return err
	} else if !exists {
		return errors.Wrapf(ErrSheetNotFound, "'%v'", name)
	}

	rq := sheets.BatchClearValuesRequest{
		Ranges: []string{table.Quote(name)},
	}

	if _, err := c.google.Spreadsheets.Values.BatchClear(c.id, &rq).Context(ctx).Do(); err != nil {
		return errors.Wrapf(err, "unable to clear sheet '%v'", name)
	}

	logging.Infof("cleared sheet '%v'", name)

	return nil
}
