package spreadsheet

import (
	"context"

	"github.com/pkg/errors"
	"google.golang.org/api/sheets/v4"

	"github.com/sheetops/gsheets/logging"
)

type Sheet struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	Index      int64  `json:"index"`
	Rows       int64  `json:"rows"`
	Columns    int64  `json:"columns"`
	FrozenRows int64  `json:"frozen-rows"`
}

// Sheets returns the properties of every sheet in the spreadsheet, in tab order.
func (c *Client) Sheets(ctx context.Context) ([]Sheet, error) {
	spreadsheet, err := c.google.Spreadsheets.Get(c.id).Fields("sheets.properties").Context(ctx).Do()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch spreadsheet %v", c.id)
	}

	list := []Sheet{}
	for _, sheet := range spreadsheet.Sheets {
		if sheet.Properties == nil {
			continue
		}

		p := sheet.Properties
		s := Sheet{
			ID:    p.SheetId,
			Title: p.Title,
			Index: p.Index,
		}

		if g := p.GridProperties; g != nil {
			s.Rows = g.RowCount
			s.Columns = g.ColumnCount
			s.FrozenRows = g.FrozenRowCount
		}

		list = append(list, s)
	}

	return list, nil
}

func (c *Client) SheetNames(ctx context.Context) ([]string, error) {
	list, err := c.Sheets(ctx)
	if err != nil {
		return nil, err
	}

	names := []string{}
	for _, sheet := range list {
		names = append(names, sheet.Title)
	}

	return names, nil
}

// Lookup returns the sheet with exactly the given title.
func (c *Client) Lookup(ctx context.Context, name string) (*Sheet, error) {
	list, err := c.Sheets(ctx)
	if err != nil {
		return nil, err
	}

	for _, sheet := range list {
		if sheet.Title == name {
			return &sheet, nil
		}
	}

	return nil, errors.Wrapf(ErrSheetNotFound, "'%v'", name)
}

func (c *Client) Exists(ctx context.Context, name string) (bool, error) {
	if _, err := c.Lookup(ctx, name); errors.Is(err, ErrSheetNotFound) {
		return false, nil
	} else if err != nil {
		return false, err
	}

	return true, nil
}

func (c *Client) SheetID(ctx context.Context, name string) (int64, error) {
	sheet, err := c.Lookup(ctx, name)
	if err != nil {
		return 0, err
	}

	return sheet.ID, nil
}

// Create adds a sheet with the given title. A sheet that already exists is left
// as is and Create returns false.
func (c *Client) Create(ctx context.Context, name string) (bool, error) {
	if exists, err := c.Exists(ctx, name); err != nil {
		return false, err
	} else if exists {
		logging.Infof("sheet '%v' already exists in spreadsheet %v", name, c.id)
		return false, nil
	}

	rq := sheets.Request{
		AddSheet: &sheets.AddSheetRequest{
			Properties: &sheets.SheetProperties{
				Title: name,
			},
		},
	}

	if _, err := c.batch(ctx, &rq); err != nil {
		return false, err
	}

	logging.Infof("created sheet '%v' in spreadsheet %v", name, c.id)

	return true, nil
}

func (c *Client) Delete(ctx context.Context, name string) error {
	id, err := c.SheetID(ctx, name)
	if err != nil {
		return err
	}

	rq := sheets.Request{
		DeleteSheet: &sheets.DeleteSheetRequest{
			SheetId:         id,
			ForceSendFields: []string{"SheetId"},
		},
	}

	if _, err := c.batch(ctx, &rq); err != nil {
		return err
	}

	logging.Infof("deleted sheet '%v'", name)

	return nil
}
