// Package spreadsheet implements the gsheets operations on a single Google Sheets
// spreadsheet: sheet lookup, reading and writing tables, appending and merging rows,
// freezing header rows and sorting.
//
// A Client is bound to one spreadsheet ID and wraps a Sheets service constructed once
// and shared by every operation. Each operation is a small number of synchronous API
// calls; nothing is cached and concurrent edits by other users are not detected, so
// read-modify-write operations (AppendOrUpdate, Append, Sort) can race with them.
package spreadsheet

import (
	"context"

	"github.com/pkg/errors"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// DefaultFill is the placeholder written by AppendOrUpdate into cells that have no
// counterpart in the other table.
const DefaultFill = 0

type Client struct {
	google *sheets.Service
	id     string

	// Fill is the merge placeholder, DefaultFill unless changed.
	Fill any
}

// New creates a client for the spreadsheet. The options are passed through to the
// Sheets service, typically option.WithHTTPClient with an authorised client.
func New(ctx context.Context, spreadsheet string, opts ...option.ClientOption) (*Client, error) {
	google, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "unable to create new Sheets client")
	}

	return NewWithService(google, spreadsheet), nil
}

func NewWithService(google *sheets.Service, spreadsheet string) *Client {
	return &Client{
		google: google,
		id:     spreadsheet,
		Fill:   DefaultFill,
	}
}

func (c *Client) ID() string {
	return c.id
}

func (c *Client) batch(ctx context.Context, requests ...*sheets.Request) (*sheets.BatchUpdateSpreadsheetResponse, error) {
	rq := sheets.BatchUpdateSpreadsheetRequest{
		Requests: requests,
	}

	response, err := c.google.Spreadsheets.BatchUpdate(c.id, &rq).Context(ctx).Do()
	if err != nil {
		return nil, errors.Wrapf(err, "error updating spreadsheet %v", c.id)
	}

	return response, nil
}
