package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sheetops/gsheets/logging"
	"github.com/sheetops/gsheets/spreadsheet"
)

func NewFreezeCmd(app *App) *cobra.Command {
	var rows int64 = 1

	cmd := &cobra.Command{
		Use:     "freeze SHEET",
		Short:   "Freezes the header rows of a worksheet",
		Example: `  gsheets freeze --rows 0 "Class Data"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if rows < 0 {
				return fmt.Errorf("invalid --rows (%v)", rows)
			}

			client, err := app.Sheets(cmd.Context())
			if err != nil {
				return err
			}

			return client.Freeze(cmd.Context(), args[0], rows)
		},
	}

	cmd.Flags().Int64Var(&rows, "rows", rows, "Number of rows to freeze, 0 unfreezes the worksheet")

	return cmd
}

func NewSortCmd(app *App) *cobra.Command {
	by := []string{}

	cmd := &cobra.Command{
		Use:   "sort SHEET",
		Short: "Sorts the rows of a worksheet by one or more columns",
		Long: `Sorts the data rows of a worksheet, leaving the header row in place. The first --by
column is the primary sort key.`,
		Example: `  gsheets sort --by "Class Level" --by "Name:desc" "Class Data"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			keys, err := parseSortKeys(by)
			if err != nil {
				return err
			}

			if len(keys) == 0 {
				return fmt.Errorf("--by is a required option")
			}

			client, err := app.Sheets(cmd.Context())
			if err != nil {
				return err
			}

			if err := client.Sort(cmd.Context(), args[0], keys...); err != nil {
				return err
			}

			logging.Infof("sorted '%v'", args[0])

			return nil
		},
	}

	cmd.Flags().StringArrayVar(&by, "by", by, "Sort column, optionally with ':asc' or ':desc' e.g. 'Name:desc'")

	return cmd
}

// parseSortKeys parses 'column[:order]' sort keys. Only the text after the last
// colon is treated as an order, so column names may themselves contain colons.
func parseSortKeys(list []string) ([]spreadsheet.SortKey, error) {
	keys := []spreadsheet.SortKey{}

	for _, s := range list {
		column := s
		order := spreadsheet.Ascending

		if ix := strings.LastIndex(s, ":"); ix >= 0 {
			if o, err := spreadsheet.ParseSortOrder(s[ix+1:]); err == nil {
				column = s[:ix]
				order = o
			}
		}

		if strings.TrimSpace(column) == "" {
			return nil, fmt.Errorf("invalid sort key '%v'", s)
		}

		keys = append(keys, spreadsheet.SortKey{Column: column, Order: order})
	}

	return keys, nil
}
