package commands

import (
	"github.com/spf13/cobra"

	"github.com/sheetops/gsheets/logging"
	"github.com/sheetops/gsheets/spreadsheet"
	"github.com/sheetops/gsheets/table"
)

// upload holds the flags shared by the commands that upload a table file to a
// worksheet.
type upload struct {
	file   string
	format string
	create bool
}

func (u *upload) flags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&u.file, "file", u.file, "Table file to upload. Defaults to stdin")
	cmd.Flags().StringVar(&u.format, "format", u.format, "File format (tsv, csv, xlsx, yaml or json). Defaults to the file extension")
	cmd.Flags().BoolVar(&u.create, "create", u.create, "Creates the worksheet if it does not exist")
}

func (u *upload) prepare(cmd *cobra.Command, app *App, sheet string) (*spreadsheet.Client, *table.Table, error) {
	c, err := format(u.format, u.file)
	if err != nil {
		return nil, nil, err
	}

	t, err := load(u.file, c, cmd.InOrStdin())
	if err != nil {
		return nil, nil, err
	}

	client, err := app.Sheets(cmd.Context())
	if err != nil {
		return nil, nil, err
	}

	if u.create {
		if _, err := client.Create(cmd.Context(), sheet); err != nil {
			return nil, nil, err
		}
	}

	return client, t, nil
}

func NewPutCmd(app *App) *cobra.Command {
	u := upload{}

	cmd := &cobra.Command{
		Use:   "put SHEET",
		Short: "Uploads a local table file to a worksheet",
		Long: `Writes the header and rows of a table file to the top left of a worksheet. Existing
cells outside the table are left unchanged - use 'clear' first to replace a worksheet.`,
		Example: `  gsheets put --file "students.tsv" --create "Class Data"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, t, err := u.prepare(cmd, app, args[0])
			if err != nil {
				return err
			}

			updated, err := client.Write(cmd.Context(), t, args[0])
			if err != nil {
				return err
			}

			logging.Infof("uploaded %v rows (%v cells) to '%v'", len(t.Rows), updated, args[0])

			return nil
		},
	}

	u.flags(cmd)

	return cmd
}

func NewAppendCmd(app *App) *cobra.Command {
	u := upload{}

	cmd := &cobra.Command{
		Use:   "append SHEET",
		Short: "Appends the rows of a local table file to a worksheet",
		Long: `Appends the rows of a table file after the last row of a worksheet, matching the file
columns to the worksheet columns by name. Columns that are not in the worksheet are an error.`,
		Example: `  gsheets append --file "new-students.csv" "Class Data"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, t, err := u.prepare(cmd, app, args[0])
			if err != nil {
				return err
			}

			if _, err := client.Append(cmd.Context(), t, args[0]); err != nil {
				return err
			}

			logging.Infof("appended %v rows to '%v'", len(t.Rows), args[0])

			return nil
		},
	}

	u.flags(cmd)

	return cmd
}

func NewMergeCmd(app *App) *cobra.Command {
	u := upload{}
	fill := ""

	cmd := &cobra.Command{
		Use:   "merge SHEET",
		Short: "Merges a local table file into a worksheet",
		Long: `Merges a table file into a worksheet with a full outer join on the columns the two
have in common and writes the result back to the worksheet. Cells without a counterpart
are set to the --fill value. Rows with duplicate key values are multiplied.`,
		Example: `  gsheets merge --file "grades.yaml" --fill "" "Class Data"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, t, err := u.prepare(cmd, app, args[0])
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("fill") {
				client.Fill = fill
			}

			merged, err := client.AppendOrUpdate(cmd.Context(), t, args[0])
			if err != nil {
				return err
			}

			logging.Infof("merged %v rows into '%v' (%v rows)", len(t.Rows), args[0], len(merged.Rows))

			return nil
		},
	}

	u.flags(cmd)
	cmd.Flags().StringVar(&fill, "fill", fill, "Value for cells without a counterpart in the other table. Defaults to 0")

	return cmd
}
