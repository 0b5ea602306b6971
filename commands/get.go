package commands

import (
	"github.com/spf13/cobra"

	"github.com/sheetops/gsheets/logging"
)

func NewGetCmd(app *App) *cobra.Command {
	var file string
	var fileFormat string

	cmd := &cobra.Command{
		Use:   "get SHEET",
		Short: "Downloads a worksheet to a local file",
		Long: `Downloads a worksheet to a TSV, CSV, XLSX, YAML or JSON file, chosen by the file
extension or --format. Writes TSV to stdout if --file is not given.`,
		Example: `  gsheets get --spreadsheet "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms" \
              --file "students.tsv" \
              "Class Data"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := format(fileFormat, file)
			if err != nil {
				return err
			}

			client, err := app.Sheets(cmd.Context())
			if err != nil {
				return err
			}

			t, err := client.Read(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if err := save(file, c, t, cmd.OutOrStdout()); err != nil {
				return err
			}

			if file != "" && file != "-" {
				logging.Infof("retrieved %v rows from '%v' to %v", len(t.Rows), args[0], file)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", file, "Output file. Defaults to stdout")
	cmd.Flags().StringVar(&fileFormat, "format", fileFormat, "File format (tsv, csv, xlsx, yaml or json). Defaults to the file extension")

	return cmd
}
