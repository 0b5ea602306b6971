package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func NewSheetsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "sheets",
		Short: "Lists the worksheets in the spreadsheet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := app.Sheets(cmd.Context())
			if err != nil {
				return err
			}

			sheets, err := client.Sheets(cmd.Context())
			if err != nil {
				return err
			}

			headers := []string{"ID", "TITLE", "ROWS", "COLUMNS", "FROZEN"}
			rows := make([][]string, len(sheets))
			for i, s := range sheets {
				rows[i] = []string{
					fmt.Sprintf("%v", s.ID),
					s.Title,
					fmt.Sprintf("%v", s.Rows),
					fmt.Sprintf("%v", s.Columns),
					fmt.Sprintf("%v", s.FrozenRows),
				}
			}

			return app.output(cmd).Print(headers, rows, sheets)
		},
	}
}

func NewExistsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "exists SHEET",
		Short: "Prints true if the spreadsheet has a worksheet with the (case-sensitive) title",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := app.Sheets(cmd.Context())
			if err != nil {
				return err
			}

			exists, err := client.Exists(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			return app.output(cmd).Value("exists", exists)
		},
	}
}

func NewRangeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "range SHEET",
		Short: "Prints the A1 range of the data in a worksheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := app.Sheets(cmd.Context())
			if err != nil {
				return err
			}

			rng, err := client.DataRange(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			return app.output(cmd).Value("range", rng)
		},
	}
}

func NewCreateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "create SHEET",
		Short: "Adds a worksheet to the spreadsheet, unless it already exists",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := app.Sheets(cmd.Context())
			if err != nil {
				return err
			}

			created, err := client.Create(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			return app.output(cmd).Value("created", created)
		},
	}
}

func NewDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete SHEET",
		Short: "Deletes a worksheet from the spreadsheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := app.Sheets(cmd.Context())
			if err != nil {
				return err
			}

			return client.Delete(cmd.Context(), args[0])
		},
	}
}

func NewClearCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "clear SHEET",
		Short: "Clears all the values in a worksheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := app.Sheets(cmd.Context())
			if err != nil {
				return err
			}

			return client.Clear(cmd.Context(), args[0])
		},
	}
}
