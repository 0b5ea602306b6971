package commands

import (
	"time"

	"github.com/spf13/cobra"
)

func NewRevisionCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "revision",
		Short: "Prints the latest Google Drive revision of the spreadsheet",
		Long: `Prints the ID and modification time of the latest revision of the spreadsheet, for
scripts that only download a spreadsheet when it has changed. Requires 'authorise --drive'.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := app.Sheets(cmd.Context())
			if err != nil {
				return err
			}

			gdrive, err := app.Drive(cmd.Context())
			if err != nil {
				return err
			}

			revision, err := client.Revision(cmd.Context(), gdrive)
			if err != nil {
				return err
			}

			return app.output(cmd).Print(
				[]string{"REVISION", "MODIFIED"},
				[][]string{{revision.ID, revision.Modified.Format(time.RFC3339)}},
				revision)
		},
	}
}
