package commands

import (
	"github.com/spf13/cobra"

	"github.com/sheetops/gsheets/auth"
	"github.com/sheetops/gsheets/logging"
)

func NewAuthoriseCmd(app *App) *cobra.Command {
	var withDrive bool

	cmd := &cobra.Command{
		Use:     "authorise",
		Aliases: []string{"authorize"},
		Short:   "Authorises access to Google Sheets and stores the OAuth2 tokens",
		Long: `Runs the OAuth2 consent flow in the browser and stores the access and refresh tokens
in the working directory. Needs to be run once, interactively, before any command that
accesses a spreadsheet is run unattended.`,
		Example: `  gsheets authorise --credentials "credentials.json" --workdir ".google"
  gsheets authorise --drive`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			authorizer, err := app.authorizer()
			if err != nil {
				return err
			}

			scopes := []string{auth.SHEETS}
			if withDrive {
				scopes = append(scopes, auth.DRIVE)
			}

			for _, scope := range scopes {
				file, err := authorizer.Authorise(cmd.Context(), scope)
				if err != nil {
					return err
				}

				logging.Infof("authorisation tokens saved to %v", file)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&withDrive, "drive", withDrive, "Also authorises read-only access to the Google Drive metadata used by 'revision'")

	return cmd
}
