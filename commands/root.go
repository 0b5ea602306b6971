package commands

import (
	"github.com/spf13/cobra"

	"github.com/sheetops/gsheets/logging"
)

// NewRootCmd builds the gsheets command tree. The persistent flags default to the
// configuration loaded from the environment and override it.
func NewRootCmd(app *App) *cobra.Command {
	cfg := app.Config

	root := &cobra.Command{
		Use:           APP,
		Short:         "Google Sheets worksheet utilities",
		Version:       VERSION,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := cfg.Log.Level
			if app.Debug {
				level = "debug"
			}

			return logging.Setup(level, cfg.Log.Format)
		},
	}

	flags := root.PersistentFlags()

	flags.StringVar(&cfg.Spreadsheet, "spreadsheet", cfg.Spreadsheet, "Spreadsheet ID or URL e.g. 'https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms'")
	flags.StringVar(&cfg.Credentials, "credentials", cfg.Credentials, "Path to the Google API 'credentials.json' file")
	flags.StringVar(&cfg.Workdir, "workdir", cfg.Workdir, "Directory for the authorisation tokens")
	flags.StringVar(&cfg.Log.Level, "log-level", cfg.Log.Level, "Log level (debug, info, warn or error)")
	flags.StringVar(&cfg.Log.Format, "log-format", cfg.Log.Format, "Log format (console or json)")
	flags.BoolVar(&app.Debug, "debug", app.Debug, "Enables debug logging")
	flags.BoolVar(&app.JSON, "json", app.JSON, "Output in JSON format")

	root.AddCommand(
		NewAuthoriseCmd(app),
		NewSheetsCmd(app),
		NewExistsCmd(app),
		NewRangeCmd(app),
		NewGetCmd(app),
		NewPutCmd(app),
		NewAppendCmd(app),
		NewMergeCmd(app),
		NewCreateCmd(app),
		NewDeleteCmd(app),
		NewFreezeCmd(app),
		NewSortCmd(app),
		NewClearCmd(app),
		NewRevisionCmd(app),
		NewVersionCmd(),
	)

	return root
}
