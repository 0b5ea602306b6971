package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	"github.com/sheetops/gsheets/auth"
	"github.com/sheetops/gsheets/config"
	"github.com/sheetops/gsheets/logging"
	"github.com/sheetops/gsheets/spreadsheet"
)

const APP = "gsheets"

// VERSION is set with -ldflags "-X github.com/sheetops/gsheets/commands.VERSION=..."
var VERSION = "v0.1.0"

// App holds the configuration shared by every command and the constructors for the
// Google services, which the tests replace with clients for a local server.
type App struct {
	Config *config.Config
	Debug  bool
	JSON   bool

	Sheets func(ctx context.Context) (*spreadsheet.Client, error)
	Drive  func(ctx context.Context) (*drive.Service, error)
}

func NewApp(cfg *config.Config) *App {
	app := App{
		Config: cfg,
	}

	app.Sheets = app.sheets
	app.Drive = app.drive

	return &app
}

func (app *App) authorizer() (*auth.Authorizer, error) {
	if strings.TrimSpace(app.Config.Credentials) == "" {
		return nil, fmt.Errorf("--credentials is a required option")
	}

	if strings.TrimSpace(app.Config.Workdir) == "" {
		return nil, fmt.Errorf("--workdir is a required option")
	}

	return auth.New(app.Config.Credentials, app.Config.Workdir), nil
}

// unattended returns an authorizer that fails with auth.ErrNotAuthorised rather than
// waiting for browser consent when there is no terminal, e.g. when run from cron.
func (app *App) unattended() (*auth.Authorizer, error) {
	authorizer, err := app.authorizer()
	if err != nil {
		return nil, err
	}

	fd := os.Stdin.Fd()
	authorizer.Interactive = isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)

	return authorizer, nil
}

func (app *App) sheets(ctx context.Context) (*spreadsheet.Client, error) {
	if strings.TrimSpace(app.Config.Spreadsheet) == "" {
		return nil, fmt.Errorf("--spreadsheet is a required option")
	}

	if err := app.Config.Validate(); err != nil {
		return nil, err
	}

	id, err := app.Config.SpreadsheetID()
	if err != nil {
		return nil, err
	}

	authorizer, err := app.unattended()
	if err != nil {
		return nil, err
	}

	client, err := authorizer.Client(ctx, auth.SHEETS)
	if err != nil {
		return nil, errors.Wrap(err, "authentication/authorization error")
	}

	logging.Debugf("spreadsheet %v", id)

	return spreadsheet.New(ctx, id, option.WithHTTPClient(client))
}

func (app *App) drive(ctx context.Context) (*drive.Service, error) {
	authorizer, err := app.unattended()
	if err != nil {
		return nil, err
	}

	client, err := authorizer.Client(ctx, auth.DRIVE)
	if err != nil {
		return nil, errors.Wrap(err, "authentication/authorization error")
	}

	gdrive, err := drive.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, errors.Wrap(err, "unable to create new Drive client")
	}

	return gdrive, nil
}
