// Package auth manages the OAuth2 tokens that authorise gsheets to access the Google
// Sheets (and Drive) APIs on behalf of a user.
//
// Tokens are persisted as JSON in the working directory, in a file named after the
// credentials file and the scope (e.g. credentials.sheets). An Authorizer is created
// once per process and the HTTP clients it returns refresh expired access tokens
// transparently, writing any new token back to the token file.
package auth

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/sheetops/gsheets/logging"
)

const (
	SHEETS = "https://www.googleapis.com/auth/spreadsheets"
	DRIVE  = "https://www.googleapis.com/auth/drive.metadata.readonly"
)

var ErrNotAuthorised = errors.New("not authorised")

type Authorizer struct {
	credentials string
	workdir     string

	// Interactive enables the browser consent flow when there is no usable token.
	// Without it a missing or unrefreshable token is ErrNotAuthorised.
	Interactive bool

	consent func(context.Context, *oauth2.Config) (*oauth2.Token, error)
}

func New(credentials, workdir string) *Authorizer {
	return &Authorizer{
		credentials: credentials,
		workdir:     workdir,
		Interactive: true,
		consent:     consent,
	}
}

// Client returns an HTTP client authorised for the scope, loading the persisted
// token or, if there is none (or it has expired and cannot be refreshed), running
// the interactive consent flow.
func (a *Authorizer) Client(ctx context.Context, scope string) (*http.Client, error) {
	config, err := a.config(scope)
	if err != nil {
		return nil, err
	}

	file := a.tokens(scope)
	token, err := loadToken(file)
	if err != nil && !os.IsNotExist(errors.Cause(err)) {
		logging.Warnf("ignoring unreadable token file %v (%v)", file, err)
	}

	if token == nil || (!token.Valid() && token.RefreshToken == "") {
		if !a.Interactive {
			return nil, errors.Wrapf(ErrNotAuthorised, "no usable token in %v", file)
		}

		if token, err = a.consent(ctx, config); err != nil {
			return nil, err
		}

		if err := saveToken(file, token); err != nil {
			return nil, err
		}
	}

	source := &persistent{
		src:  config.TokenSource(ctx, token),
		file: file,
		last: token,
	}

	return oauth2.NewClient(ctx, source), nil
}

// Authorise runs the interactive consent flow unconditionally and stores the
// resulting token.
func (a *Authorizer) Authorise(ctx context.Context, scope string) (string, error) {
	config, err := a.config(scope)
	if err != nil {
		return "", err
	}

	token, err := a.consent(ctx, config)
	if err != nil {
		return "", err
	}

	file := a.tokens(scope)
	if err := saveToken(file, token); err != nil {
		return "", err
	}

	return file, nil
}

func (a *Authorizer) config(scope string) (*oauth2.Config, error) {
	b, err := os.ReadFile(a.credentials)
	if err != nil {
		return nil, errors.Wrap(err, "unable to read credentials")
	}

	config, err := google.ConfigFromJSON(b, scope)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid credentials file %v", a.credentials)
	}

	return config, nil
}

func (a *Authorizer) tokens(scope string) string {
	_, file := filepath.Split(a.credentials)
	name := strings.TrimSuffix(file, filepath.Ext(file))

	switch {
	case strings.HasPrefix(scope, SHEETS):
		return filepath.Join(a.workdir, fmt.Sprintf("%s.sheets", name))

	case strings.HasPrefix(scope, "https://www.googleapis.com/auth/drive"):
		return filepath.Join(a.workdir, fmt.Sprintf("%s.drive", name))

	default:
		return filepath.Join(a.workdir, fmt.Sprintf("%s.tokens", name))
	}
}
