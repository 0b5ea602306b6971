package auth

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os/exec"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/oauth2"

	"github.com/sheetops/gsheets/logging"
)

// consent runs the OAuth2 'installed application' flow: a one-shot HTTP server on a
// loopback address receives the authorisation code after the user grants access in
// the browser.
func consent(ctx context.Context, config *oauth2.Config) (*oauth2.Token, error) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return nil, errors.Wrap(err, "unable to start authorisation listener")
	}

	cfg := *config
	cfg.RedirectURL = fmt.Sprintf("http://%v/", listener.Addr())

	state := uuid.NewString()
	codes := make(chan string, 1)
	errs := make(chan error, 1)

	srv := &http.Server{
		Handler:           callback(state, codes, errs),
		ReadHeaderTimeout: 30 * time.Second,
	}

	go func() {
		if err := srv.Serve(listener); err != nil && err != http.ErrServerClosed {
			notify(errs, err)
		}
	}()

	defer func() {
		if err := srv.Shutdown(context.Background()); err != nil {
			logging.Warnf("%v", err)
		}
	}()

	url := cfg.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.SetAuthURLParam("prompt", "consent"))

	fmt.Printf("\n  Authorise gsheets by opening the following link in your browser:\n\n  %v\n\n", url)
	if err := browse(url); err != nil {
		logging.Debugf("could not open browser (%v)", err)
	}

	select {
	case <-ctx.Done():
		return nil, errors.Wrap(ctx.Err(), "authorisation cancelled")

	case err := <-errs:
		return nil, err

	case code := <-codes:
		token, err := cfg.Exchange(ctx, code)
		if err != nil {
			return nil, errors.Wrap(err, "unable to retrieve token from web")
		}

		return token, nil
	}
}

func callback(state string, codes chan<- string, errs chan<- error) http.HandlerFunc {
	return func(w http.ResponseWriter, rq *http.Request) {
		if rq.URL.Path != "/" {
			http.NotFound(w, rq)
			return
		}

		if reason := rq.FormValue("error"); reason != "" {
			http.Error(w, "gsheets was not authorised", http.StatusForbidden)
			notify(errs, errors.Errorf("authorisation refused (%v)", reason))
			return
		}

		if rq.FormValue("state") != state {
			http.Error(w, "invalid authorisation state", http.StatusBadRequest)
			return
		}

		code := rq.FormValue("code")
		if code == "" {
			http.Error(w, "missing authorisation code", http.StatusBadRequest)
			return
		}

		fmt.Fprintln(w, "gsheets has been authorised - you can close this window")

		select {
		case codes <- code:
		default:
		}
	}
}

func notify(errs chan<- error, err error) {
	select {
	case errs <- err:
	default:
	}
}

func browse(url string) error {
	var command *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		command = exec.Command("open", url)
	case "windows":
		command = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		command = exec.Command("xdg-open", url)
	}

	return command.Start()
}
