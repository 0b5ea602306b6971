package auth

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/oauth2"

	"github.com/sheetops/gsheets/logging"
)

// persistent writes every new token issued by the underlying token source back to
// the token file, so that a refreshed access token survives the process.
type persistent struct {
	sync.Mutex
	src  oauth2.TokenSource
	file string
	last *oauth2.Token
}

func (p *persistent) Token() (*oauth2.Token, error) {
	token, err := p.src.Token()
	if err != nil {
		return nil, errors.Wrap(err, "unable to refresh token")
	}

	p.Lock()
	defer p.Unlock()

	if p.last == nil || p.last.AccessToken != token.AccessToken {
		if err := saveToken(p.file, token); err != nil {
			logging.Warnf("%v", err)
		} else {
			logging.Debugf("refreshed token saved to %v", p.file)
		}

		p.last = token
	}

	return token, nil
}

func loadToken(file string) (*oauth2.Token, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	defer f.Close()

	unlock, err := lock(f, false)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to lock %v", file)
	}

	defer unlock()

	token := oauth2.Token{}
	if err := json.NewDecoder(f).Decode(&token); err != nil {
		return nil, errors.Wrapf(err, "invalid token file %v", file)
	}

	return &token, nil
}

func saveToken(file string, token *oauth2.Token) error {
	if err := os.MkdirAll(filepath.Dir(file), 0700); err != nil {
		return errors.Wrap(err, "unable to create token directory")
	}

	f, err := os.OpenFile(file, os.O_RDWR|os.O_CREATE, 0600)
	if err != nil {
		return errors.Wrap(err, "unable to save OAuth2 token")
	}

	defer f.Close()

	unlock, err := lock(f, true)
	if err != nil {
		return errors.Wrapf(err, "unable to lock %v", file)
	}

	defer unlock()

	if err := f.Truncate(0); err != nil {
		return errors.WithStack(err)
	}

	if err := json.NewEncoder(f).Encode(token); err != nil {
		return errors.Wrap(err, "unable to save OAuth2 token")
	}

	return nil
}
