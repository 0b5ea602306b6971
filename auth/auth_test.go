package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"golang.org/x/oauth2"
)

const credentials = `{
  "installed": {
    "client_id": "12345.apps.googleusercontent.com",
    "client_secret": "secret",
    "auth_uri": "https://accounts.google.com/o/oauth2/auth",
    "token_uri": "https://oauth2.googleapis.com/token",
    "redirect_uris": ["http://localhost"]
  }
}`

func setup(t *testing.T) (*Authorizer, string) {
	dir := t.TempDir()
	file := filepath.Join(dir, "credentials.json")

	if err := os.WriteFile(file, []byte(credentials), 0600); err != nil {
		t.Fatalf("Error creating credentials file (%v)", err)
	}

	return New(file, filepath.Join(dir, "tokens")), dir
}

func TestTokensFile(t *testing.T) {
	a := New("/etc/gsheets/.google/credentials.json", "/var/gsheets")

	tests := map[string]string{
		SHEETS:                       "/var/gsheets/credentials.sheets",
		SHEETS + ".readonly":         "/var/gsheets/credentials.sheets",
		DRIVE:                        "/var/gsheets/credentials.drive",
		"https://example.com/scope": "/var/gsheets/credentials.tokens",
	}

	for scope, expected := range tests {
		if file := a.tokens(scope); file != expected {
			t.Errorf("Incorrect tokens file for %v - expected:%v, got:%v", scope, expected, file)
		}
	}
}

func TestSaveAndLoadToken(t *testing.T) {
	file := filepath.Join(t.TempDir(), "credentials.sheets")
	token := oauth2.Token{
		AccessToken:  "access",
		TokenType:    "Bearer",
		RefreshToken: "refresh",
		Expiry:       time.Date(2026, time.October, 16, 12, 30, 0, 0, time.UTC),
	}

	if err := saveToken(file, &token); err != nil {
		t.Fatalf("Unexpected error saving token (%v)", err)
	}

	loaded, err := loadToken(file)
	if err != nil {
		t.Fatalf("Unexpected error loading token (%v)", err)
	}

	if loaded.AccessToken != token.AccessToken || loaded.RefreshToken != token.RefreshToken || !loaded.Expiry.Equal(token.Expiry) {
		t.Errorf("Incorrect token\n   expected: %+v\n   got:      %+v\n", token, *loaded)
	}

	if info, err := os.Stat(file); err != nil {
		t.Fatalf("%v", err)
	} else if info.Mode().Perm() != 0600 {
		t.Errorf("Incorrect token file permissions - expected:%v, got:%v", os.FileMode(0600), info.Mode().Perm())
	}
}

type sequence struct {
	tokens []*oauth2.Token
	calls  int
}

func (s *sequence) Token() (*oauth2.Token, error) {
	token := s.tokens[s.calls]
	if s.calls < len(s.tokens)-1 {
		s.calls++
	}

	return token, nil
}

func TestPersistentTokenSourceSavesRefreshedToken(t *testing.T) {
	file := filepath.Join(t.TempDir(), "credentials.sheets")
	initial := &oauth2.Token{AccessToken: "initial", RefreshToken: "refresh"}
	refreshed := &oauth2.Token{AccessToken: "refreshed", RefreshToken: "refresh"}

	p := persistent{
		src:  &sequence{tokens: []*oauth2.Token{initial, refreshed}},
		file: file,
		last: initial,
	}

	if _, err := p.Token(); err != nil {
		t.Fatalf("Unexpected error (%v)", err)
	}

	if _, err := os.Stat(file); !os.IsNotExist(err) {
		t.Errorf("Expected unchanged token not to be saved")
	}

	if _, err := p.Token(); err != nil {
		t.Fatalf("Unexpected error (%v)", err)
	}

	saved, err := loadToken(file)
	if err != nil {
		t.Fatalf("Expected refreshed token to be saved (%v)", err)
	}

	if saved.AccessToken != "refreshed" {
		t.Errorf("Incorrect saved token - expected:%v, got:%v", "refreshed", saved.AccessToken)
	}
}

func TestClientWithValidToken(t *testing.T) {
	a, _ := setup(t)
	a.consent = func(context.Context, *oauth2.Config) (*oauth2.Token, error) {
		return nil, errors.New("unexpected consent request")
	}

	token := oauth2.Token{AccessToken: "access", TokenType: "Bearer", Expiry: time.Now().Add(time.Hour)}
	if err := saveToken(a.tokens(SHEETS), &token); err != nil {
		t.Fatalf("%v", err)
	}

	client, err := a.Client(context.Background(), SHEETS)
	if err != nil {
		t.Fatalf("Unexpected error (%v)", err)
	} else if client == nil {
		t.Fatalf("Expected HTTP client, got %v", client)
	}
}

func TestClientWithoutTokenRunsConsent(t *testing.T) {
	a, _ := setup(t)
	consented := 0
	a.consent = func(context.Context, *oauth2.Config) (*oauth2.Token, error) {
		consented++
		return &oauth2.Token{AccessToken: "granted", RefreshToken: "refresh", Expiry: time.Now().Add(time.Hour)}, nil
	}

	if _, err := a.Client(context.Background(), SHEETS); err != nil {
		t.Fatalf("Unexpected error (%v)", err)
	}

	if consented != 1 {
		t.Errorf("Expected consent flow to run once, ran %v times", consented)
	}

	if token, err := loadToken(a.tokens(SHEETS)); err != nil {
		t.Errorf("Expected token to be saved (%v)", err)
	} else if token.AccessToken != "granted" {
		t.Errorf("Incorrect saved token - got %v", token.AccessToken)
	}
}

func TestClientWithoutTokenNonInteractive(t *testing.T) {
	a, _ := setup(t)
	a.Interactive = false

	if _, err := a.Client(context.Background(), SHEETS); !errors.Is(err, ErrNotAuthorised) {
		t.Errorf("Expected %v, got %v", ErrNotAuthorised, err)
	}
}

func TestClientWithMissingCredentials(t *testing.T) {
	a := New(filepath.Join(t.TempDir(), "missing.json"), t.TempDir())

	if _, err := a.Client(context.Background(), SHEETS); err == nil {
		t.Errorf("Expected error for missing credentials file")
	}
}

func TestCallback(t *testing.T) {
	codes := make(chan string, 1)
	errs := make(chan error, 1)
	handler := callback("xyz", codes, errs)

	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest(http.MethodGet, "/?state=xyz&code=4/abc", nil))

	if w.Code != http.StatusOK {
		t.Errorf("Incorrect status - expected:%v, got:%v", http.StatusOK, w.Code)
	}

	select {
	case code := <-codes:
		if code != "4/abc" {
			t.Errorf("Incorrect code - expected:%v, got:%v", "4/abc", code)
		}
	default:
		t.Errorf("Expected authorisation code")
	}
}

func TestCallbackWithInvalidState(t *testing.T) {
	codes := make(chan string, 1)
	errs := make(chan error, 1)
	handler := callback("xyz", codes, errs)

	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest(http.MethodGet, "/?state=abc&code=4/abc", nil))

	if w.Code != http.StatusBadRequest {
		t.Errorf("Incorrect status - expected:%v, got:%v", http.StatusBadRequest, w.Code)
	}

	if len(codes) != 0 {
		t.Errorf("Expected authorisation code to be rejected")
	}
}

func TestCallbackWithRefusal(t *testing.T) {
	codes := make(chan string, 1)
	errs := make(chan error, 1)
	handler := callback("xyz", codes, errs)

	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest(http.MethodGet, "/?error=access_denied", nil))

	if w.Code != http.StatusForbidden {
		t.Errorf("Incorrect status - expected:%v, got:%v", http.StatusForbidden, w.Code)
	}

	if len(errs) != 1 {
		t.Errorf("Expected refusal to be reported")
	}
}
