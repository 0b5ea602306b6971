// Package config loads the gsheets settings from GSHEETS_ environment variables
// (and a .env file in the working directory, if present).
//
//	GSHEETS_SPREADSHEET   spreadsheet ID or https://docs.google.com/spreadsheets/d/... URL
//	GSHEETS_CREDENTIALS   path to the OAuth2 client 'credentials.json' file
//	GSHEETS_WORKDIR       directory for the persisted OAuth2 tokens
//	GSHEETS_LOG_LEVEL     debug, info, warn or error
//	GSHEETS_LOG_FORMAT    console or json
package config

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const PREFIX = "GSHEETS_"

type Config struct {
	Spreadsheet string `koanf:"spreadsheet" validate:"required"`
	Credentials string `koanf:"credentials" validate:"required"`
	Workdir     string `koanf:"workdir" validate:"required"`
	Log         Log    `koanf:"log"`
}

type Log struct {
	Level  string `koanf:"level" validate:"oneof=debug info warn error"`
	Format string `koanf:"format" validate:"oneof=console json"`
}

var url = regexp.MustCompile(`^https://docs.google.com/spreadsheets/d/(.*?)(?:/.*)?$`)
var id = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

func Default() *Config {
	return &Config{
		Credentials: DEFAULT_CREDENTIALS,
		Workdir:     DEFAULT_WORKDIR,
		Log: Log{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load returns the default configuration overridden by any GSHEETS_ environment
// variables e.g. GSHEETS_LOG_LEVEL sets log.level.
func Load() (*Config, error) {
	cfg := Default()
	k := koanf.New(".")

	err := k.Load(env.Provider(PREFIX, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, PREFIX)), "_", ".")
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, "could not load environment variables")
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, errors.Wrap(err, "could not unmarshal configuration")
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}

	if _, err := c.SpreadsheetID(); err != nil {
		return err
	}

	return nil
}

// SpreadsheetID extracts the spreadsheet ID from the configured spreadsheet, which
// may be either a bare ID or the spreadsheet URL.
func (c *Config) SpreadsheetID() (string, error) {
	s := strings.TrimSpace(c.Spreadsheet)

	if match := url.FindStringSubmatch(s); len(match) > 1 && match[1] != "" {
		return match[1], nil
	}

	if id.MatchString(s) {
		return s, nil
	}

	return "", errors.Errorf("invalid spreadsheet '%v' - expected an ID or a URL like 'https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms'", c.Spreadsheet)
}
