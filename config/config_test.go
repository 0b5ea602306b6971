package config

import (
	"testing"
)

func TestLoad(t *testing.T) {
	t.Setenv("GSHEETS_SPREADSHEET", "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms")
	t.Setenv("GSHEETS_CREDENTIALS", "/tmp/credentials.json")
	t.Setenv("GSHEETS_LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Unexpected error (%v)", err)
	}

	if cfg.Spreadsheet != "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms" {
		t.Errorf("Incorrect spreadsheet - got %v", cfg.Spreadsheet)
	}

	if cfg.Credentials != "/tmp/credentials.json" {
		t.Errorf("Incorrect credentials - got %v", cfg.Credentials)
	}

	if cfg.Workdir != DEFAULT_WORKDIR {
		t.Errorf("Incorrect workdir - expected:%v, got:%v", DEFAULT_WORKDIR, cfg.Workdir)
	}

	if cfg.Log.Level != "debug" || cfg.Log.Format != "console" {
		t.Errorf("Incorrect log configuration - got %+v", cfg.Log)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("Unexpected validation error (%v)", err)
	}
}

func TestValidateWithoutSpreadsheet(t *testing.T) {
	cfg := Default()

	if err := cfg.Validate(); err == nil {
		t.Errorf("Expected validation error for missing spreadsheet")
	}
}

func TestValidateWithInvalidLogFormat(t *testing.T) {
	cfg := Default()
	cfg.Spreadsheet = "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms"
	cfg.Log.Format = "xml"

	if err := cfg.Validate(); err == nil {
		t.Errorf("Expected validation error for invalid log format")
	}
}

func TestSpreadsheetID(t *testing.T) {
	tests := map[string]string{
		"1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms":                                                "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms",
		"https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms":         "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms",
		"https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms/edit#gid=0": "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms",
	}

	for spreadsheet, expected := range tests {
		cfg := Config{Spreadsheet: spreadsheet}

		if id, err := cfg.SpreadsheetID(); err != nil {
			t.Errorf("Unexpected error for %v (%v)", spreadsheet, err)
		} else if id != expected {
			t.Errorf("Incorrect spreadsheet ID for %v - expected:%v, got:%v", spreadsheet, expected, id)
		}
	}
}

func TestSpreadsheetIDWithInvalidURL(t *testing.T) {
	cfg := Config{Spreadsheet: "https://example.com/not/a/spreadsheet"}

	if _, err := cfg.SpreadsheetID(); err == nil {
		t.Errorf("Expected error for invalid spreadsheet URL")
	}
}
