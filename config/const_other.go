//go:build !linux && !darwin

package config

const (
	DEFAULT_WORKDIR     = ".gsheets"
	DEFAULT_CREDENTIALS = ".google/credentials.json"
)
