package config

const (
	_etc = "/usr/local/etc/gsheets"
	_var = "/usr/local/var/gsheets"

	DEFAULT_WORKDIR     = _var
	DEFAULT_CREDENTIALS = _etc + "/.google/credentials.json"
)
