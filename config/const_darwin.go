package config

const (
	_etc = "/usr/local/etc/com.github.sheetops"
	_var = "/usr/local/var/com.github.sheetops"

	DEFAULT_WORKDIR     = _var + "/gsheets"
	DEFAULT_CREDENTIALS = _etc + "/gsheets/.google/credentials.json"
)
