// Package codec reads and writes tables as local files for the gsheets CLI.
package codec

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheetops/gsheets/table"
)

type Codec interface {
	Read(r io.Reader) (*table.Table, error)
	Write(w io.Writer, t *table.Table) error
	Format() string
}

var codecs = map[string]Codec{
	"tsv":  TSV,
	"csv":  CSV,
	"xlsx": XLSX{},
	"yaml": YAML{},
	"json": JSON{},
}

// Lookup returns the codec for a format name, e.g. "tsv" or "xlsx".
func Lookup(format string) (Codec, error) {
	if c, ok := codecs[strings.ToLower(strings.TrimSpace(format))]; ok {
		return c, nil
	}

	return nil, errors.Errorf("unsupported file format '%v'", format)
}

// ForFile returns the codec for the file extension, defaulting to TSV for files
// without an extension.
func ForFile(file string) (Codec, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(file)), ".")

	switch ext {
	case "":
		return TSV, nil

	case "yml":
		return YAML{}, nil

	default:
		return Lookup(ext)
	}
}
