package codec

import (
	"encoding/json"
	"io"

	"github.com/pkg/errors"

	"github.com/sheetops/gsheets/table"
)

type JSON struct {
}

func (j JSON) Format() string {
	return "json"
}

func (j JSON) Read(r io.Reader) (*table.Table, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "invalid json file")
	}

	return doc.table(), nil
}

func (j JSON) Write(w io.Writer, t *table.Table) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	return errors.WithStack(encoder.Encode(newDocument(t)))
}
