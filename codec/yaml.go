package codec

import (
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/sheetops/gsheets/table"
)

type YAML struct {
}

type document struct {
	Header []string `yaml:"header" json:"header"`
	Rows   [][]any  `yaml:"rows" json:"rows"`
}

func (y YAML) Format() string {
	return "yaml"
}

func (y YAML) Read(r io.Reader) (*table.Table, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "invalid yaml file")
	}

	return doc.table(), nil
}

func (y YAML) Write(w io.Writer, t *table.Table) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)

	if err := encoder.Encode(newDocument(t)); err != nil {
		return errors.Wrap(err, "error writing yaml file")
	}

	return errors.WithStack(encoder.Close())
}

func newDocument(t *table.Table) document {
	doc := document{
		Header: t.Header,
		Rows:   t.Rows,
	}

	if doc.Header == nil {
		doc.Header = []string{}
	}

	if doc.Rows == nil {
		doc.Rows = [][]any{}
	}

	return doc
}

func (doc document) table() *table.Table {
	t := table.Table{
		Header: doc.Header,
		Rows:   doc.Rows,
	}

	if t.Header == nil {
		t.Header = []string{}
	}

	if t.Rows == nil {
		t.Rows = [][]any{}
	}

	return &t
}
