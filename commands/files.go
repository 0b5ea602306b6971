package commands

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/sheetops/gsheets/codec"
	"github.com/sheetops/gsheets/table"
)

// format returns the codec for the --format flag, or for the file extension if the
// flag is blank.
func format(name, file string) (codec.Codec, error) {
	if name != "" {
		return codec.Lookup(name)
	}

	return codec.ForFile(file)
}

func load(file string, c codec.Codec, stdin io.Reader) (*table.Table, error) {
	if file == "" || file == "-" {
		return c.Read(stdin)
	}

	f, err := os.Open(file)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	defer f.Close()

	t, err := c.Read(f)
	if err != nil {
		return nil, errors.Wrapf(err, "%v", file)
	}

	return t, nil
}

// save writes the table to a temporary file and then renames it, so that an
// existing file is only replaced by a complete one.
func save(file string, c codec.Codec, t *table.Table, stdout io.Writer) error {
	if file == "" || file == "-" {
		return c.Write(stdout, t)
	}

	dir := filepath.Dir(file)
	if err := os.MkdirAll(dir, 0770); err != nil {
		return errors.WithStack(err)
	}

	tmp, err := os.CreateTemp(dir, ".gsheets-*")
	if err != nil {
		return errors.WithStack(err)
	}

	defer func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}()

	if err := c.Write(tmp, t); err != nil {
		return errors.Wrapf(err, "error creating %v file", c.Format())
	}

	if err := tmp.Close(); err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(os.Rename(tmp.Name(), file))
}
