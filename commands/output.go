package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// output writes command results to stdout, either as an aligned text table or as
// JSON with --json.
type output struct {
	json bool
	w    io.Writer
}

func (app *App) output(cmd *cobra.Command) *output {
	return &output{
		json: app.JSON,
		w:    cmd.OutOrStdout(),
	}
}

func (o *output) Print(headers []string, rows [][]string, v any) error {
	if o.json {
		return o.JSON(v)
	}

	return o.Table(headers, rows)
}

func (o *output) Table(headers []string, rows [][]string) error {
	tw := tabwriter.NewWriter(o.w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, strings.Join(headers, "\t"))

	dashes := make([]string, len(headers))
	for i, h := range headers {
		dashes[i] = strings.Repeat("-", len(h))
	}
	fmt.Fprintln(tw, strings.Join(dashes, "\t"))

	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	return tw.Flush()
}

func (o *output) JSON(v any) error {
	encoder := json.NewEncoder(o.w)
	encoder.SetIndent("", "  ")

	return encoder.Encode(v)
}

// Value prints a single result, e.g. the range of a sheet.
func (o *output) Value(key string, v any) error {
	if o.json {
		return o.JSON(map[string]any{key: v})
	}

	_, err := fmt.Fprintln(o.w, v)

	return err
}
