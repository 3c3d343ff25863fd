package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/mesh-intelligence/fieldkit/internal/coerce"
	"github.com/mesh-intelligence/fieldkit/pkg/pipeline"
	"github.com/mesh-intelligence/fieldkit/pkg/schema"
	"github.com/mesh-intelligence/fieldkit/pkg/types"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeRecords prints recs as JSON, unwrapping a single non-array input.
func writeRecords(w io.Writer, recs []types.Record, array bool) error {
	if array {
		return writeJSON(w, recs)
	}
	return writeJSON(w, recs[0])
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

// writeValidation prints "valid" or one "field: message" line per error,
// sorted by field name.
func writeValidation(w io.Writer, res types.ObjectResult) {
	if res.Valid {
		fmt.Fprintln(w, "valid")
		return
	}
	fields := make([]string, 0, len(res.Errors))
	for f := range res.Errors {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	for _, f := range fields {
		fmt.Fprintf(w, "%s: %s\n", f, res.Errors[f])
	}
}

func display(v any) string {
	if v == nil {
		return ""
	}
	return coerce.String(v)
}

// writeResult prints one pipeline result as a FIELD/LABEL/VALUE table in
// field order followed by its validation outcome.
func (a *app) writeResult(w io.Writer, res pipeline.Result) error {
	s, _ := a.pipeline.Registry().SchemaFor(res.Entity)
	tw := newTable(w)
	fmt.Fprintln(tw, "FIELD\tLABEL\tVALUE")
	for _, f := range res.Order {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", f, schema.DisplayName(f, s), res.Display[f])
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	writeValidation(w, res.Validation)
	return nil
}
