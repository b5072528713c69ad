// Package formatter renders lookup results as styled terminal tables or as
// YAML, JSON, TOML, Markdown, HTML and raw text.
package formatter

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Result is a tabular lookup result. Cells are strings or integers; column
// order is preserved by every output format.
type Result struct {
	Title   string
	Columns []string
	Rows    [][]any
}

// NewResult returns an empty result with the given title and columns.
func NewResult(title string, columns ...string) *Result {
	return &Result{Title: title, Columns: columns}
}

// Add appends a row. Missing cells render empty; extra cells are dropped.
func (r *Result) Add(cells ...any) *Result {
	row := make([]any, len(r.Columns))
	copy(row, cells)
	r.Rows = append(r.Rows, row)
	return r
}

// Records returns each row as a column-name keyed map.
func (r *Result) Records() []map[string]any {
	out := make([]map[string]any, 0, len(r.Rows))
	for _, row := range r.Rows {
		rec := make(map[string]any, len(r.Columns))
		for i, col := range r.Columns {
			rec[col] = normalizeCell(row[i])
		}
		out = append(out, rec)
	}
	return out
}

// Stringify renders a single cell.
func Stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return norm.NFC.String(t)
	case fmt.Stringer:
		return norm.NFC.String(t.String())
	default:
		return fmt.Sprint(t)
	}
}

// normalizeCell NFC-normalizes string cells and leaves numbers alone so
// structured encoders keep their type.
func normalizeCell(v any) any {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return norm.NFC.String(t)
	case fmt.Stringer:
		return norm.NFC.String(t.String())
	default:
		return v
	}
}

// FormatRaw writes the last column of each row on its own line, the shape
// shell pipelines want.
func FormatRaw(r *Result) string {
	if len(r.Columns) == 0 {
		return ""
	}
	var b strings.Builder
	last := len(r.Columns) - 1
	for _, row := range r.Rows {
		b.WriteString(Stringify(row[last]))
		b.WriteString("\n")
	}
	return b.String()
}
