package formatter

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

// FormatJSON renders the rows as a JSON array of objects, keys in column
// order, indented by two spaces.
func FormatJSON(r *Result) (string, error) {
	var buf bytes.Buffer
	buf.WriteString("[")
	for i, row := range r.Rows {
		if i > 0 {
			buf.WriteString(",")
		}
		buf.WriteString("\n  {")
		for j, col := range r.Columns {
			if j > 0 {
				buf.WriteString(",")
			}
			k, err := marshalJSON(col)
			if err != nil {
				return "", err
			}
			v, err := marshalJSON(normalizeCell(row[j]))
			if err != nil {
				return "", err
			}
			fmt.Fprintf(&buf, "\n    %s: %s", k, v)
		}
		buf.WriteString("\n  }")
	}
	if len(r.Rows) > 0 {
		buf.WriteString("\n")
	}
	buf.WriteString("]\n")
	return buf.String(), nil
}

// marshalJSON encodes without HTML escaping so diacritics and '<' survive.
func marshalJSON(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n")), nil
}

// FormatTOML renders the rows as an array of tables named after the result
// title (or "rows").
func FormatTOML(r *Result) (string, error) {
	key := r.Title
	if key == "" {
		key = "rows"
	}
	doc := map[string]any{key: r.Records()}
	out, err := toml.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("encode toml: %w", err)
	}
	return string(out), nil
}
