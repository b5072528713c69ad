package formatter

import (
	"bytes"
	"strings"

	"gopkg.in/yaml.v3"
)

// YAMLFormatOptions control YAML rendering.
type YAMLFormatOptions struct {
	Indent              int
	LiteralBlockStrings bool
}

// FormatYAML renders the rows as a sequence of mappings, keys in column
// order. Multi-line strings can be emitted as literal blocks ("|").
func FormatYAML(r *Result, opts YAMLFormatOptions) (string, error) {
	seq := &yaml.Node{Kind: yaml.SequenceNode}
	for _, row := range r.Rows {
		m := &yaml.Node{Kind: yaml.MappingNode}
		for i, col := range r.Columns {
			key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: col}
			var val yaml.Node
			if err := val.Encode(normalizeCell(row[i])); err != nil {
				return "", err
			}
			m.Content = append(m.Content, key, &val)
		}
		seq.Content = append(seq.Content, m)
	}

	if opts.LiteralBlockStrings {
		applyLiteralStyle(seq)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	indent := opts.Indent
	if indent <= 0 {
		indent = 2
	}
	enc.SetIndent(indent)
	if err := enc.Encode(seq); err != nil {
		return "", err
	}
	if err := enc.Close(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func applyLiteralStyle(n *yaml.Node) {
	if n == nil {
		return
	}
	if n.Kind == yaml.ScalarNode && n.Tag == "!!str" && strings.Contains(n.Value, "\n") {
		n.Style = yaml.LiteralStyle
	}
	for _, c := range n.Content {
		applyLiteralStyle(c)
	}
}
