package localize

import "sort"

// Table maps a width to its ordered sequence of names.
type Table map[Width][]string

// Fn returns the name at index for the width selected by opts.
type Fn func(index int, opts Options) string

// ArrayFn returns the whole ordered sequence for the width selected by opts.
type ArrayFn func(opts Options) []string

// Widths returns the widths declared by the table, sorted by name.
func (t Table) Widths() []Width {
	out := make([]Width, 0, len(t))
	for w := range t {
		out = append(out, w)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Clone returns a deep copy of the table.
func (t Table) Clone() Table {
	out := make(Table, len(t))
	for w, values := range t {
		out[w] = append([]string(nil), values...)
	}
	return out
}

// resolve picks opts.Width when the table defines it, otherwise defaultWidth.
func (t Table) resolve(width, defaultWidth Width) []string {
	if width != "" {
		if values, ok := t[width]; ok {
			return values
		}
	}
	return t[defaultWidth]
}

// BuildFn wraps a table and its default width into an index accessor.
// An index outside the sequence yields the empty string.
func BuildFn(table Table, defaultWidth Width) Fn {
	return func(index int, opts Options) string {
		values := table.resolve(opts.Width, defaultWidth)
		if index < 0 || index >= len(values) {
			return ""
		}
		return values[index]
	}
}

// BuildArrayFn wraps a table and its default width into an accessor for the
// whole sequence. The returned slice is a copy.
func BuildArrayFn(table Table, defaultWidth Width) ArrayFn {
	return func(opts Options) []string {
		return append([]string(nil), table.resolve(opts.Width, defaultWidth)...)
	}
}
