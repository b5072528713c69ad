package formatter

import (
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"
	runewidth "github.com/mattn/go-runewidth"
)

var (
	defaultHeaderFG  = lipgloss.Color("12")
	defaultHeaderBG  = lipgloss.Color("236")
	defaultKeyColor  = lipgloss.Color("14")
	defaultSeparator = lipgloss.Color("240")
)

// TableColors controls the rendered colors of RenderTable. Nil fields fall
// back to the defaults (ANSI 256 codes).
type TableColors struct {
	HeaderFG       color.Color
	HeaderBG       color.Color
	KeyColor       color.Color
	SeparatorColor color.Color
}

// TableOptions control RenderTable.
type TableOptions struct {
	NoColor bool
	Colors  TableColors
	// MaxCellWidth truncates wider cells with an ellipsis; 0 disables.
	MaxCellWidth int
}

type tableStyles struct {
	header    lipgloss.Style
	key       lipgloss.Style
	separator lipgloss.Style
}

func newTableStyles(tc TableColors) tableStyles {
	hfg, hbg, kc, sep := tc.HeaderFG, tc.HeaderBG, tc.KeyColor, tc.SeparatorColor
	if hfg == nil {
		hfg = defaultHeaderFG
	}
	if hbg == nil {
		hbg = defaultHeaderBG
	}
	if kc == nil {
		kc = defaultKeyColor
	}
	if sep == nil {
		sep = defaultSeparator
	}
	return tableStyles{
		header:    lipgloss.NewStyle().Bold(true).Foreground(hfg).Background(hbg),
		key:       lipgloss.NewStyle().Foreground(kc),
		separator: lipgloss.NewStyle().Foreground(sep),
	}
}

// RenderTable renders the result as aligned columns. Widths are measured in
// terminal cells, so combining diacritics do not skew alignment.
func RenderTable(r *Result, opts TableOptions) string {
	cells := make([][]string, len(r.Rows))
	widths := make([]int, len(r.Columns))
	for i, col := range r.Columns {
		widths[i] = runewidth.StringWidth(col)
	}
	for i, row := range r.Rows {
		cells[i] = make([]string, len(r.Columns))
		for j := range r.Columns {
			s := Stringify(row[j])
			if opts.MaxCellWidth > 0 {
				s = runewidth.Truncate(s, opts.MaxCellWidth, "…")
			}
			cells[i][j] = s
			if w := runewidth.StringWidth(s); w > widths[j] {
				widths[j] = w
			}
		}
	}

	styles := newTableStyles(opts.Colors)
	paint := func(st lipgloss.Style, s string) string {
		if opts.NoColor {
			return s
		}
		return st.Render(s)
	}

	var b strings.Builder
	header := make([]string, len(r.Columns))
	for i, col := range r.Columns {
		header[i] = runewidth.FillRight(strings.ToUpper(col), widths[i])
	}
	b.WriteString(strings.TrimRight(paint(styles.header, strings.Join(header, "  ")), " "))
	b.WriteString("\n")

	rule := make([]string, len(widths))
	for i, w := range widths {
		rule[i] = strings.Repeat("─", w)
	}
	b.WriteString(paint(styles.separator, strings.Join(rule, "  ")))
	b.WriteString("\n")

	for _, row := range cells {
		parts := make([]string, len(row))
		for j, s := range row {
			padded := runewidth.FillRight(s, widths[j])
			if j == 0 {
				padded = paint(styles.key, padded)
			}
			parts[j] = padded
		}
		b.WriteString(strings.TrimRight(strings.Join(parts, "  "), " "))
		b.WriteString("\n")
	}
	return b.String()
}
