package formatter

import (
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// FormatMarkdown renders the result as a GitHub-style pipe table, preceded by
// a heading when the result has a title.
func FormatMarkdown(r *Result) string {
	var b strings.Builder
	if r.Title != "" {
		b.WriteString("## ")
		b.WriteString(r.Title)
		b.WriteString("\n\n")
	}
	b.WriteString("| ")
	b.WriteString(strings.Join(escapeCells(r.Columns), " | "))
	b.WriteString(" |\n|")
	for range r.Columns {
		b.WriteString(" --- |")
	}
	b.WriteString("\n")
	for _, row := range r.Rows {
		cells := make([]string, len(row))
		for i, c := range row {
			cells[i] = Stringify(c)
		}
		b.WriteString("| ")
		b.WriteString(strings.Join(escapeCells(cells), " | "))
		b.WriteString(" |\n")
	}
	return b.String()
}

func escapeCells(cells []string) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = strings.ReplaceAll(c, "|", `\|`)
	}
	return out
}

// MarkdownToHTML renders Markdown source to an HTML fragment.
func MarkdownToHTML(src string) string {
	extensions := parser.CommonExtensions | parser.AutoHeadingIDs | parser.NoEmptyLineBeforeBlock
	p := parser.NewWithExtensions(extensions)
	doc := p.Parse([]byte(src))

	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags | html.HrefTargetBlank})
	return string(markdown.Render(doc, renderer))
}

// FormatHTML renders the result as an HTML table fragment.
func FormatHTML(r *Result) string {
	return MarkdownToHTML(FormatMarkdown(r))
}
