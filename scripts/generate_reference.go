// generate_reference writes Markdown and HTML pages listing every Vietnamese
// lookup table and the ordinal and day-period rules.
//
//	go run ./scripts dist
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/oakwood-commons/vilocale/internal/formatter"
	"github.com/oakwood-commons/vilocale/pkg/locale/vi"
	"github.com/oakwood-commons/vilocale/pkg/localize"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <dist-dir>\n", os.Args[0])
		os.Exit(1)
	}

	distDir := os.Args[1]
	if err := os.MkdirAll(distDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %s: %v\n", distDir, err)
		os.Exit(1)
	}

	md := referenceMarkdown()
	if err := os.WriteFile(filepath.Join(distDir, "reference.md"), []byte(md), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing reference.md: %v\n", err)
		os.Exit(1)
	}

	f, err := os.Create(filepath.Join(distDir, "reference.html"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating reference.html: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	writeHeader(f)
	fmt.Fprint(f, formatter.MarkdownToHTML(md))
	writeFooter(f)

	fmt.Printf("Generated %s\n", f.Name())
}

func referenceMarkdown() string {
	var b strings.Builder
	b.WriteString("# vilocale reference\n\n")

	tables := vi.Tables()
	for _, name := range vi.TableNames() {
		b.WriteString(formatter.FormatMarkdown(tableResult(name, tables[name])))
		b.WriteString("\n")
	}

	ord := formatter.NewResult("ordinalNumber", "unit", "1", "2", "3", "4", "12")
	for _, name := range localize.Units() {
		unit, _ := localize.ParseUnit(name)
		cells := []any{name}
		for _, n := range []int{1, 2, 3, 4, 12} {
			cells = append(cells, vi.OrdinalNumber(n, localize.Options{Unit: unit}).String())
		}
		ord.Add(cells...)
	}
	b.WriteString(formatter.FormatMarkdown(ord))
	b.WriteString("\n")

	tod := formatter.NewResult("timeOfDay", "hour", "long", "uppercase", "lowercase")
	for h := 0; h < 24; h++ {
		tod.Add(strconv.Itoa(h),
			vi.TimeOfDay(h, localize.Options{Type: localize.DayPeriodLong}),
			vi.TimeOfDay(h, localize.Options{Type: localize.DayPeriodUppercase}),
			vi.TimeOfDay(h, localize.Options{Type: localize.DayPeriodLowercase}))
	}
	b.WriteString(formatter.FormatMarkdown(tod))
	return b.String()
}

// tableResult lays a table out with one column per width. Shorter widths
// leave their trailing cells empty.
func tableResult(name string, table localize.Table) *formatter.Result {
	widths := table.Widths()
	cols := []string{"index"}
	rows := 0
	for _, w := range widths {
		cols = append(cols, string(w))
		if n := len(table[w]); n > rows {
			rows = n
		}
	}
	r := formatter.NewResult(name, cols...)
	for i := 0; i < rows; i++ {
		cells := []any{i}
		for _, w := range widths {
			cell := ""
			if i < len(table[w]) {
				cell = table[w][i]
			}
			cells = append(cells, cell)
		}
		r.Add(cells...)
	}
	return r
}

func writeHeader(w io.Writer) {
	fmt.Fprint(w, `<!doctype html>
<html lang="vi">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>vilocale - Vietnamese date names</title>
  <style>
    body { font-family: system-ui, -apple-system, sans-serif; max-width: 900px; margin: 40px auto; padding: 0 20px; line-height: 1.6; color: #333; }
    h1 { color: #2563eb; border-bottom: 2px solid #2563eb; padding-bottom: 10px; }
    h2 { color: #1e40af; margin-top: 30px; }
    table { border-collapse: collapse; margin: 10px 0; }
    th, td { padding: 4px 12px; border-bottom: 1px solid #e2e8f0; text-align: left; }
    th { color: #1e3a8a; }
  </style>
</head>
<body>
`)
}

func writeFooter(w io.Writer) {
	fmt.Fprint(w, `</body>
</html>
`)
}
