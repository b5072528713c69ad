package formatter

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func weekdayResult() *Result {
	return NewResult("weekday", "index", "value").
		Add(0, "Chủ Nhật").
		Add(1, "thứ Hai")
}

func TestAddPadsAndTruncates(t *testing.T) {
	r := NewResult("x", "a", "b").Add("only").Add("1", "2", "3")
	require.Len(t, r.Rows, 2)
	assert.Equal(t, []any{"only", nil}, r.Rows[0])
	assert.Equal(t, []any{"1", "2"}, r.Rows[1])
	assert.Equal(t, "", r.Records()[0]["b"])
}

func TestStringifyNormalizesToNFC(t *testing.T) {
	decomposed := "the\u0302\u0301" // ê + acute as combining marks
	assert.Equal(t, "th\u1ebf", Stringify(decomposed))
	assert.Equal(t, "42", Stringify(42))
	assert.Equal(t, "", Stringify(nil))
}

func TestFormatYAMLKeepsColumnOrderAndTypes(t *testing.T) {
	out, err := FormatYAML(weekdayResult(), YAMLFormatOptions{})
	require.NoError(t, err)
	assert.True(t, strings.Index(out, "index:") < strings.Index(out, "value:"))

	var decoded []map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, 1, decoded[1]["index"])
	assert.Equal(t, "thứ Hai", decoded[1]["value"])
}

func TestFormatYAMLIndentAndLiteral(t *testing.T) {
	r := NewResult("note", "text").Add("dòng 1\ndòng 2")
	out, err := FormatYAML(r, YAMLFormatOptions{Indent: 4, LiteralBlockStrings: true})
	require.NoError(t, err)
	assert.Contains(t, out, "text: |")
}

func TestFormatJSON(t *testing.T) {
	out, err := FormatJSON(weekdayResult())
	require.NoError(t, err)
	assert.Contains(t, out, `"value": "Chủ Nhật"`, "no unicode escaping")
	assert.True(t, strings.Index(out, `"index"`) < strings.Index(out, `"value"`))

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, float64(0), decoded[0]["index"])

	empty, err := FormatJSON(NewResult("none", "a"))
	require.NoError(t, err)
	assert.Equal(t, "[]\n", empty)
}

func TestFormatTOML(t *testing.T) {
	out, err := FormatTOML(weekdayResult())
	require.NoError(t, err)
	assert.Contains(t, out, "[[weekday]]")

	var decoded map[string][]map[string]any
	require.NoError(t, toml.Unmarshal([]byte(out), &decoded))
	require.Len(t, decoded["weekday"], 2)
	assert.Equal(t, "thứ Hai", decoded["weekday"][1]["value"])

	untitled, err := FormatTOML(NewResult("", "a").Add("b"))
	require.NoError(t, err)
	assert.Contains(t, untitled, "[[rows]]")
}

func TestRenderTableNoColor(t *testing.T) {
	out := RenderTable(weekdayResult(), TableOptions{NoColor: true})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "INDEX  VALUE", lines[0])
	assert.Equal(t, "─────  ────────", lines[1])
	assert.Equal(t, "0      Chủ Nhật", lines[2])
	assert.Equal(t, "1      thứ Hai", lines[3])
	assert.NotContains(t, out, "\x1b[")
}

func TestRenderTableTruncates(t *testing.T) {
	r := NewResult("m", "value").Add("tháng Mười Hai")
	out := RenderTable(r, TableOptions{NoColor: true, MaxCellWidth: 6})
	assert.Contains(t, out, "tháng…")
}

func TestFormatMarkdownAndHTML(t *testing.T) {
	md := FormatMarkdown(weekdayResult())
	assert.Contains(t, md, "## weekday")
	assert.Contains(t, md, "| index | value |")
	assert.Contains(t, md, "| 0 | Chủ Nhật |")

	escaped := FormatMarkdown(NewResult("", "a").Add("x|y"))
	assert.Contains(t, escaped, `x\|y`)

	html := FormatHTML(weekdayResult())
	assert.Contains(t, html, "<table>")
	assert.Contains(t, html, "<td>Chủ Nhật</td>")
	assert.Contains(t, html, `<h2 id="weekday">weekday</h2>`)
}

func TestFormatRaw(t *testing.T) {
	assert.Equal(t, "Chủ Nhật\nthứ Hai\n", FormatRaw(weekdayResult()))
	assert.Equal(t, "", FormatRaw(&Result{}))
}
