package cmd

import (
	"fmt"
	"image/color"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/oakwood-commons/vilocale/internal/config"
	"github.com/oakwood-commons/vilocale/internal/formatter"
	"github.com/oakwood-commons/vilocale/internal/limiter"
)

// printResult writes r to the command's stdout in the resolved output
// format. List results honor --limit/--offset/--tail. Nothing is written in
// quiet mode.
func printResult(cmd *cobra.Command, r *formatter.Result, list bool) error {
	opts := optionsFrom(cmd)
	if opts.run.IsQuiet {
		return nil
	}
	if list && opts.limiter.IsActive() {
		r.Rows = limiter.Apply(opts.limiter, r.Rows)
	}

	var (
		out string
		err error
	)
	switch opts.run.Output {
	case "yaml":
		out, err = formatter.FormatYAML(r, formatter.YAMLFormatOptions{
			Indent:              activeConfig.Output.YAMLIndentOr(2),
			LiteralBlockStrings: activeConfig.Output.LiteralBlockStringsOr(false),
		})
	case "json":
		out, err = formatter.FormatJSON(r)
	case "toml":
		out, err = formatter.FormatTOML(r)
	case "markdown":
		out = formatter.FormatMarkdown(r)
	case "html":
		out = formatter.FormatHTML(r)
	case "raw":
		out = formatter.FormatRaw(r)
	default:
		out = formatter.RenderTable(r, formatter.TableOptions{
			NoColor:      opts.run.NoColor,
			Colors:       tableColors(activeConfig.Output.Colors),
			MaxCellWidth: activeConfig.Output.MaxCellWidthOr(0),
		})
	}
	if err != nil {
		return fmt.Errorf("render %s: %w", opts.run.Output, err)
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), out)
	return err
}

// tableColors maps configured color strings to lipgloss colors. Empty
// entries stay nil so the table keeps its built-in color.
func tableColors(c config.Colors) formatter.TableColors {
	pick := func(s string) color.Color {
		if s == "" {
			return nil
		}
		return lipgloss.Color(s)
	}
	return formatter.TableColors{
		HeaderFG:       pick(c.HeaderFG),
		HeaderBG:       pick(c.HeaderBG),
		KeyColor:       pick(c.Key),
		SeparatorColor: pick(c.Separator),
	}
}
