package cmd

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/oakwood-commons/vilocale/internal/cel"
	"github.com/oakwood-commons/vilocale/internal/formatter"
	"github.com/oakwood-commons/vilocale/pkg/core"
	"github.com/oakwood-commons/vilocale/pkg/localize"
	"github.com/oakwood-commons/vilocale/pkg/logger"
)

var (
	atTime    string
	inputFile string
)

// timeLayouts are tried in order by parseTime.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// now is replaced in tests.
var now = time.Now

func parseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "now" {
		return now(), nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, &optionError{Name: "time", Value: s, Reason: "expected RFC 3339, YYYY-MM-DD or YYYY-MM-DD HH:MM"}
}

var describeCmd = &cobra.Command{
	Use:   "describe [time]",
	Short: "Render every calendar field of a time in Vietnamese",
	Long: `Render the weekday, month, day, quarter, ISO week, day of year and hour of a
time through the Vietnamese locale. The time defaults to now.`,
	Example: "  vilocale describe 2024-03-15T14:30:00+07:00\n  vilocale describe 2024-01-01 --width short --type uppercase",
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		arg := ""
		if len(args) == 1 {
			arg = args[0]
		}
		t, err := parseTime(arg)
		if err != nil {
			return err
		}
		engine, err := core.New(core.WithLogger(*logger.FromContext(cmd.Context())))
		if err != nil {
			return err
		}
		opts := optionsFrom(cmd)
		return printResult(cmd, engine.Describe(t, localize.Options{Width: opts.width, Type: opts.typ}), false)
	},
}

var evalCmd = &cobra.Command{
	Use:   "eval <expression>",
	Short: "Evaluate a CEL expression with the Vietnamese functions",
	Long: `Evaluate a CEL expression. The calendar fields of --at (default now) are
bound to "_": year, month (0-based), day, weekday (0 = Sunday), hour,
minute, quarter, isoWeek and dayOfYear. With --file the parsed JSON, YAML or
TOML document is bound instead.

Functions: weekday(i[, width]), weekdays([width]), month(i[, width]),
months([width]), ordinal(n[, unit]), timeOfDay(h[, type]),
timesOfDay([width]).`,
	Example: "  vilocale eval 'weekday(_.weekday) + \" \" + timeOfDay(_.hour)'\n  vilocale eval 'ordinal(_.quarter, \"quarter\")' --at 2024-11-02\n  vilocale eval 'months(\"short\")' -o yaml",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeFunctions,
	RunE: func(cmd *cobra.Command, args []string) error {
		lgr := logger.FromContext(cmd.Context())
		engine, err := core.New(core.WithLogger(*lgr))
		if err != nil {
			return err
		}

		var root any
		if inputFile != "" {
			if flagChanged(cmd, "at") {
				return fmt.Errorf("--at and --file are mutually exclusive")
			}
			root, err = engine.LoadFile(inputFile)
			if err != nil {
				return fmt.Errorf("load %s: %w", inputFile, err)
			}
		} else {
			t, err := parseTime(atTime)
			if err != nil {
				return err
			}
			root = core.Fields(t)
		}

		value, err := engine.Evaluate(args[0], root)
		if err != nil {
			return err
		}
		r, list := evalResult(value)
		return printResult(cmd, r, list)
	},
}

// completeFunctions offers the Vietnamese CEL functions with their
// signatures for shell completion of the expression argument.
func completeFunctions(_ *cobra.Command, args []string, toComplete string) ([]cobra.Completion, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	entries, err := cel.DiscoverFunctions()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	var names []string
	usages := make(map[string][]string)
	for _, entry := range entries {
		name, usage, _ := strings.Cut(entry, "() - ")
		if !strings.HasPrefix(name, toComplete) {
			continue
		}
		if _, seen := usages[name]; !seen {
			names = append(names, name)
		}
		usages[name] = append(usages[name], usage)
	}
	out := make([]cobra.Completion, 0, len(names))
	for _, name := range names {
		out = append(out, cobra.CompletionWithDesc(name+"(", strings.Join(usages[name], "; ")))
	}
	return out, cobra.ShellCompDirectiveNoSpace | cobra.ShellCompDirectiveNoFileComp
}

// evalResult shapes an evaluation result: lists become index/value rows,
// maps key/value rows sorted by key, anything else a single value row.
func evalResult(value any) (*formatter.Result, bool) {
	switch v := value.(type) {
	case []any:
		r := formatter.NewResult("eval", "index", "value")
		for i, elem := range v {
			r.Add(i, formatter.Stringify(elem))
		}
		return r, true
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		r := formatter.NewResult("eval", "key", "value")
		for _, k := range keys {
			r.Add(k, formatter.Stringify(v[k]))
		}
		return r, true
	}
	r := formatter.NewResult("eval", "value")
	r.Add(value)
	return r, false
}

func init() { //nolint:gochecknoinits
	evalCmd.Flags().StringVar(&atTime, "at", "", "time whose fields are bound to _ (default now)")
	evalCmd.Flags().StringVarP(&inputFile, "file", "f", "", "JSON, YAML or TOML document bound to _ instead of time fields")
}
