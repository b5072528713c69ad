package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oakwood-commons/vilocale/internal/formatter"
	"github.com/oakwood-commons/vilocale/internal/limiter"
	"github.com/oakwood-commons/vilocale/pkg/locale/vi"
	"github.com/oakwood-commons/vilocale/pkg/localize"
)

var unitName string

var weekdayCmd = &cobra.Command{
	Use:     "weekday <index>...",
	Short:   "Weekday name for an index (0 = Sunday)",
	Example: "  vilocale weekday 0 1\n  vilocale weekday 5 --width narrow",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIndexLookup(cmd, args, "weekday", vi.Weekday)
	},
}

var weekdaysCmd = &cobra.Command{
	Use:   "weekdays",
	Short: "All weekday names, Sunday first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runSequence(cmd, "weekdays", vi.Weekdays, optionsFrom(cmd).width)
	},
}

var monthCmd = &cobra.Command{
	Use:     "month <index>...",
	Short:   "Month name for an index (0 = January)",
	Example: "  vilocale month 0 11\n  vilocale month 2 --width short",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIndexLookup(cmd, args, "month", vi.Month)
	},
}

var monthsCmd = &cobra.Command{
	Use:   "months",
	Short: "All month names in calendar order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runSequence(cmd, "months", vi.Months, optionsFrom(cmd).width)
	},
}

var ordinalCmd = &cobra.Command{
	Use:   "ordinal <value>...",
	Short: "Ordinal form of a number for a unit",
	Long: `Ordinal form of a number for a unit: quarter, dayOfWeek, week, isoWeek,
dayOfYear, month or dayOfMonth. Units without a Vietnamese ordinal form
return the number unchanged. Values are read as integers from their
leading digits; a value with no digits renders as NaN.`,
	Example: "  vilocale ordinal 1 2 3 4 --unit quarter\n  vilocale ordinal 1 --unit dayOfYear",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		unit, err := resolveUnit(unitName)
		if err != nil {
			return err
		}
		r := formatter.NewResult("ordinal", "value", "unit", "ordinal")
		for _, a := range args {
			r.Add(a, unit.String(), vi.OrdinalNumber(a, localize.Options{Unit: unit}).Value())
		}
		return printResult(cmd, r, false)
	},
}

var timeOfDayCmd = &cobra.Command{
	Use:   "time-of-day <hour>...",
	Short: "Part-of-day phrase or AM/PM marker for an hour",
	Long: `Part-of-day phrase (--type long) or AM/PM marker (--type uppercase or
lowercase) for an hour. Hours are not range checked; fractional hours are
accepted. --width does not apply here.`,
	Example: "  vilocale time-of-day 0 11 14 19 22\n  vilocale time-of-day 12 --type lowercase",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := optionsFrom(cmd)
		r := formatter.NewResult("timeOfDay", "hour", "type", "period")
		for _, a := range args {
			r.Add(a, opts.typ.String(), vi.TimeOfDay(a, localize.Options{Type: opts.typ}))
		}
		return printResult(cmd, r, false)
	},
}

var timesOfDayCmd = &cobra.Command{
	Use:   "times-of-day",
	Short: "All day-period names for a width (long, uppercase, lowercase)",
	Long: `All day-period names for a width: the long phrases, or the AM/PM markers
for uppercase and lowercase. --type selects the same set as time-of-day
when --width is not given.`,
	Example: "  vilocale times-of-day\n  vilocale times-of-day --type uppercase",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		opts := optionsFrom(cmd)
		width := opts.width
		if flagChanged(cmd, "type") && !flagChanged(cmd, "width") {
			width = localize.Width(opts.typ.String())
		}
		return runSequence(cmd, "timesOfDay", vi.TimesOfDay, width)
	},
}

var tablesCmd = &cobra.Command{
	Use:       "tables [name]...",
	Short:     "Dump the lookup tables",
	ValidArgs: vi.TableNames(),
	Args:      cobra.OnlyValidArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		names := args
		if len(names) == 0 {
			names = vi.TableNames()
		}
		tables := vi.Tables()
		r := formatter.NewResult("tables", "table", "width", "index", "value")
		for _, name := range names {
			table := tables[name]
			for _, w := range table.Widths() {
				for i, v := range table[w] {
					r.Add(name, string(w), i, v)
				}
			}
		}
		return printResult(cmd, r, true)
	},
}

func runIndexLookup(cmd *cobra.Command, args []string, title string, fn localize.Fn) error {
	indexes, err := parseIndexes(args)
	if err != nil {
		return err
	}
	opts := optionsFrom(cmd)
	r := formatter.NewResult(title, "index", "name")
	for _, i := range indexes {
		r.Add(i, fn(i, localize.Options{Width: opts.width}))
	}
	return printResult(cmd, r, false)
}

func runSequence(cmd *cobra.Command, title string, fn localize.ArrayFn, width localize.Width) error {
	opts := optionsFrom(cmd)
	r := formatter.NewResult(title, "index", "name")
	for _, item := range limiter.ApplyIndexed(opts.limiter, fn(localize.Options{Width: width})) {
		r.Add(item.Index, item.Value)
	}
	return printResult(cmd, r, false)
}

func init() { //nolint:gochecknoinits
	ordinalCmd.Flags().StringVarP(&unitName, "unit", "u", "", "ordinal unit: quarter|dayOfWeek|week|isoWeek|dayOfYear|month|dayOfMonth")
}
