package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/oakwood-commons/vilocale/internal/config"
	"github.com/oakwood-commons/vilocale/internal/limiter"
	"github.com/oakwood-commons/vilocale/pkg/localize"
	"github.com/oakwood-commons/vilocale/pkg/logger"
	"github.com/oakwood-commons/vilocale/pkg/settings"
)

var (
	configFile    string
	output        string
	noColor       bool
	debug         bool
	quiet         bool
	widthName     string
	typeName      string
	limitRecords  int
	offsetRecords int
	tailRecords   int

	// activeConfig is the merged config of the current invocation.
	activeConfig config.Config
)

// runOptions are the resolved flag and config values a subcommand renders
// with. run travels separately through settings.IntoContext.
type runOptions struct {
	run     *settings.Run
	width   localize.Width
	typ     localize.DayPeriodType
	limiter limiter.Config
}

type runOptionsKey struct{}

var rootCmd = &cobra.Command{
	Use:   settings.CliBinaryName,
	Short: "Vietnamese names for weekdays, months, ordinals and times of day",
	Long: `vilocale looks up the Vietnamese forms a date formatter needs:
weekday and month names by width, ordinal numbers by unit, and the
part-of-day phrase or AM/PM marker for an hour.`,
	Example: "\n  vilocale weekday 1\n  vilocale months --width short -o yaml\n  vilocale ordinal 2 --unit quarter\n  vilocale time-of-day 13 --type uppercase\n  vilocale eval 'weekday(_.weekday) + \", \" + timeOfDay(_.hour)'\n",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		run := settings.NewCliParams()
		if debug {
			run.MinLogLevel = -1
		}
		run.IsQuiet = quiet
		lgr := logger.Get(run.MinLogLevel)
		lgr = logger.WithValues(lgr, logger.RootCommandKey, settings.CliBinaryName, logger.SubCommandKey, cmd.Name())

		run.ConfigPath = config.ResolvePath(configFile)
		cfg, err := config.Load(run.ConfigPath, *lgr)
		if err != nil {
			return err
		}
		activeConfig = cfg

		opts, err := resolveRunOptions(cmd, cfg, run)
		if err != nil {
			return err
		}
		lgr.V(1).Info("resolved options", "config_path", opts.run.ConfigPath, "quiet", opts.run.IsQuiet, "output", opts.run.Output, "width", string(opts.width), "type", opts.typ.String(), "no_color", opts.run.NoColor)

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		ctx = logger.WithLogger(ctx, lgr)
		ctx = settings.IntoContext(ctx, opts.run)
		ctx = context.WithValue(ctx, runOptionsKey{}, runOptions{width: opts.width, typ: opts.typ, limiter: opts.limiter})
		cmd.SetContext(ctx)
		return nil
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}

// resolveRunOptions completes run, which already carries the log level,
// config path and quiet flag, with the output settings and lookup options.
func resolveRunOptions(cmd *cobra.Command, cfg config.Config, run *settings.Run) (runOptions, error) {
	run.Output = cfg.Defaults.Output
	if flagChanged(cmd, "output") || run.Output == "" {
		run.Output = output
	}
	if !config.IsOutputFormat(run.Output) {
		return runOptions{}, &optionError{Name: "output", Value: run.Output, Allowed: config.OutputFormats}
	}
	run.NoColor = noColor || cfg.Output.NoColorOr(false) || !isTerminal(cmd.OutOrStdout())

	width, err := resolveWidth(cmd, cfg)
	if err != nil {
		return runOptions{}, err
	}
	typ, err := resolveType(cmd, cfg)
	if err != nil {
		return runOptions{}, err
	}

	lim := limiter.Config{Limit: limitRecords, Offset: offsetRecords, Tail: tailRecords}
	if err := lim.Validate(); err != nil {
		return runOptions{}, fmt.Errorf("record limiting: %w", err)
	}
	return runOptions{run: run, width: width, typ: typ, limiter: lim}, nil
}

// optionsFrom returns the options stored by the root pre-run. Commands run
// outside Execute (tests calling RunE directly) get the defaults.
func optionsFrom(cmd *cobra.Command) runOptions {
	opts := runOptions{width: localize.WidthLong}
	ctx := cmd.Context()
	if ctx != nil {
		if stored, ok := ctx.Value(runOptionsKey{}).(runOptions); ok {
			opts = stored
		}
		if run, ok := settings.FromContext(ctx); ok {
			opts.run = run
		}
	}
	if opts.run == nil {
		opts.run = settings.NewCliParams()
	}
	return opts
}

func flagChanged(cmd *cobra.Command, name string) bool {
	f := cmd.Flags().Lookup(name)
	return f != nil && f.Changed
}

// isTerminal reports whether w is a terminal. Buffers and pipes are not.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func init() { //nolint:gochecknoinits
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config-file", "", "path to a YAML or TOML config file")
	pf.StringVarP(&output, "output", "o", "table", "output format: table|yaml|json|toml|markdown|html|raw")
	pf.BoolVar(&noColor, "no-color", false, "disable color output")
	pf.BoolVar(&debug, "debug", false, "write debug logs to stderr")
	pf.BoolVarP(&quiet, "quiet", "q", false, "suppress result output; the exit status still reports errors")
	pf.StringVarP(&widthName, "width", "w", "", "name width: narrow|short|long (default from config)")
	pf.StringVar(&typeName, "type", "", "day-period type: long|uppercase|lowercase (default from config)")
	pf.IntVar(&limitRecords, "limit", 0, "limit total number of rows displayed")
	pf.IntVar(&offsetRecords, "offset", 0, "skip the first N rows")
	pf.IntVar(&tailRecords, "tail", 0, "show the last N rows (mutually exclusive with --limit; ignores --offset)")

	rootCmd.Version = cliVersionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.AddCommand(
		weekdayCmd, weekdaysCmd,
		monthCmd, monthsCmd,
		ordinalCmd,
		timeOfDayCmd, timesOfDayCmd,
		tablesCmd,
		describeCmd, evalCmd,
		configCmd, versionCmd,
	)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
