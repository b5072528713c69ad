// Package core is the library entry point: it extracts calendar fields from
// a time, renders them through a locale, and evaluates CEL expressions over
// them.
package core

import (
	"fmt"
	"time"

	"github.com/go-logr/logr"

	"github.com/oakwood-commons/vilocale/internal/cel"
	"github.com/oakwood-commons/vilocale/internal/formatter"
	"github.com/oakwood-commons/vilocale/pkg/loader"
	"github.com/oakwood-commons/vilocale/pkg/locale/vi"
	"github.com/oakwood-commons/vilocale/pkg/logger"
	"github.com/oakwood-commons/vilocale/pkg/localize"
)

// Field names returned by Fields.
const (
	FieldYear      = "year"
	FieldMonth     = "month"
	FieldDay       = "day"
	FieldWeekday   = "weekday"
	FieldHour      = "hour"
	FieldMinute    = "minute"
	FieldQuarter   = "quarter"
	FieldISOWeek   = "isoWeek"
	FieldDayOfYear = "dayOfYear"
)

// Evaluator evaluates expressions against a root node.
type Evaluator interface {
	Evaluate(expr string, root any) (any, error)
}

// Engine ties a locale to an expression evaluator.
type Engine struct {
	Evaluator Evaluator
	Locale    localize.Localize
	Logger    logr.Logger
}

// Option configures the Engine.
type Option func(*Engine)

// WithEvaluator sets a custom evaluator.
func WithEvaluator(e Evaluator) Option {
	return func(c *Engine) {
		c.Evaluator = e
	}
}

// WithLocale replaces the Vietnamese accessors used by Describe and by the
// functions of the default CEL evaluator.
func WithLocale(l localize.Localize) Option {
	return func(c *Engine) {
		c.Locale = l
	}
}

// WithLogger sets the logger passed to the default evaluator and loader. The
// default is the process-wide logger, a no-op until the CLI initializes it.
func WithLogger(lgr logr.Logger) Option {
	return func(c *Engine) {
		c.Logger = lgr
	}
}

// New creates an Engine with the Vietnamese locale and a CEL evaluator
// unless overridden.
func New(opts ...Option) (*Engine, error) {
	engine := &Engine{
		Locale: vi.Localize,
		Logger: *logger.GetGlobalLogger(),
	}
	for _, opt := range opts {
		opt(engine)
	}
	if engine.Evaluator == nil {
		eval, err := cel.NewEvaluator(cel.WithLogger(engine.Logger), cel.WithLocale(engine.Locale))
		if err != nil {
			return nil, err
		}
		engine.Evaluator = eval
	}
	return engine, nil
}

// Fields extracts the calendar fields of t. Month and weekday are 0-based
// indices into the locale tables; week numbers follow ISO 8601.
func Fields(t time.Time) map[string]any {
	_, week := t.ISOWeek()
	return map[string]any{
		FieldYear:      t.Year(),
		FieldMonth:     int(t.Month()) - 1,
		FieldDay:       t.Day(),
		FieldWeekday:   int(t.Weekday()),
		FieldHour:      t.Hour(),
		FieldMinute:    t.Minute(),
		FieldQuarter:   (int(t.Month())-1)/3 + 1,
		FieldISOWeek:   week,
		FieldDayOfYear: t.YearDay(),
	}
}

// Describe renders the calendar fields of t through the locale. opts.Width
// selects the name width and opts.Type the day-period style.
func (e *Engine) Describe(t time.Time, opts localize.Options) *formatter.Result {
	f := Fields(t)
	loc := e.Locale
	nameOpts := localize.Options{Width: opts.Width}
	ordinal := func(field string, unit localize.Unit) any {
		return loc.OrdinalNumber(f[field], localize.Options{Unit: unit}).Value()
	}

	r := formatter.NewResult("describe", "field", "value", "vi")
	r.Add(FieldWeekday, f[FieldWeekday], loc.Weekday(f[FieldWeekday].(int), nameOpts))
	r.Add(FieldMonth, f[FieldMonth], loc.Month(f[FieldMonth].(int), nameOpts))
	r.Add(FieldDay, f[FieldDay], ordinal(FieldDay, localize.UnitDayOfMonth))
	r.Add(FieldQuarter, f[FieldQuarter], ordinal(FieldQuarter, localize.UnitQuarter))
	r.Add(FieldISOWeek, f[FieldISOWeek], ordinal(FieldISOWeek, localize.UnitISOWeek))
	r.Add(FieldDayOfYear, f[FieldDayOfYear], ordinal(FieldDayOfYear, localize.UnitDayOfYear))
	r.Add(FieldHour, f[FieldHour], loc.TimeOfDay(f[FieldHour], localize.Options{Type: opts.Type}))
	e.Logger.V(1).Info("described time", "time", t.Format(time.RFC3339), "width", string(opts.Width), "type", opts.Type.String())
	return r
}

// Evaluate runs the evaluator against the provided root node.
func (e *Engine) Evaluate(expr string, root any) (any, error) {
	if e == nil || e.Evaluator == nil {
		return nil, fmt.Errorf("evaluator is not configured")
	}
	return e.Evaluator.Evaluate(expr, root)
}

// EvaluateAt evaluates expr with the fields of t bound as the root.
func (e *Engine) EvaluateAt(expr string, t time.Time) (any, error) {
	return e.Evaluate(expr, Fields(t))
}

// LoadRoot parses a JSON, YAML or TOML document into a root node.
func LoadRoot(input string) (any, error) {
	return loader.LoadRoot(input)
}

// LoadFile reads a file and parses it into a root node.
func (e *Engine) LoadFile(path string) (any, error) {
	return loader.LoadFile(path, e.Logger)
}
