package cel

import (
	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/common/types"
	"github.com/google/cel-go/common/types/ref"

	"github.com/oakwood-commons/vilocale/pkg/locale/vi"
	"github.com/oakwood-commons/vilocale/pkg/localize"
)

// FunctionNames lists the locale functions the library declares.
var FunctionNames = []string{"weekday", "weekdays", "month", "months", "ordinal", "timeOfDay", "timesOfDay"}

// localeLib exposes a locale's accessors to CEL:
//
//	weekday(int|double[, width]) -> string
//	weekdays([width]) -> list(string)
//	month(int|double[, width]) -> string
//	months([width]) -> list(string)
//	ordinal(int|double[, unit]) -> string | int
//	timeOfDay(int|double[, type]) -> string
//	timesOfDay([width]) -> list(string)
//
// Doubles are truncated toward zero, so numbers decoded from JSON documents
// select the same entries as ints. Accessors left nil in the locale are not
// declared.
type localeLib struct {
	l localize.Localize
}

// Vietnamese returns the CEL library with the Vietnamese locale functions.
func Vietnamese() cel.EnvOption {
	return Library(vi.Localize)
}

// Library returns a CEL library declaring the locale functions backed by l.
func Library(l localize.Localize) cel.EnvOption {
	return cel.Lib(localeLib{l: l})
}

func (localeLib) LibraryName() string {
	return "vilocale.locale"
}

func (localeLib) ProgramOptions() []cel.ProgramOption {
	return nil
}

func (lib localeLib) CompileOptions() []cel.EnvOption {
	listOfString := cel.ListType(cel.StringType)
	var opts []cel.EnvOption
	if lib.l.Weekday != nil {
		opts = append(opts, indexFunction("weekday", lib.l.Weekday))
	}
	if lib.l.Month != nil {
		opts = append(opts, indexFunction("month", lib.l.Month))
	}
	if lib.l.Weekdays != nil {
		opts = append(opts, sequenceFunction("weekdays", lib.l.Weekdays, listOfString))
	}
	if lib.l.Months != nil {
		opts = append(opts, sequenceFunction("months", lib.l.Months, listOfString))
	}
	if lib.l.TimesOfDay != nil {
		opts = append(opts, sequenceFunction("timesOfDay", lib.l.TimesOfDay, listOfString))
	}
	if lib.l.OrdinalNumber != nil {
		opts = append(opts, ordinalFunction(lib.l.OrdinalNumber))
	}
	if lib.l.TimeOfDay != nil {
		opts = append(opts, timeOfDayFunction(lib.l.TimeOfDay))
	}
	return opts
}

// numericOverloads declares name over int and double, each with and without
// a trailing string argument.
func numericOverloads(name string, result *cel.Type, call func(n, s ref.Val) ref.Val) cel.EnvOption {
	unary := cel.UnaryBinding(func(n ref.Val) ref.Val {
		return call(n, types.String(""))
	})
	binary := cel.BinaryBinding(call)
	return cel.Function(name,
		cel.Overload("locale_"+name+"_int", []*cel.Type{cel.IntType}, result, unary),
		cel.Overload("locale_"+name+"_double", []*cel.Type{cel.DoubleType}, result, unary),
		cel.Overload("locale_"+name+"_int_string", []*cel.Type{cel.IntType, cel.StringType}, result, binary),
		cel.Overload("locale_"+name+"_double_string", []*cel.Type{cel.DoubleType, cel.StringType}, result, binary),
	)
}

// toInt reads a CEL int or double as an int, truncating doubles.
func toInt(v ref.Val) (int, bool) {
	switch n := v.(type) {
	case types.Int:
		return localize.ToInt(int64(n))
	case types.Double:
		return localize.ToInt(float64(n))
	}
	return 0, false
}

func indexFunction(name string, fn localize.Fn) cel.EnvOption {
	return numericOverloads(name, cel.StringType, func(idx, width ref.Val) ref.Val {
		i, ok := toInt(idx)
		if !ok {
			return types.MaybeNoSuchOverloadErr(idx)
		}
		w, ok := width.(types.String)
		if !ok {
			return types.MaybeNoSuchOverloadErr(width)
		}
		return types.String(fn(i, localize.Options{Width: localize.Width(w)}))
	})
}

func sequenceFunction(name string, fn localize.ArrayFn, result *cel.Type) cel.EnvOption {
	call := func(width ref.Val) ref.Val {
		w, ok := width.(types.String)
		if !ok {
			return types.MaybeNoSuchOverloadErr(width)
		}
		return types.NewStringList(types.DefaultTypeAdapter, fn(localize.Options{Width: localize.Width(w)}))
	}
	return cel.Function(name,
		cel.Overload("locale_"+name, []*cel.Type{}, result,
			cel.FunctionBinding(func(...ref.Val) ref.Val {
				return call(types.String(""))
			})),
		cel.Overload("locale_"+name+"_string", []*cel.Type{cel.StringType}, result,
			cel.UnaryBinding(call)),
	)
}

func ordinalFunction(fn func(any, localize.Options) localize.Ordinal) cel.EnvOption {
	return numericOverloads("ordinal", cel.DynType, func(n, unit ref.Val) ref.Val {
		i, ok := toInt(n)
		if !ok {
			return types.MaybeNoSuchOverloadErr(n)
		}
		u, ok := unit.(types.String)
		if !ok {
			return types.MaybeNoSuchOverloadErr(unit)
		}
		parsed, _ := localize.ParseUnit(string(u))
		out := fn(i, localize.Options{Unit: parsed})
		if out.IsWord() {
			return types.String(out.Word)
		}
		return types.Int(out.Number)
	})
}

func timeOfDayFunction(fn func(any, localize.Options) string) cel.EnvOption {
	return numericOverloads("timeOfDay", cel.StringType, func(h, typ ref.Val) ref.Val {
		var hours float64
		switch v := h.(type) {
		case types.Int:
			hours = float64(v)
		case types.Double:
			hours = float64(v)
		default:
			return types.MaybeNoSuchOverloadErr(h)
		}
		t, ok := typ.(types.String)
		if !ok {
			return types.MaybeNoSuchOverloadErr(typ)
		}
		parsed, _ := localize.ParseDayPeriodType(string(t))
		return types.String(fn(hours, localize.Options{Type: parsed}))
	})
}
