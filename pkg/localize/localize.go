// Package localize defines the contract between a date-formatting engine and
// a locale: rendering widths, ordinal units, day-period types, the options
// value passed to every accessor, and the generic builders that turn a
// width-keyed table into accessor functions.
package localize

import (
	"sort"
	"strings"
)

// Width names a rendering granularity for calendar names or a case style for
// time markers.
type Width string

const (
	WidthNarrow    Width = "narrow"
	WidthShort     Width = "short"
	WidthLong      Width = "long"
	WidthUppercase Width = "uppercase"
	WidthLowercase Width = "lowercase"
)

var knownWidths = []Width{WidthNarrow, WidthShort, WidthLong, WidthUppercase, WidthLowercase}

// ParseWidth maps a width name to a Width. The second return is false for
// names that are not one of the known widths.
func ParseWidth(s string) (Width, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, w := range knownWidths {
		if string(w) == s {
			return w, true
		}
	}
	return Width(s), false
}

// Widths returns the known width names.
func Widths() []string {
	out := make([]string, len(knownWidths))
	for i, w := range knownWidths {
		out[i] = string(w)
	}
	return out
}

// Unit is the semantic category of an ordinal number.
type Unit int

const (
	UnitUnspecified Unit = iota
	UnitQuarter
	UnitDayOfWeek
	UnitWeek
	UnitISOWeek
	UnitDayOfYear
	UnitMonth
	UnitDayOfMonth
)

var unitNames = map[Unit]string{
	UnitQuarter:    "quarter",
	UnitDayOfWeek:  "dayOfWeek",
	UnitWeek:       "week",
	UnitISOWeek:    "isoWeek",
	UnitDayOfYear:  "dayOfYear",
	UnitMonth:      "month",
	UnitDayOfMonth: "dayOfMonth",
}

func (u Unit) String() string {
	if name, ok := unitNames[u]; ok {
		return name
	}
	return "unspecified"
}

// ParseUnit maps a unit name (case-insensitive) to a Unit. Unknown names
// yield UnitUnspecified and false.
func ParseUnit(s string) (Unit, bool) {
	s = strings.TrimSpace(s)
	for u, name := range unitNames {
		if strings.EqualFold(name, s) {
			return u, true
		}
	}
	return UnitUnspecified, false
}

// Units returns the recognized unit names in declaration order.
func Units() []string {
	units := make([]Unit, 0, len(unitNames))
	for u := range unitNames {
		units = append(units, u)
	}
	sort.Slice(units, func(i, j int) bool { return units[i] < units[j] })
	out := make([]string, len(units))
	for i, u := range units {
		out[i] = u.String()
	}
	return out
}

// DayPeriodType selects between the long day-period phrases and the AM/PM
// markers.
type DayPeriodType int

const (
	DayPeriodLong DayPeriodType = iota
	DayPeriodUppercase
	DayPeriodLowercase
)

func (t DayPeriodType) String() string {
	switch t {
	case DayPeriodUppercase:
		return "uppercase"
	case DayPeriodLowercase:
		return "lowercase"
	case DayPeriodLong:
		return "long"
	default:
		return "long"
	}
}

// ParseDayPeriodType maps "long", "uppercase" or "lowercase" to a
// DayPeriodType. Anything else yields DayPeriodLong and false.
func ParseDayPeriodType(s string) (DayPeriodType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "long":
		return DayPeriodLong, true
	case "uppercase":
		return DayPeriodUppercase, true
	case "lowercase":
		return DayPeriodLowercase, true
	default:
		return DayPeriodLong, false
	}
}

// Options is the option bag every accessor receives. Zero fields select the
// defaults: the accessor's default width, no unit, and long day periods.
type Options struct {
	Width Width
	Unit  Unit
	Type  DayPeriodType
}

// Localize is the set of accessors a locale provides to the formatting
// engine.
type Localize struct {
	OrdinalNumber func(value any, opts Options) Ordinal
	Weekday       Fn
	Weekdays      ArrayFn
	Month         Fn
	Months        ArrayFn
	TimeOfDay     func(hours any, opts Options) string
	TimesOfDay    ArrayFn
}
