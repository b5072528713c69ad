// Package vi is the Vietnamese locale: calendar names, day periods and
// ordinal rules.
package vi

import "github.com/oakwood-commons/vilocale/pkg/localize"

const defaultWidth = localize.WidthLong

var (
	// Weekday returns the weekday name for index 0 (Sunday) through 6.
	Weekday = localize.BuildFn(weekdayValues, defaultWidth)
	// Weekdays returns the seven weekday names starting with Sunday.
	Weekdays = localize.BuildArrayFn(weekdayValues, defaultWidth)
	// Month returns the month name for index 0 (January) through 11.
	Month = localize.BuildFn(monthValues, defaultWidth)
	// Months returns the twelve month names in calendar order.
	Months = localize.BuildArrayFn(monthValues, defaultWidth)
	// TimesOfDay returns the day-period names for the selected width.
	TimesOfDay = localize.BuildArrayFn(timeOfDayValues, defaultWidth)
)

// Localize is the Vietnamese accessor set handed to the formatting engine.
var Localize = localize.Localize{
	OrdinalNumber: OrdinalNumber,
	Weekday:       Weekday,
	Weekdays:      Weekdays,
	Month:         Month,
	Months:        Months,
	TimeOfDay:     TimeOfDay,
	TimesOfDay:    TimesOfDay,
}
