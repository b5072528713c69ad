package vi

import "github.com/oakwood-commons/vilocale/pkg/localize"

// Capitalization follows Vietnamese administrative writing: weekday and
// month names keep the lowercase "thứ"/"tháng" prefix, except Chủ Nhật.
var weekdayValues = localize.Table{
	localize.WidthNarrow: {"CN", "T2", "T3", "T4", "T5", "T6", "T7"},
	localize.WidthShort:  {"CN", "thứ 2", "thứ 3", "thứ 4", "thứ 5", "thứ 6", "thứ 7"},
	localize.WidthLong:   {"Chủ Nhật", "thứ Hai", "thứ Ba", "thứ Tư", "thứ Năm", "thứ Sáu", "thứ Bảy"},
}

var monthValues = localize.Table{
	localize.WidthShort: {
		"thg 1", "thg 2", "thg 3", "thg 4", "thg 5", "thg 6",
		"thg 7", "thg 8", "thg 9", "thg 10", "thg 11", "thg 12",
	},
	localize.WidthLong: {
		"tháng Một", "tháng Hai", "tháng Ba", "tháng Tư", "tháng Năm", "tháng Sáu",
		"tháng Bảy", "tháng Tám", "tháng Chín", "tháng Mười", "tháng Mười Một", "tháng Mười Hai",
	},
}

// AM/PM is borrowed as-is; only the long form names the part of the day.
var timeOfDayValues = localize.Table{
	localize.WidthUppercase: {"AM", "PM"},
	localize.WidthLowercase: {"am", "pm"},
	// morning, midday, afternoon, evening, night
	localize.WidthLong: {"sáng", "trưa", "chiều", "tối", "đêm"},
}

// Indexes into the long day-period sequence.
const (
	periodMorning = iota
	periodMidday
	periodAfternoon
	periodEvening
	periodNight
)

// Table names accepted by Tables and the CLI.
const (
	TableWeekday   = "weekday"
	TableMonth     = "month"
	TableTimeOfDay = "timeOfDay"
)

// Tables returns a copy of every lookup table keyed by table name.
func Tables() map[string]localize.Table {
	return map[string]localize.Table{
		TableWeekday:   weekdayValues.Clone(),
		TableMonth:     monthValues.Clone(),
		TableTimeOfDay: timeOfDayValues.Clone(),
	}
}

// TableNames returns the table names in display order.
func TableNames() []string {
	return []string{TableWeekday, TableMonth, TableTimeOfDay}
}
