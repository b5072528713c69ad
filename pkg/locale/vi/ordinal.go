package vi

import "github.com/oakwood-commons/vilocale/pkg/localize"

var quarterWords = map[int]string{
	1: "một",
	2: "hai",
	3: "ba",
	4: "bốn",
}

// Weekdays are named by their position; Sunday (Chủ Nhật) is the exception.
var dayOfWeekWords = map[int]string{
	0: "CN",
	1: "2",
	2: "3",
	3: "4",
	4: "5",
	5: "6",
	6: "7",
}

// OrdinalNumber renders value as an ordinal for opts.Unit. Vietnamese has no
// general ordinal suffix, so anything without a unit-specific form is passed
// through as a plain number.
func OrdinalNumber(value any, opts localize.Options) localize.Ordinal {
	n, ok := localize.ToInt(value)

	switch opts.Unit {
	case localize.UnitQuarter:
		if word, found := quarterWords[n]; ok && found {
			return localize.WordOrdinal(word)
		}
	case localize.UnitDayOfWeek:
		if word, found := dayOfWeekWords[n]; ok && found {
			return localize.WordOrdinal(word)
		}
	case localize.UnitWeek, localize.UnitISOWeek:
		if ok && n == 1 {
			return localize.WordOrdinal("thứ nhất")
		}
		return localize.WordOrdinal("thứ " + localize.FormatInt(n, ok))
	case localize.UnitDayOfYear:
		if ok && n == 1 {
			return localize.WordOrdinal("đầu tiên")
		}
		return localize.WordOrdinal("thứ " + localize.FormatInt(n, ok))
	case localize.UnitUnspecified, localize.UnitMonth, localize.UnitDayOfMonth:
	}

	return localize.NumberOrdinal(n, ok)
}
