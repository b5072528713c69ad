package vi

import "github.com/oakwood-commons/vilocale/pkg/localize"

// TimeOfDay names the part of the day for an hour on a 12-hour clock.
//
// The uppercase and lowercase types return the AM/PM marker, switching to PM
// once hours/12 reaches 1. The long type buckets the hour:
//
//	[..1)   đêm
//	[1..11) sáng
//	[11..14) trưa
//	[14..19) chiều
//	[19..22) tối
//	[22..)  đêm
//
// Out-of-range hours are not rejected. An hour that is not a number fails
// every comparison, giving "AM" or "đêm".
func TimeOfDay(hours any, opts localize.Options) string {
	h := localize.ToFloat(hours)

	switch opts.Type {
	case localize.DayPeriodUppercase:
		return meridiem(h, timeOfDayValues[localize.WidthUppercase])
	case localize.DayPeriodLowercase:
		return meridiem(h, timeOfDayValues[localize.WidthLowercase])
	case localize.DayPeriodLong:
	}

	long := timeOfDayValues[localize.WidthLong]
	switch {
	case h < 1:
		return long[periodNight]
	case h < 11:
		return long[periodMorning]
	case h < 14:
		return long[periodMidday]
	case h < 19:
		return long[periodAfternoon]
	case h < 22:
		return long[periodEvening]
	}
	return long[periodNight]
}

func meridiem(h float64, markers []string) string {
	if h/12 >= 1 {
		return markers[1]
	}
	return markers[0]
}
