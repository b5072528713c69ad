package vi

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/unicode/norm"
	"pgregory.net/rapid"

	"github.com/oakwood-commons/vilocale/pkg/localize"
)

var (
	noOpts      = localize.Options{}
	quarterOpts = localize.Options{Unit: localize.UnitQuarter}
	dowOpts     = localize.Options{Unit: localize.UnitDayOfWeek}
	weekOpts    = localize.Options{Unit: localize.UnitWeek}
	isoWeekOpts = localize.Options{Unit: localize.UnitISOWeek}
	doyOpts     = localize.Options{Unit: localize.UnitDayOfYear}
	upperOpts   = localize.Options{Type: localize.DayPeriodUppercase}
	lowerOpts   = localize.Options{Type: localize.DayPeriodLowercase}
)

type hour int

func TestWeekdayLong(t *testing.T) {
	want := []string{"Chủ Nhật", "thứ Hai", "thứ Ba", "thứ Tư", "thứ Năm", "thứ Sáu", "thứ Bảy"}
	for i, name := range want {
		assert.Equal(t, name, Weekday(i, noOpts), "index %d", i)
	}
	assert.Equal(t, want, Weekdays(noOpts))
}

func TestWeekdayWidths(t *testing.T) {
	assert.Equal(t, "T2", Weekday(1, localize.Options{Width: localize.WidthNarrow}))
	assert.Equal(t, "thứ 7", Weekday(6, localize.Options{Width: localize.WidthShort}))
	assert.Equal(t, "CN", Weekday(0, localize.Options{Width: localize.WidthShort}))
	// weekday has no uppercase width; falls back to long
	assert.Equal(t, "thứ Hai", Weekday(1, localize.Options{Width: localize.WidthUppercase}))
}

func TestMonths(t *testing.T) {
	long := Months(noOpts)
	require.Len(t, long, 12)
	for i := range long {
		assert.Equal(t, long[i], Month(i, noOpts))
	}
	assert.Equal(t, "tháng Một", Month(0, noOpts))
	assert.Equal(t, "tháng Mười Hai", Month(11, noOpts))
	assert.Equal(t, "thg 10", Month(9, localize.Options{Width: localize.WidthShort}))
	// month has no narrow width
	assert.Equal(t, "tháng Ba", Month(2, localize.Options{Width: localize.WidthNarrow}))
}

func TestTimesOfDay(t *testing.T) {
	assert.Equal(t, []string{"sáng", "trưa", "chiều", "tối", "đêm"}, TimesOfDay(noOpts))
	assert.Equal(t, []string{"AM", "PM"}, TimesOfDay(localize.Options{Width: localize.WidthUppercase}))
	assert.Equal(t, []string{"am", "pm"}, TimesOfDay(localize.Options{Width: localize.WidthLowercase}))
}

func TestOrdinalNumber(t *testing.T) {
	tests := []struct {
		name  string
		value any
		opts  localize.Options
		want  any
	}{
		{"quarter 1", 1, quarterOpts, "một"},
		{"quarter 2", 2, quarterOpts, "hai"},
		{"quarter 3", 3, quarterOpts, "ba"},
		{"quarter 4", 4, quarterOpts, "bốn"},
		{"quarter 5 passes through", 5, quarterOpts, 5},
		{"quarter 0 passes through", 0, quarterOpts, 0},
		{"day of week sunday", 0, dowOpts, "CN"},
		{"day of week monday", 1, dowOpts, "2"},
		{"day of week saturday", 6, dowOpts, "7"},
		{"day of week 7 passes through", 7, dowOpts, 7},
		{"week 1", 1, weekOpts, "thứ nhất"},
		{"week 2", 2, weekOpts, "thứ 2"},
		{"week 53", 53, weekOpts, "thứ 53"},
		{"iso week 1", 1, isoWeekOpts, "thứ nhất"},
		{"iso week 10", 10, isoWeekOpts, "thứ 10"},
		{"day of year 1", 1, doyOpts, "đầu tiên"},
		{"day of year 366", 366, doyOpts, "thứ 366"},
		{"no unit", 3, noOpts, 3},
		{"day of week from time.Weekday", time.Sunday, dowOpts, "CN"},
		{"day of week from time.Weekday friday", time.Friday, dowOpts, "6"},
		{"quarter from named int", hour(2), quarterOpts, "hai"},
		{"month unit passes through", 12, localize.Options{Unit: localize.UnitMonth}, 12},
		{"day of month passes through", 31, localize.Options{Unit: localize.UnitDayOfMonth}, 31},
		{"string input", "4", quarterOpts, "bốn"},
		{"string with suffix", "2nd", weekOpts, "thứ 2"},
		{"float truncates", 1.9, doyOpts, "đầu tiên"},
		{"not a number", "abc", noOpts, "NaN"},
		{"not a number week", "abc", weekOpts, "thứ NaN"},
		{"not a number quarter", nil, quarterOpts, "NaN"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := OrdinalNumber(tt.value, tt.opts)
			assert.Equal(t, tt.want, got.Value())
		})
	}
}

func TestOrdinalNumberWordFlag(t *testing.T) {
	assert.True(t, OrdinalNumber(1, quarterOpts).IsWord())
	assert.False(t, OrdinalNumber(5, quarterOpts).IsWord())
	assert.Equal(t, "5", OrdinalNumber(5, quarterOpts).String())
}

func TestTimeOfDayLong(t *testing.T) {
	tests := []struct {
		hours any
		want  string
	}{
		{0, "đêm"},
		{0.5, "đêm"},
		{1, "sáng"},
		{10, "sáng"},
		{10.99, "sáng"},
		{11, "trưa"},
		{13, "trưa"},
		{14, "chiều"},
		{18, "chiều"},
		{19, "tối"},
		{21, "tối"},
		{22, "đêm"},
		{23, "đêm"},
		{-3, "đêm"},
		{48, "đêm"},
		{"15", "chiều"},
		{hour(13), "trưa"},
		{time.Month(3), "sáng"},
		{uint64(20), "tối"},
		{"", "đêm"},
		{"noon", "đêm"},
		{nil, "đêm"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TimeOfDay(tt.hours, noOpts), "hours %v", tt.hours)
	}
}

func TestTimeOfDayMarkers(t *testing.T) {
	assert.Equal(t, "AM", TimeOfDay(0, upperOpts))
	assert.Equal(t, "AM", TimeOfDay(11, upperOpts))
	assert.Equal(t, "PM", TimeOfDay(12, upperOpts))
	assert.Equal(t, "PM", TimeOfDay(23, upperOpts))
	assert.Equal(t, "am", TimeOfDay(0, lowerOpts))
	assert.Equal(t, "am", TimeOfDay(11.5, lowerOpts))
	assert.Equal(t, "pm", TimeOfDay(12, lowerOpts))
	assert.Equal(t, "pm", TimeOfDay(23, lowerOpts))
	assert.Equal(t, "AM", TimeOfDay(-12, upperOpts))
	assert.Equal(t, "AM", TimeOfDay(math.NaN(), upperOpts))
	assert.Equal(t, "am", TimeOfDay("x", lowerOpts))
}

func TestLocalizeSurface(t *testing.T) {
	assert.Equal(t, "thứ Năm", Localize.Weekday(4, noOpts))
	assert.Equal(t, Weekdays(noOpts), Localize.Weekdays(noOpts))
	assert.Equal(t, "tháng Tư", Localize.Month(3, noOpts))
	assert.Equal(t, Months(noOpts), Localize.Months(noOpts))
	assert.Equal(t, "tối", Localize.TimeOfDay(20, noOpts))
	assert.Equal(t, TimesOfDay(noOpts), Localize.TimesOfDay(noOpts))
	assert.Equal(t, "một", Localize.OrdinalNumber(1, quarterOpts).String())
}

func TestAccessorsReturnCopies(t *testing.T) {
	days := Weekdays(noOpts)
	days[0] = "mutated"
	assert.Equal(t, "Chủ Nhật", Weekday(0, noOpts))

	tables := Tables()
	tables[TableMonth][localize.WidthLong][0] = "mutated"
	assert.Equal(t, "tháng Một", Month(0, noOpts))
}

func TestTableShapes(t *testing.T) {
	lengths := map[string]map[localize.Width]int{
		TableWeekday: {localize.WidthNarrow: 7, localize.WidthShort: 7, localize.WidthLong: 7},
		TableMonth:   {localize.WidthShort: 12, localize.WidthLong: 12},
		TableTimeOfDay: {
			localize.WidthUppercase: 2,
			localize.WidthLowercase: 2,
			localize.WidthLong:      5,
		},
	}
	tables := Tables()
	require.Len(t, tables, len(TableNames()))
	for _, name := range TableNames() {
		table, ok := tables[name]
		require.True(t, ok, name)
		require.Len(t, table, len(lengths[name]), name)
		for width, n := range lengths[name] {
			assert.Len(t, table[width], n, "%s/%s", name, width)
			for _, v := range table[width] {
				assert.True(t, norm.NFC.IsNormalString(v), "%q is not NFC", v)
			}
		}
	}
}

func TestOutOfRangeIndex(t *testing.T) {
	assert.Equal(t, "", Weekday(7, noOpts))
	assert.Equal(t, "", Weekday(-1, noOpts))
	assert.Equal(t, "", Month(12, noOpts))
}

func TestOrdinalNumberIsTotal(t *testing.T) {
	units := []localize.Unit{
		localize.UnitUnspecified, localize.UnitQuarter, localize.UnitDayOfWeek,
		localize.UnitWeek, localize.UnitISOWeek, localize.UnitDayOfYear,
		localize.UnitMonth, localize.UnitDayOfMonth, localize.Unit(99),
	}
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.Int().Draw(t, "n")
		unit := rapid.SampledFrom(units).Draw(t, "unit")
		opts := localize.Options{Unit: unit}

		first := OrdinalNumber(n, opts)
		second := OrdinalNumber(n, opts)
		if first != second {
			t.Fatalf("not idempotent: %+v vs %+v", first, second)
		}
		if first.String() == "" {
			t.Fatalf("empty rendering for %d/%s", n, unit)
		}
		if !first.IsWord() && first.Number != n {
			t.Fatalf("passthrough changed the number: got %d want %d", first.Number, n)
		}
	})
}

func TestWeekOrdinalFormat(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(2, 10000).Draw(t, "n")
		got := OrdinalNumber(n, weekOpts).String()
		want := "thứ " + localize.FormatInt(n, true)
		if got != want {
			t.Fatalf("got %q want %q", got, want)
		}
	})
}

func TestTimeOfDayIsTotal(t *testing.T) {
	longNames := TimesOfDay(noOpts)
	rapid.Check(t, func(t *rapid.T) {
		h := rapid.Float64().Draw(t, "hours")
		got := TimeOfDay(h, noOpts)
		assert.Contains(t, longNames, got)
		assert.Equal(t, got, TimeOfDay(h, noOpts))

		marker := TimeOfDay(h, upperOpts)
		if h >= 12 {
			assert.Equal(t, "PM", marker)
		} else {
			assert.Equal(t, "AM", marker)
		}
	})
}
