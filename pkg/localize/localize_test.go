package localize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseUnit(t *testing.T) {
	tests := []struct {
		in     string
		want   Unit
		wantOK bool
	}{
		{"quarter", UnitQuarter, true},
		{"dayOfWeek", UnitDayOfWeek, true},
		{"dayofweek", UnitDayOfWeek, true},
		{"week", UnitWeek, true},
		{"isoWeek", UnitISOWeek, true},
		{" dayOfYear ", UnitDayOfYear, true},
		{"month", UnitMonth, true},
		{"dayOfMonth", UnitDayOfMonth, true},
		{"", UnitUnspecified, false},
		{"fortnight", UnitUnspecified, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseUnit(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestUnitString(t *testing.T) {
	assert.Equal(t, "isoWeek", UnitISOWeek.String())
	assert.Equal(t, "unspecified", UnitUnspecified.String())
	assert.Equal(t, "unspecified", Unit(42).String())
	assert.Equal(t, []string{"quarter", "dayOfWeek", "week", "isoWeek", "dayOfYear", "month", "dayOfMonth"}, Units())
}

func TestParseDayPeriodType(t *testing.T) {
	got, ok := ParseDayPeriodType("UPPERCASE")
	assert.True(t, ok)
	assert.Equal(t, DayPeriodUppercase, got)

	got, ok = ParseDayPeriodType("lowercase")
	assert.True(t, ok)
	assert.Equal(t, DayPeriodLowercase, got)

	got, ok = ParseDayPeriodType("narrow")
	assert.False(t, ok)
	assert.Equal(t, DayPeriodLong, got)

	assert.Equal(t, "long", DayPeriodType(7).String())
}

func TestParseWidth(t *testing.T) {
	w, ok := ParseWidth("Short")
	assert.True(t, ok)
	assert.Equal(t, WidthShort, w)

	w, ok = ParseWidth("abbreviated")
	assert.False(t, ok)
	assert.Equal(t, Width("abbreviated"), w)

	assert.Equal(t, []string{"narrow", "short", "long", "uppercase", "lowercase"}, Widths())
}
