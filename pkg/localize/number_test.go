package localize

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestToInt(t *testing.T) {
	tests := []struct {
		name   string
		in     any
		want   int
		wantOK bool
	}{
		{"int", 7, 7, true},
		{"int64", int64(-3), -3, true},
		{"uint8", uint8(200), 200, true},
		{"float truncates", 3.9, 3, true},
		{"negative float truncates toward zero", -3.9, -3, true},
		{"nan", math.NaN(), 0, false},
		{"inf", math.Inf(1), 0, false},
		{"string", "42", 42, true},
		{"leading whitespace", "  12", 12, true},
		{"signed", "-5", -5, true},
		{"trailing garbage", "12abc", 12, true},
		{"decimal string", "3.7", 3, true},
		{"sign only", "-", 0, false},
		{"empty", "", 0, false},
		{"letters", "abc", 0, false},
		{"bytes", []byte("9"), 9, true},
		{"named int", time.Saturday, 6, true},
		{"named month", time.March, 3, true},
		{"named string", unitName("12 giờ"), 12, true},
		{"stringer reads its text", label{"4"}, 4, true},
		{"uint64 above int range saturates", uint64(math.MaxUint64), math.MaxInt, true},
		{"huge float saturates", 1e300, math.MaxInt, true},
		{"huge negative float saturates", -1e300, math.MinInt, true},
		{"digits above int range saturate", "99999999999999999999", math.MaxInt, true},
		{"nil", nil, 0, false},
		{"bool", true, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ToInt(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

type unitName string

type label struct{ text string }

func (l label) String() string { return l.text }

func TestToFloat(t *testing.T) {
	assert.Equal(t, 13.0, ToFloat(13))
	assert.Equal(t, 13.5, ToFloat(13.5))
	assert.Equal(t, 7.25, ToFloat(" 7.25 "))
	assert.Equal(t, 0.0, ToFloat(""))
	assert.Equal(t, 1.0, ToFloat(true))
	assert.Equal(t, 0.0, ToFloat(false))
	assert.Equal(t, 22.0, ToFloat(uint16(22)))
	assert.Equal(t, 3.0, ToFloat(time.March))
	assert.Equal(t, 13.0, ToFloat(unitName("13")))
	assert.Equal(t, 6.5, ToFloat(label{"6.5"}))
	assert.True(t, math.IsNaN(ToFloat(nil)))
	assert.True(t, math.IsNaN(ToFloat("12abc")))
	assert.True(t, math.IsNaN(ToFloat(struct{}{})))
}

func TestOrdinalRendering(t *testing.T) {
	assert.Equal(t, "một", WordOrdinal("một").String())
	assert.Equal(t, "một", WordOrdinal("một").Value())
	assert.Equal(t, "12", NumberOrdinal(12, true).String())
	assert.Equal(t, 12, NumberOrdinal(12, true).Value())
	assert.Equal(t, "NaN", NumberOrdinal(0, false).String())
	assert.Equal(t, "NaN", NumberOrdinal(0, false).Value())
}
