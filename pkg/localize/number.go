package localize

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// Ordinal is the result of an ordinal selector: either a word or phrase, or
// the input number passed through unchanged.
type Ordinal struct {
	Word   string
	Number int
	// Valid is false when the input could not be read as an integer.
	Valid bool
}

// WordOrdinal returns an Ordinal rendered as a word or phrase.
func WordOrdinal(word string) Ordinal {
	return Ordinal{Word: word, Valid: true}
}

// NumberOrdinal returns an Ordinal that passes the number through.
func NumberOrdinal(n int, valid bool) Ordinal {
	return Ordinal{Number: n, Valid: valid}
}

// IsWord reports whether the ordinal was rendered as a word.
func (o Ordinal) IsWord() bool {
	return o.Word != ""
}

func (o Ordinal) String() string {
	if o.Word != "" {
		return o.Word
	}
	return FormatInt(o.Number, o.Valid)
}

// Value returns the word as a string or the number as an int, mirroring the
// string-or-number shape callers serialize.
func (o Ordinal) Value() any {
	if o.Word != "" {
		return o.Word
	}
	if !o.Valid {
		return "NaN"
	}
	return o.Number
}

// FormatInt renders n in decimal, or "NaN" when valid is false.
func FormatInt(n int, valid bool) string {
	if !valid {
		return "NaN"
	}
	return strconv.Itoa(n)
}

// ToInt reads v as an integer the way a lenient integer parser does:
// integers as-is (named types such as time.Weekday included), floats
// truncated toward zero, strings from optional leading whitespace, an
// optional sign and the leading run of decimal digits. Values outside the int
// range saturate. Anything else reports false.
func ToInt(v any) (int, bool) {
	switch n := v.(type) {
	case nil:
		return 0, false
	case []byte:
		return parseLeadingInt(string(n))
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return clampInt64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if u := rv.Uint(); u <= math.MaxInt {
			return int(u), true
		}
		return math.MaxInt, true
	case reflect.Float32, reflect.Float64:
		return floatToInt(rv.Float())
	case reflect.String:
		return parseLeadingInt(rv.String())
	default:
	}

	if s, ok := v.(fmt.Stringer); ok {
		return parseLeadingInt(s.String())
	}
	return 0, false
}

func clampInt64(i int64) int {
	if i > math.MaxInt {
		return math.MaxInt
	}
	if i < math.MinInt {
		return math.MinInt
	}
	return int(i)
}

func floatToInt(f float64) (int, bool) {
	switch {
	case math.IsNaN(f), math.IsInf(f, 0):
		return 0, false
	case f >= float64(math.MaxInt):
		return math.MaxInt, true
	case f <= float64(math.MinInt):
		return math.MinInt, true
	}
	return int(math.Trunc(f)), true
}

func parseLeadingInt(s string) (int, bool) {
	s = strings.TrimLeft(s, " \t\n\r\v\f")
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		// out of int range: keep the sign, saturate
		if s[0] == '-' {
			return math.MinInt, true
		}
		return math.MaxInt, true
	}
	return n, true
}

// ToFloat reads v as a number: numeric kinds as-is (named types included),
// booleans as 1 or 0, strings parsed after trimming (the empty string is 0).
// nil and anything unparsable become NaN, which fails every ordered
// comparison.
func ToFloat(v any) float64 {
	switch n := v.(type) {
	case nil:
		return math.NaN()
	case []byte:
		return parseFloat(string(n))
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		if rv.Bool() {
			return 1
		}
		return 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return rv.Float()
	case reflect.String:
		return parseFloat(rv.String())
	default:
	}

	if s, ok := v.(fmt.Stringer); ok {
		return parseFloat(s.String())
	}
	return math.NaN()
}

func parseFloat(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}
	return f
}
