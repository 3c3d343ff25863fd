// Package coerce converts loosely typed record values into numbers, times
// and display strings. Conversions follow the lenient rules browsers apply
// to form input, so that a value accepted by the validator is rendered the
// same way by the formatter.
package coerce

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/spf13/cast"
)

// Number converts v to a float64. Strings are trimmed; a blank string is 0;
// 0x, 0o and 0b prefixes and the words Infinity / -Infinity are accepted.
// NaN is never a valid result.
func Number(v any) (float64, bool) {
	switch x := v.(type) {
	case nil:
		return 0, true
	case string:
		return parseNumber(x)
	case json.Number:
		return parseNumber(string(x))
	case bool:
		if x {
			return 1, true
		}
		return 0, true
	case time.Time, *time.Time, []any, map[string]any:
		return 0, false
	}
	f, err := cast.ToFloat64E(v)
	if err != nil || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, true
	}
	switch s {
	case "Infinity", "+Infinity":
		return math.Inf(1), true
	case "-Infinity":
		return math.Inf(-1), true
	}
	if len(s) > 2 && s[0] == '0' {
		base := 0
		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			n, err := strconv.ParseUint(s[2:], base, 64)
			if err != nil {
				return 0, false
			}
			return float64(n), true
		}
	}
	// strconv accepts spellings a form field would not: inf, nan, hex
	// floats and digit separators.
	lower := strings.ToLower(s)
	if strings.ContainsAny(s, "_pP") || strings.Contains(lower, "inf") || strings.Contains(lower, "nan") {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// MaxEpochMillis is the largest distance from the Unix epoch, in
// milliseconds, that Time accepts for numeric input (±100,000,000 days).
const MaxEpochMillis = 8.64e15

// Time converts v to an instant. Strings go through dateparse, with loc
// used for inputs that carry no zone. Numbers are Unix milliseconds.
func Time(v any, loc *time.Location) (time.Time, bool) {
	if loc == nil {
		loc = time.UTC
	}
	switch x := v.(type) {
	case nil:
		return time.Time{}, false
	case time.Time:
		return x, true
	case *time.Time:
		if x == nil {
			return time.Time{}, false
		}
		return *x, true
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return time.Time{}, false
		}
		t, err := dateparse.ParseIn(s, loc)
		if err != nil {
			return time.Time{}, false
		}
		return t, true
	case bool:
		return time.Time{}, false
	}
	ms, ok := Number(v)
	if !ok || math.IsNaN(ms) || math.Abs(ms) > MaxEpochMillis {
		return time.Time{}, false
	}
	return time.UnixMilli(int64(ms)).In(loc), true
}

// String renders v as text for display. Strings pass through unchanged.
func String(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		b, jerr := json.Marshal(v)
		if jerr != nil {
			return ""
		}
		return string(b)
	}
	return s
}

// IsFalsy reports whether v is nil, false, an empty string or numeric zero.
// Display helpers render falsy values as the empty string.
func IsFalsy(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return x == ""
	case bool:
		return !x
	case json.Number:
		f, err := x.Float64()
		return err == nil && f == 0
	case time.Time:
		return false
	}
	f, err := cast.ToFloat64E(v)
	return err == nil && (f == 0 || math.IsNaN(f))
}
