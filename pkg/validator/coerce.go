package validator

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// Values reach the checks as `any`. nil stands for a missing value; a nil
// pointer, map, slice or interface is treated the same way. The helpers below
// follow loose scripting-language coercion where rules rely on it.

func indirect(v any) any {
	for {
		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.Pointer {
			return v
		}
		if rv.IsNil() {
			return nil
		}
		v = rv.Elem().Interface()
	}
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

func asString(v any) (string, bool) {
	if _, ok := v.(json.Number); ok {
		return "", false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.String {
		return rv.String(), true
	}
	return "", false
}

// asNumber returns v as float64 when v has a numeric type.
func asNumber(v any) (float64, bool) {
	if n, ok := v.(json.Number); ok {
		f, err := strconv.ParseFloat(string(n), 64)
		return f, err == nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

func truthy(v any) bool {
	if isNil(v) {
		return false
	}
	if s, ok := asString(v); ok {
		return s != ""
	}
	if f, ok := asNumber(v); ok {
		return f != 0 && !math.IsNaN(f)
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return true
}

func isInteger(v any) bool {
	f, ok := asNumber(v)
	return ok && !math.IsInf(f, 0) && f == math.Trunc(f)
}

func isFinite(v any) bool {
	f, ok := asNumber(v)
	return ok && !math.IsInf(f, 0) && !math.IsNaN(f)
}

// toNumber converts v the way a strict numeric conversion of user input does:
// whole-string parsing, blank strings as zero, booleans as 0/1, NaN otherwise.
func toNumber(v any) float64 {
	if isNil(v) {
		return math.NaN()
	}
	if f, ok := asNumber(v); ok {
		return f
	}
	if s, ok := asString(v); ok {
		return parseNumber(s)
	}
	switch t := v.(type) {
	case bool:
		if t {
			return 1
		}
		return 0
	case time.Time:
		return float64(t.UnixMilli())
	}
	return math.NaN()
}

func parseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return 0
	case s == "Infinity" || s == "+Infinity":
		return math.Inf(1)
	case s == "-Infinity":
		return math.Inf(-1)
	case hexRegex.MatchString(s):
		return parseBase(s[2:], 16)
	case octalRegex.MatchString(s):
		return parseBase(s[2:], 8)
	case binaryRegex.MatchString(s):
		return parseBase(s[2:], 2)
	case decimalRegex.MatchString(s):
		// Out of range values come back as ±Inf, which is the wanted result
		f, _ := strconv.ParseFloat(s, 64)
		return f
	}
	return math.NaN()
}

func parseBase(digits string, base int) float64 {
	n, err := strconv.ParseUint(digits, base, 64)
	if err != nil {
		return math.NaN()
	}
	return float64(n)
}

// parseFloatPrefix parses the longest leading decimal number of s, NaN when there is none.
func parseFloatPrefix(s string) float64 {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	m := floatPrefixRegex.FindString(s)
	if m == "" {
		return math.NaN()
	}
	switch strings.TrimLeft(m, "+-") {
	case "Infinity":
		if strings.HasPrefix(m, "-") {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}
	f, _ := strconv.ParseFloat(m, 64)
	return f
}

// parseIntPrefix parses the leading integer of s (decimal or 0x hex), NaN when there is none.
func parseIntPrefix(s string) float64 {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	if m := hexPrefixRegex.FindString(s); m != "" {
		neg := strings.HasPrefix(m, "-")
		f := parseBase(m[strings.IndexAny(m, "xX")+1:], 16)
		if neg {
			return -f
		}
		return f
	}
	m := intPrefixRegex.FindString(s)
	if m == "" {
		return math.NaN()
	}
	f, _ := strconv.ParseFloat(m, 64)
	return f
}

// looseFloat parses the textual form of v with parseFloatPrefix.
func looseFloat(v any) float64 {
	if isNil(v) {
		return math.NaN()
	}
	if f, ok := asNumber(v); ok {
		return f
	}
	return parseFloatPrefix(stringify(v))
}

// stringify renders v as text for pattern checks. Missing values render empty.
func stringify(v any) string {
	if isNil(v) {
		return ""
	}
	if s, ok := asString(v); ok {
		return s
	}
	switch t := v.(type) {
	case json.Number:
		return string(t)
	case bool:
		return strconv.FormatBool(t)
	case fmt.Stringer:
		return t.String()
	}
	if f, ok := asNumber(v); ok {
		return formatNumber(f)
	}
	return fmt.Sprint(v)
}

func formatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// length returns the character count of strings and element count of
// collections. ok is false for values without a length; nil is an error.
func length(v any) (n int, ok bool, err error) {
	if v == nil {
		return 0, false, ErrNoLength
	}
	if s, isStr := asString(v); isStr {
		return utf8.RuneCountInString(s), true, nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map, reflect.Chan:
		return rv.Len(), true, nil
	}
	return 0, false, nil
}

var dateLayouts = []struct {
	layout string
	local  bool
}{
	{time.RFC3339Nano, false},
	{"2006-01-02", false},
	{"2006-01-02T15:04:05.999999999", true},
	{"2006-01-02T15:04", true},
	{"2006-01-02 15:04:05", true},
}

// toTime interprets v as a point in time. Numbers are Unix milliseconds.
func toTime(v any) (time.Time, bool) {
	if t, ok := v.(time.Time); ok {
		return t, !t.IsZero()
	}
	if f, ok := asNumber(v); ok {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return time.Time{}, false
		}
		return time.UnixMilli(int64(f)), true
	}
	s, ok := asString(v)
	if !ok {
		return time.Time{}, false
	}
	s = strings.TrimSpace(s)
	for _, l := range dateLayouts {
		loc := time.UTC
		if l.local {
			loc = time.Local
		}
		if t, err := time.ParseInLocation(l.layout, s, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
