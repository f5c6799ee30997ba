package fakeskema

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	json "github.com/goccy/go-json"
)

// RefPrefix starts every reference expression.
const RefPrefix = "#ref."

// References maps reference keys to pre-resolved values (scalars or
// sequences). The interpreter only reads it.
type References map[string]any

// Ref builds the reference expression for key.
func Ref(key string) string { return RefPrefix + key }

// RefKey returns the key of a reference expression. ok is false when v is
// not a string starting with RefPrefix.
func RefKey(v any) (key string, ok bool) {
	s, isStr := v.(string)
	if !isStr || !strings.HasPrefix(s, RefPrefix) {
		return "", false
	}
	return strings.TrimPrefix(s, RefPrefix), true
}

// lookup resolves key. Absent keys and nil values are both invalid.
func (r References) lookup(key string) (any, bool) {
	v, ok := r[key]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// asSequence converts slices of any element type to []any.
func asSequence(v any) ([]any, bool) {
	switch t := v.(type) {
	case []any:
		return t, true
	case []string:
		out := make([]any, len(t))
		for i := range t {
			out[i] = t[i]
		}
		return out, true
	case nil:
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

// asInt64 accepts Go integer and float kinds, json.Number and numeric strings.
func asInt64(v any) (int64, bool) {
	switch t := v.(type) {
	case int:
		return int64(t), true
	case int8:
		return int64(t), true
	case int16:
		return int64(t), true
	case int32:
		return int64(t), true
	case int64:
		return t, true
	case uint:
		return int64(t), true
	case uint8:
		return int64(t), true
	case uint16:
		return int64(t), true
	case uint32:
		return int64(t), true
	case uint64:
		if t > math.MaxInt64 {
			return 0, false
		}
		return int64(t), true
	case float32:
		return floatToInt64(float64(t))
	case float64:
		return floatToInt64(t)
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i, true
		}
		f, err := t.Float64()
		if err != nil {
			return 0, false
		}
		return floatToInt64(f)
	case string:
		if i, err := strconv.ParseInt(strings.TrimSpace(t), 10, 64); err == nil {
			return i, true
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, false
		}
		return floatToInt64(f)
	}
	return 0, false
}

// floatToInt64 floors f. As a float64, math.MaxInt64 rounds up to 2^63, which
// is already out of range.
func floatToInt64(f float64) (int64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, false
	}
	return int64(math.Floor(f)), true
}

// asTime accepts time.Time and RFC 3339 / date-only strings.
func asTime(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, true
	case *time.Time:
		if t == nil {
			return time.Time{}, false
		}
		return *t, true
	case string:
		for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", time.DateOnly} {
			if ts, err := time.Parse(layout, t); err == nil {
				return ts, true
			}
		}
	}
	return time.Time{}, false
}

// formatScalar renders a resolved value the way it appears inside strings.
func formatScalar(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case time.Time:
		return t.UTC().Format(time.RFC3339Nano)
	case fmt.Stringer:
		return t.String()
	}
	return fmt.Sprint(v)
}
