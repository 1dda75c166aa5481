package cricketdata

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// rule resolves one candidate path and converts the value found there.
type rule[T any] struct {
	path      string
	transform func(any) (T, bool)
}

// firstMatch evaluates rules in order; the first path holding a convertible value wins.
func firstMatch[T any](record map[string]any, rules []rule[T]) (T, bool) {
	for _, r := range rules {
		raw, ok := lookup(record, r.path)
		if !ok {
			continue
		}
		if v, ok := r.transform(raw); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

func rules[T any](transform func(any) (T, bool), paths ...string) []rule[T] {
	out := make([]rule[T], 0, len(paths))
	for _, path := range paths {
		out = append(out, rule[T]{path: path, transform: transform})
	}
	return out
}

// lookup walks a dotted path. Numeric segments index arrays.
func lookup(record map[string]any, path string) (any, bool) {
	var current any = record
	for _, segment := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]any:
			next, ok := node[segment]
			if !ok {
				return nil, false
			}
			current = next
		case []any:
			idx, err := strconv.Atoi(segment)
			if err != nil || idx < 0 || idx >= len(node) {
				return nil, false
			}
			current = node[idx]
		default:
			return nil, false
		}
	}
	if current == nil {
		return nil, false
	}
	return current, true
}

// asText accepts non-blank strings and numbers.
func asText(v any) (string, bool) {
	switch typed := v.(type) {
	case string:
		s := strings.TrimSpace(typed)
		return s, s != ""
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64), true
	case int64:
		return strconv.FormatInt(typed, 10), true
	case int:
		return strconv.Itoa(typed), true
	default:
		return "", false
	}
}

var objectNameKeys = []string{"name", "fullName", "shortName", "team_name", "displayName"}

// asLabel accepts text, or an object carrying a name-like key.
func asLabel(v any) (string, bool) {
	if s, ok := asText(v); ok {
		return s, true
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return "", false
	}
	for _, key := range objectNameKeys {
		if s, ok := asText(obj[key]); ok {
			return s, true
		}
	}
	return "", false
}

var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04Z",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	time.RFC1123,
	time.RFC1123Z,
}

// asTime parses common date layouts. Zone-less values are read as UTC.
// Numbers above 1e12 are epoch milliseconds, otherwise seconds.
func asTime(v any) (time.Time, bool) {
	switch typed := v.(type) {
	case string:
		s := strings.TrimSpace(typed)
		if s == "" {
			return time.Time{}, false
		}
		for _, layout := range timeLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t.UTC(), true
			}
		}
		if n, err := strconv.ParseFloat(s, 64); err == nil {
			return epoch(n)
		}
		return time.Time{}, false
	case float64:
		return epoch(typed)
	case int64:
		return epoch(float64(typed))
	default:
		return time.Time{}, false
	}
}

func epoch(n float64) (time.Time, bool) {
	if n <= 0 || math.IsNaN(n) || math.IsInf(n, 0) {
		return time.Time{}, false
	}
	if n > 1e12 {
		return time.UnixMilli(int64(n)).UTC(), true
	}
	return time.Unix(int64(n), 0).UTC(), true
}

// asTruthy mirrors loose truthiness: true, non-zero numbers, non-blank strings, non-empty containers.
func asTruthy(v any) (bool, bool) {
	switch typed := v.(type) {
	case bool:
		return typed, typed
	case float64:
		return typed != 0, typed != 0
	case string:
		s := strings.TrimSpace(typed)
		ok := s != "" && s != "0" && !strings.EqualFold(s, "false")
		return ok, ok
	case map[string]any:
		return len(typed) > 0, len(typed) > 0
	case []any:
		return len(typed) > 0, len(typed) > 0
	default:
		return false, false
	}
}

// asList accepts arrays with at least two elements.
func asList(v any) ([]any, bool) {
	list, ok := v.([]any)
	return list, ok && len(list) >= 2
}
