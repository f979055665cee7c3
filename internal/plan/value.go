package plan

import (
	"encoding/json"
	"strconv"
	"strings"
	"unicode"
)

// Helpers for narrowing untyped candidate JSON. Model output is never
// trusted to match the schema, so every field is checked and coerced
// explicitly before use.

// Profile is the caller's profile as decoded JSON. Fields are read
// through accessors that tolerate missing or mistyped values.
type Profile map[string]any

// UserID returns the profile's declared user id, or "".
func (p Profile) UserID() string {
	s, _ := p["userId"].(string)
	return s
}

// DaysPerWeek returns the declared training frequency, or 0.
func (p Profile) DaysPerWeek() int {
	n, ok := asInt(p["daysPerWeek"])
	if !ok {
		return 0
	}
	return n
}

// WorkoutLength returns the length descriptor, or "" when absent.
func (p Profile) WorkoutLength() string {
	v, ok := p["workoutLength"]
	if !ok || v == nil {
		return ""
	}
	return coerceString(v)
}

// Goal returns the goal text, or "".
func (p Profile) Goal() string {
	v, ok := p["goal"]
	if !ok || v == nil {
		return ""
	}
	return coerceString(v)
}

// BaselinePull returns the baseline pull descriptor, or "".
func (p Profile) BaselinePull() string {
	v, ok := p["baselinePull"]
	if !ok || v == nil {
		return ""
	}
	return coerceString(v)
}

// Skills returns the listed skills coerced to strings.
func (p Profile) Skills() []string {
	return stringSlice(p["skills"])
}

// hasNoEquipment reports whether any equipment entry mentions "none".
func (p Profile) hasNoEquipment() bool {
	for _, e := range stringSlice(p["equipment"]) {
		if strings.Contains(strings.ToLower(e), "none") {
			return true
		}
	}
	return false
}

// asInt coerces a JSON value to an integer. Numbers truncate; strings
// parse their leading digits ("4 days" yields 4). The bool result is
// false when no integer can be recovered.
func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		return int(n), true
	case string:
		return parseLeadingInt(n)
	default:
		return 0, false
	}
}

// parseLeadingInt parses the leading integer of a string, ignoring any
// trailing non-digit text.
func parseLeadingInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	for end < len(s) && unicode.IsDigit(rune(s[end])) {
		end++
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

// coerceString renders any JSON value as a string.
func coerceString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(s)
	case nil:
		return "null"
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(b)
	}
}

// stringSlice coerces a JSON value to a string slice. Non-arrays yield
// an empty slice; each element is stringified.
func stringSlice(v any) []string {
	arr, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(arr))
	for _, e := range arr {
		out = append(out, coerceString(e))
	}
	return out
}

// nonBlankString returns the value only when it is a string with
// non-whitespace content.
func nonBlankString(v any) (string, bool) {
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return "", false
	}
	return s, true
}

// clamp bounds n to [min, max].
func clamp(n, min, max int) int {
	if n < min {
		return min
	}
	if n > max {
		return max
	}
	return n
}
