package core

import (
	"math"
	"strconv"
	"strings"
)

// ParseFloat parses a group-code value as a finite double. ok is false for
// malformed input and for NaN or infinite values.
func ParseFloat(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// ParseInt parses a group-code value as an integer. Integral reals such as
// "1.0" are accepted since some writers emit flags that way.
func ParseInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return n, true
	}
	f, ok := ParseFloat(s)
	if !ok || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}

// FormatFloat renders f as the shortest decimal that parses back to the
// same value. Negative zero is written as "0".
func FormatFloat(f float64) string {
	if f == 0 {
		return "0"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// FormatInt renders an integer group-code value.
func FormatInt(n int) string {
	return strconv.Itoa(n)
}
