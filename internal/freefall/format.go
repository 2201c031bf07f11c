package freefall

import (
	"math"
	"strconv"
	"strings"
)

// Truncate drops everything after the second decimal: floor(x*100)/100.
// It never rounds up.
func Truncate(x float64) float64 {
	return math.Floor(x*100) / 100
}

// FormatDisplay renders Truncate(x) with the shortest representation that
// round-trips, keeping at least one fractional digit: 2.567 is "2.56" and
// 2.0 is "2.0".
func FormatDisplay(x float64) string {
	v := Truncate(x)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
