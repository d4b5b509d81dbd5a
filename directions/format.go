package directions

import (
	"math"
	"strconv"
	"strings"
)

// Separator follows every route header.
const Separator = "-----------------------"

// FormatKm renders km at single precision using the shortest
// representation that round-trips. Integral values keep a ".0" suffix.
// Very small and very large values are still written in plain decimal.
func FormatKm(km float64) string {
	f := float32(km)
	switch {
	case math.IsNaN(float64(f)):
		return "NaN"
	case math.IsInf(float64(f), 1):
		return "Infinity"
	case math.IsInf(float64(f), -1):
		return "-Infinity"
	}

	s := strconv.FormatFloat(float64(f), 'f', -1, 32)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}

	return s
}

func header(from, to string, total float64) string {
	return "Path from " + from + " to " + to + " (" + FormatKm(total) + "km)"
}

func hop(from, to string, km float64) string {
	return "Go " + FormatKm(km) + "km from " + from + " to " + to
}

func noPath(from, to string) string {
	return "No path from " + from + " to " + to
}
