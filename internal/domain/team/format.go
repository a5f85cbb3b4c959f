package team

import (
	"math"
	"strconv"
	"strings"
)

// FormatDecimal renders v the way the catalog store casts REAL values to
// text: up to 15 significant digits, trailing zeros dropped, and ".0" kept
// on a mantissa without a fraction (0.5 -> "0.5", 1 -> "1.0",
// 0.00001 -> "1.0e-05").
func FormatDecimal(v float64) string {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}

	s := strconv.FormatFloat(v, 'g', 15, 64)
	if strings.Contains(s, ".") {
		return s
	}
	if i := strings.IndexByte(s, 'e'); i >= 0 {
		return s[:i] + ".0" + s[i:]
	}
	return s + ".0"
}
