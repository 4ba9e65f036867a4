package journal

import (
	"regexp"
	"strconv"
	"strings"
)

// The parsers below never fail. Malformed input degrades to a default so a
// half-typed form field still produces a usable entry.

var (
	moneyStrip  = regexp.MustCompile(`[^0-9+\-.]`)
	moneyPrefix = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)`)
	digitStrip  = regexp.MustCompile(`[^0-9]`)
)

// ParseMoney reads a signed decimal such as "$-1,250.50". Everything but
// digits, signs and the decimal point is dropped, then the longest leading
// decimal literal is parsed. It returns 0 when nothing parses.
func ParseMoney(raw string) float64 {
	lit := moneyPrefix.FindString(moneyStrip.ReplaceAllString(raw, ""))
	if lit == "" {
		return 0
	}
	v, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return 0
	}
	return v
}

// ParseTrades reads a trade count. It returns 1 for empty, zero or
// unparsable input.
func ParseTrades(raw string) int {
	return parseDigits(raw, 1, func(n int) bool { return n > 0 })
}

// ParseNonNegInt reads a long or short count. It returns 0 for unparsable
// input.
func ParseNonNegInt(raw string) int {
	return parseDigits(raw, 0, func(n int) bool { return n >= 0 })
}

func parseDigits(raw string, def int, ok func(int) bool) int {
	digits := digitStrip.ReplaceAllString(strings.TrimSpace(raw), "")
	n, err := strconv.Atoi(digits)
	if err != nil || !ok(n) {
		return def
	}
	return n
}
