package dashboard

import (
	"math"
	"strconv"
	"strings"
)

// parseFloatPrefix parses the longest numeric prefix of s, the way a loosely
// typed display layer would: "7.400.000" yields 7.4, "7400000đ" yields 7400000.
// Returns NaN when s has no numeric prefix.
func parseFloatPrefix(s string) float64 {
	s = strings.TrimSpace(s)

	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	digits := false
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
		digits = true
	}

	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
			digits = true
		}
	}

	if !digits {
		return math.NaN()
	}

	v, err := strconv.ParseFloat(strings.TrimSuffix(s[:i], "."), 64)
	if err != nil {
		return math.NaN()
	}

	return v
}

// ParsePrice parses a vendor price string for charting: every character except
// digits, '.' and '-' is stripped, thousands-separator commas are removed, and
// the remainder is prefix-parsed. Returns NaN for strings with no number in them.
func ParsePrice(raw string) float64 {
	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}

	return parseFloatPrefix(strings.ReplaceAll(b.String(), ",", ""))
}

// sortValue coerces a price field for table sorting. Missing and unparsable
// values sort as the minimum.
func sortValue(raw *string) float64 {
	if raw == nil || *raw == "" {
		return 0
	}

	v := parseFloatPrefix(*raw)
	if math.IsNaN(v) {
		return 0
	}

	return v
}
