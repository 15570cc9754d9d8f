package price

import (
	"strconv"
	"strings"
)

// Parse extracts the numeric amount from a catalog price string: the first
// contiguous run of digits and thousands separators, commas stripped. Anything
// without a digit ("free", "") parses as 0. Permissive on purpose: the catalog
// does not guarantee pure numeric strings, and a zero total beats a failed
// render.
func Parse(s string) int64 {
	start := -1
	for i := 0; i < len(s); i++ {
		if isDigit(s[i]) {
			start = i
			break
		}
	}
	if start < 0 {
		return 0
	}
	end := start
	for end < len(s) && (isDigit(s[end]) || s[end] == ',') {
		end++
	}
	run := strings.ReplaceAll(s[start:end], ",", "")
	v, err := strconv.ParseInt(run, 10, 64)
	if err != nil {
		return 0
	}
	return v
}

// FormatPKR renders an amount for display: fixed "PKR " prefix, thousands
// grouping, no decimals.
func FormatPKR(amount int64) string {
	return "PKR " + group(amount)
}

func group(v int64) string {
	s := strconv.FormatInt(v, 10)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	n := len(s)
	if n <= 3 {
		return sign + s
	}
	var b strings.Builder
	if pre := n % 3; pre > 0 {
		b.WriteString(s[:pre])
	}
	for i := n % 3; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return sign + b.String()
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
