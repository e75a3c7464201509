package sanity

import "math"

// parseLeadingInt reads a base-10 integer prefix after optional ASCII
// whitespace and sign. Trailing text is ignored. It reports false when no
// digit is found; values out of range saturate.
func parseLeadingInt(text string) (int64, bool) {
	i := 0
	for i < len(text) && isASCIISpace(text[i]) {
		i++
	}
	negative := false
	if i < len(text) && (text[i] == '+' || text[i] == '-') {
		negative = text[i] == '-'
		i++
	}
	start := i
	var value uint64
	overflow := false
	for i < len(text) && text[i] >= '0' && text[i] <= '9' {
		d := uint64(text[i] - '0')
		if value > (math.MaxUint64-d)/10 {
			overflow = true
		} else {
			value = value*10 + d
		}
		i++
	}
	if i == start {
		return 0, false
	}
	if negative {
		if overflow || value > uint64(math.MaxInt64)+1 {
			return math.MinInt64, true
		}
		return -int64(value), true
	}
	if overflow || value > math.MaxInt64 {
		return math.MaxInt64, true
	}
	return int64(value), true
}

func isASCIISpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
