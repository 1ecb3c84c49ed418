package main

import (
	"strconv"
	"strings"
)

// encodeLabel converts a 0-based index to its display label. Numeric style
// is 1-based decimal; alpha style is a bijective base-26 numeral
// (0 -> A, 25 -> Z, 26 -> AA, ...).
func encodeLabel(index int, style LabelStyle) string {
	if index < 0 {
		index = 0
	}
	if style == LabelNumeric {
		return strconv.Itoa(index + 1)
	}
	var out []byte
	n := index
	for n >= 0 {
		out = append([]byte{byte('A' + n%26)}, out...)
		n = n/26 - 1
	}
	return string(out)
}

// decodeLabel parses a typed label back to its 0-based index. The native
// style is tried first, then the other style as a fallback, so a numeric
// field accepts "C" and an alpha field accepts "3". Returns ok=false on
// empty or malformed input; callers keep the prior value in that case.
func decodeLabel(text string, style LabelStyle) (int, bool) {
	text = strings.ToUpper(strings.TrimSpace(text))
	if text == "" {
		return 0, false
	}
	if style == LabelNumeric {
		if n, ok := decodeNumeric(text); ok {
			return n, true
		}
		return decodeAlpha(text)
	}
	if n, ok := decodeAlpha(text); ok {
		return n, true
	}
	return decodeNumeric(text)
}

func decodeNumeric(text string) (int, bool) {
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, false
	}
	n-- // display is 1-based
	if n < 0 {
		n = 0
	}
	return n, true
}

func decodeAlpha(text string) (int, bool) {
	n := 0
	for _, r := range text {
		if r < 'A' || r > 'Z' {
			return 0, false
		}
		n = n*26 + int(r-'A') + 1
	}
	n-- // bijective: "A" is 1 during accumulation, index 0
	if n < 0 {
		n = 0
	}
	return n, true
}
