// Copyright © 2026 The mpvedit authors

package complete

import "unicode"

// ExtractPrefix returns the partial word immediately before column in line.
// Column counts runes from zero. The word is made of letters, digits and
// the characters '-', '_' and '.'. Out-of-range columns are clamped, so a
// negative column or empty line yields "".
func ExtractPrefix(line string, column int) string {
	if column <= 0 || line == "" {
		return ""
	}
	runes := []rune(line)
	if column > len(runes) {
		column = len(runes)
	}
	start := column
	for start > 0 && isPrefixRune(runes[start-1]) {
		start--
	}
	return string(runes[start:column])
}

func isPrefixRune(r rune) bool {
	if unicode.IsLetter(r) || unicode.IsDigit(r) {
		return true
	}
	switch r {
	case '-', '_', '.':
		return true
	}
	return false
}
