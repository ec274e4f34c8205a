// Copyright © 2026 The mpvedit authors

package lsp

import (
	"net/url"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

// safeUint converts a non-negative int to protocol.UInteger, clamping
// negative values to zero.
func safeUint(n int) protocol.UInteger {
	if n < 0 {
		return 0
	}
	return protocol.UInteger(n) // #nosec G115 -- line/col are always small positive ints
}

// lineAt returns the text of a 0-based line without its line terminator.
func lineAt(content string, line int) string {
	if line < 0 {
		return ""
	}
	lines := strings.Split(content, "\n")
	if line >= len(lines) {
		return ""
	}
	return strings.TrimSuffix(lines[line], "\r")
}

// runeColumn converts an LSP character offset (UTF-16 code units) to a
// rune offset within line. Offsets past the end clamp to the line length.
func runeColumn(line string, utf16Col int) int {
	units, runes := 0, 0
	for _, r := range line {
		if units >= utf16Col {
			break
		}
		units += utf16.RuneLen(r)
		runes++
	}
	return runes
}

// utf16Column converts a rune offset within line to UTF-16 code units.
func utf16Column(line string, runeCol int) int {
	units, runes := 0, 0
	for _, r := range line {
		if runes >= runeCol {
			break
		}
		units += utf16.RuneLen(r)
		runes++
	}
	return units
}

// byteToUTF16 converts a byte offset within line to UTF-16 code units.
func byteToUTF16(line string, offset int) int {
	if offset > len(line) {
		offset = len(line)
	}
	return utf16Column(line, utf8.RuneCountInString(line[:offset]))
}

// wordAtPosition returns the name-like word around a rune column: letters,
// digits, '_', '-' and '.'. The cursor may be inside or at the end of the
// word. It also returns the word's rune start.
func wordAtPosition(line string, col int) (string, int) {
	runes := []rune(line)
	if col < 0 || col > len(runes) {
		return "", 0
	}
	start := col
	for start > 0 && isWordRune(runes[start-1]) {
		start--
	}
	end := col
	for end < len(runes) && isWordRune(runes[end]) {
		end++
	}
	return string(runes[start:end]), start
}

func isWordRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == '_', r == '-', r == '.':
		return true
	}
	return false
}

// uriToPath converts a file:// URI to a filesystem path.
func uriToPath(uri string) string {
	rest, ok := strings.CutPrefix(uri, "file://")
	if !ok {
		return uri
	}
	if p, err := url.PathUnescape(rest); err == nil {
		return p
	}
	return rest
}

// pathToURI converts a filesystem path to a file:// URI.
func pathToURI(path string) string {
	if strings.HasPrefix(path, "/") {
		return "file://" + path
	}
	return path
}
