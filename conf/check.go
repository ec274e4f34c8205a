// Copyright © 2026 The mpvedit authors

package conf

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/mpvex/mpvedit/catalog"
	"github.com/mpvex/mpvedit/diagnostic"
)

// directives are keys mpv accepts in config files that are not options.
var directives = map[string]bool{
	"include":         true,
	"profile":         true,
	"profile-desc":    true,
	"profile-cond":    true,
	"profile-restore": true,
}

// Known reports whether key is an option in options or a config file
// directive.
func Known(options *catalog.OptionCatalog, key string) bool {
	if directives[key] {
		return true
	}
	_, ok := options.Lookup(key)
	return ok
}

// Check parses every line of content and reports syntax errors and keys
// missing from options. name is used as the file name in spans. A nil
// options means the built-in catalog.
func Check(name, content string, options *catalog.OptionCatalog) []diagnostic.Diagnostic {
	if options == nil {
		options = catalog.Options()
	}
	var diags []diagnostic.Diagnostic
	for i, text := range strings.Split(content, "\n") {
		line, err := ParseLine(text)
		var serr *SyntaxError
		if errors.As(err, &serr) {
			diags = append(diags, diagnostic.Diagnostic{
				Severity: diagnostic.SeverityError,
				Message:  serr.Msg,
				Spans: []diagnostic.Span{{
					File: name,
					Line: i + 1,
					Col:  runeColumn(text, serr.Column) + 1,
				}},
			})
			continue
		}
		if line.Kind != Option && line.Kind != Flag {
			continue
		}
		if Known(options, line.Key) {
			continue
		}
		d := diagnostic.Diagnostic{
			Severity: diagnostic.SeverityNote,
			Message:  fmt.Sprintf("unknown option: %s", line.Key),
			Spans: []diagnostic.Span{{
				File:   name,
				Line:   i + 1,
				Col:    runeColumn(text, line.KeySpan.Start) + 1,
				EndCol: runeColumn(text, line.KeySpan.End),
				Label:  "not in the option catalog",
			}},
		}
		if s, ok := Suggest(options, line.Key); ok {
			d.Notes = append(d.Notes, fmt.Sprintf("did you mean %s?", s))
		}
		diags = append(diags, d)
	}
	return diags
}

// Suggest returns the first option in options whose key extends key.
func Suggest(options *catalog.OptionCatalog, key string) (string, bool) {
	if key == "" {
		return "", false
	}
	for _, o := range options.All() {
		if strings.HasPrefix(o.Key, key) {
			return o.Key, true
		}
	}
	return "", false
}

// runeColumn converts a byte offset in s to a rune offset.
func runeColumn(s string, offset int) int {
	if offset > len(s) {
		offset = len(s)
	}
	return utf8.RuneCountInString(s[:offset])
}
