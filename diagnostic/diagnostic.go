// Copyright © 2026 The mpvedit authors

// Package diagnostic renders problems found in mpv config files as
// annotated source snippets. It depends on nothing else in mpvedit so any
// command or host can use it.
package diagnostic

// Severity indicates the severity level of a diagnostic.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityNote
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityNote:
		return "note"
	default:
		return "unknown"
	}
}

// Span identifies a region of a source line.
type Span struct {
	File   string // path for reading source; display name if unreadable
	Line   int    // 1-based line number
	Col    int    // 1-based start column, in runes
	EndCol int    // 1-based inclusive end column (0 = detect from source)
	Label  string // text shown under the underline
}

// Diagnostic is a single error, warning, or note with optional source
// annotations and trailing notes.
type Diagnostic struct {
	Severity Severity
	Message  string
	Spans    []Span
	Notes    []string // "= note:" lines
}

// Count tallies diagnostics by severity.
func Count(diags []Diagnostic) map[Severity]int {
	n := make(map[Severity]int)
	for _, d := range diags {
		n[d.Severity]++
	}
	return n
}

// HasErrors reports whether any diagnostic is an error.
func HasErrors(diags []Diagnostic) bool {
	return Count(diags)[SeverityError] > 0
}
