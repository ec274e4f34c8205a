// Copyright © 2026 The mpvedit authors

package diagnostic

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

const tabWidth = 4

// Renderer formats diagnostics as annotated source snippets.
type Renderer struct {
	// Color controls ANSI color output. Default is ColorAuto.
	Color ColorMode

	// SourceReader reads source file contents. If nil, os.ReadFile is used.
	SourceReader func(string) ([]byte, error)
}

// Render writes a single diagnostic to w.
func (r *Renderer) Render(w io.Writer, d Diagnostic) error {
	p := choosePalette(r.Color, w)
	bw := bufio.NewWriter(w)
	ew := &errWriter{w: bw}

	r.writeHeader(ew, d, p)
	for _, span := range d.Spans {
		r.writeSpan(ew, span, p)
	}
	for _, note := range d.Notes {
		ew.printf("   %s note: %s\n", p.boldCyan("="), note)
	}

	if ew.err != nil {
		return ew.err
	}
	return bw.Flush()
}

// RenderAll writes all diagnostics to w separated by blank lines.
func (r *Renderer) RenderAll(w io.Writer, diags []Diagnostic) error {
	for i, d := range diags {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if err := r.Render(w, d); err != nil {
			return err
		}
	}
	return nil
}

// Summary writes a one-line tally such as "2 errors, 1 note".
func (r *Renderer) Summary(w io.Writer, diags []Diagnostic) error {
	n := Count(diags)
	var parts []string
	for _, sev := range []Severity{SeverityError, SeverityWarning, SeverityNote} {
		if n[sev] == 0 {
			continue
		}
		word := sev.String()
		if n[sev] > 1 {
			word += "s"
		}
		parts = append(parts, fmt.Sprintf("%d %s", n[sev], word))
	}
	if len(parts) == 0 {
		parts = append(parts, "no problems")
	}
	_, err := fmt.Fprintln(w, strings.Join(parts, ", "))
	return err
}

// errWriter captures the first write error and drops later writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, a ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, a...)
}

func (r *Renderer) writeHeader(ew *errWriter, d Diagnostic, p palette) {
	sev := p.boldRed
	switch d.Severity {
	case SeverityWarning:
		sev = p.yellow
	case SeverityNote:
		sev = p.boldCyan
	}
	ew.printf("%s: %s\n", sev(d.Severity.String()), p.bold(d.Message))
}

func (r *Renderer) writeSpan(ew *errWriter, span Span, p palette) {
	loc := span.File
	if span.Line > 0 {
		loc = fmt.Sprintf("%s:%d", span.File, span.Line)
		if span.Col > 0 {
			loc = fmt.Sprintf("%s:%d:%d", span.File, span.Line, span.Col)
		}
	}
	ew.printf("  %s %s\n", p.boldBlue("-->"), loc)

	source, ok := r.readSourceLine(span.File, span.Line)
	if !ok {
		ew.printf("   %s\n", p.boldBlue("|"))
		return
	}

	lineStr := strconv.Itoa(span.Line)
	gutter := p.boldBlue(strings.Repeat(" ", len(lineStr)) + " |")

	ew.printf(" %s\n", gutter)
	ew.printf(" %s  %s\n", p.boldBlue(lineStr+" |"), expandTabs(source))

	runes := []rune(source)
	col := span.Col
	if col <= 0 {
		col = 1
	}
	endCol := span.EndCol
	if endCol <= 0 {
		endCol = detectEndCol(runes, col)
	}
	if endCol < col {
		endCol = col
	}

	before := string(runes[:min(col-1, len(runes))])
	if col-1 > len(runes) {
		before += strings.Repeat(" ", col-1-len(runes))
	}
	marked := ""
	if col-1 < len(runes) {
		marked = string(runes[col-1:min(endCol, len(runes))])
	}
	// columns past the end of the line still get one caret each
	underLen := displayWidth(marked) + endCol - col + 1 - utf8.RuneCountInString(marked)
	if underLen < 1 {
		underLen = 1
	}

	ew.printf(" %s  %s%s", gutter, strings.Repeat(" ", displayWidth(before)), p.boldRed(strings.Repeat("^", underLen)))
	if span.Label != "" {
		ew.printf(" %s", p.boldRed(span.Label))
	}
	ew.printf("\n")
	ew.printf(" %s\n", gutter)
}

func (r *Renderer) readSourceLine(file string, line int) (string, bool) {
	if line <= 0 || file == "" {
		return "", false
	}
	reader := r.SourceReader
	if reader == nil {
		reader = os.ReadFile
	}
	data, err := reader(file)
	if err != nil {
		return "", false
	}
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for i := 1; scanner.Scan(); i++ {
		if i == line {
			return strings.TrimSuffix(scanner.Text(), "\r"), true
		}
	}
	return "", false
}

// detectEndCol extends a span from col to the end of the word it starts,
// stopping at whitespace, brackets or '='.
func detectEndCol(runes []rune, col int) int {
	if col > len(runes) {
		return col
	}
	end := col - 1
	for end < len(runes) {
		switch runes[end] {
		case ' ', '\t', '=', '[', ']':
			if end == col-1 {
				return col
			}
			return end
		}
		end++
	}
	return end
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", tabWidth))
}

// displayWidth returns the terminal width of s with tabs expanded.
func displayWidth(s string) int {
	return runewidth.StringWidth(expandTabs(s))
}
