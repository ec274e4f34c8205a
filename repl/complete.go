// Copyright © 2026 The mpvedit authors

package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/mpvex/mpvedit/complete"
)

// lineCompleter implements readline.AutoCompleter with the session's
// wrapped language. The current line is completed as if it were appended
// to the buffer.
type lineCompleter struct {
	session *Session
	hints   io.Writer
}

func (c *lineCompleter) Do(line []rune, pos int) ([][]rune, int) {
	suffixes, length, hints := c.session.Complete(line, pos)
	if len(hints) > 0 && c.hints != nil {
		fmt.Fprintf(c.hints, "\n%s\n", strings.Join(hints, "  ")) //nolint:errcheck // best-effort hint display
	}
	return suffixes, length
}

// Complete returns the suffixes readline should offer for the rune
// column pos of line and the length of the text they extend. Every suffix
// is appended at pos, so length is the longest prefix any candidate
// replaced: readline shows line[pos-length:pos]+suffix, which is the text
// the buffer ends with after accepting it. Candidates whose insert text
// does not extend the typed text (a description match, or a different
// case) come back as hint labels instead.
func (s *Session) Complete(line []rune, pos int) ([][]rune, int, []string) {
	pos = max(min(pos, len(line)), 0)
	content := string(line)
	if len(s.lines) > 0 {
		content = s.Content() + "\n" + content
	}
	var sink complete.SliceSink
	s.lang.Complete(complete.Context{Content: content, Line: len(s.lines), Column: pos}, &sink)

	var (
		suffixes [][]rune
		hints    []string
		length   int
	)
	seen := map[string]bool{}
	for _, c := range sink.Items {
		n := min(c.PrefixLen, pos)
		typed := string(line[pos-n : pos])
		suffix, ok := strings.CutPrefix(c.Insert, typed)
		if !ok || suffix == "" {
			if c.Insert != typed {
				hints = append(hints, c.Label)
			}
			continue
		}
		if seen[suffix] {
			continue
		}
		seen[suffix] = true
		length = max(length, n)
		suffixes = append(suffixes, []rune(suffix))
	}
	return suffixes, length, hints
}
