// Copyright © 2026 The mpvedit authors

package highlight

import (
	"strings"
	"unicode/utf8"

	"github.com/mpvex/mpvedit/complete"
)

// Language is a grammar-backed host language. Its own completions are the
// grammar's keywords and the identifiers already present in the document.
type Language struct {
	grammar *Grammar
}

var _ complete.Language = (*Language)(nil)

// NewLanguage returns the language for g.
func NewLanguage(g *Grammar) *Language {
	return &Language{grammar: g}
}

// Scope returns the grammar scope.
func (l *Language) Scope() string { return l.grammar.ScopeName }

// Grammar returns the underlying grammar.
func (l *Language) Grammar() *Grammar { return l.grammar }

// Tokenize tokenizes a single line.
func (l *Language) Tokenize(line string) []Token { return l.grammar.Tokenize(line) }

// Complete appends keywords and then document identifiers that start with
// the word before the cursor, ignoring case. Each word is offered once and
// the typed word itself is skipped.
func (l *Language) Complete(ctx complete.Context, sink complete.Sink) {
	prefix := l.wordBefore(ctx.CurrentLine(), ctx.Column)
	if prefix == "" {
		return
	}
	n := utf8.RuneCountInString(prefix)
	lower := strings.ToLower(prefix)
	seen := map[string]bool{prefix: true}

	add := func(word string, kind complete.ItemKind) {
		if seen[word] || !strings.HasPrefix(strings.ToLower(word), lower) {
			return
		}
		seen[word] = true
		sink.Add(complete.Candidate{
			Label:     word,
			Detail:    kind.String(),
			Insert:    word,
			Kind:      kind,
			PrefixLen: n,
		})
	}

	for _, kw := range l.grammar.keywords {
		add(kw, complete.ItemKeyword)
	}
	for _, w := range l.grammar.word.FindAllString(ctx.Content, -1) {
		add(w, complete.ItemIdentifier)
	}
}

// wordBefore returns the word ending exactly at the rune column.
func (l *Language) wordBefore(line string, column int) string {
	runes := []rune(line)
	if column > len(runes) {
		column = len(runes)
	}
	if column <= 0 {
		return ""
	}
	before := string(runes[:column])
	locs := l.grammar.word.FindAllStringIndex(before, -1)
	if len(locs) == 0 {
		return ""
	}
	last := locs[len(locs)-1]
	if last[1] != len(before) {
		return ""
	}
	return before[last[0]:]
}
