// Copyright © 2026 The mpvedit authors

package complete

import "strings"

// Context is the cursor context a host passes with a completion request.
type Context struct {
	// Content is the full document text.
	Content string
	// Line and Column are zero based; Column counts runes.
	Line   int
	Column int
}

// CurrentLine returns the text of the cursor's line, or "" when Line is
// out of range.
func (c Context) CurrentLine() string {
	if c.Line < 0 {
		return ""
	}
	rest := c.Content
	for i := 0; i < c.Line; i++ {
		nl := strings.IndexByte(rest, '\n')
		if nl < 0 {
			return ""
		}
		rest = rest[nl+1:]
	}
	if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
		rest = rest[:nl]
	}
	return strings.TrimSuffix(rest, "\r")
}

// Prefix returns the word being typed at the cursor.
func (c Context) Prefix() string {
	return ExtractPrefix(c.CurrentLine(), c.Column)
}

// Language is the host editor's view of a language: a grammar scope and a
// source of completions.
type Language interface {
	Scope() string
	Complete(ctx Context, sink Sink)
}

// mpvLanguage decorates a host language with catalog completions. Every
// method other than Complete is the base language's.
type mpvLanguage struct {
	Language
	kind       FileKind
	dispatcher *Dispatcher
}

// Wrap returns a Language that behaves like base except that Complete also
// appends catalog candidates for kind after base's own. A nil base (for
// example when syntax setup failed) leaves catalog completions only.
func Wrap(base Language, kind FileKind, d *Dispatcher) Language {
	if base == nil {
		base = plainLanguage{scope: kind.Scope()}
	}
	return &mpvLanguage{Language: base, kind: kind, dispatcher: d}
}

// Complete runs the base completion first, then the catalog lookup.
func (l *mpvLanguage) Complete(ctx Context, sink Sink) {
	l.Language.Complete(ctx, sink)
	l.dispatcher.Complete(l.kind, ctx.CurrentLine(), ctx.Column, sink)
}

// Unwrap returns the decorated language.
func (l *mpvLanguage) Unwrap() Language { return l.Language }

// Kind returns the file kind the wrapper routes by.
func (l *mpvLanguage) Kind() FileKind { return l.kind }

type plainLanguage struct {
	scope string
}

func (p plainLanguage) Scope() string { return p.scope }
func (p plainLanguage) Complete(_ Context, _ Sink) {}
