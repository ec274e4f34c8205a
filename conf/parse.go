// Copyright © 2026 The mpvedit authors

// Package conf parses single lines of an mpv.conf style file and checks
// whole files against the option catalog.
//
// Grammar:
//
//	line    := <blank> | <comment> | <profile> | <option>
//	comment := '#' /.*/
//	profile := '[' /[^\]]+/ ']'
//	option  := <key> ( '=' <value>? )?
//	key     := /[A-Za-z0-9][A-Za-z0-9_.-]*/
package conf

import (
	"fmt"
	"strings"
	"unicode/utf8"

	parsec "github.com/prataprc/goparsec"
)

// Kind classifies a line.
type Kind int

const (
	Blank Kind = iota
	Comment
	Profile
	Flag   // a key with no '='
	Option // key=value, the value possibly empty
)

func (k Kind) String() string {
	switch k {
	case Blank:
		return "blank"
	case Comment:
		return "comment"
	case Profile:
		return "profile"
	case Flag:
		return "flag"
	case Option:
		return "option"
	default:
		return "unknown"
	}
}

// Span is a half-open byte range within a line.
type Span struct {
	Start int
	End   int
}

// Len returns the span length in bytes.
func (s Span) Len() int { return s.End - s.Start }

// Line is a parsed line. For a profile, Key is the profile name; for a
// comment, Value is the text after '#'.
type Line struct {
	Kind      Kind
	Key       string
	Value     string
	KeySpan   Span
	ValueSpan Span
}

// SyntaxError describes a malformed line. Column is a zero-based byte
// offset.
type SyntaxError struct {
	Column int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("column %d: %s", e.Column+1, e.Msg)
}

const keyPattern = `[A-Za-z0-9][A-Za-z0-9_.-]*`

var lineParser = newLineParser()

func newLineParser() parsec.Parser {
	openB := parsec.Atom("[", "OPENB")
	closeB := parsec.Atom("]", "CLOSEB")
	eq := parsec.Atom("=", "EQ")
	comment := parsec.Token(`#.*`, "COMMENT")
	name := parsec.Token(`[^\]]+`, "NAME")
	key := parsec.Token(keyPattern, "KEY")
	value := parsec.Token(`.+`, "VALUE")

	first := func(nodes []parsec.ParsecNode) parsec.ParsecNode { return nodes[0] }

	return parsec.OrdChoice(first,
		parsec.And(lineNode(Comment), comment),
		parsec.And(lineNode(Profile), openB, name, closeB),
		parsec.And(lineNode(Option), key, eq, value),
		parsec.And(lineNode(Option), key, eq, parsec.End()),
		parsec.And(lineNode(Flag), key, parsec.End()),
	)
}

// lineNode builds a Line from the terminals of one alternative.
func lineNode(kind Kind) parsec.Nodify {
	return func(nodes []parsec.ParsecNode) parsec.ParsecNode {
		l := &Line{Kind: kind}
		for _, n := range nodes {
			term, ok := n.(*parsec.Terminal)
			if !ok {
				continue
			}
			span := Span{Start: term.Position, End: term.Position + len(term.Value)}
			switch term.Name {
			case "KEY", "NAME":
				l.Key, l.KeySpan = term.Value, span
			case "VALUE":
				l.Value, l.ValueSpan = term.Value, span
			case "COMMENT":
				l.Value = strings.TrimPrefix(term.Value, "#")
				l.ValueSpan = Span{Start: span.Start + 1, End: span.End}
			case "EQ":
				l.ValueSpan = Span{Start: span.End, End: span.End}
			}
		}
		return l
	}
}

// ParseLine parses one line. Trailing whitespace and a trailing carriage
// return are ignored.
func ParseLine(line string) (Line, error) {
	text := strings.TrimRight(line, " \t\r")
	if strings.TrimSpace(text) == "" {
		return Line{Kind: Blank}, nil
	}

	s := parsec.NewScanner([]byte(text))
	node, rest := lineParser(s)
	if l, ok := node.(*Line); ok && rest.Endof() {
		return *l, nil
	}
	return Line{}, diagnose(text)
}

// diagnose explains why text did not parse.
func diagnose(text string) *SyntaxError {
	s := parsec.NewScanner([]byte(text))
	_, s = s.SkipWS()
	start := s.GetCursor()

	switch text[start] {
	case '[':
		end := strings.IndexByte(text[start:], ']')
		switch {
		case end < 0:
			return &SyntaxError{Column: start, Msg: "unterminated profile name"}
		case end == 1:
			return &SyntaxError{Column: start, Msg: "empty profile name"}
		default:
			return &SyntaxError{Column: start + end + 1, Msg: "unexpected text after profile name"}
		}
	case '=':
		return &SyntaxError{Column: start, Msg: "missing option name before '='"}
	}

	// Match is unanchored; pin the key to the cursor.
	tok, after := s.Match("^" + keyPattern)
	if len(tok) == 0 {
		return &SyntaxError{Column: start, Msg: fmt.Sprintf("invalid character %q at start of option name", runeAt(text, start))}
	}
	_, after = after.SkipWS()
	col := after.GetCursor()
	return &SyntaxError{Column: col, Msg: fmt.Sprintf("unexpected %q after option name %q", runeAt(text, col), tok)}
}

func runeAt(s string, i int) rune {
	r, _ := utf8.DecodeRuneInString(s[i:])
	return r
}
