// Copyright © 2026 The mpvedit authors

package highlight

import (
	"encoding/json"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"
)

const defaultWordPattern = `[A-Za-z_][A-Za-z0-9_]*`

// Token is a scoped span of a single line. Start and End are byte offsets.
type Token struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Scope string `json:"scope"`
}

// Text returns the token's text within line.
func (t Token) Text(line string) string {
	return line[t.Start:t.End]
}

// Grammar is a compiled line grammar.
type Grammar struct {
	Name      string
	ScopeName string

	rules    []rule
	keywords []string
	word     *regexp.Regexp
}

type rule struct {
	scope    string
	re       *regexp.Regexp
	captures []string
}

type grammarFile struct {
	Name        string           `json:"name"`
	ScopeName   string           `json:"scopeName"`
	WordPattern string           `json:"wordPattern"`
	Patterns    []grammarPattern `json:"patterns"`
}

type grammarPattern struct {
	Name     string            `json:"name"`
	Match    string            `json:"match"`
	Words    []string          `json:"words"`
	Captures map[string]string `json:"captures"`
}

// ParseGrammar validates and compiles a grammar document.
func ParseGrammar(data []byte) (*Grammar, error) {
	if err := validate(grammarSchema, data); err != nil {
		return nil, err
	}
	var f grammarFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to decode grammar: %w", err)
	}

	g := &Grammar{Name: f.Name, ScopeName: f.ScopeName}
	word := f.WordPattern
	if word == "" {
		word = defaultWordPattern
	}
	var err error
	if g.word, err = regexp.Compile(word); err != nil {
		return nil, fmt.Errorf("grammar %s: word pattern: %w", f.ScopeName, err)
	}

	for i, p := range f.Patterns {
		src := p.Match
		if len(p.Words) > 0 {
			quoted := make([]string, len(p.Words))
			for j, w := range p.Words {
				quoted[j] = regexp.QuoteMeta(w)
			}
			src = `\b(?:` + strings.Join(quoted, "|") + `)\b`
			g.keywords = append(g.keywords, p.Words...)
		}
		re, err := regexp.Compile(`^(?:` + src + `)`)
		if err != nil {
			return nil, fmt.Errorf("grammar %s: pattern %d: %w", f.ScopeName, i, err)
		}
		r := rule{scope: p.Name, re: re}
		if len(p.Captures) > 0 {
			r.captures = make([]string, re.NumSubexp()+1)
			for key, scope := range p.Captures {
				n, err := strconv.Atoi(key)
				if err != nil || n < 1 || n > re.NumSubexp() {
					return nil, fmt.Errorf("grammar %s: pattern %d: no capture group %s", f.ScopeName, i, key)
				}
				r.captures[n] = scope
			}
		}
		g.rules = append(g.rules, r)
	}
	return g, nil
}

// Keywords returns the words of every word-list pattern, in grammar order.
func (g *Grammar) Keywords() []string {
	return slices.Clone(g.keywords)
}

// Tokenize splits line into scoped tokens. At each position the first
// pattern producing a non-empty match wins; text no pattern matches is
// skipped.
func (g *Grammar) Tokenize(line string) []Token {
	var toks []Token
	for i := 0; i < len(line); {
		n := 0
		for _, r := range g.rules {
			loc := r.re.FindStringSubmatchIndex(line[i:])
			if loc == nil || loc[1] == 0 {
				continue
			}
			toks = r.emit(toks, i, loc)
			n = loc[1]
			break
		}
		if n == 0 {
			_, n = utf8.DecodeRuneInString(line[i:])
		}
		i += n
	}
	return toks
}

func (r rule) emit(toks []Token, offset int, loc []int) []Token {
	if r.captures == nil {
		if r.scope == "" {
			return toks
		}
		return append(toks, Token{Start: offset, End: offset + loc[1], Scope: r.scope})
	}
	start := len(toks)
	for g := 1; g < len(r.captures); g++ {
		s, e := loc[2*g], loc[2*g+1]
		if r.captures[g] == "" || s < 0 || s == e {
			continue
		}
		toks = append(toks, Token{Start: offset + s, End: offset + e, Scope: r.captures[g]})
	}
	slices.SortStableFunc(toks[start:], func(a, b Token) int { return a.Start - b.Start })
	return toks
}
