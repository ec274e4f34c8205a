// Copyright © 2026 The mpvedit authors

package lsp

import (
	"strings"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/mpvex/mpvedit/highlight"
)

// Semantic token type indices; must match the order in semanticTokenLegend().
const (
	semTokenNamespace = iota
	semTokenProperty
	semTokenVariable
	semTokenFunction
	semTokenKeyword
	semTokenComment
	semTokenString
	semTokenNumber
	semTokenOperator
)

// Semantic token modifier bit flags; must match the order in semanticTokenLegend().
const (
	semModReadonly = 1 << iota
	semModDefaultLibrary
)

// semanticTokenLegend returns the legend that the client uses to decode tokens.
func semanticTokenLegend() protocol.SemanticTokensLegend {
	return protocol.SemanticTokensLegend{
		TokenTypes: []string{
			"namespace", // 0
			"property",  // 1
			"variable",  // 2
			"function",  // 3
			"keyword",   // 4
			"comment",   // 5
			"string",    // 6
			"number",    // 7
			"operator",  // 8
		},
		TokenModifiers: []string{
			"readonly",       // bit 0
			"defaultLibrary", // bit 1
		},
	}
}

// rawToken is an intermediate representation before delta encoding.
type rawToken struct {
	line      int // 0-based
	startChar int // 0-based, UTF-16
	length    int // UTF-16
	tokenType int
	modifiers int
}

// textDocumentSemanticTokensFull handles the textDocument/semanticTokens/full request.
func (s *Server) textDocumentSemanticTokensFull(_ *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.Get(params.TextDocument.URI)
	if doc == nil {
		return nil, nil
	}
	g, ok := s.registry.Grammar(s.registry.ScopeForKind(doc.Kind))
	if !ok {
		return &protocol.SemanticTokens{Data: []protocol.UInteger{}}, nil
	}
	content, _ := doc.snapshot()
	return &protocol.SemanticTokens{Data: deltaEncode(collectSemanticTokens(g, content))}, nil
}

// collectSemanticTokens tokenizes every line. Tokens come out ordered by
// line and then by start column.
func collectSemanticTokens(g *highlight.Grammar, content string) []rawToken {
	var tokens []rawToken
	for i, text := range strings.Split(content, "\n") {
		text = strings.TrimSuffix(text, "\r")
		for _, tok := range g.Tokenize(text) {
			typ, mods, ok := classifyScope(tok.Scope)
			if !ok {
				continue
			}
			start := byteToUTF16(text, tok.Start)
			end := byteToUTF16(text, tok.End)
			if end <= start {
				continue
			}
			tokens = append(tokens, rawToken{
				line:      i,
				startChar: start,
				length:    end - start,
				tokenType: typ,
				modifiers: mods,
			})
		}
	}
	return tokens
}

// classifyScope maps a grammar scope to a token type. Punctuation and
// unknown scopes are not reported.
func classifyScope(scope string) (int, int, bool) {
	has := func(prefix string) bool {
		return scope == prefix || strings.HasPrefix(scope, prefix+".")
	}
	switch {
	case has("comment"):
		return semTokenComment, 0, true
	case has("string"):
		return semTokenString, 0, true
	case has("constant.numeric"):
		return semTokenNumber, 0, true
	case has("constant.language"):
		return semTokenKeyword, semModReadonly, true
	case has("keyword.operator"):
		return semTokenOperator, 0, true
	case has("keyword"):
		return semTokenKeyword, 0, true
	case has("support.function"):
		return semTokenFunction, semModDefaultLibrary, true
	case has("entity.name.section"):
		return semTokenNamespace, 0, true
	case has("variable.other.key"):
		return semTokenProperty, 0, true
	case has("variable"):
		return semTokenVariable, 0, true
	}
	return 0, 0, false
}

// deltaEncode converts sorted raw tokens into the LSP delta-encoded format.
// Each token is 5 integers: [deltaLine, deltaStartChar, length, tokenType, tokenModifiers].
func deltaEncode(tokens []rawToken) []protocol.UInteger {
	data := make([]protocol.UInteger, 0, len(tokens)*5)
	prevLine := 0
	prevChar := 0
	for _, tok := range tokens {
		deltaLine := tok.line - prevLine
		deltaChar := tok.startChar
		if deltaLine == 0 {
			deltaChar = tok.startChar - prevChar
		}
		data = append(data,
			safeUint(deltaLine),
			safeUint(deltaChar),
			safeUint(tok.length),
			safeUint(tok.tokenType),
			safeUint(tok.modifiers),
		)
		prevLine = tok.line
		prevChar = tok.startChar
	}
	return data
}
