// Copyright © 2026 The mpvedit authors

package lsp

import (
	"strings"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/mpvex/mpvedit/catalog"
	"github.com/mpvex/mpvedit/complete"
)

// textDocumentSignatureHelp handles textDocument/signatureHelp requests.
// It finds the innermost unclosed call on the cursor line of a script,
// looks the callee up in the API catalog and highlights the argument the
// cursor is in.
func (s *Server) textDocumentSignatureHelp(_ *glsp.Context, params *protocol.SignatureHelpParams) (*protocol.SignatureHelp, error) {
	doc := s.docs.Get(params.TextDocument.URI)
	if doc == nil || doc.Kind != complete.KindScript {
		return nil, nil
	}
	content, _ := doc.snapshot()

	text := lineAt(content, int(params.Position.Line))
	col := runeColumn(text, int(params.Position.Character))
	name, argIdx := enclosingCall(text, col)
	if name == "" {
		return nil, nil
	}
	e, ok := s.dispatcher.API().Lookup(name)
	if !ok || !strings.Contains(e.Signature, "(") {
		return nil, nil
	}
	return buildSignatureHelp(e, argIdx), nil
}

// enclosingCall returns the callee of the innermost call left open before
// the rune column and the 0-based index of the argument the column is in.
// Strings and a trailing "--" comment are skipped. It returns ("", 0)
// when the cursor is not inside a call.
func enclosingCall(line string, col int) (string, int) {
	runes := []rune(line)
	col = max(min(col, len(runes)), 0)

	type open struct{ pos, commas int }
	var stack []open
	var quote rune
	for i := 0; i < col; i++ {
		r := runes[i]
		if quote != 0 {
			switch r {
			case '\\':
				i++
			case quote:
				quote = 0
			}
			continue
		}
		switch r {
		case '"', '\'':
			quote = r
		case '-':
			if i+1 < col && runes[i+1] == '-' {
				return "", 0
			}
		case '(', '{':
			stack = append(stack, open{pos: i})
		case ')', '}':
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		case ',':
			if len(stack) > 0 {
				stack[len(stack)-1].commas++
			}
		}
	}
	// Inside a table constructor the enclosing call still applies.
	for len(stack) > 0 && runes[stack[len(stack)-1].pos] != '(' {
		stack = stack[:len(stack)-1]
	}
	if len(stack) == 0 {
		return "", 0
	}

	top := stack[len(stack)-1]
	end := top.pos
	for end > 0 && runes[end-1] == ' ' {
		end--
	}
	start := end
	for start > 0 && isWordRune(runes[start-1]) {
		start--
	}
	return string(runes[start:end]), top.commas
}

// buildSignatureHelp constructs an LSP SignatureHelp for an API entry.
// Parameter labels are offsets into the signature.
func buildSignatureHelp(e catalog.APIEntry, activeParam int) *protocol.SignatureHelp {
	var params []protocol.ParameterInformation
	for _, p := range signatureParams(e.Signature) {
		params = append(params, protocol.ParameterInformation{
			Label: []protocol.UInteger{safeUint(p[0]), safeUint(p[1])},
		})
	}

	// Clamp active parameter to valid range.
	ap := max(min(activeParam, len(params)-1), 0)
	active := uint32(ap) // #nosec G115 -- clamped to [0, len(params)-1]

	sigInfo := protocol.SignatureInformation{
		Label:      e.Signature,
		Parameters: params,
	}
	if e.Description != "" {
		sigInfo.Documentation = protocol.MarkupContent{
			Kind:  protocol.MarkupKindMarkdown,
			Value: e.Description,
		}
	}

	return &protocol.SignatureHelp{
		Signatures:      []protocol.SignatureInformation{sigInfo},
		ActiveSignature: uintPtr(0),
		ActiveParameter: &active,
	}
}

// signatureParams returns the [start, end) byte offsets of each parameter
// name between the outer parentheses of sig, so "f(a [, b])" yields a and
// b. Optional brackets and separators are not part of any label.
func signatureParams(sig string) [][2]int {
	open := strings.IndexByte(sig, '(')
	closing := strings.LastIndexByte(sig, ')')
	if open < 0 || closing < open {
		return nil
	}
	var out [][2]int
	start := -1
	for i := open + 1; i <= closing; i++ {
		c := sig[i]
		isName := c == '_' || c == '.' ||
			c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
		switch {
		case isName && start < 0:
			start = i
		case !isName && start >= 0:
			out = append(out, [2]int{start, i})
			start = -1
		}
	}
	return out
}

func uintPtr(v uint32) *uint32 {
	return &v
}
