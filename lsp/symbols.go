// Copyright © 2026 The mpvedit authors

package lsp

import (
	"regexp"
	"strings"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/mpvex/mpvedit/complete"
	"github.com/mpvex/mpvedit/conf"
)

// luaFunction matches a named Lua function definition; group 1 is the name.
var luaFunction = regexp.MustCompile(`^\s*(?:local\s+)?function\s+([A-Za-z_][A-Za-z0-9_.:]*)`)

// textDocumentDocumentSymbol handles the textDocument/documentSymbol request.
// Config files list their profiles with the options set in each; options
// before the first profile are top level. Scripts list named functions.
func (s *Server) textDocumentDocumentSymbol(_ *glsp.Context, params *protocol.DocumentSymbolParams) (any, error) {
	doc := s.docs.Get(params.TextDocument.URI)
	if doc == nil {
		return nil, nil
	}
	content, _ := doc.snapshot()
	lines := strings.Split(content, "\n")

	if doc.Kind == complete.KindConfig {
		return confSymbols(lines), nil
	}

	symbols := []protocol.DocumentSymbol{}
	for i, text := range lines {
		m := luaFunction.FindStringSubmatchIndex(text)
		if m == nil {
			continue
		}
		symbols = append(symbols, protocol.DocumentSymbol{
			Name:           text[m[2]:m[3]],
			Kind:           protocol.SymbolKindFunction,
			Range:          lineRange(i, text, 0, len(text)),
			SelectionRange: lineRange(i, text, m[2], m[3]),
		})
	}
	return symbols, nil
}

func confSymbols(lines []string) []protocol.DocumentSymbol {
	symbols := []protocol.DocumentSymbol{}
	var profile *protocol.DocumentSymbol
	closeProfile := func() {
		if profile != nil {
			symbols = append(symbols, *profile)
			profile = nil
		}
	}

	for i, text := range lines {
		text = strings.TrimSuffix(text, "\r")
		parsed, err := conf.ParseLine(text)
		if err != nil {
			continue
		}
		switch parsed.Kind {
		case conf.Profile:
			closeProfile()
			profile = &protocol.DocumentSymbol{
				Name:           parsed.Key,
				Kind:           protocol.SymbolKindNamespace,
				Range:          lineRange(i, text, 0, len(text)),
				SelectionRange: lineRange(i, text, parsed.KeySpan.Start, parsed.KeySpan.End),
				Children:       []protocol.DocumentSymbol{},
			}
		case conf.Option, conf.Flag:
			sym := protocol.DocumentSymbol{
				Name:           parsed.Key,
				Kind:           protocol.SymbolKindProperty,
				Range:          lineRange(i, text, 0, len(text)),
				SelectionRange: lineRange(i, text, parsed.KeySpan.Start, parsed.KeySpan.End),
			}
			if parsed.Kind == conf.Option {
				sym.Detail = strPtr(parsed.Value)
			}
			if profile == nil {
				symbols = append(symbols, sym)
				continue
			}
			profile.Children = append(profile.Children, sym)
			profile.Range.End = sym.Range.End
		}
	}
	closeProfile()
	return symbols
}

// lineRange converts a byte range on line i to an LSP range.
func lineRange(i int, text string, start, end int) protocol.Range {
	return protocol.Range{
		Start: protocol.Position{Line: safeUint(i), Character: safeUint(byteToUTF16(text, start))},
		End:   protocol.Position{Line: safeUint(i), Character: safeUint(byteToUTF16(text, end))},
	}
}
