// Copyright © 2026 The mpvedit authors

package lsp

import (
	"fmt"
	"strings"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/mpvex/mpvedit/catalog"
	"github.com/mpvex/mpvedit/complete"
	"github.com/mpvex/mpvedit/conf"
)

// textDocumentHover handles the textDocument/hover request.
func (s *Server) textDocumentHover(_ *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.Get(params.TextDocument.URI)
	if doc == nil {
		return nil, nil
	}
	content, _ := doc.snapshot()

	line := int(params.Position.Line)
	text := lineAt(content, line)
	col := runeColumn(text, int(params.Position.Character))

	var value string
	var word string
	var start int
	if doc.Kind == complete.KindConfig {
		word, start, value = s.confHover(text, col)
	} else {
		word, start = wordAtPosition(text, col)
		value = s.scriptHover(word)
	}
	if value == "" {
		return nil, nil
	}

	end := start + len([]rune(word))
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindMarkdown,
			Value: value,
		},
		Range: &protocol.Range{
			Start: protocol.Position{Line: safeUint(line), Character: safeUint(utf16Column(text, start))},
			End:   protocol.Position{Line: safeUint(line), Character: safeUint(utf16Column(text, end))},
		},
	}, nil
}

// confHover describes the option whose key is under the cursor.
func (s *Server) confHover(text string, col int) (string, int, string) {
	parsed, err := conf.ParseLine(text)
	if err != nil || (parsed.Kind != conf.Option && parsed.Kind != conf.Flag) {
		return "", 0, ""
	}
	start := runeOffset(text, parsed.KeySpan.Start)
	end := runeOffset(text, parsed.KeySpan.End)
	if col < start || col > end {
		return "", 0, ""
	}
	opt, ok := s.dispatcher.Options().Lookup(parsed.Key)
	if !ok {
		return "", 0, ""
	}
	return parsed.Key, start, optionMarkdown(parsed.Key, opt)
}

// scriptHover describes an API function or observable property.
func (s *Server) scriptHover(word string) string {
	word = strings.Trim(word, ".")
	if word == "" {
		return ""
	}
	api := s.dispatcher.API()
	if e, ok := api.Lookup(word); ok {
		return apiMarkdown(e)
	}
	if api.HasProperty(word) {
		return fmt.Sprintf("**property** `%s`\n\n%s", word, complete.PropertyDetail)
	}
	return ""
}

func optionMarkdown(key string, opt catalog.ConfigOption) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "**option** `%s`", opt.Key)
	if key != opt.Key {
		fmt.Fprintf(&sb, " (negated as `%s`)", key)
	}
	if opt.Description != "" {
		fmt.Fprintf(&sb, "\n\n%s", opt.Description)
	}
	if opt.Default != "" {
		fmt.Fprintf(&sb, "\n\n*Default:* `%s`", opt.Default)
	}
	return sb.String()
}

func apiMarkdown(e catalog.APIEntry) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "**function** `%s`", e.Name)
	if e.Signature != "" {
		fmt.Fprintf(&sb, "\n\n```lua\n%s\n```", e.Signature)
	}
	if e.Description != "" {
		fmt.Fprintf(&sb, "\n\n%s", e.Description)
	}
	return sb.String()
}

func runeOffset(s string, byteOffset int) int {
	return len([]rune(s[:min(byteOffset, len(s))]))
}
