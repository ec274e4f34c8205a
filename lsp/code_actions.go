// Copyright © 2026 The mpvedit authors

package lsp

import (
	"fmt"
	"slices"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/mpvex/mpvedit/complete"
	"github.com/mpvex/mpvedit/conf"
)

// textDocumentCodeAction handles the textDocument/codeAction request. For
// config documents it offers a quick fix that replaces an unknown option
// key with the catalog option it most likely abbreviates.
func (s *Server) textDocumentCodeAction(_ *glsp.Context, params *protocol.CodeActionParams) (any, error) {
	doc := s.docs.Get(params.TextDocument.URI)
	if doc == nil || doc.Kind != complete.KindConfig {
		return nil, nil
	}
	if len(params.Context.Only) > 0 && !slices.Contains(params.Context.Only, protocol.CodeActionKindQuickFix) {
		return nil, nil
	}
	content, _ := doc.snapshot()

	var actions []protocol.CodeAction
	seen := map[protocol.UInteger]bool{}
	for _, diag := range params.Context.Diagnostics {
		// Only our own diagnostics.
		if diag.Source == nil || *diag.Source != serverName {
			continue
		}
		line := diag.Range.Start.Line
		if seen[line] {
			continue
		}
		seen[line] = true
		if a, ok := s.replaceKeyAction(params.TextDocument.URI, content, int(line), diag); ok {
			actions = append(actions, a)
		}
	}

	if len(actions) == 0 {
		return nil, nil
	}
	return actions, nil
}

// replaceKeyAction builds the quick fix for an unknown key on line, if the
// option catalog has a key that extends it.
func (s *Server) replaceKeyAction(uri, content string, line int, diag protocol.Diagnostic) (protocol.CodeAction, bool) {
	text := lineAt(content, line)
	parsed, err := conf.ParseLine(text)
	if err != nil || (parsed.Kind != conf.Option && parsed.Kind != conf.Flag) {
		return protocol.CodeAction{}, false
	}
	options := s.dispatcher.Options()
	if conf.Known(options, parsed.Key) {
		return protocol.CodeAction{}, false
	}
	fix, ok := conf.Suggest(options, parsed.Key)
	if !ok {
		return protocol.CodeAction{}, false
	}

	kind := protocol.CodeActionKindQuickFix
	preferred := true
	return protocol.CodeAction{
		Title:       fmt.Sprintf("Change to %s", fix),
		Kind:        &kind,
		Diagnostics: []protocol.Diagnostic{diag},
		IsPreferred: &preferred,
		Edit: &protocol.WorkspaceEdit{
			Changes: map[protocol.DocumentUri][]protocol.TextEdit{
				uri: {{
					Range: protocol.Range{
						Start: protocol.Position{Line: safeUint(line), Character: safeUint(byteToUTF16(text, parsed.KeySpan.Start))},
						End:   protocol.Position{Line: safeUint(line), Character: safeUint(byteToUTF16(text, parsed.KeySpan.End))},
					},
					NewText: fix,
				}},
			},
		},
	}, true
}
