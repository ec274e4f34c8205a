// Copyright © 2026 The mpvedit authors

package lsp

import (
	"context"
	"fmt"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/mpvex/mpvedit/complete"
)

// Span attribute keys recorded for completion requests.
const (
	attrKind   = attribute.Key("mpvedit.file_kind")
	attrPrefix = attribute.Key("mpvedit.prefix")
	attrItems  = attribute.Key("mpvedit.items")
)

// textDocumentCompletion handles the textDocument/completion request.
func (s *Server) textDocumentCompletion(_ *glsp.Context, params *protocol.CompletionParams) (any, error) {
	doc := s.docs.Get(params.TextDocument.URI)
	if doc == nil {
		return nil, nil
	}
	content, _ := doc.snapshot()

	line := int(params.Position.Line)
	text := lineAt(content, line)
	col := runeColumn(text, int(params.Position.Character))
	cctx := complete.Context{Content: content, Line: line, Column: col}

	_, span := s.tracer.Start(context.Background(), "textDocument/completion",
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(attrKind.String(string(doc.Kind))))
	defer span.End()

	var sink complete.SliceSink
	s.registry.Wrapped(doc.Kind, s.dispatcher).Complete(cctx, &sink)

	prefix := cctx.Prefix()
	span.SetAttributes(attrPrefix.String(prefix), attrItems.Int(len(sink.Items)))
	s.log.Debug().
		Str("uri", doc.URI).
		Str("prefix", prefix).
		Int("items", len(sink.Items)).
		Msg("Completion")

	items := make([]protocol.CompletionItem, 0, len(sink.Items))
	for i, c := range sink.Items {
		items = append(items, completionItem(c, i, text, line, col))
	}
	return items, nil
}

// completionItem converts a candidate. The text edit replaces the
// candidate's prefix before the cursor. The filter text is the replaced
// text itself so clients keep candidates that matched on their
// description, and the sort text keeps the candidate order.
func completionItem(c complete.Candidate, index int, text string, line, col int) protocol.CompletionItem {
	start := max(col-c.PrefixLen, 0)
	replaced := string([]rune(text)[start:col])
	kind := mapCompletionItemKind(c.Kind)
	item := protocol.CompletionItem{
		Label:      c.Label,
		Kind:       &kind,
		SortText:   strPtr(fmt.Sprintf("%05d", index)),
		FilterText: strPtr(replaced),
		TextEdit: protocol.TextEdit{
			Range: protocol.Range{
				Start: protocol.Position{Line: safeUint(line), Character: safeUint(utf16Column(text, start))},
				End:   protocol.Position{Line: safeUint(line), Character: safeUint(utf16Column(text, col))},
			},
			NewText: c.Insert,
		},
	}
	if c.Detail != "" {
		item.Detail = strPtr(c.Detail)
	}
	return item
}

// mapCompletionItemKind converts a candidate kind to an LSP CompletionItemKind.
func mapCompletionItemKind(kind complete.ItemKind) protocol.CompletionItemKind {
	switch kind {
	case complete.ItemKeyword:
		return protocol.CompletionItemKindKeyword
	case complete.ItemProperty:
		return protocol.CompletionItemKindProperty
	case complete.ItemFunction:
		return protocol.CompletionItemKindFunction
	case complete.ItemValue:
		return protocol.CompletionItemKindValue
	case complete.ItemIdentifier:
		return protocol.CompletionItemKindVariable
	default:
		return protocol.CompletionItemKindText
	}
}
