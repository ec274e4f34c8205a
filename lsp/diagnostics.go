// Copyright © 2026 The mpvedit authors

package lsp

import (
	"time"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/mpvex/mpvedit/complete"
	"github.com/mpvex/mpvedit/conf"
	"github.com/mpvex/mpvedit/diagnostic"
)

const debounceDelay = 300 * time.Millisecond

// textDocumentDidOpen handles the textDocument/didOpen notification.
func (s *Server) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	s.captureNotify(ctx)
	doc := s.docs.Open(
		params.TextDocument.URI,
		int32(params.TextDocument.Version),
		params.TextDocument.Text,
	)
	s.log.Debug().Str("uri", doc.URI).Str("kind", string(doc.Kind)).Msg("Document opened")
	s.publishDiagnostics(doc)
	return nil
}

// textDocumentDidChange handles the textDocument/didChange notification.
func (s *Server) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	s.captureNotify(ctx)
	// With full sync, the last content change is the complete document.
	var content string
	for _, change := range params.ContentChanges {
		switch c := change.(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			content = c.Text
		case protocol.TextDocumentContentChangeEvent:
			content = c.Text
		}
	}

	doc := s.docs.Change(
		params.TextDocument.URI,
		int32(params.TextDocument.Version),
		content,
	)

	s.debounceMu.Lock()
	if t, ok := s.debounce[doc.URI]; ok {
		t.Stop()
	}
	s.debounce[doc.URI] = time.AfterFunc(debounceDelay, func() {
		if d := s.docs.Get(doc.URI); d != nil {
			s.publishDiagnostics(d)
		}
	})
	s.debounceMu.Unlock()
	return nil
}

// textDocumentDidSave publishes immediately, dropping any pending debounce.
func (s *Server) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	s.captureNotify(ctx)
	s.cancelDebounce(params.TextDocument.URI)
	if doc := s.docs.Get(params.TextDocument.URI); doc != nil {
		s.publishDiagnostics(doc)
	}
	return nil
}

// textDocumentDidClose handles the textDocument/didClose notification.
func (s *Server) textDocumentDidClose(_ *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.cancelDebounce(params.TextDocument.URI)

	// Clear diagnostics for the closed file.
	s.sendNotification(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         params.TextDocument.URI,
		Diagnostics: []protocol.Diagnostic{},
	})

	s.docs.Close(params.TextDocument.URI)
	return nil
}

func (s *Server) cancelDebounce(uri string) {
	s.debounceMu.Lock()
	if t, ok := s.debounce[uri]; ok {
		t.Stop()
		delete(s.debounce, uri)
	}
	s.debounceMu.Unlock()
}

// publishDiagnostics checks config documents and publishes the result.
// Scripts always get an empty list.
func (s *Server) publishDiagnostics(doc *Document) {
	content, version := doc.snapshot()
	diags := []protocol.Diagnostic{}
	if doc.Kind == complete.KindConfig {
		for _, d := range conf.Check(uriToPath(doc.URI), content, s.dispatcher.Options()) {
			diags = append(diags, convertDiagnostic(d, content))
		}
	}
	v := safeUint(int(version))
	s.sendNotification(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         doc.URI,
		Version:     &v,
		Diagnostics: diags,
	})
}

// convertDiagnostic converts a rendered-style diagnostic to an LSP one,
// using its first span for the range.
func convertDiagnostic(d diagnostic.Diagnostic, content string) protocol.Diagnostic {
	sev := mapSeverity(d.Severity)
	out := protocol.Diagnostic{
		Severity: &sev,
		Source:   strPtr(serverName),
		Message:  d.Message,
	}
	for _, n := range d.Notes {
		out.Message += "\n" + n
	}
	if len(d.Spans) == 0 {
		return out
	}

	sp := d.Spans[0]
	line := max(sp.Line-1, 0)
	text := lineAt(content, line)
	start := max(sp.Col-1, 0)
	end := sp.EndCol
	if end < start+1 {
		end = start + 1
	}
	out.Range = protocol.Range{
		Start: protocol.Position{Line: safeUint(line), Character: safeUint(utf16Column(text, start))},
		End:   protocol.Position{Line: safeUint(line), Character: safeUint(utf16Column(text, end))},
	}
	return out
}

func mapSeverity(sev diagnostic.Severity) protocol.DiagnosticSeverity {
	switch sev {
	case diagnostic.SeverityError:
		return protocol.DiagnosticSeverityError
	case diagnostic.SeverityWarning:
		return protocol.DiagnosticSeverityWarning
	default:
		return protocol.DiagnosticSeverityInformation
	}
}
