// Copyright © 2026 The mpvedit authors

package lsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

func lineDiagnostic(line protocol.UInteger, source string) protocol.Diagnostic {
	return protocol.Diagnostic{
		Range: protocol.Range{
			Start: protocol.Position{Line: line},
			End:   protocol.Position{Line: line, Character: 4},
		},
		Source:  strPtr(source),
		Message: "unknown option",
	}
}

func codeActions(t *testing.T, s *Server, uri string, only []protocol.CodeActionKind, diags ...protocol.Diagnostic) []protocol.CodeAction {
	t.Helper()
	result, err := s.textDocumentCodeAction(mockContext(), &protocol.CodeActionParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
		Context:      protocol.CodeActionContext{Diagnostics: diags, Only: only},
	})
	require.NoError(t, err)
	if result == nil {
		return nil
	}
	actions, ok := result.([]protocol.CodeAction)
	require.True(t, ok, "expected []protocol.CodeAction, got %T", result)
	return actions
}

func TestCodeActionReplacesUnknownKey(t *testing.T) {
	s := testServer()
	openDoc(s, confURI, "volume=50\ncach=yes")

	diag := lineDiagnostic(1, serverName)
	actions := codeActions(t, s, confURI, nil, diag, diag)
	require.Len(t, actions, 1)

	a := actions[0]
	assert.Equal(t, "Change to cache", a.Title)
	require.NotNil(t, a.Kind)
	assert.Equal(t, protocol.CodeActionKindQuickFix, *a.Kind)
	require.NotNil(t, a.IsPreferred)
	assert.True(t, *a.IsPreferred)
	assert.Equal(t, []protocol.Diagnostic{diag}, a.Diagnostics)

	require.NotNil(t, a.Edit)
	edits := a.Edit.Changes[confURI]
	require.Len(t, edits, 1)
	assert.Equal(t, "cache", edits[0].NewText)
	assert.Equal(t, protocol.Range{
		Start: protocol.Position{Line: 1, Character: 0},
		End:   protocol.Position{Line: 1, Character: 4},
	}, edits[0].Range)
}

func TestCodeActionIndentedFlag(t *testing.T) {
	s := testServer()
	openDoc(s, confURI, "  volume-ma")

	actions := codeActions(t, s, confURI, nil, lineDiagnostic(0, serverName))
	require.Len(t, actions, 1)
	assert.Equal(t, "Change to volume-max", actions[0].Title)
	edit := actions[0].Edit.Changes[confURI][0]
	assert.Equal(t, protocol.UInteger(2), edit.Range.Start.Character)
	assert.Equal(t, protocol.UInteger(11), edit.Range.End.Character)
}

func TestCodeActionNone(t *testing.T) {
	s := testServer()
	openDoc(s, confURI, "cach=yes\nvolume=50\nfrobnicate=1")
	openDoc(s, scriptURI, "cach=yes")

	t.Run("foreign source", func(t *testing.T) {
		assert.Nil(t, codeActions(t, s, confURI, nil, lineDiagnostic(0, "other")))
	})
	t.Run("known key", func(t *testing.T) {
		assert.Nil(t, codeActions(t, s, confURI, nil, lineDiagnostic(1, serverName)))
	})
	t.Run("no candidate", func(t *testing.T) {
		assert.Nil(t, codeActions(t, s, confURI, nil, lineDiagnostic(2, serverName)))
	})
	t.Run("kind filter", func(t *testing.T) {
		only := []protocol.CodeActionKind{protocol.CodeActionKindRefactor}
		assert.Nil(t, codeActions(t, s, confURI, only, lineDiagnostic(0, serverName)))
		only = append(only, protocol.CodeActionKindQuickFix)
		assert.Len(t, codeActions(t, s, confURI, only, lineDiagnostic(0, serverName)), 1)
	})
	t.Run("script document", func(t *testing.T) {
		assert.Nil(t, codeActions(t, s, scriptURI, nil, lineDiagnostic(0, serverName)))
	})
	t.Run("unknown document", func(t *testing.T) {
		assert.Nil(t, codeActions(t, s, "file:///nope.conf", nil, lineDiagnostic(0, serverName)))
	})
}
