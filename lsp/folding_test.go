// Copyright © 2026 The mpvedit authors

package lsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

type fold struct {
	start, end uint32
	kind       string
}

func foldingRanges(t *testing.T, s *Server, uri string) []fold {
	t.Helper()
	ranges, err := s.textDocumentFoldingRange(mockContext(), &protocol.FoldingRangeParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	require.NoError(t, err)
	var out []fold
	for _, r := range ranges {
		require.NotNil(t, r.Kind)
		out = append(out, fold{r.StartLine, r.EndLine, *r.Kind})
	}
	return out
}

func TestFoldingRangesConfig(t *testing.T) {
	s := testServer()
	src := "# video\n# settings\nvo=gpu\n\n[hq]\nscale=ewa_lanczos\ncscale=ewa_lanczos\n\n[single]\n[fast]\nprofile-desc=x\n# trailing\n"
	openDoc(s, confURI, src)

	assert.Equal(t, []fold{
		{4, 6, "region"},
		{9, 11, "region"},
		{0, 1, "comment"},
	}, foldingRanges(t, s, confURI))
}

func TestFoldingRangesScript(t *testing.T) {
	s := testServer()
	openDoc(s, scriptURI, "-- osd helper\n  -- shows messages\nlocal x = 1\n-- lone\n[not a profile]\n")

	assert.Equal(t, []fold{{0, 1, "comment"}}, foldingRanges(t, s, scriptURI))
}

func TestFoldingRangesUnknownDocument(t *testing.T) {
	s := testServer()
	assert.Empty(t, foldingRanges(t, s, "file:///nope.conf"))
}
