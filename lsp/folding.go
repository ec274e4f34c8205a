// Copyright © 2026 The mpvedit authors

package lsp

import (
	"strings"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/mpvex/mpvedit/complete"
)

// textDocumentFoldingRange handles the textDocument/foldingRange request.
// Config files fold each profile section; both kinds fold consecutive
// comment lines.
func (s *Server) textDocumentFoldingRange(_ *glsp.Context, params *protocol.FoldingRangeParams) ([]protocol.FoldingRange, error) {
	doc := s.docs.Get(params.TextDocument.URI)
	if doc == nil {
		return nil, nil
	}
	content, _ := doc.snapshot()
	lines := strings.Split(content, "\n")

	var ranges []protocol.FoldingRange
	marker := "--"
	if doc.Kind == complete.KindConfig {
		ranges = append(ranges, profileFoldingRanges(lines)...)
		marker = "#"
	}
	ranges = append(ranges, commentFoldingRanges(lines, marker)...)
	return ranges, nil
}

// profileFoldingRanges folds each "[name]" header down to the last
// non-blank line before the next header.
func profileFoldingRanges(lines []string) []protocol.FoldingRange {
	var ranges []protocol.FoldingRange
	start, last := -1, -1
	flush := func() {
		if start >= 0 && last > start {
			kind := string(protocol.FoldingRangeKindRegion)
			ranges = append(ranges, protocol.FoldingRange{
				StartLine: safeUint(start),
				EndLine:   safeUint(last),
				Kind:      &kind,
			})
		}
	}
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, "["):
			flush()
			start, last = i, i
		case trimmed != "" && start >= 0:
			last = i
		}
	}
	flush()
	return ranges
}

// commentFoldingRanges produces a folding range for each block of two or
// more consecutive lines starting with marker.
func commentFoldingRanges(lines []string, marker string) []protocol.FoldingRange {
	var ranges []protocol.FoldingRange

	blockStart := -1
	for i := 0; i <= len(lines); i++ {
		if i < len(lines) && strings.HasPrefix(strings.TrimSpace(lines[i]), marker) {
			if blockStart < 0 {
				blockStart = i
			}
			continue
		}
		if blockStart >= 0 && i-1 > blockStart {
			kind := string(protocol.FoldingRangeKindComment)
			ranges = append(ranges, protocol.FoldingRange{
				StartLine: safeUint(blockStart),
				EndLine:   safeUint(i - 1),
				Kind:      &kind,
			})
		}
		blockStart = -1
	}
	return ranges
}
