// Copyright © 2026 The mpvedit authors

package repl

import (
	"github.com/mpvex/mpvedit/complete"
	"github.com/mpvex/mpvedit/conf"
	"github.com/mpvex/mpvedit/diagnostic"
)

// checkLine renders config diagnostics for buffer line i as soon as it is
// entered. Spans point into the buffer so the renderer can show the
// source line.
func (s *Session) checkLine(i int) {
	name := s.path
	if name == "" {
		name = "<buffer>"
	}
	diags := conf.Check(name, s.lines[i], s.options)
	for j := range diags {
		for k := range diags[j].Spans {
			diags[j].Spans[k].Line += i
		}
	}
	_ = s.diag.RenderAll(s.out, diags)
}

// Diagnostics checks the whole buffer. Scripts have none.
func (s *Session) Diagnostics() []diagnostic.Diagnostic {
	if s.kind != complete.KindConfig {
		return nil
	}
	name := s.path
	if name == "" {
		name = "<buffer>"
	}
	return conf.Check(name, s.Content(), s.options)
}

// check renders every buffer diagnostic followed by a summary.
func (s *Session) check() {
	diags := s.Diagnostics()
	_ = s.diag.RenderAll(s.out, diags)
	_ = s.diag.Summary(s.out, diags)
}
