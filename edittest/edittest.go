// Copyright © 2026 The mpvedit authors

// Package edittest contains helpers shared by the package tests.
package edittest

import (
	"bytes"
	"io"
	"testing"

	"github.com/mpvex/mpvedit/logger"
)

// Writer forwards complete lines to t.Log.
type Writer struct {
	t   testing.TB
	buf []byte
}

var _ io.Writer = (*Writer)(nil)

// NewWriter returns a Writer bound to t.
func NewWriter(t testing.TB) *Writer {
	return &Writer{t: t}
}

func (w *Writer) Write(b []byte) (int, error) {
	w.buf = append(w.buf, b...)
	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			return len(b), nil
		}
		w.t.Log(string(w.buf[:i]))
		w.buf = w.buf[i+1:]
	}
}

// Flush logs any trailing partial line.
func (w *Writer) Flush() {
	if len(w.buf) == 0 {
		return
	}
	w.t.Log(string(w.buf))
	w.buf = nil
}

// Logger returns a debug-level logger whose output goes to t.Log.
func Logger(t testing.TB) *logger.Logger {
	w := NewWriter(t)
	t.Cleanup(w.Flush)
	return logger.New("debug", w)
}
