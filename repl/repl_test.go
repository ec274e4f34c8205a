// Copyright © 2026 The mpvedit authors

package repl

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpvex/mpvedit/complete"
	"github.com/mpvex/mpvedit/diagnostic"
	"github.com/mpvex/mpvedit/highlight"
	"github.com/mpvex/mpvedit/logger"
)

func testOptions(extra ...Option) []Option {
	return append([]Option{
		WithRegistry(highlight.NewRegistry(highlight.Assets(), nil)),
		WithLogger(logger.Discard()),
		WithHistory(""),
		WithColor(diagnostic.ColorNever),
	}, extra...)
}

func testSession(t *testing.T, extra ...Option) (*Session, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	s, err := newSession(newConfig(testOptions(append(extra, WithStderr(&out))...)...))
	require.NoError(t, err)
	return s, &out
}

func runReplWithString(t *testing.T, input string, extra ...Option) string {
	t.Helper()
	inR, inW := io.Pipe()
	outR, outW := io.Pipe()

	go func() {
		defer inW.Close() //nolint:errcheck // test cleanup
		_, _ = io.WriteString(inW, input)
	}()

	errc := make(chan error, 1)
	go func() {
		errc <- Run("mpv> ", testOptions(append(extra, WithStdin(inR), WithStderr(outW))...)...)
		inR.Close()  //nolint:errcheck,gosec // test cleanup
		outW.Close() //nolint:errcheck,gosec // test cleanup
	}()

	var output bytes.Buffer
	_, _ = io.Copy(&output, outR)
	outR.Close() //nolint:errcheck,gosec // test cleanup
	require.NoError(t, <-errc)

	return output.String()
}

func TestEnsureHistoryFilePermissions_CreatesWithRestrictedMode(t *testing.T) {
	dir := t.TempDir()
	histFile := filepath.Join(dir, ".mpvedit_history")

	// File does not exist yet.
	ensureHistoryFilePermissions(histFile)

	info, err := os.Stat(histFile)
	require.NoError(t, err, "history file should be created")
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm(), "new history file should have mode 0600")
}

func TestEnsureHistoryFilePermissions_RestrictsExistingFile(t *testing.T) {
	dir := t.TempDir()
	histFile := filepath.Join(dir, ".mpvedit_history")

	// Create the file with overly permissive mode.
	err := os.WriteFile(histFile, []byte("some history"), 0644)
	require.NoError(t, err)

	ensureHistoryFilePermissions(histFile)

	info, err := os.Stat(histFile)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm(), "existing history file should be restricted to 0600")

	// Verify contents are preserved.
	data, err := os.ReadFile(histFile)
	require.NoError(t, err)
	assert.Equal(t, "some history", string(data))
}

func TestEnsureHistoryFilePermissions_EmptyPathNoOp(t *testing.T) {
	// Should not panic or error with empty path.
	ensureHistoryFilePermissions("")
}

func TestConfigKind(t *testing.T) {
	assert.Equal(t, complete.KindConfig, newConfig(testOptions()...).kind)
	assert.Equal(t, complete.KindScript, newConfig(testOptions(WithFile("scripts/osd.lua"))...).kind)
	assert.Equal(t, complete.KindConfig, newConfig(testOptions(WithFile("input.conf"))...).kind)
	assert.Equal(t, complete.KindScript, newConfig(testOptions(WithKind(complete.KindScript), WithFile("mpv.conf"))...).kind)
}

func TestSessionCommands(t *testing.T) {
	s, out := testSession(t)
	s.append("volume=50")
	s.append("cach=yes")
	assert.Contains(t, out.String(), "unknown option: cach")
	assert.Contains(t, out.String(), "<buffer>:2:1")

	out.Reset()
	quit, err := s.command(":p")
	require.NoError(t, err)
	assert.False(t, quit)
	assert.Equal(t, "1  volume=50\n2  cach=yes\n", out.String())

	out.Reset()
	_, err = s.command(":c")
	require.NoError(t, err)
	assert.Contains(t, out.String(), "1 note")

	_, err = s.command(":d")
	require.NoError(t, err)
	assert.Equal(t, []string{"volume=50"}, s.Lines())

	_, err = s.command(":w")
	assert.EqualError(t, err, "no file name")

	_, err = s.command(":x")
	assert.EqualError(t, err, "unknown command :x (try :h)")

	path := filepath.Join(t.TempDir(), "mpv.conf")
	quit, err = s.command(":wq " + path)
	require.NoError(t, err)
	assert.True(t, quit)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "volume=50\n", string(data))

	quit, err = s.command(":q")
	require.NoError(t, err)
	assert.True(t, quit)
}

func TestScriptLinesAreNotChecked(t *testing.T) {
	s, out := testSession(t, WithKind(complete.KindScript))
	s.append("cach=yes")
	assert.Empty(t, out.String())
	assert.Nil(t, s.Diagnostics())
}

func TestRun(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "print buffer",
			input:    "volume=50\n:p\n:q\n",
			expected: "1  volume=50",
		},
		{
			name:     "diagnostic",
			input:    "cach=yes\n",
			expected: "unknown option: cach",
		},
		{
			name:     "unknown command",
			input:    ":zz\n",
			expected: "unknown command :zz",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := runReplWithString(t, tc.input)
			require.Contains(t, got, tc.expected)
		})
	}
}

func TestRunLoadsAndWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mpv.conf")
	require.NoError(t, os.WriteFile(path, []byte("volume=50\r\nmute=yes\n"), 0o600))

	got := runReplWithString(t, "fullscreen=yes\n:w\n:q\n", WithFile(path))
	assert.Contains(t, got, "wrote 3 lines to "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "volume=50\nmute=yes\nfullscreen=yes\n", string(data))
}
