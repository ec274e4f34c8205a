// Copyright © 2026 The mpvedit authors

package repl

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpvex/mpvedit/complete"
)

func suffixStrings(suffixes [][]rune) []string {
	out := make([]string, len(suffixes))
	for i, s := range suffixes {
		out[i] = string(s)
	}
	return out
}

func TestSessionComplete(t *testing.T) {
	t.Run("config key", func(t *testing.T) {
		s, _ := testSession(t)
		suffixes, length, hints := s.Complete([]rune("cache-se"), 8)
		assert.Equal(t, 8, length)
		assert.Contains(t, suffixStrings(suffixes), "cs=10")
		assert.Empty(t, hints)
	})

	t.Run("description match is a hint", func(t *testing.T) {
		s, _ := testSession(t)
		suffixes, _, hints := s.Complete([]rune("Startup"), 7)
		assert.Empty(t, suffixes)
		assert.Contains(t, hints, "volume=100")
	})

	t.Run("script api", func(t *testing.T) {
		s, _ := testSession(t, WithKind(complete.KindScript))
		line := []rune("local p = mp.get_p")
		suffixes, length, _ := s.Complete(line, len(line))
		assert.Equal(t, 8, length)
		assert.Contains(t, suffixStrings(suffixes), "roperty")
	})

	t.Run("buffer identifiers first", func(t *testing.T) {
		s, _ := testSession(t, WithKind(complete.KindScript))
		s.lines = []string{"local counter = 0"}
		suffixes, length, hints := s.Complete([]rune("cou"), 3)
		require.NotEmpty(t, suffixes)
		assert.Equal(t, "nter", string(suffixes[0]))
		assert.Equal(t, 3, length)
		assert.Contains(t, hints, "playlist-count")
	})

	t.Run("mixed prefix lengths", func(t *testing.T) {
		s, _ := testSession(t, WithKind(complete.KindScript))
		line := []rune("x = mp.get")
		suffixes, length, _ := s.Complete(line, len(line))
		// getmetatable replaces "get", mp.get_property replaces "mp.get";
		// both append at the cursor and the shared length covers both.
		assert.Equal(t, 6, length)
		got := suffixStrings(suffixes)
		assert.Contains(t, got, "metatable")
		assert.Contains(t, got, "_property")
		for _, suffix := range got {
			assert.NotEmpty(t, suffix)
		}
	})

	t.Run("empty prefix", func(t *testing.T) {
		s, _ := testSession(t)
		suffixes, length, hints := s.Complete([]rune("volume="), 7)
		assert.Empty(t, suffixes)
		assert.Equal(t, 0, length)
		assert.Empty(t, hints)
	})
}

func TestLineCompleterWritesHints(t *testing.T) {
	s, _ := testSession(t)
	var hints bytes.Buffer
	c := &lineCompleter{session: s, hints: &hints}
	suffixes, _ := c.Do([]rune("Startup"), 7)
	assert.Empty(t, suffixes)
	assert.Contains(t, hints.String(), "volume=100")
}

func TestLineCompleterOffsets(t *testing.T) {
	s, _ := testSession(t, WithKind(complete.KindScript))
	c := &lineCompleter{session: s, hints: &bytes.Buffer{}}

	// "mp.osd" should match mp.osd_message and friends.
	candidates, offset := c.Do([]rune("mp.osd"), 6)
	if offset != 6 {
		t.Errorf("offset = %d, want 6", offset)
	}
	if len(candidates) == 0 {
		t.Error("expected completions for 'mp.osd', got none")
	}

	// "zzz-nonexistent" should have no completions.
	candidates, _ = c.Do([]rune("zzz-nonexistent"), 15)
	if len(candidates) != 0 {
		t.Errorf("expected no completions for 'zzz-nonexistent', got %d", len(candidates))
	}
}
