// Copyright © 2026 The mpvedit authors

package highlight

import (
	"io/fs"
	"sync"
	"sync/atomic"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpvex/mpvedit/complete"
	"github.com/mpvex/mpvedit/edittest"
	"github.com/mpvex/mpvedit/theme"
)

type countingFS struct {
	fs.FS
	opens atomic.Int32
}

func (c *countingFS) Open(name string) (fs.File, error) {
	if name == LanguagesFile {
		c.opens.Add(1)
	}
	return c.FS.Open(name)
}

func assetMap(t *testing.T) fstest.MapFS {
	t.Helper()
	m := fstest.MapFS{}
	err := fs.WalkDir(Assets(), ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := fs.ReadFile(Assets(), p)
		if err != nil {
			return err
		}
		m[p] = &fstest.MapFile{Data: data}
		return nil
	})
	require.NoError(t, err)
	return m
}

func TestRegistryEmbedded(t *testing.T) {
	r := NewRegistry(Assets(), edittest.Logger(t))
	assert.False(t, r.Ready())
	require.NoError(t, r.EnsureReady())
	assert.True(t, r.Ready())
	assert.NoError(t, r.Err())

	assert.Equal(t, []string{ConfTheme, LuaTheme}, r.Themes())
	cur, ok := r.Theme("")
	require.True(t, ok)
	assert.Equal(t, LuaTheme, cur.Name)

	for _, scope := range []string{complete.ScopeLua, complete.ScopeConf} {
		g, ok := r.Grammar(scope)
		require.True(t, ok, scope)
		assert.Equal(t, scope, g.ScopeName)
	}
	assert.Len(t, r.Languages(), 2)

	assert.Equal(t, complete.ScopeConf, r.ScopeForPath("/home/u/.config/mpv/mpv.conf"))
	assert.Equal(t, complete.ScopeLua, r.ScopeForPath("scripts/A.LUA"))
	assert.Equal(t, complete.ScopeLua, r.ScopeForPath("notes.txt"))
	assert.Equal(t, complete.ScopeConf, r.ScopeForKind(complete.KindConfig))
}

func TestRegistrySetTheme(t *testing.T) {
	r := NewRegistry(Assets(), nil)
	require.NoError(t, r.SetTheme(ConfTheme))
	cur, ok := r.Theme("")
	require.True(t, ok)
	assert.Equal(t, ConfTheme, cur.Name)

	err := r.SetTheme("solarized")
	assert.ErrorIs(t, err, ErrUnknownTheme)
	cur, _ = r.Theme("")
	assert.Equal(t, ConfTheme, cur.Name)

	assert.Equal(t, ConfTheme, ThemeForKind(complete.KindConfig))
	assert.Equal(t, LuaTheme, ThemeForKind(complete.KindScript))
}

func TestRegistryLoadsOnce(t *testing.T) {
	cfs := &countingFS{FS: Assets()}
	r := NewRegistry(cfs, nil)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, r.EnsureReady())
			_, ok := r.Grammar(complete.ScopeLua)
			assert.True(t, ok)
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(1), cfs.opens.Load())
}

func TestRegistryBrokenRegistry(t *testing.T) {
	m := assetMap(t)
	m[LanguagesFile] = &fstest.MapFile{Data: []byte(`{"languages": 3}`)}

	r := NewRegistry(m, edittest.Logger(t))
	err := r.EnsureReady()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidAsset)
	assert.True(t, r.Ready())
	assert.Equal(t, err, r.Err())

	// themes loaded before the failure stay available
	assert.Len(t, r.Themes(), 2)
	_, ok := r.Grammar(complete.ScopeLua)
	assert.False(t, ok)
	assert.Nil(t, r.Language(complete.KindScript))

	lang := r.Wrapped(complete.KindScript, complete.Default())
	assert.Equal(t, complete.ScopeLua, lang.Scope())
	var sink complete.SliceSink
	lang.Complete(complete.Context{Content: "mp.msg.w", Column: 8}, &sink)
	assert.Contains(t, sink.Labels(), "mp.msg.warn")
}

func TestRegistryMissingAssets(t *testing.T) {
	r := NewRegistry(fstest.MapFS{}, nil)
	err := r.EnsureReady()
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.True(t, r.Ready())
	assert.Empty(t, r.Themes())
	_, ok := r.Theme("")
	assert.False(t, ok)
}

func TestRegistryBrokenGrammar(t *testing.T) {
	m := assetMap(t)
	m["textmate/Conf/conf.grammar.json"] = &fstest.MapFile{Data: []byte(`{"scopeName": "source.conf", "patterns": [{"name": "x", "match": "("}]}`)}

	r := NewRegistry(m, nil)
	require.Error(t, r.EnsureReady())
	_, ok := r.Grammar(complete.ScopeLua)
	assert.True(t, ok)
	_, ok = r.Grammar(complete.ScopeConf)
	assert.False(t, ok)
}

func TestDefaultRegistry(t *testing.T) {
	assert.Same(t, Default(), Default())
	require.NoError(t, Default().EnsureReady())
}

type tok struct {
	text  string
	scope string
}

func tokenize(t *testing.T, scope, line string) []tok {
	t.Helper()
	g, ok := NewRegistry(Assets(), nil).Grammar(scope)
	require.True(t, ok)
	var out []tok
	for _, tk := range g.Tokenize(line) {
		out = append(out, tok{tk.Text(line), tk.Scope})
	}
	return out
}

func TestTokenizeLua(t *testing.T) {
	got := tokenize(t, complete.ScopeLua, `local x = mp.get_property("pause") -- c`)
	assert.Equal(t, []tok{
		{"local", "keyword.control.lua"},
		{"x", "variable.other.lua"},
		{"=", "keyword.operator.lua"},
		{"mp.get_property", "support.function.mpv.lua"},
		{"(", "punctuation.separator.lua"},
		{`"pause"`, "string.quoted.double.lua"},
		{")", "punctuation.separator.lua"},
		{"-- c", "comment.line.double-dash.lua"},
	}, got)

	got = tokenize(t, complete.ScopeLua, "endless elseif 0x1F nil")
	assert.Equal(t, []tok{
		{"endless", "variable.other.lua"},
		{"elseif", "keyword.control.lua"},
		{"0x1F", "constant.numeric.lua"},
		{"nil", "constant.language.lua"},
	}, got)
}

func TestTokenizeConf(t *testing.T) {
	tests := []struct {
		line string
		want []tok
	}{
		{"volume=100", []tok{
			{"volume", "variable.other.key.conf"},
			{"=", "keyword.operator.assignment.conf"},
			{"100", "constant.language.value.conf"},
		}},
		{"vo = gpu-next", []tok{
			{"vo", "variable.other.key.conf"},
			{"=", "keyword.operator.assignment.conf"},
			{"gpu-next", "string.unquoted.value.conf"},
		}},
		{"  fullscreen", []tok{{"fullscreen", "variable.other.key.conf"}}},
		{"# comment", []tok{{"# comment", "comment.line.number-sign.conf"}}},
		{"[hq]", []tok{{"[hq]", "entity.name.section.profile.conf"}}},
		{"", nil},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, tokenize(t, complete.ScopeConf, tt.line))
		})
	}
}

func TestTokenizeMultibyte(t *testing.T) {
	line := "é = 1"
	got := tokenize(t, complete.ScopeLua, line)
	assert.Equal(t, []tok{
		{"=", "keyword.operator.lua"},
		{"1", "constant.numeric.lua"},
	}, got)
}

func TestParseGrammarErrors(t *testing.T) {
	_, err := ParseGrammar([]byte(`{"patterns": []}`))
	assert.ErrorIs(t, err, ErrInvalidAsset)

	_, err = ParseGrammar([]byte(`{"scopeName": "source.x", "patterns": [{"match": "a", "captures": {"2": "x"}}]}`))
	assert.Error(t, err)

	_, err = ParseGrammar([]byte(`not json`))
	assert.Error(t, err)

	g, err := ParseGrammar([]byte(`{"scopeName": "source.x", "patterns": [{"name": "k", "words": ["a.b"]}]}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"a.b"}, g.Keywords())
	assert.Empty(t, g.Tokenize("axb"))
}

func TestThemeStyle(t *testing.T) {
	r := NewRegistry(Assets(), nil)
	lua, ok := r.Theme(LuaTheme)
	require.True(t, ok)

	op := lua.Style("keyword.operator.lua")
	assert.Equal(t, theme.MustParseHex("#D73A49"), op.Foreground)
	assert.False(t, op.Bold)
	assert.True(t, lua.Style("keyword.control.lua").Bold)
	assert.True(t, lua.Style("comment.line.double-dash.lua").Italic)

	mpv := lua.Style("support.function.mpv.lua")
	assert.Equal(t, theme.MustParseHex("#6750A4"), mpv.Foreground)
	assert.Equal(t, theme.MustParseHex("#6F42C1"), lua.Style("support.function.builtin.lua").Foreground)

	plain := lua.Style("meta.unknown")
	assert.Equal(t, lua.Foreground, plain.Foreground)
	assert.Equal(t, theme.MustParseHex("#1D1B20"), plain.Foreground)
}

func TestParseThemeErrors(t *testing.T) {
	_, err := ParseTheme("x", []byte(`{"name": "x", "settings": [{"scope": "a", "settings": {"foreground": "red"}}]}`))
	assert.ErrorIs(t, err, ErrInvalidAsset)

	th, err := ParseTheme("renamed", []byte(`{"name": "x", "settings": [{"scope": "a, b", "settings": {"foreground": "#010203", "fontStyle": "bold underline"}}]}`))
	require.NoError(t, err)
	assert.Equal(t, "renamed", th.Name)
	assert.True(t, th.Style("b.c").Underline)
	assert.Equal(t, theme.Color(0xFF010203), th.Style("a").Foreground)
}

func TestColorScheme(t *testing.T) {
	r := NewRegistry(Assets(), nil)
	s := r.ColorScheme(theme.Dark())
	bg, ok := s.Get(theme.WholeBackground)
	require.True(t, ok)
	assert.Equal(t, theme.Dark().Surface, bg)

	lua, _ := r.Theme(LuaTheme)
	own := lua.Scheme()
	bg, ok = own.Get(theme.WholeBackground)
	require.True(t, ok)
	assert.Equal(t, theme.MustParseHex("#FEF7FF"), bg)
	_, ok = own.Get(theme.CurrentLine)
	assert.False(t, ok)
}

func TestLanguageComplete(t *testing.T) {
	r := NewRegistry(Assets(), nil)
	lang := r.Language(complete.KindScript)
	require.NotNil(t, lang)

	tests := []struct {
		name   string
		ctx    complete.Context
		labels []string
	}{
		{
			name:   "identifiers",
			ctx:    complete.Context{Content: "local volume_level = 1\nlocal v", Line: 1, Column: 7},
			labels: []string{"volume_level"},
		},
		{
			name:   "keywords first then identifiers",
			ctx:    complete.Context{Content: "Pause = 1\np", Line: 1, Column: 1},
			labels: []string{"print", "pairs", "pcall", "Pause"},
		},
		{
			name: "empty prefix",
			ctx:  complete.Context{Content: "local x", Column: 0},
		},
		{
			name: "cursor after space",
			ctx:  complete.Context{Content: "local ", Column: 6},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sink complete.SliceSink
			lang.Complete(tt.ctx, &sink)
			if tt.labels == nil {
				assert.Empty(t, sink.Items)
				return
			}
			assert.Equal(t, tt.labels, sink.Labels())
		})
	}

	var sink complete.SliceSink
	lang.Complete(complete.Context{Content: "whi", Column: 3}, &sink)
	require.Len(t, sink.Items, 1)
	c := sink.Items[0]
	assert.Equal(t, "while", c.Insert)
	assert.Equal(t, complete.ItemKeyword, c.Kind)
	assert.Equal(t, 3, c.PrefixLen)
}

func TestWrappedLanguage(t *testing.T) {
	r := NewRegistry(Assets(), nil)
	lang := r.Wrapped(complete.KindScript, complete.Default())
	assert.Equal(t, complete.ScopeLua, lang.Scope())

	var sink complete.SliceSink
	lang.Complete(complete.Context{Content: "local getter = 1\nmp.get", Line: 1, Column: 6}, &sink)
	labels := sink.Labels()
	require.NotEmpty(t, labels)
	assert.Equal(t, []string{"getmetatable", "getter"}, labels[:2])
	assert.Contains(t, labels, "mp.get_property")
	assert.Equal(t, 3, sink.Items[0].PrefixLen)
}

func TestLanguageTokenize(t *testing.T) {
	r := NewRegistry(Assets(), nil)
	host := r.Language(complete.KindConfig)
	require.NotNil(t, host)
	assert.Equal(t, complete.ScopeConf, host.Scope())

	// Completion hosts see only Scope and Complete; tokens come from the
	// highlight side.
	lang, ok := host.(*Language)
	require.True(t, ok)
	line := "volume=50"
	assert.Equal(t, lang.Grammar().Tokenize(line), lang.Tokenize(line))
	assert.NotEmpty(t, lang.Tokenize(line))
}
