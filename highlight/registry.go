// Copyright © 2026 The mpvedit authors

// Package highlight loads the line grammars and colour themes used for
// syntax highlighting and provides the grammar-backed host languages that
// catalog completion is layered on.
package highlight

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/mpvex/mpvedit/complete"
	"github.com/mpvex/mpvedit/logger"
	"github.com/mpvex/mpvedit/memo"
	"github.com/mpvex/mpvedit/theme"
)

// ErrUnknownTheme is returned when selecting a theme that is not loaded.
var ErrUnknownTheme = errors.New("unknown theme")

// Theme names registered by EnsureReady.
const (
	LuaTheme  = "lua_theme"
	ConfTheme = "conf_theme"
)

// LanguagesFile is the grammar registry inside the asset tree.
const LanguagesFile = "languages.json"

//go:embed assets
var assets embed.FS

// Assets returns the embedded asset tree.
func Assets() fs.FS {
	sub, err := fs.Sub(assets, "assets")
	if err != nil {
		panic(err)
	}
	return sub
}

var themeAssets = []struct {
	name string
	path string
}{
	{LuaTheme, "textmate/Lua/lua_theme.json"},
	{ConfTheme, "textmate/Conf/conf_theme.json"},
}

// LanguageInfo is one entry of the grammar registry.
type LanguageInfo struct {
	Name       string   `json:"name"`
	ScopeName  string   `json:"scopeName"`
	Grammar    string   `json:"grammar"`
	Extensions []string `json:"extensions"`
}

// Registry holds the grammars and themes read from an asset tree. Loading
// happens once, on the first call to EnsureReady.
type Registry struct {
	fsys fs.FS
	log  *logger.Logger

	once  sync.Once
	ready atomic.Bool

	mu       sync.RWMutex
	err      error
	themes   map[string]*Theme
	current  string
	grammars map[string]*Grammar
	langs    []LanguageInfo
}

// NewRegistry returns an unloaded registry over fsys.
func NewRegistry(fsys fs.FS, log *logger.Logger) *Registry {
	if log == nil {
		log = logger.Discard()
	}
	return &Registry{
		fsys:     fsys,
		log:      log,
		themes:   make(map[string]*Theme),
		grammars: make(map[string]*Grammar),
	}
}

var defaultRegistry = memo.New(func() *Registry {
	return NewRegistry(Assets(), logger.Default())
})

// Default returns the process-wide registry over the embedded assets.
func Default() *Registry { return defaultRegistry.Get() }

// EnsureReady loads the assets if that has not happened yet. Concurrent
// callers block until the single load finishes. A failed load is logged
// and leaves the registry ready but partially populated; the failure is
// returned here and by Err.
func (r *Registry) EnsureReady() error {
	r.once.Do(r.load)
	return r.Err()
}

// Ready reports whether loading has finished, successfully or not.
func (r *Registry) Ready() bool { return r.ready.Load() }

// Err returns the load failure, if any.
func (r *Registry) Err() error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.err
}

func (r *Registry) load() {
	defer r.ready.Store(true)
	if err := r.loadAssets(); err != nil {
		r.log.Error().Err(err).Msg("Syntax highlighting setup failed")
		r.mu.Lock()
		r.err = err
		r.mu.Unlock()
		return
	}
	r.log.Debug().
		Int("grammars", len(r.langs)).
		Int("themes", len(themeAssets)).
		Msg("Syntax highlighting ready")
}

func (r *Registry) loadAssets() error {
	for _, ta := range themeAssets {
		data, err := fs.ReadFile(r.fsys, ta.path)
		if err != nil {
			return fmt.Errorf("failed to read theme %s: %w", ta.name, err)
		}
		t, err := ParseTheme(ta.name, data)
		if err != nil {
			return fmt.Errorf("theme %s: %w", ta.path, err)
		}
		r.mu.Lock()
		r.themes[ta.name] = t
		r.mu.Unlock()
	}

	if err := r.setTheme(LuaTheme); err != nil {
		return err
	}
	return r.loadGrammars(LanguagesFile)
}

func (r *Registry) loadGrammars(name string) error {
	data, err := fs.ReadFile(r.fsys, name)
	if err != nil {
		return fmt.Errorf("failed to read grammar registry: %w", err)
	}
	if err := validate(languagesSchema, data); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	var reg struct {
		Languages []LanguageInfo `json:"languages"`
	}
	if err := json.Unmarshal(data, &reg); err != nil {
		return fmt.Errorf("failed to decode %s: %w", name, err)
	}

	for _, info := range reg.Languages {
		gp := path.Join(path.Dir(name), info.Grammar)
		data, err := fs.ReadFile(r.fsys, gp)
		if err != nil {
			return fmt.Errorf("failed to read grammar %s: %w", info.Name, err)
		}
		g, err := ParseGrammar(data)
		if err != nil {
			return fmt.Errorf("grammar %s: %w", gp, err)
		}
		if g.ScopeName != info.ScopeName {
			return fmt.Errorf("grammar %s: scope %q does not match registry scope %q", gp, g.ScopeName, info.ScopeName)
		}
		r.mu.Lock()
		r.grammars[info.ScopeName] = g
		r.langs = append(r.langs, info)
		r.mu.Unlock()
	}
	return nil
}

// SetTheme selects the active theme.
func (r *Registry) SetTheme(name string) error {
	_ = r.EnsureReady()
	return r.setTheme(name)
}

func (r *Registry) setTheme(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.themes[name]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownTheme, name)
	}
	r.current = name
	return nil
}

// Theme returns a loaded theme. An empty name means the active theme.
func (r *Registry) Theme(name string) (*Theme, bool) {
	_ = r.EnsureReady()
	r.mu.RLock()
	defer r.mu.RUnlock()
	if name == "" {
		name = r.current
	}
	t, ok := r.themes[name]
	return t, ok
}

// Themes lists the loaded theme names in sorted order.
func (r *Registry) Themes() []string {
	_ = r.EnsureReady()
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.themes))
	for name := range r.themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ThemeForKind returns the theme name matching a file kind.
func ThemeForKind(kind complete.FileKind) string {
	if kind == complete.KindConfig {
		return ConfTheme
	}
	return LuaTheme
}

// Grammar returns the grammar registered for scope.
func (r *Registry) Grammar(scope string) (*Grammar, bool) {
	_ = r.EnsureReady()
	r.mu.RLock()
	defer r.mu.RUnlock()
	g, ok := r.grammars[scope]
	return g, ok
}

// Languages returns the grammar registry entries that loaded.
func (r *Registry) Languages() []LanguageInfo {
	_ = r.EnsureReady()
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]LanguageInfo, len(r.langs))
	copy(out, r.langs)
	return out
}

// ScopeForKind returns the grammar scope used for a file kind.
func (r *Registry) ScopeForKind(kind complete.FileKind) string {
	return kind.Scope()
}

// ScopeForPath finds the scope whose registered extensions include the
// path's extension, falling back to the file kind's scope.
func (r *Registry) ScopeForPath(p string) string {
	ext := strings.ToLower(filepath.Ext(p))
	for _, info := range r.Languages() {
		for _, e := range info.Extensions {
			if strings.EqualFold(e, ext) {
				return info.ScopeName
			}
		}
	}
	return complete.KindForPath(p).Scope()
}

// Language returns the grammar-backed language for kind, or nil when its
// grammar is not available.
func (r *Registry) Language(kind complete.FileKind) complete.Language {
	g, ok := r.Grammar(r.ScopeForKind(kind))
	if !ok {
		return nil
	}
	return NewLanguage(g)
}

// Wrapped returns the language for kind decorated with catalog
// completions from d.
func (r *Registry) Wrapped(kind complete.FileKind, d *complete.Dispatcher) complete.Language {
	return complete.Wrap(r.Language(kind), kind, d)
}

// ColorScheme returns the active theme's slot colours with the palette's
// colours applied on top.
func (r *Registry) ColorScheme(p theme.Palette) *theme.Scheme {
	s := theme.NewScheme()
	if t, ok := r.Theme(""); ok {
		s = t.Scheme()
	}
	s.Apply(theme.BuildColors(p))
	return s
}
