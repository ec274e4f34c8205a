// Copyright © 2026 The mpvedit authors

package complete

import (
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/mpvex/mpvedit/catalog"
)

// FileKind selects which catalog applies to a document.
type FileKind string

const (
	// KindConfig is an mpv.conf style configuration file.
	KindConfig FileKind = "conf"
	// KindScript is a Lua script. It is also the fallback for any
	// unrecognised kind.
	KindScript FileKind = "lua"
)

// Grammar scopes used by the syntax registry for each file kind.
const (
	ScopeConf = "source.conf"
	ScopeLua  = "source.lua"
)

// MinPropertyPrefix is the shortest prefix that is matched against the
// observable property list.
const MinPropertyPrefix = 2

// ParseFileKind maps a discriminator string to a FileKind. Only "conf" and
// "config" select KindConfig; everything else is a script.
func ParseFileKind(s string) FileKind {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "conf", "config":
		return KindConfig
	default:
		return KindScript
	}
}

// KindForPath derives the file kind from a path's extension.
func KindForPath(path string) FileKind {
	return ParseFileKind(filepath.Ext(path))
}

// Scope returns the grammar scope for k.
func (k FileKind) Scope() string {
	if k == KindConfig {
		return ScopeConf
	}
	return ScopeLua
}

// Dispatcher routes a cursor context to the option or API catalog.
type Dispatcher struct {
	options *catalog.OptionCatalog
	api     *catalog.APICatalog
}

// NewDispatcher returns a dispatcher over the given catalogs.
func NewDispatcher(options *catalog.OptionCatalog, api *catalog.APICatalog) *Dispatcher {
	return &Dispatcher{options: options, api: api}
}

// Default returns a dispatcher over the process-wide catalogs.
func Default() *Dispatcher {
	return NewDispatcher(catalog.Options(), catalog.API())
}

// Complete extracts the prefix before column in line and appends matching
// catalog candidates to sink. Nothing is looked up for an empty prefix. It
// returns the number of candidates appended.
func (d *Dispatcher) Complete(kind FileKind, line string, column int, sink Sink) int {
	prefix := ExtractPrefix(line, column)
	if prefix == "" {
		return 0
	}
	return d.CompletePrefix(kind, prefix, sink)
}

// CompletePrefix appends catalog candidates for an already extracted
// prefix.
func (d *Dispatcher) CompletePrefix(kind FileKind, prefix string, sink Sink) int {
	if prefix == "" {
		return 0
	}
	n := 0
	plen := utf8.RuneCountInString(prefix)
	if kind == KindConfig {
		for o := range Match(prefix, d.options.All()) {
			sink.Add(OptionCandidate(o, plen))
			n++
		}
		return n
	}
	for e := range Match(prefix, d.api.All()) {
		sink.Add(APICandidate(e, plen))
		n++
	}
	if plen >= MinPropertyPrefix {
		for p := range MatchProperties(prefix, d.api.Properties()) {
			sink.Add(PropertyCandidate(p, plen))
			n++
		}
	}
	return n
}

// Options returns the option catalog the dispatcher searches.
func (d *Dispatcher) Options() *catalog.OptionCatalog { return d.options }

// API returns the API catalog the dispatcher searches.
func (d *Dispatcher) API() *catalog.APICatalog { return d.api }
