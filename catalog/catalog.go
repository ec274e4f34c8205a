// Copyright © 2026 The mpvedit authors

// Package catalog holds the static MPV reference data used for completion:
// configuration-file options, the Lua scripting API and the list of
// observable property names.
//
// Catalogs are built once, on first access, and never change afterwards.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mpvex/mpvedit/memo"
)

// Category names a semantic group of catalog entries.
type Category string

// Option categories, in display order.
const (
	General    Category = "general"
	Video      Category = "video"
	Audio      Category = "audio"
	Subtitle   Category = "subtitle"
	OSD        Category = "osd"
	Cache      Category = "cache"
	HDR        Category = "hdr"
	GPUBackend Category = "gpu-backend"
	Screenshot Category = "screenshot"
	Window     Category = "window"
	Input      Category = "input"
)

// API categories, in display order.
const (
	Core         Category = "core"
	Log          Category = "log"
	Utility      Category = "utility"
	OptionReader Category = "option-reader"
	Snippet      Category = "snippet"
)

// ConfigOption is a single mpv.conf option.
type ConfigOption struct {
	Key         string
	Description string
	Default     string
}

// MatchKey returns the option key.
func (o ConfigOption) MatchKey() string { return o.Key }

// MatchDescription returns the option description.
func (o ConfigOption) MatchDescription() string { return o.Description }

// APIEntry is a single function or snippet from the MPV Lua API.
type APIEntry struct {
	Name        string
	Signature   string
	Description string
}

// MatchKey returns the API name.
func (e APIEntry) MatchKey() string { return e.Name }

// MatchDescription returns the API description.
func (e APIEntry) MatchDescription() string { return e.Description }

// Group is an ordered run of entries sharing a category.
type Group[E any] struct {
	Category Category
	Entries  []E
}

// OptionCatalog is the immutable catalog of configuration options.
type OptionCatalog struct {
	groups []Group[ConfigOption]
	all    []ConfigOption
	index  map[string]int
}

// APICatalog is the immutable catalog of Lua API entries plus the flat list
// of observable property names.
type APICatalog struct {
	groups     []Group[APIEntry]
	all        []APIEntry
	index      map[string]int
	properties []string
}

var (
	options = memo.New(func() *OptionCatalog { return NewOptionCatalog(optionGroups()) })
	api     = memo.New(func() *APICatalog { return NewAPICatalog(apiGroups(), observableProperties()) })
)

// Options returns the process-wide option catalog.
func Options() *OptionCatalog { return options.Get() }

// API returns the process-wide Lua API catalog.
func API() *APICatalog { return api.Get() }

// NewOptionCatalog builds a catalog from groups. The groups are copied.
func NewOptionCatalog(groups []Group[ConfigOption]) *OptionCatalog {
	c := &OptionCatalog{index: make(map[string]int)}
	for _, g := range groups {
		entries := append([]ConfigOption(nil), g.Entries...)
		c.groups = append(c.groups, Group[ConfigOption]{Category: g.Category, Entries: entries})
		for _, o := range entries {
			if _, ok := c.index[o.Key]; !ok {
				c.index[o.Key] = len(c.all)
			}
			c.all = append(c.all, o)
		}
	}
	return c
}

// NewAPICatalog builds a catalog from groups and a property list. Both are
// copied.
func NewAPICatalog(groups []Group[APIEntry], properties []string) *APICatalog {
	c := &APICatalog{index: make(map[string]int)}
	for _, g := range groups {
		entries := append([]APIEntry(nil), g.Entries...)
		c.groups = append(c.groups, Group[APIEntry]{Category: g.Category, Entries: entries})
		for _, e := range entries {
			if _, ok := c.index[e.Name]; !ok {
				c.index[e.Name] = len(c.all)
			}
			c.all = append(c.all, e)
		}
	}
	c.properties = append([]string(nil), properties...)
	return c
}

// Groups returns the option groups in category order. Callers must not
// modify the returned slices.
func (c *OptionCatalog) Groups() []Group[ConfigOption] { return c.groups }

// All returns every option in catalog order. Callers must not modify the
// returned slice.
func (c *OptionCatalog) All() []ConfigOption { return c.all }

// Len returns the number of options.
func (c *OptionCatalog) Len() int { return len(c.all) }

// Lookup finds an option by key. A "no-" prefixed key resolves to the
// positive option unless the negated form is itself an entry.
func (c *OptionCatalog) Lookup(key string) (ConfigOption, bool) {
	if i, ok := c.index[key]; ok {
		return c.all[i], true
	}
	if rest, ok := strings.CutPrefix(key, "no-"); ok {
		if i, ok := c.index[rest]; ok {
			return c.all[i], true
		}
	}
	return ConfigOption{}, false
}

// Validate reports empty or duplicate keys.
func (c *OptionCatalog) Validate() error {
	keys := make([]string, len(c.all))
	for i, o := range c.all {
		keys[i] = o.Key
	}
	return validateNames("option", keys)
}

// Groups returns the API groups in category order.
func (c *APICatalog) Groups() []Group[APIEntry] { return c.groups }

// All returns every API entry in catalog order.
func (c *APICatalog) All() []APIEntry { return c.all }

// Len returns the number of API entries.
func (c *APICatalog) Len() int { return len(c.all) }

// Properties returns the observable property names.
func (c *APICatalog) Properties() []string { return c.properties }

// Lookup finds an API entry by name.
func (c *APICatalog) Lookup(name string) (APIEntry, bool) {
	if i, ok := c.index[name]; ok {
		return c.all[i], true
	}
	return APIEntry{}, false
}

// HasProperty reports whether name is an observable property.
func (c *APICatalog) HasProperty(name string) bool {
	for _, p := range c.properties {
		if p == name {
			return true
		}
	}
	return false
}

// Validate reports empty or duplicate API names and duplicate properties.
func (c *APICatalog) Validate() error {
	names := make([]string, len(c.all))
	for i, e := range c.all {
		names[i] = e.Name
	}
	return errors.Join(
		validateNames("api entry", names),
		validateNames("observable property", c.properties),
	)
}

func validateNames(what string, names []string) error {
	var errs []error
	seen := make(map[string]bool, len(names))
	for i, n := range names {
		if n == "" {
			errs = append(errs, fmt.Errorf("%s %d: empty name", what, i))
			continue
		}
		if seen[n] {
			errs = append(errs, fmt.Errorf("%s %q: duplicate", what, n))
		}
		seen[n] = true
	}
	return errors.Join(errs...)
}
