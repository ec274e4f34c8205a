// Copyright © 2026 The mpvedit authors

package complete

import (
	"iter"
	"strings"

	"github.com/mpvex/mpvedit/catalog"
)

// PropertyDetail is the description attached to observable property
// candidates.
const PropertyDetail = "MPV observable property"

// Entry is anything the matcher can filter.
type Entry interface {
	MatchKey() string
	MatchDescription() string
}

// Match yields, in catalog order, every entry whose key or description
// contains prefix, ignoring case. An empty prefix matches everything. The
// returned sequence holds no state and may be ranged over repeatedly.
func Match[E Entry](prefix string, entries []E) iter.Seq[E] {
	lower := strings.ToLower(prefix)
	return func(yield func(E) bool) {
		for _, e := range entries {
			if !contains(e.MatchKey(), lower) && !contains(e.MatchDescription(), lower) {
				continue
			}
			if !yield(e) {
				return
			}
		}
	}
}

// MatchProperties yields the property names containing prefix, ignoring
// case. Properties carry no description, so only the name is compared.
func MatchProperties(prefix string, properties []string) iter.Seq[string] {
	lower := strings.ToLower(prefix)
	return func(yield func(string) bool) {
		for _, p := range properties {
			if !contains(p, lower) {
				continue
			}
			if !yield(p) {
				return
			}
		}
	}
}

func contains(s, lowerSub string) bool {
	return strings.Contains(strings.ToLower(s), lowerSub)
}

// OptionLabel returns "key=default", or just the key when there is no
// default.
func OptionLabel(o catalog.ConfigOption) string {
	if o.Default == "" {
		return o.Key
	}
	return o.Key + "=" + o.Default
}

// OptionCandidate builds the candidate for a config option. The inserted
// text is the label, default value included.
func OptionCandidate(o catalog.ConfigOption, prefixLen int) Candidate {
	label := OptionLabel(o)
	return Candidate{
		Label:     label,
		Detail:    o.Description,
		Insert:    label,
		Kind:      ItemProperty,
		PrefixLen: prefixLen,
	}
}

// APICandidate builds the candidate for a Lua API entry.
func APICandidate(e catalog.APIEntry, prefixLen int) Candidate {
	return Candidate{
		Label:     e.Name,
		Detail:    e.Description,
		Insert:    e.Name,
		Kind:      ItemFunction,
		PrefixLen: prefixLen,
	}
}

// PropertyCandidate builds the candidate for an observable property name.
func PropertyCandidate(name string, prefixLen int) Candidate {
	return Candidate{
		Label:     name,
		Detail:    PropertyDetail,
		Insert:    name,
		Kind:      ItemValue,
		PrefixLen: prefixLen,
	}
}
