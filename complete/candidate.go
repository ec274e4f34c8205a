// Copyright © 2026 The mpvedit authors

// Package complete turns a cursor position in an MPV config file or Lua
// script into completion candidates drawn from the static catalogs.
package complete

// ItemKind classifies a completion candidate for display.
type ItemKind int

const (
	ItemIdentifier ItemKind = iota
	ItemKeyword
	ItemProperty
	ItemFunction
	ItemValue
)

func (k ItemKind) String() string {
	switch k {
	case ItemIdentifier:
		return "identifier"
	case ItemKeyword:
		return "keyword"
	case ItemProperty:
		return "property"
	case ItemFunction:
		return "function"
	case ItemValue:
		return "value"
	default:
		return "unknown"
	}
}

// MarshalText encodes the kind by name.
func (k ItemKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Candidate is a single suggested insertion.
type Candidate struct {
	Label  string   `json:"label" yaml:"label"`
	Detail string   `json:"detail,omitempty" yaml:"detail,omitempty"`
	Insert string   `json:"insert" yaml:"insert"`
	Kind   ItemKind `json:"kind" yaml:"kind"`
	// PrefixLen is the number of runes before the cursor that the
	// insertion replaces.
	PrefixLen int `json:"prefixLen" yaml:"prefixLen"`
}

// Sink accumulates candidates. Implementations are owned by the host; the
// completion code only ever appends.
type Sink interface {
	Add(c Candidate)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(Candidate)

// Add calls f(c).
func (f SinkFunc) Add(c Candidate) { f(c) }

// SliceSink collects candidates in order.
type SliceSink struct {
	Items []Candidate
}

// Add appends c.
func (s *SliceSink) Add(c Candidate) { s.Items = append(s.Items, c) }

// Labels returns the label of every collected candidate.
func (s *SliceSink) Labels() []string {
	labels := make([]string, len(s.Items))
	for i, c := range s.Items {
		labels[i] = c.Label
	}
	return labels
}
