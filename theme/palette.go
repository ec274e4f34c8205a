// Copyright © 2026 The mpvedit authors

// Package theme maps a design-system colour palette onto the editor's
// colour slots.
package theme

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// Palette holds the design-system roles the editor derives its colours
// from.
type Palette struct {
	Surface                 Color
	SurfaceContainerHighest Color
	SurfaceVariant          Color
	OnSurface               Color
	OnSurfaceVariant        Color
	Primary                 Color
	PrimaryContainer        Color
	OutlineVariant          Color
}

// Light is the baseline light palette.
func Light() Palette {
	return Palette{
		Surface:                 MustParseHex("#FEF7FF"),
		SurfaceContainerHighest: MustParseHex("#E6E0E9"),
		SurfaceVariant:          MustParseHex("#E7E0EC"),
		OnSurface:               MustParseHex("#1D1B20"),
		OnSurfaceVariant:        MustParseHex("#49454F"),
		Primary:                 MustParseHex("#6750A4"),
		PrimaryContainer:        MustParseHex("#EADDFF"),
		OutlineVariant:          MustParseHex("#CAC4D0"),
	}
}

// Dark is the baseline dark palette.
func Dark() Palette {
	return Palette{
		Surface:                 MustParseHex("#141218"),
		SurfaceContainerHighest: MustParseHex("#36343B"),
		SurfaceVariant:          MustParseHex("#49454F"),
		OnSurface:               MustParseHex("#E6E0E9"),
		OnSurfaceVariant:        MustParseHex("#CAC4D0"),
		Primary:                 MustParseHex("#D0BCFF"),
		PrimaryContainer:        MustParseHex("#4F378B"),
		OutlineVariant:          MustParseHex("#49454F"),
	}
}

// roles lists the palette keys accepted in palette files.
func (p *Palette) roles() []struct {
	key string
	dst *Color
} {
	return []struct {
		key string
		dst *Color
	}{
		{"surface", &p.Surface},
		{"surface-container-highest", &p.SurfaceContainerHighest},
		{"surface-variant", &p.SurfaceVariant},
		{"on-surface", &p.OnSurface},
		{"on-surface-variant", &p.OnSurfaceVariant},
		{"primary", &p.Primary},
		{"primary-container", &p.PrimaryContainer},
		{"outline-variant", &p.OutlineVariant},
	}
}

// Roles returns the palette as role name → colour, in a fixed order.
func (p Palette) Roles() [][2]string {
	var out [][2]string
	for _, r := range p.roles() {
		out = append(out, [2]string{r.key, r.dst.Hex()})
	}
	return out
}

// LoadPalette overlays the roles found in data onto base. format is
// "yaml", "json" or "toml" (a file extension with or without the dot is
// accepted). Roles missing from data keep their base value.
func LoadPalette(base Palette, data []byte, format string) (Palette, error) {
	var parser koanf.Parser
	switch strings.ToLower(strings.TrimPrefix(format, ".")) {
	case "yml", "yaml":
		parser = yaml.Parser()
	case "json":
		parser = json.Parser()
	case "toml":
		parser = toml.Parser()
	default:
		return base, fmt.Errorf("unsupported palette format: %s", format)
	}

	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(data), parser); err != nil {
		return base, fmt.Errorf("failed to load palette: %w", err)
	}

	p := base
	for _, r := range p.roles() {
		if !k.Exists(r.key) {
			continue
		}
		c, err := ParseHex(k.String(r.key))
		if err != nil {
			return base, fmt.Errorf("palette role %s: %w", r.key, err)
		}
		*r.dst = c
	}
	return p, nil
}
