// Copyright © 2026 The mpvedit authors

package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mpvex/mpvedit/highlight"
	"github.com/mpvex/mpvedit/theme"
)

type colorEntry struct {
	Name  string `json:"name" yaml:"name"`
	Color string `json:"color" yaml:"color"`
}

type themeListing struct {
	Theme   string       `json:"theme" yaml:"theme"`
	Palette []colorEntry `json:"palette" yaml:"palette"`
	Slots   []colorEntry `json:"slots" yaml:"slots"`
}

// ThemeCommand creates the "theme" cobra command.
func ThemeCommand(opts ...Option) *cobra.Command {
	cfg := newCmdConfig(opts)

	var (
		name   string
		format string
	)

	cmd := &cobra.Command{
		Use:   "theme [flags]",
		Short: "Show the editor colour slots derived from a palette",
		Long: `Print the palette roles and the editor colour slots they produce, with a
colour swatch for each.

The palette starts from the light or dark defaults (--dark) and takes
overrides from --palette, a yaml, json or toml file mapping role names to
#RRGGBB or #AARRGGBB colours:

  primary: "#6750A4"
  surface-variant: "#E7E0EC"

Slots not covered by the palette keep the colours of the active syntax
theme (--theme, default lua_theme).

Examples:
  mpvedit theme
  mpvedit theme --dark --format yaml
  mpvedit theme --palette ~/.config/mpvedit/palette.toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := loadPalette()
			if err != nil {
				return err
			}
			reg := cfg.resolveRegistry()
			if err := reg.EnsureReady(); err != nil {
				cfg.resolveLogger().Warn().Err(err).Msg("Syntax assets incomplete")
			}
			if name != "" {
				if err := reg.SetTheme(name); err != nil {
					return err
				}
			}
			active := ""
			if t, ok := reg.Theme(""); ok {
				active = t.Name
			}

			listing := themeListing{Theme: active}
			for _, r := range p.Roles() {
				listing.Palette = append(listing.Palette, colorEntry{Name: r[0], Color: r[1]})
			}
			scheme := reg.ColorScheme(p)
			for _, slot := range theme.Slots() {
				hex := ""
				if c, ok := scheme.Get(slot); ok {
					hex = c.Hex()
				}
				listing.Slots = append(listing.Slots, colorEntry{Name: slot.String(), Color: hex})
			}

			out := cmd.OutOrStdout()
			switch format {
			case "json":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(listing)
			case "yaml":
				enc := yaml.NewEncoder(out)
				enc.SetIndent(2)
				if err := enc.Encode(listing); err != nil {
					return err
				}
				return enc.Close()
			case "text", "":
				return writeSwatches(out, listing, p.Surface)
			default:
				return fmt.Errorf("unknown format %q: want text, json or yaml", format)
			}
		},
	}

	cmd.Flags().StringVar(&name, "theme", "", fmt.Sprintf("Syntax theme: %q or %q", highlight.LuaTheme, highlight.ConfTheme))
	cmd.Flags().StringVarP(&format, "format", "f", "text", `Output format: "text", "json" or "yaml"`)

	return cmd
}

// writeSwatches prints each colour next to a swatch. Translucent colours
// are composited over bg so the swatch shows what the editor draws.
func writeSwatches(w io.Writer, listing themeListing, bg theme.Color) error {
	r := styleRenderer(w)
	width := 0
	for _, e := range append(listing.Palette, listing.Slots...) {
		width = max(width, runewidth.StringWidth(e.Name))
	}

	ew := &errWriter{w: w}
	section := func(title string, entries []colorEntry) {
		ew.printf("%s\n", title)
		for _, e := range entries {
			name := runewidth.FillRight(e.Name, width)
			if e.Color == "" {
				ew.printf("  %s  %-9s\n", name, "-")
				continue
			}
			c := theme.MustParseHex(e.Color)
			swatch := r.NewStyle().Background(lipgloss.Color(c.Over(bg).RGBHex())).Render("    ")
			ew.printf("  %s  %-9s  %s\n", name, e.Color, swatch)
		}
	}
	if listing.Theme != "" {
		ew.printf("theme %s\n\n", listing.Theme)
	}
	section("palette", listing.Palette)
	ew.printf("\n")
	section("slots", listing.Slots)
	return ew.err
}

func init() {
	rootCmd.AddCommand(ThemeCommand())
}
