// Copyright © 2026 The mpvedit authors

package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/viper"

	"github.com/mpvex/mpvedit/diagnostic"
	"github.com/mpvex/mpvedit/theme"
)

func colorMode() diagnostic.ColorMode {
	mode, err := diagnostic.ParseColorMode(viper.GetString("color"))
	if err != nil {
		return diagnostic.ColorAuto
	}
	return mode
}

func newRenderer() *diagnostic.Renderer {
	return &diagnostic.Renderer{Color: colorMode()}
}

// styleRenderer returns a lipgloss renderer for w honouring --color.
func styleRenderer(w io.Writer) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(colorMode().Profile(w))
	return r
}

// loadPalette returns the palette selected by --dark and --palette.
func loadPalette() (theme.Palette, error) {
	base := theme.Light()
	if viper.GetBool("dark") {
		base = theme.Dark()
	}
	path := viper.GetString("palette")
	if path == "" {
		return base, nil
	}
	data, err := os.ReadFile(path) //nolint:gosec // CLI tool reads user-specified files
	if err != nil {
		return base, fmt.Errorf("reading palette: %w", err)
	}
	p, err := theme.LoadPalette(base, data, strings.TrimPrefix(filepath.Ext(path), "."))
	if err != nil {
		return base, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}
