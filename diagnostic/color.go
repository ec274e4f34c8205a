// Copyright © 2026 The mpvedit authors

package diagnostic

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// ColorMode controls when ANSI color codes are used.
type ColorMode int

const (
	ColorAuto   ColorMode = iota // detect based on terminal and NO_COLOR
	ColorAlways                  // always use colors
	ColorNever                   // never use colors
)

func (m ColorMode) String() string {
	switch m {
	case ColorAlways:
		return "always"
	case ColorNever:
		return "never"
	default:
		return "auto"
	}
}

// ParseColorMode accepts "auto", "always" or "never".
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	default:
		return ColorAuto, fmt.Errorf("invalid color mode %q: want auto, always or never", s)
	}
}

// Profile resolves the mode to a termenv profile for output w.
func (m ColorMode) Profile(w io.Writer) termenv.Profile {
	switch m {
	case ColorAlways:
		return termenv.ANSI256
	case ColorNever:
		return termenv.Ascii
	default:
		if termenv.EnvNoColor() || !isTerminal(fileFromWriter(w)) {
			return termenv.Ascii
		}
		return termenv.EnvColorProfile()
	}
}

type paint func(string) string

func plain(s string) string { return s }

// palette holds the styles used for diagnostic output.
type palette struct {
	bold     paint
	yellow   paint
	boldRed  paint
	boldBlue paint
	boldCyan paint
}

var noPalette = palette{
	bold:     plain,
	yellow:   plain,
	boldRed:  plain,
	boldBlue: plain,
	boldCyan: plain,
}

func newPalette(profile termenv.Profile) palette {
	if profile == termenv.Ascii {
		return noPalette
	}
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(profile)
	style := func(bold bool, color string) paint {
		s := r.NewStyle().Bold(bold)
		if color != "" {
			s = s.Foreground(lipgloss.Color(color))
		}
		return func(text string) string {
			if text == "" {
				return ""
			}
			return s.Render(text)
		}
	}
	return palette{
		bold:     style(true, ""),
		yellow:   style(false, "3"),
		boldRed:  style(true, "1"),
		boldBlue: style(true, "4"),
		boldCyan: style(true, "6"),
	}
}

// choosePalette selects the palette for the mode and output writer.
func choosePalette(mode ColorMode, w io.Writer) palette {
	return newPalette(mode.Profile(w))
}

// isTerminal reports whether f is connected to a terminal.
func isTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// fileFromWriter extracts an *os.File from a writer for terminal
// detection. Returns nil if the writer is not backed by a file.
func fileFromWriter(w io.Writer) *os.File {
	if f, ok := w.(*os.File); ok {
		return f
	}
	return nil
}
