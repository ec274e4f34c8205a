// Copyright © 2026 The mpvedit authors

package highlight

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mpvex/mpvedit/theme"
)

// Style is the rendering of one scope. A zero colour means unset.
type Style struct {
	Foreground theme.Color
	Background theme.Color
	Bold       bool
	Italic     bool
	Underline  bool
}

// Theme maps token scopes to styles.
type Theme struct {
	Name       string
	Foreground theme.Color
	Background theme.Color

	rules []themeRule
}

type themeRule struct {
	selector string
	style    Style
}

type themeFile struct {
	Name     string `json:"name"`
	Settings []struct {
		Scope    string `json:"scope"`
		Settings struct {
			Foreground string `json:"foreground"`
			Background string `json:"background"`
			FontStyle  string `json:"fontStyle"`
		} `json:"settings"`
	} `json:"settings"`
}

// ParseTheme validates and decodes a theme document. The theme is
// registered under name, not the name recorded in the document.
func ParseTheme(name string, data []byte) (*Theme, error) {
	if err := validate(themeSchema, data); err != nil {
		return nil, err
	}
	var f themeFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to decode theme: %w", err)
	}

	t := &Theme{Name: name}
	for _, s := range f.Settings {
		var st Style
		var err error
		if s.Settings.Foreground != "" {
			if st.Foreground, err = theme.ParseHex(s.Settings.Foreground); err != nil {
				return nil, fmt.Errorf("theme %s: %w", name, err)
			}
		}
		if s.Settings.Background != "" {
			if st.Background, err = theme.ParseHex(s.Settings.Background); err != nil {
				return nil, fmt.Errorf("theme %s: %w", name, err)
			}
		}
		for _, word := range strings.Fields(s.Settings.FontStyle) {
			switch word {
			case "bold":
				st.Bold = true
			case "italic":
				st.Italic = true
			case "underline":
				st.Underline = true
			}
		}

		if strings.TrimSpace(s.Scope) == "" {
			// global settings
			t.Foreground = st.Foreground
			t.Background = st.Background
			continue
		}
		for _, sel := range strings.Split(s.Scope, ",") {
			if sel = strings.TrimSpace(sel); sel != "" {
				t.rules = append(t.rules, themeRule{selector: sel, style: st})
			}
		}
	}
	return t, nil
}

// Style resolves the style for scope. The most specific matching selector
// wins; a selector matches its own scope and every scope nested below it.
func (t *Theme) Style(scope string) Style {
	best := -1
	var st Style
	for _, r := range t.rules {
		if !scopeMatches(r.selector, scope) || len(r.selector) <= best {
			continue
		}
		best = len(r.selector)
		st = r.style
	}
	if st.Foreground == 0 {
		st.Foreground = t.Foreground
	}
	return st
}

func scopeMatches(selector, scope string) bool {
	return scope == selector || strings.HasPrefix(scope, selector+".")
}

// Scheme returns the slot colours the theme itself defines.
func (t *Theme) Scheme() *theme.Scheme {
	s := theme.NewScheme()
	if t.Background != 0 {
		s.Set(theme.WholeBackground, t.Background)
	}
	if t.Foreground != 0 {
		s.Set(theme.TextNormal, t.Foreground)
	}
	return s
}
