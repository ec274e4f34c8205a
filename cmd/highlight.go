// Copyright © 2026 The mpvedit authors

package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/mpvex/mpvedit/complete"
	"github.com/mpvex/mpvedit/highlight"
)

// HighlightCommand creates the "highlight" cobra command.
func HighlightCommand(opts ...Option) *cobra.Command {
	cfg := newCmdConfig(opts)

	var (
		name   string
		tokens bool
	)

	cmd := &cobra.Command{
		Use:   "highlight [flags] file",
		Short: "Print a file coloured by its syntax theme",
		Long: `Tokenize a config file or Lua script with its grammar and print it
coloured by the matching theme (conf_theme for config files, lua_theme for
scripts, or --theme).

--tokens prints one token per line instead: line:start-end, the scope and
the token text. Columns are byte offsets.

Examples:
  mpvedit highlight ~/.config/mpv/mpv.conf
  mpvedit highlight --tokens scripts/osd.lua`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			data, err := os.ReadFile(path) //nolint:gosec // CLI tool reads user-specified files
			if err != nil {
				return err
			}
			reg := cfg.resolveRegistry()
			g, ok := reg.Grammar(reg.ScopeForPath(path))
			if !ok {
				err := reg.Err()
				if err == nil {
					err = errors.New("no grammar")
				}
				return fmt.Errorf("%s: %w", path, err)
			}
			lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
			out := cmd.OutOrStdout()
			if tokens {
				return writeTokens(out, g, lines)
			}

			if name == "" {
				name = highlight.ThemeForKind(complete.KindForPath(path))
			}
			t, ok := reg.Theme(name)
			if !ok {
				return fmt.Errorf("%w: %s", highlight.ErrUnknownTheme, name)
			}
			return writeHighlighted(out, styleRenderer(out), g, t, lines)
		},
	}

	cmd.Flags().StringVar(&name, "theme", "", "Syntax theme (default: by file kind)")
	cmd.Flags().BoolVar(&tokens, "tokens", false, "Print tokens instead of coloured text")

	return cmd
}

func writeTokens(w io.Writer, g *highlight.Grammar, lines []string) error {
	ew := &errWriter{w: w}
	for i, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		for _, tok := range g.Tokenize(line) {
			ew.printf("%d:%d-%d %s %q\n", i+1, tok.Start, tok.End, tok.Scope, tok.Text(line))
		}
	}
	return ew.err
}

func writeHighlighted(w io.Writer, r *lipgloss.Renderer, g *highlight.Grammar, t *highlight.Theme, lines []string) error {
	ew := &errWriter{w: w}
	for _, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		var sb strings.Builder
		pos := 0
		for _, tok := range g.Tokenize(line) {
			if tok.Start < pos {
				continue
			}
			sb.WriteString(line[pos:tok.Start])
			sb.WriteString(styleFor(r, t.Style(tok.Scope)).Render(tok.Text(line)))
			pos = tok.End
		}
		sb.WriteString(line[pos:])
		ew.printf("%s\n", sb.String())
	}
	return ew.err
}

func styleFor(r *lipgloss.Renderer, st highlight.Style) lipgloss.Style {
	s := r.NewStyle().TabWidth(lipgloss.NoTabConversion)
	if st.Foreground != 0 {
		s = s.Foreground(lipgloss.Color(st.Foreground.RGBHex()))
	}
	if st.Background != 0 {
		s = s.Background(lipgloss.Color(st.Background.RGBHex()))
	}
	return s.Bold(st.Bold).Italic(st.Italic).Underline(st.Underline)
}

func init() {
	rootCmd.AddCommand(HighlightCommand())
}
