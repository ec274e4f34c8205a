// Copyright © 2026 The mpvedit authors

package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mpvex/mpvedit/complete"
)

// completionResult is the machine-readable output of the complete command.
type completionResult struct {
	Kind       complete.FileKind    `json:"kind" yaml:"kind"`
	Prefix     string               `json:"prefix" yaml:"prefix"`
	Candidates []complete.Candidate `json:"candidates" yaml:"candidates"`
}

// CompleteCommand creates the "complete" cobra command.
func CompleteCommand(opts ...Option) *cobra.Command {
	cfg := newCmdConfig(opts)

	var (
		text   string
		kind   string
		line   int
		col    int
		format string
	)

	cmd := &cobra.Command{
		Use:   "complete [flags] [file]",
		Short: "Print completion candidates for a cursor position",
		Long: `Print the completion candidates an editor would offer at a cursor
position in an mpv config file or Lua script.

The source is either a file argument or --text. Lines are numbered from 1;
--col is the cursor's rune offset within the line and defaults to the end
of the line. The file kind comes from the file name unless --kind is
given; --text defaults to config.

Output formats:
  text   one candidate per line: label, kind, detail (default)
  json   {"kind", "prefix", "candidates": [...]}
  yaml   the same document as yaml

Examples:
  mpvedit complete --text 'cache'
  mpvedit complete --kind lua --text 'mp.get' --format json
  mpvedit complete scripts/osd.lua --line 12 --col 8`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, path, err := completionSource(text, args)
			if err != nil {
				return err
			}
			fk := complete.KindConfig
			switch {
			case kind != "":
				fk = complete.ParseFileKind(kind)
			case path != "":
				fk = complete.KindForPath(path)
			}

			ctx, err := cursor(content, line, col)
			if err != nil {
				return err
			}

			var sink complete.SliceSink
			cfg.resolveRegistry().Wrapped(fk, cfg.resolveDispatcher()).Complete(ctx, &sink)
			cfg.resolveLogger().Debug().
				Str("kind", string(fk)).
				Str("prefix", ctx.Prefix()).
				Int("items", len(sink.Items)).
				Msg("Completion")

			res := completionResult{Kind: fk, Prefix: ctx.Prefix(), Candidates: sink.Items}
			if res.Candidates == nil {
				res.Candidates = []complete.Candidate{}
			}
			return writeCompletion(cmd.OutOrStdout(), format, res)
		},
	}

	cmd.Flags().StringVarP(&text, "text", "t", "", "Complete within this text instead of a file")
	cmd.Flags().StringVarP(&kind, "kind", "k", "", `File kind: "conf" or "lua"`)
	cmd.Flags().IntVarP(&line, "line", "l", 0, "Cursor line, 1-based (default: last line)")
	cmd.Flags().IntVarP(&col, "col", "c", -1, "Cursor rune offset within the line (default: end of line)")
	cmd.Flags().StringVarP(&format, "format", "f", "text", `Output format: "text", "json" or "yaml"`)

	return cmd
}

func completionSource(text string, args []string) (string, string, error) {
	if text != "" {
		if len(args) > 0 {
			return "", "", errors.New("use either --text or a file, not both")
		}
		return text, "", nil
	}
	if len(args) == 0 {
		return "", "", errors.New("nothing to complete: pass a file or --text")
	}
	data, err := os.ReadFile(args[0]) //nolint:gosec // CLI tool reads user-specified files
	if err != nil {
		return "", "", err
	}
	return string(data), args[0], nil
}

// cursor builds the completion context for a 1-based line (0 meaning the
// last line) and a rune column (negative meaning end of line).
func cursor(content string, line, col int) (complete.Context, error) {
	lines := strings.Split(content, "\n")
	if len(lines) > 1 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if line == 0 {
		line = len(lines)
	}
	if line < 1 || line > len(lines) {
		return complete.Context{}, fmt.Errorf("line %d out of range (1-%d)", line, len(lines))
	}
	n := len([]rune(strings.TrimSuffix(lines[line-1], "\r")))
	if col < 0 || col > n {
		col = n
	}
	return complete.Context{Content: content, Line: line - 1, Column: col}, nil
}

func writeCompletion(w io.Writer, format string, res completionResult) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(res); err != nil {
			return err
		}
		return enc.Close()
	case "text", "":
		width := 0
		for _, c := range res.Candidates {
			width = max(width, runewidth.StringWidth(c.Label))
		}
		for _, c := range res.Candidates {
			label := runewidth.FillRight(c.Label, width)
			detail := ""
			if c.Detail != "" {
				detail = "  " + c.Detail
			}
			row := strings.TrimRight(fmt.Sprintf("%s  %-10s%s", label, c.Kind, detail), " ")
			if _, err := fmt.Fprintln(w, row); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q: want text, json or yaml", format)
	}
}

func init() {
	rootCmd.AddCommand(CompleteCommand())
}
