// Copyright © 2026 The mpvedit authors

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mpvex/mpvedit/conf"
	"github.com/mpvex/mpvedit/diagnostic"
)

// CheckCommand creates the "check" cobra command.
func CheckCommand(opts ...Option) *cobra.Command {
	cfg := newCmdConfig(opts)

	var (
		excludes []string
		quiet    bool
	)

	cmd := &cobra.Command{
		Use:   "check [flags] [files...]",
		Short: "Check mpv config files for syntax errors and unknown options",
		Long: `Check mpv config files. Syntax errors (a profile header without its
closing bracket, text after an option name, an option line starting with
'=') are errors; keys missing from the option catalog are notes, with a
suggestion when a known option extends the key.

With no files, reads from stdin. A path ending in "/..." checks every .conf
and .config file below that directory.

Exits with status 1 when any error is reported or a file cannot be read.
Notes alone do not fail the check.

Examples:
  mpvedit check ~/.config/mpv/mpv.conf
  mpvedit check ~/.config/mpv/... --exclude script-opts
  cat mpv.conf | mpvedit check`,
		RunE: func(cmd *cobra.Command, args []string) error {
			options := cfg.resolveDispatcher().Options()
			r := newRenderer()
			stderr := cmd.ErrOrStderr()

			var all []diagnostic.Diagnostic
			if len(args) == 0 {
				src, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("reading stdin: %w", err)
				}
				content := string(src)
				r.SourceReader = func(string) ([]byte, error) { return src, nil }
				all = conf.Check("<stdin>", content, options)
			} else {
				paths, err := expandArgs(args, excludes)
				if err != nil {
					return err
				}
				for _, path := range paths {
					src, err := os.ReadFile(path) //nolint:gosec // CLI tool reads user-specified files
					if err != nil {
						return fmt.Errorf("%s: %w", path, err)
					}
					all = append(all, conf.Check(path, string(src), options)...)
				}
			}

			if !quiet {
				_ = r.RenderAll(stderr, all)
			}
			_ = r.Summary(stderr, all)
			if diagnostic.HasErrors(all) {
				return errProblems
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&excludes, "exclude", nil,
		"Glob pattern for files to exclude (may be repeated).")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Print only the summary line.")

	return cmd
}

func init() {
	rootCmd.AddCommand(CheckCommand())
}
