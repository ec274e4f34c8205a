// Copyright © 2026 The mpvedit authors

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mpvex/mpvedit/complete"
	"github.com/mpvex/mpvedit/repl"
)

// ReplCommand creates the "repl" cobra command.
func ReplCommand(opts ...Option) *cobra.Command {
	cfg := newCmdConfig(opts)

	var kind string

	cmd := &cobra.Command{
		Use:   "repl [flags] [file]",
		Short: "Edit an mpv config file or Lua script line by line",
		Long: `Start an interactive line editor. Each line you enter is appended to the
buffer; press Tab to complete option keys, Lua API names and observable
properties. Config lines are checked as they are entered.

Candidates that match on their description rather than their name cannot
be inserted by the line editor and are listed as hints instead.

Commands:
  :p          print the buffer with line numbers
  :c          check the whole buffer
  :d          drop the last line
  :w [file]   write the buffer (default: the file given on the command line)
  :wq [file]  write and quit
  :q          quit without writing

Example session:
  conf> vo=gpu-next
  conf> cach<Tab>
  conf> cache=auto
  conf> :w ~/.config/mpv/mpv.conf
  wrote 2 lines to /home/me/.config/mpv/mpv.conf`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ropts := []repl.Option{
				repl.WithStderr(cmd.ErrOrStderr()),
				repl.WithColor(colorMode()),
				repl.WithRegistry(cfg.resolveRegistry()),
				repl.WithDispatcher(cfg.resolveDispatcher()),
				repl.WithLogger(cfg.resolveLogger()),
			}
			fk := complete.KindConfig
			if len(args) > 0 {
				ropts = append(ropts, repl.WithFile(args[0]))
				fk = complete.KindForPath(args[0])
			}
			if kind != "" {
				fk = complete.ParseFileKind(kind)
				ropts = append(ropts, repl.WithKind(fk))
			}
			return repl.Run(string(fk)+"> ", ropts...)
		},
	}

	cmd.Flags().StringVarP(&kind, "kind", "k", "", `File kind: "conf" or "lua" (default: from the file name)`)

	return cmd
}

func init() {
	rootCmd.AddCommand(ReplCommand())
}
