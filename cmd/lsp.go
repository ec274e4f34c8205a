// Copyright © 2026 The mpvedit authors

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple" // commonlog backend for glsp

	"github.com/mpvex/mpvedit/lsp"
)

// LSPCommand creates the "lsp" cobra command with optional embedder
// configuration. Embedders can pass WithRegistry or WithDispatcher to serve
// custom grammars or catalogs.
func LSPCommand(opts ...Option) *cobra.Command {
	cfg := newCmdConfig(opts)

	var (
		stdio bool
		port  int
	)

	cmd := &cobra.Command{
		Use:   "lsp [flags]",
		Short: "Start the mpvedit Language Server Protocol server",
		Long: `Start an LSP server for mpv config files and Lua scripts.

The language server provides completion from the option and Lua API
catalogs, hover documentation, semantic tokens, and diagnostics for
config files.

Transport modes:
  --stdio      Use stdin/stdout for LSP communication (default)
  --port N     Listen for an LSP client on TCP port N

Examples:
  mpvedit lsp                        Start with stdio transport
  mpvedit lsp --stdio                Same as above (explicit)
  mpvedit lsp --port 7998            Start with TCP on port 7998

Editor configuration:
  Configure a generic LSP client to run "mpvedit lsp --stdio" for
  mpv.conf, input.conf and files under ~/.config/mpv/scripts.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			commonlog.Configure(commonlogVerbosity(viper.GetString("log-level")), nil)

			log := cfg.resolveLogger()
			srv := lsp.New(
				lsp.WithRegistry(cfg.resolveRegistry()),
				lsp.WithDispatcher(cfg.resolveDispatcher()),
				lsp.WithLogger(log),
			)

			if !stdio && port > 0 {
				addr := fmt.Sprintf("localhost:%d", port)
				log.Info().Str("addr", addr).Msg("LSP server listening")
				if err := srv.RunTCP(addr); err != nil {
					return fmt.Errorf("lsp server error: %w", err)
				}
				return nil
			}
			if err := srv.RunStdio(); err != nil {
				return fmt.Errorf("lsp server error: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&stdio, "stdio", false,
		"Use stdin/stdout for LSP communication (default behavior)")
	cmd.Flags().IntVar(&port, "port", 0,
		"TCP port for LSP server (use instead of --stdio)")

	return cmd
}

// commonlogVerbosity maps a log level name to glsp's log verbosity.
func commonlogVerbosity(level string) int {
	switch level {
	case "debug", "trace":
		return 2
	case "info":
		return 1
	default:
		return 0
	}
}

func init() {
	rootCmd.AddCommand(LSPCommand())
}
