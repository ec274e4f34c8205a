// Copyright © 2026 The mpvedit authors

package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mpvex/mpvedit/logger"
)

var cfgFile string

// errProblems signals that a command reported errors it already printed.
var errProblems = errors.New("problems found")

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "mpvedit",
	Short: "mpvedit: completion and tooling for mpv config files and Lua scripts",
	Long: `mpvedit provides prefix completion, hover documentation, highlighting and
checks for mpv configuration files (mpv.conf, input.conf) and mpv Lua
scripts.

Getting started:
  mpvedit complete --text 'cache'        Complete an option key
  mpvedit complete scripts/osd.lua -l 3  Complete at the end of line 3
  mpvedit catalog video                  Browse options mentioning "video"
  mpvedit catalog --kind lua mp.osd      Browse the Lua API
  mpvedit check ~/.config/mpv/...        Check every .conf file
  mpvedit highlight mpv.conf             Print a file with syntax colours
  mpvedit theme --dark                   Show the editor colour slots
  mpvedit repl mpv.conf                  Edit a file line by line
  mpvedit lsp                            Run the language server

Files ending in .conf or .config are treated as config files; everything
else is treated as a Lua script.

Configuration is read from $HOME/.mpvedit.yaml (or --config). Every flag
can also be set through an MPVEDIT_ environment variable, for example
MPVEDIT_LOG_LEVEL=debug or MPVEDIT_COLOR=never.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errProblems) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.SilenceErrors = true
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.mpvedit.yaml)")
	rootCmd.PersistentFlags().String("color", "auto",
		`Control colored output: "auto", "always", or "never".`)
	rootCmd.PersistentFlags().String("log-level", "info",
		"Log level: debug, info, warn or error.")
	rootCmd.PersistentFlags().String("palette", "",
		"Palette file (yaml, json or toml) overriding design-system colour roles.")
	rootCmd.PersistentFlags().Bool("dark", false,
		"Start from the dark palette instead of the light one.")

	for _, name := range []string{"color", "log-level", "palette", "dark"} {
		_ = viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name))
	}
	viper.SetDefault("color", "auto")
	viper.SetDefault("log-level", "info")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		if err == nil {
			// Search config in home directory with name ".mpvedit" (without extension).
			viper.AddConfigPath(home)
			viper.SetConfigName(".mpvedit")
		}
	}

	viper.SetEnvPrefix("MPVEDIT")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	err := viper.ReadInConfig()

	log := logger.New(viper.GetString("log-level"), os.Stderr)
	logger.SetDefault(log)
	if err == nil {
		log.Debug().Str("file", viper.ConfigFileUsed()).Msg("Using config file")
	} else if cfgFile != "" {
		log.Warn().Err(err).Str("file", cfgFile).Msg("Config file not read")
	}
}
