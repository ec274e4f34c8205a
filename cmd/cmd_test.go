// Copyright © 2026 The mpvedit authors

package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/mpvex/mpvedit/complete"
	"github.com/mpvex/mpvedit/highlight"
	"github.com/mpvex/mpvedit/logger"
)

func testOptions() []Option {
	return []Option{
		WithRegistry(highlight.NewRegistry(highlight.Assets(), nil)),
		WithDispatcher(complete.Default()),
		WithLogger(logger.Discard()),
	}
}

func executeCommand(t *testing.T, cmd *cobra.Command, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestCompleteCommand_Flags(t *testing.T) {
	cmd := CompleteCommand()
	assert.Equal(t, "complete [flags] [file]", cmd.Use)
	for _, name := range []string{"text", "kind", "line", "col", "format"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "missing flag: %s", name)
	}
}

func TestCompleteCommand_JSON(t *testing.T) {
	out, _, err := executeCommand(t, CompleteCommand(testOptions()...), "",
		"--text", "# video\ncache", "--format", "json")
	require.NoError(t, err)

	var res struct {
		Kind       string `json:"kind"`
		Prefix     string `json:"prefix"`
		Candidates []struct {
			Label     string `json:"label"`
			Insert    string `json:"insert"`
			Kind      string `json:"kind"`
			PrefixLen int    `json:"prefixLen"`
		} `json:"candidates"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "conf", res.Kind)
	assert.Equal(t, "cache", res.Prefix)
	require.NotEmpty(t, res.Candidates)

	var found bool
	for _, c := range res.Candidates {
		if c.Label == "cache=auto" {
			found = true
			assert.Equal(t, "cache=auto", c.Insert)
			assert.Equal(t, "property", c.Kind)
			assert.Equal(t, 5, c.PrefixLen)
		}
	}
	assert.True(t, found, "cache=auto missing from %s", out)
}

func TestCompleteCommand_YAML(t *testing.T) {
	out, _, err := executeCommand(t, CompleteCommand(testOptions()...), "",
		"--kind", "lua", "--text", "mp.osd_mes", "--format", "yaml")
	require.NoError(t, err)

	var res completionYAML
	require.NoError(t, yaml.Unmarshal([]byte(out), &res))
	assert.Equal(t, "lua", res.Kind)
	require.Len(t, res.Candidates, 1)
	assert.Equal(t, "mp.osd_message", res.Candidates[0].Label)
	assert.Equal(t, "function", res.Candidates[0].Kind)
}

type completionYAML struct {
	Kind       string `yaml:"kind"`
	Candidates []struct {
		Label string `yaml:"label"`
		Kind  string `yaml:"kind"`
	} `yaml:"candidates"`
}

func TestCompleteCommand_TextFromFile(t *testing.T) {
	path := writeFile(t, "osd.lua", "local n = 0\nmp.osd_message(\"hi\")\n")
	out, _, err := executeCommand(t, CompleteCommand(testOptions()...), "",
		path, "--line", "2", "--col", "6")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.NotEmpty(t, lines)
	var row string
	for _, l := range lines {
		if strings.HasPrefix(l, "mp.osd_message ") {
			row = l
		}
	}
	require.NotEmpty(t, row, "mp.osd_message missing from:\n%s", out)
	assert.Contains(t, row, "function")
	assert.Contains(t, row, "Show OSD message")
}

func TestCompleteCommand_EmptyResult(t *testing.T) {
	out, _, err := executeCommand(t, CompleteCommand(testOptions()...), "",
		"--text", "volume=", "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"candidates": []`)
}

func TestCompleteCommand_Errors(t *testing.T) {
	_, _, err := executeCommand(t, CompleteCommand(testOptions()...), "")
	assert.ErrorContains(t, err, "nothing to complete")

	path := writeFile(t, "mpv.conf", "cache\n")
	_, _, err = executeCommand(t, CompleteCommand(testOptions()...), "", path, "--text", "x")
	assert.ErrorContains(t, err, "not both")

	_, _, err = executeCommand(t, CompleteCommand(testOptions()...), "", path, "--line", "5")
	assert.ErrorContains(t, err, "out of range")

	_, _, err = executeCommand(t, CompleteCommand(testOptions()...), "", "--text", "x", "--format", "xml")
	assert.ErrorContains(t, err, "unknown format")
}

func TestCursor(t *testing.T) {
	ctx, err := cursor("vo=gpu\ncache\n", 0, -1)
	require.NoError(t, err)
	assert.Equal(t, 1, ctx.Line)
	assert.Equal(t, 5, ctx.Column)

	ctx, err = cursor("vo=gpu\ncache", 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 0, ctx.Line)
	assert.Equal(t, 2, ctx.Column)

	ctx, err = cursor("título", 1, 100)
	require.NoError(t, err)
	assert.Equal(t, 6, ctx.Column)
}

func TestCatalogCommand_Filter(t *testing.T) {
	out, _, err := executeCommand(t, CatalogCommand(testOptions()...), "", "cache-secs")
	require.NoError(t, err)
	assert.Contains(t, out, "cache\n")
	assert.Contains(t, out, "cache-secs")
	assert.Contains(t, out, "Cache duration (seconds) [10]")
	assert.NotContains(t, out, "volume")
}

func TestCatalogCommand_JSON(t *testing.T) {
	out, _, err := executeCommand(t, CatalogCommand(testOptions()...), "",
		"--kind", "lua", "--format", "json", "osd_message")
	require.NoError(t, err)

	var listing catalogListing
	require.NoError(t, json.Unmarshal([]byte(out), &listing))
	assert.Equal(t, complete.KindScript, listing.Kind)
	require.Len(t, listing.Groups, 1)
	require.Len(t, listing.Groups[0].Entries, 1)
	e := listing.Groups[0].Entries[0]
	assert.Equal(t, "mp.osd_message", e.Name)
	assert.Equal(t, "mp.osd_message(text [, duration])", e.Signature)
	assert.Empty(t, listing.Properties)
}

func TestCatalogCommand_Properties(t *testing.T) {
	out, _, err := executeCommand(t, CatalogCommand(testOptions()...), "",
		"--kind", "lua", "--properties", "osd-")
	require.NoError(t, err)
	assert.Contains(t, out, "properties\n")
	assert.Contains(t, out, "osd-width")
	assert.Contains(t, out, "osd-height")
}

func TestCatalogCommand_Check(t *testing.T) {
	out, _, err := executeCommand(t, CatalogCommand(testOptions()...), "", "--check")
	require.NoError(t, err)
	assert.Contains(t, out, "options: ")
	assert.Contains(t, out, "api: ")
	assert.Contains(t, out, "entries ok")
}

func TestWriteListing_Wraps(t *testing.T) {
	listing := catalogListing{Groups: []catalogGroup{{
		Category: "video",
		Entries: []catalogEntry{{
			Name:        "vo",
			Description: "Video output driver used to present decoded frames on screen",
			Default:     "gpu",
		}},
	}}}
	var buf bytes.Buffer
	require.NoError(t, writeListing(&buf, listing, 40))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Greater(t, len(lines), 2)
	assert.Equal(t, "video", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "  vo  Video"), lines[1])
	for _, l := range lines[2:] {
		assert.True(t, strings.HasPrefix(l, "      "), "continuation %q not indented", l)
	}
	assert.Contains(t, buf.String(), "[gpu]")
}

func TestThemeCommand_YAML(t *testing.T) {
	out, _, err := executeCommand(t, ThemeCommand(testOptions()...), "", "--format", "yaml")
	require.NoError(t, err)

	var listing themeListing
	require.NoError(t, yaml.Unmarshal([]byte(out), &listing))
	assert.Equal(t, highlight.LuaTheme, listing.Theme)
	assert.Contains(t, out, "whole-background")
	require.NotEmpty(t, listing.Palette)
	assert.Equal(t, "primary", listing.Palette[5].Name)
}

func TestThemeCommand_PaletteFile(t *testing.T) {
	path := writeFile(t, "palette.yaml", "primary: \"#6750A4\"\n")
	viper.Set("palette", path)
	t.Cleanup(func() { viper.Set("palette", "") })

	out, _, err := executeCommand(t, ThemeCommand(testOptions()...), "", "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"#FF6750A4"`)
}

func TestThemeCommand_Text(t *testing.T) {
	viper.Set("color", "never")
	t.Cleanup(func() { viper.Set("color", "auto") })

	out, _, err := executeCommand(t, ThemeCommand(testOptions()...), "", "--theme", highlight.ConfTheme)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "theme "+highlight.ConfTheme+"\n"), out)
	assert.Contains(t, out, "palette\n")
	assert.Contains(t, out, "slots\n")
	assert.NotContains(t, out, "\x1b[")
}

func TestThemeCommand_UnknownTheme(t *testing.T) {
	_, _, err := executeCommand(t, ThemeCommand(testOptions()...), "", "--theme", "nope")
	assert.ErrorIs(t, err, highlight.ErrUnknownTheme)
}

func TestHighlightCommand_Tokens(t *testing.T) {
	path := writeFile(t, "osd.lua", "local x = 1\n")
	out, _, err := executeCommand(t, HighlightCommand(testOptions()...), "", "--tokens", path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.NotEmpty(t, lines)
	assert.Equal(t, `1:0-5 keyword.control.lua "local"`, lines[0])
}

func TestHighlightCommand_PlainWithoutColor(t *testing.T) {
	viper.Set("color", "never")
	t.Cleanup(func() { viper.Set("color", "auto") })

	src := "# audio\nvolume=50\n[hq]\n"
	path := writeFile(t, "mpv.conf", src)
	out, _, err := executeCommand(t, HighlightCommand(testOptions()...), "", path)
	require.NoError(t, err)
	assert.Equal(t, src, out)
}

func TestHighlightCommand_UnknownTheme(t *testing.T) {
	path := writeFile(t, "mpv.conf", "vo=gpu\n")
	_, _, err := executeCommand(t, HighlightCommand(testOptions()...), "", "--theme", "nope", path)
	assert.ErrorIs(t, err, highlight.ErrUnknownTheme)
}

func TestCheckCommand_Problems(t *testing.T) {
	viper.Set("color", "never")
	t.Cleanup(func() { viper.Set("color", "auto") })

	path := writeFile(t, "mpv.conf", "cach=yes\n[hq\n")
	_, stderr, err := executeCommand(t, CheckCommand(testOptions()...), "", path)
	assert.ErrorIs(t, err, errProblems)
	assert.Contains(t, stderr, "unknown option: cach")
	assert.Contains(t, stderr, "did you mean cache?")
	assert.Contains(t, stderr, path+":2:")
	assert.True(t, strings.HasSuffix(stderr, "1 error, 1 note\n"), stderr)
}

func TestCheckCommand_NotesOnly(t *testing.T) {
	viper.Set("color", "never")
	t.Cleanup(func() { viper.Set("color", "auto") })

	_, stderr, err := executeCommand(t, CheckCommand(testOptions()...), "volum=50\n", "--quiet")
	require.NoError(t, err)
	assert.Equal(t, "1 note\n", stderr)
}

func TestCheckCommand_Stdin(t *testing.T) {
	viper.Set("color", "never")
	t.Cleanup(func() { viper.Set("color", "auto") })

	_, stderr, err := executeCommand(t, CheckCommand(testOptions()...), "vo=gpu\n[hq\n")
	assert.ErrorIs(t, err, errProblems)
	assert.Contains(t, stderr, "<stdin>:2:")
	assert.Contains(t, stderr, "[hq")
}

func TestCheckCommand_Clean(t *testing.T) {
	path := writeFile(t, "mpv.conf", "# video\nvo=gpu\n[hq]\nprofile-desc=High quality\n")
	_, stderr, err := executeCommand(t, CheckCommand(testOptions()...), "", path)
	require.NoError(t, err)
	assert.Equal(t, "no problems\n", stderr)
}

func TestCheckCommand_Recursive(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "old"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "mpv.conf"), []byte("vo=gpu\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "old", "mpv.conf"), []byte("[broken\n"), 0o600))

	_, stderr, err := executeCommand(t, CheckCommand(testOptions()...), "", dir+"/...", "--exclude", "old")
	require.NoError(t, err)
	assert.Equal(t, "no problems\n", stderr)

	_, _, err = executeCommand(t, CheckCommand(testOptions()...), "", dir+"/...")
	assert.ErrorIs(t, err, errProblems)
}

func TestLSPCommand_Flags(t *testing.T) {
	cmd := LSPCommand()
	assert.Equal(t, "lsp [flags]", cmd.Use)
	assert.NotNil(t, cmd.Flags().Lookup("stdio"))
	assert.NotNil(t, cmd.Flags().Lookup("port"))
}

func TestCommonlogVerbosity(t *testing.T) {
	assert.Equal(t, 2, commonlogVerbosity("debug"))
	assert.Equal(t, 2, commonlogVerbosity("trace"))
	assert.Equal(t, 1, commonlogVerbosity("info"))
	assert.Equal(t, 0, commonlogVerbosity("warn"))
}

func TestReplCommand_Flags(t *testing.T) {
	cmd := ReplCommand()
	assert.Equal(t, "repl [flags] [file]", cmd.Use)
	assert.NotNil(t, cmd.Flags().Lookup("kind"))
	assert.Error(t, cmd.Args(cmd, []string{"a", "b"}))
}

func TestRootCommands(t *testing.T) {
	var names []string
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"catalog", "check", "complete", "highlight", "lsp", "repl", "theme"} {
		assert.Contains(t, names, want)
	}
	for _, flag := range []string{"config", "color", "log-level", "palette", "dark"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(flag), "missing flag: %s", flag)
	}
}

func TestOptions(t *testing.T) {
	reg := highlight.NewRegistry(highlight.Assets(), nil)
	d := complete.Default()
	log := logger.Discard()

	cfg := newCmdConfig([]Option{WithRegistry(reg), WithDispatcher(d), WithLogger(log)})
	assert.Same(t, reg, cfg.resolveRegistry())
	assert.Same(t, d, cfg.resolveDispatcher())
	assert.Same(t, log, cfg.resolveLogger())

	empty := newCmdConfig(nil)
	assert.Same(t, highlight.Default(), empty.resolveRegistry())
	assert.NotNil(t, empty.resolveDispatcher())
	assert.NotNil(t, empty.resolveLogger())
}
