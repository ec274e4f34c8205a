// Copyright © 2026 The mpvedit authors

// Package repl is a line editor for mpv config files and Lua scripts with
// catalog-driven tab completion.
package repl

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ergochat/readline"

	"github.com/mpvex/mpvedit/catalog"
	"github.com/mpvex/mpvedit/complete"
	"github.com/mpvex/mpvedit/diagnostic"
	"github.com/mpvex/mpvedit/highlight"
	"github.com/mpvex/mpvedit/logger"
)

type config struct {
	stdin      io.ReadCloser
	stderr     io.Writer
	kind       complete.FileKind
	path       string
	history    string
	color      diagnostic.ColorMode
	registry   *highlight.Registry
	dispatcher *complete.Dispatcher
	log        *logger.Logger
}

func newConfig(opts ...Option) *config {
	config := &config{
		stderr:  os.Stderr,
		history: historyPath(),
	}
	for _, opt := range opts {
		opt(config)
	}
	if config.kind == "" {
		config.kind = complete.KindConfig
		if config.path != "" {
			config.kind = complete.KindForPath(config.path)
		}
	}
	if config.registry == nil {
		config.registry = highlight.Default()
	}
	if config.dispatcher == nil {
		config.dispatcher = complete.Default()
	}
	if config.log == nil {
		config.log = logger.Default()
	}
	return config
}

type Option func(*config)

// WithStdin allows overriding the input to the REPL.
func WithStdin(stdin io.ReadCloser) Option {
	return func(c *config) {
		c.stdin = stdin
	}
}

// WithStderr allows overriding the output of the REPL.
func WithStderr(stderr io.Writer) Option {
	return func(c *config) {
		c.stderr = stderr
	}
}

// WithKind sets the buffer's file kind. Without it the kind comes from the
// file name, or config when there is none.
func WithKind(kind complete.FileKind) Option {
	return func(c *config) {
		c.kind = kind
	}
}

// WithFile loads path into the buffer if it exists and makes it the
// default target of :w.
func WithFile(path string) Option {
	return func(c *config) {
		c.path = path
	}
}

// WithHistory sets the history file. An empty path disables history.
func WithHistory(path string) Option {
	return func(c *config) {
		c.history = path
	}
}

// WithColor sets the color mode for diagnostics.
func WithColor(mode diagnostic.ColorMode) Option {
	return func(c *config) {
		c.color = mode
	}
}

// WithRegistry sets the syntax registry.
func WithRegistry(r *highlight.Registry) Option {
	return func(c *config) {
		c.registry = r
	}
}

// WithDispatcher sets the catalog dispatcher.
func WithDispatcher(d *complete.Dispatcher) Option {
	return func(c *config) {
		c.dispatcher = d
	}
}

// WithLogger sets the logger.
func WithLogger(l *logger.Logger) Option {
	return func(c *config) {
		c.log = l
	}
}

// Run reads lines until EOF or :q. Each line is appended to the buffer;
// lines starting with ':' are commands.
func Run(prompt string, opts ...Option) error {
	cfg := newConfig(opts...)

	s, err := newSession(cfg)
	if err != nil {
		return err
	}

	ensureHistoryFilePermissions(cfg.history)
	rlCfg := &readline.Config{
		Stdout:            cfg.stderr,
		Stderr:            cfg.stderr,
		Prompt:            prompt,
		HistoryFile:       cfg.history,
		HistorySearchFold: true,
		AutoComplete:      &lineCompleter{session: s, hints: cfg.stderr},
	}
	if cfg.stdin != nil {
		rlCfg.Stdin = cfg.stdin
	}
	rl, err := readline.NewEx(rlCfg)
	if err != nil {
		return fmt.Errorf("readline: %w", err)
	}
	defer rl.Close() //nolint:errcheck // best-effort cleanup

	cfg.log.Debug().
		Str("kind", string(cfg.kind)).
		Str("file", cfg.path).
		Int("lines", len(s.lines)).
		Msg("Session started")

	for {
		line, err := rl.ReadLine()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if err != nil {
			return nil
		}
		line = strings.TrimRight(line, " \t\r")
		if strings.HasPrefix(line, ":") {
			quit, err := s.command(line)
			if err != nil {
				fmt.Fprintln(cfg.stderr, err) //nolint:errcheck // best-effort error display
			}
			if quit {
				return nil
			}
			continue
		}
		s.append(line)
	}
}

// Session is the buffer being edited.
type Session struct {
	kind  complete.FileKind
	path  string
	lines []string
	lang  complete.Language
	out   io.Writer
	diag  *diagnostic.Renderer

	options *catalog.OptionCatalog
}

func newSession(cfg *config) (*Session, error) {
	s := &Session{
		kind: cfg.kind,
		path: cfg.path,
		lang: cfg.registry.Wrapped(cfg.kind, cfg.dispatcher),
		out:  cfg.stderr,

		options: cfg.dispatcher.Options(),
	}
	s.diag = &diagnostic.Renderer{
		Color:        cfg.color,
		SourceReader: func(string) ([]byte, error) { return []byte(s.Content()), nil },
	}
	if cfg.path == "" {
		return s, nil
	}
	data, err := os.ReadFile(cfg.path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("load %s: %w", cfg.path, err)
	default:
		text := strings.TrimSuffix(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
		if text != "" {
			s.lines = strings.Split(text, "\n")
		}
	}
	return s, nil
}

// Content returns the buffer as text, one line per entry.
func (s *Session) Content() string {
	return strings.Join(s.lines, "\n")
}

// Lines returns the buffered lines.
func (s *Session) Lines() []string {
	return s.lines
}

func (s *Session) append(line string) {
	s.lines = append(s.lines, line)
	if s.kind == complete.KindConfig {
		s.checkLine(len(s.lines) - 1)
	}
}

// command runs a meta command. It reports whether the session should end.
func (s *Session) command(line string) (bool, error) {
	name, arg, _ := strings.Cut(strings.TrimPrefix(line, ":"), " ")
	arg = strings.TrimSpace(arg)
	switch name {
	case "q":
		return true, nil
	case "p":
		s.print()
		return false, nil
	case "w":
		return false, s.write(arg)
	case "wq":
		if err := s.write(arg); err != nil {
			return false, err
		}
		return true, nil
	case "c":
		s.check()
		return false, nil
	case "d":
		if len(s.lines) > 0 {
			s.lines = s.lines[:len(s.lines)-1]
		}
		return false, nil
	case "h", "help":
		fmt.Fprintln(s.out, ":p print buffer, :c check, :w [file] write, :wq [file] write and quit, :d drop last line, :q quit") //nolint:errcheck // best-effort REPL output
		return false, nil
	default:
		return false, fmt.Errorf("unknown command :%s (try :h)", name)
	}
}

func (s *Session) print() {
	width := len(fmt.Sprint(len(s.lines)))
	for i, l := range s.lines {
		fmt.Fprintf(s.out, "%*d  %s\n", width, i+1, l) //nolint:errcheck // best-effort REPL output
	}
}

func (s *Session) write(path string) error {
	if path == "" {
		path = s.path
	}
	if path == "" {
		return errors.New("no file name")
	}
	data := s.Content()
	if data != "" {
		data += "\n"
	}
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil { //nolint:gosec // config files are user-readable
		return fmt.Errorf("write %s: %w", path, err)
	}
	s.path = path
	fmt.Fprintf(s.out, "wrote %d lines to %s\n", len(s.lines), path) //nolint:errcheck // best-effort REPL output
	return nil
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".mpvedit_history")
}

// ensureHistoryFilePermissions creates the history file with mode 0600 or
// restricts an existing one to it.
func ensureHistoryFilePermissions(path string) {
	if path == "" {
		return
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDONLY, 0o600)
	if err != nil {
		return
	}
	_ = f.Close()
	_ = os.Chmod(path, 0o600)
}
