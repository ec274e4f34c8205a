// Copyright © 2026 The mpvedit authors

package cmd

import (
	"github.com/mpvex/mpvedit/complete"
	"github.com/mpvex/mpvedit/highlight"
	"github.com/mpvex/mpvedit/logger"
)

// Option configures an exported command factory (CompleteCommand,
// LSPCommand, ...).
type Option func(*cmdConfig)

type cmdConfig struct {
	registry   *highlight.Registry
	dispatcher *complete.Dispatcher
	log        *logger.Logger
}

func newCmdConfig(opts []Option) *cmdConfig {
	cfg := &cmdConfig{}
	for _, o := range opts {
		o(cfg)
	}
	return cfg
}

// WithRegistry injects a syntax registry, for example one built from
// assets on disk instead of the embedded ones.
func WithRegistry(r *highlight.Registry) Option {
	return func(c *cmdConfig) { c.registry = r }
}

// WithDispatcher injects a dispatcher over custom catalogs.
func WithDispatcher(d *complete.Dispatcher) Option {
	return func(c *cmdConfig) { c.dispatcher = d }
}

// WithLogger injects a logger. The default is the process-wide one, which
// initConfig sets from --log-level.
func WithLogger(l *logger.Logger) Option {
	return func(c *cmdConfig) { c.log = l }
}

func (c *cmdConfig) resolveRegistry() *highlight.Registry {
	if c.registry != nil {
		return c.registry
	}
	return highlight.Default()
}

func (c *cmdConfig) resolveDispatcher() *complete.Dispatcher {
	if c.dispatcher != nil {
		return c.dispatcher
	}
	return complete.Default()
}

func (c *cmdConfig) resolveLogger() *logger.Logger {
	if c.log != nil {
		return c.log
	}
	return logger.Default()
}
