// Copyright © 2026 The mpvedit authors

// Package lsp implements a Language Server Protocol server for mpv config
// files and Lua scripts. It provides completion, hover, signature help,
// semantic tokens, document symbols, folding and config diagnostics with
// quick fixes.
package lsp

import (
	"os"
	"sync"
	"time"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	glspserver "github.com/tliron/glsp/server"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/mpvex/mpvedit/complete"
	"github.com/mpvex/mpvedit/highlight"
	"github.com/mpvex/mpvedit/logger"
)

const (
	serverName = "mpvedit-lsp"
	tracerName = "mpvedit/lsp"
)

// Version is reported to clients in the initialize response.
var Version = "0.1.0"

// Server is the mpvedit language server.
type Server struct {
	handler protocol.Handler
	glspSrv *glspserver.Server
	docs    *DocumentStore

	registry   *highlight.Registry
	dispatcher *complete.Dispatcher
	log        *logger.Logger
	tracer     trace.Tracer

	// Debouncer for didChange notifications.
	debounceMu sync.Mutex
	debounce   map[string]*time.Timer

	// Context for sending notifications (captured from latest request).
	notifyMu sync.Mutex
	notify   glsp.NotifyFunc

	// exitFn is called on the LSP exit notification. Defaults to os.Exit.
	exitFn func(int)
}

// Option configures the LSP server.
type Option func(*Server)

// WithRegistry sets the syntax registry. The default is the embedded one.
func WithRegistry(r *highlight.Registry) Option {
	return func(s *Server) { s.registry = r }
}

// WithDispatcher sets the catalog dispatcher.
func WithDispatcher(d *complete.Dispatcher) Option {
	return func(s *Server) { s.dispatcher = d }
}

// WithLogger sets the server logger.
func WithLogger(l *logger.Logger) Option {
	return func(s *Server) { s.log = l }
}

// WithTracerProvider traces requests with tp instead of the global
// provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(s *Server) { s.tracer = tp.Tracer(tracerName) }
}

// New creates a new language server.
func New(opts ...Option) *Server {
	s := &Server{
		docs:     NewDocumentStore(),
		debounce: make(map[string]*time.Timer),
		exitFn:   os.Exit,
	}
	for _, o := range opts {
		o(s)
	}
	if s.registry == nil {
		s.registry = highlight.Default()
	}
	if s.dispatcher == nil {
		s.dispatcher = complete.Default()
	}
	if s.log == nil {
		s.log = logger.Default()
	}
	if s.tracer == nil {
		s.tracer = otel.Tracer(tracerName)
	}

	s.handler = protocol.Handler{
		Initialize: s.initialize,
		Shutdown:   s.shutdown,
		Exit:       s.exit,
		SetTrace:   s.setTrace,

		TextDocumentDidOpen:   s.textDocumentDidOpen,
		TextDocumentDidChange: s.textDocumentDidChange,
		TextDocumentDidSave:   s.textDocumentDidSave,
		TextDocumentDidClose:  s.textDocumentDidClose,

		TextDocumentCompletion:         s.textDocumentCompletion,
		TextDocumentHover:              s.textDocumentHover,
		TextDocumentSemanticTokensFull: s.textDocumentSemanticTokensFull,
		TextDocumentSignatureHelp:      s.textDocumentSignatureHelp,
		TextDocumentCodeAction:         s.textDocumentCodeAction,
		TextDocumentDocumentSymbol:     s.textDocumentDocumentSymbol,
		TextDocumentFoldingRange:       s.textDocumentFoldingRange,
	}

	s.glspSrv = glspserver.NewServer(&s.handler, serverName, false)
	return s
}

// RunStdio starts the server using stdio transport.
func (s *Server) RunStdio() error {
	return s.glspSrv.RunStdio()
}

// RunTCP starts the server listening on the given address.
func (s *Server) RunTCP(addr string) error {
	return s.glspSrv.RunTCP(addr)
}

func (s *Server) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	s.captureNotify(ctx)
	if params.ClientInfo != nil {
		s.log.Info().Str("client", params.ClientInfo.Name).Msg("Client connected")
	}

	capabilities := s.handler.CreateServerCapabilities()

	syncKind := protocol.TextDocumentSyncKindFull
	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    &syncKind,
		Save:      &protocol.SaveOptions{IncludeText: boolPtr(false)},
	}

	// '.' continues mp.* names, '-' continues option keys.
	capabilities.CompletionProvider = &protocol.CompletionOptions{
		TriggerCharacters: []string{".", "-"},
	}

	capabilities.SignatureHelpProvider = &protocol.SignatureHelpOptions{
		TriggerCharacters:   []string{"("},
		RetriggerCharacters: []string{","},
	}

	capabilities.CodeActionProvider = &protocol.CodeActionOptions{
		CodeActionKinds: []protocol.CodeActionKind{protocol.CodeActionKindQuickFix},
	}

	capabilities.SemanticTokensProvider = &protocol.SemanticTokensOptions{
		Legend: semanticTokenLegend(),
		Full:   true,
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    serverName,
			Version: &Version,
		},
	}, nil
}

func (s *Server) shutdown(_ *glsp.Context) error {
	s.debounceMu.Lock()
	for _, t := range s.debounce {
		t.Stop()
	}
	s.debounce = make(map[string]*time.Timer)
	s.debounceMu.Unlock()
	return nil
}

func (s *Server) exit(_ *glsp.Context) error {
	s.exitFn(0)
	return nil
}

// setTrace handles the $/setTrace notification (required by some clients).
func (s *Server) setTrace(_ *glsp.Context, _ *protocol.SetTraceParams) error {
	return nil
}

// captureNotify stores the notification function from the context for
// async use (e.g., publishing diagnostics after a debounce).
func (s *Server) captureNotify(ctx *glsp.Context) {
	if ctx == nil || ctx.Notify == nil {
		return
	}
	s.notifyMu.Lock()
	s.notify = ctx.Notify
	s.notifyMu.Unlock()
}

func (s *Server) sendNotification(method string, params any) {
	s.notifyMu.Lock()
	fn := s.notify
	s.notifyMu.Unlock()
	if fn != nil {
		fn(method, params)
	}
}

func boolPtr(b bool) *bool {
	return &b
}

func strPtr(s string) *string {
	return &s
}
