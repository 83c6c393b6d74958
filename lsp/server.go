// Package lsp serves FlexConf diagnostics over the Language Server
// Protocol. Opening, changing or saving a document reparses the full
// text and publishes the result; closing it publishes an empty
// diagnostic list. The server keeps no per-document state.
package lsp

import (
	"net/url"
	"path/filepath"
	"strings"

	"github.com/Hypnoes/FlexConf/flexconf"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"
)

const lsName = "flexconf"

type Server struct {
	handler protocol.Handler
	server  *server.Server
	version string
}

func NewServer(version string) *Server {
	s := &Server{
		version: version,
	}

	s.handler = protocol.Handler{
		Initialize:            s.initialize,
		Initialized:           s.initialized,
		Shutdown:              s.shutdown,
		SetTrace:              s.setTrace,
		TextDocumentDidOpen:   s.textDocumentDidOpen,
		TextDocumentDidChange: s.textDocumentDidChange,
		TextDocumentDidClose:  s.textDocumentDidClose,
		TextDocumentDidSave:   s.textDocumentDidSave,
	}

	s.server = server.NewServer(&s.handler, lsName, false)

	return s
}

func (s *Server) RunStdio() error {
	return s.server.RunStdio()
}

func (s *Server) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	capabilities := s.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
		Save: &protocol.SaveOptions{
			IncludeText: boolPtr(true),
		},
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &s.version,
		},
	}, nil
}

func (s *Server) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	return nil
}

func (s *Server) shutdown(ctx *glsp.Context) error {
	return nil
}

func (s *Server) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (s *Server) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	s.publish(ctx, params.TextDocument.URI, params.TextDocument.Text)
	return nil
}

func (s *Server) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) == 0 {
		return nil
	}
	change := params.ContentChanges[len(params.ContentChanges)-1]
	if whole, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
		s.publish(ctx, params.TextDocument.URI, whole.Text)
	}
	return nil
}

func (s *Server) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	if params.Text != nil {
		s.publish(ctx, params.TextDocument.URI, *params.Text)
	}
	return nil
}

func (s *Server) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         params.TextDocument.URI,
		Diagnostics: []protocol.Diagnostic{},
	})
	return nil
}

// publish reparses text and pushes the resulting diagnostics (possibly
// none) for uri.
func (s *Server) publish(ctx *glsp.Context, uri string, text string) {
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: Diagnose(text, uriToPath(uri)),
	})
}

// Diagnose parses text and converts the failure, if any, into LSP
// diagnostics.
func Diagnose(text, path string) []protocol.Diagnostic {
	_, err := flexconf.ParseText([]byte(text), flexconf.WithFile(path))
	if err == nil {
		return []protocol.Diagnostic{}
	}
	perr, ok := err.(*flexconf.Error)
	if !ok {
		return []protocol.Diagnostic{}
	}

	severity := protocol.DiagnosticSeverityError
	source := lsName
	kind := perr.Kind.String()
	return []protocol.Diagnostic{{
		Range:    spanToRange(perr.Span),
		Severity: &severity,
		Source:   &source,
		Code:     &protocol.IntegerOrString{Value: kind},
		Message:  perr.Message,
	}}
}

// spanToRange converts a 1-based span into the protocol's 0-based
// range. Protocol columns are UTF-16 units; FlexConf columns are code
// points, which agree for the overwhelmingly common BMP case.
func spanToRange(span flexconf.Span) protocol.Range {
	return protocol.Range{
		Start: protocol.Position{
			Line:      uint32(span.Start.Line - 1),
			Character: uint32(span.Start.Column - 1),
		},
		End: protocol.Position{
			Line:      uint32(span.End.Line - 1),
			Character: uint32(span.End.Column - 1),
		},
	}
}

func uriToPath(uri string) string {
	if strings.HasPrefix(uri, "file://") {
		if parsed, err := url.Parse(uri); err == nil {
			return filepath.Clean(parsed.Path)
		}
	}
	return uri
}

func boolPtr(b bool) *bool {
	return &b
}

func syncKindPtr(kind protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &kind
}
