package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"
)

// Name identifies the language server to clients.
const Name = "fdssl"

var Version = "0.1.0"

// NewProtocolHandler wires an FDSSLHandler into the glsp method table.
func NewProtocolHandler(h *FDSSLHandler) *protocol.Handler {
	return &protocol.Handler{
		Initialize:                     h.Initialize,
		Initialized:                    h.Initialized,
		Shutdown:                       h.Shutdown,
		SetTrace:                       h.SetTrace,
		TextDocumentDidOpen:            h.TextDocumentDidOpen,
		TextDocumentDidChange:          h.TextDocumentDidChange,
		TextDocumentDidClose:           h.TextDocumentDidClose,
		TextDocumentDocumentSymbol:     h.TextDocumentDocumentSymbol,
		TextDocumentSemanticTokensFull: h.TextDocumentSemanticTokensFull,
	}
}

// NewServer creates a glsp server for FDSSL. debug enables glsp's own
// protocol logging.
func NewServer(debug bool) *server.Server {
	return server.NewServer(NewProtocolHandler(NewFDSSLHandler()), Name, debug)
}
