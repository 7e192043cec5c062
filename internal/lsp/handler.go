package lsp

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/montymxb/FDSSL/internal/ast"
	"github.com/montymxb/FDSSL/internal/parser"
)

// SemanticTokenTypes is the token legend advertised to clients.
var SemanticTokenTypes = []string{
	"function",
	"parameter",
	"type",
	"variable",
	"keyword",
	"number",
}

// SemanticTokenModifiers is the modifier legend advertised to clients.
var SemanticTokenModifiers = []string{
	"declaration",
	"readonly",
}

// FDSSLHandler implements the LSP server handlers for FDSSL documents.
// The last successfully parsed AST of a document is kept until the document
// is closed, so symbols and tokens survive a transient syntax error.
type FDSSLHandler struct {
	mu      sync.RWMutex
	content map[string]string
	asts    map[string]*ast.Program
	log     commonlog.Logger
}

func NewFDSSLHandler() *FDSSLHandler {
	return &FDSSLHandler{
		content: make(map[string]string),
		asts:    make(map[string]*ast.Program),
		log:     commonlog.GetLogger("fdssl.lsp"),
	}
}

// Initialize responds to the LSP client's initialize request and advertises the server's capabilities
func (h *FDSSLHandler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	h.log.Info("initialize")

	version := Version
	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true),
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
			DocumentSymbolProvider: true,
			SemanticTokensProvider: &protocol.SemanticTokensOptions{
				Legend: protocol.SemanticTokensLegend{
					TokenTypes:     SemanticTokenTypes,
					TokenModifiers: SemanticTokenModifiers,
				},
				Full: ptrBool(true),
			},
		},
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    Name,
			Version: &version,
		},
	}, nil
}

func (h *FDSSLHandler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	h.log.Info("initialized")
	return nil
}

func (h *FDSSLHandler) Shutdown(ctx *glsp.Context) error {
	h.log.Info("shutdown")
	return nil
}

func (h *FDSSLHandler) SetTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	h.log.Debugf("trace set to %s", params.Value)
	return nil
}

// TextDocumentDidOpen parses the opened document and publishes its diagnostics.
func (h *FDSSLHandler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	h.log.Infof("opened %s", params.TextDocument.URI)

	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return err
	}

	diagnostics := h.update(path, params.TextDocument.Text)
	sendDiagnosticNotification(ctx, params.TextDocument.URI, diagnostics)
	return nil
}

// TextDocumentDidChange reparses the document after an edit. Only full-text
// changes are applied; anything else falls back to the file on disk.
func (h *FDSSLHandler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	h.log.Debugf("changed %s", params.TextDocument.URI)

	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return err
	}

	text, ok := wholeText(params.ContentChanges)
	if !ok {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", path, err)
		}
		text = string(data)
	}

	diagnostics := h.update(path, text)
	sendDiagnosticNotification(ctx, params.TextDocument.URI, diagnostics)
	return nil
}

// TextDocumentDidClose forgets the document and clears its diagnostics.
func (h *FDSSLHandler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	h.log.Infof("closed %s", params.TextDocument.URI)

	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return err
	}

	h.mu.Lock()
	delete(h.content, path)
	delete(h.asts, path)
	h.mu.Unlock()

	sendDiagnosticNotification(ctx, params.TextDocument.URI, []protocol.Diagnostic{})
	return nil
}

// TextDocumentSemanticTokensFull handles semantic token requests for the entire document
func (h *FDSSLHandler) TextDocumentSemanticTokensFull(ctx *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	program, err := h.getOrLoad(ctx, params.TextDocument.URI)
	if err != nil {
		return nil, err
	}

	data := []uint32{}
	var prevLine, prevStart uint32

	// delta-line, delta-start encoding
	for _, token := range collectSemanticTokens(program) {
		deltaLine := token.Line - prevLine
		deltaStart := token.StartChar
		if deltaLine == 0 {
			deltaStart = token.StartChar - prevStart
		}

		data = append(data, deltaLine, deltaStart, token.Length, uint32(token.TokenType), uint32(token.TokenModifiers))

		prevLine = token.Line
		prevStart = token.StartChar
	}

	return &protocol.SemanticTokens{Data: data}, nil
}

// TextDocumentDocumentSymbol lists the declarations of a document.
func (h *FDSSLHandler) TextDocumentDocumentSymbol(ctx *glsp.Context, params *protocol.DocumentSymbolParams) (any, error) {
	program, err := h.getOrLoad(ctx, params.TextDocument.URI)
	if err != nil {
		return nil, err
	}
	return collectDocumentSymbols(program), nil
}

// getOrLoad returns the cached AST for a document, reading it from disk when
// the client never opened it. A document that does not parse yields nil.
func (h *FDSSLHandler) getOrLoad(ctx *glsp.Context, rawURI protocol.DocumentUri) (*ast.Program, error) {
	path, err := uriToPath(rawURI)
	if err != nil {
		return nil, err
	}

	h.mu.RLock()
	program, ok := h.asts[path]
	_, open := h.content[path]
	h.mu.RUnlock()
	if ok || open {
		return program, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	diagnostics := h.update(path, string(data))
	if len(diagnostics) > 0 {
		sendDiagnosticNotification(ctx, rawURI, diagnostics)
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.asts[path], nil
}

// update stores text for path, parses it and returns the diagnostics to
// publish. An empty, non-nil slice means the document is clean.
func (h *FDSSLHandler) update(path, text string) []protocol.Diagnostic {
	program, err := parser.ParseSource(path, text)

	h.mu.Lock()
	defer h.mu.Unlock()

	h.content[path] = text
	if err != nil {
		h.log.Debugf("%s: %s", path, err.Error())
		return ConvertParseErrors(err)
	}

	h.asts[path] = program
	return []protocol.Diagnostic{}
}

// Content returns the last text seen for path.
func (h *FDSSLHandler) Content(path string) (string, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	text, ok := h.content[path]
	return text, ok
}

func wholeText(changes []any) (string, bool) {
	text, found := "", false
	for _, change := range changes {
		switch c := change.(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			text, found = c.Text, true
		case *protocol.TextDocumentContentChangeEventWhole:
			text, found = c.Text, true
		case protocol.TextDocumentContentChangeEvent:
			if c.Range != nil {
				return "", false
			}
			text, found = c.Text, true
		case *protocol.TextDocumentContentChangeEvent:
			if c.Range != nil {
				return "", false
			}
			text, found = c.Text, true
		}
	}
	return text, found
}

// Convert URI to platform-local file path
func uriToPath(rawURI string) (string, error) {
	u, err := url.Parse(rawURI)
	if err != nil {
		return "", fmt.Errorf("invalid URI %s: %w", rawURI, err)
	}

	path := u.Path

	// /C:/... on Windows
	if runtime.GOOS == "windows" && strings.HasPrefix(path, "/") && len(path) > 3 && path[2] == ':' {
		path = path[1:]
	}

	return filepath.FromSlash(path), nil
}

func sendDiagnosticNotification(ctx *glsp.Context, uri protocol.DocumentUri, diagnostics []protocol.Diagnostic) {
	if ctx == nil || ctx.Notify == nil {
		return
	}

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func ptrBool(b bool) *bool {
	return &b
}

func ptrSyncKind(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
