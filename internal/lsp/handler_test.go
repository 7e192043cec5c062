package lsp_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/montymxb/FDSSL/internal/lsp"
)

const tokenSource = "f (a: Int, b: a) -> (a) { mut x = [1, -2] y }"

type published struct {
	notifications []*protocol.PublishDiagnosticsParams
}

func (p *published) context() *glsp.Context {
	return &glsp.Context{
		Notify: func(method string, params any) {
			if method == protocol.ServerTextDocumentPublishDiagnostics {
				p.notifications = append(p.notifications, params.(*protocol.PublishDiagnosticsParams))
			}
		},
	}
}

func (p *published) last(t *testing.T) *protocol.PublishDiagnosticsParams {
	t.Helper()
	require.NotEmpty(t, p.notifications, "no diagnostics were published")
	return p.notifications[len(p.notifications)-1]
}

func writeDoc(t *testing.T, content string) (string, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.fd")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path, "file://" + filepath.ToSlash(path)
}

func openDoc(t *testing.T, h *lsp.FDSSLHandler, ctx *glsp.Context, uri, text string) {
	t.Helper()
	err := h.TextDocumentDidOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: uri, LanguageID: "fdssl", Version: 1, Text: text},
	})
	require.NoError(t, err)
}

func TestInitializeAdvertisesCapabilities(t *testing.T) {
	h := lsp.NewFDSSLHandler()
	result, err := h.Initialize(&glsp.Context{}, &protocol.InitializeParams{})
	require.NoError(t, err)

	initResult, ok := result.(*protocol.InitializeResult)
	require.True(t, ok)
	assert.Equal(t, true, initResult.Capabilities.DocumentSymbolProvider)
	assert.Equal(t, lsp.Name, initResult.ServerInfo.Name)

	tokens, ok := initResult.Capabilities.SemanticTokensProvider.(*protocol.SemanticTokensOptions)
	require.True(t, ok)
	assert.Equal(t, lsp.SemanticTokenTypes, tokens.Legend.TokenTypes)
}

func TestDidOpenPublishesDiagnostics(t *testing.T) {
	h := lsp.NewFDSSLHandler()
	var pub published
	ctx := pub.context()
	path, uri := writeDoc(t, "")

	openDoc(t, h, ctx, uri, "f (a Int) -> () {}")
	params := pub.last(t)
	assert.Equal(t, uri, params.URI)
	require.Len(t, params.Diagnostics, 1)

	diag := params.Diagnostics[0]
	assert.Equal(t, uint32(0), diag.Range.Start.Line)
	assert.Equal(t, uint32(5), diag.Range.Start.Character)
	assert.Equal(t, uint32(8), diag.Range.End.Character)
	assert.Equal(t, "E0100", diag.Code.Value)
	assert.Equal(t, "fdssl-parser", *diag.Source)
	assert.Contains(t, diag.Message, `found "Int"`)

	text, ok := h.Content(path)
	require.True(t, ok)
	assert.Equal(t, "f (a Int) -> () {}", text)
}

func TestDidChangeClearsDiagnostics(t *testing.T) {
	h := lsp.NewFDSSLHandler()
	var pub published
	ctx := pub.context()
	_, uri := writeDoc(t, "")

	openDoc(t, h, ctx, uri, "f () -> () {")
	require.Len(t, pub.last(t).Diagnostics, 1)
	assert.Equal(t, "E0101", pub.last(t).Diagnostics[0].Code.Value)

	err := h.TextDocumentDidChange(ctx, &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: uri},
			Version:                2,
		},
		ContentChanges: []any{protocol.TextDocumentContentChangeEventWhole{Text: "f () -> () {}\ng () -> () {}"}},
	})
	require.NoError(t, err)

	params := pub.last(t)
	require.NotNil(t, params.Diagnostics)
	assert.Empty(t, params.Diagnostics)

	result, err := h.TextDocumentDocumentSymbol(ctx, &protocol.DocumentSymbolParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	require.NoError(t, err)
	symbols := result.([]protocol.DocumentSymbol)
	require.Len(t, symbols, 2)
	assert.Equal(t, "g", symbols[1].Name)
	assert.Equal(t, uint32(1), symbols[1].Range.Start.Line)
}

func TestDidChangeRangedFallsBackToDisk(t *testing.T) {
	h := lsp.NewFDSSLHandler()
	var pub published
	ctx := pub.context()
	path, uri := writeDoc(t, "disk () -> () {}")

	openDoc(t, h, ctx, uri, "f () -> (")
	err := h.TextDocumentDidChange(ctx, &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: uri},
			Version:                2,
		},
		ContentChanges: []any{protocol.TextDocumentContentChangeEvent{
			Range: &protocol.Range{},
			Text:  "ignored",
		}},
	})
	require.NoError(t, err)
	assert.Empty(t, pub.notifications)

	text, _ := h.Content(path)
	assert.Equal(t, "disk () -> () {}", text)
}

func TestDidCloseForgetsDocument(t *testing.T) {
	h := lsp.NewFDSSLHandler()
	var pub published
	ctx := pub.context()
	path, uri := writeDoc(t, "")

	openDoc(t, h, ctx, uri, "f () -> () { {")
	err := h.TextDocumentDidClose(ctx, &protocol.DidCloseTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	require.NoError(t, err)

	assert.Empty(t, pub.notifications)
	_, ok := h.Content(path)
	assert.False(t, ok)
}

func TestDocumentSymbols(t *testing.T) {
	h := lsp.NewFDSSLHandler()
	_, uri := writeDoc(t, tokenSource)

	result, err := h.TextDocumentDocumentSymbol(&glsp.Context{}, &protocol.DocumentSymbolParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	require.NoError(t, err)

	symbols := result.([]protocol.DocumentSymbol)
	require.Len(t, symbols, 1)
	assert.Equal(t, "f", symbols[0].Name)
	assert.Equal(t, protocol.SymbolKindFunction, symbols[0].Kind)
	assert.Equal(t, "(a: Int, b: a) -> (a)", *symbols[0].Detail)
	require.Len(t, symbols[0].Children, 2)
	assert.Equal(t, "b", symbols[0].Children[1].Name)
	assert.Equal(t, uint32(11), symbols[0].Children[1].SelectionRange.Start.Character)
}

func TestTextDocumentSemanticTokensFull(t *testing.T) {
	h := lsp.NewFDSSLHandler()
	_, uri := writeDoc(t, tokenSource)

	tokens, err := h.TextDocumentSemanticTokensFull(&glsp.Context{}, &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	require.NoError(t, err)
	require.NotNil(t, tokens)

	decoded, err := decodeSemanticTokens(tokens.Data)
	require.NoError(t, err)
	require.Len(t, decoded, 11)

	assertToken(t, &decoded[0], 1, 1, 1, "function", []string{"declaration"})
	assertToken(t, &decoded[1], 1, 4, 1, "parameter", []string{"declaration"})
	assertToken(t, &decoded[2], 1, 7, 3, "type", nil)
	assertToken(t, &decoded[3], 1, 12, 1, "parameter", []string{"declaration"})
	assertToken(t, &decoded[4], 1, 15, 1, "variable", nil)
	assertToken(t, &decoded[5], 1, 22, 1, "parameter", nil)
	assertToken(t, &decoded[6], 1, 27, 3, "keyword", nil)
	assertToken(t, &decoded[7], 1, 31, 1, "variable", []string{"declaration"})
	assertToken(t, &decoded[8], 1, 36, 1, "number", nil)
	assertToken(t, &decoded[9], 1, 39, 2, "number", nil)
	assertToken(t, &decoded[10], 1, 43, 1, "variable", nil)
}

func TestSemanticTokensMultiline(t *testing.T) {
	h := lsp.NewFDSSLHandler()
	_, uri := writeDoc(t, "f () -> () {}\n  g (n: [Int]) -> () { 7 }")

	tokens, err := h.TextDocumentSemanticTokensFull(&glsp.Context{}, &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	require.NoError(t, err)

	decoded, err := decodeSemanticTokens(tokens.Data)
	require.NoError(t, err)
	require.Len(t, decoded, 5)

	assertToken(t, &decoded[0], 1, 1, 1, "function", []string{"declaration"})
	assertToken(t, &decoded[1], 2, 3, 1, "function", []string{"declaration"})
	assertToken(t, &decoded[2], 2, 6, 1, "parameter", []string{"declaration"})
	assertToken(t, &decoded[3], 2, 10, 3, "type", nil)
	assertToken(t, &decoded[4], 2, 24, 1, "number", nil)
}

func TestSemanticTokensSkipRawText(t *testing.T) {
	h := lsp.NewFDSSLHandler()
	var pub published
	_, uri := writeDoc(t, "f () -> () { a[i] 99999999999999999999 }")

	tokens, err := h.TextDocumentSemanticTokensFull(pub.context(), &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	require.NoError(t, err)

	decoded, err := decodeSemanticTokens(tokens.Data)
	require.NoError(t, err)
	require.Len(t, decoded, 3)

	assertToken(t, &decoded[0], 1, 1, 1, "function", []string{"declaration"})
	assertToken(t, &decoded[1], 1, 14, 1, "variable", nil)
	assertToken(t, &decoded[2], 1, 16, 1, "variable", nil)
	assert.Empty(t, pub.notifications)
}

func TestSemanticTokensForBrokenDocument(t *testing.T) {
	h := lsp.NewFDSSLHandler()
	var pub published
	_, uri := writeDoc(t, "f () -> () { [1, [2]]")

	tokens, err := h.TextDocumentSemanticTokensFull(pub.context(), &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	require.NoError(t, err)
	assert.Empty(t, tokens.Data)

	require.Len(t, pub.last(t).Diagnostics, 1)
	assert.Equal(t, "E0101", pub.last(t).Diagnostics[0].Code.Value)
}

func TestMissingFile(t *testing.T) {
	h := lsp.NewFDSSLHandler()
	uri := "file://" + filepath.ToSlash(filepath.Join(t.TempDir(), "missing.fd"))

	_, err := h.TextDocumentSemanticTokensFull(&glsp.Context{}, &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	require.Error(t, err)
}

func TestProtocolHandlerWiring(t *testing.T) {
	handler := lsp.NewProtocolHandler(lsp.NewFDSSLHandler())
	assert.NotNil(t, handler.Initialize)
	assert.NotNil(t, handler.TextDocumentDidOpen)
	assert.NotNil(t, handler.TextDocumentDocumentSymbol)
	assert.NotNil(t, handler.TextDocumentSemanticTokensFull)
}

type DecodedToken struct {
	Index     int
	Line      uint32
	Char      uint32
	Length    uint32
	Type      string
	Modifiers []string
}

func decodeSemanticTokens(raw []uint32) ([]DecodedToken, error) {
	if len(raw)%5 != 0 {
		return nil, fmt.Errorf("raw token data length %d is not a multiple of 5", len(raw))
	}

	var (
		decoded []DecodedToken
		line    uint32
		char    uint32
	)

	for i := 0; i < len(raw); i += 5 {
		deltaLine := raw[i]
		deltaStart := raw[i+1]

		if deltaLine == 0 {
			char += deltaStart
		} else {
			line += deltaLine
			char = deltaStart
		}

		var modifiers []string
		for j, name := range lsp.SemanticTokenModifiers {
			if raw[i+4]&(1<<j) != 0 {
				modifiers = append(modifiers, name)
			}
		}

		decoded = append(decoded, DecodedToken{
			Index:     i / 5,
			Line:      line + 1,
			Char:      char + 1,
			Length:    raw[i+2],
			Type:      lsp.SemanticTokenTypes[raw[i+3]],
			Modifiers: modifiers,
		})
	}

	return decoded, nil
}

func assertToken(t *testing.T, token *DecodedToken, expectedLine, expectedChar, expectedLength uint32, expectedType string, expectedModifiers []string) {
	require.Equal(t, expectedLine, token.Line, "line mismatch (expected line %d)", expectedLine)
	require.Equal(t, expectedChar, token.Char, "char mismatch (expected char %d)", expectedChar)
	require.Equal(t, expectedLength, token.Length, "length mismatch")
	require.Equal(t, expectedType, token.Type, "type mismatch")
	require.ElementsMatch(t, expectedModifiers, token.Modifiers, "modifiers mismatch")
}
