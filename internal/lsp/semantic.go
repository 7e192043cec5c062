package lsp

import (
	"github.com/montymxb/FDSSL/internal/ast"
	"github.com/montymxb/FDSSL/token"
)

// SemanticToken represents a single LSP semantic token entry
// Line and StartChar are 0-based positions
// TokenType is an index into SemanticTokenTypes
// TokenModifiers is a bitmask based on SemanticTokenModifiers
type SemanticToken struct {
	Line           uint32
	StartChar      uint32
	Length         uint32
	TokenType      int
	TokenModifiers int
}

// collectSemanticTokens emits tokens in source order. Names are emitted by
// the node that owns them, so bare *ast.Ident nodes are skipped.
func collectSemanticTokens(program *ast.Program) []SemanticToken {
	var tokens []SemanticToken

	if program == nil {
		return tokens
	}

	results := make(map[*ast.Binding]bool)
	for _, node := range ast.CollectAllNodes(program) {
		switch v := node.(type) {
		case *ast.FuncDecl:
			tokens = append(tokens, makeToken(v.Name.Pos, v.Name.EndPos, v.Name.Value, "function", 1)...)
			for _, result := range v.Results {
				results[result] = true
			}
		case *ast.Binding:
			declModifier := 1
			if results[v] {
				declModifier = 0
			}
			tokens = append(tokens, makeToken(v.Name.Pos, v.Name.EndPos, v.Name.Value, "parameter", declModifier)...)
			if v.Ref != nil {
				tokens = append(tokens, makeToken(v.Ref.Pos, v.Ref.EndPos, v.Ref.Value, "variable", 0)...)
			}
		case *ast.IntType:
			tokens = append(tokens, makeToken(v.Pos, v.EndPos, token.INT_TYPE, "type", 0)...)
		case *ast.DefMut:
			keywordEnd := v.Pos
			keywordEnd.Column += len(token.MUT)
			tokens = append(tokens, makeToken(v.Pos, keywordEnd, token.MUT, "keyword", 0)...)
			tokens = append(tokens, makeToken(v.Name.Pos, v.Name.EndPos, v.Name.Value, "variable", 1)...)
		case *ast.IntLit:
			tokens = append(tokens, makeToken(v.Pos, v.EndPos, v.String(), "number", 0)...)
		case *ast.IdentExpr:
			tokens = append(tokens, makeToken(v.Pos, v.EndPos, v.Name, "variable", 0)...)
		}
	}

	return tokens
}

// makeToken creates a semantic token for a given position and text
func makeToken(pos, endPos ast.Position, value, tokenType string, declModifier int) []SemanticToken {
	if value == "" {
		return nil
	}

	length := endPos.Column - pos.Column
	if length <= 0 || endPos.Line != pos.Line {
		length = len(value)
	}

	return []SemanticToken{{
		Line:           uint32(pos.Line - 1),
		StartChar:      uint32(pos.Column - 1),
		Length:         uint32(length),
		TokenType:      indexOf(tokenType, SemanticTokenTypes),
		TokenModifiers: declModifier << indexOf("declaration", SemanticTokenModifiers),
	}}
}

// indexOf returns the index of a string in a slice, or 0 if not found
func indexOf(target string, list []string) int {
	for i, v := range list {
		if v == target {
			return i
		}
	}
	return 0
}
