package lsp

import (
	"strings"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/montymxb/FDSSL/internal/ast"
)

// collectDocumentSymbols returns one Function symbol per declaration with its
// parameters as children.
func collectDocumentSymbols(program *ast.Program) []protocol.DocumentSymbol {
	symbols := []protocol.DocumentSymbol{}
	if program == nil {
		return symbols
	}

	for _, decl := range program.Decls {
		detail := signature(decl)
		symbol := protocol.DocumentSymbol{
			Name:           decl.Name.Value,
			Detail:         &detail,
			Kind:           protocol.SymbolKindFunction,
			Range:          toRange(decl.Pos, decl.EndPos),
			SelectionRange: toRange(decl.Name.Pos, decl.Name.EndPos),
		}

		for _, param := range decl.Params {
			symbol.Children = append(symbol.Children, protocol.DocumentSymbol{
				Name:           param.Name.Value,
				Kind:           protocol.SymbolKindVariable,
				Range:          toRange(param.Pos, param.EndPos),
				SelectionRange: toRange(param.Name.Pos, param.Name.EndPos),
			})
		}

		symbols = append(symbols, symbol)
	}

	return symbols
}

// signature renders "(params) -> (results)".
func signature(decl *ast.FuncDecl) string {
	join := func(bindings []*ast.Binding) string {
		parts := make([]string, len(bindings))
		for i, b := range bindings {
			parts[i] = b.String()
		}
		return "(" + strings.Join(parts, ", ") + ")"
	}
	return join(decl.Params) + " -> " + join(decl.Results)
}

func toRange(start, end ast.Position) protocol.Range {
	return protocol.Range{
		Start: protocol.Position{Line: uint32(max(start.Line-1, 0)), Character: uint32(max(start.Column-1, 0))},
		End:   protocol.Position{Line: uint32(max(end.Line-1, 0)), Character: uint32(max(end.Column-1, 0))},
	}
}
