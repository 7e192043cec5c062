package grammar

import (
	"fmt"
	"os"

	"github.com/alecthomas/participle/v2"

	"github.com/montymxb/FDSSL/internal/ast"
)

// blockLookahead is how many tokens a definition or vector inside a block
// may consume before its failure is reported instead of being read as raw
// text.
const blockLookahead = 64

var (
	parser      = buildParser[Program]()
	valueParser = buildParser[Value]()
)

func buildParser[G any]() *participle.Parser[G] {
	p, err := participle.Build[G](
		participle.Lexer(FDSSLLexer),
		participle.Elide("Whitespace"),
		participle.UseLookahead(blockLookahead),
	)
	if err != nil {
		panic(fmt.Errorf("failed to build parser: %w", err))
	}

	return p
}

// ParseString returns the raw participle parse tree.
func ParseString(filename string, source string) (*Program, error) {
	return parser.ParseString(filename, source)
}

// Parse parses source and lowers the result into AST nodes.
func Parse(filename string, source string) (*ast.Program, error) {
	program, err := ParseString(filename, source)
	if err != nil {
		return nil, err
	}
	return Lower(program)
}

// ParseValue parses source as a single strict value and lowers it.
func ParseValue(filename string, source string) (ast.Expr, error) {
	value, err := valueParser.ParseString(filename, source)
	if err != nil {
		return nil, err
	}
	return lowerValue(value)
}

func ParseFile(path string) (*ast.Program, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	return Parse(path, string(source))
}
