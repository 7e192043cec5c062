package parser

import (
	"github.com/tliron/commonlog"

	"github.com/montymxb/FDSSL/internal/ast"
)

// DefaultMaxDepth bounds the nesting of blocks, vectors and array types.
const DefaultMaxDepth = 512

// Parser is a recursive-descent parser that reads directly from the source
// string. Lexing happens inside the rules; there is no token stream.
// A Parser is single-use and not safe for concurrent use.
type Parser struct {
	src      string
	filename string
	pos      int
	depth    int
	maxDepth int
	lines    []int
	log      commonlog.Logger

	hintOffset int
	hints      []string

	// trailing is the clean failure that ended the declaration repetition.
	trailing *ParseError
}

// Option configures a Parser.
type Option func(*Parser)

// WithFilename sets the filename recorded in every ast.Position.
func WithFilename(name string) Option {
	return func(p *Parser) { p.filename = name }
}

// WithMaxDepth overrides DefaultMaxDepth.
func WithMaxDepth(depth int) Option {
	return func(p *Parser) {
		if depth > 0 {
			p.maxDepth = depth
		}
	}
}

// WithLogger replaces the default "fdssl.parser" logger.
func WithLogger(log commonlog.Logger) Option {
	return func(p *Parser) { p.log = log }
}

// New returns a Parser over source.
func New(source string, opts ...Option) *Parser {
	p := &Parser{
		src:        source,
		maxDepth:   DefaultMaxDepth,
		log:        commonlog.GetLogger("fdssl.parser"),
		hintOffset: -1,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Program applies the program rule and returns the unconsumed remainder.
// Trailing input is not an error here; the caller decides.
func (p *Parser) Program() (*ast.Program, string, error) {
	program, err := p.parseProgram()
	if err != nil {
		p.log.Debugf("parse failed: %s", err.Error())
		return nil, p.src[p.pos:], err
	}
	return program, p.src[p.pos:], nil
}

// ParseSource parses the whole source; trailing input is reported as an error.
func (p *Parser) ParseSource() (*ast.Program, error) {
	program, err := p.parseProgram()
	if err == nil && !p.isAtEnd() {
		err = merge(label(p.trailing, p.pos, "declaration"), p.errorAt(p.pos, "end of input"))
	}
	if err != nil {
		p.log.Debugf("parse failed: %s", err.Error())
		return nil, err
	}
	return program, nil
}

// Value parses the whole input as a single value: a block, a mutable
// definition, a vector, an integer or an identifier. Unlike block items,
// values are strict, so an out-of-range integer or a ragged vector is an
// error here.
func (p *Parser) Value() (ast.Expr, error) {
	p.skipWhitespace()
	start := p.pos
	value, err := p.choice(p.blockExpr, p.parseDefMut, p.parseVect, p.parseIntLit, p.parseIdentExpr)
	if err != nil {
		err = label(err, start, "value")
	} else if !p.isAtEnd() {
		err = p.errorAt(p.pos, "end of input")
	}
	if err != nil {
		p.log.Debugf("parse failed: %s", err.Error())
		return nil, err
	}
	return value, nil
}

// Program parses input with default options. See Parser.Program.
func Program(input string) (*ast.Program, string, error) {
	return New(input).Program()
}

// ParseSource parses the complete source of the file at path.
func ParseSource(path string, source string) (*ast.Program, error) {
	return New(source, WithFilename(path)).ParseSource()
}

// ParseValue parses source as a single value. See Parser.Value.
func ParseValue(path string, source string) (ast.Expr, error) {
	return New(source, WithFilename(path)).Value()
}
