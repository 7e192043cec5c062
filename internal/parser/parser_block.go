package parser

import (
	"strconv"
	"unicode/utf8"

	"github.com/montymxb/FDSSL/internal/ast"
	"github.com/montymxb/FDSSL/token"
)

type exprRule func() (ast.Expr, *ParseError)

// choice tries each rule in order from the current offset. The next rule runs
// only when the previous one failed without consuming input; clean failures
// are merged into one error.
func (p *Parser) choice(rules ...exprRule) (ast.Expr, *ParseError) {
	start := p.pos
	var failure *ParseError

	for _, rule := range rules {
		expr, err := rule()
		if err == nil {
			return expr, nil
		}
		if err.committed(start) {
			return nil, err
		}
		failure = merge(failure, err)
		p.pos = start
	}

	return nil, failure
}

// parseBlock parses a brace-delimited region. Nested regions recurse, so an
// inner '}' only closes the innermost open block.
func (p *Parser) parseBlock() (*ast.Block, *ParseError) {
	start := p.pos
	if !p.check(token.LBRACE) {
		return nil, p.errorAt(start, strconv.Quote(token.LBRACE))
	}
	if err := p.enter(start); err != nil {
		err.unclosed = true
		return nil, err
	}
	defer p.leave()

	p.pos++
	p.skipWhitespace()

	block := &ast.Block{Pos: p.makePos(start), Items: []ast.Expr{}}
	for !p.check(token.RBRACE) {
		if p.isAtEnd() {
			err := p.errorAt(p.pos, strconv.Quote(token.RBRACE))
			err.unclosed = true
			return nil, err
		}

		item, err := p.parseBlockItem()
		if err != nil {
			return nil, err
		}
		block.Items = append(block.Items, item)
	}

	p.pos++
	block.EndPos = p.makePos(p.pos)
	p.skipWhitespace()
	return block, nil
}

// parseBlockItem never fails inside a balanced block: text that starts like
// a definition, vector or integer but does not complete as one is read as raw
// text instead.
func (p *Parser) parseBlockItem() (ast.Expr, *ParseError) {
	return p.choice(
		p.blockExpr,
		p.orRawToken(p.parseDefMut),
		p.orRawToken(p.parseVect),
		p.orRawToken(p.parseIntLit),
		p.parseIdentExpr,
		p.parseRaw,
	)
}

// orRawToken runs rule and, when it fails after committing, rewinds and keeps
// only the first token as a RawExpr. Parsing resumes right after that token,
// so the rest of the text is read as ordinary block items.
func (p *Parser) orRawToken(rule exprRule) exprRule {
	return func() (ast.Expr, *ParseError) {
		start := p.pos
		expr, err := rule()
		if err == nil || !err.committed(start) || err.unclosed {
			return expr, err
		}
		p.log.Debugf("reading %s at offset %d as raw text: %s", p.describeAt(start), start, err.Describe())
		p.pos = start
		return p.rawToken(), nil
	}
}

// rawToken consumes a word, an optionally signed digit run or else a single
// character.
func (p *Parser) rawToken() ast.Expr {
	start := p.pos
	end := scanIdent(p.src, start)
	if end == start {
		i := start
		if p.src[i] == '-' {
			i++
		}
		digits := i
		for i < len(p.src) && isDigit(p.src[i]) {
			i++
		}
		end = i
		if i == digits {
			_, size := utf8.DecodeRuneInString(p.src[start:])
			end = start + size
		}
	}

	p.pos = end
	raw := &ast.RawExpr{Pos: p.makePos(start), EndPos: p.makePos(end), Text: p.src[start:end]}
	p.skipWhitespace()
	return raw
}

func (p *Parser) blockExpr() (ast.Expr, *ParseError) {
	block, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return block, nil
}

// parseDefMut parses: "mut" identifier "=" value
func (p *Parser) parseDefMut() (ast.Expr, *ParseError) {
	start, _, ok := p.matchKeyword(token.MUT)
	if !ok {
		return nil, p.errorAt(start, strconv.Quote(token.MUT))
	}

	name, err := p.parseIdent()
	if err != nil {
		return nil, err
	}

	if _, _, err := p.consume(token.ASSIGN); err != nil {
		return nil, err
	}

	valueStart := p.pos
	value, err := p.choice(p.blockExpr, p.parseDefMut, p.parseVect, p.parseIntLit, p.parseIdentExpr)
	if err != nil {
		return nil, label(err, valueStart, "value")
	}

	return &ast.DefMut{
		Pos:    p.makePos(start),
		EndPos: value.NodeEndPos(),
		Name:   name,
		Value:  value,
	}, nil
}

// parseVect parses a vector literal. Elements are integers or vectors, and
// every element must have the same type.
func (p *Parser) parseVect() (ast.Expr, *ParseError) {
	start := p.pos
	if !p.check(token.LBRACKET) {
		return nil, p.errorAt(start, strconv.Quote(token.LBRACKET))
	}
	if err := p.enter(start); err != nil {
		return nil, err
	}
	defer p.leave()

	p.pos++
	p.skipWhitespace()

	vect := &ast.VectExpr{Pos: p.makePos(start), Elems: []ast.Expr{}}
	var elemType ast.Type

	if !p.match(token.RBRACKET) {
		for {
			elemStart := p.pos
			elem, err := p.choice(p.parseIntLit, p.parseVect)
			if err != nil {
				return nil, label(err, elemStart, "integer or vector")
			}

			typ := elementType(elem)
			if elemType == nil {
				elemType = typ
			} else if !ast.SameType(elemType, typ) {
				return nil, p.failf(elemStart, "vector element of type %s does not match element type %s", typ, elemType)
			}
			vect.Elems = append(vect.Elems, elem)

			if !p.match(token.COMMA) {
				break
			}
		}

		if _, _, err := p.consume(token.RBRACKET); err != nil {
			return nil, err
		}
	}

	if elemType == nil {
		elemType = ast.Int()
	}
	_, vect.IsMatrix = elemType.(*ast.ArrayType)
	vect.DataType = ast.Array(elemType)
	vect.EndPos = p.makePos(p.lastEnd())
	return vect, nil
}

// elementType returns a fresh Type for a vector element so that no type node
// is shared between two parents.
func elementType(elem ast.Expr) ast.Type {
	if v, ok := elem.(*ast.VectExpr); ok {
		return copyType(v.DataType)
	}
	return ast.Int()
}

func copyType(t ast.Type) ast.Type {
	if arr, ok := t.(*ast.ArrayType); ok {
		return ast.Array(copyType(arr.Elem))
	}
	return ast.Int()
}

// parseIntLit parses an optionally negative decimal integer that fits in int64.
func (p *Parser) parseIntLit() (ast.Expr, *ParseError) {
	start := p.pos
	i := start
	if i < len(p.src) && p.src[i] == '-' {
		i++
	}
	digits := i
	for i < len(p.src) && isDigit(p.src[i]) {
		i++
	}
	if i == digits {
		return nil, p.errorAt(start, "integer")
	}

	text := p.src[start:i]
	value, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return nil, p.failf(start, "integer literal %s is out of range", text)
	}

	p.pos = i
	lit := &ast.IntLit{Pos: p.makePos(start), EndPos: p.makePos(i), Value: value}
	p.skipWhitespace()
	return lit, nil
}

func (p *Parser) parseIdentExpr() (ast.Expr, *ParseError) {
	ident, err := p.parseIdent()
	if err != nil {
		return nil, err
	}
	return &ast.IdentExpr{Pos: ident.Pos, EndPos: ident.EndPos, Name: ident.Value}, nil
}

// parseRaw takes the longest run of characters that are neither whitespace
// nor braces.
func (p *Parser) parseRaw() (ast.Expr, *ParseError) {
	start := p.pos
	i := start
	for i < len(p.src) && !isSpace(p.src[i]) && p.src[i] != '{' && p.src[i] != '}' {
		i++
	}
	if i == start {
		return nil, p.errorAt(start, "block item")
	}

	p.pos = i
	raw := &ast.RawExpr{Pos: p.makePos(start), EndPos: p.makePos(i), Text: p.src[start:i]}
	p.skipWhitespace()
	return raw, nil
}

// lastEnd is the offset just past the last non-whitespace byte before pos.
func (p *Parser) lastEnd() int {
	end := p.pos
	for end > 0 && isSpace(p.src[end-1]) {
		end--
	}
	return end
}
