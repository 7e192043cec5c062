package parser

import (
	"github.com/montymxb/FDSSL/internal/ast"
	"github.com/montymxb/FDSSL/token"
)

// parseProgram parses declaration+ and stops at the first declaration that
// fails without consuming input.
func (p *Parser) parseProgram() (*ast.Program, *ParseError) {
	p.skipWhitespace()
	program := &ast.Program{Pos: p.makePos(p.pos), EndPos: p.makePos(p.pos)}

	for {
		start := p.pos
		decl, err := p.parseDecl()
		if err != nil {
			if err.committed(start) || len(program.Decls) == 0 {
				return nil, label(err, start, "declaration")
			}
			p.pos = start
			p.trailing = err
			break
		}

		p.log.Debugf("parsed declaration %q at %d:%d", decl.Name.Value, decl.Pos.Line, decl.Pos.Column)
		program.Decls = append(program.Decls, decl)
		program.EndPos = decl.EndPos
	}

	return program, nil
}

// parseDecl parses: identifier param-list "->" param-list block+
func (p *Parser) parseDecl() (*ast.FuncDecl, *ParseError) {
	name, err := p.parseIdent()
	if err != nil {
		return nil, err
	}

	params, err := p.parseBindingList()
	if err != nil {
		return nil, err
	}

	if _, _, err := p.consume(token.ARROW); err != nil {
		return nil, err
	}

	results, err := p.parseBindingList()
	if err != nil {
		return nil, err
	}

	// At least one block, then as many as follow.
	first, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	blocks := []*ast.Block{first}
	for p.check(token.LBRACE) {
		block, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, block)
	}

	return &ast.FuncDecl{
		Pos:     name.Pos,
		EndPos:  blocks[len(blocks)-1].EndPos,
		Name:    name,
		Params:  params,
		Results: results,
		Blocks:  blocks,
	}, nil
}

// parseBindingList parses a parenthesized, comma-separated list of bindings.
func (p *Parser) parseBindingList() ([]*ast.Binding, *ParseError) {
	if _, _, err := p.consume(token.LPAREN); err != nil {
		return nil, err
	}

	bindings := []*ast.Binding{}
	if p.match(token.RPAREN) {
		return bindings, nil
	}

	for {
		binding, err := p.parseBinding()
		if err != nil {
			return nil, err
		}
		bindings = append(bindings, binding)

		if !p.match(token.COMMA) {
			break
		}
	}

	if _, _, err := p.consume(token.RPAREN); err != nil {
		return nil, err
	}
	return bindings, nil
}

// parseBinding parses: identifier (":" (type | identifier))?
func (p *Parser) parseBinding() (*ast.Binding, *ParseError) {
	name, err := p.parseIdent()
	if err != nil {
		return nil, err
	}

	binding := &ast.Binding{Pos: name.Pos, EndPos: name.EndPos, Name: name}
	if !p.match(token.COLON) {
		return binding, nil
	}

	start := p.pos
	typ, typeErr := p.parseType()
	if typeErr == nil {
		binding.Type = typ
		binding.EndPos = typ.NodeEndPos()
		return binding, nil
	}
	if typeErr.committed(start) {
		return nil, typeErr
	}

	p.pos = start
	ref, refErr := p.parseIdent()
	if refErr != nil {
		return nil, merge(typeErr, refErr)
	}
	binding.Ref = &ref
	binding.EndPos = ref.EndPos
	return binding, nil
}

// parseType parses: "Int" | "[" type "]"
func (p *Parser) parseType() (ast.Type, *ParseError) {
	start := p.pos

	if s, e, ok := p.matchKeyword(token.INT_TYPE); ok {
		return &ast.IntType{Pos: p.makePos(s), EndPos: p.makePos(e)}, nil
	}

	if !p.check(token.LBRACKET) {
		return nil, p.errorAt(start, "type")
	}
	if err := p.enter(start); err != nil {
		return nil, err
	}
	defer p.leave()

	p.pos++
	p.skipWhitespace()

	elem, err := p.parseType()
	if err != nil {
		return nil, err
	}

	_, end, err := p.consume(token.RBRACKET)
	if err != nil {
		return nil, err
	}

	return &ast.ArrayType{Pos: p.makePos(start), EndPos: p.makePos(end), Elem: elem}, nil
}

// parseIdent parses an identifier that is not a keyword.
func (p *Parser) parseIdent() (ast.Ident, *ParseError) {
	start := p.pos
	end := scanIdent(p.src, start)
	if end == start {
		return ast.Ident{}, p.errorAt(start, "identifier")
	}
	if token.LookupIdent(p.src[start:end]) != token.IDENT {
		return ast.Ident{}, p.errorAt(start, "identifier")
	}

	p.pos = end
	ident := p.makeIdent(start, end)
	p.skipWhitespace()
	return ident, nil
}
