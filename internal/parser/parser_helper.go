package parser

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/montymxb/FDSSL/internal/ast"
)

func (p *Parser) isAtEnd() bool {
	return p.pos >= len(p.src)
}

// check reports whether the remaining input starts with lit.
func (p *Parser) check(lit string) bool {
	return strings.HasPrefix(p.src[p.pos:], lit)
}

// match consumes lit and any whitespace after it. A miss is remembered as an
// optional expectation so a later error at the same offset can mention it.
func (p *Parser) match(lit string) bool {
	if p.check(lit) {
		p.pos += len(lit)
		p.skipWhitespace()
		return true
	}
	p.expectAlso(p.pos, strconv.Quote(lit))
	return false
}

// consume requires lit at the current offset and returns the offsets it spans.
func (p *Parser) consume(lit string) (int, int, *ParseError) {
	start := p.pos
	if !p.check(lit) {
		return start, start, p.errorAt(start, strconv.Quote(lit))
	}
	p.pos += len(lit)
	end := p.pos
	p.skipWhitespace()
	return start, end, nil
}

// matchKeyword consumes kw only when it is not the prefix of a longer identifier.
func (p *Parser) matchKeyword(kw string) (int, int, bool) {
	start := p.pos
	if !p.check(kw) {
		return start, start, false
	}
	end := start + len(kw)
	if r, _ := utf8.DecodeRuneInString(p.src[end:]); end < len(p.src) && isIdentPart(r) {
		return start, start, false
	}
	p.pos = end
	p.skipWhitespace()
	return start, end, true
}

func (p *Parser) skipWhitespace() {
	for p.pos < len(p.src) && isSpace(p.src[p.pos]) {
		p.pos++
	}
}

// enter guards recursive rules against unbounded nesting.
func (p *Parser) enter(offset int) *ParseError {
	if p.depth >= p.maxDepth {
		return p.failf(offset, "nesting exceeds maximum depth of %d", p.maxDepth)
	}
	p.depth++
	return nil
}

func (p *Parser) leave() {
	p.depth--
}

func (p *Parser) expectAlso(offset int, expected ...string) {
	if p.hintOffset != offset {
		p.hintOffset = offset
		p.hints = p.hints[:0]
	}
	for _, exp := range expected {
		if !contains(p.hints, exp) {
			p.hints = append(p.hints, exp)
		}
	}
}

func (p *Parser) errorAt(offset int, expected ...string) *ParseError {
	var all []string
	if p.hintOffset == offset {
		all = append(all, p.hints...)
	}
	for _, exp := range expected {
		if !contains(all, exp) {
			all = append(all, exp)
		}
	}
	return &ParseError{
		Pos:      p.makePos(offset),
		Expected: all,
		Found:    p.describeAt(offset),
	}
}

func (p *Parser) failf(offset int, format string, args ...any) *ParseError {
	return &ParseError{
		Pos:     p.makePos(offset),
		Found:   p.describeAt(offset),
		Message: fmt.Sprintf(format, args...),
		fatal:   true,
	}
}

// describeAt names what sits at offset for "found ..." messages.
func (p *Parser) describeAt(offset int) string {
	if offset >= len(p.src) {
		return "end of input"
	}
	if end := scanIdent(p.src, offset); end > offset {
		return strconv.Quote(p.src[offset:end])
	}
	r, _ := utf8.DecodeRuneInString(p.src[offset:])
	return strconv.QuoteRune(r)
}

func (p *Parser) makePos(offset int) ast.Position {
	if p.lines == nil {
		p.lines = []int{0}
		for i := 0; i < len(p.src); i++ {
			if p.src[i] == '\n' {
				p.lines = append(p.lines, i+1)
			}
		}
	}

	line := sort.Search(len(p.lines), func(i int) bool { return p.lines[i] > offset }) - 1
	return ast.Position{
		Filename: p.filename,
		Offset:   offset,
		Line:     line + 1,
		Column:   offset - p.lines[line] + 1,
	}
}

// makeIdent builds an ast.Ident spanning src[start:end].
func (p *Parser) makeIdent(start, end int) ast.Ident {
	return ast.Ident{
		Pos:    p.makePos(start),
		EndPos: p.makePos(end),
		Value:  p.src[start:end],
	}
}

// Helper functions.

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isIdentStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || unicode.IsDigit(r)
}

// scanIdent returns the end offset of the identifier starting at start, or
// start when there is none.
func scanIdent(src string, start int) int {
	i := start
	for i < len(src) {
		r, size := utf8.DecodeRuneInString(src[i:])
		if i == start && !isIdentStart(r) || !isIdentPart(r) {
			break
		}
		i += size
	}
	return i
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
