// Package token SPDX-License-Identifier: Apache-2.0
package token

type TokenType string

const (
	IDENT = "IDENT" // laksjd, a_1, x ...

	// Delimiters
	ARROW  = "->"
	COMMA  = ","
	COLON  = ":"
	ASSIGN = "="

	LPAREN   = "("
	RPAREN   = ")"
	LBRACE   = "{"
	RBRACE   = "}"
	LBRACKET = "["
	RBRACKET = "]"

	// Keywords
	INT_TYPE = "Int"
	MUT      = "mut"
)

var keywords = map[string]TokenType{
	INT_TYPE: INT_TYPE,
	MUT:      MUT,
}

// LookupIdent returns the keyword type of ident, or IDENT for a plain name.
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}

// IsKeyword reports whether ident is reserved and cannot name anything.
func IsKeyword(ident string) bool {
	_, ok := keywords[ident]
	return ok
}
