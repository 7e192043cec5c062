package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

var FDSSLLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		// Whitespace
		{"Whitespace", `[ \t\r\n]+`, nil},

		// Must come before Integer so "->" is not read as a sign
		{"Arrow", `->`, nil},

		// Integer literals
		{"Integer", `-?[0-9]+`, nil},

		// Keywords and Identifiers
		{"Ident", `[\p{L}_][\p{L}\p{N}_]*`, nil},

		// Punctuation
		{"Punct", `[{}\[\](),:=]`, nil},

		// Anything else inside a block
		{"Raw", `[^\s{}\[\](),:=]+`, nil},
	},
})
