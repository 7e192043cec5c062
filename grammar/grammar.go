package grammar

import "github.com/alecthomas/participle/v2/lexer"

type Program struct {
	Pos   lexer.Position
	Decls []*Decl `@@+`
}

type Decl struct {
	Pos     lexer.Position
	EndPos  lexer.Position
	Name    string     `@Ident`
	Params  []*Binding `"(" ( @@ ( "," @@ )* )? ")"`
	Results []*Binding `"->" "(" ( @@ ( "," @@ )* )? ")"`
	Blocks  []*Block   `@@+`
}

type Binding struct {
	Pos        lexer.Position
	EndPos     lexer.Position
	Name       string      `@Ident`
	Annotation *Annotation `[ ":" @@ ]`
}

type Annotation struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Type   *Type   `  @@`
	Ref    *string `| @Ident`
}

type Type struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Int    bool  `  @"Int"`
	Array  *Type `| "[" @@ "]"`
}

type Block struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Items  []*BlockItem `"{" @@* "}"`
}

type BlockItem struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Block  *Block  `  @@`
	DefMut *DefMut `| @@`
	Vect   *Vect   `| @@`
	Int    *string `| @Integer`
	Raw    *string `| @("Int" | "mut" | Raw | Arrow | "(" | ")" | "," | ":" | "=" | "[" | "]")`
	Ident  *string `| @Ident`
}

type DefMut struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Name   *Name  `"mut" @@ "="`
	Value  *Value `@@`
}

type Name struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Value  string `@Ident`
}

type Value struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Block  *Block  `  @@`
	DefMut *DefMut `| @@`
	Vect   *Vect   `| @@`
	Int    *string `| @Integer`
	Ident  *string `| @Ident`
}

type Vect struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Elems  []*Elem `"[" ( @@ ( "," @@ )* )? "]"`
}

type Elem struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Int    *string `  @Integer`
	Vect   *Vect   `| @@`
}
