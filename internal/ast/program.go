package ast

// Program is the root of a parsed source: an ordered sequence of top-level declarations.
// Example: "f (a: Int) -> (a) { 1 }  g () -> () {}"
type Program struct {
	Pos    Position
	EndPos Position
	Decls  []*FuncDecl
}

// Position tracks location information for error reporting and tooling
type Position struct {
	Filename string
	Offset   int // 0-based byte offset
	Line     int // 1-based
	Column   int // 1-based, counted in bytes
}

// Ident represents any identifier: declaration names, parameter names, value references.
// Example: "f", "a", "tru"
type Ident struct {
	Pos    Position
	EndPos Position
	Value  string
}

// FuncDecl is a top-level declaration with a parameter list, a result list and
// one or more trailing blocks.
// Example: "laksjd (a: tru, b: a) -> (a, b) { kjsd } {} {}"
type FuncDecl struct {
	Pos     Position
	EndPos  Position
	Name    Ident
	Params  []*Binding
	Results []*Binding
	Blocks  []*Block
}

// Binding is a single entry of a parameter or result list.
// Type and Ref are mutually exclusive; both are nil for a bare name.
// Example: "a: Int", "b: a", "a"
type Binding struct {
	Pos    Position
	EndPos Position
	Name   Ident
	Type   Type
	Ref    *Ident
}
