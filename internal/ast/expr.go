package ast

type Expr interface {
	Node
	isExpr()
}

// IntLit is a signed integer literal.
// Example: "1", "-42"
type IntLit struct {
	Pos    Position
	EndPos Position
	Value  int64
}

// VectExpr is a literal collection. IsMatrix is set when the elements are
// themselves vectors; DataType is the type of the whole collection.
// Example: "[1, 2]" (Array(Int)), "[[1], [2, 3]]" (Array(Array(Int)))
type VectExpr struct {
	Pos      Position
	EndPos   Position
	IsMatrix bool
	DataType Type
	Elems    []Expr
}

// DefMut declares a mutable binding in the target language.
// Example: "mut x = [1, 2]"
type DefMut struct {
	Pos    Position
	EndPos Position
	Name   Ident
	Value  Expr
}

// IdentExpr is a bare name used as a value.
// Example: "kjsd"
type IdentExpr struct {
	Pos    Position
	EndPos Position
	Name   string
}

// Block is a brace-delimited region. Nested blocks are items of their parent.
// Example: "{ 1 { pd } }"
type Block struct {
	Pos    Position
	EndPos Position
	Items  []Expr
}

// RawExpr is a run of block content no other rule recognizes.
// Example: "+", "x.y()"
type RawExpr struct {
	Pos    Position
	EndPos Position
	Text   string
}

func (*IntLit) isExpr() {}

func (*VectExpr) isExpr() {}

func (*DefMut) isExpr() {}

func (*IdentExpr) isExpr() {}

func (*Block) isExpr() {}

func (*RawExpr) isExpr() {}
