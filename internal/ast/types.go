package ast

type NodeType int

const (
	ILLEGAL NodeType = iota

	// Top level
	PROGRAM
	FUNC_DECL
	BINDING
	IDENT

	// Types
	INT_TYPE
	ARRAY_TYPE

	// Expressions
	INT_LIT
	VECT_EXPR
	DEF_MUT
	IDENT_EXPR
	BLOCK
	RAW_EXPR
)

var nodeTypeNames = [...]string{
	ILLEGAL:    "ILLEGAL",
	PROGRAM:    "PROGRAM",
	FUNC_DECL:  "FUNC_DECL",
	BINDING:    "BINDING",
	IDENT:      "IDENT",
	INT_TYPE:   "INT_TYPE",
	ARRAY_TYPE: "ARRAY_TYPE",
	INT_LIT:    "INT_LIT",
	VECT_EXPR:  "VECT_EXPR",
	DEF_MUT:    "DEF_MUT",
	IDENT_EXPR: "IDENT_EXPR",
	BLOCK:      "BLOCK",
	RAW_EXPR:   "RAW_EXPR",
}

func (t NodeType) String() string {
	if t < 0 || int(t) >= len(nodeTypeNames) {
		return "NodeType(?)"
	}
	return nodeTypeNames[t]
}
