package ast

// Type is the closed set of annotated types: IntType and ArrayType.
type Type interface {
	Node
	isType()
}

// IntType is the primitive integer type.
// Example: "Int"
type IntType struct {
	Pos    Position
	EndPos Position
}

// ArrayType is an array whose elements have type Elem.
// Example: "[Int]", "[[Int]]"
type ArrayType struct {
	Pos    Position
	EndPos Position
	Elem   Type
}

func (*IntType) isType()   {}
func (*ArrayType) isType() {}

// Int returns a position-less IntType.
func Int() *IntType {
	return &IntType{}
}

// Array returns a position-less ArrayType wrapping elem.
func Array(elem Type) *ArrayType {
	return &ArrayType{Elem: elem}
}

// SameType reports whether a and b describe the same type, ignoring positions.
func SameType(a, b Type) bool {
	switch at := a.(type) {
	case *IntType:
		_, ok := b.(*IntType)
		return ok
	case *ArrayType:
		bt, ok := b.(*ArrayType)
		return ok && SameType(at.Elem, bt.Elem)
	default:
		return false
	}
}
