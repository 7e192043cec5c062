package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgramString(t *testing.T) {
	program := &Program{
		Decls: []*FuncDecl{
			{
				Name: Ident{Value: "f"},
				Params: []*Binding{
					{Name: Ident{Value: "a"}, Type: Int()},
				},
				Results: []*Binding{
					{Name: Ident{Value: "a"}},
				},
				Blocks: []*Block{
					{Items: []Expr{&IntLit{Value: 1}}},
				},
			},
			{
				Name:   Ident{Value: "g"},
				Blocks: []*Block{{}},
			},
		},
	}

	expected := "f (a: Int) -> (a) { 1 }\ng () -> () {}"
	assert.Equal(t, expected, program.String())
}

func TestBindingString(t *testing.T) {
	typed := &Binding{Name: Ident{Value: "a"}, Type: Array(Array(Int()))}
	assert.Equal(t, "a: [[Int]]", typed.String())

	ref := &Binding{Name: Ident{Value: "a"}, Ref: &Ident{Value: "tru"}}
	assert.Equal(t, "a: tru", ref.String())

	bare := &Binding{Name: Ident{Value: "b"}}
	assert.Equal(t, "b", bare.String())
}

func TestDefMutString(t *testing.T) {
	def := &DefMut{
		Name: Ident{Value: "x"},
		Value: &VectExpr{
			IsMatrix: false,
			DataType: Array(Int()),
			Elems:    []Expr{&IntLit{Value: 1}, &IntLit{Value: 2}},
		},
	}

	assert.Equal(t, "mut x = [1, 2]", def.String())
}

func TestNestedBlockString(t *testing.T) {
	block := &Block{
		Items: []Expr{
			&IdentExpr{Name: "kjsd"},
			&Block{Items: []Expr{&Block{}, &RawExpr{Text: "+"}, &IntLit{Value: -3}}},
		},
	}

	assert.Equal(t, "{ kjsd { {} + -3 } }", block.String())
}

func TestSameType(t *testing.T) {
	assert.True(t, SameType(Int(), &IntType{Pos: Position{Offset: 4}}))
	assert.True(t, SameType(Array(Array(Int())), Array(Array(Int()))))
	assert.False(t, SameType(Array(Int()), Int()))
	assert.False(t, SameType(Array(Int()), Array(Array(Int()))))
	assert.False(t, SameType(nil, Int()))
}

func TestCollectAllNodes(t *testing.T) {
	program := &Program{
		Decls: []*FuncDecl{
			{
				Name:    Ident{Value: "f"},
				Params:  []*Binding{{Name: Ident{Value: "a"}, Type: Array(Int())}},
				Results: []*Binding{{Name: Ident{Value: "a"}}},
				Blocks: []*Block{
					{Items: []Expr{&DefMut{Name: Ident{Value: "x"}, Value: &IntLit{Value: 1}}}},
				},
			},
		},
	}

	var kinds []NodeType
	for _, n := range CollectAllNodes(program) {
		kinds = append(kinds, n.NodeType())
	}

	assert.Equal(t, []NodeType{
		PROGRAM, FUNC_DECL, IDENT,
		BINDING, IDENT, ARRAY_TYPE, INT_TYPE,
		BINDING, IDENT,
		BLOCK, DEF_MUT, IDENT, INT_LIT,
	}, kinds)
	assert.Equal(t, "DEF_MUT", DEF_MUT.String())
}
