package ast

import (
	"fmt"
	"strconv"
	"strings"
)

func (p *Program) String() string {
	var b strings.Builder

	for i, decl := range p.Decls {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(decl.String())
	}

	return b.String()
}

func (i *Ident) String() string {
	return i.Value
}

func (f *FuncDecl) String() string {
	var b strings.Builder

	b.WriteString(f.Name.Value)
	b.WriteString(" ")
	writeBindings(&b, f.Params)
	b.WriteString(" -> ")
	writeBindings(&b, f.Results)

	for _, block := range f.Blocks {
		b.WriteString(" ")
		b.WriteString(block.String())
	}

	return b.String()
}

func writeBindings(b *strings.Builder, bindings []*Binding) {
	b.WriteString("(")
	for i, binding := range bindings {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(binding.String())
	}
	b.WriteString(")")
}

func (b *Binding) String() string {
	switch {
	case b.Type != nil:
		return fmt.Sprintf("%s: %s", b.Name.Value, b.Type.String())
	case b.Ref != nil:
		return fmt.Sprintf("%s: %s", b.Name.Value, b.Ref.Value)
	default:
		return b.Name.Value
	}
}

func (*IntType) String() string {
	return "Int"
}

func (t *ArrayType) String() string {
	if t.Elem == nil {
		return "[?]"
	}
	return "[" + t.Elem.String() + "]"
}

func (l *IntLit) String() string {
	return strconv.FormatInt(l.Value, 10)
}

func (v *VectExpr) String() string {
	var b strings.Builder

	b.WriteString("[")
	for i, elem := range v.Elems {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(elem.String())
	}
	b.WriteString("]")

	return b.String()
}

func (d *DefMut) String() string {
	return fmt.Sprintf("mut %s = %s", d.Name.Value, d.Value.String())
}

func (i *IdentExpr) String() string {
	return i.Name
}

func (b *Block) String() string {
	if len(b.Items) == 0 {
		return "{}"
	}

	var s strings.Builder
	s.WriteString("{")
	for _, item := range b.Items {
		s.WriteString(" ")
		s.WriteString(item.String())
	}
	s.WriteString(" }")

	return s.String()
}

func (r *RawExpr) String() string {
	return r.Text
}
