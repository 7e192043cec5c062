package grammar

import (
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/montymxb/FDSSL/internal/ast"
	"github.com/montymxb/FDSSL/token"
)

// Lower converts a participle parse tree into AST nodes. Reserved names,
// integer range and vector shape are checked here because the grammar cannot
// express them. Inside blocks a construct that fails those checks is spread
// into raw tokens and plain items instead.
func Lower(program *Program) (*ast.Program, error) {
	out := &ast.Program{Pos: toPos(program.Pos)}

	for _, decl := range program.Decls {
		lowered, err := lowerDecl(decl)
		if err != nil {
			return nil, err
		}
		out.Decls = append(out.Decls, lowered)
		out.EndPos = lowered.EndPos
	}

	return out, nil
}

func toPos(pos lexer.Position) ast.Position {
	return ast.Position{
		Filename: pos.Filename,
		Offset:   pos.Offset,
		Line:     pos.Line,
		Column:   pos.Column,
	}
}

// identAt builds an Ident for a name that starts at pos and has no line break.
func identAt(pos lexer.Position, name string) (ast.Ident, error) {
	if token.IsKeyword(name) {
		return ast.Ident{}, participle.Errorf(pos, "%q is a keyword and cannot be used as a name", name)
	}
	end := pos
	end.Offset += len(name)
	end.Column += len(name)
	return ast.Ident{Pos: toPos(pos), EndPos: toPos(end), Value: name}, nil
}

func lowerDecl(decl *Decl) (*ast.FuncDecl, error) {
	name, err := identAt(decl.Pos, decl.Name)
	if err != nil {
		return nil, err
	}

	params, err := lowerBindings(decl.Params)
	if err != nil {
		return nil, err
	}

	results, err := lowerBindings(decl.Results)
	if err != nil {
		return nil, err
	}

	out := &ast.FuncDecl{
		Pos:     toPos(decl.Pos),
		EndPos:  toPos(decl.EndPos),
		Name:    name,
		Params:  params,
		Results: results,
	}
	for _, block := range decl.Blocks {
		out.Blocks = append(out.Blocks, lowerBlock(block))
	}

	return out, nil
}

func lowerBindings(bindings []*Binding) ([]*ast.Binding, error) {
	out := []*ast.Binding{}

	for _, binding := range bindings {
		name, err := identAt(binding.Pos, binding.Name)
		if err != nil {
			return nil, err
		}

		lowered := &ast.Binding{Pos: toPos(binding.Pos), EndPos: toPos(binding.EndPos), Name: name}
		if ann := binding.Annotation; ann != nil {
			switch {
			case ann.Type != nil:
				lowered.Type = lowerType(ann.Type)
			case ann.Ref != nil:
				ref, err := identAt(ann.Pos, *ann.Ref)
				if err != nil {
					return nil, err
				}
				lowered.Ref = &ref
			}
		}
		out = append(out, lowered)
	}

	return out, nil
}

func lowerType(t *Type) ast.Type {
	if t.Array != nil {
		return &ast.ArrayType{Pos: toPos(t.Pos), EndPos: toPos(t.EndPos), Elem: lowerType(t.Array)}
	}
	return &ast.IntType{Pos: toPos(t.Pos), EndPos: toPos(t.EndPos)}
}

func lowerBlock(block *Block) *ast.Block {
	out := &ast.Block{Pos: toPos(block.Pos), EndPos: toPos(block.EndPos), Items: []ast.Expr{}}

	for _, item := range block.Items {
		pos, end := toPos(item.Pos), toPos(item.EndPos)

		switch {
		case item.Block != nil:
			out.Items = append(out.Items, lowerBlock(item.Block))
		case item.DefMut != nil:
			out.Items = append(out.Items, defMutItems(item.DefMut)...)
		case item.Vect != nil:
			out.Items = append(out.Items, vectItems(item.Vect)...)
		case item.Int != nil:
			out.Items = append(out.Items, intItem(item.Pos, *item.Int, end))
		case item.Raw != nil:
			out.Items = append(out.Items, &ast.RawExpr{Pos: pos, EndPos: end, Text: *item.Raw})
		case item.Ident != nil:
			out.Items = append(out.Items, &ast.IdentExpr{Pos: pos, EndPos: end, Name: *item.Ident})
		}
	}

	return out
}

// rawAt builds a RawExpr for text that starts at pos.
func rawAt(pos lexer.Position, text string) *ast.RawExpr {
	end := pos
	end.Offset += len(text)
	end.Column += len(text)
	return &ast.RawExpr{Pos: toPos(pos), EndPos: toPos(end), Text: text}
}

// nameItem is a name read as a block item: keywords are raw text.
func nameItem(pos lexer.Position, name string) ast.Expr {
	ident, err := identAt(pos, name)
	if err != nil {
		return rawAt(pos, name)
	}
	return &ast.IdentExpr{Pos: ident.Pos, EndPos: ident.EndPos, Name: name}
}

func defMutItems(def *DefMut) []ast.Expr {
	if lowered, err := lowerDefMut(def); err == nil {
		return []ast.Expr{lowered}
	}

	items := []ast.Expr{
		rawAt(def.Pos, token.MUT),
		nameItem(def.Name.Pos, def.Name.Value),
		rawAt(def.Name.EndPos, token.ASSIGN),
	}
	return append(items, valueItems(def.Value)...)
}

func valueItems(v *Value) []ast.Expr {
	switch {
	case v.Block != nil:
		return []ast.Expr{lowerBlock(v.Block)}
	case v.DefMut != nil:
		return defMutItems(v.DefMut)
	case v.Vect != nil:
		return vectItems(v.Vect)
	case v.Int != nil:
		return []ast.Expr{intItem(v.Pos, *v.Int, toPos(v.EndPos))}
	default:
		return []ast.Expr{nameItem(v.Pos, *v.Ident)}
	}
}

// vectItems keeps a well-formed vector whole. Otherwise its brackets and
// commas become raw tokens and its elements become items of their own.
func vectItems(vect *Vect) []ast.Expr {
	if lowered, err := lowerVect(vect); err == nil {
		return []ast.Expr{lowered}
	}

	items := []ast.Expr{rawAt(vect.Pos, token.LBRACKET)}
	for i, elem := range vect.Elems {
		if i > 0 {
			items = append(items, rawAt(vect.Elems[i-1].EndPos, token.COMMA))
		}
		if elem.Vect != nil {
			items = append(items, vectItems(elem.Vect)...)
		} else {
			items = append(items, intItem(elem.Pos, *elem.Int, toPos(elem.EndPos)))
		}
	}
	closing := vect.Pos
	if n := len(vect.Elems); n > 0 {
		closing = vect.Elems[n-1].EndPos
	}
	return append(items, rawAt(closing, token.RBRACKET))
}

// intItem reads an integer that does not fit in int64 as raw text.
func intItem(pos lexer.Position, text string, end ast.Position) ast.Expr {
	lit, err := lowerInt(pos, text, end)
	if err != nil {
		return &ast.RawExpr{Pos: toPos(pos), EndPos: end, Text: text}
	}
	return lit
}

func lowerDefMut(def *DefMut) (*ast.DefMut, error) {
	name, err := identAt(def.Name.Pos, def.Name.Value)
	if err != nil {
		return nil, err
	}

	value, err := lowerValue(def.Value)
	if err != nil {
		return nil, err
	}

	return &ast.DefMut{Pos: toPos(def.Pos), EndPos: toPos(def.EndPos), Name: name, Value: value}, nil
}

func lowerValue(v *Value) (ast.Expr, error) {
	switch {
	case v.Block != nil:
		return lowerBlock(v.Block), nil
	case v.DefMut != nil:
		return lowerDefMut(v.DefMut)
	case v.Vect != nil:
		return lowerVect(v.Vect)
	case v.Int != nil:
		return lowerInt(v.Pos, *v.Int, toPos(v.EndPos))
	default:
		return identValue(v)
	}
}

func identValue(v *Value) (ast.Expr, error) {
	if token.IsKeyword(*v.Ident) {
		return nil, participle.Errorf(v.Pos, "%q is a keyword and cannot be used as a value", *v.Ident)
	}
	return &ast.IdentExpr{Pos: toPos(v.Pos), EndPos: toPos(v.EndPos), Name: *v.Ident}, nil
}

func lowerInt(pos lexer.Position, text string, end ast.Position) (*ast.IntLit, error) {
	value, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return nil, participle.Errorf(pos, "integer literal %s is out of range", text)
	}
	return &ast.IntLit{Pos: toPos(pos), EndPos: end, Value: value}, nil
}

func lowerVect(vect *Vect) (*ast.VectExpr, error) {
	out := &ast.VectExpr{Pos: toPos(vect.Pos), EndPos: toPos(vect.EndPos), Elems: []ast.Expr{}}
	var elemType ast.Type

	for _, elem := range vect.Elems {
		var (
			expr ast.Expr
			typ  ast.Type
		)
		if elem.Vect != nil {
			inner, err := lowerVect(elem.Vect)
			if err != nil {
				return nil, err
			}
			expr, typ = inner, copyType(inner.DataType)
		} else {
			lit, err := lowerInt(elem.Pos, *elem.Int, toPos(elem.EndPos))
			if err != nil {
				return nil, err
			}
			expr, typ = lit, ast.Int()
		}

		if elemType == nil {
			elemType = typ
		} else if !ast.SameType(elemType, typ) {
			return nil, participle.Errorf(elem.Pos, "vector element of type %s does not match element type %s", typ, elemType)
		}
		out.Elems = append(out.Elems, expr)
	}

	if elemType == nil {
		elemType = ast.Int()
	}
	_, out.IsMatrix = elemType.(*ast.ArrayType)
	out.DataType = ast.Array(elemType)
	return out, nil
}

func copyType(t ast.Type) ast.Type {
	if arr, ok := t.(*ast.ArrayType); ok {
		return ast.Array(copyType(arr.Elem))
	}
	return ast.Int()
}
