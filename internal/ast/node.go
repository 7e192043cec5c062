package ast

type Node interface {
	NodePos() Position
	NodeEndPos() Position
	NodeType() NodeType
	String() string
}

func (p *Program) NodePos() Position    { return p.Pos }
func (p *Program) NodeEndPos() Position { return p.EndPos }
func (*Program) NodeType() NodeType     { return PROGRAM }

func (f *FuncDecl) NodePos() Position    { return f.Pos }
func (f *FuncDecl) NodeEndPos() Position { return f.EndPos }
func (*FuncDecl) NodeType() NodeType     { return FUNC_DECL }

func (b *Binding) NodePos() Position    { return b.Pos }
func (b *Binding) NodeEndPos() Position { return b.EndPos }
func (*Binding) NodeType() NodeType     { return BINDING }

func (i *Ident) NodePos() Position    { return i.Pos }
func (i *Ident) NodeEndPos() Position { return i.EndPos }
func (*Ident) NodeType() NodeType     { return IDENT }

func (t *IntType) NodePos() Position    { return t.Pos }
func (t *IntType) NodeEndPos() Position { return t.EndPos }
func (*IntType) NodeType() NodeType     { return INT_TYPE }

func (t *ArrayType) NodePos() Position    { return t.Pos }
func (t *ArrayType) NodeEndPos() Position { return t.EndPos }
func (*ArrayType) NodeType() NodeType     { return ARRAY_TYPE }

func (l *IntLit) NodePos() Position    { return l.Pos }
func (l *IntLit) NodeEndPos() Position { return l.EndPos }
func (*IntLit) NodeType() NodeType     { return INT_LIT }

func (v *VectExpr) NodePos() Position    { return v.Pos }
func (v *VectExpr) NodeEndPos() Position { return v.EndPos }
func (*VectExpr) NodeType() NodeType     { return VECT_EXPR }

func (d *DefMut) NodePos() Position    { return d.Pos }
func (d *DefMut) NodeEndPos() Position { return d.EndPos }
func (*DefMut) NodeType() NodeType     { return DEF_MUT }

func (i *IdentExpr) NodePos() Position    { return i.Pos }
func (i *IdentExpr) NodeEndPos() Position { return i.EndPos }
func (*IdentExpr) NodeType() NodeType     { return IDENT_EXPR }

func (b *Block) NodePos() Position    { return b.Pos }
func (b *Block) NodeEndPos() Position { return b.EndPos }
func (*Block) NodeType() NodeType     { return BLOCK }

func (r *RawExpr) NodePos() Position    { return r.Pos }
func (r *RawExpr) NodeEndPos() Position { return r.EndPos }
func (*RawExpr) NodeType() NodeType     { return RAW_EXPR }
