package ast

// The body model is structural: composition synthesizes bodies for the
// code-generation backend to lower, it never evaluates them. Only the
// shapes composition actually produces are modeled.

// Expr is a Node that represents an expression.
type Expr interface {
	Node
	exprNode()
}

// Stmt is a Node that represents a statement.
type Stmt interface {
	Node
	stmtNode()
}

// VarExpr references a local variable or parameter by name. The receiver
// is referenced as "this".
type VarExpr struct {
	Name string
}

func (v *VarExpr) exprNode()            {}
func (v *VarExpr) TokenLiteral() string { return v.Name }

// ThisExpr returns a receiver reference.
func ThisExpr() *VarExpr { return &VarExpr{Name: "this"} }

// FieldExpr references a field of the receiver.
type FieldExpr struct {
	Field *FieldDecl
}

func (f *FieldExpr) exprNode()            {}
func (f *FieldExpr) TokenLiteral() string { return f.Field.Name }

// ClassExpr references a class as a static call receiver.
type ClassExpr struct {
	Target *ClassDecl
}

func (c *ClassExpr) exprNode()            {}
func (c *ClassExpr) TokenLiteral() string { return c.Target.Name }

// CallExpr is a method call. Direct marks non-virtual dispatch: the call
// binds to the named method on the receiver's static type.
type CallExpr struct {
	Receiver Expr
	Method   string
	Args     []Expr
	Direct   bool
}

func (c *CallExpr) exprNode()            {}
func (c *CallExpr) TokenLiteral() string { return c.Method }

// ReturnStmt returns Value from the enclosing method.
type ReturnStmt struct {
	Value Expr
}

func (r *ReturnStmt) stmtNode() {}
func (r *ReturnStmt) TokenLiteral() string {
	if r.Value == nil {
		return "return"
	}
	return r.Value.TokenLiteral()
}

// ExprStmt evaluates X and discards its result.
type ExprStmt struct {
	X Expr
}

func (e *ExprStmt) stmtNode()            {}
func (e *ExprStmt) TokenLiteral() string { return e.X.TokenLiteral() }

// AssignStmt assigns Value into Target.
type AssignStmt struct {
	Target Expr
	Value  Expr
}

func (a *AssignStmt) stmtNode()            {}
func (a *AssignStmt) TokenLiteral() string { return a.Target.TokenLiteral() }
