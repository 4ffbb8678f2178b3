package runtime

// Expr is the program's abstract syntax tree. It has exactly two shapes,
// matching the grammar: a function literal and an application of one
// expression to another. Trees are built once by the parser and never
// mutated afterward.
type Expr interface {
	exprNode()
}

// FuncLit is a leaf expression: a primitive or partially-applied Func value
// written directly into the source (every single-character token in the
// grammar except a backtick parses to one of these).
type FuncLit struct {
	F Func
}

func (*FuncLit) exprNode() {}

// Lit wraps f as an expression.
func Lit(f Func) Expr { return &FuncLit{F: f} }

// AppExpr is the application of Op to Arg, produced once per backtick in
// the source. Evaluating s duplicates its argument expression rather than
// cloning it, so the same *AppExpr can be reachable from more than one
// place in a live computation; that's safe because Expr is read-only.
type AppExpr struct {
	Op, Arg Expr
}

func (*AppExpr) exprNode() {}

// App wraps the application of op to arg as an expression.
func App(op, arg Expr) Expr { return &AppExpr{Op: op, Arg: arg} }
