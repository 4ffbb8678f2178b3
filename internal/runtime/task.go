package runtime

// Task is the machine's step register: the unit of work consumed and
// produced by one call to step. The trampoline in eval.go repeatedly calls
// step until it sees haltTask, never recursing into itself.
type Task interface {
	// step consumes this Task and returns the next one, or a nil Task when
	// the run has finished.
	step(ctx *Ctx) (Task, error)
}

// evalTask evaluates Expr under continuation Next.
type evalTask struct {
	Expr Expr
	Next Cont
}

func (t evalTask) step(ctx *Ctx) (Task, error) {
	switch e := t.Expr.(type) {
	case *FuncLit:
		return t.Next.invoke(e.F), nil
	case *AppExpr:
		// Evaluate the operator first, remembering the operand.
		return evalTask{Expr: e.Op, Next: AwaitOperand{Operand: e.Arg, Next: t.Next}}, nil
	default:
		panic("runtime: unknown Expr variant")
	}
}

// applyOperandTask has just produced the operator value Operator and is
// about to evaluate Operand, unless Operator is the promise constructor D —
// in which case Operand must be captured unevaluated (the promise-creation
// short circuit). This case must be checked before evaluating Operand: the
// whole point of a promise is that its body is never reduced until forced.
type applyOperandTask struct {
	Operator Func
	Operand  Expr
	Next     Cont
}

func (t applyOperandTask) step(ctx *Ctx) (Task, error) {
	if p, ok := t.Operator.(Prim); ok && p.tag == tagD {
		return t.Next.invoke(Promise{E: t.Operand}), nil
	}
	return evalTask{Expr: t.Operand, Next: AwaitOperator{Operator: t.Operator, Next: t.Next}}, nil
}

// applyTask is a fully-saturated application of Operator to Operand.
type applyTask struct {
	Operator, Operand Func
	Next              Cont
}

func (t applyTask) step(ctx *Ctx) (Task, error) {
	return apply(t.Operator, t.Operand, t.Next, ctx)
}

// haltTask ends the run. It is produced either by reaching the top-level
// Done continuation or by evaluating the e combinator, which terminates
// immediately regardless of how deep the continuation chain is.
type haltTask struct{}

func (haltTask) step(*Ctx) (Task, error) {
	return nil, nil
}
