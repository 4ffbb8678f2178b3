package runtime

// Cont is the explicit, reified control stack: what to do next with a
// computed value. It forms a linked chain built and consumed entirely by
// the trampoline in eval.go; nothing outside this package ever walks it by
// hand. Capturing one (via c) is just retaining its head reference — it
// remains valid for the rest of the run, independent of whatever the
// "current" continuation is by the time it's invoked.
type Cont interface {
	// invoke delivers a computed value to this frame, producing the next
	// Task to run.
	invoke(v Func) Task
}

// AwaitOperand says "the operator value v has just been produced; evaluate
// Operand next, then apply v to its value."
type AwaitOperand struct {
	Operand Expr
	Next    Cont
}

func (k AwaitOperand) invoke(v Func) Task {
	return applyOperandTask{Operator: v, Operand: k.Operand, Next: k.Next}
}

// AwaitOperator says "the operand value v has just been produced; apply the
// already-known Operator to it."
type AwaitOperator struct {
	Operator Func
	Next     Cont
}

func (k AwaitOperator) invoke(v Func) Task {
	return applyTask{Operator: k.Operator, Operand: v, Next: k.Next}
}

// AwaitForced says "a promise was just forced and yielded the function v;
// apply it to the operand that was pending when the promise was forced."
type AwaitForced struct {
	Operand Func
	Next    Cont
}

func (k AwaitForced) invoke(v Func) Task {
	return applyTask{Operator: v, Operand: k.Operand, Next: k.Next}
}

// Done says the computation is finished; v is the program's result.
type Done struct{}

func (Done) invoke(Func) Task {
	return haltTask{}
}
