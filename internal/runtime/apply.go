package runtime

// apply is the central operation of the value domain: the fully-saturated
// application of operator to operand under continuation k. ctx supplies
// the I/O primitives' access to the input/output streams and the
// last-character register.
func apply(operator, operand Func, k Cont, ctx *Ctx) (Task, error) {
	switch f := operator.(type) {
	case Prim:
		return applyPrim(f, operand, k, ctx)

	case Dot:
		if err := ctx.putc(f.Ch); err != nil {
			return nil, err
		}
		return k.invoke(operand), nil

	case QTest:
		next := V
		if c, ok := ctx.lastChar(); ok && c == f.Ch {
			next = I
		}
		return applyTask{Operator: next, Operand: operand, Next: k}, nil

	case K1:
		// K1(v) discards its argument and yields v.
		return k.invoke(f.V), nil

	case S1:
		return k.invoke(S2{X: f.X, Y: operand}), nil

	case S2:
		// ``s x y z reduces to ``x z `y z`` — build that tree and re-enter
		// the evaluator rather than applying twice inline, so a promise
		// anywhere in x, y or z still suspends/forces correctly.
		z := Lit(operand)
		return evalTask{
			Expr: App(App(Lit(f.X), z), App(Lit(f.Y), z)),
			Next: k,
		}, nil

	case ContFunc:
		// Discard the current continuation and resume at the captured one.
		return f.K.invoke(operand), nil

	case Promise:
		// Force: evaluate the captured expression, then apply its result to
		// the operand that was waiting when the promise was forced.
		return evalTask{Expr: f.E, Next: AwaitForced{Operand: operand, Next: k}}, nil

	default:
		panic("runtime: unknown Func variant")
	}
}

func applyPrim(f Prim, operand Func, k Cont, ctx *Ctx) (Task, error) {
	switch f.tag {
	case tagV:
		return k.invoke(V), nil

	case tagI:
		return k.invoke(operand), nil

	case tagE:
		return haltTask{}, nil

	case tagC:
		// call/cc: apply the operand to the reified current continuation.
		// The outer k is preserved, so if the operand returns normally
		// (rather than invoking the captured continuation) evaluation
		// proceeds as usual.
		return applyTask{Operator: operand, Operand: ContFunc{K: k}, Next: k}, nil

	case tagR:
		if err := ctx.putc('\n'); err != nil {
			return nil, err
		}
		return k.invoke(operand), nil

	case tagD:
		// D applied directly (not intercepted by the promise-creation
		// short circuit in applyOperandTask, e.g. when D reaches here via
		// a forced promise): capture operand, already a value, as a
		// trivial literal expression.
		return k.invoke(Promise{E: Lit(operand)}), nil

	case tagAt:
		_, ok, err := ctx.getc()
		if err != nil {
			return nil, err
		}
		next := V
		if ok {
			next = I
		}
		return applyTask{Operator: operand, Operand: next, Next: k}, nil

	case tagPipe:
		next := V
		if c, ok := ctx.lastChar(); ok {
			next = Dot{Ch: c}
		}
		return applyTask{Operator: next, Operand: operand, Next: k}, nil

	case tagS:
		return k.invoke(S1{X: operand}), nil

	case tagK:
		return k.invoke(K1{V: operand}), nil

	default:
		panic("runtime: unknown Prim tag")
	}
}
