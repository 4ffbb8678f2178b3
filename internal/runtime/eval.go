package runtime

// Execute runs e to completion against ctx. It is a flat trampoline: no
// host-language recursion happens across steps, so program recursion depth
// (Church numerals, Y-combinator fixpoints, ...) is bounded by heap —
// the length of the live continuation chain — rather than by the Go call
// stack. A host I/O failure from getc or putc propagates out immediately
// and aborts the run.
func Execute(e Expr, ctx *Ctx) error {
	var task Task = evalTask{Expr: e, Next: Done{}}
	for task != nil {
		next, err := task.step(ctx)
		if err != nil {
			return err
		}
		task = next
	}
	return nil
}
