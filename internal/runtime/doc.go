// Package runtime is the evaluator: a small-step abstract machine over
// (expression, continuation) pairs that reduces the combinator family
// {s, k, i, v}, the delay/force pair d, the call/cc family {c, e}, and the
// I/O primitives {.x, r, @, |, ?x}.
//
// Expr, Func and Cont are mutually recursive — a Func can hold a Cont (a
// reified continuation), a Cont can hold a Func (a produced value) or an
// Expr (a not-yet-evaluated operand), and an Expr's leaf case holds a Func.
// The reference implementation keeps all three in one module for the same
// reason; splitting them into separate packages here would just relocate
// the cycle behind an import error.
//
// All three types are immutable once built. Go's pointer and interface
// values are already O(1) to copy and already safely shared across
// goroutines when nothing mutates what they point to, so there is no
// separate reference-counted "shared node" wrapper type in this package —
// adding one over a GC'd language's native sharing would be indirection
// with no behavior behind it. Evaluation itself is strictly single-threaded
// (see Execute); the sharing guarantee only matters because a live
// computation can reach the same Expr or Cont node from more than one
// place (s duplicates its argument, c captures a continuation that outlives
// the frame that captured it).
package runtime
