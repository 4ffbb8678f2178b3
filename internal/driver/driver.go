package driver

import (
	"fmt"
	"strings"

	"unlambda/internal/parser"
	"unlambda/internal/runtime"
)

// ParseOptions is the driver-facing name for parser.Options, so callers of
// this package never need to import internal/parser directly.
type ParseOptions = parser.Options

// EvalError wraps the one failure a run can report: either the program
// failed to parse, or an I/O operation underneath it failed. It never
// wraps a runtime evaluation error — the evaluator itself has no failure
// mode once a program parses (see §7).
type EvalError struct {
	// Parse is set when the failure happened during parsing.
	Parse *parser.ParseError
	// Io is set when the failure happened opening, reading or writing a
	// stream.
	Io error
}

func (e *EvalError) Error() string {
	switch {
	case e.Parse != nil:
		return e.Parse.Message()
	case e.Io != nil:
		return fmt.Sprintf("io error: %v", e.Io)
	default:
		return "eval error"
	}
}

func (e *EvalError) Unwrap() error {
	if e.Parse != nil {
		return e.Parse
	}
	return e.Io
}

func ioErr(err error) *EvalError { return &EvalError{Io: err} }

func parseErr(err error) *EvalError {
	if pe, ok := err.(*parser.ParseError); ok {
		return &EvalError{Parse: pe}
	}
	return &EvalError{Io: err}
}

// ParseString parses src with no file identity attached to its positions —
// for a REPL line or a -e flag argument.
func ParseString(src string, opts ParseOptions) (parser.Result, error) {
	return parser.Parse(src, "", opts)
}

// ParseFile reads and parses the named file, attaching its path to every
// position in errors and warnings.
func ParseFile(path string, opts ParseOptions) (parser.Result, error) {
	src, err := InputFile(path).readAll()
	if err != nil {
		return parser.Result{}, ioErr(err)
	}
	return parser.Parse(src, path, opts)
}

// ParseReader parses whatever in supplies, attaching a file identity only
// when in was built with InputFile.
func ParseReader(in Input, opts ParseOptions) (parser.Result, error) {
	src, err := in.readAll()
	if err != nil {
		return parser.Result{}, ioErr(err)
	}
	return parser.Parse(src, in.sourcePath(), opts)
}

// ParseStdin reads and parses the process's standard input.
func ParseStdin(opts ParseOptions) (parser.Result, error) {
	return ParseReader(InputStdin(), opts)
}

// Eval parses program from src, then executes it with stdin supplying the
// runtime's @ reads and out receiving its printed output. It is the one
// choke point every convenience entry point below funnels through.
func Eval(src Input, stdin Input, out *Output, opts ParseOptions) error {
	text, err := src.readAll()
	if err != nil {
		return ioErr(err)
	}

	res, err := parser.Parse(text, src.sourcePath(), opts)
	if err != nil {
		return parseErr(err)
	}

	in, err := stdin.open()
	if err != nil {
		return ioErr(err)
	}
	defer in.Close()

	ctx := runtime.NewCtx(in, out.w)
	if err := runtime.Execute(res.Expr, ctx); err != nil {
		return ioErr(err)
	}
	return nil
}

// EvalToBytes runs a program and returns everything it printed.
func EvalToBytes(src Input, stdin Input, opts ParseOptions) ([]byte, error) {
	out := OutputBuffer()
	if err := Eval(src, stdin, out, opts); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// EvalToStdout runs a program, writing its output directly to the
// process's standard output as it's produced.
func EvalToStdout(src Input, stdin Input, opts ParseOptions) error {
	return Eval(src, stdin, OutputStdout(), opts)
}

// EvalToString runs a program and returns its output as a string, lossily
// repairing any invalid UTF-8 a misbehaving program might emit — the same
// leniency original_source applies via String::from_utf8_lossy.
func EvalToString(src Input, stdin Input, opts ParseOptions) (string, error) {
	b, err := EvalToBytes(src, stdin, opts)
	if err != nil {
		return "", err
	}
	return strings.ToValidUTF8(string(b), "�"), nil
}
