// Package driver wires the parser and the evaluator to real I/O: picking
// where a program's source and its runtime standard input come from, and
// where its output goes, then running one to completion. It mirrors the
// shape of the reference implementation's own driver layer rather than
// inventing a new one — the same three-way Input choice, the same
// two/three-way Output choice, the same three convenience entry points.
package driver

import (
	"io"
	"os"
	"strings"
)

// inputKind discriminates the three ways a stream of text can be
// supplied, both as a program's source and as a program's runtime stdin.
type inputKind int

const (
	inputString inputKind = iota
	inputFile
	inputStdin
)

// Input is a closed three-way choice of where a stream of text comes
// from: an in-memory string, a file on disk, or the process's standard
// input. The zero value is an empty string, never a nil source.
type Input struct {
	kind inputKind
	str  string
	path string
}

// InputString wraps a literal program or literal stdin content.
func InputString(s string) Input {
	return Input{kind: inputString, str: s}
}

// InputFile reads from the named file.
func InputFile(path string) Input {
	return Input{kind: inputFile, path: path}
}

// InputStdin reads from the process's standard input.
func InputStdin() Input {
	return Input{kind: inputStdin}
}

// sourcePath is the identity associated with parse errors: the file path for
// InputFile, "" otherwise (a literal string or stdin has no file
// identity to report).
func (in Input) sourcePath() string {
	if in.kind == inputFile {
		return in.path
	}
	return ""
}

// Text materializes the full text of in. Exported for callers (the CLI's
// caret-style error reporter) that need the source text independently of
// running a parse — readAll is the same operation, named for internal use.
func (in Input) Text() (string, error) { return in.readAll() }

// readAll materializes the full text of in, used for parsing (the parser
// needs the whole program up front; there is no streaming grammar here).
func (in Input) readAll() (string, error) {
	switch in.kind {
	case inputString:
		return in.str, nil
	case inputFile:
		b, err := os.ReadFile(in.path)
		if err != nil {
			return "", err
		}
		return string(b), nil
	case inputStdin:
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(b), nil
	default:
		panic("driver: unknown Input kind")
	}
}

// open returns a stream suitable for feeding the evaluator's runtime
// stdin, where bytes are read lazily as the program executes @ rather
// than materialized up front. The caller owns the returned closer.
func (in Input) open() (io.ReadCloser, error) {
	switch in.kind {
	case inputString:
		return io.NopCloser(strings.NewReader(in.str)), nil
	case inputFile:
		return os.Open(in.path)
	case inputStdin:
		return io.NopCloser(os.Stdin), nil
	default:
		panic("driver: unknown Input kind")
	}
}
