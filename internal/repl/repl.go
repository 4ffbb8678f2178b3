// SPDX-License-Identifier: Apache-2.0
//
// Package repl is an interactive read-eval-print loop: one line in, one
// expression parsed and run against the process's real stdin/stdout for
// @/.-style I/O, one line out. It keeps the teacher's repl package's
// prompt-loop shape (bufio.Scanner over an io.Reader, fmt.Print for the
// prompt) and adds terminal detection so piped input doesn't get a prompt
// printed into it.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"unlambda/internal/driver"
)

const prompt = "unl> "

// Options controls how a session evaluates each line.
type Options struct {
	Parse driver.ParseOptions
}

// Start runs the loop, reading lines from in and writing the prompt and
// results to out. Each line is parsed and evaluated independently; parse
// errors are reported and the loop continues rather than exiting.
func Start(in io.Reader, out io.Writer, opts Options) {
	scanner := bufio.NewScanner(in)
	interactive := isTerminal(in)
	errColor := color.New(color.FgRed)

	for {
		if interactive {
			fmt.Fprint(out, prompt)
		}
		if !scanner.Scan() {
			return
		}

		line := scanner.Text()
		if line == "" {
			continue
		}

		result, err := driver.EvalToString(driver.InputString(line), driver.InputStdin(), opts.Parse)
		if err != nil {
			errColor.Fprintf(out, "error: %s\n", err)
			continue
		}
		fmt.Fprintln(out, result)
	}
}

// isTerminal reports whether in is a terminal, so the prompt is suppressed
// for piped or redirected input — matching the CLI's own TTY detection
// (cmd/unlambda) rather than guessing from an *os.File type assertion.
func isTerminal(in io.Reader) bool {
	f, ok := in.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
