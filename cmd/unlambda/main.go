// SPDX-License-Identifier: Apache-2.0
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"unlambda/internal/config"
	"unlambda/internal/driver"
	"unlambda/internal/repl"
)

func main() {
	expr := flag.String("e", "", "evaluate this program text instead of reading a file")
	interactive := flag.Bool("i", false, "start the REPL instead of running a program")
	strict := flag.Bool("strict", false, "treat trailing garbage after the program as an error")
	noWarn := flag.Bool("no-warn", false, "suppress trailing-garbage warnings")
	configPath := flag.String("config", "", "path to a YAML config file of defaults")
	flag.Parse()

	// A pipe destination gets no escape codes, matching the teacher CLI's
	// color package default behavior but made explicit here since this
	// binary also drives a REPL that cares about the same check.
	color.NoColor = !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd())

	cfg := &config.Config{}
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			color.Red("%s", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	opts := cfg.ParseOptions()
	if *strict {
		opts.Strict = true
	}
	if *noWarn {
		opts.LogWarnings = false
	}

	if *interactive {
		repl.Start(os.Stdin, os.Stdout, repl.Options{Parse: opts})
		return
	}

	// Precedence: CLI flags override the config file's default_input
	// override the built-in default (stdin).
	var src driver.Input
	switch {
	case *expr != "":
		src = driver.InputString(*expr)
	case flag.NArg() > 0:
		src = driver.InputFile(flag.Arg(0))
	case cfg.DefaultInput != "" && cfg.DefaultInput != "stdin":
		src = driver.InputFile(cfg.DefaultInput)
	default:
		src = driver.InputStdin()
	}

	if err := driver.EvalToStdout(src, driver.InputStdin(), opts); err != nil {
		reportError(src, err)
		os.Exit(1)
	}
}

// reportError prints a friendly caret-style message for a parse failure,
// in the shape of the teacher CLI's reportParseError, or a plain message
// for anything else (an I/O failure has no source position to point at).
func reportError(src driver.Input, err error) {
	evalErr, ok := err.(*driver.EvalError)
	if !ok || evalErr.Parse == nil {
		color.Red("error: %s", err)
		return
	}

	pe := evalErr.Parse
	text, readErr := src.Text()
	if readErr != nil {
		color.Red("error: %s", pe.Message())
		return
	}

	pos := pe.Pos
	lines := strings.Split(text, "\n")
	if pos.Line <= 0 || pos.Line > len(lines) {
		color.Red("error: %s", pe.Message())
		return
	}

	line := lines[pos.Line-1]
	caret := strings.Repeat(" ", max(pos.Column-1, 0)) + "^"

	color.Red("syntax error at line %d, column %d:", pos.Line, pos.Column)
	fmt.Println(line)
	color.HiRed(caret)
	fmt.Printf("-> %s\n", pe.Message())
}
