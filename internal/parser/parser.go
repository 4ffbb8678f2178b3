// Package parser turns Unlambda source text into a runtime.Expr tree. The
// grammar (§4.H of the language contract) is a single-character lookahead
// grammar with one context-sensitive exception — the character following
// '.' or '?' is never treated as whitespace or a comment, even though
// whitespace and '#'...'\n' comments are elided everywhere else — so
// lexing is done by hand rather than through participle's struct-tag
// codegen, which assumes a whitespace-insensitive token stream throughout.
package parser

import (
	"fmt"
	"os"

	"github.com/alecthomas/participle/v2/lexer"

	"unlambda/internal/runtime"
)

// Options mirrors the grammar contract's `{ strict: bool, log_warnings:
// bool }` parameter: Strict turns trailing non-whitespace after a
// complete expression into a hard error rather than a warning; LogWarnings
// controls whether that warning (when not strict) is printed to stderr.
type Options struct {
	Strict      bool
	LogWarnings bool
}

// Result is a successful parse: the expression tree, plus warning text if
// trailing garbage was found and tolerated (Strict == false).
type Result struct {
	Expr    runtime.Expr
	Warning string
}

// Parse tokenizes and parses src. path is associated with every position
// in errors and warnings; pass "" for sources with no file identity (a
// REPL line, a -e flag argument).
func Parse(src string, path string, opts Options) (Result, error) {
	toks, err := lex([]rune(src), path)
	if err != nil {
		return Result{}, err
	}

	p := &tokenParser{toks: toks, path: path}
	expr, err := p.parseExpr()
	if err != nil {
		return Result{}, err
	}

	tok := p.peek()
	if tok.Type == lexer.EOF {
		return Result{Expr: expr}, nil
	}

	// As with the lexer's own errors, the reported position is the one just
	// past the offending character.
	pos := tok.Pos
	pos.Offset++
	pos.Column++

	if opts.Strict {
		return Result{}, &ParseError{Kind: UnexpectedChar, Ch: tokenFirstRune(tok), Pos: pos, Path: path}
	}

	warning := (&ParseError{Kind: UnexpectedChar, Ch: tokenFirstRune(tok), Pos: pos, Path: path}).Message()
	if opts.LogWarnings {
		fmt.Fprintf(os.Stderr, "warning: trailing input ignored: %s\n", warning)
	}
	return Result{Expr: expr, Warning: warning}, nil
}

// tokenParser walks a flat token slice — produced once by lex — with one
// token of lookahead (peek/advance), building the expression tree by
// straightforward recursive descent: the grammar has exactly one
// nonterminal (expr) and no operator precedence to resolve.
type tokenParser struct {
	toks []lexer.Token
	pos  int
	path string
}

func (p *tokenParser) peek() lexer.Token {
	return p.toks[p.pos]
}

func (p *tokenParser) advance() lexer.Token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *tokenParser) parseExpr() (runtime.Expr, error) {
	tok := p.advance()

	switch tok.Type {
	case lexer.EOF:
		return nil, &ParseError{Kind: UnexpectedEnd, Pos: tok.Pos, Path: p.path}

	case tokBacktick:
		op, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return runtime.App(op, arg), nil

	case tokAt:
		return runtime.Lit(runtime.At), nil

	case tokPipe:
		return runtime.Lit(runtime.Pipe), nil

	case tokDot:
		return runtime.Lit(runtime.Dot{Ch: []rune(tok.Value)[0]}), nil

	case tokQuery:
		return runtime.Lit(runtime.QTest{Ch: []rune(tok.Value)[0]}), nil

	case tokPrim:
		return primLit(tok.Value), nil

	default:
		return nil, &ParseError{Kind: UnexpectedChar, Ch: tokenFirstRune(tok), Pos: tok.Pos, Path: p.path}
	}
}

// primLit maps one of the sixteen primitive/sugar characters to its
// literal value.
func primLit(v string) runtime.Expr {
	switch v {
	case "i", "I":
		return runtime.Lit(runtime.I)
	case "k", "K":
		return runtime.Lit(runtime.K)
	case "s", "S":
		return runtime.Lit(runtime.S)
	case "d", "D":
		return runtime.Lit(runtime.D)
	case "e", "E":
		return runtime.Lit(runtime.E)
	case "c", "C":
		return runtime.Lit(runtime.C)
	case "v", "V":
		return runtime.Lit(runtime.V)
	case "r", "R":
		return runtime.Lit(runtime.R)
	default:
		panic("parser: lexer produced an unrecognized primitive token")
	}
}
