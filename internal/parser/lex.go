package parser

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// Token categories. Each is tagged with the rune of the source character
// that introduces it, except tokPrim, which covers sixteen distinct
// primitive/sugar characters (iIkKsSdDeEcCvV, rR) that all parse the same
// way — as a bare combinator literal — and so share one category.
const (
	tokBacktick rune = '`'
	tokAt       rune = '@'
	tokPipe     rune = '|'
	tokDot      rune = '.'
	tokQuery    rune = '?'
	tokPrim     rune = 'P'
)

// tokenFirstRune recovers the source character a token started with, for
// error messages that must name "the" unexpected character.
func tokenFirstRune(tok lexer.Token) rune {
	switch tok.Type {
	case tokPrim:
		return []rune(tok.Value)[0]
	case lexer.EOF:
		return 0
	default:
		return tok.Type
	}
}

// lex tokenizes src into a flat token stream terminated by lexer.EOF.
// Whitespace and '#'...'\n' comments are skipped between tokens, except
// between '.' or '?' and the character they consume — the one place the
// grammar is not whitespace-insensitive, so skipping there must not
// happen no matter what separates them in a token-at-a-time reading.
func lex(src []rune, path string) ([]lexer.Token, error) {
	var (
		toks       []lexer.Token
		line, col  = 1, 1
		i          = 0
	)

	position := func() lexer.Position {
		return lexer.Position{Filename: path, Offset: i, Line: line, Column: col}
	}
	peek := func() (rune, bool) {
		if i >= len(src) {
			return 0, false
		}
		return src[i], true
	}
	advance := func() (rune, bool) {
		r, ok := peek()
		if !ok {
			return 0, false
		}
		i++
		if r == '\n' {
			line++
			col = 1
		} else {
			col++
		}
		return r, true
	}
	skipTrivia := func() {
		for {
			r, ok := peek()
			if !ok {
				return
			}
			switch {
			case r == '#':
				for {
					r2, ok2 := advance()
					if !ok2 || r2 == '\n' {
						break
					}
				}
			case r == ' ' || r == '\t' || r == '\r' || r == '\n':
				advance()
			default:
				return
			}
		}
	}

	for {
		skipTrivia()
		if _, ok := peek(); !ok {
			break
		}
		startPos := position()
		r, _ := advance()

		switch {
		case r == '`':
			toks = append(toks, lexer.Token{Type: tokBacktick, Value: "`", Pos: startPos})
		case r == '@':
			toks = append(toks, lexer.Token{Type: tokAt, Value: "@", Pos: startPos})
		case r == '|':
			toks = append(toks, lexer.Token{Type: tokPipe, Value: "|", Pos: startPos})
		case isPrimChar(r):
			toks = append(toks, lexer.Token{Type: tokPrim, Value: string(r), Pos: startPos})
		case r == '.' || r == '?':
			payload, ok := advance()
			if !ok {
				return toks, &ParseError{Kind: UnexpectedEnd, Pos: position(), Path: path}
			}
			typ := tokDot
			if r == '?' {
				typ = tokQuery
			}
			toks = append(toks, lexer.Token{Type: typ, Value: string(payload), Pos: startPos})
		default:
			return toks, &ParseError{Kind: UnexpectedChar, Ch: r, Pos: position(), Path: path}
		}
	}

	toks = append(toks, lexer.Token{Type: lexer.EOF, Pos: position()})
	return toks, nil
}

func isPrimChar(r rune) bool {
	switch r {
	case 'i', 'I', 'k', 'K', 's', 'S', 'd', 'D', 'e', 'E', 'c', 'C', 'v', 'V', 'r', 'R':
		return true
	default:
		return false
	}
}
