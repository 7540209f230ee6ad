package pddl

import "strings"

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokLParen
	tokRParen
	tokSymbol
)

type token struct {
	kind tokenKind
	text string
	line int
	col  int
}

// lexer splits PDDL source into parentheses and symbols. PDDL is
// case-insensitive, so symbols are lowercased as they are read.
// Comments run from ';' to the end of the line.
type lexer struct {
	src  []byte
	pos  int
	line int
	col  int
}

func newLexer(src []byte) *lexer {
	return &lexer{src: src, line: 1, col: 1}
}

func (l *lexer) next() token {
	l.skipSpace()
	if l.pos >= len(l.src) {
		return token{kind: tokEOF, line: l.line, col: l.col}
	}
	line, col := l.line, l.col
	switch l.src[l.pos] {
	case '(':
		l.advance()
		return token{kind: tokLParen, text: "(", line: line, col: col}
	case ')':
		l.advance()
		return token{kind: tokRParen, text: ")", line: line, col: col}
	}
	start := l.pos
	for l.pos < len(l.src) && !isDelimiter(l.src[l.pos]) {
		l.advance()
	}
	text := strings.ToLower(string(l.src[start:l.pos]))
	return token{kind: tokSymbol, text: text, line: line, col: col}
}

func (l *lexer) skipSpace() {
	for l.pos < len(l.src) {
		switch c := l.src[l.pos]; {
		case isSpace(c):
			l.advance()
		case c == ';':
			for l.pos < len(l.src) && l.src[l.pos] != '\n' {
				l.advance()
			}
		default:
			return
		}
	}
}

func (l *lexer) advance() {
	if l.src[l.pos] == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	l.pos++
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

func isDelimiter(c byte) bool {
	return isSpace(c) || c == '(' || c == ')' || c == ';'
}
