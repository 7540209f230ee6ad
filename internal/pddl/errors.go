package pddl

import "fmt"

// ParseError describes a syntax error in a PDDL file together with the
// position where it was detected. Line and Column are 1-based.
type ParseError struct {
	File    string
	Line    int
	Column  int
	Message string
}

// Error implements the error interface using the conventional
// file:line:column prefix so editors can jump to the location.
func (e *ParseError) Error() string {
	if e.File == "" {
		return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Message)
	}
	return fmt.Sprintf("%s:%d:%d: %s", e.File, e.Line, e.Column, e.Message)
}
