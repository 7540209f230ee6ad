package strips

import "strings"

// Fact is a grounded atom together with its stable index in the fact space.
// Indexes are assigned during encoding and never change afterwards; states,
// operators and heuristics all address facts by index.
type Fact struct {
	Index     int
	Predicate string
	Args      []string
}

// String renders the fact in PDDL syntax, e.g. "(on a b)".
func (f Fact) String() string {
	if len(f.Args) == 0 {
		return "(" + f.Predicate + ")"
	}
	return "(" + f.Predicate + " " + strings.Join(f.Args, " ") + ")"
}

// atomKey builds the lookup key for a grounded atom. Lexing guarantees
// names contain no spaces, so the join is unambiguous.
func atomKey(predicate string, args []string) string {
	if len(args) == 0 {
		return predicate
	}
	return predicate + " " + strings.Join(args, " ")
}
