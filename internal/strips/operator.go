package strips

import "strings"

// Operator is a grounded action instance. Index is its position in the
// problem's operator table; search and heuristics rely on that order being
// stable across runs.
type Operator struct {
	Index int
	Name  string
	Args  []string
	Pre   State
	Add   State
	Del   State
	Cost  float64
}

// Label returns the operator name followed by its arguments, e.g.
// "stack a b".
func (o *Operator) Label() string {
	if len(o.Args) == 0 {
		return o.Name
	}
	return o.Name + " " + strings.Join(o.Args, " ")
}

// Applicable reports whether every precondition holds in s.
func (o *Operator) Applicable(s State) bool {
	return s.Contains(o.Pre)
}
