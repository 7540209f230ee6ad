package pddl

import "strings"

// TypedName is a name with an optional type annotation from a typed list
// such as `?x ?y - block`. Names without an annotation get the universal
// type "object".
type TypedName struct {
	Name string
	Type string
}

// Atom is an applied predicate. Inside an action body the arguments may be
// parameter variables (prefixed with '?'); in an initial state or goal they
// are object names.
type Atom struct {
	Predicate string
	Args      []string
}

// String renders the atom in PDDL syntax, e.g. "(on a b)".
func (a Atom) String() string {
	if len(a.Args) == 0 {
		return "(" + a.Predicate + ")"
	}
	return "(" + a.Predicate + " " + strings.Join(a.Args, " ") + ")"
}

// Predicate is a predicate declaration from the :predicates section.
type Predicate struct {
	Name   string
	Params []TypedName
}

// Arity returns the number of declared parameters.
func (p Predicate) Arity() int { return len(p.Params) }

// Action is a planning operator schema. Preconditions hold the positive
// atoms that must be true before application; Additions and Deletions are
// the positive and negated atoms of the effect conjunction.
type Action struct {
	Name          string
	Parameters    []TypedName
	Preconditions []Atom
	Additions     []Atom
	Deletions     []Atom
}

// Domain is a parsed domain description. Slices preserve declaration order,
// which downstream encoding relies on.
type Domain struct {
	Name         string
	Requirements []string
	Types        []string
	Predicates   []Predicate
	Actions      []Action
}

// Problem is a parsed problem description. Objects, Init and Goal preserve
// declaration order.
type Problem struct {
	Name       string
	DomainName string
	Objects    []TypedName
	Init       []Atom
	Goal       []Atom
}
