package strips

import (
	"fmt"
	"strings"

	"github.com/planck-ai/planck/internal/pddl"
)

// EncodeError reports a semantic defect found while grounding, such as an
// undeclared predicate or an arity mismatch.
type EncodeError struct {
	Message string
}

func (e *EncodeError) Error() string {
	return e.Message
}

func encodeErrorf(format string, args ...any) error {
	return &EncodeError{Message: fmt.Sprintf(format, args...)}
}

// Ground compiles a parsed domain and problem into a grounded Problem.
//
// The fact space is enumerated predicate by predicate in declaration order,
// argument tuples drawn from the objects in declaration order with the
// rightmost position varying fastest. Operators are grounded action by
// action in declaration order with the same binding order. This fixed
// enumeration makes fact and operator indexes, and therefore search
// results, reproducible across runs.
func Ground(d *pddl.Domain, pb *pddl.Problem) (*Problem, error) {
	if pb.DomainName != "" && pb.DomainName != d.Name {
		return nil, encodeErrorf("problem %q declares domain %q, but the domain file defines %q",
			pb.Name, pb.DomainName, d.Name)
	}

	enc := &encoder{
		domain:    d,
		problem:   pb,
		predicate: make(map[string]pddl.Predicate, len(d.Predicates)),
		object:    make(map[string]string, len(pb.Objects)),
		factIndex: make(map[string]int),
	}
	if err := enc.buildTables(); err != nil {
		return nil, err
	}
	enc.enumerateFacts()

	out := &Problem{
		DomainName:  d.Name,
		ProblemName: pb.Name,
		Facts:       enc.facts,
	}
	if err := enc.groundActions(out); err != nil {
		return nil, err
	}

	init, err := enc.encodeAtoms(pb.Init, "initial state")
	if err != nil {
		return nil, err
	}
	goal, err := enc.encodeAtoms(pb.Goal, "goal")
	if err != nil {
		return nil, err
	}
	out.Init = init
	out.Goal = goal
	return out, nil
}

type encoder struct {
	domain    *pddl.Domain
	problem   *pddl.Problem
	predicate map[string]pddl.Predicate
	object    map[string]string
	facts     []Fact
	factIndex map[string]int
}

func (e *encoder) buildTables() error {
	for _, pred := range e.domain.Predicates {
		if _, dup := e.predicate[pred.Name]; dup {
			return encodeErrorf("duplicate predicate %q", pred.Name)
		}
		e.predicate[pred.Name] = pred
	}
	for _, obj := range e.problem.Objects {
		if _, dup := e.object[obj.Name]; dup {
			return encodeErrorf("duplicate object %q", obj.Name)
		}
		e.object[obj.Name] = obj.Type
	}
	return nil
}

// compatible reports whether an object of type objType can fill a slot
// declared with paramType. Types are flat; "object" accepts anything.
func compatible(paramType, objType string) bool {
	return paramType == "object" || paramType == objType
}

// candidates returns, per parameter position, the object names that can
// fill it, preserving object declaration order.
func (e *encoder) candidates(params []pddl.TypedName) [][]string {
	out := make([][]string, len(params))
	for j, param := range params {
		for _, obj := range e.problem.Objects {
			if compatible(param.Type, obj.Type) {
				out[j] = append(out[j], obj.Name)
			}
		}
	}
	return out
}

// enumerateTuples walks the cartesian product of the candidate lists with
// the rightmost position varying fastest. A zero-arity product yields one
// empty tuple; an empty candidate list yields none.
func enumerateTuples(candidates [][]string, fn func(args []string)) {
	arity := len(candidates)
	if arity == 0 {
		fn(nil)
		return
	}
	for _, c := range candidates {
		if len(c) == 0 {
			return
		}
	}
	idxs := make([]int, arity)
	for {
		args := make([]string, arity)
		for j, k := range idxs {
			args[j] = candidates[j][k]
		}
		fn(args)
		pos := arity - 1
		for pos >= 0 {
			idxs[pos]++
			if idxs[pos] < len(candidates[pos]) {
				break
			}
			idxs[pos] = 0
			pos--
		}
		if pos < 0 {
			return
		}
	}
}

func (e *encoder) enumerateFacts() {
	for _, pred := range e.domain.Predicates {
		cands := e.candidates(pred.Params)
		enumerateTuples(cands, func(args []string) {
			f := Fact{Index: len(e.facts), Predicate: pred.Name, Args: args}
			e.facts = append(e.facts, f)
			e.factIndex[atomKey(pred.Name, args)] = f.Index
		})
	}
}

// checkAction validates an action body once, before any binding is tried:
// predicates must be declared with matching arity, and every argument must
// be either a parameter of the action or a declared object.
func (e *encoder) checkAction(act pddl.Action) error {
	params := make(map[string]bool, len(act.Parameters))
	for _, p := range act.Parameters {
		if params[p.Name] {
			return encodeErrorf("duplicate parameter %q in action %q", p.Name, act.Name)
		}
		params[p.Name] = true
	}
	check := func(atoms []pddl.Atom) error {
		for _, atom := range atoms {
			pred, ok := e.predicate[atom.Predicate]
			if !ok {
				return encodeErrorf("undeclared predicate %q in action %q", atom.Predicate, act.Name)
			}
			if len(atom.Args) != pred.Arity() {
				return encodeErrorf("predicate %q expects %d arguments, got %d in action %q",
					atom.Predicate, pred.Arity(), len(atom.Args), act.Name)
			}
			for _, arg := range atom.Args {
				if strings.HasPrefix(arg, "?") {
					if !params[arg] {
						return encodeErrorf("unbound variable %q in action %q", arg, act.Name)
					}
				} else if _, ok := e.object[arg]; !ok {
					return encodeErrorf("undeclared object %q in action %q", arg, act.Name)
				}
			}
		}
		return nil
	}
	if err := check(act.Preconditions); err != nil {
		return err
	}
	if err := check(act.Additions); err != nil {
		return err
	}
	return check(act.Deletions)
}

func (e *encoder) groundActions(out *Problem) error {
	size := len(e.facts)
	for _, act := range e.domain.Actions {
		if err := e.checkAction(act); err != nil {
			return err
		}
		paramNames := make([]string, len(act.Parameters))
		for j, p := range act.Parameters {
			paramNames[j] = p.Name
		}
		cands := e.candidates(act.Parameters)
		enumerateTuples(cands, func(args []string) {
			binding := make(map[string]string, len(args))
			for j, name := range paramNames {
				binding[name] = args[j]
			}
			op := &Operator{
				Index: len(out.Operators),
				Name:  act.Name,
				Args:  args,
				Pre:   NewState(size),
				Add:   NewState(size),
				Del:   NewState(size),
				Cost:  1.0,
			}
			if !e.fill(op.Pre, act.Preconditions, binding) ||
				!e.fill(op.Add, act.Additions, binding) ||
				!e.fill(op.Del, act.Deletions, binding) {
				// A substituted atom fell outside the typed fact space;
				// this instantiation is ill-typed and is skipped.
				return
			}
			out.Operators = append(out.Operators, op)
		})
	}
	return nil
}

// fill substitutes the binding into each atom and sets the resulting fact
// bits. It reports false when a substituted atom has no index, which only
// happens for type-inconsistent instantiations.
func (e *encoder) fill(s State, atoms []pddl.Atom, binding map[string]string) bool {
	for _, atom := range atoms {
		args := make([]string, len(atom.Args))
		for j, arg := range atom.Args {
			if strings.HasPrefix(arg, "?") {
				args[j] = binding[arg]
			} else {
				args[j] = arg
			}
		}
		idx, ok := e.factIndex[atomKey(atom.Predicate, args)]
		if !ok {
			return false
		}
		s.Set(idx)
	}
	return true
}

// encodeAtoms turns ground atoms from the problem file into a state,
// validating predicates, arities and object names along the way.
func (e *encoder) encodeAtoms(atoms []pddl.Atom, where string) (State, error) {
	s := NewState(len(e.facts))
	for _, atom := range atoms {
		pred, ok := e.predicate[atom.Predicate]
		if !ok {
			return State{}, encodeErrorf("undeclared predicate %q in %s", atom.Predicate, where)
		}
		if len(atom.Args) != pred.Arity() {
			return State{}, encodeErrorf("predicate %q expects %d arguments, got %d in %s",
				atom.Predicate, pred.Arity(), len(atom.Args), where)
		}
		for _, arg := range atom.Args {
			if _, ok := e.object[arg]; !ok {
				return State{}, encodeErrorf("undeclared object %q in %s", arg, where)
			}
		}
		idx, ok := e.factIndex[atomKey(atom.Predicate, atom.Args)]
		if !ok {
			return State{}, encodeErrorf("atom %s in %s does not match the declared types", atom, where)
		}
		s.Set(idx)
	}
	return s, nil
}
