package strips

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planck-ai/planck/internal/pddl"
)

const testDomain = `
(define (domain blocksworld)
  (:requirements :strips)
  (:predicates (on ?x ?y)
               (ontable ?x)
               (clear ?x)
               (handempty)
               (holding ?x))
  (:action pick-up
    :parameters (?x)
    :precondition (and (clear ?x) (ontable ?x) (handempty))
    :effect (and (not (ontable ?x)) (not (clear ?x)) (not (handempty)) (holding ?x)))
  (:action put-down
    :parameters (?x)
    :precondition (holding ?x)
    :effect (and (not (holding ?x)) (clear ?x) (handempty) (ontable ?x)))
  (:action stack
    :parameters (?x ?y)
    :precondition (and (holding ?x) (clear ?y))
    :effect (and (not (holding ?x)) (not (clear ?y)) (clear ?x) (handempty) (on ?x ?y)))
  (:action unstack
    :parameters (?x ?y)
    :precondition (and (on ?x ?y) (clear ?x) (handempty))
    :effect (and (holding ?x) (clear ?y) (not (clear ?x)) (not (handempty)) (not (on ?x ?y)))))
`

const testProblem = `
(define (problem pb1)
  (:domain blocksworld)
  (:objects a b c)
  (:init (clear a) (on a b) (on b c) (ontable c) (handempty))
  (:goal (and (on c b) (on b a))))
`

func mustGround(t *testing.T, domainSrc, problemSrc string) *Problem {
	t.Helper()
	d, err := pddl.ParseDomain([]byte(domainSrc))
	require.NoError(t, err)
	pb, err := pddl.ParseProblem([]byte(problemSrc))
	require.NoError(t, err)
	p, err := Ground(d, pb)
	require.NoError(t, err)
	return p
}

// TestGround_FactEnumeration verifies predicate-major, rightmost-fastest indexing
func TestGround_FactEnumeration(t *testing.T) {
	p := mustGround(t, testDomain, testProblem)

	// on: 9 tuples, then ontable/clear: 3 each, handempty: 1, holding: 3.
	require.Equal(t, 19, p.Size())

	assert.Equal(t, "(on a a)", p.Facts[0].String())
	assert.Equal(t, "(on a b)", p.Facts[1].String())
	assert.Equal(t, "(on a c)", p.Facts[2].String())
	assert.Equal(t, "(on b a)", p.Facts[3].String())
	assert.Equal(t, "(on c c)", p.Facts[8].String())
	assert.Equal(t, "(ontable a)", p.Facts[9].String())
	assert.Equal(t, "(clear b)", p.Facts[13].String())
	assert.Equal(t, "(handempty)", p.Facts[15].String())
	assert.Equal(t, "(holding c)", p.Facts[18].String())

	for i, f := range p.Facts {
		assert.Equal(t, i, f.Index)
	}
}

// TestGround_OperatorEnumeration verifies action-major, rightmost-fastest grounding
func TestGround_OperatorEnumeration(t *testing.T) {
	p := mustGround(t, testDomain, testProblem)

	// pick-up and put-down over 3 objects, stack and unstack over 3x3 pairs.
	require.Len(t, p.Operators, 24)

	assert.Equal(t, "pick-up a", p.Operators[0].Label())
	assert.Equal(t, "pick-up c", p.Operators[2].Label())
	assert.Equal(t, "put-down a", p.Operators[3].Label())
	assert.Equal(t, "stack a a", p.Operators[6].Label())
	assert.Equal(t, "stack a b", p.Operators[7].Label())
	assert.Equal(t, "stack b a", p.Operators[9].Label())
	assert.Equal(t, "unstack c c", p.Operators[23].Label())

	for i, op := range p.Operators {
		assert.Equal(t, i, op.Index)
		assert.Equal(t, 1.0, op.Cost)
	}
}

// TestGround_OperatorEffects checks one grounding's bitsets in detail
func TestGround_OperatorEffects(t *testing.T) {
	p := mustGround(t, testDomain, testProblem)

	// stack a b: pre (holding a) (clear b); adds (clear a) (handempty) (on a b);
	// deletes (holding a) (clear b).
	stackAB := p.Operators[7]
	assert.Equal(t, []int{13, 16}, stackAB.Pre.Indexes())
	assert.Equal(t, []int{1, 12, 15}, stackAB.Add.Indexes())
	assert.Equal(t, []int{13, 16}, stackAB.Del.Indexes())
}

// TestGround_InitAndGoal checks the encoded states against fact indexes
func TestGround_InitAndGoal(t *testing.T) {
	p := mustGround(t, testDomain, testProblem)

	// init: (clear a) (on a b) (on b c) (ontable c) (handempty)
	assert.Equal(t, []int{1, 5, 11, 12, 15}, p.Init.Indexes())
	// goal: (on c b) (on b a)
	assert.Equal(t, []int{3, 7}, p.Goal.Indexes())
	assert.False(t, p.IsGoal(p.Init))
}

// TestGround_ApplyProducesSuccessor runs one step of the transition function
func TestGround_ApplyProducesSuccessor(t *testing.T) {
	p := mustGround(t, testDomain, testProblem)

	// unstack a b is applicable in the initial state.
	var unstackAB *Operator
	for _, op := range p.Operators {
		if op.Label() == "unstack a b" {
			unstackAB = op
		}
	}
	require.NotNil(t, unstackAB)
	require.True(t, unstackAB.Applicable(p.Init))

	next := p.Init.Apply(unstackAB)
	assert.True(t, next.Has(16), "(holding a) should hold after unstack")
	assert.True(t, next.Has(13), "(clear b) should hold after unstack")
	assert.False(t, next.Has(1), "(on a b) should be deleted")
	assert.False(t, next.Has(15), "(handempty) should be deleted")
	// The original state is unchanged.
	assert.True(t, p.Init.Has(1))
}

// TestGround_DomainNameMismatch rejects a problem for a different domain
func TestGround_DomainNameMismatch(t *testing.T) {
	d, err := pddl.ParseDomain([]byte(testDomain))
	require.NoError(t, err)
	pb, err := pddl.ParseProblem([]byte(`(define (problem p) (:domain gripper) (:objects a))`))
	require.NoError(t, err)

	_, err = Ground(d, pb)
	var eerr *EncodeError
	require.ErrorAs(t, err, &eerr)
	assert.Contains(t, eerr.Message, "gripper")
}

// TestGround_UndeclaredPredicate rejects unknown predicates in the init
func TestGround_UndeclaredPredicate(t *testing.T) {
	d, err := pddl.ParseDomain([]byte(testDomain))
	require.NoError(t, err)
	pb, err := pddl.ParseProblem([]byte(
		`(define (problem p) (:domain blocksworld) (:objects a) (:init (grasped a)))`))
	require.NoError(t, err)

	_, err = Ground(d, pb)
	var eerr *EncodeError
	require.ErrorAs(t, err, &eerr)
	assert.Contains(t, eerr.Message, "grasped")
}

// TestGround_ArityMismatch rejects atoms with the wrong argument count
func TestGround_ArityMismatch(t *testing.T) {
	d, err := pddl.ParseDomain([]byte(testDomain))
	require.NoError(t, err)
	pb, err := pddl.ParseProblem([]byte(
		`(define (problem p) (:domain blocksworld) (:objects a b) (:init (on a)))`))
	require.NoError(t, err)

	_, err = Ground(d, pb)
	var eerr *EncodeError
	require.ErrorAs(t, err, &eerr)
	assert.Contains(t, eerr.Message, "expects 2 arguments")
}

// TestGround_UndeclaredObject rejects unknown objects in the goal
func TestGround_UndeclaredObject(t *testing.T) {
	d, err := pddl.ParseDomain([]byte(testDomain))
	require.NoError(t, err)
	pb, err := pddl.ParseProblem([]byte(
		`(define (problem p) (:domain blocksworld) (:objects a) (:goal (ontable z)))`))
	require.NoError(t, err)

	_, err = Ground(d, pb)
	var eerr *EncodeError
	require.ErrorAs(t, err, &eerr)
	assert.Contains(t, eerr.Message, `"z"`)
}

// TestGround_UnboundVariable rejects action bodies using unknown variables
func TestGround_UnboundVariable(t *testing.T) {
	d, err := pddl.ParseDomain([]byte(`
	  (define (domain d)
	    (:predicates (p ?x))
	    (:action a :parameters (?x) :precondition (p ?y) :effect (p ?x)))`))
	require.NoError(t, err)
	pb, err := pddl.ParseProblem([]byte(`(define (problem q) (:domain d) (:objects o))`))
	require.NoError(t, err)

	_, err = Ground(d, pb)
	var eerr *EncodeError
	require.ErrorAs(t, err, &eerr)
	assert.Contains(t, eerr.Message, "?y")
}

// TestGround_SkipsIllTypedInstantiations drops bindings outside the fact space
func TestGround_SkipsIllTypedInstantiations(t *testing.T) {
	d, err := pddl.ParseDomain([]byte(`
	  (define (domain d)
	    (:requirements :strips :typing)
	    (:types box table)
	    (:predicates (in ?x - box))
	    (:action touch :parameters (?y) :precondition (and) :effect (in ?y)))`))
	require.NoError(t, err)
	pb, err := pddl.ParseProblem([]byte(
		`(define (problem q) (:domain d) (:objects b1 - box t1 - table) (:goal (in b1)))`))
	require.NoError(t, err)

	p, err := Ground(d, pb)
	require.NoError(t, err)

	// Only (in b1) exists; binding ?y=t1 would need (in t1) and is dropped.
	require.Equal(t, 1, p.Size())
	require.Len(t, p.Operators, 1)
	assert.Equal(t, "touch b1", p.Operators[0].Label())
}

// TestGround_TypedBindingOrder restricts candidates by parameter type
func TestGround_TypedBindingOrder(t *testing.T) {
	d, err := pddl.ParseDomain([]byte(`
	  (define (domain logistics)
	    (:requirements :strips :typing)
	    (:types truck location)
	    (:predicates (at ?t - truck ?l - location))
	    (:action drive
	      :parameters (?t - truck ?from ?to - location)
	      :precondition (at ?t ?from)
	      :effect (and (not (at ?t ?from)) (at ?t ?to))))`))
	require.NoError(t, err)
	pb, err := pddl.ParseProblem([]byte(`
	  (define (problem q) (:domain logistics)
	    (:objects t1 t2 - truck pit depot - location)
	    (:init (at t1 pit) (at t2 depot))
	    (:goal (at t1 depot)))`))
	require.NoError(t, err)

	p, err := Ground(d, pb)
	require.NoError(t, err)

	// Facts: at x {t1,t2} x {pit,depot}, rightmost fastest.
	require.Equal(t, 4, p.Size())
	assert.Equal(t, "(at t1 pit)", p.Facts[0].String())
	assert.Equal(t, "(at t1 depot)", p.Facts[1].String())
	assert.Equal(t, "(at t2 pit)", p.Facts[2].String())

	// drive: 2 trucks x 2 origins x 2 destinations.
	require.Len(t, p.Operators, 8)
	assert.Equal(t, "drive t1 pit pit", p.Operators[0].Label())
	assert.Equal(t, "drive t1 pit depot", p.Operators[1].Label())
	assert.Equal(t, "drive t2 depot depot", p.Operators[7].Label())
}

// TestProblem_MemoryEstimate reports a stable positive footprint
func TestProblem_MemoryEstimate(t *testing.T) {
	p := mustGround(t, testDomain, testProblem)

	est := p.MemoryEstimate()
	assert.Positive(t, est)
	assert.Equal(t, est, p.MemoryEstimate())
}
