package strips

import (
	"fmt"
	"strings"
)

// Plan is an ordered sequence of operators leading from the initial state
// to a goal state.
type Plan struct {
	steps []*Operator
}

// NewPlan returns an empty plan.
func NewPlan() *Plan {
	return &Plan{}
}

// Append adds an operator to the end of the plan.
func (p *Plan) Append(op *Operator) {
	p.steps = append(p.steps, op)
}

// Size returns the number of steps.
func (p *Plan) Size() int {
	return len(p.steps)
}

// Cost returns the summed cost of all steps.
func (p *Plan) Cost() float64 {
	var cost float64
	for _, op := range p.steps {
		cost += op.Cost
	}
	return cost
}

// Actions returns the plan steps in order.
func (p *Plan) Actions() []*Operator {
	return p.steps
}

// Labels returns the step labels in order.
func (p *Plan) Labels() []string {
	labels := make([]string, len(p.steps))
	for i, op := range p.steps {
		labels[i] = op.Label()
	}
	return labels
}

// String renders the plan as a numbered listing, one step per line.
func (p *Plan) String() string {
	var b strings.Builder
	for i, op := range p.steps {
		fmt.Fprintf(&b, "%d: (%s)\n", i, op.Label())
	}
	return b.String()
}
