package heuristic

import (
	"fmt"
	"math"

	"github.com/planck-ai/planck/internal/strips"
)

// Infinity is the estimate of a state from which the goal is unreachable.
// Search treats such states as dead ends.
const Infinity = math.MaxInt32

// Heuristic estimates the number of steps from a state to the goal.
// Implementations are bound to one problem and are not safe for concurrent
// use; they reuse their graph buffers between calls.
type Heuristic interface {
	Estimate(s strips.State) int
}

// New builds the heuristic of the given kind for a grounded problem.
func New(kind Kind, p *strips.Problem) (Heuristic, error) {
	switch kind {
	case FastForward:
		return &fastForward{p: p, graph: newRelaxedGraph(p)}, nil
	case Sum:
		return &sum{p: p, graph: newRelaxedGraph(p)}, nil
	case Max:
		return &maxLevel{p: p, graph: newRelaxedGraph(p)}, nil
	case SetLevel:
		return &setLevel{p: p, graph: newMutexGraph(p)}, nil
	case SumMutex:
		return &sumMutex{p: p, graph: newMutexGraph(p)}, nil
	case AdjustedSum:
		return &adjustedSum{p: p, relaxed: newRelaxedGraph(p), mutex: newMutexGraph(p)}, nil
	case AdjustedSum2:
		return &adjustedSum2{
			ff:    fastForward{p: p, graph: newRelaxedGraph(p)},
			p:     p,
			mutex: newMutexGraph(p),
		}, nil
	case AdjustedSum2M:
		return &adjustedSum2M{
			ff:    fastForward{p: p, graph: newRelaxedGraph(p)},
			p:     p,
			mutex: newMutexGraph(p),
		}, nil
	case Combo:
		return &combo{p: p, relaxed: newRelaxedGraph(p), mutex: newMutexGraph(p)}, nil
	default:
		return nil, fmt.Errorf("unknown heuristic kind %d", int(kind))
	}
}
