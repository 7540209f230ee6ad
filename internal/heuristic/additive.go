package heuristic

import "github.com/planck-ai/planck/internal/strips"

// sum estimates distance as the sum of the goal fact levels in the relaxed
// graph. Not admissible, but cheap and informative.
type sum struct {
	p     *strips.Problem
	graph *relaxedGraph
}

func (h *sum) Estimate(s strips.State) int {
	h.graph.expand(s)
	if h.graph.goalLevel == Infinity {
		return Infinity
	}
	return h.graph.sumGoalLevels()
}

// maxLevel estimates distance as the deepest goal fact level in the relaxed
// graph. Admissible.
type maxLevel struct {
	p     *strips.Problem
	graph *relaxedGraph
}

func (h *maxLevel) Estimate(s strips.State) int {
	h.graph.expand(s)
	if h.graph.goalLevel == Infinity {
		return Infinity
	}
	return h.graph.maxGoalLevel()
}
