package heuristic

import "github.com/planck-ai/planck/internal/strips"

// fastForward estimates distance as the length of a relaxed plan extracted
// from the delete-free graph, in the style of Hoffmann's FF.
type fastForward struct {
	p     *strips.Problem
	graph *relaxedGraph
}

// Estimate builds the relaxed graph from s and extracts a relaxed plan by
// regression from the deepest goal level down to level 1. The extraction is
// deterministic: goals are queued in fact-index order, queues are drained in
// insertion order, and achiever ties fall to the smallest operator index.
func (h *fastForward) Estimate(s strips.State) int {
	h.graph.expand(s)
	return h.extract()
}

func (h *fastForward) extract() int {
	g := h.graph
	if g.goalLevel == Infinity {
		return Infinity
	}
	if g.goalLevel == 0 {
		return 0
	}

	deepest := g.goalLevel
	queues := make([][]int, deepest+1)
	queued := make([]map[int]bool, deepest+1)
	achieved := make([]strips.State, deepest+1)
	for l := 1; l <= deepest; l++ {
		queued[l] = make(map[int]bool)
		achieved[l] = strips.NewState(h.p.Size())
	}

	push := func(fact int) {
		lvl := g.factLevel[fact]
		if lvl == 0 || queued[lvl][fact] {
			return
		}
		queued[lvl][fact] = true
		queues[lvl] = append(queues[lvl], fact)
	}
	h.p.Goal.Each(push)

	selections := 0
	for l := deepest; l >= 1; l-- {
		for qi := 0; qi < len(queues[l]); qi++ {
			fact := queues[l][qi]
			if achieved[l].Has(fact) {
				continue
			}
			op := h.p.Operators[h.achiever(fact, l-1)]
			selections++
			achieved[l].Union(op.Add)
			op.Pre.Each(push)
		}
	}
	return selections
}

// achiever picks the operator adding fact at the given level, minimizing the
// summed precondition levels; ties go to the smallest operator index. The
// graph guarantees at least one candidate for every fact above level 0.
func (h *fastForward) achiever(fact, opLevel int) int {
	g := h.graph
	best := -1
	bestDifficulty := 0
	for oi, op := range h.p.Operators {
		if g.opLevel[oi] != opLevel || !op.Add.Has(fact) {
			continue
		}
		difficulty := 0
		op.Pre.Each(func(pf int) { difficulty += g.factLevel[pf] })
		if best == -1 || difficulty < bestDifficulty {
			best = oi
			bestDifficulty = difficulty
		}
	}
	return best
}
