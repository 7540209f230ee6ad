package heuristic

import "github.com/planck-ai/planck/internal/strips"

// clampZero keeps adjusted estimates non-negative.
func clampZero(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

// setLevel estimates distance as the first planning-graph level where all
// goal facts are present and pairwise non-mutex. Admissible.
type setLevel struct {
	p     *strips.Problem
	graph *mutexGraph
}

func (h *setLevel) Estimate(s strips.State) int {
	h.graph.expand(s)
	return h.graph.setLevelOf()
}

// sumMutex sums, per goal fact, the first level where it is present and not
// mutex with any other goal fact.
type sumMutex struct {
	p     *strips.Problem
	graph *mutexGraph
}

func (h *sumMutex) Estimate(s strips.State) int {
	h.graph.expand(s)
	goals := h.p.Goal.Indexes()
	total := 0
	for _, gf := range goals {
		l := h.graph.goalFirstLevel(gf, goals)
		if l == Infinity {
			return Infinity
		}
		total += l
	}
	return total
}

// adjustedSum corrects the additive estimate for goal interaction:
// sum + setLevel - max.
type adjustedSum struct {
	p       *strips.Problem
	relaxed *relaxedGraph
	mutex   *mutexGraph
}

func (h *adjustedSum) Estimate(s strips.State) int {
	h.relaxed.expand(s)
	if h.relaxed.goalLevel == Infinity {
		return Infinity
	}
	h.mutex.expand(s)
	sl := h.mutex.setLevelOf()
	if sl == Infinity {
		return Infinity
	}
	return clampZero(h.relaxed.sumGoalLevels() + sl - h.relaxed.maxGoalLevel())
}

// adjustedSum2 replaces the additive part with the relaxed-plan length:
// ff + setLevel - max.
type adjustedSum2 struct {
	ff    fastForward
	p     *strips.Problem
	mutex *mutexGraph
}

func (h *adjustedSum2) Estimate(s strips.State) int {
	length := h.ff.Estimate(s)
	if length == Infinity {
		return Infinity
	}
	h.mutex.expand(s)
	sl := h.mutex.setLevelOf()
	if sl == Infinity {
		return Infinity
	}
	return clampZero(length + sl - h.ff.graph.maxGoalLevel())
}

// adjustedSum2M uses the deepest goal-pair level instead of set-level:
// ff + maxPairLevel - max.
type adjustedSum2M struct {
	ff    fastForward
	p     *strips.Problem
	mutex *mutexGraph
}

func (h *adjustedSum2M) Estimate(s strips.State) int {
	length := h.ff.Estimate(s)
	if length == Infinity {
		return Infinity
	}
	h.mutex.expand(s)
	goals := h.p.Goal.Indexes()
	maxPair := 0
	for i := 0; i < len(goals); i++ {
		for j := i + 1; j < len(goals); j++ {
			l := h.mutex.pairFirstLevel(goals[i], goals[j])
			if l == Infinity {
				return Infinity
			}
			if l > maxPair {
				maxPair = l
			}
		}
	}
	return clampZero(length + maxPair - h.ff.graph.maxGoalLevel())
}

// combo adds the additive and set-level estimates.
type combo struct {
	p       *strips.Problem
	relaxed *relaxedGraph
	mutex   *mutexGraph
}

func (h *combo) Estimate(s strips.State) int {
	h.relaxed.expand(s)
	if h.relaxed.goalLevel == Infinity {
		return Infinity
	}
	h.mutex.expand(s)
	sl := h.mutex.setLevelOf()
	if sl == Infinity {
		return Infinity
	}
	return h.relaxed.sumGoalLevels() + sl
}
