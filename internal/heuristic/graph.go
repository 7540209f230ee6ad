package heuristic

import "github.com/planck-ai/planck/internal/strips"

// relaxedGraph is the delete-free planning graph shared by the additive
// heuristic family. expand records, for one evaluated state, the first
// level each fact appears at (0 for state facts) and the first level each
// operator becomes applicable.
type relaxedGraph struct {
	p         *strips.Problem
	factLevel []int
	opLevel   []int
	goalLevel int
}

func newRelaxedGraph(p *strips.Problem) *relaxedGraph {
	return &relaxedGraph{
		p:         p,
		factLevel: make([]int, p.Size()),
		opLevel:   make([]int, len(p.Operators)),
	}
}

// expand rebuilds the graph from s, growing level by level until every goal
// fact is reached or the fact set stops growing. goalLevel is Infinity when
// the expansion reaches a fixpoint short of the goal.
func (g *relaxedGraph) expand(s strips.State) {
	for i := range g.factLevel {
		g.factLevel[i] = Infinity
	}
	for i := range g.opLevel {
		g.opLevel[i] = Infinity
	}
	s.Each(func(i int) { g.factLevel[i] = 0 })
	g.goalLevel = Infinity

	reached := s.Clone()
	level := 0
	for {
		if reached.Contains(g.p.Goal) {
			g.goalLevel = level
			return
		}
		next := reached.Clone()
		for oi, op := range g.p.Operators {
			if g.opLevel[oi] != Infinity {
				continue
			}
			if reached.Contains(op.Pre) {
				g.opLevel[oi] = level
				next.Union(op.Add)
			}
		}
		if next.Count() == reached.Count() {
			return
		}
		level++
		next.Each(func(i int) {
			if g.factLevel[i] == Infinity {
				g.factLevel[i] = level
			}
		})
		reached = next
	}
}

// sumGoalLevels adds up the goal fact levels; only meaningful when the goal
// was reached.
func (g *relaxedGraph) sumGoalLevels() int {
	total := 0
	g.p.Goal.Each(func(i int) { total += g.factLevel[i] })
	return total
}

// maxGoalLevel is the deepest goal fact level; 0 for an empty goal.
func (g *relaxedGraph) maxGoalLevel() int {
	deepest := 0
	g.p.Goal.Each(func(i int) {
		if g.factLevel[i] > deepest {
			deepest = g.factLevel[i]
		}
	})
	return deepest
}
