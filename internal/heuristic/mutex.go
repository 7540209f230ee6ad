package heuristic

import "github.com/planck-ai/planck/internal/strips"

// mutexGraph is a GraphPlan-style planning graph with binary mutex
// relations, used by the set-level heuristic family. Unlike the relaxed
// graph it keeps every level, because the measures read arbitrary levels
// after expansion.
type mutexGraph struct {
	p      *strips.Problem
	n      int
	preIdx [][]int
	addIdx [][]int
	levels []mutexLevel
}

type mutexLevel struct {
	facts strips.State
	mutex *pairSet
}

// pairSet is a symmetric relation over fact indexes.
type pairSet struct {
	n    int
	bits []bool
}

func newPairSet(n int) *pairSet {
	return &pairSet{n: n, bits: make([]bool, n*n)}
}

func (ps *pairSet) set(i, j int) {
	ps.bits[i*ps.n+j] = true
	ps.bits[j*ps.n+i] = true
}

func (ps *pairSet) has(i, j int) bool {
	return ps.bits[i*ps.n+j]
}

func (ps *pairSet) equal(other *pairSet) bool {
	for i, b := range ps.bits {
		if b != other.bits[i] {
			return false
		}
	}
	return true
}

func newMutexGraph(p *strips.Problem) *mutexGraph {
	g := &mutexGraph{
		p:      p,
		n:      p.Size(),
		preIdx: make([][]int, len(p.Operators)),
		addIdx: make([][]int, len(p.Operators)),
	}
	for i, op := range p.Operators {
		g.preIdx[i] = op.Pre.Indexes()
		g.addIdx[i] = op.Add.Indexes()
	}
	return g
}

// layerAction is an action node of one graph level: either a grounded
// operator or the persistence (noop) of a single fact.
type layerAction struct {
	op   *strips.Operator
	opIx int
	fact int
}

// expand grows the graph from s until the goal facts are jointly present
// and pairwise non-mutex, or until a level repeats both its fact set and
// its mutex relation.
func (g *mutexGraph) expand(s strips.State) {
	g.levels = g.levels[:0]
	g.levels = append(g.levels, mutexLevel{facts: s.Clone(), mutex: newPairSet(g.n)})
	for {
		top := len(g.levels) - 1
		if g.goalSatisfiedAt(top) {
			return
		}
		cur := g.levels[top]
		actions := g.applicableActions(cur)
		amutex := g.actionMutexes(actions, cur)

		nextFacts := cur.facts.Clone()
		for _, a := range actions {
			if a.op != nil {
				nextFacts.Union(a.op.Add)
			}
		}
		nextMutex := g.factMutexes(actions, amutex, nextFacts)
		if nextFacts.Equal(cur.facts) && nextMutex.equal(cur.mutex) {
			return
		}
		g.levels = append(g.levels, mutexLevel{facts: nextFacts, mutex: nextMutex})
	}
}

// applicableActions lists the operators whose preconditions are present and
// pairwise non-mutex at the level, followed by one noop per present fact.
func (g *mutexGraph) applicableActions(cur mutexLevel) []layerAction {
	var actions []layerAction
	for oi, op := range g.p.Operators {
		if !cur.facts.Contains(op.Pre) {
			continue
		}
		if g.preMutex(g.preIdx[oi], cur.mutex) {
			continue
		}
		actions = append(actions, layerAction{op: op, opIx: oi, fact: -1})
	}
	cur.facts.Each(func(f int) {
		actions = append(actions, layerAction{fact: f})
	})
	return actions
}

func (g *mutexGraph) preMutex(pre []int, mutex *pairSet) bool {
	for i := 0; i < len(pre); i++ {
		for j := i + 1; j < len(pre); j++ {
			if mutex.has(pre[i], pre[j]) {
				return true
			}
		}
	}
	return false
}

// actionMutexes computes the binary mutex relation over the level's action
// nodes: inconsistent effects, interference, and competing needs.
func (g *mutexGraph) actionMutexes(actions []layerAction, cur mutexLevel) []bool {
	m := len(actions)
	amutex := make([]bool, m*m)
	for i := 0; i < m; i++ {
		for j := i + 1; j < m; j++ {
			if g.actionsConflict(actions[i], actions[j], cur.mutex) {
				amutex[i*m+j] = true
				amutex[j*m+i] = true
			}
		}
	}
	return amutex
}

func (g *mutexGraph) actionsConflict(a, b layerAction, mutex *pairSet) bool {
	switch {
	case a.op == nil && b.op == nil:
		// Two noops conflict only through their facts.
		return mutex.has(a.fact, b.fact)
	case a.op == nil:
		a, b = b, a
		fallthrough
	case b.op == nil:
		// Operator versus noop: deleting the persisted fact is both
		// inconsistent effects and interference.
		if a.op.Del.Has(b.fact) {
			return true
		}
		for _, p := range g.preIdx[a.opIx] {
			if mutex.has(p, b.fact) {
				return true
			}
		}
		return false
	}
	// Inconsistent effects and interference.
	if a.op.Add.Intersects(b.op.Del) || a.op.Del.Intersects(b.op.Add) {
		return true
	}
	if a.op.Del.Intersects(b.op.Pre) || b.op.Del.Intersects(a.op.Pre) {
		return true
	}
	// Competing needs.
	for _, p := range g.preIdx[a.opIx] {
		for _, q := range g.preIdx[b.opIx] {
			if mutex.has(p, q) {
				return true
			}
		}
	}
	return false
}

// factMutexes marks a fact pair mutex at the next level when every pair of
// distinct achievers conflicts and no single action achieves both.
func (g *mutexGraph) factMutexes(actions []layerAction, amutex []bool, nextFacts strips.State) *pairSet {
	m := len(actions)
	achievers := make([][]int, g.n)
	for ai, a := range actions {
		if a.op != nil {
			for _, f := range g.addIdx[a.opIx] {
				achievers[f] = append(achievers[f], ai)
			}
		} else {
			achievers[a.fact] = append(achievers[a.fact], ai)
		}
	}

	next := newPairSet(g.n)
	present := nextFacts.Indexes()
	for i := 0; i < len(present); i++ {
		for j := i + 1; j < len(present); j++ {
			p, q := present[i], present[j]
			if !g.compatibleAchievers(achievers[p], achievers[q], amutex, m) {
				next.set(p, q)
			}
		}
	}
	return next
}

func (g *mutexGraph) compatibleAchievers(pa, qa []int, amutex []bool, m int) bool {
	for _, a := range pa {
		for _, b := range qa {
			if a == b || !amutex[a*m+b] {
				return true
			}
		}
	}
	return false
}

// goalSatisfiedAt reports whether all goal facts are present and pairwise
// non-mutex at level l.
func (g *mutexGraph) goalSatisfiedAt(l int) bool {
	lv := g.levels[l]
	if !lv.facts.Contains(g.p.Goal) {
		return false
	}
	goals := g.p.Goal.Indexes()
	for i := 0; i < len(goals); i++ {
		for j := i + 1; j < len(goals); j++ {
			if lv.mutex.has(goals[i], goals[j]) {
				return false
			}
		}
	}
	return true
}

// setLevelOf returns the first level satisfying the goal, or Infinity.
func (g *mutexGraph) setLevelOf() int {
	for l := range g.levels {
		if g.goalSatisfiedAt(l) {
			return l
		}
	}
	return Infinity
}

// goalFirstLevel returns the first level where fact gf is present and not
// mutex with any other goal fact, or Infinity.
func (g *mutexGraph) goalFirstLevel(gf int, goals []int) int {
	for l, lv := range g.levels {
		if !lv.facts.Has(gf) {
			continue
		}
		ok := true
		for _, h := range goals {
			if h != gf && lv.mutex.has(gf, h) {
				ok = false
				break
			}
		}
		if ok {
			return l
		}
	}
	return Infinity
}

// pairFirstLevel returns the first level where both facts are present and
// non-mutex, or Infinity.
func (g *mutexGraph) pairFirstLevel(p, q int) int {
	for l, lv := range g.levels {
		if lv.facts.Has(p) && lv.facts.Has(q) && !lv.mutex.has(p, q) {
			return l
		}
	}
	return Infinity
}
