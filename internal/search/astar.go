package search

import (
	"container/heap"
	"context"
	"time"

	"github.com/planck-ai/planck/internal/heuristic"
	"github.com/planck-ai/planck/internal/strips"
)

// nodeOverhead approximates the per-node bookkeeping bytes beyond the
// state bits, for the search memory statistic.
const nodeOverhead = 64

// node is one entry of the open list. seq is the insertion sequence used
// to break f-value ties first-in first-out, which keeps expansions and
// therefore extracted plans reproducible.
type node struct {
	state  strips.State
	key    string
	parent *node
	op     *strips.Operator
	g      float64
	f      float64
	seq    int
}

type openHeap []*node

func (h openHeap) Len() int { return len(h) }

func (h openHeap) Less(i, j int) bool {
	if h[i].f != h[j].f {
		return h[i].f < h[j].f
	}
	return h[i].seq < h[j].seq
}

func (h openHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *openHeap) Push(x any) { *h = append(*h, x.(*node)) }

func (h *openHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}

// Searcher runs weighted A* forward search over a grounded problem:
// f(n) = g(n) + weight*h(n). Successors are generated in operator index
// order; a state is reopened only when reached with strictly better cost.
type Searcher struct {
	problem  *strips.Problem
	h        heuristic.Heuristic
	weight   float64
	timeout  time.Duration
	open     openHeap
	best     map[string]float64
	expanded int
	created  int
}

// New prepares a searcher. timeout bounds the wall-clock search time; a
// non-positive timeout means the search gives up immediately.
func New(p *strips.Problem, h heuristic.Heuristic, weight float64, timeout time.Duration) *Searcher {
	return &Searcher{
		problem: p,
		h:       h,
		weight:  weight,
		timeout: timeout,
	}
}

// Astar runs a one-shot weighted A* search.
func Astar(ctx context.Context, p *strips.Problem, h heuristic.Heuristic, weight float64, timeout time.Duration) *strips.Plan {
	return New(p, h, weight, timeout).Search(ctx)
}

// Search explores until a goal state is popped, the open list empties, the
// deadline passes, or ctx is done. It returns nil when no plan was found.
func (s *Searcher) Search(ctx context.Context) *strips.Plan {
	if s.timeout <= 0 {
		return nil
	}
	deadline := time.Now().Add(s.timeout)

	s.open = s.open[:0]
	s.best = make(map[string]float64)
	s.expanded = 0
	s.created = 0
	heap.Init(&s.open)

	hv := s.h.Estimate(s.problem.Init)
	if hv == heuristic.Infinity {
		return nil
	}
	start := &node{
		state: s.problem.Init.Clone(),
		key:   s.problem.Init.Key(),
		f:     s.weight * float64(hv),
	}
	s.push(start)
	s.best[start.key] = 0

	for s.open.Len() > 0 {
		if ctx.Err() != nil || time.Now().After(deadline) {
			return nil
		}
		n := heap.Pop(&s.open).(*node)
		if bg, ok := s.best[n.key]; ok && n.g > bg {
			continue
		}
		if s.problem.IsGoal(n.state) {
			return reconstruct(n)
		}
		s.expanded++
		s.expand(n)
	}
	return nil
}

func (s *Searcher) expand(n *node) {
	for _, op := range s.problem.Operators {
		if !op.Applicable(n.state) {
			continue
		}
		succ := n.state.Apply(op)
		key := succ.Key()
		g := n.g + op.Cost
		if bg, seen := s.best[key]; seen && g >= bg {
			continue
		}
		hv := s.h.Estimate(succ)
		if hv == heuristic.Infinity {
			continue
		}
		s.best[key] = g
		s.push(&node{
			state:  succ,
			key:    key,
			parent: n,
			op:     op,
			g:      g,
			f:      g + s.weight*float64(hv),
		})
	}
}

func (s *Searcher) push(n *node) {
	n.seq = s.created
	s.created++
	heap.Push(&s.open, n)
}

// Expanded returns the number of expanded nodes of the last search.
func (s *Searcher) Expanded() int {
	return s.expanded
}

// Pending returns the open list size left over from the last search.
func (s *Searcher) Pending() int {
	return s.open.Len()
}

// MemoryEstimate approximates the bytes held by all nodes created during
// the last search.
func (s *Searcher) MemoryEstimate() int64 {
	stateBytes := int64((s.problem.Size()+63)/64) * 8
	return int64(s.created) * (stateBytes + nodeOverhead)
}

func reconstruct(n *node) *strips.Plan {
	var ops []*strips.Operator
	for cur := n; cur.parent != nil; cur = cur.parent {
		ops = append(ops, cur.op)
	}
	plan := strips.NewPlan()
	for i := len(ops) - 1; i >= 0; i-- {
		plan.Append(ops[i])
	}
	return plan
}
