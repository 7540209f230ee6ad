package strips

// Problem is a grounded planning task: the enumerated fact space, the
// grounded operator table, and the encoded initial and goal states.
type Problem struct {
	DomainName  string
	ProblemName string
	Facts       []Fact
	Operators   []*Operator
	Init        State
	Goal        State
}

// Size returns the number of facts in the fact space.
func (p *Problem) Size() int {
	return len(p.Facts)
}

// IsGoal reports whether s satisfies every goal fact.
func (p *Problem) IsGoal(s State) bool {
	return s.Contains(p.Goal)
}

// MemoryEstimate approximates the encoded problem footprint in bytes:
// the fact table strings plus the bit words of every operator and the
// initial and goal states.
func (p *Problem) MemoryEstimate() int64 {
	var size int64
	for _, f := range p.Facts {
		size += int64(len(f.Predicate))
		for _, a := range f.Args {
			size += int64(len(a))
		}
	}
	for _, op := range p.Operators {
		size += op.Pre.wordBytes() + op.Add.wordBytes() + op.Del.wordBytes()
		size += int64(len(op.Name))
		for _, a := range op.Args {
			size += int64(len(a))
		}
	}
	size += p.Init.wordBytes() + p.Goal.wordBytes()
	return size
}
