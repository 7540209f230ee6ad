package strips

import (
	"encoding/binary"

	"github.com/bits-and-blooms/bitset"
)

// State is a truth assignment over the fact space, one bit per fact index.
// All states of a problem share the same length, so keys produced by Key
// are directly comparable.
type State struct {
	bits *bitset.BitSet
}

// NewState returns an empty state sized for a fact space of size facts.
func NewState(size int) State {
	return State{bits: bitset.New(uint(size))}
}

// Set marks fact i true.
func (s State) Set(i int) {
	s.bits.Set(uint(i))
}

// Has reports whether fact i is true.
func (s State) Has(i int) bool {
	return s.bits.Test(uint(i))
}

// Clone returns an independent copy of the state.
func (s State) Clone() State {
	return State{bits: s.bits.Clone()}
}

// Count returns the number of true facts.
func (s State) Count() int {
	return int(s.bits.Count())
}

// Contains reports whether every fact true in other is also true in s.
func (s State) Contains(other State) bool {
	return s.bits.IsSuperSet(other.bits)
}

// Equal reports whether both states hold exactly the same facts.
func (s State) Equal(other State) bool {
	return s.bits.Equal(other.bits)
}

// Intersects reports whether s and other share at least one fact.
func (s State) Intersects(other State) bool {
	return s.bits.IntersectionCardinality(other.bits) > 0
}

// Union adds every fact of other to s in place.
func (s State) Union(other State) {
	s.bits.InPlaceUnion(other.bits)
}

// Each calls fn for every true fact index in ascending order.
func (s State) Each(fn func(i int)) {
	for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
		fn(int(i))
	}
}

// Indexes returns the true fact indexes in ascending order.
func (s State) Indexes() []int {
	out := make([]int, 0, s.Count())
	s.Each(func(i int) { out = append(out, i) })
	return out
}

// Apply returns the successor state after executing op: facts deleted by
// the operator are cleared, then its additions are set.
func (s State) Apply(op *Operator) State {
	next := s.bits.Clone()
	next.InPlaceDifference(op.Del.bits)
	next.InPlaceUnion(op.Add.bits)
	return State{bits: next}
}

// Key returns a canonical byte-string of the underlying words, usable as a
// map key for duplicate detection.
func (s State) Key() string {
	words := s.bits.Bytes()
	buf := make([]byte, len(words)*8)
	for i, w := range words {
		binary.LittleEndian.PutUint64(buf[i*8:], w)
	}
	return string(buf)
}

// wordBytes is the in-memory footprint of the state's bit words.
func (s State) wordBytes() int64 {
	return int64(len(s.bits.Bytes()) * 8)
}
