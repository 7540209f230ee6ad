package heuristic

import "fmt"

// Kind selects one of the built-in heuristic functions. The numeric values
// match the planner's -u selector, so KindFromIndex(0) is FastForward and
// KindFromIndex(8) is SetLevel.
type Kind int

const (
	FastForward Kind = iota
	Sum
	SumMutex
	AdjustedSum
	AdjustedSum2
	AdjustedSum2M
	Combo
	Max
	SetLevel
)

var kindNames = [...]string{
	FastForward:   "fast-forward",
	Sum:           "sum",
	SumMutex:      "sum-mutex",
	AdjustedSum:   "adjusted-sum",
	AdjustedSum2:  "adjusted-sum2",
	AdjustedSum2M: "adjusted-sum2m",
	Combo:         "combo",
	Max:           "max",
	SetLevel:      "set-level",
}

// String returns the selector name of the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Valid reports whether k names a built-in heuristic.
func (k Kind) Valid() bool {
	return k >= 0 && int(k) < len(kindNames)
}

// KindFromIndex maps a -u selector value to its Kind.
func KindFromIndex(i int) (Kind, error) {
	if i < 0 || i >= len(kindNames) {
		return 0, fmt.Errorf("heuristic index %d out of range [0,%d]", i, len(kindNames)-1)
	}
	return Kind(i), nil
}

// ParseKind maps a selector name back to its Kind.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("unknown heuristic %q", name)
}
