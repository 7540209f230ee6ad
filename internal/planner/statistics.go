package planner

import "time"

// Statistics collects the timing and memory figures of a single planner run.
// A fresh planner carries a zero-valued Statistics; Search overwrites the
// search figures on every call, while the parsing and encoding figures are
// recorded by the caller that owns those phases.
type Statistics struct {
	// ParsingTime is the time spent reading and parsing the PDDL input.
	ParsingTime time.Duration

	// EncodingTime is the time spent grounding the parsed problem.
	EncodingTime time.Duration

	// SearchTime is the time spent searching for a plan.
	SearchTime time.Duration

	// TotalTime is the sum of parsing, encoding and search time.
	TotalTime time.Duration

	// ProblemMemory estimates the bytes held by the encoded problem.
	ProblemMemory int64

	// SearchMemory estimates the bytes held by the search node store.
	SearchMemory int64

	// TotalMemory is the sum of problem and search memory.
	TotalMemory int64

	// PlanLength is the number of actions in the plan found, zero when the
	// search came back empty handed.
	PlanLength int
}
