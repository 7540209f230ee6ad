// Package planner exposes the planner control surface: command line
// argument resolution, run statistics and the heuristic search planner
// itself. The CLI parses and grounds PDDL input, then hands the encoded
// problem to a Planner.
package planner

import (
	"context"

	"github.com/planck-ai/planck/internal/strips"
)

// Planner is the contract shared by search-based planners. Implementations
// keep their configuration between runs, so Search may be called repeatedly
// with different problems.
type Planner interface {
	// SetTimeout sets the search time budget in whole seconds. It takes
	// effect on the next Search call.
	SetTimeout(seconds int)

	// Timeout returns the search time budget in milliseconds.
	Timeout() int

	// SetTraceLevel sets the run-time information level. The level changes
	// the diagnostic volume, never the plan.
	SetTraceLevel(level int)

	// TraceLevel returns the run-time information level.
	TraceLevel() int

	// Statistics returns the figures collected for the most recent run.
	// It never returns nil; before the first Search the figures are zero.
	Statistics() *Statistics

	// Search looks for a plan solving the encoded problem. It returns nil
	// when no plan was found within the time budget.
	Search(ctx context.Context, problem *strips.Problem) *strips.Plan
}
