// Package render produces styled terminal output for plans, search
// statistics and the recorded run history. Styling degrades to plain
// text when the output is not a terminal.
package render

import (
	"fmt"
	"strings"

	"github.com/planck-ai/planck/internal/planner"
	"github.com/planck-ai/planck/internal/store"
	"github.com/planck-ai/planck/internal/strips"
)

// Renderer renders planner output with a theme.
type Renderer struct {
	theme *Theme
}

// NewRenderer creates a renderer with the default theme.
func NewRenderer() *Renderer {
	return &Renderer{theme: DefaultTheme()}
}

// RenderPlan renders a plan as a numbered action listing with a cost footer.
func (r *Renderer) RenderPlan(plan *strips.Plan) string {
	var b strings.Builder

	b.WriteString(r.theme.FoundStyle.Render("found plan as follows:"))
	b.WriteString("\n\n")

	for i, label := range plan.Labels() {
		index := r.theme.IndexStyle.Render(fmt.Sprintf("%3d:", i))
		action := r.theme.ActionStyle.Render(fmt.Sprintf("(%s)", label))
		fmt.Fprintf(&b, "%s %s\n", index, action)
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %s\n",
		r.theme.LabelStyle.Render("plan total cost:"),
		r.theme.ValueStyle.Render(fmt.Sprintf("%.2f", plan.Cost())))

	return b.String()
}

// RenderNoPlan renders the no-plan outcome.
func (r *Renderer) RenderNoPlan() string {
	return r.theme.NotFoundStyle.Render("no plan found") + "\n"
}

// RenderStatistics renders a search statistics block with aligned values.
func (r *Renderer) RenderStatistics(st *planner.Statistics) string {
	var b strings.Builder

	timeLabel := r.theme.LabelStyle.Render("time spent:  ")
	indent := strings.Repeat(" ", 13)

	fmt.Fprintf(&b, "%s%8.2f seconds parsing\n", timeLabel, st.ParsingTime.Seconds())
	fmt.Fprintf(&b, "%s%8.2f seconds encoding\n", indent, st.EncodingTime.Seconds())
	fmt.Fprintf(&b, "%s%8.2f seconds searching\n", indent, st.SearchTime.Seconds())
	fmt.Fprintf(&b, "%s%8.2f seconds total time\n", indent, st.TotalTime.Seconds())
	b.WriteString("\n")

	memoryLabel := r.theme.LabelStyle.Render("memory used: ")

	fmt.Fprintf(&b, "%s%8.2f MBytes problem representation\n", memoryLabel, megabytes(st.ProblemMemory))
	fmt.Fprintf(&b, "%s%8.2f MBytes searching\n", indent, megabytes(st.SearchMemory))
	fmt.Fprintf(&b, "%s%8.2f MBytes total memory\n", indent, megabytes(st.TotalMemory))
	b.WriteString("\n")

	fmt.Fprintf(&b, "%s %s step(s)\n",
		r.theme.LabelStyle.Render("plan length:"),
		r.theme.ValueStyle.Render(fmt.Sprintf("%d", st.PlanLength)))

	return b.String()
}

// runs table column widths
const (
	colID        = 8
	colCreated   = 19
	colDomain    = 22
	colProblem   = 18
	colHeuristic = 13
	colFound     = 5
	colSize      = 4
	colCost      = 8
)

// RenderRuns renders the run history as a table, newest first.
func (r *Renderer) RenderRuns(runs []*store.Run) string {
	if len(runs) == 0 {
		return r.theme.LabelStyle.Render("no runs recorded") + "\n"
	}

	var b strings.Builder

	header := fmt.Sprintf("%-*s  %-*s  %-*s  %-*s  %-*s  %-*s  %*s  %*s  %s",
		colID, "ID",
		colCreated, "CREATED",
		colDomain, "DOMAIN",
		colProblem, "PROBLEM",
		colHeuristic, "HEURISTIC",
		colFound, "FOUND",
		colSize, "SIZE",
		colCost, "COST",
		"TIME")
	b.WriteString(r.theme.HeaderStyle.Render(header))
	b.WriteString("\n")

	for _, run := range runs {
		found := r.theme.FoundStyle.Render(fmt.Sprintf("%-*s", colFound, "yes"))
		if !run.Found {
			found = r.theme.NotFoundStyle.Render(fmt.Sprintf("%-*s", colFound, "no"))
		}

		fmt.Fprintf(&b, "%-*s  %-*s  %-*s  %-*s  %-*s  %s  %*d  %*.2f  %dms\n",
			colID, run.ID.Short(),
			colCreated, run.CreatedAt.Format("2006-01-02 15:04:05"),
			colDomain, truncate(run.Domain, colDomain),
			colProblem, truncate(run.Problem, colProblem),
			colHeuristic, truncate(run.Heuristic, colHeuristic),
			found,
			colSize, run.PlanSize,
			colCost, run.PlanCost,
			run.TotalMS)
	}

	return b.String()
}

// megabytes converts a byte count to megabytes
func megabytes(bytes int64) float64 {
	return float64(bytes) / (1024.0 * 1024.0)
}

// truncate shortens s to max runes, ending with an ellipsis when cut
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}
