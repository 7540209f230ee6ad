package planner

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/planck-ai/planck/internal/heuristic"
	"github.com/planck-ai/planck/internal/search"
	"github.com/planck-ai/planck/internal/strips"
)

// HSP is a heuristic search planner: weighted A* over an encoded problem,
// guided by one of the relaxation heuristics. The zero value is not usable;
// construct with NewHSP or NewFromArguments.
type HSP struct {
	kind       heuristic.Kind
	weight     float64
	timeout    int // milliseconds
	traceLevel int
	collect    bool
	stats      Statistics

	logger *slog.Logger
	tracer trace.Tracer
}

var _ Planner = (*HSP)(nil)

// Option configures an HSP planner.
type Option func(*HSP)

// WithLogger sets the logger used for search progress messages.
func WithLogger(logger *slog.Logger) Option {
	return func(p *HSP) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithTracer sets the OpenTelemetry tracer used to trace searches.
func WithTracer(tracer trace.Tracer) Option {
	return func(p *HSP) {
		if tracer != nil {
			p.tracer = tracer
		}
	}
}

// NewHSP returns a planner using the given heuristic and weight, with the
// preset timeout, trace level and statistics collection.
func NewHSP(kind heuristic.Kind, weight float64, opts ...Option) *HSP {
	p := &HSP{
		kind:       kind,
		weight:     weight,
		timeout:    DefaultTimeoutSeconds * 1000,
		traceLevel: DefaultTraceLevel,
		collect:    true,
		logger:     slog.Default(),
		tracer:     trace.NewNoopTracerProvider().Tracer("planner"),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// NewFromArguments returns a planner configured from a resolved argument
// set.
func NewFromArguments(args ArgumentSet, opts ...Option) *HSP {
	p := NewHSP(args.Heuristic, args.Weight, opts...)
	p.timeout = args.Timeout
	p.traceLevel = args.TraceLevel
	p.collect = args.Statistics
	return p
}

// SetTimeout sets the search time budget in whole seconds.
func (p *HSP) SetTimeout(seconds int) {
	p.timeout = seconds * 1000
}

// Timeout returns the search time budget in milliseconds.
func (p *HSP) Timeout() int {
	return p.timeout
}

// SetTraceLevel sets the run-time information level.
func (p *HSP) SetTraceLevel(level int) {
	p.traceLevel = level
}

// TraceLevel returns the run-time information level.
func (p *HSP) TraceLevel() int {
	return p.traceLevel
}

// SetStatistics toggles the collection of timing and memory figures.
func (p *HSP) SetStatistics(enabled bool) {
	p.collect = enabled
}

// Statistics returns the figures collected for the most recent run. The
// parsing and encoding fields are writable by the caller that owns those
// phases.
func (p *HSP) Statistics() *Statistics {
	return &p.stats
}

// Search runs weighted A* guided by the configured heuristic. It returns
// the plan found, or nil when the problem admits no plan or the time
// budget ran out.
func (p *HSP) Search(ctx context.Context, problem *strips.Problem) *strips.Plan {
	ctx, span := p.tracer.Start(ctx, "planck.search", trace.WithAttributes(
		attribute.String("planck.heuristic", p.kind.String()),
		attribute.Float64("planck.weight", p.weight),
		attribute.Int("planck.timeout_ms", p.timeout),
	))
	defer span.End()

	h, err := heuristic.New(p.kind, problem)
	if err != nil {
		p.logger.Error("heuristic construction failed", "heuristic", p.kind.String(), "error", err)
		return nil
	}

	p.logger.Info("starting search",
		"problem", problem.ProblemName,
		"heuristic", p.kind.String(),
		"weight", p.weight,
		"timeout_ms", p.timeout,
	)

	searcher := search.New(problem, h, p.weight, time.Duration(p.timeout)*time.Millisecond)
	start := time.Now()
	plan := searcher.Search(ctx)
	elapsed := time.Since(start)

	if p.collect {
		p.stats.SearchTime = elapsed
		p.stats.TotalTime = p.stats.ParsingTime + p.stats.EncodingTime + elapsed
		p.stats.ProblemMemory = problem.MemoryEstimate()
		p.stats.SearchMemory = searcher.MemoryEstimate()
		p.stats.TotalMemory = p.stats.ProblemMemory + p.stats.SearchMemory
		p.stats.PlanLength = 0
		if plan != nil {
			p.stats.PlanLength = plan.Size()
		}
	}

	if plan == nil {
		span.SetAttributes(attribute.Bool("planck.plan_found", false))
		p.logger.Info("no plan found",
			"problem", problem.ProblemName,
			"expanded", searcher.Expanded(),
			"search_time", elapsed,
		)
		return nil
	}

	span.SetAttributes(
		attribute.Bool("planck.plan_found", true),
		attribute.Int("planck.plan_size", plan.Size()),
	)
	p.logger.Info("plan found",
		"problem", problem.ProblemName,
		"size", plan.Size(),
		"cost", plan.Cost(),
		"expanded", searcher.Expanded(),
		"search_time", elapsed,
	)
	return plan
}
