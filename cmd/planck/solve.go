package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/planck-ai/planck/cmd/planck/internal"
	"github.com/planck-ai/planck/internal/config"
	"github.com/planck-ai/planck/internal/heuristic"
	"github.com/planck-ai/planck/internal/observability"
	"github.com/planck-ai/planck/internal/pddl"
	"github.com/planck-ai/planck/internal/planner"
	"github.com/planck-ai/planck/internal/render"
	"github.com/planck-ai/planck/internal/store"
	"github.com/planck-ai/planck/internal/strips"
	"github.com/planck-ai/planck/internal/types"
)

var solveCmd = &cobra.Command{
	Use:   "solve -o <domain> -f <problem> [options]",
	Short: "Parse, ground and solve a PDDL planning problem",
	Long: `Solve parses a PDDL domain and problem file, grounds them into a
propositional encoding and searches for a plan with weighted A*.

The command accepts the classic planner argument surface directly:

  planck solve -o domain.pddl -f p01.pddl -u 0 -w 1.0 -t 300 -i 1

Run 'planck solve -h' for the full argument reference.`,
	// Tokens flow into the planner's own argument parser untouched.
	DisableFlagParsing: true,
	SilenceUsage:       true,
	RunE:               runSolve,
}

func runSolve(cmd *cobra.Command, tokens []string) error {
	ctx := cmd.Context()

	cfg, err := loadCLIConfig()
	if err != nil {
		return internal.WrapError(internal.ExitConfigError, "failed to load configuration", err)
	}

	defaults, err := presetArguments(cfg)
	if err != nil {
		return internal.WrapError(internal.ExitConfigError, "invalid planner preset", err)
	}

	// Diagnostics sink for argument resolution, at the configured trace level.
	handler := newLogHandler(cmd.ErrOrStderr(), cfg.Logging, cfg.Planner.TraceLevel)
	base := slog.New(handler)

	args, err := planner.ParseArguments(tokens, base, defaults)
	if errors.Is(err, planner.ErrUsageRequested) {
		cmd.Print(planner.Usage())
		return nil
	}
	if err != nil {
		cmd.Print(planner.Usage())
		return err
	}

	// The resolved -i level replaces the preset for the rest of the run.
	if args.TraceLevel != cfg.Planner.TraceLevel {
		handler = newLogHandler(cmd.ErrOrStderr(), cfg.Logging, args.TraceLevel)
		base = slog.New(handler)
	}

	runID := types.NewID()
	runLog := observability.NewRunLogger(handler, runID.String(), "hsp")

	tracer := trace.NewNoopTracerProvider().Tracer("planck")
	tp, err := observability.InitTracing(ctx, cfg.Tracing)
	if err != nil {
		runLog.Warn(ctx, "tracing initialization failed, continuing without tracing", "error", err)
	} else if tp != nil {
		tracer = tp.Tracer("planck")
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := observability.ShutdownTracing(shutdownCtx, tp); err != nil {
				runLog.Warn(shutdownCtx, "tracing shutdown failed", "error", err)
			}
		}()
	}

	runLog.Info(ctx, "solving planning problem", "domain", args.Domain, "problem", args.Problem)

	// Parse phase
	parseStart := time.Now()
	_, parseSpan := tracer.Start(ctx, "planck.parse", trace.WithAttributes(
		attribute.String("planck.domain", args.Domain),
		attribute.String("planck.problem", args.Problem),
	))
	dom, err := pddl.ParseDomainFile(args.Domain)
	var prob *pddl.Problem
	if err == nil {
		prob, err = pddl.ParseProblemFile(args.Problem)
	}
	parseSpan.End()
	if err != nil {
		runLog.Error(ctx, "parsing failed", "error", err)
		return err
	}
	parsingTime := time.Since(parseStart)

	// Encode phase
	encodeStart := time.Now()
	_, encodeSpan := tracer.Start(ctx, "planck.encode")
	problem, err := strips.Ground(dom, prob)
	encodeSpan.End()
	if err != nil {
		runLog.Error(ctx, "encoding failed", "error", err)
		return err
	}
	encodingTime := time.Since(encodeStart)

	if args.TraceLevel >= 2 {
		base.Debug("problem encoded",
			"domain", problem.DomainName,
			"problem", problem.ProblemName,
			"facts", len(problem.Facts),
			"operators", len(problem.Operators),
		)
	}

	p := planner.NewFromArguments(args, planner.WithLogger(base), planner.WithTracer(tracer))
	st := p.Statistics()
	st.ParsingTime = parsingTime
	st.EncodingTime = encodingTime

	plan := p.Search(ctx, problem)
	if err := ctx.Err(); err != nil {
		return err
	}

	if args.TraceLevel > 0 {
		r := render.NewRenderer()
		out := cmd.OutOrStdout()
		if plan != nil {
			fmt.Fprint(out, r.RenderPlan(plan))
		} else {
			fmt.Fprint(out, r.RenderNoPlan())
		}
		if args.Statistics {
			fmt.Fprintln(out)
			fmt.Fprint(out, r.RenderStatistics(st))
		}
	}

	if cfg.Store.Enabled {
		if err := recordRun(ctx, cfg, runID, args, plan, st); err != nil {
			runLog.Warn(ctx, "failed to record run", "error", err)
		}
	}

	return nil
}

// loadCLIConfig loads the configuration file, falling back to defaults when
// none exists.
func loadCLIConfig() (*config.Config, error) {
	loader := config.NewConfigLoader(config.NewValidator())
	return loader.LoadWithDefaults(resolveConfigPath())
}

// presetArguments builds the argument defaults from the configured planner
// presets.
func presetArguments(cfg *config.Config) (planner.ArgumentSet, error) {
	defaults := planner.DefaultArguments()

	if cfg.Planner.Heuristic != "" {
		kind, err := heuristic.ParseKind(cfg.Planner.Heuristic)
		if err != nil {
			return defaults, err
		}
		defaults.Heuristic = kind
	}
	if cfg.Planner.Weight > 0 {
		defaults.Weight = cfg.Planner.Weight
	}
	if cfg.Planner.Timeout > 0 {
		defaults.Timeout = cfg.Planner.Timeout * 1000
	}
	defaults.TraceLevel = cfg.Planner.TraceLevel
	defaults.Statistics = cfg.Planner.Statistics

	return defaults, nil
}

// newLogHandler builds the diagnostics handler for a run. The trace level
// drives the slog level: 0 silences everything, 1 keeps plan level messages,
// 2 and above enables debug output.
func newLogHandler(w io.Writer, cfg config.LoggingConfig, traceLevel int) slog.Handler {
	level := observability.LevelFromTrace(traceLevel)
	if cfg.Format == "json" {
		return observability.NewJSONHandler(w, level)
	}
	return observability.NewTextHandler(w, level)
}

// recordRun persists the outcome of a solve invocation in the run history.
func recordRun(ctx context.Context, cfg *config.Config, runID types.ID, args planner.ArgumentSet, plan *strips.Plan, st *planner.Statistics) error {
	db, err := openRunStore(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	run := &store.Run{
		ID:            runID,
		Domain:        args.Domain,
		Problem:       args.Problem,
		Heuristic:     args.Heuristic.String(),
		Weight:        args.Weight,
		TimeoutMS:     int64(args.Timeout),
		ParsingMS:     st.ParsingTime.Milliseconds(),
		EncodingMS:    st.EncodingTime.Milliseconds(),
		SearchMS:      st.SearchTime.Milliseconds(),
		TotalMS:       st.TotalTime.Milliseconds(),
		ProblemMemory: st.ProblemMemory,
		SearchMemory:  st.SearchMemory,
	}
	if plan != nil {
		run.Found = true
		run.PlanSize = plan.Size()
		run.PlanCost = plan.Cost()
		run.Actions = plan.Labels()
	}

	return store.NewRunDAO(db).Create(ctx, run)
}
