package planner

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/planck-ai/planck/internal/heuristic"
)

// Presets applied by DefaultArguments.
const (
	DefaultWeight         = 1.0
	DefaultTimeoutSeconds = 300
	DefaultTraceLevel     = 1
)

const usage = `usage: planck solve <args>

OPTIONS   DESCRIPTIONS
-o <str>    operator file name
-f <str>    fact file name
-w <num>    the weight used in the A* search (preset: 1.0)
-t <num>    maximum search time in seconds (preset: 300)
-u <num>    the heuristic to use (preset: 0)
     0      fast-forward heuristic
     1      sum heuristic
     2      sum-mutex heuristic
     3      adjusted-sum heuristic
     4      adjusted-sum2 heuristic
     5      adjusted-sum2m heuristic
     6      combo heuristic
     7      max heuristic
     8      set-level heuristic
-i <num>    run-time information level (preset: 1)
     0      nothing
     1      plan and search statistics
     2      1 + problem constants and predicates
     3      2 + parsed operators, initial and goal state
     4      3 + grounded facts and operators
     5      4 + expanded search nodes
     6      5 + heuristic values of expanded nodes
     7      6 + open and closed list sizes
     8      7 + various debugging information
-h          print this message
`

// Usage returns the command line reference printed on -h and on
// configuration errors.
func Usage() string {
	return usage
}

// ArgumentSet holds one fully resolved planner configuration.
type ArgumentSet struct {
	// Domain is the path of the operator (domain) file.
	Domain string

	// Problem is the path of the fact (problem) file.
	Problem string

	// Heuristic selects the heuristic driving the search.
	Heuristic heuristic.Kind

	// Weight is the heuristic weight used by the weighted A* search.
	Weight float64

	// Timeout is the search time budget in milliseconds.
	Timeout int

	// TraceLevel controls how much run-time information is printed.
	TraceLevel int

	// Statistics enables the collection of timing and memory figures.
	Statistics bool
}

// DefaultArguments returns the preset configuration: fast-forward
// heuristic, weight 1.0, a 300 second timeout, trace level 1 and
// statistics collection enabled.
func DefaultArguments() ArgumentSet {
	return ArgumentSet{
		Heuristic:  heuristic.FastForward,
		Weight:     DefaultWeight,
		Timeout:    DefaultTimeoutSeconds * 1000,
		TraceLevel: DefaultTraceLevel,
		Statistics: true,
	}
}

// flagHandlers maps each value-taking flag to the function that applies it.
var flagHandlers = map[string]func(*ArgumentSet, string, *slog.Logger) error{
	"-o": applyDomain,
	"-f": applyProblem,
	"-t": applyTimeout,
	"-u": applyHeuristic,
	"-w": applyWeight,
	"-i": applyTraceLevel,
	"-s": applyStatistics,
}

// ParseArguments resolves a command line token list against the given
// defaults. Flags match case-insensitively and each one consumes the next
// token as its value. Unknown flags, missing values and malformed numbers
// abort with a *ConfigurationError, while out-of-range values are only
// reported on the logger. The -h flag aborts with ErrUsageRequested so the
// caller can print the usage message and exit cleanly.
func ParseArguments(tokens []string, logger *slog.Logger, defaults ArgumentSet) (ArgumentSet, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	args := defaults
	for i := 0; i < len(tokens); i += 2 {
		flag := strings.ToLower(tokens[i])
		if flag == "-h" {
			logger.Debug("usage requested")
			return args, ErrUsageRequested
		}
		apply, known := flagHandlers[flag]
		if !known || i+1 >= len(tokens) {
			logger.Error("error when parsing arguments", "flag", tokens[i])
			return args, newConfigurationError(ErrorTypeUnknownArgument, tokens[i], "unknown argument or missing value")
		}
		if err := apply(&args, tokens[i+1], logger); err != nil {
			logger.Error("error when parsing arguments", "flag", flag, "error", err)
			return args, err
		}
	}
	if args.Domain == "" || args.Problem == "" {
		logger.Error("error when parsing arguments", "error", "missing domain or problem description")
		return args, newConfigurationError(ErrorTypeMissingInput, "", "missing domain or problem description")
	}
	return args, nil
}

func applyDomain(args *ArgumentSet, value string, logger *slog.Logger) error {
	if _, err := os.Stat(value); err != nil {
		logger.Warn("operators file does not exist", "path", value)
	}
	args.Domain = value
	return nil
}

func applyProblem(args *ArgumentSet, value string, logger *slog.Logger) error {
	if _, err := os.Stat(value); err != nil {
		logger.Warn("facts file does not exist", "path", value)
	}
	args.Problem = value
	return nil
}

// applyTimeout stores the timeout converted to milliseconds. A negative
// timeout is reported but kept; the search layer treats it as an already
// expired budget.
func applyTimeout(args *ArgumentSet, value string, logger *slog.Logger) error {
	seconds, err := strconv.Atoi(value)
	if err != nil {
		return wrapConfigurationError(ErrorTypeMalformedValue, "-t", fmt.Sprintf("invalid timeout %q", value), err)
	}
	if seconds < 0 {
		logger.Debug("timeout is negative, the search will not start", "seconds", seconds)
	}
	args.Timeout = seconds * 1000
	return nil
}

// applyHeuristic selects the heuristic by index. An index outside the known
// range is reported and leaves the current selection unchanged.
func applyHeuristic(args *ArgumentSet, value string, logger *slog.Logger) error {
	index, err := strconv.Atoi(value)
	if err != nil {
		return wrapConfigurationError(ErrorTypeMalformedValue, "-u", fmt.Sprintf("invalid heuristic index %q", value), err)
	}
	kind, err := heuristic.KindFromIndex(index)
	if err != nil {
		logger.Debug("heuristic index out of range, keeping current heuristic", "index", index)
		return nil
	}
	args.Heuristic = kind
	return nil
}

func applyWeight(args *ArgumentSet, value string, logger *slog.Logger) error {
	weight, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return wrapConfigurationError(ErrorTypeMalformedValue, "-w", fmt.Sprintf("invalid weight %q", value), err)
	}
	if weight < 0 {
		logger.Debug("weight is negative", "weight", weight)
	}
	args.Weight = weight
	return nil
}

func applyTraceLevel(args *ArgumentSet, value string, logger *slog.Logger) error {
	level, err := strconv.Atoi(value)
	if err != nil {
		return wrapConfigurationError(ErrorTypeMalformedValue, "-i", fmt.Sprintf("invalid trace level %q", value), err)
	}
	if level < 0 {
		logger.Debug("trace level is negative", "level", level)
	}
	args.TraceLevel = level
	return nil
}

// applyStatistics treats every value other than "true" as false.
func applyStatistics(args *ArgumentSet, value string, _ *slog.Logger) error {
	args.Statistics = strings.EqualFold(value, "true")
	return nil
}
