package main

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gitrdm/gocsp/pkg/csp"
)

// solveFlags are the solver options shared by every subcommand.
type solveFlags struct {
	variableHeuristic string
	valueHeuristic    string
	propagator        string
	ac3               bool
	timeout           time.Duration
	maxSolutions      int
	seed              int64
	verbose           bool
	trace             bool
}

func newRootCmd() *cobra.Command {
	flags := &solveFlags{}

	root := &cobra.Command{
		Use:           "gocsp",
		Short:         "Finite-domain constraint satisfaction solver",
		Long:          "gocsp solves finite-domain constraint satisfaction problems with backtracking search, AC-3 preprocessing, forward checking, and configurable heuristics.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logrus.SetLevel(logrus.InfoLevel)
			if flags.verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
			if flags.trace {
				logrus.SetLevel(logrus.TraceLevel)
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.variableHeuristic, "var-heuristic", string(csp.HeuristicMRVDegree),
		"variable ordering: MRV, DEGREE, DOM_WDEG, or MRV_DEGREE")
	pf.StringVar(&flags.valueHeuristic, "val-heuristic", string(csp.ValueDefault),
		"value ordering: DEFAULT or LCV")
	pf.StringVar(&flags.propagator, "propagator", string(csp.PropagatorForwardChecking),
		"propagation engine: FORWARD_CHECKING or AC3")
	pf.BoolVar(&flags.ac3, "ac3-preprocess", true, "run AC-3 preprocessing before search")
	pf.DurationVar(&flags.timeout, "timeout", csp.DefaultTimeout, "wall-clock solve budget")
	pf.IntVar(&flags.maxSolutions, "max-solutions", 1, "number of solutions to search for")
	pf.Int64Var(&flags.seed, "seed", csp.DefaultMinConflictsSeed, "random seed for min-conflicts")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "log search progress")
	pf.BoolVar(&flags.trace, "trace", false, "log every search step (very noisy)")

	root.AddCommand(
		newQueensCmd(flags),
		newSudokuCmd(flags),
		newColorCmd(flags),
		newCryptCmd(flags),
		newBenchCmd(flags),
	)
	return root
}

// config assembles a SolverConfig from the shared flags.
func (f *solveFlags) config() csp.SolverConfig {
	config := csp.DefaultSolverConfig().
		WithVariableHeuristic(csp.VariableHeuristic(f.variableHeuristic)).
		WithValueHeuristic(csp.ValueHeuristic(f.valueHeuristic)).
		WithPropagator(csp.PropagatorKind(f.propagator)).
		WithAC3Preprocessing(f.ac3).
		WithTimeout(f.timeout).
		WithMaxSolutions(f.maxSolutions).
		WithMinConflictsSeed(f.seed)
	if f.verbose || f.trace {
		config = config.WithEventPublisher(csp.NewLoggingEventPublisher(logrus.StandardLogger()))
	}
	return config
}

func printMetrics(metrics csp.MetricsSnapshot) {
	fmt.Printf("nodes=%d backtracks=%d checks=%d revisions=%d reductions=%d elapsed=%dms\n",
		metrics.NodesExplored, metrics.Backtracks, metrics.ConstraintChecks,
		metrics.ArcRevisions, metrics.DomainReductions, metrics.ElapsedMs)
}
