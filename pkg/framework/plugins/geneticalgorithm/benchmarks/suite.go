package benchmarks

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"k8s.io/klog/v2"

	"github.com/idaholab/raven/pkg/framework/plugins/geneticalgorithm/algorithms"
	"github.com/idaholab/raven/pkg/framework/plugins/geneticalgorithm/analysis"
	"github.com/idaholab/raven/pkg/framework/plugins/geneticalgorithm/framework"
	"github.com/idaholab/raven/pkg/framework/plugins/geneticalgorithm/repair"
	"github.com/idaholab/raven/pkg/framework/plugins/geneticalgorithm/survivors"
	"github.com/idaholab/raven/pkg/framework/plugins/geneticalgorithm/util"
)

// trueFrontPoints is the resolution of the reference front used for IGD.
const trueFrontPoints = 500

// TestSuite runs a set of benchmark problems
type TestSuite struct {
	config  algorithms.Config
	opts    []algorithms.Option
	entries []entry
}

type entry struct {
	problem framework.Problem
	config  algorithms.Config
}

// Report summarizes one benchmark run.
type Report struct {
	Problem         string
	ParetoFrontSize int
	BestFitness     float64
	// IGD is NaN when the problem has no known true front.
	IGD float64
}

// NewTestSuite creates a new benchmark test suite
func NewTestSuite(config algorithms.Config, opts ...algorithms.Option) *TestSuite {
	return &TestSuite{
		config: config,
		opts:   opts,
	}
}

// AddProblem adds a problem run with the suite configuration
func (ts *TestSuite) AddProblem(p framework.Problem) {
	ts.AddProblemWithConfig(p, ts.config)
}

// AddProblemWithConfig adds a problem that needs its own operators
func (ts *TestSuite) AddProblemWithConfig(p framework.Problem, config algorithms.Config) {
	ts.entries = append(ts.entries, entry{problem: p, config: config})
}

// AddStandardProblems adds common benchmark problems. The suite
// configuration must use rank and crowding survivor selection for the
// multi-objective ones.
func (ts *TestSuite) AddStandardProblems() {
	ts.AddProblem(NewZDT1(30))
	ts.AddProblem(NewZDT2(30))
	ts.AddProblem(NewZDT3(30))
	ts.AddProblem(NewDTLZ1(7, 2))
	ts.AddProblem(NewDTLZ2(12, 2))
	ts.AddProblem(NewProjectile(20))

	// permutations need order preserving operators and repair
	tour := ts.config
	tour.CrossoverType = algorithms.OnePointCrossoverName
	tour.MutationType = algorithms.InversionMutatorName
	tour.Repair = repair.ReplacementRepairName
	tour.Initialization = ""
	tour.SurvivorSelection = survivors.FitnessBasedName
	ts.AddProblemWithConfig(NewTour(10), tour)
}

// Run executes the test suite, writing plots for every problem into outputDir.
func (ts *TestSuite) Run(ctx context.Context, outputDir string) ([]Report, error) {
	logger := klog.FromContext(ctx)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	reports := make([]Report, 0, len(ts.entries))
	for _, e := range ts.entries {
		problem := e.problem
		logger.Info("Running benchmark", "problem", problem.Name())

		ga, err := algorithms.NewGeneticAlgorithm(e.config, problem, ts.opts...)
		if err != nil {
			return reports, fmt.Errorf("%s: %w", problem.Name(), err)
		}
		result, err := ga.Run(ctx)
		if err != nil {
			return reports, fmt.Errorf("%s: %w", problem.Name(), err)
		}

		_, best := result.Best()
		report := Report{
			Problem:         problem.Name(),
			ParetoFrontSize: len(result.ParetoFront),
			BestFitness:     best,
			IGD:             math.NaN(),
		}

		outputFile := filepath.Join(outputDir, fmt.Sprintf("%s_%s", problem.Name(), algorithms.Name))
		if len(problem.ObjectiveFuncs()) == 2 {
			if err := util.PlotResults(result.ParetoFront, problem, algorithms.Name, outputFile+"_front.html"); err != nil {
				logger.Error(err, "Failed to plot results", "problem", problem.Name())
			}
		}
		if err := util.PlotConvergence(result.History, problem.Name(), outputFile+"_convergence.html"); err != nil {
			logger.Error(err, "Failed to plot convergence", "problem", problem.Name())
		}

		if trueFront := problem.TrueParetoFront(trueFrontPoints); trueFront != nil && len(result.ParetoFront) > 0 {
			igd, err := analysis.IGD(result.ParetoFront, trueFront)
			if err != nil {
				return reports, fmt.Errorf("%s: %w", problem.Name(), err)
			}
			report.IGD = igd
		}
		logger.Info("Benchmark complete",
			"problem", report.Problem,
			"paretoFrontSize", report.ParetoFrontSize,
			"bestFitness", report.BestFitness,
			"igd", report.IGD,
		)
		reports = append(reports, report)
	}
	return reports, nil
}
