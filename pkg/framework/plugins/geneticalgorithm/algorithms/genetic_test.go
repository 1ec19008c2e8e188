package algorithms_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/idaholab/raven/pkg/framework/plugins/geneticalgorithm/algorithms"
	"github.com/idaholab/raven/pkg/framework/plugins/geneticalgorithm/benchmarks"
	"github.com/idaholab/raven/pkg/framework/plugins/geneticalgorithm/framework"
	"github.com/idaholab/raven/pkg/framework/plugins/geneticalgorithm/repair"
	"github.com/idaholab/raven/pkg/framework/plugins/geneticalgorithm/sampling"
	"github.com/idaholab/raven/pkg/framework/plugins/geneticalgorithm/survivors"
	"github.com/idaholab/raven/pkg/metrics"
)

func baseConfig() algorithms.Config {
	return algorithms.Config{
		PopulationSize:       24,
		Generations:          10,
		CrossoverType:        algorithms.UniformCrossoverName,
		CrossoverProbability: 0.9,
		MutationType:         algorithms.RandomMutatorName,
		MutationProbability:  0.1,
		TournamentSize:       2,
		SurvivorSelection:    survivors.RankCrowdingName,
		Parallelism:          4,
		Seed:                 42,
	}
}

func TestNewGeneticAlgorithmErrors(t *testing.T) {
	tests := []struct {
		name    string
		problem framework.Problem
		mutate  func(*algorithms.Config)
		want    error
	}{
		{
			name:   "missing problem",
			mutate: func(*algorithms.Config) {},
			want:   framework.ErrConfiguration,
		},
		{
			name:    "population too small",
			problem: benchmarks.NewZDT1(5),
			mutate:  func(c *algorithms.Config) { c.PopulationSize = 1 },
			want:    framework.ErrConfiguration,
		},
		{
			name:    "negative generations",
			problem: benchmarks.NewZDT1(5),
			mutate:  func(c *algorithms.Config) { c.Generations = -1 },
			want:    framework.ErrConfiguration,
		},
		{
			name:    "probability above one",
			problem: benchmarks.NewZDT1(5),
			mutate:  func(c *algorithms.Config) { c.MutationProbability = 1.5 },
			want:    framework.ErrConfiguration,
		},
		{
			name:    "unknown crossover",
			problem: benchmarks.NewZDT1(5),
			mutate:  func(c *algorithms.Config) { c.CrossoverType = "blendCrossover" },
			want:    framework.ErrConfiguration,
		},
		{
			name:    "unknown mutator",
			problem: benchmarks.NewZDT1(5),
			mutate:  func(c *algorithms.Config) { c.MutationType = "gaussianMutator" },
			want:    framework.ErrConfiguration,
		},
		{
			name:    "unknown survivor selection",
			problem: benchmarks.NewZDT1(5),
			mutate:  func(c *algorithms.Config) { c.SurvivorSelection = "tournament" },
			want:    framework.ErrConfiguration,
		},
		{
			name:    "multi-objective with fitness selection",
			problem: benchmarks.NewZDT1(5),
			mutate:  func(c *algorithms.Config) { c.SurvivorSelection = survivors.FitnessBasedName },
			want:    framework.ErrConfiguration,
		},
		{
			name:    "unknown repair",
			problem: benchmarks.NewTour(5),
			mutate:  func(c *algorithms.Config) { c.Repair = "swapRepair" },
			want:    framework.ErrConfiguration,
		},
		{
			name:    "unknown initialization",
			problem: benchmarks.NewZDT1(5),
			mutate:  func(c *algorithms.Config) { c.Initialization = "LatinHypercube" },
			want:    framework.ErrConfiguration,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := baseConfig()
			tc.mutate(&cfg)
			if _, err := algorithms.NewGeneticAlgorithm(cfg, tc.problem); !errors.Is(err, tc.want) {
				t.Errorf("Expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestEvaluate(t *testing.T) {
	ga, err := algorithms.NewGeneticAlgorithm(func() algorithms.Config {
		cfg := baseConfig()
		cfg.SurvivorSelection = survivors.FitnessBasedName
		return cfg
	}(), benchmarks.NewProjectile(20))
	if err != nil {
		t.Fatal(err)
	}

	point, feasible := ga.Evaluate(framework.Chromosome{10, 45, 0})
	if !feasible {
		t.Fatal("Expected a feasible shot")
	}
	if got := algorithms.Fitness(point); math.Abs(got-100/9.8) > 1e-9 {
		t.Errorf("Expected fitness equal to the range %v, got %v", 100/9.8, got)
	}

	point, feasible = ga.Evaluate(framework.Chromosome{30, 45, 0})
	if feasible {
		t.Error("Expected the apex constraint to fail")
	}
	if !math.IsInf(point[0], 1) || !math.IsInf(algorithms.Fitness(point), -1) {
		t.Errorf("Expected a +Inf penalty, got %v", point)
	}
}

func TestRunMultiObjective(t *testing.T) {
	cfg := baseConfig()
	ga, err := algorithms.NewGeneticAlgorithm(cfg, benchmarks.NewZDT1(10))
	if err != nil {
		t.Fatal(err)
	}
	result, err := ga.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	final := result.Final
	if err := final.Validate(true); err != nil {
		t.Fatal(err)
	}
	if final.Size() != cfg.PopulationSize {
		t.Errorf("Expected %d survivors, got %d", cfg.PopulationSize, final.Size())
	}
	if len(final.Ranks) != final.Size() || len(final.CrowdingDistances) != final.Size() {
		t.Error("Expected ranks and crowding distances on the final generation")
	}
	if len(result.History) != cfg.Generations+1 {
		t.Errorf("Expected %d history entries, got %d", cfg.Generations+1, len(result.History))
	}
	if len(result.ParetoFront) == 0 {
		t.Fatal("Empty Pareto front")
	}
	for i, a := range result.ParetoFront {
		for j, b := range result.ParetoFront {
			if i != j && framework.Dominates(a, b) {
				t.Errorf("Front point %v dominates %v", a, b)
			}
		}
	}
}

func TestRunSingleObjective(t *testing.T) {
	cfg := baseConfig()
	cfg.Generations = 30
	cfg.SurvivorSelection = survivors.FitnessBasedName
	ga, err := algorithms.NewGeneticAlgorithm(cfg, benchmarks.NewProjectile(20))
	if err != nil {
		t.Fatal(err)
	}
	result, err := ga.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	// fitness based survival is elitist
	for i := 1; i < len(result.History); i++ {
		if result.History[i].BestFitness < result.History[i-1].BestFitness {
			t.Errorf("Best fitness dropped at generation %d: %v -> %v",
				i, result.History[i-1].BestFitness, result.History[i].BestFitness)
		}
	}
	if last, first := result.History[len(result.History)-1].BestFitness, result.History[0].BestFitness; last <= first {
		t.Errorf("Expected improvement over the initial population, got %v -> %v", first, last)
	}

	best, fitness := result.Best()
	if apex := benchmarks.Apex(best[0], best[1], best[2]); apex > 20 {
		t.Errorf("Best shot %v breaks the ceiling with apex %v", best, apex)
	}
	if math.Abs(fitness-benchmarks.Range(best[0], best[1], best[2])) > 1e-9 {
		t.Errorf("Fitness %v does not match the range of %v", fitness, best)
	}
}

func TestRunPermutationWithRepair(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	cfg := baseConfig()
	cfg.Generations = 15
	cfg.CrossoverType = algorithms.TwoPointsCrossoverName
	cfg.MutationType = algorithms.SwapMutatorName
	cfg.MutationProbability = 0.3
	cfg.SurvivorSelection = survivors.AgeBasedName
	cfg.Repair = repair.ReplacementRepairName
	cfg.Initialization = sampling.PermutationName
	problem := benchmarks.NewTour(8)

	ga, err := algorithms.NewGeneticAlgorithm(cfg, problem, algorithms.WithMetrics(m))
	if err != nil {
		t.Fatal(err)
	}
	result, err := ga.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	for i, c := range result.Final.Population.Chromosomes {
		for _, constraint := range problem.Constraints() {
			if !constraint(c) {
				t.Errorf("Survivor %d is not a legal tour: %v", i, c)
			}
		}
	}
	// a full batch of offspring replaces every parent
	if got := result.History[len(result.History)-1].MaxAge; got != 0 {
		t.Errorf("Expected only newborn survivors, max age %d", got)
	}

	if got := testutil.ToFloat64(m.RepairedChromosomes.WithLabelValues(problem.Name(), repair.ReplacementRepairName)); got == 0 {
		t.Error("Expected two point crossover on tours to need repair")
	}
	if got := testutil.ToFloat64(m.GenerationsTotal.WithLabelValues(problem.Name(), survivors.AgeBasedName)); got != 15 {
		t.Errorf("Expected 15 generations recorded, got %v", got)
	}
	if got := testutil.ToFloat64(m.EvaluationsTotal.WithLabelValues(problem.Name(), "feasible")); got != float64(24*16) {
		t.Errorf("Expected every repaired tour evaluated as feasible, got %v", got)
	}
}

func TestRunIsReproducible(t *testing.T) {
	run := func(parallelism int) *algorithms.Result {
		cfg := baseConfig()
		cfg.Parallelism = parallelism
		ga, err := algorithms.NewGeneticAlgorithm(cfg, benchmarks.NewZDT2(6))
		if err != nil {
			t.Fatal(err)
		}
		result, err := ga.Run(context.Background())
		if err != nil {
			t.Fatal(err)
		}
		return result
	}

	a, b := run(1), run(8)
	if diff := cmp.Diff(a.Final.Population, b.Final.Population); diff != "" {
		t.Errorf("Same seed produced different populations (-serial,+parallel):\n%s", diff)
	}
	if diff := cmp.Diff(a.ParetoFront, b.ParetoFront); diff != "" {
		t.Errorf("Same seed produced different fronts (-serial,+parallel):\n%s", diff)
	}
}

func TestRunGridInitialization(t *testing.T) {
	cfg := baseConfig()
	cfg.PopulationSize = 8
	cfg.Generations = 0
	cfg.SurvivorSelection = survivors.FitnessBasedName
	cfg.Initialization = sampling.GridName
	cfg.GridPoints = 2
	ga, err := algorithms.NewGeneticAlgorithm(cfg, benchmarks.NewProjectile(20))
	if err != nil {
		t.Fatal(err)
	}
	result, err := ga.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	want := []framework.Chromosome{
		{1, 5, 0}, {1, 5, 5}, {1, 85, 0}, {1, 85, 5},
		{30, 5, 0}, {30, 5, 5}, {30, 85, 0}, {30, 85, 5},
	}
	if diff := cmp.Diff(want, result.Final.Population.Chromosomes); diff != "" {
		t.Errorf("Unexpected grid population (-want,+got):\n%s", diff)
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ga, err := algorithms.NewGeneticAlgorithm(baseConfig(), benchmarks.NewZDT1(5))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ga.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

func TestRunTracesGenerations(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	cfg := baseConfig()
	cfg.Generations = 3
	ga, err := algorithms.NewGeneticAlgorithm(cfg, benchmarks.NewDTLZ2(12, 2), algorithms.WithTracer(provider.Tracer("test")))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ga.Run(context.Background()); err != nil {
		t.Fatal(err)
	}

	counts := map[string]int{}
	for _, span := range recorder.Ended() {
		counts[span.Name()]++
	}
	if diff := cmp.Diff(map[string]int{"GeneticAlgorithm.Run": 1, "generation": 3}, counts); diff != "" {
		t.Errorf("Unexpected spans (-want,+got):\n%s", diff)
	}
}
