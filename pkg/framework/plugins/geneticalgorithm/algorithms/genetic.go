package algorithms

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
	"k8s.io/klog/v2"

	"github.com/idaholab/raven/pkg/framework/plugins/geneticalgorithm/analysis"
	"github.com/idaholab/raven/pkg/framework/plugins/geneticalgorithm/framework"
	"github.com/idaholab/raven/pkg/framework/plugins/geneticalgorithm/repair"
	"github.com/idaholab/raven/pkg/framework/plugins/geneticalgorithm/sampling"
	"github.com/idaholab/raven/pkg/framework/plugins/geneticalgorithm/survivors"
	"github.com/idaholab/raven/pkg/metrics"
)

const (
	Name = "GeneticAlgorithm"
)

// Config holds configuration parameters for the genetic algorithm
type Config struct {
	PopulationSize int
	Generations    int

	CrossoverType        string
	CrossoverProbability float64
	// CrossoverPoints is the cut count of kPointCrossover.
	CrossoverPoints int

	MutationType        string
	MutationProbability float64

	TournamentSize    int
	SurvivorSelection string
	// Repair names the repair operator, empty disables repair.
	Repair string
	// Initialization names the sampler, empty defers to Problem.Initialize.
	Initialization string
	GridPoints     int

	// Parallelism bounds concurrent evaluations, zero means one per CPU.
	Parallelism int
	Seed        uint64
}

// Option customizes a GeneticAlgorithm.
type Option func(*GeneticAlgorithm)

// WithMetrics records run metrics into m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(g *GeneticAlgorithm) {
		g.metrics = m
	}
}

// WithTracer emits a span per run and per generation.
func WithTracer(t trace.Tracer) Option {
	return func(g *GeneticAlgorithm) {
		g.tracer = t
	}
}

// GeneticAlgorithm evolves a population of chromosomes for a Problem.
// Offspring are bred sequentially from one seeded source so a run is
// reproducible; only evaluation runs concurrently.
type GeneticAlgorithm struct {
	config  Config
	problem framework.Problem

	variables   []string
	bounds      []framework.Bounds
	objectives  []framework.ObjectiveFunc
	constraints []framework.Constraint

	rng       *rand.Rand
	sampler   sampling.Sampler
	crossover CrossoverFunc
	mutator   MutatorFunc
	repairer  repair.Repairer
	selector  survivors.SurvivorSelector

	metrics *metrics.Metrics
	tracer  trace.Tracer
}

var _ framework.Algorithm = &GeneticAlgorithm{}

// Result is the outcome of a run.
type Result struct {
	// Final is the last generation.
	Final *framework.Snapshot
	// ParetoFront holds the distinct non-dominated objective vectors of Final.
	ParetoFront []framework.ObjectiveSpacePoint
	// History has one entry per generation, the initial population first.
	History []analysis.GenerationStats
	Elapsed time.Duration
}

// Best returns the fittest chromosome of the final generation.
func (r *Result) Best() (framework.Chromosome, float64) {
	best := 0
	for i, f := range r.Final.Fitness {
		if f > r.Final.Fitness[best] {
			best = i
		}
	}
	return r.Final.Population.Row(best).Clone(), r.Final.Fitness[best]
}

// NewGeneticAlgorithm validates config against problem and wires the
// configured operators.
func NewGeneticAlgorithm(config Config, problem framework.Problem, opts ...Option) (*GeneticAlgorithm, error) {
	if problem == nil {
		return nil, fmt.Errorf("%w: problem is required", framework.ErrConfiguration)
	}
	g := &GeneticAlgorithm{
		config:      config,
		problem:     problem,
		variables:   problem.Variables(),
		bounds:      problem.Bounds(),
		objectives:  problem.ObjectiveFuncs(),
		constraints: problem.Constraints(),
		rng:         rand.New(rand.NewSource(config.Seed)),
		tracer:      noop.NewTracerProvider().Tracer(Name),
	}
	for _, opt := range opts {
		opt(g)
	}

	if len(g.variables) == 0 || len(g.variables) != len(g.bounds) {
		return nil, fmt.Errorf("%w: %s declares %d variables and %d bounds",
			framework.ErrShapeMismatch, problem.Name(), len(g.variables), len(g.bounds))
	}
	if len(g.objectives) == 0 {
		return nil, fmt.Errorf("%w: %s has no objective", framework.ErrConfiguration, problem.Name())
	}
	if config.PopulationSize < 2 {
		return nil, fmt.Errorf("%w: population size must be at least 2, got %d", framework.ErrConfiguration, config.PopulationSize)
	}
	if config.Generations < 0 {
		return nil, fmt.Errorf("%w: negative generation count %d", framework.ErrConfiguration, config.Generations)
	}
	for name, p := range map[string]float64{
		"crossover": config.CrossoverProbability,
		"mutation":  config.MutationProbability,
	} {
		if p < 0 || p > 1 {
			return nil, fmt.Errorf("%w: %s probability %v outside [0, 1]", framework.ErrConfiguration, name, p)
		}
	}
	if g.config.Parallelism <= 0 {
		g.config.Parallelism = runtime.NumCPU()
	}

	var err error
	if g.crossover, err = NewCrossover(config.CrossoverType, config.CrossoverPoints); err != nil {
		return nil, err
	}
	if g.mutator, err = NewMutator(config.MutationType); err != nil {
		return nil, err
	}
	if g.selector, err = survivors.New(config.SurvivorSelection); err != nil {
		return nil, err
	}
	if g.multiObjective() && g.selector.Name() != survivors.RankCrowdingName {
		return nil, fmt.Errorf("%w: %s has %d objectives and needs %s survivor selection, not %s",
			framework.ErrConfiguration, problem.Name(), len(g.objectives), survivors.RankCrowdingName, g.selector.Name())
	}
	if config.Repair != "" {
		domains, err := repair.DomainsFromBounds(g.variables, g.bounds)
		if err != nil {
			return nil, err
		}
		if g.repairer, err = repair.New(config.Repair, domains, g.rng); err != nil {
			return nil, err
		}
	}
	if config.Initialization != "" {
		if g.sampler, err = sampling.New(config.Initialization, config.GridPoints); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// Name returns the optimizer name.
func (g *GeneticAlgorithm) Name() string {
	return Name
}

func (g *GeneticAlgorithm) multiObjective() bool {
	return len(g.objectives) > 1
}

// Evaluate checks the constraints and calculates objective values for a chromosome.
// Infeasible chromosomes, and those with a NaN or -Inf objective, get +Inf
// in every objective. The boolean reports feasibility.
func (g *GeneticAlgorithm) Evaluate(c framework.Chromosome) (framework.ObjectiveSpacePoint, bool) {
	for _, constraint := range g.constraints {
		if !constraint(c) {
			return penalty(len(g.objectives)), false
		}
	}
	res := make(framework.ObjectiveSpacePoint, len(g.objectives))
	for i, objFunc := range g.objectives {
		res[i] = objFunc(c)
		if math.IsNaN(res[i]) || math.IsInf(res[i], -1) {
			return penalty(len(g.objectives)), false
		}
	}
	return res, true
}

func penalty(k int) framework.ObjectiveSpacePoint {
	res := make(framework.ObjectiveSpacePoint, k)
	for i := range res {
		res[i] = math.Inf(1) // Worst possible value (we're minimizing)
	}
	return res
}

// Fitness maps minimized objectives onto the maximized fitness scale used
// by survivor selection.
func Fitness(point framework.ObjectiveSpacePoint) float64 {
	sum := 0.0
	for _, v := range point {
		sum += v
	}
	return -sum
}

// Run executes the genetic algorithm until the configured number of
// generations completes or ctx is done.
func (g *GeneticAlgorithm) Run(ctx context.Context) (*Result, error) {
	startTime := time.Now()
	logger := klog.FromContext(ctx).WithValues("optimizer", Name, "problem", g.problem.Name())

	ctx, span := g.tracer.Start(ctx, "GeneticAlgorithm.Run", trace.WithAttributes(
		attribute.String("problem", g.problem.Name()),
		attribute.Int("populationSize", g.config.PopulationSize),
		attribute.Int("generations", g.config.Generations),
		attribute.String("survivorSelection", g.selector.Name()),
	))
	defer span.End()

	logger.Info("Starting evolution",
		"populationSize", g.config.PopulationSize,
		"generations", g.config.Generations,
		"crossover", g.config.CrossoverType,
		"crossoverProbability", g.config.CrossoverProbability,
		"mutation", g.config.MutationType,
		"mutationProbability", g.config.MutationProbability,
		"survivorSelection", g.selector.Name(),
		"parallelism", g.config.Parallelism,
	)

	initial, err := g.initialPopulation()
	if err != nil {
		return nil, fail(span, err)
	}
	current, err := g.evaluate(ctx, initial)
	if err != nil {
		return nil, fail(span, err)
	}
	if g.multiObjective() {
		if err := rankSnapshot(current); err != nil {
			return nil, fail(span, err)
		}
	}
	stats, err := analysis.Summarize(0, current)
	if err != nil {
		return nil, fail(span, err)
	}
	history := []analysis.GenerationStats{stats}
	logger.V(2).Info("Initial population evaluated", "feasible", stats.Feasible, "unique", stats.Unique)

	for gen := 1; gen <= g.config.Generations; gen++ {
		if err := ctx.Err(); err != nil {
			return nil, fail(span, fmt.Errorf("generation %d: %w", gen, err))
		}
		current, stats, err = g.generation(ctx, gen, current)
		if err != nil {
			return nil, fail(span, err)
		}
		history = append(history, stats)

		if gen%10 == 0 || gen <= 5 { // Log every 10 generations and first 5
			logger.V(2).Info("Generation complete",
				"generation", gen,
				"bestFitness", stats.BestFitness,
				"meanFitness", stats.MeanFitness,
				"feasible", stats.Feasible,
				"unique", stats.Unique,
			)
		}
	}

	front, err := GetParetoFront(current)
	if err != nil {
		return nil, fail(span, err)
	}
	g.metrics.SetParetoFrontSize(g.problem.Name(), len(front))

	elapsed := time.Since(startTime)
	logger.Info("Evolution complete",
		"elapsed", elapsed,
		"bestFitness", stats.BestFitness,
		"paretoFrontSize", len(front),
	)
	if g.config.Generations > 0 {
		logger.V(3).Info("Time per generation", "duration", elapsed/time.Duration(g.config.Generations))
	}

	return &Result{
		Final:       current,
		ParetoFront: front,
		History:     history,
		Elapsed:     elapsed,
	}, nil
}

func fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}

func (g *GeneticAlgorithm) initialPopulation() (*framework.Population, error) {
	var chromosomes []framework.Chromosome
	if g.sampler != nil {
		var err error
		if chromosomes, err = g.sampler.Sample(g.rng, g.bounds, g.config.PopulationSize); err != nil {
			return nil, fmt.Errorf("initial population: %w", err)
		}
	} else {
		chromosomes = g.problem.Initialize(g.rng, g.config.PopulationSize)
	}
	if len(chromosomes) != g.config.PopulationSize {
		return nil, fmt.Errorf("%w: could not initialize population with size %d, got %d",
			framework.ErrShapeMismatch, g.config.PopulationSize, len(chromosomes))
	}
	return framework.NewPopulation(g.variables, chromosomes)
}

// generation breeds, repairs and evaluates one batch of offspring and lets
// the survivor selector form the next generation.
func (g *GeneticAlgorithm) generation(ctx context.Context, gen int, current *framework.Snapshot) (*framework.Snapshot, analysis.GenerationStats, error) {
	ctx, span := g.tracer.Start(ctx, "generation", trace.WithAttributes(attribute.Int("generation", gen)))
	defer span.End()
	start := time.Now()

	offspring, err := g.breed(current)
	if err != nil {
		return nil, analysis.GenerationStats{}, fmt.Errorf("generation %d: %w", gen, err)
	}
	if g.repairer != nil {
		repaired, err := g.repairer.Repair(offspring)
		if err != nil {
			return nil, analysis.GenerationStats{}, fmt.Errorf("generation %d: %s: %w", gen, g.repairer.Name(), err)
		}
		g.metrics.RecordRepairs(g.problem.Name(), g.repairer.Name(), changedRows(offspring, repaired))
		offspring = repaired
	}

	evaluated, err := g.evaluate(ctx, offspring)
	if err != nil {
		return nil, analysis.GenerationStats{}, fmt.Errorf("generation %d: %w", gen, err)
	}
	next, err := g.selector.SelectSurvivors(current, evaluated)
	if err != nil {
		g.metrics.RecordSelectionError(g.selector.Name())
		return nil, analysis.GenerationStats{}, fmt.Errorf("generation %d: %s: %w", gen, g.selector.Name(), err)
	}

	stats, err := analysis.Summarize(gen, next)
	if err != nil {
		return nil, analysis.GenerationStats{}, err
	}
	g.metrics.RecordGeneration(g.problem.Name(), g.selector.Name(), time.Since(start), stats.BestFitness)
	span.SetAttributes(
		attribute.Float64("bestFitness", stats.BestFitness),
		attribute.Int("feasible", stats.Feasible),
	)
	return next, stats, nil
}

// breed fills one population worth of children from tournament winners.
func (g *GeneticAlgorithm) breed(current *framework.Snapshot) (*framework.Population, error) {
	popSize := current.Size()
	children := make([]framework.Chromosome, 0, popSize+1)
	for len(children) < popSize {
		parent1 := current.Population.Row(TournamentSelect(g.rng, current, g.config.TournamentSize))
		parent2 := current.Population.Row(TournamentSelect(g.rng, current, g.config.TournamentSize))

		child1, child2 := parent1.Clone(), parent2.Clone()
		if g.rng.Float64() < g.config.CrossoverProbability {
			child1, child2 = g.crossover(g.rng, parent1, parent2)
		}
		g.mutator(g.rng, child1, g.bounds, g.config.MutationProbability)
		g.mutator(g.rng, child2, g.bounds, g.config.MutationProbability)

		children = append(children, child1, child2)
	}
	return framework.NewPopulation(g.variables, children[:popSize])
}

// evaluate scores every chromosome with at most Parallelism evaluations in
// flight.
func (g *GeneticAlgorithm) evaluate(ctx context.Context, pop *framework.Population) (*framework.Snapshot, error) {
	points := make([]framework.ObjectiveSpacePoint, pop.Size())
	feasible := make([]bool, pop.Size())

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(g.config.Parallelism)
	for i := range pop.Chromosomes {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			points[i], feasible[i] = g.Evaluate(pop.Chromosomes[i])
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("evaluation: %w", err)
	}

	fitness := make([]float64, pop.Size())
	feasibleCount := 0
	for i, p := range points {
		fitness[i] = Fitness(p)
		if feasible[i] {
			feasibleCount++
		}
	}
	g.metrics.RecordEvaluations(g.problem.Name(), feasibleCount, pop.Size()-feasibleCount)

	return &framework.Snapshot{
		Population: pop,
		Fitness:    fitness,
		Objectives: points,
	}, nil
}

func changedRows(before, after *framework.Population) int {
	changed := 0
	for i := range before.Chromosomes {
		for j := range before.Chromosomes[i] {
			if before.Chromosomes[i][j] != after.Chromosomes[i][j] {
				changed++
				break
			}
		}
	}
	return changed
}
