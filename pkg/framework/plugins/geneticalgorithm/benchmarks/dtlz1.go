package benchmarks

import (
	"math"

	"golang.org/x/exp/rand"

	"github.com/idaholab/raven/pkg/framework/plugins/geneticalgorithm/framework"
)

// DTLZ1 is scalable to any number of objectives
// It has a linear Pareto front and many local fronts
type DTLZ1 struct {
	numVars       int
	numObjectives int
}

func NewDTLZ1(numVars, numObjectives int) *DTLZ1 {
	// Recommended: numVars = numObjectives + k - 1, where k = 5 for DTLZ1
	return &DTLZ1{
		numVars:       numVars,
		numObjectives: numObjectives,
	}
}

func (p *DTLZ1) Name() string {
	return "DTLZ1"
}

func (p *DTLZ1) Variables() []string {
	return variableNames("x", p.numVars)
}

func (p *DTLZ1) ObjectiveFuncs() []framework.ObjectiveFunc {
	funcs := make([]framework.ObjectiveFunc, p.numObjectives)
	for i := range funcs {
		funcs[i] = func(x framework.Chromosome) float64 {
			return p.objective(x, i)
		}
	}
	return funcs
}

func (p *DTLZ1) g(x framework.Chromosome) float64 {
	k := p.numVars - p.numObjectives + 1
	sum := 0.0
	for i := p.numObjectives - 1; i < p.numVars; i++ {
		sum += math.Pow(x[i]-0.5, 2) - math.Cos(20*math.Pi*(x[i]-0.5))
	}
	return 100 * (float64(k) + sum)
}

func (p *DTLZ1) objective(x framework.Chromosome, objIdx int) float64 {
	f := 0.5 * (1 + p.g(x))
	for i := 0; i < p.numObjectives-objIdx-1; i++ {
		f *= x[i]
	}
	if objIdx > 0 {
		f *= 1 - x[p.numObjectives-objIdx-1]
	}
	return f
}

func (p *DTLZ1) Constraints() []framework.Constraint {
	return nil
}

func (p *DTLZ1) Bounds() []framework.Bounds {
	return unitBounds(p.numVars)
}

func (p *DTLZ1) Initialize(rng *rand.Rand, popSize int) []framework.Chromosome {
	return monteCarlo(rng, p.Bounds(), popSize)
}

func (p *DTLZ1) TrueParetoFront(numPoints int) []framework.ObjectiveSpacePoint {
	// The true front is the hyperplane sum(f_i) = 0.5, only generated for
	// two objectives: a line from (0, 0.5) to (0.5, 0)
	if p.numObjectives != 2 {
		return nil
	}
	points := make([]framework.ObjectiveSpacePoint, numPoints)
	for i := 0; i < numPoints; i++ {
		t := float64(i) / float64(numPoints-1)
		points[i] = framework.ObjectiveSpacePoint{0.5 * t, 0.5 * (1 - t)}
	}
	return points
}
