package benchmarks

import (
	"math"

	"golang.org/x/exp/rand"

	"github.com/idaholab/raven/pkg/framework/plugins/geneticalgorithm/framework"
)

// ZDT2 has a non-convex Pareto front
type ZDT2 struct {
	numVars int
}

func NewZDT2(numVars int) *ZDT2 {
	return &ZDT2{numVars: numVars}
}

func (p *ZDT2) Name() string {
	return "ZDT2"
}

func (p *ZDT2) Variables() []string {
	return variableNames("x", p.numVars)
}

func (p *ZDT2) ObjectiveFuncs() []framework.ObjectiveFunc {
	return []framework.ObjectiveFunc{p.f1, p.f2}
}

func (p *ZDT2) f1(x framework.Chromosome) float64 {
	return x[0]
}

func (p *ZDT2) f2(x framework.Chromosome) float64 {
	g := zdtG(x)
	return g * (1.0 - math.Pow(x[0]/g, 2))
}

func (p *ZDT2) Constraints() []framework.Constraint {
	return nil
}

func (p *ZDT2) Bounds() []framework.Bounds {
	return unitBounds(p.numVars)
}

func (p *ZDT2) Initialize(rng *rand.Rand, popSize int) []framework.Chromosome {
	return monteCarlo(rng, p.Bounds(), popSize)
}

func (p *ZDT2) TrueParetoFront(numPoints int) []framework.ObjectiveSpacePoint {
	points := make([]framework.ObjectiveSpacePoint, numPoints)
	for i := 0; i < numPoints; i++ {
		x := float64(i) / float64(numPoints-1)
		points[i] = framework.ObjectiveSpacePoint{x, 1.0 - x*x}
	}
	return points
}
