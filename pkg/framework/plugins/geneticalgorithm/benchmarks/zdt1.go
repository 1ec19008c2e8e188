package benchmarks

import (
	"math"

	"golang.org/x/exp/rand"

	"github.com/idaholab/raven/pkg/framework/plugins/geneticalgorithm/framework"
)

// ZDT1 has a convex Pareto front
type ZDT1 struct {
	numVars int
}

func NewZDT1(numVars int) *ZDT1 {
	return &ZDT1{numVars: numVars}
}

func (p *ZDT1) Name() string {
	return "ZDT1"
}

func (p *ZDT1) Variables() []string {
	return variableNames("x", p.numVars)
}

func (p *ZDT1) ObjectiveFuncs() []framework.ObjectiveFunc {
	return []framework.ObjectiveFunc{p.f1, p.f2}
}

func (p *ZDT1) f1(x framework.Chromosome) float64 {
	return x[0]
}

func (p *ZDT1) f2(x framework.Chromosome) float64 {
	g := zdtG(x)
	return g * (1.0 - math.Sqrt(x[0]/g))
}

// zdtG is the distance function shared by the ZDT family.
func zdtG(x framework.Chromosome) float64 {
	if len(x) < 2 {
		return 1.0
	}
	sum := 0.0
	for i := 1; i < len(x); i++ {
		sum += x[i]
	}
	return 1.0 + 9.0*sum/float64(len(x)-1)
}

func (p *ZDT1) Constraints() []framework.Constraint {
	return nil
}

func (p *ZDT1) Bounds() []framework.Bounds {
	return unitBounds(p.numVars)
}

func (p *ZDT1) Initialize(rng *rand.Rand, popSize int) []framework.Chromosome {
	return monteCarlo(rng, p.Bounds(), popSize)
}

func (p *ZDT1) TrueParetoFront(numPoints int) []framework.ObjectiveSpacePoint {
	points := make([]framework.ObjectiveSpacePoint, numPoints)
	for i := 0; i < numPoints; i++ {
		x := float64(i) / float64(numPoints-1)
		points[i] = framework.ObjectiveSpacePoint{x, 1.0 - math.Sqrt(x)}
	}
	return points
}
