package benchmarks

import (
	"math"

	"golang.org/x/exp/rand"

	"github.com/idaholab/raven/pkg/framework/plugins/geneticalgorithm/framework"
)

// ZDT3 has a disconnected Pareto front
type ZDT3 struct {
	numVars int
}

func NewZDT3(numVars int) *ZDT3 {
	return &ZDT3{numVars: numVars}
}

func (p *ZDT3) Name() string {
	return "ZDT3"
}

func (p *ZDT3) Variables() []string {
	return variableNames("x", p.numVars)
}

func (p *ZDT3) ObjectiveFuncs() []framework.ObjectiveFunc {
	return []framework.ObjectiveFunc{p.f1, p.f2}
}

func (p *ZDT3) f1(x framework.Chromosome) float64 {
	return x[0]
}

func (p *ZDT3) f2(x framework.Chromosome) float64 {
	g := zdtG(x)
	// ZDT3 has a disconnected front due to the sin term
	h := 1.0 - math.Sqrt(x[0]/g) - (x[0]/g)*math.Sin(10*math.Pi*x[0])
	return g * h
}

func (p *ZDT3) Constraints() []framework.Constraint {
	return nil
}

func (p *ZDT3) Bounds() []framework.Bounds {
	return unitBounds(p.numVars)
}

func (p *ZDT3) Initialize(rng *rand.Rand, popSize int) []framework.Chromosome {
	return monteCarlo(rng, p.Bounds(), popSize)
}

// TrueParetoFront samples the g = 1 curve and keeps its non-dominated
// segments.
func (p *ZDT3) TrueParetoFront(numPoints int) []framework.ObjectiveSpacePoint {
	curve := make([]framework.ObjectiveSpacePoint, numPoints)
	for i := 0; i < numPoints; i++ {
		x := float64(i) / float64(numPoints-1)
		curve[i] = framework.ObjectiveSpacePoint{x, 1.0 - math.Sqrt(x) - x*math.Sin(10*math.Pi*x)}
	}

	fronts, err := framework.NonDominatedSort(curve)
	if err != nil || len(fronts) == 0 {
		return curve
	}
	points := make([]framework.ObjectiveSpacePoint, len(fronts[0]))
	for i, idx := range fronts[0] {
		points[i] = curve[idx]
	}
	return points
}
