package benchmarks

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"

	"github.com/idaholab/raven/pkg/framework/plugins/geneticalgorithm/constraints"
	"github.com/idaholab/raven/pkg/framework/plugins/geneticalgorithm/framework"
	"github.com/idaholab/raven/pkg/framework/plugins/geneticalgorithm/sampling"
)

// Tour is a travelling salesman problem over cities evenly spaced on the
// unit circle. Each gene is a city index, so a legal chromosome is a
// permutation and the shortest closed tour is the regular polygon.
type Tour struct {
	numCities int
	cities    [][2]float64
}

func NewTour(numCities int) *Tour {
	cities := make([][2]float64, numCities)
	for i := range cities {
		a := 2 * math.Pi * float64(i) / float64(numCities)
		cities[i] = [2]float64{math.Cos(a), math.Sin(a)}
	}
	return &Tour{numCities: numCities, cities: cities}
}

func (p *Tour) Name() string {
	return fmt.Sprintf("Tour%d", p.numCities)
}

func (p *Tour) Variables() []string {
	return variableNames("stop", p.numCities)
}

func (p *Tour) Bounds() []framework.Bounds {
	b := make([]framework.Bounds, p.numCities)
	for i := range b {
		b[i] = framework.Bounds{L: 0, H: float64(p.numCities - 1), Integer: true}
	}
	return b
}

func (p *Tour) ObjectiveFuncs() []framework.ObjectiveFunc {
	return []framework.ObjectiveFunc{p.length}
}

func (p *Tour) length(x framework.Chromosome) float64 {
	total := 0.0
	for i := range x {
		a := p.cities[int(x[i])]
		b := p.cities[int(x[(i+1)%len(x)])]
		total += math.Hypot(a[0]-b[0], a[1]-b[1])
	}
	return total
}

func (p *Tour) Constraints() []framework.Constraint {
	return []framework.Constraint{
		constraints.BoundsConstraint(p.Bounds()),
		constraints.PermutationConstraint(),
	}
}

func (p *Tour) Initialize(rng *rand.Rand, popSize int) []framework.Chromosome {
	population, err := sampling.Permutation{}.Sample(rng, p.Bounds(), popSize)
	if err != nil {
		return nil
	}
	return population
}

// TrueParetoFront returns the single optimum, the polygon perimeter.
func (p *Tour) TrueParetoFront(int) []framework.ObjectiveSpacePoint {
	return []framework.ObjectiveSpacePoint{{p.Optimum()}}
}

func (p *Tour) Optimum() float64 {
	return 2 * float64(p.numCities) * math.Sin(math.Pi/float64(p.numCities))
}
