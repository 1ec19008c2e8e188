package benchmarks

import (
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/idaholab/raven/pkg/framework/plugins/geneticalgorithm/framework"
	"github.com/idaholab/raven/pkg/framework/plugins/geneticalgorithm/sampling"
)

// variableNames returns prefix0, prefix1, ...
func variableNames(prefix string, n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("%s%d", prefix, i)
	}
	return names
}

// unitBounds places every variable in [0, 1].
func unitBounds(n int) []framework.Bounds {
	b := make([]framework.Bounds, n)
	for i := range b {
		b[i] = framework.Bounds{L: 0.0, H: 1.0}
	}
	return b
}

// monteCarlo draws the initial population of a continuous problem.
func monteCarlo(rng *rand.Rand, bounds []framework.Bounds, popSize int) []framework.Chromosome {
	population, err := sampling.MonteCarlo{}.Sample(rng, bounds, popSize)
	if err != nil {
		return nil
	}
	return population
}
