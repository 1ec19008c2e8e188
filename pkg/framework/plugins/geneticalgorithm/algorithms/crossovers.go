package algorithms

import (
	"fmt"
	"sort"

	"golang.org/x/exp/rand"

	"github.com/idaholab/raven/pkg/framework/plugins/geneticalgorithm/framework"
)

const (
	OnePointCrossoverName  = "onePointCrossover"
	TwoPointsCrossoverName = "twoPointsCrossover"
	UniformCrossoverName   = "uniformCrossover"
	KPointCrossoverName    = "kPointCrossover"
)

// CrossoverFunc recombines two parents into two children. Parents are
// left untouched.
type CrossoverFunc func(rng *rand.Rand, parent1, parent2 framework.Chromosome) (child1, child2 framework.Chromosome)

// NewCrossover returns the crossover registered under name. points is only
// used by kPointCrossover.
func NewCrossover(name string, points int) (CrossoverFunc, error) {
	switch name {
	case OnePointCrossoverName:
		return OnePointCrossover, nil
	case TwoPointsCrossoverName:
		return TwoPointCrossover, nil
	case UniformCrossoverName:
		return UniformCrossover, nil
	case KPointCrossoverName:
		if points < 1 {
			return nil, fmt.Errorf("%w: kPointCrossover needs at least one cut point, got %d", framework.ErrConfiguration, points)
		}
		return KPointCrossover(points), nil
	default:
		return nil, fmt.Errorf("%w: crossover %q not implemented", framework.ErrConfiguration, name)
	}
}

// OnePointCrossover swaps the tails after a random cut point
func OnePointCrossover(rng *rand.Rand, p1, p2 framework.Chromosome) (framework.Chromosome, framework.Chromosome) {
	if len(p1) < 2 {
		return p1.Clone(), p2.Clone()
	}
	return cutAndSwap(p1, p2, []int{1 + rng.Intn(len(p1)-1)})
}

// TwoPointCrossover swaps the segment between two random cut points
func TwoPointCrossover(rng *rand.Rand, p1, p2 framework.Chromosome) (framework.Chromosome, framework.Chromosome) {
	if len(p1) < 3 {
		return OnePointCrossover(rng, p1, p2)
	}
	return cutAndSwap(p1, p2, cutPoints(rng, len(p1), 2))
}

// UniformCrossover creates offspring by randomly selecting from each parent
func UniformCrossover(rng *rand.Rand, p1, p2 framework.Chromosome) (framework.Chromosome, framework.Chromosome) {
	child1 := p1.Clone()
	child2 := p2.Clone()
	for i := range p1 {
		if rng.Float64() >= 0.5 {
			child1[i], child2[i] = p2[i], p1[i]
		}
	}
	return child1, child2
}

// KPointCrossover alternates parents between k distinct cut points. k is
// capped at len-1.
func KPointCrossover(k int) CrossoverFunc {
	return func(rng *rand.Rand, p1, p2 framework.Chromosome) (framework.Chromosome, framework.Chromosome) {
		if len(p1) < 2 {
			return p1.Clone(), p2.Clone()
		}
		return cutAndSwap(p1, p2, cutPoints(rng, len(p1), min(k, len(p1)-1)))
	}
}

// cutPoints draws k distinct sorted cuts in [1, n-1].
func cutPoints(rng *rand.Rand, n, k int) []int {
	candidates := make([]int, n-1)
	for i := range candidates {
		candidates[i] = i + 1
	}
	rng.Shuffle(len(candidates), func(i, j int) { candidates[i], candidates[j] = candidates[j], candidates[i] })
	points := candidates[:k]
	sort.Ints(points)
	return points
}

// cutAndSwap copies p1 into child1 up to the first cut, then alternates
// the source parent at every cut.
func cutAndSwap(p1, p2 framework.Chromosome, points []int) (framework.Chromosome, framework.Chromosome) {
	child1 := make(framework.Chromosome, len(p1))
	child2 := make(framework.Chromosome, len(p2))

	swap := false
	next := 0
	for i := range p1 {
		if next < len(points) && i == points[next] {
			swap = !swap
			next++
		}
		if swap {
			child1[i], child2[i] = p2[i], p1[i]
		} else {
			child1[i], child2[i] = p1[i], p2[i]
		}
	}
	return child1, child2
}
