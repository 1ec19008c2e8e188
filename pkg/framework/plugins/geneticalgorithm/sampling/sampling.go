// Package sampling generates initial populations for the genetic algorithm.
//
// Three strategies are provided. MonteCarlo draws every gene uniformly from
// its bounds. Grid walks an evenly spaced lattice over the bounds in
// row-major order. Permutation produces chromosomes whose genes are a random
// arrangement of distinct integers, as needed by ordering problems.
package sampling

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"

	"github.com/idaholab/raven/pkg/framework/plugins/geneticalgorithm/framework"
)

const (
	MonteCarloName  = "MonteCarlo"
	GridName        = "Grid"
	PermutationName = "Permutation"

	// DefaultGridPoints is the number of lattice points per variable.
	DefaultGridPoints = 5
)

// Sampler draws n chromosomes within bounds.
type Sampler interface {
	Name() string
	Sample(rng *rand.Rand, bounds []framework.Bounds, n int) ([]framework.Chromosome, error)
}

// New returns the sampler registered under name.
func New(name string, gridPoints int) (Sampler, error) {
	switch name {
	case MonteCarloName:
		return MonteCarlo{}, nil
	case GridName:
		if gridPoints <= 0 {
			gridPoints = DefaultGridPoints
		}
		return Grid{PointsPerVariable: gridPoints}, nil
	case PermutationName:
		return Permutation{}, nil
	default:
		return nil, fmt.Errorf("%w: initialization method %q not implemented", framework.ErrConfiguration, name)
	}
}

func checkRequest(bounds []framework.Bounds, n int) error {
	if len(bounds) == 0 {
		return fmt.Errorf("%w: no variables to sample", framework.ErrShapeMismatch)
	}
	if n < 0 {
		return fmt.Errorf("%w: negative sample size %d", framework.ErrConfiguration, n)
	}
	for i, b := range bounds {
		if b.L > b.H || math.IsNaN(b.L) || math.IsNaN(b.H) {
			return fmt.Errorf("%w: variable %d has bounds [%v, %v]", framework.ErrConfiguration, i, b.L, b.H)
		}
	}
	return nil
}

// MonteCarlo samples each gene independently and uniformly.
type MonteCarlo struct{}

func (MonteCarlo) Name() string { return MonteCarloName }

func (MonteCarlo) Sample(rng *rand.Rand, bounds []framework.Bounds, n int) ([]framework.Chromosome, error) {
	if err := checkRequest(bounds, n); err != nil {
		return nil, err
	}
	out := make([]framework.Chromosome, n)
	for i := range out {
		c := make(framework.Chromosome, len(bounds))
		for j, b := range bounds {
			c[j] = b.Draw(rng)
		}
		out[i] = c
	}
	return out, nil
}

// Grid enumerates the cartesian product of evenly spaced points per
// variable, the last variable varying fastest. When n exceeds the number of
// lattice points the walk starts over from the first point.
type Grid struct {
	PointsPerVariable int
}

func (Grid) Name() string { return GridName }

func (g Grid) Sample(_ *rand.Rand, bounds []framework.Bounds, n int) ([]framework.Chromosome, error) {
	if err := checkRequest(bounds, n); err != nil {
		return nil, err
	}
	if g.PointsPerVariable <= 0 {
		return nil, fmt.Errorf("%w: grid needs at least one point per variable", framework.ErrConfiguration)
	}

	axes := make([][]float64, len(bounds))
	total := 1
	for j, b := range bounds {
		axes[j] = axis(b, g.PointsPerVariable)
		// past n the exact lattice size does not matter
		if total <= n {
			total *= len(axes[j])
		}
	}

	out := make([]framework.Chromosome, n)
	for i := range out {
		idx := i % total
		c := make(framework.Chromosome, len(bounds))
		for j := len(axes) - 1; j >= 0; j-- {
			c[j] = axes[j][idx%len(axes[j])]
			idx /= len(axes[j])
		}
		out[i] = c
	}
	return out, nil
}

// axis returns the lattice coordinates of one variable. Integer variables
// collapse onto distinct whole numbers.
func axis(b framework.Bounds, points int) []float64 {
	if points == 1 || b.L == b.H {
		return []float64{b.Clamp((b.L + b.H) / 2)}
	}
	values := make([]float64, 0, points)
	step := (b.H - b.L) / float64(points-1)
	for k := 0; k < points; k++ {
		v := b.L + float64(k)*step
		if b.Integer {
			v = b.Clamp(math.Round(v))
			if len(values) > 0 && values[len(values)-1] == v {
				continue
			}
		}
		values = append(values, v)
	}
	return values
}

// Permutation shuffles the integer domain of the first variable and deals
// one value per gene. Every variable must share that domain size or be
// wider.
type Permutation struct{}

func (Permutation) Name() string { return PermutationName }

func (Permutation) Sample(rng *rand.Rand, bounds []framework.Bounds, n int) ([]framework.Chromosome, error) {
	if err := checkRequest(bounds, n); err != nil {
		return nil, err
	}
	lo, hi, ok := bounds[0].IntegerRange()
	if !ok || hi-lo+1 < len(bounds) {
		return nil, fmt.Errorf("%w: domain [%v, %v] cannot hold a permutation of %d genes",
			framework.ErrConfiguration, bounds[0].L, bounds[0].H, len(bounds))
	}

	// partial Fisher-Yates over the domain; only displaced slots are stored
	size := uint64(hi-lo) + 1
	out := make([]framework.Chromosome, n)
	for i := range out {
		displaced := make(map[uint64]uint64, len(bounds))
		slot := func(k uint64) uint64 {
			if v, ok := displaced[k]; ok {
				return v
			}
			return k
		}
		c := make(framework.Chromosome, len(bounds))
		for j := range c {
			pos := uint64(j)
			pick := pos + rng.Uint64n(size-pos)
			value := slot(pick)
			displaced[pick] = slot(pos)
			c[j] = float64(lo + int(value))
			if !bounds[j].Contains(c[j]) {
				return nil, fmt.Errorf("%w: value %v is outside the bounds of variable %d", framework.ErrConfiguration, c[j], j)
			}
		}
		out[i] = c
	}
	return out, nil
}
