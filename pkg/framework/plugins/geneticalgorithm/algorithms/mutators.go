package algorithms

import (
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/idaholab/raven/pkg/framework/plugins/geneticalgorithm/framework"
)

const (
	SwapMutatorName      = "swapMutator"
	ScrambleMutatorName  = "scrambleMutator"
	InversionMutatorName = "inversionMutator"
	RandomMutatorName    = "randomMutator"
)

// MutatorFunc mutates a chromosome in place. For the ordering mutators p
// is the chance the chromosome is touched at all; randomMutator applies it
// to every gene.
type MutatorFunc func(rng *rand.Rand, c framework.Chromosome, bounds []framework.Bounds, p float64)

// NewMutator returns the mutator registered under name.
func NewMutator(name string) (MutatorFunc, error) {
	switch name {
	case SwapMutatorName:
		return SwapMutator, nil
	case ScrambleMutatorName:
		return ScrambleMutator, nil
	case InversionMutatorName:
		return InversionMutator, nil
	case RandomMutatorName:
		return RandomMutator, nil
	default:
		return nil, fmt.Errorf("%w: mutation %q not implemented", framework.ErrConfiguration, name)
	}
}

// SwapMutator exchanges two distinct genes.
func SwapMutator(rng *rand.Rand, c framework.Chromosome, _ []framework.Bounds, p float64) {
	if len(c) < 2 || rng.Float64() >= p {
		return
	}
	i := rng.Intn(len(c))
	j := rng.Intn(len(c) - 1)
	if j >= i {
		j++
	}
	c[i], c[j] = c[j], c[i]
}

// ScrambleMutator shuffles a random segment.
func ScrambleMutator(rng *rand.Rand, c framework.Chromosome, _ []framework.Bounds, p float64) {
	if len(c) < 2 || rng.Float64() >= p {
		return
	}
	lo, hi := segment(rng, len(c))
	part := c[lo : hi+1]
	rng.Shuffle(len(part), func(i, j int) { part[i], part[j] = part[j], part[i] })
}

// InversionMutator reverses a random segment.
func InversionMutator(rng *rand.Rand, c framework.Chromosome, _ []framework.Bounds, p float64) {
	if len(c) < 2 || rng.Float64() >= p {
		return
	}
	lo, hi := segment(rng, len(c))
	for ; lo < hi; lo, hi = lo+1, hi-1 {
		c[lo], c[hi] = c[hi], c[lo]
	}
}

// RandomMutator redraws each gene from its bounds with probability p.
func RandomMutator(rng *rand.Rand, c framework.Chromosome, bounds []framework.Bounds, p float64) {
	for i := range c {
		if rng.Float64() < p {
			c[i] = bounds[i].Draw(rng)
		}
	}
}

// segment returns lo < hi, both inside [0, n).
func segment(rng *rand.Rand, n int) (int, int) {
	lo := rng.Intn(n)
	hi := rng.Intn(n - 1)
	if hi >= lo {
		hi++
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo, hi
}
