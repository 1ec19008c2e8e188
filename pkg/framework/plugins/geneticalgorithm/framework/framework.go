package framework

import (
	"math"

	"golang.org/x/exp/rand"
)

// Problem describes the contract an optimization problem needs to implement.
type Problem interface {
	Name() string

	// Variables names the decision variables, one gene each.
	Variables() []string
	Bounds() []Bounds
	ObjectiveFuncs() []ObjectiveFunc
	Constraints() []Constraint

	// Initialize returns popSize chromosomes. Problems with a special
	// encoding (permutations) must return legal chromosomes.
	Initialize(rng *rand.Rand, popSize int) []Chromosome

	// TrueParetoFront is optional due to the difficulty of finding the true front
	// in some types of problems. When there isn't a way to find the true front,
	// just return nil.
	TrueParetoFront(int) []ObjectiveSpacePoint
}

// Algorithm describes the contract that an optimizer needs to implement.
type Algorithm interface {
	Name() string
}

// ObjectiveFunc evaluates one objective for a chromosome. All objectives
// are minimized.
type ObjectiveFunc func(Chromosome) float64

// ObjectiveSpacePoint represents an N-dimensional point in the objective space.
// As an example, for a problem with 2 objective functions f1 and f2, a point
// in the objective space could be [f1(x'), f2(x')], for the input of x'.
type ObjectiveSpacePoint []float64

// Constraint returns true if the constraint is satisfied and false otherwise.
type Constraint func(Chromosome) bool

// Bounds is the legal domain of one variable.
type Bounds struct {
	L float64
	H float64
	// Integer marks a discrete variable. Sampling and mutation only draw
	// whole numbers for it.
	Integer bool
}

// Contains reports whether v lies in [L, H].
func (b Bounds) Contains(v float64) bool {
	return v >= b.L && v <= b.H
}

// Clamp limits v to [L, H].
func (b Bounds) Clamp(v float64) float64 {
	return math.Max(b.L, math.Min(b.H, v))
}

// IntegerRange returns the inclusive integer range covered by the bounds.
// ok is false when the range holds no integer.
func (b Bounds) IntegerRange() (lo, hi int, ok bool) {
	lo = int(math.Ceil(b.L))
	hi = int(math.Floor(b.H))
	return lo, hi, lo <= hi
}

// Draw returns a uniformly distributed legal value.
func (b Bounds) Draw(rng *rand.Rand) float64 {
	if b.Integer {
		lo, hi, ok := b.IntegerRange()
		if !ok {
			return b.Clamp(math.Round(b.L))
		}
		return float64(lo + rng.Intn(hi-lo+1))
	}
	return b.L + rng.Float64()*(b.H-b.L)
}
