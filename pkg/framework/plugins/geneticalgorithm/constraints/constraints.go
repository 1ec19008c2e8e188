package constraints

import (
	"math"

	"github.com/idaholab/raven/pkg/framework/plugins/geneticalgorithm/framework"
)

// BoundsConstraint rejects chromosomes with a gene outside its variable's
// bounds, or a fractional gene for an integer variable.
func BoundsConstraint(bounds []framework.Bounds) framework.Constraint {
	return func(c framework.Chromosome) bool {
		if len(c) != len(bounds) {
			return false
		}
		for i, b := range bounds {
			if !b.Contains(c[i]) {
				return false
			}
			if b.Integer && c[i] != math.Trunc(c[i]) {
				return false
			}
		}
		return true
	}
}

// PermutationConstraint requires every gene value to be distinct.
func PermutationConstraint() framework.Constraint {
	return func(c framework.Chromosome) bool {
		seen := make(map[float64]bool, len(c))
		for _, gene := range c {
			if seen[gene] {
				return false
			}
			seen[gene] = true
		}
		return true
	}
}

// FunctionConstraint adapts an inequality g(x) >= 0. NaN counts as violated.
func FunctionConstraint(g func(framework.Chromosome) float64) framework.Constraint {
	return func(c framework.Chromosome) bool {
		return g(c) >= 0
	}
}

// CombineConstraints combines multiple constraints into one
func CombineConstraints(constraints ...framework.Constraint) framework.Constraint {
	return func(c framework.Chromosome) bool {
		for _, constraint := range constraints {
			if !constraint(c) {
				return false
			}
		}
		return true
	}
}
