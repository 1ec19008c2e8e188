package constraints_test

import (
	"math"
	"testing"

	"github.com/idaholab/raven/pkg/framework/plugins/geneticalgorithm/constraints"
	"github.com/idaholab/raven/pkg/framework/plugins/geneticalgorithm/framework"
)

func TestBoundsConstraint(t *testing.T) {
	constraint := constraints.BoundsConstraint([]framework.Bounds{
		{L: 0, H: 1},
		{L: 1, H: 5, Integer: true},
	})

	testCases := []struct {
		name       string
		chromosome framework.Chromosome
		shouldPass bool
	}{
		{name: "Inside", chromosome: framework.Chromosome{0.3, 2}, shouldPass: true},
		{name: "OnBoundary", chromosome: framework.Chromosome{1, 5}, shouldPass: true},
		{name: "BelowLower", chromosome: framework.Chromosome{-0.1, 2}, shouldPass: false},
		{name: "FractionalInteger", chromosome: framework.Chromosome{0.5, 2.5}, shouldPass: false},
		{name: "WrongLength", chromosome: framework.Chromosome{0.5}, shouldPass: false},
		{name: "NaN", chromosome: framework.Chromosome{math.NaN(), 2}, shouldPass: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := constraint(tc.chromosome); got != tc.shouldPass {
				t.Errorf("constraint(%v) = %v, want %v", tc.chromosome, got, tc.shouldPass)
			}
		})
	}
}

func TestPermutationConstraint(t *testing.T) {
	constraint := constraints.PermutationConstraint()
	if !constraint(framework.Chromosome{3, 1, 2}) {
		t.Error("distinct genes should pass")
	}
	if constraint(framework.Chromosome{3, 1, 3}) {
		t.Error("repeated genes should fail")
	}
}

func TestFunctionConstraint(t *testing.T) {
	// x0 + x1 <= 1
	constraint := constraints.FunctionConstraint(func(c framework.Chromosome) float64 {
		return 1 - c[0] - c[1]
	})

	testCases := []struct {
		name       string
		chromosome framework.Chromosome
		shouldPass bool
	}{
		{name: "Slack", chromosome: framework.Chromosome{0.2, 0.3}, shouldPass: true},
		{name: "Active", chromosome: framework.Chromosome{0.5, 0.5}, shouldPass: true},
		{name: "Violated", chromosome: framework.Chromosome{0.8, 0.3}, shouldPass: false},
		{name: "NaN", chromosome: framework.Chromosome{math.NaN(), 0}, shouldPass: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := constraint(tc.chromosome); got != tc.shouldPass {
				t.Errorf("constraint(%v) = %v, want %v", tc.chromosome, got, tc.shouldPass)
			}
		})
	}
}

func TestCombineConstraints(t *testing.T) {
	bounds := constraints.BoundsConstraint([]framework.Bounds{{L: 0, H: 3}, {L: 0, H: 3}})
	perm := constraints.PermutationConstraint()
	combined := constraints.CombineConstraints(bounds, perm)

	testCases := []struct {
		name       string
		chromosome framework.Chromosome
		shouldPass bool
	}{
		{name: "BothSatisfied", chromosome: framework.Chromosome{0, 1}, shouldPass: true},
		{name: "OutOfBounds", chromosome: framework.Chromosome{0, 4}, shouldPass: false},
		{name: "Repeated", chromosome: framework.Chromosome{2, 2}, shouldPass: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := combined(tc.chromosome); got != tc.shouldPass {
				t.Errorf("combined(%v) = %v, want %v", tc.chromosome, got, tc.shouldPass)
			}
		})
	}

	if !constraints.CombineConstraints()(framework.Chromosome{9}) {
		t.Error("an empty combination should accept everything")
	}
}
