package analysis

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/idaholab/raven/pkg/framework/plugins/geneticalgorithm/framework"
)

func TestSummarize(t *testing.T) {
	pop, err := framework.NewPopulation([]string{"x", "y"}, []framework.Chromosome{
		{1, 2}, {1, 2}, {3, 4}, {5, 6},
	})
	if err != nil {
		t.Fatal(err)
	}
	s := &framework.Snapshot{
		Population: pop,
		Fitness:    []float64{-1, -3, math.Inf(-1), -2},
		Ages:       []int{0, 4, 1, 2},
		Ranks:      []int{1, 2, 3, 1},
	}

	got, err := Summarize(7, s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := GenerationStats{
		Generation:  7,
		BestFitness: -1,
		MeanFitness: -2,
		StdFitness:  1,
		Feasible:    3,
		Unique:      3,
		FrontSize:   2,
		MaxAge:      4,
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("stats mismatch (-want +got):\n%s", diff)
	}
}

func TestSummarizeAllInfeasible(t *testing.T) {
	pop, _ := framework.NewPopulation([]string{"x"}, []framework.Chromosome{{1}, {2}})
	s := &framework.Snapshot{Population: pop, Fitness: []float64{math.Inf(-1), math.Inf(-1)}}

	got, err := Summarize(0, s)
	if err != nil {
		t.Fatal(err)
	}
	if got.Feasible != 0 || !math.IsInf(got.BestFitness, -1) || !math.IsNaN(got.MeanFitness) {
		t.Errorf("unexpected stats for an infeasible generation: %+v", got)
	}
}

func TestIGD(t *testing.T) {
	reference := []framework.ObjectiveSpacePoint{{0, 1}, {1, 0}}

	tests := []struct {
		name     string
		obtained []framework.ObjectiveSpacePoint
		want     float64
	}{
		{name: "exact front", obtained: reference, want: 0},
		{name: "shifted", obtained: []framework.ObjectiveSpacePoint{{0, 2}, {1, 1}}, want: 1},
		{name: "single point", obtained: []framework.ObjectiveSpacePoint{{0, 0}}, want: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := IGD(tt.obtained, reference)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("IGD = %v, want %v", got, tt.want)
			}
		})
	}

	if _, err := IGD(nil, reference); !errors.Is(err, framework.ErrShapeMismatch) {
		t.Errorf("expected ErrShapeMismatch, got %v", err)
	}
	if _, err := IGD([]framework.ObjectiveSpacePoint{{1, 2, 3}}, reference); !errors.Is(err, framework.ErrShapeMismatch) {
		t.Errorf("expected ErrShapeMismatch, got %v", err)
	}
}
