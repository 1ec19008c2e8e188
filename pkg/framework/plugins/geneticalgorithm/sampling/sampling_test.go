package sampling

import (
	"errors"
	"math"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/exp/rand"

	"github.com/idaholab/raven/pkg/framework/plugins/geneticalgorithm/framework"
)

func TestMonteCarlo(t *testing.T) {
	bounds := []framework.Bounds{
		{L: 0, H: 1},
		{L: -5, H: 5},
		{L: 1, H: 3, Integer: true},
	}
	rng := rand.New(rand.NewSource(11))

	got, err := MonteCarlo{}.Sample(rng, bounds, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 100 {
		t.Fatalf("got %d chromosomes, want 100", len(got))
	}
	for i, c := range got {
		for j, b := range bounds {
			if !b.Contains(c[j]) {
				t.Errorf("chromosome %d gene %d = %v outside %v", i, j, c[j], b)
			}
		}
		if c[2] != float64(int(c[2])) {
			t.Errorf("chromosome %d integer gene = %v", i, c[2])
		}
	}
}

func TestGrid(t *testing.T) {
	tests := []struct {
		name   string
		points int
		bounds []framework.Bounds
		n      int
		want   []framework.Chromosome
	}{
		{
			name:   "row major",
			points: 3,
			bounds: []framework.Bounds{{L: 0, H: 1}, {L: 10, H: 20}},
			n:      4,
			want:   []framework.Chromosome{{0, 10}, {0, 15}, {0, 20}, {0.5, 10}},
		},
		{
			name:   "wraps around",
			points: 2,
			bounds: []framework.Bounds{{L: 0, H: 1}},
			n:      5,
			want:   []framework.Chromosome{{0}, {1}, {0}, {1}, {0}},
		},
		{
			name:   "integer axis collapses",
			points: 5,
			bounds: []framework.Bounds{{L: 0, H: 2, Integer: true}},
			n:      3,
			want:   []framework.Chromosome{{0}, {1}, {2}},
		},
		{
			name:   "degenerate bounds",
			points: 10,
			bounds: make([]framework.Bounds, 30),
			n:      1,
			want:   []framework.Chromosome{make(framework.Chromosome, 30)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Grid{PointsPerVariable: tt.points}.Sample(nil, tt.bounds, tt.n)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("grid mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPermutation(t *testing.T) {
	bounds := make([]framework.Bounds, 6)
	for i := range bounds {
		bounds[i] = framework.Bounds{L: 0, H: 5, Integer: true}
	}
	rng := rand.New(rand.NewSource(5))

	got, err := Permutation{}.Sample(rng, bounds, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []float64{0, 1, 2, 3, 4, 5}
	for i, c := range got {
		sorted := append([]float64{}, c...)
		sort.Float64s(sorted)
		if diff := cmp.Diff(want, sorted); diff != "" {
			t.Errorf("chromosome %d is not a permutation (-want +got):\n%s", i, diff)
		}
	}

	if _, err := (Permutation{}).Sample(rng, bounds[:1:1], 1); err != nil {
		t.Errorf("a wider domain should be accepted, got %v", err)
	}
	narrow := []framework.Bounds{{L: 0, H: 1}, {L: 0, H: 1}, {L: 0, H: 1}}
	if _, err := (Permutation{}).Sample(rng, narrow, 1); !errors.Is(err, framework.ErrConfiguration) {
		t.Errorf("expected ErrConfiguration, got %v", err)
	}
}

func TestPermutationWideDomain(t *testing.T) {
	bounds := make([]framework.Bounds, 5)
	for i := range bounds {
		bounds[i] = framework.Bounds{L: 0, H: 1e15, Integer: true}
	}
	rng := rand.New(rand.NewSource(9))

	got, err := Permutation{}.Sample(rng, bounds, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, c := range got {
		seen := make(map[float64]bool)
		for j, v := range c {
			if seen[v] {
				t.Errorf("chromosome %d repeats %v", i, v)
			}
			seen[v] = true
			if !bounds[j].Contains(v) || v != math.Trunc(v) {
				t.Errorf("chromosome %d gene %d = %v is not an integer of the domain", i, j, v)
			}
		}
	}
}

func TestNew(t *testing.T) {
	for _, name := range []string{MonteCarloName, GridName, PermutationName} {
		s, err := New(name, 0)
		if err != nil {
			t.Fatalf("New(%q): %v", name, err)
		}
		if s.Name() != name {
			t.Errorf("Name() = %q, want %q", s.Name(), name)
		}
	}
	if g, _ := New(GridName, 0); g.(Grid).PointsPerVariable != DefaultGridPoints {
		t.Errorf("grid default points = %d", g.(Grid).PointsPerVariable)
	}
	if _, err := New("LatinHyperCube", 0); !errors.Is(err, framework.ErrConfiguration) {
		t.Errorf("expected ErrConfiguration, got %v", err)
	}
	if _, err := (MonteCarlo{}).Sample(nil, []framework.Bounds{{L: 2, H: 1}}, 1); !errors.Is(err, framework.ErrConfiguration) {
		t.Errorf("expected ErrConfiguration for inverted bounds, got %v", err)
	}
}
