package algorithms

import (
	"errors"
	"math"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/exp/rand"

	"github.com/idaholab/raven/pkg/framework/plugins/geneticalgorithm/framework"
)

func sequence(lo, n int) framework.Chromosome {
	c := make(framework.Chromosome, n)
	for i := range c {
		c[i] = float64(lo + i)
	}
	return c
}

func constant(v float64, n int) framework.Chromosome {
	c := make(framework.Chromosome, n)
	for i := range c {
		c[i] = v
	}
	return c
}

// transitions counts the positions where c switches between parents.
func transitions(c framework.Chromosome) int {
	n := 0
	for i := 1; i < len(c); i++ {
		if c[i] != c[i-1] {
			n++
		}
	}
	return n
}

func isPermutation(c framework.Chromosome) bool {
	sorted := append(framework.Chromosome(nil), c...)
	sort.Float64s(sorted)
	return cmp.Equal(sorted, sequence(0, len(c)))
}

func TestNewCrossover(t *testing.T) {
	for _, name := range []string{OnePointCrossoverName, TwoPointsCrossoverName, UniformCrossoverName} {
		if _, err := NewCrossover(name, 0); err != nil {
			t.Errorf("%s: unexpected error %v", name, err)
		}
	}
	if _, err := NewCrossover(KPointCrossoverName, 3); err != nil {
		t.Errorf("Unexpected error %v", err)
	}
	for name, points := range map[string]int{KPointCrossoverName: 0, "partiallyMappedCrossover": 1} {
		if _, err := NewCrossover(name, points); !errors.Is(err, framework.ErrConfiguration) {
			t.Errorf("%s: expected ErrConfiguration, got %v", name, err)
		}
	}
}

func TestCrossoverCutPoints(t *testing.T) {
	tests := []struct {
		name      string
		crossover CrossoverFunc
		length    int
		want      int
	}{
		{name: "one point", crossover: OnePointCrossover, length: 8, want: 1},
		{name: "two points", crossover: TwoPointCrossover, length: 8, want: 2},
		{name: "two points on a short chromosome", crossover: TwoPointCrossover, length: 2, want: 1},
		{name: "four points", crossover: KPointCrossover(4), length: 8, want: 4},
		{name: "k capped at length-1", crossover: KPointCrossover(10), length: 4, want: 3},
	}

	rng := rand.New(rand.NewSource(1))
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for trial := 0; trial < 20; trial++ {
				p1, p2 := constant(0, tc.length), constant(1, tc.length)
				c1, c2 := tc.crossover(rng, p1, p2)
				if got := transitions(c1); got != tc.want {
					t.Fatalf("Expected %d cuts, got %d in %v", tc.want, got, c1)
				}
				if c1[0] != 0 || c2[0] != 1 {
					t.Fatalf("Children must start with their own parent: %v %v", c1, c2)
				}
				for i := range c1 {
					if c1[i]+c2[i] != 1 {
						t.Fatalf("Children are not complementary: %v %v", c1, c2)
					}
				}
			}
		})
	}
}

func TestCrossoversKeepParents(t *testing.T) {
	crossovers := map[string]CrossoverFunc{
		"one point": OnePointCrossover,
		"two point": TwoPointCrossover,
		"uniform":   UniformCrossover,
		"k point":   KPointCrossover(3),
	}
	rng := rand.New(rand.NewSource(2))
	for name, crossover := range crossovers {
		t.Run(name, func(t *testing.T) {
			p1, p2 := sequence(0, 6), sequence(10, 6)
			c1, c2 := crossover(rng, p1, p2)
			if !cmp.Equal(p1, sequence(0, 6)) || !cmp.Equal(p2, sequence(10, 6)) {
				t.Fatalf("Parents were modified: %v %v", p1, p2)
			}
			for i := range c1 {
				if !(c1[i] == p1[i] && c2[i] == p2[i]) && !(c1[i] == p2[i] && c2[i] == p1[i]) {
					t.Errorf("Gene %d not inherited position-wise: %v %v", i, c1, c2)
				}
			}
		})
	}
}

func TestCutAndSwap(t *testing.T) {
	c1, c2 := cutAndSwap(framework.Chromosome{1, 2, 3, 4, 5}, framework.Chromosome{6, 7, 8, 9, 10}, []int{2, 4})
	if diff := cmp.Diff(framework.Chromosome{1, 2, 8, 9, 5}, c1); diff != "" {
		t.Errorf("Unexpected child1 (-want,+got):\n%s", diff)
	}
	if diff := cmp.Diff(framework.Chromosome{6, 7, 3, 4, 10}, c2); diff != "" {
		t.Errorf("Unexpected child2 (-want,+got):\n%s", diff)
	}
}

func TestNewMutator(t *testing.T) {
	for _, name := range []string{SwapMutatorName, ScrambleMutatorName, InversionMutatorName, RandomMutatorName} {
		if _, err := NewMutator(name); err != nil {
			t.Errorf("%s: unexpected error %v", name, err)
		}
	}
	if _, err := NewMutator("bitFlipMutator"); !errors.Is(err, framework.ErrConfiguration) {
		t.Errorf("Expected ErrConfiguration, got %v", err)
	}
}

func TestOrderMutatorsKeepPermutations(t *testing.T) {
	mutators := map[string]MutatorFunc{
		"swap":      SwapMutator,
		"scramble":  ScrambleMutator,
		"inversion": InversionMutator,
	}
	rng := rand.New(rand.NewSource(3))
	for name, mutate := range mutators {
		t.Run(name, func(t *testing.T) {
			for trial := 0; trial < 50; trial++ {
				c := sequence(0, 7)
				mutate(rng, c, nil, 1)
				if !isPermutation(c) {
					t.Fatalf("Mutation broke the permutation: %v", c)
				}
			}

			c := sequence(0, 7)
			mutate(rng, c, nil, 0)
			if !cmp.Equal(c, sequence(0, 7)) {
				t.Errorf("Probability 0 must leave the chromosome untouched, got %v", c)
			}
		})
	}
}

func TestSwapMutatorChangesTwoGenes(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	for trial := 0; trial < 20; trial++ {
		c := sequence(0, 5)
		SwapMutator(rng, c, nil, 1)
		changed := 0
		for i, v := range c {
			if v != float64(i) {
				changed++
			}
		}
		if changed != 2 {
			t.Fatalf("Expected exactly two genes swapped, got %v", c)
		}
	}
}

func TestInversionMutatorReversesSegment(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for trial := 0; trial < 20; trial++ {
		c := sequence(0, 8)
		InversionMutator(rng, c, nil, 1)
		// outside the segment genes stay put, inside they descend
		lo, hi := 0, len(c)-1
		for lo < len(c) && c[lo] == float64(lo) {
			lo++
		}
		for hi >= 0 && c[hi] == float64(hi) {
			hi--
		}
		for i := lo; i < hi; i++ {
			if c[i] != c[i+1]+1 {
				t.Fatalf("Segment [%d, %d] of %v is not reversed", lo, hi, c)
			}
		}
	}
}

func TestRandomMutator(t *testing.T) {
	bounds := []framework.Bounds{
		{L: -1, H: 1},
		{L: 0, H: 9, Integer: true},
		{L: 100, H: 101},
	}
	rng := rand.New(rand.NewSource(6))
	for trial := 0; trial < 50; trial++ {
		c := framework.Chromosome{0, 4, 100.5}
		RandomMutator(rng, c, bounds, 1)
		for i, b := range bounds {
			if !b.Contains(c[i]) {
				t.Fatalf("Gene %d = %v outside [%v, %v]", i, c[i], b.L, b.H)
			}
		}
		if c[1] != math.Trunc(c[1]) {
			t.Fatalf("Integer gene mutated to %v", c[1])
		}
	}

	c := framework.Chromosome{0, 4, 100.5}
	RandomMutator(rng, c, bounds, 0)
	if diff := cmp.Diff(framework.Chromosome{0, 4, 100.5}, c); diff != "" {
		t.Errorf("Probability 0 must leave the chromosome untouched (-want,+got):\n%s", diff)
	}
}

func TestSegment(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 100; trial++ {
		lo, hi := segment(rng, 4)
		if lo >= hi || lo < 0 || hi > 3 {
			t.Fatalf("Invalid segment [%d, %d]", lo, hi)
		}
	}
}

func snapshotOf(fitness []float64) *framework.Snapshot {
	chromosomes := make([]framework.Chromosome, len(fitness))
	for i := range chromosomes {
		chromosomes[i] = framework.Chromosome{float64(i)}
	}
	return &framework.Snapshot{
		Population: &framework.Population{Variables: []string{"x"}, Chromosomes: chromosomes},
		Fitness:    fitness,
	}
}

func TestTournamentSelect(t *testing.T) {
	rng := rand.New(rand.NewSource(8))

	t.Run("fitness", func(t *testing.T) {
		s := snapshotOf([]float64{1, 5, 3})
		if got := TournamentSelect(rng, s, 60); got != 1 {
			t.Errorf("Expected the fittest individual 1, got %d", got)
		}
	})

	t.Run("rank then crowding", func(t *testing.T) {
		s := snapshotOf([]float64{9, 1, 1})
		s.Ranks = []int{2, 1, 1}
		s.CrowdingDistances = []float64{math.Inf(1), 0.5, 2}
		if got := TournamentSelect(rng, s, 60); got != 2 {
			t.Errorf("Expected the least crowded rank 1 individual 2, got %d", got)
		}
	})

	t.Run("undersized tournament still selects", func(t *testing.T) {
		s := snapshotOf([]float64{1, 2})
		for trial := 0; trial < 10; trial++ {
			if got := TournamentSelect(rng, s, 0); got < 0 || got > 1 {
				t.Fatalf("Index %d out of range", got)
			}
		}
	})
}

func TestGetParetoFront(t *testing.T) {
	s := snapshotOf([]float64{0, 0, 0, 0})
	s.Objectives = []framework.ObjectiveSpacePoint{{1, 3}, {2, 2}, {1, 3}, {3, 3}}

	got, err := GetParetoFront(s)
	if err != nil {
		t.Fatal(err)
	}
	want := []framework.ObjectiveSpacePoint{{1, 3}, {2, 2}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Unexpected front (-want,+got):\n%s", diff)
	}

	got[0][0] = 100
	if s.Objectives[0][0] != 1 {
		t.Error("Front must not alias the snapshot")
	}

	if _, err := GetParetoFront(snapshotOf([]float64{1})); !errors.Is(err, framework.ErrShapeMismatch) {
		t.Errorf("Expected ErrShapeMismatch without objectives, got %v", err)
	}
}

func TestRankSnapshot(t *testing.T) {
	s := snapshotOf([]float64{0, 0, 0, 0})
	s.Objectives = []framework.ObjectiveSpacePoint{{1, 3}, {2, 2}, {3, 1}, {3, 3}}
	if err := rankSnapshot(s); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{1, 1, 1, 2}, s.Ranks); diff != "" {
		t.Errorf("Unexpected ranks (-want,+got):\n%s", diff)
	}
	inf := math.Inf(1)
	if diff := cmp.Diff([]float64{inf, 2, inf, inf}, s.CrowdingDistances); diff != "" {
		t.Errorf("Unexpected crowding distances (-want,+got):\n%s", diff)
	}
}
