package framework

import (
	"fmt"
	"math"
)

// Chromosome holds one gene value per decision variable, in the order of
// the owning Population's Variables.
type Chromosome []float64

// Clone returns a copy of the chromosome.
func (c Chromosome) Clone() Chromosome {
	out := make(Chromosome, len(c))
	copy(out, c)
	return out
}

// Population is an ordered, labeled 2-D container of individuals x named
// variables. Row i of Chromosomes is individual i.
type Population struct {
	Variables   []string
	Chromosomes []Chromosome
}

// NewPopulation builds a population and checks that every chromosome has
// exactly one gene per variable.
func NewPopulation(variables []string, chromosomes []Chromosome) (*Population, error) {
	p := &Population{
		Variables:   variables,
		Chromosomes: chromosomes,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate checks the population shape.
func (p *Population) Validate() error {
	if p == nil {
		return fmt.Errorf("%w: population is nil", ErrShapeMismatch)
	}
	if len(p.Variables) == 0 {
		return fmt.Errorf("%w: population has no variables", ErrShapeMismatch)
	}
	seen := make(map[string]bool, len(p.Variables))
	for _, v := range p.Variables {
		if seen[v] {
			return fmt.Errorf("%w: variable %q declared twice", ErrShapeMismatch, v)
		}
		seen[v] = true
	}
	for i, c := range p.Chromosomes {
		if len(c) != len(p.Variables) {
			return fmt.Errorf("%w: chromosome %d has %d genes, want %d", ErrShapeMismatch, i, len(c), len(p.Variables))
		}
	}
	return nil
}

// Size returns the number of individuals.
func (p *Population) Size() int {
	return len(p.Chromosomes)
}

// NumGenes returns the chromosome length.
func (p *Population) NumGenes() int {
	return len(p.Variables)
}

// Row returns chromosome i without copying.
func (p *Population) Row(i int) Chromosome {
	return p.Chromosomes[i]
}

// Gene returns the value of the named variable for individual i.
func (p *Population) Gene(i int, variable string) (float64, bool) {
	for j, v := range p.Variables {
		if v == variable {
			return p.Chromosomes[i][j], true
		}
	}
	return 0, false
}

// Clone deep-copies the population.
func (p *Population) Clone() *Population {
	vars := make([]string, len(p.Variables))
	copy(vars, p.Variables)
	chromosomes := make([]Chromosome, len(p.Chromosomes))
	for i, c := range p.Chromosomes {
		chromosomes[i] = c.Clone()
	}
	return &Population{
		Variables:   vars,
		Chromosomes: chromosomes,
	}
}

// SameVariables reports whether both populations label their genes identically.
func (p *Population) SameVariables(other *Population) bool {
	if len(p.Variables) != len(other.Variables) {
		return false
	}
	for i := range p.Variables {
		if p.Variables[i] != other.Variables[i] {
			return false
		}
	}
	return true
}

// Snapshot is one generation's view of a population. Every slice is
// index-aligned with Population.Chromosomes.
type Snapshot struct {
	Population *Population
	Fitness    []float64
	// Ages counts the generations each chromosome survived. A nil slice
	// means every chromosome is new.
	Ages []int
	// Objectives holds raw objective values, multi-objective runs only.
	Objectives []ObjectiveSpacePoint

	// Ranks and CrowdingDistances are filled by rank based survivor
	// selection. Rank 1 is the non-dominated front.
	Ranks             []int
	CrowdingDistances []float64
}

// Size returns the number of individuals in the snapshot.
func (s *Snapshot) Size() int {
	if s == nil || s.Population == nil {
		return 0
	}
	return s.Population.Size()
}

// AgesOrZero returns the ages, materializing the all-zero default.
func (s *Snapshot) AgesOrZero() []int {
	if s.Ages != nil {
		return s.Ages
	}
	return make([]int, s.Size())
}

// Validate checks that all per-chromosome slices are aligned with the
// population. Objectives are optional unless requireObjectives is set.
func (s *Snapshot) Validate(requireObjectives bool) error {
	if s == nil {
		return fmt.Errorf("%w: snapshot is nil", ErrShapeMismatch)
	}
	if err := s.Population.Validate(); err != nil {
		return err
	}
	n := s.Population.Size()
	if len(s.Fitness) != n {
		return fmt.Errorf("%w: %d fitness values for %d chromosomes", ErrShapeMismatch, len(s.Fitness), n)
	}
	for i, f := range s.Fitness {
		if math.IsNaN(f) {
			return fmt.Errorf("%w: fitness of chromosome %d is NaN", ErrShapeMismatch, i)
		}
	}
	if s.Ages != nil && len(s.Ages) != n {
		return fmt.Errorf("%w: %d ages for %d chromosomes", ErrShapeMismatch, len(s.Ages), n)
	}
	for i, a := range s.Ages {
		if a < 0 {
			return fmt.Errorf("%w: age of chromosome %d is negative", ErrShapeMismatch, i)
		}
	}
	if requireObjectives || len(s.Objectives) > 0 {
		if len(s.Objectives) != n {
			return fmt.Errorf("%w: %d objective vectors for %d chromosomes", ErrShapeMismatch, len(s.Objectives), n)
		}
	}
	return nil
}
