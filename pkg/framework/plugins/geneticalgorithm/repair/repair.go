// Package repair fixes chromosomes that crossover left with repeated gene
// values when the encoding requires every gene to be distinct.
package repair

import (
	"fmt"
	"math"
	"sort"

	"golang.org/x/exp/rand"

	"github.com/idaholab/raven/pkg/framework/plugins/geneticalgorithm/framework"
)

const (
	// ReplacementRepairName is the configuration name of ReplacementRepair.
	ReplacementRepairName = "replacementRepair"
)

// Repairer turns a batch of offspring into a legal batch of the same shape.
type Repairer interface {
	Name() string
	Repair(offspring *framework.Population) (*framework.Population, error)
}

// ReplacementRepair keeps the first occurrence of every gene value and
// replaces each repeat with an unused value drawn from the variable's
// integer domain.
type ReplacementRepair struct {
	domains map[string]framework.Bounds
	rng     *rand.Rand
}

var _ Repairer = &ReplacementRepair{}

// NewReplacementRepair builds the operator from per-variable domains.
func NewReplacementRepair(domains map[string]framework.Bounds, rng *rand.Rand) (*ReplacementRepair, error) {
	if rng == nil {
		return nil, fmt.Errorf("%w: random source is required", framework.ErrConfiguration)
	}
	for name, b := range domains {
		if _, _, ok := b.IntegerRange(); !ok {
			return nil, fmt.Errorf("%w: domain of %q [%v, %v] holds no integer", framework.ErrConfiguration, name, b.L, b.H)
		}
	}
	return &ReplacementRepair{
		domains: domains,
		rng:     rng,
	}, nil
}

// Name returns the operator name
func (r *ReplacementRepair) Name() string {
	return ReplacementRepairName
}

// Repair returns a repaired copy of offspring.
func (r *ReplacementRepair) Repair(offspring *framework.Population) (*framework.Population, error) {
	if err := offspring.Validate(); err != nil {
		return nil, err
	}
	for _, v := range offspring.Variables {
		if _, ok := r.domains[v]; !ok {
			return nil, fmt.Errorf("%w: no domain declared for variable %q", framework.ErrConfiguration, v)
		}
	}

	repaired := offspring.Clone()
	for i, chromosome := range repaired.Chromosomes {
		if err := r.repairChromosome(repaired.Variables, chromosome); err != nil {
			return nil, fmt.Errorf("chromosome %d: %w", i, err)
		}
	}
	return repaired, nil
}

// repairChromosome works in place on a copy owned by Repair.
func (r *ReplacementRepair) repairChromosome(variables []string, chromosome framework.Chromosome) error {
	present := make(map[float64]bool, len(chromosome))
	for _, gene := range chromosome {
		present[gene] = true
	}
	if len(present) == len(chromosome) {
		return nil
	}

	// used grows with every replacement so later draws cannot collide
	used := make(map[float64]bool, len(chromosome))
	for k := range present {
		used[k] = true
	}
	seen := make(map[float64]bool, len(chromosome))
	for pos, gene := range chromosome {
		if !seen[gene] {
			seen[gene] = true
			continue
		}
		replacement, ok := r.draw(variables[pos], used)
		if !ok {
			return fmt.Errorf("%w: domain of %q is exhausted, cannot replace duplicate %v at gene %d",
				framework.ErrConfiguration, variables[pos], gene, pos)
		}
		chromosome[pos] = replacement
		used[replacement] = true
	}
	return nil
}

// draw picks an unused integer of the variable's domain uniformly without
// enumerating the domain. ok is false when every integer of it is taken.
func (r *ReplacementRepair) draw(variable string, used map[float64]bool) (float64, bool) {
	lo, hi, _ := r.domains[variable].IntegerRange()
	taken := make([]int, 0, len(used))
	for v := range used {
		if v >= float64(lo) && v <= float64(hi) && v == math.Trunc(v) {
			taken = append(taken, int(v))
		}
	}
	// sorted so the draw does not depend on map order
	sort.Ints(taken)

	size := uint64(hi-lo) + 1
	free := size - uint64(len(taken))
	if free == 0 {
		return 0, false
	}

	// walk past the taken values to reach the k-th free integer
	v := lo + int(r.rng.Uint64n(free))
	for _, t := range taken {
		if t > v {
			break
		}
		v++
	}
	return float64(v), true
}

// New returns the repair operator registered under name.
func New(name string, domains map[string]framework.Bounds, rng *rand.Rand) (Repairer, error) {
	switch name {
	case ReplacementRepairName:
		return NewReplacementRepair(domains, rng)
	default:
		return nil, fmt.Errorf("%w: repair mechanism %q not implemented", framework.ErrConfiguration, name)
	}
}

// DomainsFromBounds pairs variable names with their bounds.
func DomainsFromBounds(variables []string, bounds []framework.Bounds) (map[string]framework.Bounds, error) {
	if len(variables) != len(bounds) {
		return nil, fmt.Errorf("%w: %d variables but %d bounds", framework.ErrShapeMismatch, len(variables), len(bounds))
	}
	domains := make(map[string]framework.Bounds, len(variables))
	for i, v := range variables {
		domains[v] = bounds[i]
	}
	return domains, nil
}
