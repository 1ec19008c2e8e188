// Package survivors implements the elitism step of the genetic algorithm:
// merging the current generation with freshly evaluated offspring while
// holding the population size fixed.
package survivors

import (
	"fmt"
	"sort"

	"github.com/idaholab/raven/pkg/framework/plugins/geneticalgorithm/framework"
)

const (
	AgeBasedName     = "ageBased"
	FitnessBasedName = "fitnessBased"
	RankCrowdingName = "crowDistAndRankBased"
)

// SurvivorSelector computes the next generation from the current one and
// its offspring. Implementations never mutate their inputs.
type SurvivorSelector interface {
	Name() string
	SelectSurvivors(current, offspring *framework.Snapshot) (*framework.Snapshot, error)
}

// New returns the selector registered under name.
func New(name string) (SurvivorSelector, error) {
	switch name {
	case AgeBasedName:
		return &AgeBased{}, nil
	case FitnessBasedName:
		return &FitnessBased{}, nil
	case RankCrowdingName:
		return &RankCrowding{}, nil
	default:
		return nil, fmt.Errorf("%w: survivor selection mechanism %q not implemented", framework.ErrConfiguration, name)
	}
}

// Names lists the registered selectors.
func Names() []string {
	names := []string{AgeBasedName, FitnessBasedName, RankCrowdingName}
	sort.Strings(names)
	return names
}

// individual is one row of a merged parent/offspring pool.
type individual struct {
	chromosome framework.Chromosome
	fitness    float64
	age        int
	objectives framework.ObjectiveSpacePoint
}

// checkInputs validates both snapshots against each other and reports
// whether objective vectors travel with the population.
func checkInputs(current, offspring *framework.Snapshot, requireObjectives bool) (bool, error) {
	if err := current.Validate(requireObjectives); err != nil {
		return false, fmt.Errorf("current generation: %w", err)
	}
	if current.Size() == 0 {
		return false, fmt.Errorf("%w: current population is empty", framework.ErrShapeMismatch)
	}
	if err := offspring.Validate(requireObjectives && offspring.Size() > 0); err != nil {
		return false, fmt.Errorf("offspring: %w", err)
	}
	if !current.Population.SameVariables(offspring.Population) {
		return false, fmt.Errorf("%w: offspring variables %v differ from population variables %v",
			framework.ErrShapeMismatch, offspring.Population.Variables, current.Population.Variables)
	}

	withObjectives := len(current.Objectives) > 0
	if offspring.Size() == 0 {
		return withObjectives, nil
	}
	if withObjectives != (len(offspring.Objectives) > 0) {
		return false, fmt.Errorf("%w: objective values given for only one of population and offspring", framework.ErrShapeMismatch)
	}
	if withObjectives && len(current.Objectives[0]) != len(offspring.Objectives[0]) {
		return false, fmt.Errorf("%w: population has %d objectives, offspring %d",
			framework.ErrShapeMismatch, len(current.Objectives[0]), len(offspring.Objectives[0]))
	}
	return withObjectives, nil
}

// parents unpacks the current generation. ageIncrement is added to every age.
func parents(current *framework.Snapshot, withObjectives bool, ageIncrement int) []individual {
	ages := current.AgesOrZero()
	pool := make([]individual, current.Size())
	for i := range pool {
		pool[i] = individual{
			chromosome: current.Population.Row(i),
			fitness:    current.Fitness[i],
			age:        ages[i] + ageIncrement,
		}
		if withObjectives {
			pool[i].objectives = current.Objectives[i]
		}
	}
	return pool
}

// children unpacks the offspring at age zero.
func children(offspring *framework.Snapshot, withObjectives bool) []individual {
	pool := make([]individual, offspring.Size())
	for i := range pool {
		pool[i] = individual{
			chromosome: offspring.Population.Row(i),
			fitness:    offspring.Fitness[i],
		}
		if withObjectives {
			pool[i].objectives = offspring.Objectives[i]
		}
	}
	return pool
}

// snapshotOf copies the selected individuals into a fresh snapshot.
func snapshotOf(variables []string, selected []individual, withObjectives bool) *framework.Snapshot {
	vars := make([]string, len(variables))
	copy(vars, variables)

	out := &framework.Snapshot{
		Population: &framework.Population{
			Variables:   vars,
			Chromosomes: make([]framework.Chromosome, len(selected)),
		},
		Fitness: make([]float64, len(selected)),
		Ages:    make([]int, len(selected)),
	}
	if withObjectives {
		out.Objectives = make([]framework.ObjectiveSpacePoint, len(selected))
	}
	for i, ind := range selected {
		out.Population.Chromosomes[i] = ind.chromosome.Clone()
		out.Fitness[i] = ind.fitness
		out.Ages[i] = ind.age
		if withObjectives {
			point := make(framework.ObjectiveSpacePoint, len(ind.objectives))
			copy(point, ind.objectives)
			out.Objectives[i] = point
		}
	}
	return out
}
