package survivors

import (
	"sort"

	"github.com/idaholab/raven/pkg/framework/plugins/geneticalgorithm/framework"
)

// FitnessBased keeps the fittest individuals of parents and offspring
// combined. Younger individuals win fitness ties.
type FitnessBased struct{}

var _ SurvivorSelector = &FitnessBased{}

func (s *FitnessBased) Name() string {
	return FitnessBasedName
}

func (s *FitnessBased) SelectSurvivors(current, offspring *framework.Snapshot) (*framework.Snapshot, error) {
	withObjectives, err := checkInputs(current, offspring, false)
	if err != nil {
		return nil, err
	}

	popSize := current.Size()
	merged := append(parents(current, withObjectives, 1), children(offspring, withObjectives)...)
	sort.SliceStable(merged, func(i, j int) bool {
		if merged[i].fitness != merged[j].fitness {
			return merged[i].fitness > merged[j].fitness
		}
		return merged[i].age < merged[j].age
	})

	return snapshotOf(current.Population.Variables, merged[:popSize], withObjectives), nil
}
