package survivors

import (
	"sort"

	"github.com/idaholab/raven/pkg/framework/plugins/geneticalgorithm/framework"
)

// AgeBased replaces the oldest parents with the offspring regardless of
// fitness. Among parents of equal age the less fit one is older in the
// replacement order.
type AgeBased struct{}

var _ SurvivorSelector = &AgeBased{}

func (s *AgeBased) Name() string {
	return AgeBasedName
}

func (s *AgeBased) SelectSurvivors(current, offspring *framework.Snapshot) (*framework.Snapshot, error) {
	withObjectives, err := checkInputs(current, offspring, false)
	if err != nil {
		return nil, err
	}

	pool := parents(current, withObjectives, 0)
	sort.SliceStable(pool, func(i, j int) bool {
		if pool[i].age != pool[j].age {
			return pool[i].age < pool[j].age
		}
		return pool[i].fitness > pool[j].fitness
	})
	for i := range pool {
		pool[i].age++
	}

	// the last slot goes to the first child, the one before it to the second...
	kids := children(offspring, withObjectives)
	replaced := min(len(kids), len(pool))
	for k := 0; k < replaced; k++ {
		pool[len(pool)-1-k] = kids[k]
	}

	return snapshotOf(current.Population.Variables, pool, withObjectives), nil
}
