package survivors

import (
	"fmt"
	"sort"

	"github.com/idaholab/raven/pkg/framework/plugins/geneticalgorithm/framework"
)

// RankCrowding is the elitist multi-objective survivor selection. Parents
// and offspring are pooled, split into non-dominated fronts and admitted
// front by front. The first front that does not fit is truncated with
// fitness standing in for crowding: highest fitness first, ties kept in
// merged order (parents before offspring).
//
// The returned snapshot lists survivors in admission order and carries
// their ranks and objective-space crowding distances, both computed on the
// merged pool. Parent selection uses those distances.
type RankCrowding struct{}

var _ SurvivorSelector = &RankCrowding{}

func (s *RankCrowding) Name() string {
	return RankCrowdingName
}

func (s *RankCrowding) SelectSurvivors(current, offspring *framework.Snapshot) (*framework.Snapshot, error) {
	if _, err := checkInputs(current, offspring, true); err != nil {
		return nil, err
	}

	popSize := current.Size()
	merged := append(parents(current, true, 1), children(offspring, true)...)
	points := make([]framework.ObjectiveSpacePoint, len(merged))
	for i := range merged {
		points[i] = merged[i].objectives
	}

	fronts, err := framework.NonDominatedSort(points)
	if err != nil {
		return nil, err
	}

	selected := make([]individual, 0, popSize)
	ranks := make([]int, 0, popSize)
	distances := make([]float64, 0, popSize)

	for r, front := range fronts {
		if len(selected) == popSize {
			break
		}
		if len(front) == 0 {
			return nil, fmt.Errorf("%w: front %d is empty", framework.ErrDegenerateFront, r+1)
		}

		crowding := framework.CrowdingDistance(points, front)
		order := make([]int, len(front))
		for k := range order {
			order[k] = k
		}
		if len(selected)+len(front) > popSize {
			// front indices are ascending, so the stable sort keeps merged order on ties
			sort.SliceStable(order, func(a, b int) bool {
				return merged[front[order[a]]].fitness > merged[front[order[b]]].fitness
			})
			order = order[:popSize-len(selected)]
		}

		for _, k := range order {
			selected = append(selected, merged[front[k]])
			ranks = append(ranks, r+1)
			distances = append(distances, crowding[k])
		}
	}

	if len(selected) != popSize {
		return nil, fmt.Errorf("%w: fronts cover %d of %d survivors", framework.ErrDegenerateFront, len(selected), popSize)
	}

	out := snapshotOf(current.Population.Variables, selected, true)
	out.Ranks = ranks
	out.CrowdingDistances = distances
	return out, nil
}
