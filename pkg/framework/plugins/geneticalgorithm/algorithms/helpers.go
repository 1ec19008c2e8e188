package algorithms

import (
	"fmt"

	"github.com/idaholab/raven/pkg/framework/plugins/geneticalgorithm/framework"
)

// GetParetoFront extracts the Pareto front (first non-dominated front) from a population
func GetParetoFront(s *framework.Snapshot) ([]framework.ObjectiveSpacePoint, error) {
	if s.Size() == 0 {
		return nil, nil
	}
	if len(s.Objectives) != s.Size() {
		return nil, fmt.Errorf("%w: snapshot carries no objective values", framework.ErrShapeMismatch)
	}

	fronts, err := framework.NonDominatedSort(s.Objectives)
	if err != nil {
		return nil, err
	}
	if len(fronts) == 0 || len(fronts[0]) == 0 {
		return nil, nil
	}

	seen := make(map[string]bool, len(fronts[0]))
	paretoFront := make([]framework.ObjectiveSpacePoint, 0, len(fronts[0]))
	for _, idx := range fronts[0] {
		// survivors may share a chromosome, report each point once
		key := fmt.Sprint([]float64(s.Objectives[idx]))
		if seen[key] {
			continue
		}
		seen[key] = true
		point := make(framework.ObjectiveSpacePoint, len(s.Objectives[idx]))
		copy(point, s.Objectives[idx])
		paretoFront = append(paretoFront, point)
	}
	return paretoFront, nil
}

// rankSnapshot fills Ranks and CrowdingDistances in place.
func rankSnapshot(s *framework.Snapshot) error {
	fronts, err := framework.NonDominatedSort(s.Objectives)
	if err != nil {
		return err
	}
	s.Ranks = make([]int, s.Size())
	s.CrowdingDistances = make([]float64, s.Size())
	for r, front := range fronts {
		distances := framework.CrowdingDistance(s.Objectives, front)
		for k, idx := range front {
			s.Ranks[idx] = r + 1
			s.CrowdingDistances[idx] = distances[k]
		}
	}
	return nil
}
