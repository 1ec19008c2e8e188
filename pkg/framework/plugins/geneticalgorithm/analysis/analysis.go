// Package analysis summarizes populations and fronts produced by the
// genetic algorithm.
package analysis

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/idaholab/raven/pkg/framework/plugins/geneticalgorithm/framework"
)

// GenerationStats describes one generation. Fitness statistics only cover
// feasible individuals, those with finite fitness.
type GenerationStats struct {
	Generation  int     `json:"generation"`
	BestFitness float64 `json:"bestFitness"`
	MeanFitness float64 `json:"meanFitness"`
	StdFitness  float64 `json:"stdFitness"`
	Feasible    int     `json:"feasible"`
	Unique      int     `json:"unique"`
	// FrontSize counts rank 1 individuals, zero when ranks are unknown.
	FrontSize int `json:"frontSize,omitempty"`
	MaxAge    int `json:"maxAge"`
}

// Summarize computes the statistics of snapshot s.
func Summarize(generation int, s *framework.Snapshot) (GenerationStats, error) {
	if err := s.Validate(false); err != nil {
		return GenerationStats{}, err
	}
	stats := GenerationStats{
		Generation:  generation,
		BestFitness: math.Inf(-1),
		MeanFitness: math.NaN(),
		StdFitness:  math.NaN(),
	}

	feasible := make([]float64, 0, len(s.Fitness))
	for _, f := range s.Fitness {
		if !math.IsInf(f, 0) {
			feasible = append(feasible, f)
		}
	}
	stats.Feasible = len(feasible)
	if len(feasible) > 0 {
		stats.BestFitness = floats.Max(feasible)
		stats.MeanFitness = stat.Mean(feasible, nil)
		if len(feasible) > 1 {
			stats.StdFitness = stat.StdDev(feasible, nil)
		} else {
			stats.StdFitness = 0
		}
	}

	seen := make(map[string]bool, s.Size())
	for _, c := range s.Population.Chromosomes {
		seen[fmt.Sprint([]float64(c))] = true
	}
	stats.Unique = len(seen)

	for _, r := range s.Ranks {
		if r == 1 {
			stats.FrontSize++
		}
	}
	for _, a := range s.Ages {
		stats.MaxAge = max(stats.MaxAge, a)
	}
	return stats, nil
}

// IGD is the inverted generational distance: the mean Euclidean distance
// from each point of the reference front to its nearest obtained point.
func IGD(obtained, reference []framework.ObjectiveSpacePoint) (float64, error) {
	if len(obtained) == 0 || len(reference) == 0 {
		return 0, fmt.Errorf("%w: IGD needs non-empty fronts", framework.ErrShapeMismatch)
	}
	k := len(reference[0])
	for _, fronts := range [][]framework.ObjectiveSpacePoint{obtained, reference} {
		for _, p := range fronts {
			if len(p) != k {
				return 0, fmt.Errorf("%w: mixed objective counts %d and %d", framework.ErrShapeMismatch, k, len(p))
			}
		}
	}

	distances := make([]float64, len(reference))
	for i, ref := range reference {
		nearest := math.Inf(1)
		for _, p := range obtained {
			nearest = math.Min(nearest, floats.Distance(ref, p, 2))
		}
		distances[i] = nearest
	}
	return stat.Mean(distances, nil), nil
}
