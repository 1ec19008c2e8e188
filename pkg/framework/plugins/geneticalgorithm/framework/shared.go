package framework

import (
	"fmt"
	"math"
	"sort"
)

// NonDominatedSort partitions points into Pareto fronts and returns the
// indices of each front, best front first.
func NonDominatedSort(points []ObjectiveSpacePoint) ([][]int, error) {
	if err := validatePoints(points); err != nil {
		return nil, err
	}
	if len(points) == 0 {
		return nil, nil
	}

	var fronts [][]int
	dominated := make([][]int, len(points))
	domCount := make([]int, len(points))

	// Calculate domination for each individual
	for i := 0; i < len(points); i++ {
		for j := 0; j < len(points); j++ {
			if i == j {
				continue
			}
			if Dominates(points[i], points[j]) {
				dominated[i] = append(dominated[i], j)
			} else if Dominates(points[j], points[i]) {
				domCount[i]++
			}
		}
	}

	currentFront := []int{}
	for i := range points {
		if domCount[i] == 0 {
			currentFront = append(currentFront, i)
		}
	}

	// Peel subsequent fronts
	for len(currentFront) > 0 {
		fronts = append(fronts, currentFront)
		nextFront := []int{}
		for _, idx := range currentFront {
			for _, dominatedIdx := range dominated[idx] {
				domCount[dominatedIdx]--
				if domCount[dominatedIdx] == 0 {
					nextFront = append(nextFront, dominatedIdx)
				}
			}
		}
		sort.Ints(nextFront)
		currentFront = nextFront
	}

	return fronts, nil
}

// NonDominatedRanks returns the Pareto rank of every point. Rank 1 holds
// the points no other point dominates.
func NonDominatedRanks(points []ObjectiveSpacePoint) ([]int, error) {
	fronts, err := NonDominatedSort(points)
	if err != nil {
		return nil, err
	}
	ranks := make([]int, len(points))
	for f, front := range fronts {
		for _, idx := range front {
			ranks[idx] = f + 1
		}
	}
	return ranks, nil
}

// Dominates checks if point a dominates point b
func Dominates(a, b ObjectiveSpacePoint) bool {
	better := false
	for i := 0; i < len(a); i++ {
		if a[i] > b[i] {
			return false
		}
		if a[i] < b[i] {
			better = true
		}
	}
	return better
}

// CrowdingDistance calculates the crowding distance of the members of one
// front. The result is aligned with front, not with points.
func CrowdingDistance(points []ObjectiveSpacePoint, front []int) []float64 {
	distances := make([]float64, len(front))
	if len(front) <= 2 {
		for i := range distances {
			distances[i] = math.Inf(1)
		}
		return distances
	}

	order := make([]int, len(front))
	numObjectives := len(points[front[0]])
	for m := 0; m < numObjectives; m++ {
		for i := range order {
			order[i] = i
		}
		// Sort by each objective
		sort.SliceStable(order, func(i, j int) bool {
			return points[front[order[i]]][m] < points[front[order[j]]][m]
		})

		first, last := order[0], order[len(order)-1]
		distances[first] = math.Inf(1)
		distances[last] = math.Inf(1)

		objectiveRange := points[front[last]][m] - points[front[first]][m]
		if objectiveRange == 0 || math.IsInf(objectiveRange, 0) || math.IsNaN(objectiveRange) {
			continue
		}

		for i := 1; i < len(order)-1; i++ {
			gap := points[front[order[i+1]]][m] - points[front[order[i-1]]][m]
			distances[order[i]] += gap / objectiveRange
		}
	}
	return distances
}

func validatePoints(points []ObjectiveSpacePoint) error {
	if len(points) == 0 {
		return nil
	}
	k := len(points[0])
	if k == 0 {
		return fmt.Errorf("%w: objective vectors are empty", ErrShapeMismatch)
	}
	for i, p := range points {
		if len(p) != k {
			return fmt.Errorf("%w: objective vector %d has %d values, want %d", ErrShapeMismatch, i, len(p), k)
		}
		for m, v := range p {
			if math.IsNaN(v) {
				return fmt.Errorf("%w: objective %d of individual %d is NaN", ErrShapeMismatch, m, i)
			}
		}
	}
	return nil
}
