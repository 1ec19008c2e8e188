package algorithms

import (
	"golang.org/x/exp/rand"

	"github.com/idaholab/raven/pkg/framework/plugins/geneticalgorithm/framework"
)

// TournamentSelect draws tournamentSize contestants with replacement and
// returns the index of the winner. With ranks present the lower rank wins
// and crowding distance breaks ties; otherwise higher fitness wins.
func TournamentSelect(rng *rand.Rand, s *framework.Snapshot, tournamentSize int) int {
	if tournamentSize < 2 {
		tournamentSize = 2 // minimum tournament size
	}
	ranked := len(s.Ranks) == s.Size() && len(s.CrowdingDistances) == s.Size()

	best := rng.Intn(s.Size())
	for i := 1; i < tournamentSize; i++ {
		contestant := rng.Intn(s.Size())
		if ranked {
			if s.Ranks[contestant] < s.Ranks[best] ||
				(s.Ranks[contestant] == s.Ranks[best] && s.CrowdingDistances[contestant] > s.CrowdingDistances[best]) {
				best = contestant
			}
		} else if s.Fitness[contestant] > s.Fitness[best] {
			best = contestant
		}
	}
	return best
}
