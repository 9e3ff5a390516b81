package costmatrix

import (
	"practicum-assigner/internal/model"
	"practicum-assigner/utils"
)

// Ranking is a complete ranking of all activities for one participant.
// Both slices are indexed from zero and hold 1-based values:
// RankToActivity[r-1] is the activity at rank r and ActivityToRank[a-1] is
// the rank of activity a.
type Ranking struct {
	RankToActivity []int
	ActivityToRank []int
	// Explicit is the number of ranks taken from the preference list.
	Explicit int
}

// shuffler is the part of *rand.Rand the ranking needs.
type shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// newRanking completes prefs into a ranking over n activities. Unranked
// activities are shuffled onto the free rank positions. A repeated activity
// keeps its first rank; the later position stays free.
func newRanking(participantID string, prefs []int, n int, rng shuffler) (Ranking, error) {
	if len(prefs) > n {
		return Ranking{}, model.Malformedf(participantID, "%d preferences for %d activities", len(prefs), n)
	}

	r := Ranking{
		RankToActivity: make([]int, n),
		ActivityToRank: make([]int, n),
	}

	for k, id := range prefs {
		if !utils.IsInRange(1, id, n) {
			return Ranking{}, model.Malformedf(participantID, "activity %d at rank %d out of range 1..%d", id, k+1, n)
		}
		if r.ActivityToRank[id-1] != 0 {
			continue
		}
		r.RankToActivity[k] = id
		r.ActivityToRank[id-1] = k + 1
		r.Explicit++
	}

	if r.Explicit == n {
		return r, nil
	}

	openRanks := make([]int, 0, n-r.Explicit)
	for k, id := range r.RankToActivity {
		if id == 0 {
			openRanks = append(openRanks, k+1)
		}
	}

	unranked := make([]int, 0, n-r.Explicit)
	for i, rank := range r.ActivityToRank {
		if rank == 0 {
			unranked = append(unranked, i+1)
		}
	}

	rng.Shuffle(len(unranked), func(i, j int) {
		unranked[i], unranked[j] = unranked[j], unranked[i]
	})

	for i, id := range unranked {
		rank := openRanks[i]
		r.RankToActivity[rank-1] = id
		r.ActivityToRank[id-1] = rank
	}

	return r, nil
}
