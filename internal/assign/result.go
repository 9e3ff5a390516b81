package assign

import (
	"fmt"
	"strconv"

	"practicum-assigner/internal/model"
	"practicum-assigner/utils"
)

// FallbackLabel is the preference position shown for fallback placements.
const FallbackLabel = "random"

// Result is the placement of one participant.
type Result struct {
	Participant  model.Participant
	ActivityID   int
	ActivityName string
	Outcome      Outcome
	// Position is the 1-based position of the activity in the participant's
	// preferences. Zero unless Outcome is OutcomeRanked.
	Position int
}

// PositionLabel renders Position for tabular output.
func (r Result) PositionLabel() string {
	switch r.Outcome {
	case OutcomeRanked:
		return strconv.Itoa(r.Position)
	case OutcomeFallback:
		return FallbackLabel
	default:
		return ""
	}
}

// Annotate pairs each participant with its assigned activity and classifies
// the outcome. activityIDs[i] is the activity assigned to participants[i].
func Annotate(participants []model.Participant, activities []model.Activity, activityIDs []int) ([]Result, error) {
	if len(activityIDs) != len(participants) {
		return nil, fmt.Errorf("annotate: %d assignments for %d participants", len(activityIDs), len(participants))
	}

	results := make([]Result, len(participants))
	for i, p := range participants {
		id := activityIDs[i]
		if !utils.IsInRange(1, id, len(activities)) {
			return nil, fmt.Errorf("annotate: participant %s assigned unknown activity %d", p.ID, id)
		}

		res := Result{
			Participant:  p,
			ActivityID:   id,
			ActivityName: activities[id-1].Name,
			Outcome:      OutcomeFallback,
		}
		if pos := p.RankOf(id); pos > 0 {
			res.Outcome = OutcomeRanked
			res.Position = pos
		}
		results[i] = res
	}

	return results, nil
}
