package stats

import (
	"practicum-assigner/internal/assign"
	"practicum-assigner/internal/model"
	"practicum-assigner/utils"
)

// ActivityStats is the fill level of one activity.
type ActivityStats struct {
	ID       int    `yaml:"id"`
	Name     string `yaml:"name"`
	Capacity int    `yaml:"capacity"`
	Assigned int    `yaml:"assigned"`
	LeftOver int    `yaml:"left_over"`
}

// Summary is the aggregate view of one run.
type Summary struct {
	Participants int             `yaml:"participants"`
	Activities   []ActivityStats `yaml:"activities"`
	// PositionCounts[k] is the number of participants placed at preference
	// position k+1.
	PositionCounts []int `yaml:"position_counts"`
	Fallback       int   `yaml:"fallback"`
	// Score awards len(activities)-(position-1) per ranked placement.
	Score int `yaml:"score"`
}

// Summarize computes the summary without modifying its inputs.
func Summarize(activities []model.Activity, results []assign.Result) Summary {
	s := Summary{
		Participants: len(results),
		Activities:   make([]ActivityStats, len(activities)),
	}

	for i, a := range activities {
		s.Activities[i] = ActivityStats{ID: a.ID, Name: a.Name, Capacity: a.Capacity}
	}

	maxRanked := 0
	for _, r := range results {
		maxRanked = max(maxRanked, len(r.Participant.Preferences))
	}
	s.PositionCounts = make([]int, maxRanked)

	for _, r := range results {
		if utils.IsInRange(1, r.ActivityID, len(s.Activities)) {
			s.Activities[r.ActivityID-1].Assigned++
		}

		switch r.Outcome {
		case assign.OutcomeRanked:
			// A position outside the participant's own list is not a ranked
			// placement and earns nothing.
			if !utils.IsInRange(1, r.Position, len(r.Participant.Preferences)) {
				continue
			}
			s.PositionCounts[r.Position-1]++
			s.Score += len(activities) - (r.Position - 1)
		case assign.OutcomeFallback:
			s.Fallback++
		}
	}

	for i := range s.Activities {
		a := &s.Activities[i]
		a.LeftOver = a.Capacity - a.Assigned
	}

	return s
}

// Assigned returns the number of placed participants.
func (s Summary) Assigned() int {
	total := 0
	for _, a := range s.Activities {
		total += a.Assigned
	}

	return total
}

// Overbooked returns the activities holding more participants than seats.
func (s Summary) Overbooked() []ActivityStats {
	var out []ActivityStats
	for _, a := range s.Activities {
		if a.LeftOver < 0 {
			out = append(out, a)
		}
	}

	return out
}
