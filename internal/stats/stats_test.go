package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"practicum-assigner/internal/assign"
	"practicum-assigner/internal/model"
)

func TestSummarize(t *testing.T) {
	activities := []model.Activity{
		{ID: 1, Name: "Titration", Capacity: 2},
		{ID: 2, Name: "PCR", Capacity: 1},
		{ID: 3, Name: "Microscopy", Capacity: 2},
	}
	results := []assign.Result{
		{Participant: model.Participant{ID: "a", Preferences: []int{1, 2}}, ActivityID: 1, Outcome: assign.OutcomeRanked, Position: 1},
		{Participant: model.Participant{ID: "b", Preferences: []int{2, 1, 3}}, ActivityID: 3, Outcome: assign.OutcomeRanked, Position: 3},
		{Participant: model.Participant{ID: "c", Preferences: []int{3, 2}}, ActivityID: 2, Outcome: assign.OutcomeRanked, Position: 2},
		{Participant: model.Participant{ID: "d"}, ActivityID: 1, Outcome: assign.OutcomeFallback},
	}

	s := Summarize(activities, results)

	assert.Equal(t, 4, s.Participants)
	assert.Equal(t, 4, s.Assigned())
	require.Len(t, s.Activities, 3)
	assert.Equal(t, ActivityStats{ID: 1, Name: "Titration", Capacity: 2, Assigned: 2, LeftOver: 0}, s.Activities[0])
	assert.Equal(t, ActivityStats{ID: 2, Name: "PCR", Capacity: 1, Assigned: 1, LeftOver: 0}, s.Activities[1])
	assert.Equal(t, ActivityStats{ID: 3, Name: "Microscopy", Capacity: 2, Assigned: 1, LeftOver: 1}, s.Activities[2])

	assert.Equal(t, []int{1, 1, 1}, s.PositionCounts)
	assert.Equal(t, 1, s.Fallback)
	// (3-0) + (3-2) + (3-1) + 0
	assert.Equal(t, 6, s.Score)
	assert.Empty(t, s.Overbooked())
}

func TestSummarize_DoesNotMutate(t *testing.T) {
	activities := []model.Activity{{ID: 1, Name: "A", Capacity: 1}}
	results := []assign.Result{
		{Participant: model.Participant{ID: "a", Preferences: []int{1}}, ActivityID: 1, Outcome: assign.OutcomeRanked, Position: 1},
	}

	before := results[0]
	_ = Summarize(activities, results)

	assert.Equal(t, before, results[0])
	assert.Equal(t, 1, activities[0].Capacity)
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil, nil)

	assert.Equal(t, 0, s.Participants)
	assert.Empty(t, s.Activities)
	assert.Empty(t, s.PositionCounts)
	assert.Equal(t, 0, s.Score)
}

func TestSummary_Overbooked(t *testing.T) {
	activities := []model.Activity{{ID: 1, Name: "A", Capacity: 1}}
	results := []assign.Result{
		{ActivityID: 1, Outcome: assign.OutcomeFallback},
		{ActivityID: 1, Outcome: assign.OutcomeFallback},
	}

	s := Summarize(activities, results)
	over := s.Overbooked()
	require.Len(t, over, 1)
	assert.Equal(t, -1, over[0].LeftOver)
	assert.Equal(t, 2, s.Fallback)
}

func TestSummarize_PositionOutsideList(t *testing.T) {
	activities := []model.Activity{{ID: 1, Name: "A", Capacity: 2}, {ID: 2, Name: "B", Capacity: 1}}
	results := []assign.Result{
		{Participant: model.Participant{ID: "a", Preferences: []int{1}}, ActivityID: 1, Outcome: assign.OutcomeRanked, Position: 0},
		{Participant: model.Participant{ID: "b", Preferences: []int{2, 1}}, ActivityID: 2, Outcome: assign.OutcomeRanked, Position: 5},
		{Participant: model.Participant{ID: "c", Preferences: []int{1}}, ActivityID: 1, Outcome: assign.OutcomeRanked, Position: 1},
	}

	var s Summary
	require.NotPanics(t, func() { s = Summarize(activities, results) })

	assert.Equal(t, []int{1, 0}, s.PositionCounts)
	assert.Equal(t, 2, s.Score)
	assert.Equal(t, 3, s.Assigned())
}
