package assign

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"practicum-assigner/internal/model"
)

func TestAnnotate(t *testing.T) {
	activities := []model.Activity{
		{ID: 1, Name: "Titration", Capacity: 1},
		{ID: 2, Name: "PCR", Capacity: 1},
		{ID: 3, Name: "Microscopy", Capacity: 1},
	}
	participants := []model.Participant{
		{ID: "a", Preferences: []int{2, 3}},
		{ID: "b", Preferences: []int{2}},
		{ID: "c"},
	}

	results, err := Annotate(participants, activities, []int{3, 2, 1})
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, OutcomeRanked, results[0].Outcome)
	assert.Equal(t, 2, results[0].Position)
	assert.Equal(t, "Microscopy", results[0].ActivityName)
	assert.Equal(t, "2", results[0].PositionLabel())

	assert.Equal(t, OutcomeRanked, results[1].Outcome)
	assert.Equal(t, 1, results[1].Position)

	assert.Equal(t, OutcomeFallback, results[2].Outcome)
	assert.Equal(t, 0, results[2].Position)
	assert.Equal(t, 1, results[2].ActivityID)
	assert.Equal(t, FallbackLabel, results[2].PositionLabel())
}

func TestAnnotate_Errors(t *testing.T) {
	activities := []model.Activity{{ID: 1, Name: "A", Capacity: 2}}
	participants := []model.Participant{{ID: "a"}, {ID: "b"}}

	_, err := Annotate(participants, activities, []int{1})
	assert.ErrorContains(t, err, "1 assignments for 2 participants")

	_, err = Annotate(participants, activities, []int{1, 2})
	assert.ErrorContains(t, err, "participant b assigned unknown activity 2")
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "Ranked", OutcomeRanked.String())
	assert.Equal(t, "Fallback", OutcomeFallback.String())
	assert.Equal(t, "Unassigned", OutcomeUnassigned.String())
	assert.Equal(t, "Outcome(7)", Outcome(7).String())
	assert.Equal(t, "", Result{}.PositionLabel())
}
