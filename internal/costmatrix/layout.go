package costmatrix

import (
	"sort"

	"practicum-assigner/internal/model"
)

// SlotLayout maps activities onto contiguous column ranges.
type SlotLayout struct {
	// bounds[i] is the first column of activity i+1; bounds[len-1] is the
	// total number of columns.
	bounds []int
}

// NewSlotLayout lays out the activities in ID order.
func NewSlotLayout(activities []model.Activity) SlotLayout {
	bounds := make([]int, len(activities)+1)
	for i, a := range activities {
		bounds[i+1] = bounds[i] + a.Capacity
	}

	return SlotLayout{bounds: bounds}
}

// Columns returns the total number of expanded slots.
func (l SlotLayout) Columns() int {
	if len(l.bounds) == 0 {
		return 0
	}

	return l.bounds[len(l.bounds)-1]
}

// Activities returns the number of activities in the layout.
func (l SlotLayout) Activities() int {
	if len(l.bounds) == 0 {
		return 0
	}

	return len(l.bounds) - 1
}

// Range returns the half-open column range owned by the activity.
func (l SlotLayout) Range(activityID int) (start, end int) {
	return l.bounds[activityID-1], l.bounds[activityID]
}

// ActivityAt returns the ID of the activity owning the column, or false if
// the column is outside the layout.
func (l SlotLayout) ActivityAt(col int) (int, bool) {
	n := l.Activities()
	if col < 0 || col >= l.Columns() {
		return 0, false
	}

	// first activity whose range ends after col; empty ranges are skipped
	i := sort.Search(n, func(i int) bool { return l.bounds[i+1] > col })

	return i + 1, true
}
