package model

import (
	"fmt"
	"slices"

	"practicum-assigner/internal/diagnostic"
	"practicum-assigner/utils"
)

// Roster is the validated set of participants and activities for one run.
type Roster struct {
	participants  []Participant
	activities    []Activity
	totalCapacity int
	diags         diagnostic.Diagnostics
}

// NewRoster validates and freezes the input. Activity IDs are renumbered to
// their 1-based input position.
//
// It fails with ErrInfeasibleCapacity if a capacity is negative or the total
// capacity is below the participant count. Duplicate participant IDs and
// duplicate activities inside one preference list are recorded as warnings.
func NewRoster(participants []Participant, activities []Activity) (*Roster, error) {
	r := &Roster{
		participants: slices.Clone(participants),
		activities:   slices.Clone(activities),
	}

	for i := range r.activities {
		a := &r.activities[i]
		a.ID = i + 1
		if !utils.IsNonNegative(a.Capacity) {
			return nil, fmt.Errorf("%w: activity %d (%s) has negative capacity %d",
				ErrInfeasibleCapacity, a.ID, a.Name, a.Capacity)
		}
		r.totalCapacity += a.Capacity
	}

	if r.totalCapacity < len(r.participants) {
		return nil, fmt.Errorf("%w: %d places < %d participants",
			ErrInfeasibleCapacity, r.totalCapacity, len(r.participants))
	}

	seen := make(map[string]struct{}, len(r.participants))
	for i := range r.participants {
		p := &r.participants[i]
		p.Preferences = slices.Clone(p.Preferences)

		if _, ok := seen[p.ID]; ok {
			r.diags.AddWarning(CodeDuplicateIdentifier,
				fmt.Sprintf("participant %s (%s) already in participant data", p.ID, p.Name), p.ID, "")
		}
		seen[p.ID] = struct{}{}

		if dup := duplicateRanks(p.Preferences); len(dup) > 0 {
			r.diags.AddWarning(CodeDuplicateRank,
				fmt.Sprintf("participant %s (%s) ranks activities %v more than once", p.ID, p.Name, dup), p.ID, "")
		}
	}

	return r, nil
}

// duplicateRanks returns the activity IDs that occur more than once, in
// order of their second occurrence.
func duplicateRanks(prefs []int) []int {
	var dup []int
	seen := make(map[int]int, len(prefs))
	for _, id := range prefs {
		seen[id]++
		if seen[id] == 2 {
			dup = append(dup, id)
		}
	}

	return dup
}

// Participants returns the participants in input order. Callers must not
// modify the returned slice.
func (r *Roster) Participants() []Participant { return r.participants }

// Activities returns the activities in ID order. Callers must not modify the
// returned slice.
func (r *Roster) Activities() []Activity { return r.activities }

// TotalCapacity is the number of expanded slots.
func (r *Roster) TotalCapacity() int { return r.totalCapacity }

// Diagnostics returns the warnings found during validation.
func (r *Roster) Diagnostics() diagnostic.Diagnostics { return r.diags }
