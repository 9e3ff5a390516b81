package model

import "practicum-assigner/internal/common"

// Activity is a capacity-limited option participants can be assigned to.
type Activity struct {
	// ID is the 1-based position of the activity in input order.
	ID       int
	Name     string
	Capacity int
}

// Participant is one person to be placed, with their ranked preferences.
type Participant struct {
	ID        string
	Name      string
	Mail      string
	Timestamp string
	Group     string
	Subgroup  string
	// Preferences lists activity IDs from most to least preferred.
	Preferences []int
}

// RankOf returns the 1-based rank the participant gave activityID, or 0 if
// the activity is not in the preference list. The first occurrence wins.
func (p Participant) RankOf(activityID int) int {
	return common.IndexOf(p.Preferences, activityID)
}
