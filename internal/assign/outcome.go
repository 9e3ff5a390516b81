package assign

//go:generate go tool stringer -type=Outcome -trimprefix=Outcome -output=outcome_string.go

// Outcome classifies how a participant was placed.
type Outcome int

const (
	OutcomeUnassigned Outcome = iota
	// OutcomeRanked means the activity is in the participant's preferences.
	OutcomeRanked
	// OutcomeFallback means the participant got an activity they did not rank.
	OutcomeFallback
)
