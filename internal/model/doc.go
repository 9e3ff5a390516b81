// Package model holds the normalized in-memory view of an assignment run:
// the activities with their capacities and the participants with their
// ranked preferences.
//
// A participant's Preferences list is ordered by rank: Preferences[k] is the
// identifier of the activity ranked k+1 (rank 1 is the most preferred).
// Activity identifiers are 1-based positions in the activity input.
//
// NewRoster validates the data once; afterwards the roster is read-only.
package model
