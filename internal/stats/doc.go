// Package stats aggregates assignment results into a summary.
//
// The summary counts placements per activity and per preference position,
// and scores a run by awarding more points for placements higher up a
// participant's list. Overbooked and Assigned check a summary against the
// capacity and participant totals.
package stats
