// Package assign runs the assignment pipeline and annotates its outcome.
//
// Run builds the cost matrix for a roster, solves it, maps every chosen slot
// back to its activity and classifies each placement either as ranked (the
// participant listed the activity) or as fallback.
package assign
