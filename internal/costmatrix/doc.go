// Package costmatrix turns ranked preferences into a dense cost matrix.
//
// Each participant row is built in two steps. First a complete ranking over
// all activities is derived: explicitly ranked activities keep their rank and
// the remaining rank positions are handed to the unranked activities through
// a uniformly random bijection. Then each activity's rank is repeated once per
// unit of capacity, so the row covers every expanded slot.
//
// The expansion is described by a SlotLayout: activity i owns the column
// range [start, start+capacity).
package costmatrix
