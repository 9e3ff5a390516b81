// Package solver computes minimum-cost one-to-one assignments.
//
// Solve implements the Kuhn-Munkres (Hungarian) method with row and column
// potentials. It accepts rectangular matrices with no more rows than columns
// and runs in O(rows² · cols).
package solver
