// Package diagnostic provides structured warnings and errors collected
// while loading and validating assignment input.
//
// Key capabilities:
//   - Duplicate participant identifier warnings
//   - Duplicate rank warnings within one preference list
//   - Loader errors tied to a source location
package diagnostic
