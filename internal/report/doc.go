// Package report renders assignment results for people and spreadsheets.
//
// Key functions:
//   - WriteText: the console summary of a run
//   - WriteSummaryYAML: the same summary as YAML
//   - WriteResultsCSV: one row per participant with the assigned activity
//   - WriteResultsXLSX: the same rows as an Excel table
package report
