// Package match resolves loosely written spreadsheet headers to the fields
// the loaders expect.
//
// Key functions:
//   - NormalizeHeader: normalizes header text for fuzzy matching
//   - Levenshtein: computes edit distance between strings
//   - RankColumns: ranks header columns against the aliases of one field
package match
