// Package ingest reads the run's input files into model records.
//
// Activities come from a plain text file with one "capacity;name" line per
// activity; the line order defines the activity IDs. Participants come from
// a CSV or xlsx export of the preference form. Its header row is matched
// against known field names, exactly first and fuzzily otherwise, and every
// column whose header starts with "preference" holds one ranked activity ID,
// most preferred first.
package ingest
