// Package config loads the YAML run configuration.
//
// Example:
//
//	participants: preferences.csv
//	activities: experiments.txt
//	output: assignment.csv
//	summary: summary.yaml
//	seed: 20230214
//	delimiter: ";"
//	activity_delimiter: ";"
//	columns:
//	  id: Student number
//
// Every field can be overridden on the command line. Without a seed each
// run draws a fresh one and reports it, so a run can be reproduced later.
package config
