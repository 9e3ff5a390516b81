package match

import (
	"sort"
)

// Candidate is a header column that may hold a given field.
type Candidate struct {
	Column int
	Header string
	// Alias is the field alias the header resembled most.
	Alias string
	// Score is the normalized similarity (0-1) to Alias.
	Score float64
}

// CandidateList is a list of candidates with ranking functionality.
type CandidateList []Candidate

// RankColumns scores every header against the aliases of one field and
// returns the columns sorted by score (descending). Columns listed in skip
// are not considered.
func RankColumns(aliases []string, headers []string, skip map[int]bool) CandidateList {
	var candidates CandidateList

	for col, header := range headers {
		if skip[col] {
			continue
		}

		norm := NormalizeHeader(header)
		best := Candidate{Column: col, Header: header}
		for _, alias := range aliases {
			score := Similarity(NormalizeHeader(alias), norm)
			if score > best.Score {
				best.Score = score
				best.Alias = alias
			}
		}

		candidates = append(candidates, best)
	}

	sort.Sort(candidates)

	return candidates
}

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less implements sort.Interface.
// Sorts by score descending, then by column for determinism.
func (c CandidateList) Less(i, j int) bool {
	if c[i].Score != c[j].Score {
		return c[i].Score > c[j].Score
	}

	return c[i].Column < c[j].Column
}

// Best returns the best candidate, or nil if no candidates.
func (c CandidateList) Best() *Candidate {
	if len(c) == 0 {
		return nil
	}

	return &c[0]
}

// IsAmbiguous returns true if the top two candidates are within the threshold.
func (c CandidateList) IsAmbiguous(threshold float64) bool {
	if len(c) < 2 {
		return false
	}

	return c[0].Score-c[1].Score < threshold
}

// HighConfidence returns the best candidate if it clears minScore and beats
// the runner-up by at least minGap. Returns nil if no clear winner exists.
func (c CandidateList) HighConfidence(minScore, minGap float64) *Candidate {
	best := c.Best()
	if best == nil || best.Score < minScore {
		return nil
	}

	if best.Score < 1.0 && c.IsAmbiguous(minGap) {
		return nil
	}

	return best
}

// Confidence thresholds for accepting a header match.
const (
	// DefaultMinScore is the minimum similarity for accepting a column.
	DefaultMinScore = 0.75
	// DefaultMinGap is the minimum similarity gap between top candidates.
	DefaultMinGap = 0.1
)
