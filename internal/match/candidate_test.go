package match

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankColumns(t *testing.T) {
	headers := []string{"ID", "Name", "E-mail address", "Email"}

	candidates := RankColumns([]string{"mail", "email"}, headers, nil)
	require.Len(t, candidates, 4)

	best := candidates.Best()
	require.NotNil(t, best)
	assert.Equal(t, 3, best.Column)
	assert.Equal(t, "email", best.Alias)
	assert.InDelta(t, 1.0, best.Score, 1e-9)

	hc := candidates.HighConfidence(DefaultMinScore, DefaultMinGap)
	require.NotNil(t, hc)
	assert.Equal(t, "Email", hc.Header)
}

func TestRankColumns_Skip(t *testing.T) {
	headers := []string{"Name", "Naam"}

	candidates := RankColumns([]string{"name"}, headers, map[int]bool{0: true})
	require.Len(t, candidates, 1)
	assert.Equal(t, 1, candidates[0].Column)
	assert.InDelta(t, 0.5, candidates[0].Score, 1e-9)
	assert.Nil(t, candidates.HighConfidence(DefaultMinScore, DefaultMinGap))
}

func TestCandidateList_Sorting(t *testing.T) {
	candidates := CandidateList{
		{Column: 2, Score: 0.5},
		{Column: 1, Score: 0.9},
		{Column: 0, Score: 0.5},
	}

	sort.Sort(candidates)

	assert.Equal(t, 1, candidates[0].Column)
	assert.Equal(t, 0, candidates[1].Column, "ties sort by column")
	assert.Equal(t, 2, candidates[2].Column)
}

func TestCandidateList_HighConfidence(t *testing.T) {
	tests := []struct {
		name       string
		candidates CandidateList
		wantColumn int
		wantNil    bool
	}{
		{"empty", nil, 0, true},
		{"below min score", CandidateList{{Column: 0, Score: 0.6}}, 0, true},
		{"clear winner", CandidateList{{Column: 4, Score: 0.9}, {Column: 1, Score: 0.5}}, 4, false},
		{"ambiguous", CandidateList{{Column: 4, Score: 0.85}, {Column: 1, Score: 0.8}}, 0, true},
		{"exact beats ambiguity", CandidateList{{Column: 2, Score: 1.0}, {Column: 5, Score: 1.0}}, 2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.candidates.HighConfidence(DefaultMinScore, DefaultMinGap)
			if tt.wantNil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.wantColumn, got.Column)
		})
	}
}

func TestCandidateList_IsAmbiguous(t *testing.T) {
	assert.False(t, CandidateList{{Score: 1}}.IsAmbiguous(0.1))
	assert.True(t, CandidateList{{Score: 0.9}, {Score: 0.85}}.IsAmbiguous(0.1))
	assert.False(t, CandidateList{{Score: 0.9}, {Score: 0.7}}.IsAmbiguous(0.1))
}
