package ingest

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"practicum-assigner/internal/model"
)

func TestParseActivities(t *testing.T) {
	input := `
# capacity;name
2;Titration
1;PCR; lab 2
0 ; Closed lab

3;Microscopy
`

	activities, err := ParseActivities(strings.NewReader(input), "experiments.txt", "")
	require.NoError(t, err)

	assert.Equal(t, []model.Activity{
		{ID: 1, Name: "Titration", Capacity: 2},
		{ID: 2, Name: "lab 2", Capacity: 1},
		{ID: 3, Name: "Closed lab", Capacity: 0},
		{ID: 4, Name: "Microscopy", Capacity: 3},
	}, activities)
}

func TestParseActivities_Delimiter(t *testing.T) {
	activities, err := ParseActivities(strings.NewReader("4,Chromatography\n"), "x", ",")
	require.NoError(t, err)
	require.Len(t, activities, 1)
	assert.Equal(t, 4, activities[0].Capacity)
	assert.Equal(t, "Chromatography", activities[0].Name)
}

func TestParseActivities_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"missing name", "2;A\n5\n", "experiments.txt:2: malformed activity: want capacity;name"},
		{"bad capacity", "x;A\n", "experiments.txt:1: malformed activity: capacity \"x\""},
		{"negative capacity", "\n-1;A\n", "experiments.txt:2: malformed activity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseActivities(strings.NewReader(tt.input), "experiments.txt", ";")
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformedActivity))
			assert.Contains(t, err.Error(), tt.want)

			var le *LineError
			require.True(t, errors.As(err, &le))
			assert.Equal(t, "experiments.txt", le.Source)
		})
	}
}

func TestLoadActivitiesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "experiments.txt")
	require.NoError(t, os.WriteFile(path, []byte("2;A\n1;B\n"), 0o644))

	activities, err := LoadActivitiesFile(path, ";")
	require.NoError(t, err)
	assert.Len(t, activities, 2)

	_, err = LoadActivitiesFile(filepath.Join(t.TempDir(), "missing.txt"), ";")
	assert.ErrorContains(t, err, "failed to open activity file")
}
