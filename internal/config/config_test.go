package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	yaml := `
participants: preferences.csv
activities: experiments.txt
output: assignment.csv
summary: summary.yaml
seed: 20230214
delimiter: ";"
sheet: Responses
columns:
  id: Student number
`

	cfg, err := Parse([]byte(yaml))
	require.NoError(t, err)

	assert.Equal(t, "preferences.csv", cfg.Participants)
	assert.Equal(t, "experiments.txt", cfg.Activities)
	assert.Equal(t, "assignment.csv", cfg.Output)
	assert.Equal(t, "summary.yaml", cfg.Summary)
	require.NotNil(t, cfg.Seed)
	assert.Equal(t, uint64(20230214), *cfg.Seed)
	assert.Equal(t, ';', cfg.DelimiterRune())
	assert.Equal(t, DefaultActivityDelimiter, cfg.ActivityDelimiter)
	assert.Equal(t, "Responses", cfg.Sheet)
	assert.Equal(t, "Student number", cfg.Columns["id"])
	assert.NoError(t, cfg.Validate())
}

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse([]byte("participants: p.csv\n"))
	require.NoError(t, err)

	assert.Nil(t, cfg.Seed)
	assert.Equal(t, DefaultDelimiter, cfg.Delimiter)
	assert.Equal(t, DefaultActivityDelimiter, cfg.ActivityDelimiter)
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("seed: [1, 2"))
	assert.ErrorContains(t, err, "failed to parse config YAML")

	_, err = Parse([]byte("seed: -3\n"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := &Config{Delimiter: "ab"}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "participants file is required")
	assert.Contains(t, err.Error(), "activities file is required")
	assert.Contains(t, err.Error(), "output file is required")
	assert.Contains(t, err.Error(), `delimiter "ab" must be a single character`)
	assert.Contains(t, err.Error(), "activity delimiter must not be empty")
}

func TestWriteFile_RoundTrip(t *testing.T) {
	seed := uint64(7)
	cfg := &Config{
		Participants: "p.csv",
		Activities:   "a.txt",
		Output:       "out.csv",
		Seed:         &seed,
	}
	ApplyDefaults(cfg)

	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, WriteFile(cfg, path))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorContains(t, err, "failed to read config file")
}
