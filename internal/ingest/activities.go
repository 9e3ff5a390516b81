package ingest

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"practicum-assigner/internal/model"
)

// DefaultActivityDelimiter separates capacity and name on an activity line.
const DefaultActivityDelimiter = ";"

// LoadActivitiesFile reads an activity file from disk.
func LoadActivitiesFile(path, delimiter string) ([]model.Activity, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open activity file %s: %w", path, err)
	}
	defer f.Close()

	return ParseActivities(f, path, delimiter)
}

// ParseActivities reads "capacity<delimiter>name" lines. The capacity is the
// first field and the name the last. Blank lines and lines starting with '#'
// are skipped. source names the input in error messages.
func ParseActivities(r io.Reader, source, delimiter string) ([]model.Activity, error) {
	if delimiter == "" {
		delimiter = DefaultActivityDelimiter
	}

	var activities []model.Activity

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(strings.TrimPrefix(scanner.Text(), "\ufeff"))
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.Split(text, delimiter)
		if len(fields) < 2 {
			return nil, &LineError{Source: source, Line: line,
				Err: fmt.Errorf("%w: want capacity%sname, got %q", ErrMalformedActivity, delimiter, text)}
		}

		capacity, err := strconv.Atoi(strings.TrimSpace(fields[0]))
		if err != nil || capacity < 0 {
			return nil, &LineError{Source: source, Line: line,
				Err: fmt.Errorf("%w: capacity %q is not a non-negative integer", ErrMalformedActivity, fields[0])}
		}

		activities = append(activities, model.Activity{
			ID:       len(activities) + 1,
			Name:     strings.TrimSpace(fields[len(fields)-1]),
			Capacity: capacity,
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read activities from %s: %w", source, err)
	}

	return activities, nil
}
