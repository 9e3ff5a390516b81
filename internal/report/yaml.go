package report

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"practicum-assigner/internal/stats"
)

// WriteSummaryYAML encodes the summary as YAML.
func WriteSummaryYAML(w io.Writer, s stats.Summary) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("failed to encode summary: %w", err)
	}

	return enc.Close()
}

// WriteSummaryFile writes the YAML summary to path.
func WriteSummaryFile(path string, s stats.Summary) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create summary file %s: %w", path, err)
	}

	if err := WriteSummaryYAML(f, s); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
