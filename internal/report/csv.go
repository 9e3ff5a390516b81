package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"practicum-assigner/internal/assign"
)

// ResultHeader lists the result columns in output order.
var ResultHeader = []string{
	"Identifier",
	"Name",
	"Contact",
	"Timestamp",
	"Group",
	"Subgroup",
	"Preferences",
	"Pref position",
	"Assigned",
	"Activity",
}

// WriteResultsCSV writes one row per result under ResultHeader.
func WriteResultsCSV(w io.Writer, results []assign.Result) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(ResultHeader); err != nil {
		return fmt.Errorf("failed to write result header: %w", err)
	}

	for _, r := range results {
		p := r.Participant
		row := []string{
			p.ID,
			p.Name,
			p.Mail,
			p.Timestamp,
			p.Group,
			p.Subgroup,
			joinInts(p.Preferences),
			r.PositionLabel(),
			strconv.Itoa(r.ActivityID),
			r.ActivityName,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write result for %s: %w", p.ID, err)
		}
	}

	cw.Flush()

	return cw.Error()
}

// WriteResultsFile writes the result table to path, as a workbook if path
// has an .xlsx extension and as CSV otherwise.
func WriteResultsFile(path string, results []assign.Result) error {
	write := WriteResultsCSV
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		write = WriteResultsXLSX
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file %s: %w", path, err)
	}

	if err := write(f, results); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, ", ")
}
