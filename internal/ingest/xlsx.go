package ingest

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/xuri/excelize/v2"
)

// DefaultSheet is the worksheet Forms puts its responses on.
const DefaultSheet = "Sheet1"

// ParseParticipantsXLSX reads participants from an xlsx workbook. The first
// row of the sheet is the header; cell values are read as displayed, and the
// rest follows ParseParticipants.
func ParseParticipantsXLSX(r io.Reader, source string, opts ParticipantOptions) (*ParticipantSheet, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", source, err)
	}
	defer f.Close()

	name, err := pickSheet(f.GetSheetList(), opts.Sheet)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}

	cells, err := f.GetRows(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s of %s: %w", name, source, err)
	}

	rows := make([]row, 0, len(cells))
	for i, c := range cells {
		rows = append(rows, row{line: i + 1, cells: c})
	}

	return parseRows(rows, fmt.Sprintf("%s[%s]", source, name), opts)
}

func pickSheet(sheets []string, want string) (string, error) {
	switch {
	case want != "":
		if !slices.Contains(sheets, want) {
			return "", fmt.Errorf("no sheet %q in workbook", want)
		}
		return want, nil
	case slices.Contains(sheets, DefaultSheet):
		return DefaultSheet, nil
	case len(sheets) > 0:
		return sheets[0], nil
	default:
		return "", errors.New("workbook has no sheets")
	}
}
