package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"practicum-assigner/internal/assign"
)

// ResultTable names both the worksheet and the Excel table of an xlsx result.
const ResultTable = "Results"

// WriteResultsXLSX writes the result table as a workbook with a single
// "Results" sheet. Activity IDs and ranked positions are stored as numbers.
func WriteResultsXLSX(w io.Writer, results []assign.Result) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ResultTable); err != nil {
		return fmt.Errorf("failed to name result sheet: %w", err)
	}

	header := make([]any, len(ResultHeader))
	for i, h := range ResultHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(ResultTable, "A1", &header); err != nil {
		return fmt.Errorf("failed to write result header: %w", err)
	}

	for i, r := range results {
		p := r.Participant

		var position any = r.PositionLabel()
		if r.Outcome == assign.OutcomeRanked {
			position = r.Position
		}

		row := []any{
			p.ID,
			p.Name,
			p.Mail,
			p.Timestamp,
			p.Group,
			p.Subgroup,
			joinInts(p.Preferences),
			position,
			r.ActivityID,
			r.ActivityName,
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(ResultTable, cell, &row); err != nil {
			return fmt.Errorf("failed to write result for %s: %w", p.ID, err)
		}
	}

	if len(results) > 0 {
		last, err := excelize.CoordinatesToCellName(len(ResultHeader), len(results)+1)
		if err != nil {
			return err
		}
		if err := f.AddTable(ResultTable, &excelize.Table{
			Range:     "A1:" + last,
			Name:      ResultTable,
			StyleName: "TableStyleMedium2",
		}); err != nil {
			return fmt.Errorf("failed to add result table: %w", err)
		}
	}

	return f.Write(w)
}
