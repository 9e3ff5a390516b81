package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"practicum-assigner/internal/common"
	"practicum-assigner/internal/diagnostic"
	"practicum-assigner/internal/match"
	"practicum-assigner/internal/model"
)

// Participant record fields.
const (
	FieldID        = "id"
	FieldName      = "name"
	FieldMail      = "mail"
	FieldTimestamp = "timestamp"
	FieldGroup     = "group"
	FieldSubgroup  = "subgroup"
)

// CodeMissingColumn marks an optional participant column that was not found.
const CodeMissingColumn = "missing_column"

// fieldSpec lists the aliases of a field in priority order. An exact header
// match on an earlier alias wins over one on a later alias.
type fieldSpec struct {
	name     string
	aliases  []string
	required bool
}

var participantFields = []fieldSpec{
	// Forms exports carry their own "ID" response counter next to the
	// student number.
	{FieldID, []string{"student number", "participant id", "id"}, true},
	{FieldName, []string{"name", "full name"}, false},
	{FieldMail, []string{"mail", "email", "email address"}, false},
	{FieldTimestamp, []string{"timestamp", "completion time", "submitted at"}, false},
	{FieldGroup, []string{"group", "class"}, false},
	{FieldSubgroup, []string{"subgroup", "sub group"}, false},
}

// preferencePrefixes are the leading header tokens of preference columns.
var preferencePrefixes = map[string]bool{
	"preference": true,
	"pref":       true,
	"choice":     true,
}

// ParticipantOptions controls how the participant file is read.
type ParticipantOptions struct {
	// Delimiter separates CSV fields. Defaults to ','.
	Delimiter rune
	// Sheet names the worksheet of an xlsx file. Defaults to DefaultSheet,
	// or the first sheet if the workbook has no DefaultSheet.
	Sheet string
	// Columns pins a field (FieldID, FieldName, ...) to an exact header,
	// bypassing fuzzy matching.
	Columns map[string]string
}

// ParticipantSheet is the result of reading a participant file.
type ParticipantSheet struct {
	Participants []model.Participant
	// Columns maps each resolved field to the header it was read from.
	Columns           map[string]string
	PreferenceHeaders []string
	Diagnostics       diagnostic.Diagnostics
}

// LoadParticipantsFile reads a participant file from disk. Files with an
// .xlsx extension are read as workbooks, anything else as CSV.
func LoadParticipantsFile(path string, opts ParticipantOptions) (*ParticipantSheet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open participant file %s: %w", path, err)
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return ParseParticipantsXLSX(f, path, opts)
	}

	return ParseParticipants(f, path, opts)
}

// row is one input record with its 1-based line (or spreadsheet row) number.
type row struct {
	line  int
	cells []string
}

// ParseParticipants reads participants from CSV data with a header row.
// Non-numeric or fractional preference cells fail with
// model.ErrMalformedPreferences; spreadsheet floats such as "3.0" are read
// as 3. A preference list ends at its first empty cell. Every malformed row
// is reported in the returned error.
func ParseParticipants(r io.Reader, source string, opts ParticipantOptions) (*ParticipantSheet, error) {
	cr := csv.NewReader(r)
	cr.Comma = opts.Delimiter
	if cr.Comma == 0 {
		cr.Comma = ','
	}
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true

	var rows []row
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", source, err)
		}
		line, _ := cr.FieldPos(0)
		rows = append(rows, row{line: line, cells: record})
	}

	return parseRows(rows, source, opts)
}

// parseRows turns a header row and its records into participants.
func parseRows(rows []row, source string, opts ParticipantOptions) (*ParticipantSheet, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: empty participant file", source)
	}

	header := rows[0].cells
	if first, ok := common.First(header); ok {
		header[0] = strings.TrimPrefix(first, "\ufeff")
	}

	sheet := &ParticipantSheet{Columns: map[string]string{}}

	cols, prefCols, err := resolveColumns(header, opts.Columns, &sheet.Diagnostics, source)
	if err != nil {
		return nil, err
	}
	for field, col := range cols {
		sheet.Columns[field] = header[col]
	}
	for _, col := range prefCols {
		sheet.PreferenceHeaders = append(sheet.PreferenceHeaders, header[col])
	}

	for _, rec := range rows[1:] {
		if isBlank(rec.cells) {
			continue
		}

		cell := func(field string) string {
			col, ok := cols[field]
			if !ok || col >= len(rec.cells) {
				return ""
			}
			return strings.TrimSpace(rec.cells[col])
		}

		p := model.Participant{
			ID:        cell(FieldID),
			Name:      cell(FieldName),
			Mail:      cell(FieldMail),
			Timestamp: cell(FieldTimestamp),
			Group:     cell(FieldGroup),
			Subgroup:  cell(FieldSubgroup),
		}

		p.Preferences, err = parsePreferences(p.ID, rec.cells, prefCols)
		if err != nil {
			sheet.Diagnostics.AddError(model.CodeMalformedPreferences,
				&LineError{Source: source, Line: rec.line, Err: err},
				p.ID, fmt.Sprintf("%s:%d", source, rec.line))

			continue
		}

		sheet.Participants = append(sheet.Participants, p)
	}

	if sheet.Diagnostics.HasErrors() {
		return nil, sheet.Diagnostics.Error()
	}

	return sheet, nil
}

// resolveColumns maps fields to column indexes and lists the preference
// columns in header order.
func resolveColumns(
	header []string,
	pinned map[string]string,
	diags *diagnostic.Diagnostics,
	source string,
) (map[string]int, []int, error) {
	taken := map[int]bool{}

	var prefCols []int
	for col, h := range header {
		if first, ok := common.First(match.TokenizeHeader(h)); ok && preferencePrefixes[first] {
			prefCols = append(prefCols, col)
			taken[col] = true
		}
	}

	cols := map[string]int{}
	for _, f := range participantFields {
		if want, ok := pinned[f.name]; ok {
			col := findHeader(header, want, nil)
			if col < 0 {
				return nil, nil, fmt.Errorf("%s: %w: no header %q for field %s", source, ErrMissingColumn, want, f.name)
			}
			cols[f.name] = col
			taken[col] = true

			continue
		}

		if col := exactAlias(header, f.aliases, taken); col >= 0 {
			cols[f.name] = col
			taken[col] = true

			continue
		}

		best := match.RankColumns(f.aliases, header, taken).HighConfidence(match.DefaultMinScore, match.DefaultMinGap)
		if best == nil {
			if f.required {
				return nil, nil, fmt.Errorf("%s: %w: no header resembles field %s", source, ErrMissingColumn, f.name)
			}
			diags.AddInfo(CodeMissingColumn, fmt.Sprintf("no column for field %s", f.name), "", source)

			continue
		}

		cols[f.name] = best.Column
		taken[best.Column] = true
	}

	return cols, prefCols, nil
}

// exactAlias returns the free column whose header equals the earliest
// possible alias after normalization, or -1.
func exactAlias(header, aliases []string, taken map[int]bool) int {
	for _, alias := range aliases {
		if col := findHeader(header, alias, taken); col >= 0 {
			return col
		}
	}

	return -1
}

func findHeader(header []string, want string, skip map[int]bool) int {
	norm := match.NormalizeHeader(want)
	for col, h := range header {
		if !skip[col] && match.NormalizeHeader(h) == norm {
			return col
		}
	}

	return -1
}

func parsePreferences(participantID string, record []string, prefCols []int) ([]int, error) {
	var prefs []int
	ended := false

	for k, col := range prefCols {
		raw := ""
		if col < len(record) {
			raw = strings.TrimSpace(record[col])
		}

		if raw == "" {
			ended = true
			continue
		}
		if ended {
			return nil, model.Malformedf(participantID, "preference %d is set after an empty preference", k+1)
		}

		id, err := parseRank(raw)
		if err != nil {
			return nil, model.Malformedf(participantID, "preference %d: %q is not an activity number", k+1, raw)
		}
		prefs = append(prefs, id)
	}

	return prefs, nil
}

// parseRank accepts integers and integral decimals such as "3.0".
func parseRank(raw string) (int, error) {
	whole, frac, found := strings.Cut(raw, ".")
	if found && strings.Trim(frac, "0") != "" {
		return 0, fmt.Errorf("fractional value %q", raw)
	}

	return strconv.Atoi(whole)
}

func isBlank(record []string) bool {
	for _, c := range record {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}

	return true
}
