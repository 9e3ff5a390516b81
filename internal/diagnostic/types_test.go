package diagnostic

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics(t *testing.T) {
	var d Diagnostics
	assert.True(t, d.IsValid())
	assert.NoError(t, d.Error())

	d.AddWarning("duplicate_rank", "ranks 2 twice", "s1", "")
	d.AddInfo("missing_column", "no column for field mail", "", "prefs.csv")
	assert.True(t, d.IsValid())
	assert.False(t, d.HasErrors())

	errParse := errors.New("cannot parse")
	d.AddError("bad_row", errParse, "s2", "prefs.csv:4")
	d.AddError("bad_row", errors.New("empty id"), "", "prefs.csv:6")
	assert.True(t, d.HasErrors())
	assert.EqualError(t, d.Error(), "cannot parse\nempty id")
	assert.True(t, errors.Is(d.Error(), errParse))

	require.Len(t, d.Errors, 2)
	assert.Equal(t, "prefs.csv:4 participant s2: [bad_row] cannot parse", d.Errors[0].String())
}

func TestDiagnostics_Merge(t *testing.T) {
	var a, b Diagnostics
	a.AddWarning("w", "one", "", "")
	b.AddWarning("w", "two", "", "")
	b.AddError("e", errors.New("three"), "", "")

	a.Merge(b)

	assert.Len(t, a.Warnings, 2)
	assert.Len(t, a.Errors, 1)
}

func TestDiagnostic_String(t *testing.T) {
	assert.Equal(t, "plain", Diagnostic{Message: "plain"}.String())
	assert.Equal(t, "participant s1: [c] m", Diagnostic{Code: "c", Message: "m", Participant: "s1"}.String())
}

func TestDiagnosticSeverity_String(t *testing.T) {
	assert.Equal(t, "info", DiagnosticInfo.String())
	assert.Equal(t, "warning", DiagnosticWarning.String())
	assert.Equal(t, "error", DiagnosticError.String())
	assert.Equal(t, "unknown", DiagnosticSeverity(9).String())
}
