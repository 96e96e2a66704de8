package parse_test

import (
	"testing"

	"github.com/etlab/etlab/internal/parse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepsAcceptedSeparators(t *testing.T) {
	res := parse.Steps("20 78\n30\t70\n36,60\n42, 48\n")

	require.Len(t, res.Steps, 4)
	assert.Zero(t, res.SkippedLines)

	assert.Equal(t, 20.0, res.Steps[0].VO2)
	assert.Equal(t, 78.0, res.Steps[0].HRV)
	assert.Equal(t, 70.0, res.Steps[1].HRV)
	assert.Equal(t, 36.0, res.Steps[2].VO2)
	assert.Equal(t, 48.0, res.Steps[3].HRV)
}

func TestStepsIndicesAreSourceLineNumbers(t *testing.T) {
	// Line 2 is blank, line 3 is malformed: indices keep their gaps.
	res := parse.Steps("20 78\n\nnot numbers\n42 48")

	require.Len(t, res.Steps, 2)
	assert.Equal(t, 1, res.Steps[0].StepIndex)
	assert.Equal(t, 4, res.Steps[1].StepIndex)
	assert.Equal(t, 1, res.SkippedLines)
}

func TestStepsSkipsMalformedLines(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		skipped int
	}{
		{"single value", "42", 1},
		{"non-numeric first field", "abc 50", 1},
		{"non-numeric second field", "42 xyz", 1},
		{"empty input", "", 0},
		{"whitespace only", "   \n\t\n", 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res := parse.Steps(tc.line)
			assert.Empty(t, res.Steps)
			assert.Equal(t, tc.skipped, res.SkippedLines)
		})
	}
}

func TestStepsIgnoresExtraFields(t *testing.T) {
	res := parse.Steps("20 78 extra trailing junk")

	require.Len(t, res.Steps, 1)
	assert.Equal(t, 20.0, res.Steps[0].VO2)
	assert.Equal(t, 78.0, res.Steps[0].HRV)
}

func TestStepsHandlesCRLF(t *testing.T) {
	res := parse.Steps("20 78\r\n30 70\r\n")

	require.Len(t, res.Steps, 2)
	assert.Equal(t, 30.0, res.Steps[1].VO2)
}

func TestStepsKeepsNegativeAndDecimalNumbers(t *testing.T) {
	// Parsing is lenient; validity filtering belongs to the scorer.
	res := parse.Steps("-5 78\n36.5 60.25")

	require.Len(t, res.Steps, 2)
	assert.Equal(t, -5.0, res.Steps[0].VO2)
	assert.Equal(t, 36.5, res.Steps[1].VO2)
	assert.Equal(t, 60.25, res.Steps[1].HRV)
}
