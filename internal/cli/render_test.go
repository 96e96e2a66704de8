package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	service "github.com/etlab/etlab/internal/app"
	"github.com/etlab/etlab/internal/domain/model"
	"github.com/etlab/etlab/internal/domain/scoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testReport() *service.Report {
	step := 3
	return &service.Report{
		Steps: []model.ScoredStep{
			{StepRecord: model.StepRecord{StepIndex: 1, VO2: 20, HRV: 78}, EVO2: 0.84, EHRV: 1.0},
			{StepRecord: model.StepRecord{StepIndex: 3, VO2: 36, HRV: 60}, EVO2: 0.4816, EHRV: 0.9467},
			{StepRecord: model.StepRecord{StepIndex: 5, VO2: 50, HRV: 36}, EVO2: 0.0, EHRV: 0.71},
		},
		Classification: model.TestClassification{
			MinEVO2:     0.0,
			MinEHRV:     0.71,
			MinEOverall: 0.0,
			Status:      model.StatusRed,
			Limiter:     model.LimiterMetabolic,
		},
		Mode:     scoring.BaselineRelative,
		Baseline: scoring.Baseline{VO2Reference: 50, HRVReference: 78},
		Metabolic: service.ThresholdMark{
			Cutoff: 0.50,
			Step:   &step,
		},
		Autonomic: service.ThresholdMark{
			Cutoff: 0.70,
		},
		Interpretation: []string{
			"ET exhibits marked contraction.",
			"Limiter line.",
		},
	}
}

func TestRenderTable(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, testReport(), RenderOptions{Output: TableOut, Detail: true})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "OVERALL STATUS:")
	assert.Contains(t, out, "RED")
	assert.Contains(t, out, "Minimum ET across steps (both layers): 0.000")
	assert.Contains(t, out, "first crossed at step 3")
	assert.Contains(t, out, "not crossed")
	assert.Contains(t, out, "ET exhibits marked contraction.")
	// Detail table rows
	assert.Contains(t, out, "0.4816")
	assert.Contains(t, out, "E_HRV")
}

func TestRenderTableWithoutDetail(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, testReport(), RenderOptions{Output: TableOut})
	require.NoError(t, err)

	assert.NotContains(t, buf.String(), "E_HRV")
}

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, testReport(), RenderOptions{Output: JSONOut})
	require.NoError(t, err)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &payload))
	assert.Equal(t, "RED", payload["status"])
	assert.Equal(t, "metabolic", payload["limiter"])
	assert.Equal(t, 50.0, payload["vo2_reference"])

	steps, ok := payload["steps"].([]any)
	require.True(t, ok)
	assert.Len(t, steps, 3)
}

func TestRenderCSV(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, testReport(), RenderOptions{Output: CSVOut})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "step,vo2,hrv,e_vo2,e_hrv")
	assert.Contains(t, out, "3,36.0000,60.0000,0.4816,0.9467")
}

func TestRenderUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, testReport(), RenderOptions{Output: "yaml"})
	assert.Error(t, err)
}
