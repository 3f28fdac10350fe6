package outwriter

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/designlens/designlens/schema"
)

func TestBuildComparisonRows(t *testing.T) {
	base := sampleAnalysisResult()
	target := sampleAnalysisResult()
	target.Prediction.PredictedScore = 80.0

	rows := buildComparisonRows(base, target)
	require.Len(t, rows, 2+schema.FeatureCount)

	assert.Equal(t, "Predicted Score", rows[0].Metric)
	assert.Equal(t, 72.5, rows[0].Base)
	assert.Equal(t, 80.0, rows[0].Target)
	assert.Equal(t, "Confidence", rows[1].Metric)
	assert.Equal(t, "Palette size", rows[2].Metric)
}

func TestWriteComparisonTable(t *testing.T) {
	base := sampleAnalysisResult()
	target := sampleAnalysisResult()
	target.Prediction.PredictedScore = 80.0
	target.Features.Values[0] = 0.75

	cfg := textConfig()
	cfg.BaseImage = "before.png"
	cfg.TargetImage = "after.png"

	var buf bytes.Buffer
	err := writeComparisonTable(base, target, cfg, precisionFormatter(cfg.Precision), &buf)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "Design Comparison: before.png vs after.png")
	assert.Contains(t, output, "72.50")
	assert.Contains(t, output, "80.00")
	assert.Contains(t, output, "+7.50 ▲")
	assert.Contains(t, output, "+0.25 ▲")
	assert.Contains(t, output, "Net score delta: +7.50 (Good to Excellent)")
	assert.Contains(t, output, "Warning (base): corpus unavailable")
}

func TestWriteComparisonTableNegativeDelta(t *testing.T) {
	base := sampleAnalysisResult()
	target := sampleAnalysisResult()
	target.Prediction.PredictedScore = 50.0

	cfg := textConfig()
	cfg.BaseImage = "before.png"
	cfg.TargetImage = "after.png"

	var buf bytes.Buffer
	err := writeComparisonTable(base, target, cfg, precisionFormatter(cfg.Precision), &buf)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "-22.50 ▼")
	assert.Contains(t, output, "Net score delta: -22.50 (Good to Fair)")
}

func TestWriteComparisonResultsJSON(t *testing.T) {
	base := sampleAnalysisResult()
	target := sampleAnalysisResult()
	target.Prediction.PredictedScore = 80.0

	cfg := textConfig()
	cfg.Output = schema.JSONOut
	cfg.BaseImage = "before.png"
	cfg.TargetImage = "after.png"
	cfg.OutputFile = filepath.Join(t.TempDir(), "cmp.json")

	err := WriteComparisonResults(base, target, cfg)
	require.NoError(t, err)

	data, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.Equal(t, "before.png", parsed["base_image"])
	assert.Equal(t, "after.png", parsed["target_image"])
	assert.Equal(t, 7.5, parsed["score_delta"])
	assert.NotNil(t, parsed["base"])
	assert.NotNil(t, parsed["target"])
}

func TestWriteComparisonResultsCSV(t *testing.T) {
	base := sampleAnalysisResult()
	target := sampleAnalysisResult()

	cfg := textConfig()
	cfg.Output = schema.CSVOut
	cfg.OutputFile = filepath.Join(t.TempDir(), "cmp.csv")

	err := WriteComparisonResults(base, target, cfg)
	require.NoError(t, err)

	data, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1+2+schema.FeatureCount)

	assert.Equal(t, "metric,base,target,delta", lines[0])
	assert.Contains(t, lines[1], "Predicted Score")
	assert.Contains(t, lines[1], "0.00") // identical results, zero delta
}
