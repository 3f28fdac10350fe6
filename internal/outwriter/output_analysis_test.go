package outwriter

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/designlens/designlens/internal/contract"
	"github.com/designlens/designlens/schema"
)

// sampleAnalysisResult builds a fully-populated result for writer tests.
func sampleAnalysisResult() *schema.AnalysisResult {
	values := make([]float64, schema.FeatureCount)
	for i := range values {
		values[i] = 0.5
	}
	importance := make(map[schema.FeatureKey]float64, schema.FeatureCount)
	for _, key := range schema.FeatureOrder {
		importance[key] = 0.25
	}
	return &schema.AnalysisResult{
		Prediction: schema.Prediction{
			PredictedScore:    72.5,
			Confidence:        0.8,
			FeatureImportance: importance,
			Explanation: schema.Explanation{
				Strengths:  []string{"Strong color contrast"},
				Weaknesses: []string{"Weak call-to-action prominence"},
				KeyFactors: []string{"WCAG AA contrast compliance"},
			},
		},
		Features: schema.FeatureVector{
			Values:        values,
			SchemaVersion: schema.SchemaVersion,
		},
		Categories: []schema.Category{schema.Dashboard},
		Warnings:   []string{"corpus unavailable, using baseline: boom"},
		Duration:   100 * time.Millisecond,
	}
}

func textConfig() *contract.Config {
	return &contract.Config{
		ImagePath:     "shot.png",
		Output:        schema.TextOut,
		Precision:     2,
		Explain:       true,
		Width:         120,
		CorpusBackend: schema.SQLiteBackend,
	}
}

func TestWriteAnalysisTable(t *testing.T) {
	result := sampleAnalysisResult()
	cfg := textConfig()

	var buf bytes.Buffer
	err := writeAnalysisTable(result, cfg, precisionFormatter(cfg.Precision), &buf)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "Design Score: shot.png")
	assert.Contains(t, output, "72.50")
	assert.Contains(t, output, "Good")
	assert.Contains(t, output, "0.80")
	assert.Contains(t, output, "Palette size")
	assert.Contains(t, output, "Strong color contrast")
	assert.Contains(t, output, "Weak call-to-action prominence")
	assert.Contains(t, output, "Categories: dashboard")
	assert.Contains(t, output, "Analysis completed in 100ms")
	assert.Contains(t, output, "Warning: corpus unavailable")
}

func TestWriteAnalysisTableWithoutExplain(t *testing.T) {
	result := sampleAnalysisResult()
	cfg := textConfig()
	cfg.Explain = false

	var buf bytes.Buffer
	err := writeAnalysisTable(result, cfg, precisionFormatter(cfg.Precision), &buf)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "72.50")
	assert.NotContains(t, output, "Palette size")
	assert.NotContains(t, output, "Strengths")
}

func TestWriteAnalysisTableEmoji(t *testing.T) {
	result := sampleAnalysisResult()
	cfg := textConfig()
	cfg.UseEmojis = true

	var buf bytes.Buffer
	err := writeAnalysisTable(result, cfg, precisionFormatter(cfg.Precision), &buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "🎨 Design Score")
}

func TestWriteAnalysisResultJSON(t *testing.T) {
	result := sampleAnalysisResult()
	cfg := textConfig()
	cfg.Output = schema.JSONOut
	cfg.OutputFile = filepath.Join(t.TempDir(), "out.json")

	err := WriteAnalysisResult(result, cfg)
	require.NoError(t, err)

	data, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.Equal(t, "shot.png", parsed["image"])
	assert.Equal(t, "Good", parsed["label"])

	prediction, ok := parsed["prediction"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 72.5, prediction["predicted_score"])
	assert.Equal(t, 0.8, prediction["confidence"])
}

func TestWriteAnalysisResultCSV(t *testing.T) {
	result := sampleAnalysisResult()
	cfg := textConfig()
	cfg.Output = schema.CSVOut
	cfg.OutputFile = filepath.Join(t.TempDir(), "out.csv")

	err := WriteAnalysisResult(result, cfg)
	require.NoError(t, err)

	data, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1+schema.FeatureCount) // header + one row per dimension

	assert.Contains(t, lines[0], "image")
	assert.Contains(t, lines[0], "feature")
	assert.Contains(t, lines[1], "shot.png")
	assert.Contains(t, lines[1], "color_count")
	assert.Contains(t, lines[1], "72.50")
	assert.Contains(t, lines[1], "Good")
}
