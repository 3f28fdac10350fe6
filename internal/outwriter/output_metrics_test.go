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

func TestBuildMetricsRenderModel(t *testing.T) {
	model := buildMetricsRenderModel()

	require.Len(t, model.Dimensions, schema.FeatureCount)
	require.Len(t, model.Rules, 4)

	// Dimensions come out in vector order with group and description filled.
	assert.Equal(t, "color_count", model.Dimensions[0].Key)
	assert.Equal(t, "color", model.Dimensions[0].Group)
	assert.Equal(t, "Palette size", model.Dimensions[0].Label)
	for _, dim := range model.Dimensions {
		assert.NotEmpty(t, dim.Group, dim.Key)
		assert.NotEmpty(t, dim.Description, dim.Key)
	}

	assert.Equal(t, "low_accessibility", model.Rules[0].Name)
	assert.Equal(t, 0.90, model.Rules[0].Multiplier)
}

func TestWriteMetricsText(t *testing.T) {
	cfg := textConfig()

	var buf bytes.Buffer
	err := writeMetricsText(&buf, buildMetricsRenderModel(), cfg)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "DesignLens Feature Dimensions")
	assert.Contains(t, output, "COLOR:")
	assert.Contains(t, output, "LAYOUT:")
	assert.Contains(t, output, "ACCESSIBILITY:")
	assert.Contains(t, output, "ELEMENTS:")
	assert.Contains(t, output, "CATEGORY:")
	assert.Contains(t, output, "ADJUSTMENT RULES:")
	assert.Contains(t, output, "wcag_aa < 0.5 => score x 0.90")
}

func TestWriteMetricsDefinitionsJSON(t *testing.T) {
	cfg := textConfig()
	cfg.Output = schema.JSONOut
	cfg.OutputFile = filepath.Join(t.TempDir(), "metrics.json")

	err := WriteMetricsDefinitions(cfg)
	require.NoError(t, err)

	data, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(data, &parsed))
	dims, ok := parsed["dimensions"].([]any)
	require.True(t, ok)
	assert.Len(t, dims, schema.FeatureCount)
}

func TestWriteMetricsDefinitionsCSV(t *testing.T) {
	cfg := textConfig()
	cfg.Output = schema.CSVOut
	cfg.OutputFile = filepath.Join(t.TempDir(), "metrics.csv")

	err := WriteMetricsDefinitions(cfg)
	require.NoError(t, err)

	data, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1+schema.FeatureCount)
	assert.Equal(t, "key,label,group,description", lines[0])
	assert.Contains(t, lines[1], "color_count")
}
