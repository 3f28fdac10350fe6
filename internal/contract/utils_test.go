package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetPlainLabel(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{score: 95, want: ExcellentValue},
		{score: 80, want: ExcellentValue},
		{score: 79.9, want: GoodValue},
		{score: 60, want: GoodValue},
		{score: 59.9, want: FairValue},
		{score: 40, want: FairValue},
		{score: 39.9, want: PoorValue},
		{score: 0, want: PoorValue},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, GetPlainLabel(tc.score), "score %v", tc.score)
	}
}

func TestGetColorLabel(t *testing.T) {
	// Color codes vary with terminal detection; the text must always be
	// embedded in the label.
	assert.Contains(t, GetColorLabel(90), ExcellentValue)
	assert.Contains(t, GetColorLabel(70), GoodValue)
	assert.Contains(t, GetColorLabel(50), FairValue)
	assert.Contains(t, GetColorLabel(10), PoorValue)
}

func TestParseBoolString(t *testing.T) {
	for _, s := range []string{"yes", "YES", "true", "1"} {
		v, err := ParseBoolString(s)
		assert.NoError(t, err)
		assert.True(t, v)
	}
	for _, s := range []string{"no", "No", "false", "0"} {
		v, err := ParseBoolString(s)
		assert.NoError(t, err)
		assert.False(t, v)
	}
	_, err := ParseBoolString("maybe")
	assert.Error(t, err)
}

func TestTruncateLabel(t *testing.T) {
	assert.Equal(t, "short", TruncateLabel("short", 10))
	assert.Equal(t, "long la...", TruncateLabel("long label text", 10))
	// Width too small to truncate safely leaves the label alone.
	assert.Equal(t, "abcdef", TruncateLabel("abcdef", 3))
}

func TestSelectOutputFile(t *testing.T) {
	f, err := SelectOutputFile("")
	assert.NoError(t, err)
	assert.NotNil(t, f)

	path := t.TempDir() + "/out.json"
	f, err = SelectOutputFile(path)
	assert.NoError(t, err)
	assert.NoError(t, f.Close())
}
