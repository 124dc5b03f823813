package config

import (
	"os"
	"path/filepath"
	"testing"

	"text-summarizer/internal/usecase/summarize"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadGenerationProfile_EmptyPath(t *testing.T) {
	profile, err := LoadGenerationProfile("")
	require.NoError(t, err)
	assert.Equal(t, summarize.DefaultProfile(), profile)
}

func TestLoadGenerationProfile_PartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	yamlData := `
decoding:
  num_beams: 6
  early_stopping: false
three_lines:
  sentences: 2
`
	require.NoError(t, os.WriteFile(path, []byte(yamlData), 0o600))

	profile, err := LoadGenerationProfile(path)
	require.NoError(t, err)

	want := summarize.DefaultProfile()
	want.NumBeams = 6
	want.EarlyStopping = false
	want.ShortSentences = 2
	assert.Equal(t, want, profile)
}

func TestLoadGenerationProfile_MissingFile(t *testing.T) {
	_, err := LoadGenerationProfile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read generation profile")
}

func TestParseGenerationProfile_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{name: "malformed yaml", data: "decoding: [", wantErr: "failed to parse"},
		{name: "zero beams", data: "decoding:\n  num_beams: 0\n", wantErr: "validation failed"},
		{name: "inverted bounds", data: "three_lines:\n  min_length: 80\n  max_length: 40\n", wantErr: "validation failed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseGenerationProfile([]byte(tt.data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
