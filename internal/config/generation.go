package config

import (
	"fmt"
	"os"

	"text-summarizer/internal/usecase/summarize"

	"gopkg.in/yaml.v3"
)

// generationFile mirrors the YAML layout of a generation profile.
// Pointers distinguish absent keys from zero values.
type generationFile struct {
	Decoding struct {
		NumBeams       *int     `yaml:"num_beams"`
		LengthPenalty  *float64 `yaml:"length_penalty"`
		EarlyStopping  *bool    `yaml:"early_stopping"`
		LengthSlack    *int     `yaml:"length_slack"`
		MaxInputTokens *int     `yaml:"max_input_tokens"`
	} `yaml:"decoding"`
	ThreeLines struct {
		MinLength *int `yaml:"min_length"`
		MaxLength *int `yaml:"max_length"`
		Sentences *int `yaml:"sentences"`
	} `yaml:"three_lines"`
}

// LoadGenerationProfile returns the default decoding profile with any values
// from the YAML file at path applied over it. An empty path returns the defaults.
//
//	decoding:
//	  num_beams: 4
//	  length_penalty: 2.0
//	  early_stopping: true
//	  length_slack: 40
//	  max_input_tokens: 1024
//	three_lines:
//	  min_length: 30
//	  max_length: 60
//	  sentences: 3
func LoadGenerationProfile(path string) (summarize.DecodingProfile, error) {
	profile := summarize.DefaultProfile()
	if path == "" {
		return profile, nil
	}

	// #nosec G304 -- path comes from GENERATION_PROFILE or a CLI flag, not request input
	data, err := os.ReadFile(path)
	if err != nil {
		return profile, fmt.Errorf("failed to read generation profile: %w", err)
	}
	return ParseGenerationProfile(data)
}

// ParseGenerationProfile applies YAML data over the default profile.
func ParseGenerationProfile(data []byte) (summarize.DecodingProfile, error) {
	profile := summarize.DefaultProfile()

	var f generationFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return profile, fmt.Errorf("failed to parse generation profile: %w", err)
	}

	setInt(&profile.NumBeams, f.Decoding.NumBeams)
	setInt(&profile.LengthSlack, f.Decoding.LengthSlack)
	setInt(&profile.MaxInputTokens, f.Decoding.MaxInputTokens)
	setInt(&profile.ShortMinLength, f.ThreeLines.MinLength)
	setInt(&profile.ShortMaxLength, f.ThreeLines.MaxLength)
	setInt(&profile.ShortSentences, f.ThreeLines.Sentences)
	if f.Decoding.LengthPenalty != nil {
		profile.LengthPenalty = *f.Decoding.LengthPenalty
	}
	if f.Decoding.EarlyStopping != nil {
		profile.EarlyStopping = *f.Decoding.EarlyStopping
	}

	if err := profile.Validate(); err != nil {
		return profile, fmt.Errorf("generation profile validation failed: %w", err)
	}
	return profile, nil
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}
