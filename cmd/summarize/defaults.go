package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/adrg/xdg"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const appName = "text-summarizer"

// fileDefaults are flag defaults read from a YAML file, by default
// $XDG_CONFIG_HOME/text-summarizer/config.yaml.
//
//	tone: Formal
//	keywords: "revenue, growth"
//	length: 80
//	three_lines: false
//	output: markdown
//	backend: huggingface
//	generation_profile: /etc/text-summarizer/profile.yaml
type fileDefaults struct {
	Tone              string `yaml:"tone"`
	Keywords          string `yaml:"keywords"`
	Length            int    `yaml:"length"`
	ThreeLines        *bool  `yaml:"three_lines"`
	Output            string `yaml:"output"`
	Backend           string `yaml:"backend"`
	GenerationProfile string `yaml:"generation_profile"`
}

// defaultConfigPath returns the XDG config file if one exists, or "".
func defaultConfigPath() string {
	path, err := xdg.SearchConfigFile(filepath.Join(appName, "config.yaml"))
	if err != nil {
		return ""
	}
	return path
}

// loadDefaults reads path, or the XDG config file when path is empty.
// A missing XDG file yields empty defaults; a missing explicit path is an error.
func loadDefaults(path string) (fileDefaults, error) {
	var d fileDefaults
	if path == "" {
		path = defaultConfigPath()
		if path == "" {
			return d, nil
		}
	}

	// #nosec G304 -- path comes from the --config flag or the XDG config directory
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return d, fmt.Errorf("config file %s not found", path)
		}
		return d, fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &d); err != nil {
		return d, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return d, nil
}

// applyDefaults sets every flag the user did not pass explicitly from d.
func applyDefaults(cmd *cobra.Command, d fileDefaults) error {
	values := map[string]string{
		"tone":               d.Tone,
		"keywords":           d.Keywords,
		"output":             d.Output,
		"backend":            d.Backend,
		"generation-profile": d.GenerationProfile,
	}
	if d.Length != 0 {
		values["length"] = strconv.Itoa(d.Length)
	}
	if d.ThreeLines != nil {
		values["three-lines"] = strconv.FormatBool(*d.ThreeLines)
	}

	flags := cmd.Flags()
	for name, v := range values {
		if v == "" || flags.Changed(name) {
			continue
		}
		if err := flags.Set(name, v); err != nil {
			return fmt.Errorf("config value for %s: %w", name, err)
		}
	}
	return nil
}
