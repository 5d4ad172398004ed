package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the CLI flags in YAML form. Pointer fields distinguish
// "absent" from zero values, so the file only overrides what it names.
type fileConfig struct {
	Bands    *int     `yaml:"bands"`
	Spacing  *float64 `yaml:"spacing"`
	Strength *float64 `yaml:"strength"`
	Samples  *int     `yaml:"samples"`
	Title    *string  `yaml:"title"`
	Out      *string  `yaml:"out"`
	Parallel *bool    `yaml:"parallel"`
}

// loadConfig reads and parses a YAML config file.
func loadConfig(path string) (fileConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fileConfig{}, fmt.Errorf("read config: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return fileConfig{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	return fc, nil
}

// apply copies config values into the flag variables, skipping any flag the
// user set explicitly: flags > file > built-in defaults.
func (fc fileConfig) apply(cmd *cobra.Command, bands *int, spacing, strength *float64, samples *int, title, out *string, parallel *bool) {
	flags := cmd.Flags()

	if fc.Bands != nil && !flags.Changed("bands") {
		*bands = *fc.Bands
	}
	if fc.Spacing != nil && !flags.Changed("spacing") {
		*spacing = *fc.Spacing
	}
	if fc.Strength != nil && !flags.Changed("strength") {
		*strength = *fc.Strength
	}
	if fc.Samples != nil && !flags.Changed("samples") {
		*samples = *fc.Samples
	}
	if fc.Title != nil && !flags.Changed("title") {
		*title = *fc.Title
	}
	if fc.Out != nil && !flags.Changed("out") {
		*out = *fc.Out
	}
	if fc.Parallel != nil && !flags.Changed("parallel") {
		*parallel = *fc.Parallel
	}
}
