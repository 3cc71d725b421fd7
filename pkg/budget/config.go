// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package budget

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// DefaultPlanningDir is where the planning documents live unless the
// config says otherwise.
const DefaultPlanningDir = ".planning"

// Config holds all satchel settings. Consuming projects either
// construct a Config in Go code, or place a satchel.yaml at the
// repository root and call LoadConfig.
type Config struct {
	// Model is the identifier of the underlying model, used for
	// profile auto-detection (e.g. "claude-3-opus-20240229").
	Model string `yaml:"model"`

	// Profile explicitly names a profile, taking precedence over
	// auto-detection. Unknown names are an error at resolve time.
	Profile string `yaml:"profile"`

	// PlanningDir is the directory holding the planning documents
	// (default ".planning").
	PlanningDir string `yaml:"planning_dir"`

	// Estimator tunes the token estimation heuristic.
	Estimator EstimatorConfig `yaml:"estimator"`

	// Sparsifier tunes the document reduction caps.
	Sparsifier SparsifierConfig `yaml:"sparsifier"`

	// Profiles overrides or extends the builtin registry by name,
	// e.g. redefining "budget" for a self-hosted model.
	Profiles map[string]ProfileConfig `yaml:"profiles"`

	// Components overrides component source paths, keyed by role then
	// component key. Paths are used as given.
	Components map[string]map[string]string `yaml:"components"`
}

// EstimatorConfig tunes token estimation.
type EstimatorConfig struct {
	// CharsPerToken is the heuristic ratio (default 4).
	CharsPerToken int `yaml:"chars_per_token"`
}

// SparsifierConfig tunes the sparsification line caps.
type SparsifierConfig struct {
	// FrontmatterLines bounds the frontmatter region (default 30).
	FrontmatterLines int `yaml:"frontmatter_lines"`
	// SectionLines bounds each named section (default 15).
	SectionLines int `yaml:"section_lines"`
}

// ProfileConfig is a user-supplied profile definition.
type ProfileConfig struct {
	CapacityTokens int    `yaml:"capacity_tokens"`
	TargetPercent  int    `yaml:"target_percent"`
	Strategy       string `yaml:"strategy"`
}

func (c *Config) applyDefaults() {
	if c.PlanningDir == "" {
		c.PlanningDir = DefaultPlanningDir
	}
	if c.Estimator.CharsPerToken == 0 {
		c.Estimator.CharsPerToken = DefaultCharsPerToken
	}
	if c.Sparsifier.FrontmatterLines == 0 {
		c.Sparsifier.FrontmatterLines = DefaultFrontmatterLines
	}
	if c.Sparsifier.SectionLines == 0 {
		c.Sparsifier.SectionLines = DefaultSectionLines
	}
}

// LoadConfig reads a satchel configuration YAML file. A missing file
// is not an error: every setting falls back to its default.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		var cfg Config
		cfg.applyDefaults()
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

// ApplyProfiles registers the config's profile overrides into reg.
// Registration order is alphabetical so repeated loads behave the
// same way. The first invalid definition aborts with the registry's
// validation error.
func (c *Config) ApplyProfiles(reg *Registry) error {
	names := make([]string, 0, len(c.Profiles))
	for name := range c.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		pc := c.Profiles[name]
		p := Profile{
			Name:           name,
			CapacityTokens: pc.CapacityTokens,
			TargetPercent:  pc.TargetPercent,
			Strategy:       Strategy(pc.Strategy),
		}
		if err := reg.Register(p); err != nil {
			return fmt.Errorf("applying profile override: %w", err)
		}
	}
	return nil
}

// ComponentsFor returns the component set for role with the config's
// sparsifier caps and source path overrides applied.
func (c *Config) ComponentsFor(role Role) []Component {
	comps := DefaultComponents(role, c.PlanningDir)
	overrides := c.Components[string(role)]
	for i := range comps {
		comps[i].Spec.FrontmatterLines = c.Sparsifier.FrontmatterLines
		comps[i].Spec.SectionLines = c.Sparsifier.SectionLines
		if path, ok := overrides[comps[i].Key]; ok && path != "" {
			comps[i].SourcePath = path
		}
	}
	return comps
}
