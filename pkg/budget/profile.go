// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package budget

import (
	"sort"
	"sync"
)

// Strategy selects how aggressively the sparsifier reduces a document
// before a delegation estimate.
type Strategy string

const (
	// StrategyFull passes documents through unchanged.
	StrategyFull Strategy = "full"
	// StrategySparseBalanced keeps frontmatter plus a few named sections.
	StrategySparseBalanced Strategy = "sparse_balanced"
	// StrategySparseAggressive keeps only the frontmatter region.
	StrategySparseAggressive Strategy = "sparse_aggressive"
	// StrategyMinimal keeps only the plan's actionable fields and drops
	// state-like documents entirely.
	StrategyMinimal Strategy = "minimal"
)

func (s Strategy) valid() bool {
	switch s {
	case StrategyFull, StrategySparseBalanced, StrategySparseAggressive, StrategyMinimal:
		return true
	}
	return false
}

// Profile describes a model capability tier: the total context the
// model can address, the fraction of it earmarked for delegation
// payloads, and the sparsification strategy used when filling it.
type Profile struct {
	Name           string   `yaml:"name" json:"name"`
	CapacityTokens int      `yaml:"capacity_tokens" json:"capacity_tokens"`
	TargetPercent  int      `yaml:"target_percent" json:"target_percent"`
	Strategy       Strategy `yaml:"strategy" json:"strategy"`
}

// BudgetTokens returns the delegation allowance for this tier:
// floor(capacity * percent / 100). Always recomputed from the profile
// fields so a registered profile can never carry a stale budget.
func (p Profile) BudgetTokens() int {
	return p.CapacityTokens * p.TargetPercent / 100
}

// builtinProfiles are the default capability tiers. The remainder of
// each capacity (100 - target percent) is reserved for the model's own
// reasoning and tool traffic.
var builtinProfiles = []Profile{
	{Name: "quality", CapacityTokens: 200000, TargetPercent: 50, Strategy: StrategyFull},
	{Name: "balanced", CapacityTokens: 100000, TargetPercent: 30, Strategy: StrategySparseBalanced},
	{Name: "budget", CapacityTokens: 32000, TargetPercent: 15, Strategy: StrategySparseAggressive},
	{Name: "tiny", CapacityTokens: 8000, TargetPercent: 10, Strategy: StrategyMinimal},
}

// Registry is the process-wide table of named profiles. Lookups take a
// read lock so user-supplied registrations cannot race them.
type Registry struct {
	mu       sync.RWMutex
	profiles map[string]Profile
}

// NewRegistry returns a registry preloaded with the builtin tiers.
func NewRegistry() *Registry {
	r := &Registry{profiles: make(map[string]Profile, len(builtinProfiles))}
	for _, p := range builtinProfiles {
		r.profiles[p.Name] = p
	}
	return r
}

// Register inserts or overwrites a profile by name (last write wins).
// Profiles with a non-positive capacity, a target percent outside
// (0,100], an empty name, or an unrecognized strategy are rejected
// with InvalidProfileError.
func (r *Registry) Register(p Profile) error {
	if p.Name == "" {
		return &InvalidProfileError{Name: p.Name, Reason: "empty name"}
	}
	if p.CapacityTokens <= 0 {
		return &InvalidProfileError{Name: p.Name, Reason: "capacity_tokens must be positive"}
	}
	if p.TargetPercent <= 0 || p.TargetPercent > 100 {
		return &InvalidProfileError{Name: p.Name, Reason: "target_percent must be in (0,100]"}
	}
	if !p.Strategy.valid() {
		return &InvalidProfileError{Name: p.Name, Reason: "unrecognized strategy " + string(p.Strategy)}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles[p.Name] = p
	return nil
}

// Resolve returns the profile registered under name, or
// UnknownProfileError when no such profile exists.
func (r *Registry) Resolve(name string) (Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.profiles[name]
	if !ok {
		return Profile{}, &UnknownProfileError{Name: name}
	}
	return p, nil
}

// Names returns the registered profile names sorted alphabetically.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.profiles))
	for name := range r.profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
