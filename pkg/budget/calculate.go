// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package budget decides whether a proposed delegation of planning
// context fits the context window of the active model. It classifies
// a model identifier into a capacity profile, sparsifies each planning
// document per the profile's strategy, estimates token cost with a
// character heuristic, and validates the total against the profile's
// budget. Every operation is a pure function of its current inputs;
// nothing persists between invocations.
package budget

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Estimate aggregates per-component token costs for one role under one
// profile. PerComponentTokens carries an entry for every expected
// component key of the role, including absent documents (value 0), so
// consumers can tell "estimated as empty" from "not estimated".
type Estimate struct {
	Role    Role   `json:"role"`
	Profile string `json:"profile"`

	PerComponentTokens map[string]int `json:"per_component_tokens"`
	TotalTokens        int            `json:"total_tokens"`

	// BudgetTokens, WithinBudget and HeadroomTokens are filled by
	// Validate. HeadroomTokens is signed: negative means overage.
	BudgetTokens   int  `json:"budget_tokens"`
	WithinBudget   bool `json:"within_budget"`
	HeadroomTokens int  `json:"headroom_tokens"`

	// Degraded records components whose document exists but could not
	// be read. Each is estimated as 0 and the read failure kept here
	// for diagnostics rather than failing the whole calculation.
	Degraded map[string]string `json:"degraded,omitempty"`
}

// Calculator applies a profile's sparsification strategy to a role's
// components and sums their estimated token costs.
type Calculator struct {
	est Estimator
}

// NewCalculator returns a Calculator backed by est.
func NewCalculator(est Estimator) Calculator {
	return Calculator{est: est}
}

// Calculate reads every component registered for role, sparsifies it
// per the profile strategy, and records its estimated token cost.
// Documents are read concurrently; the aggregate does not depend on
// read order. A missing document counts as empty. A document that
// exists but cannot be read degrades that one component to 0 tokens
// and is surfaced in Estimate.Degraded.
func (c Calculator) Calculate(role Role, profile Profile, components []Component) Estimate {
	est := Estimate{
		Role:               role,
		Profile:            profile.Name,
		PerComponentTokens: make(map[string]int),
	}

	var selected []Component
	for _, comp := range components {
		if comp.Role != role {
			continue
		}
		est.PerComponentTokens[comp.Key] = 0
		selected = append(selected, comp)
	}

	var mu sync.Mutex
	var g errgroup.Group
	for _, comp := range selected {
		comp := comp
		g.Go(func() error {
			content, err := readComponent(comp.SourcePath)
			res := Apply(profile.Strategy, content, comp.Spec)
			tokens := c.est.Estimate(res.CharCount)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if est.Degraded == nil {
					est.Degraded = make(map[string]string)
				}
				est.Degraded[comp.Key] = err.Error()
				logf("calculate: %s degraded: %v", comp.Key, err)
				return nil
			}
			est.PerComponentTokens[comp.Key] = tokens
			logf("calculate: %s: %d tokens (%s)", comp.Key, tokens, profile.Strategy)
			return nil
		})
	}
	g.Wait()

	for _, tokens := range est.PerComponentTokens {
		est.TotalTokens += tokens
	}
	return est
}

// readComponent loads a component document. A missing file is empty
// content, not an error; any other read failure is reported so the
// caller can degrade that component.
func readComponent(path string) (string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}
