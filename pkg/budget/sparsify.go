// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package budget

import (
	"strings"
	"unicode/utf8"
)

// Sparsification caps. These bound how much of a document each
// strategy may keep; all are overridable per component via SectionSpec
// and the config file.
const (
	// DefaultFrontmatterLines bounds the leading metadata region.
	DefaultFrontmatterLines = 30
	// DefaultSectionLines bounds each named section independently.
	DefaultSectionLines = 15
	// MaxBalancedSections caps how many named sections the
	// sparse_balanced strategy extracts.
	MaxBalancedSections = 3
)

// SectionSpec tunes how the sparsifier slices one component's document.
type SectionSpec struct {
	// FrontmatterLines bounds the frontmatter region. Zero means the
	// default.
	FrontmatterLines int
	// Sections lists heading markers for sparse_balanced. Only the
	// first MaxBalancedSections entries are consulted.
	Sections []string
	// SectionLines bounds the body of each named section. Zero means
	// the default.
	SectionLines int
	// MinimalFields lists the frontmatter keys the minimal strategy
	// keeps. Empty marks the component state-like: minimal drops it
	// entirely.
	MinimalFields []string
}

func (s SectionSpec) withDefaults() SectionSpec {
	if s.FrontmatterLines <= 0 {
		s.FrontmatterLines = DefaultFrontmatterLines
	}
	if s.SectionLines <= 0 {
		s.SectionLines = DefaultSectionLines
	}
	return s
}

// SparsificationResult is the subset of a document selected by a
// strategy, with its character count precomputed for estimation.
type SparsificationResult struct {
	ExtractedText string
	CharCount     int
}

// Apply runs one sparsification strategy over raw document content.
// Unrecognized strategies behave like full: keeping everything
// overestimates rather than underestimates, which is the safe
// direction for a budget check.
func Apply(strategy Strategy, content string, spec SectionSpec) SparsificationResult {
	spec = spec.withDefaults()

	var text string
	switch strategy {
	case StrategySparseBalanced:
		parts := []string{frontmatter(content, spec.FrontmatterLines)}
		markers := spec.Sections
		if len(markers) > MaxBalancedSections {
			markers = markers[:MaxBalancedSections]
		}
		for _, marker := range markers {
			if sec := section(content, marker, spec.SectionLines); sec != "" {
				parts = append(parts, sec)
			}
		}
		text = strings.Join(parts, "\n")
	case StrategySparseAggressive:
		text = frontmatter(content, spec.FrontmatterLines)
	case StrategyMinimal:
		text = minimalFields(content, spec)
	default:
		text = content
	}

	return SparsificationResult{
		ExtractedText: text,
		CharCount:     utf8.RuneCountInString(text),
	}
}

// frontmatter returns the first max lines of content.
func frontmatter(content string, max int) string {
	if content == "" {
		return ""
	}
	lines := strings.Split(content, "\n")
	if len(lines) <= max {
		return content
	}
	return strings.Join(lines[:max], "\n")
}

// section locates a heading line containing marker (case-insensitive)
// and captures it plus up to max following lines, stopping early at
// the next heading. An absent marker yields an empty section.
func section(content, marker string, max int) string {
	if marker == "" {
		return ""
	}
	lines := strings.Split(content, "\n")
	want := strings.ToLower(marker)

	start := -1
	for i, line := range lines {
		if isHeading(line) && strings.Contains(strings.ToLower(line), want) {
			start = i
			break
		}
	}
	if start == -1 {
		return ""
	}

	captured := []string{lines[start]}
	for i := start + 1; i < len(lines) && len(captured) <= max; i++ {
		if isHeading(lines[i]) {
			break
		}
		captured = append(captured, lines[i])
	}
	return strings.Join(captured, "\n")
}

func isHeading(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "#")
}

// minimalFields keeps only the "key: value" frontmatter lines named in
// spec.MinimalFields. Components with no minimal fields are state-like
// and reduce to nothing under the minimal strategy.
func minimalFields(content string, spec SectionSpec) string {
	if len(spec.MinimalFields) == 0 {
		return ""
	}
	var kept []string
	for _, line := range strings.Split(frontmatter(content, spec.FrontmatterLines), "\n") {
		trimmed := strings.ToLower(strings.TrimSpace(line))
		for _, field := range spec.MinimalFields {
			if strings.HasPrefix(trimmed, strings.ToLower(field)+":") {
				kept = append(kept, strings.TrimSpace(line))
				break
			}
		}
	}
	return strings.Join(kept, "\n")
}
