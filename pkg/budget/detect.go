// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package budget

import "strings"

// DefaultProfileName is the detection fallback for model identifiers
// no rule recognizes.
const DefaultProfileName = "balanced"

// DetectionRule maps identifier substrings to a profile name.
type DetectionRule struct {
	Patterns []string
	Profile  string
}

// detectionRules is the ordered match table, most capable tier first.
// Order carries meaning: capacity markers like "70b" must be checked
// before the shorter "7b", and "128k" before "8k".
var detectionRules = []DetectionRule{
	{Patterns: []string{"opus", "200k", "1m"}, Profile: "quality"},
	{Patterns: []string{"sonnet", "100k", "128k"}, Profile: "balanced"},
	{Patterns: []string{"haiku", "70b", "32k"}, Profile: "budget"},
	{Patterns: []string{"7b", "8b", "8k"}, Profile: "tiny"},
}

// DetectProfile maps a free-text model identifier to a profile name.
// Matching is case-insensitive substring search against the ordered
// rule table; the first matching rule wins. Detection never fails: an
// unrecognized identifier resolves to DefaultProfileName.
func DetectProfile(modelID string) string {
	id := strings.ToLower(modelID)
	for _, rule := range detectionRules {
		for _, pattern := range rule.Patterns {
			if strings.Contains(id, pattern) {
				return rule.Profile
			}
		}
	}
	return DefaultProfileName
}

// DetectionRules returns a copy of the ordered rule table so callers
// can audit the matching order.
func DetectionRules() []DetectionRule {
	rules := make([]DetectionRule, len(detectionRules))
	for i, r := range detectionRules {
		rules[i] = DetectionRule{
			Patterns: append([]string(nil), r.Patterns...),
			Profile:  r.Profile,
		}
	}
	return rules
}
