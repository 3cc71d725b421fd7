// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package budget

import (
	"fmt"
	"strings"
	"testing"
)

// numberedLines returns n lines "line 1" .. "line n" joined by newlines.
func numberedLines(n int) string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("line %d", i+1)
	}
	return strings.Join(lines, "\n")
}

// --- full ---

func TestApply_FullIsIdentity(t *testing.T) {
	t.Parallel()
	for _, content := range []string{"", "one line", numberedLines(100)} {
		res := Apply(StrategyFull, content, SectionSpec{})
		if res.ExtractedText != content {
			t.Errorf("full strategy modified content (%d chars in, %d out)",
				len(content), len(res.ExtractedText))
		}
	}
}

func TestApply_UnknownStrategyKeepsEverything(t *testing.T) {
	t.Parallel()
	content := numberedLines(50)
	res := Apply(Strategy("bogus"), content, SectionSpec{})
	if res.ExtractedText != content {
		t.Error("unknown strategy should fall back to full content")
	}
}

// --- sparse_aggressive ---

func TestApply_AggressiveCapsAtFrontmatter(t *testing.T) {
	t.Parallel()
	res := Apply(StrategySparseAggressive, numberedLines(100), SectionSpec{})
	got := strings.Split(res.ExtractedText, "\n")
	if len(got) != DefaultFrontmatterLines {
		t.Errorf("aggressive kept %d lines, want %d", len(got), DefaultFrontmatterLines)
	}
	if got[0] != "line 1" || got[len(got)-1] != fmt.Sprintf("line %d", DefaultFrontmatterLines) {
		t.Errorf("aggressive kept wrong region: first=%q last=%q", got[0], got[len(got)-1])
	}
}

func TestApply_AggressiveShortDocumentUnchanged(t *testing.T) {
	t.Parallel()
	content := numberedLines(5)
	res := Apply(StrategySparseAggressive, content, SectionSpec{})
	if res.ExtractedText != content {
		t.Error("aggressive should keep short documents whole")
	}
}

func TestApply_AggressiveCustomCap(t *testing.T) {
	t.Parallel()
	res := Apply(StrategySparseAggressive, numberedLines(100), SectionSpec{FrontmatterLines: 10})
	if got := strings.Split(res.ExtractedText, "\n"); len(got) != 10 {
		t.Errorf("aggressive with cap 10 kept %d lines", len(got))
	}
}

// --- sparse_balanced ---

func TestApply_BalancedKeepsFrontmatterAndSections(t *testing.T) {
	t.Parallel()
	content := "title: phase 3\nstatus: active\n" +
		"## Objective\nship the parser\nwith tests\n" +
		"## Notes\nnothing here\n" +
		"## Tasks\nfirst task\nsecond task\n"
	spec := SectionSpec{Sections: []string{"## Objective", "## Tasks"}}
	res := Apply(StrategySparseBalanced, content, spec)

	for _, want := range []string{"title: phase 3", "ship the parser", "first task", "second task"} {
		if !strings.Contains(res.ExtractedText, want) {
			t.Errorf("balanced output missing %q", want)
		}
	}
}

func TestApply_BalancedIgnoresExtraSections(t *testing.T) {
	t.Parallel()
	content := numberedLines(2) + "\n## A\na body\n## B\nb body\n## C\nc body\n## D\nd body\n"
	spec := SectionSpec{FrontmatterLines: 2, Sections: []string{"## A", "## B", "## C", "## D"}}
	res := Apply(StrategySparseBalanced, content, spec)
	if strings.Contains(res.ExtractedText, "d body") {
		t.Error("balanced extracted a fourth section; cap is three")
	}
	if !strings.Contains(res.ExtractedText, "c body") {
		t.Error("balanced should keep the third section")
	}
}

func TestApply_BalancedMissingMarkerIsEmptySection(t *testing.T) {
	t.Parallel()
	content := "title: x\nbody text"
	spec := SectionSpec{Sections: []string{"## Nowhere"}}
	res := Apply(StrategySparseBalanced, content, spec)
	if res.ExtractedText != content {
		t.Errorf("missing marker should contribute nothing, got %q", res.ExtractedText)
	}
}

func TestApply_BalancedEmptyContent(t *testing.T) {
	t.Parallel()
	res := Apply(StrategySparseBalanced, "", SectionSpec{Sections: []string{"## A"}})
	if res.CharCount != 0 {
		t.Errorf("balanced on empty content: CharCount = %d, want 0", res.CharCount)
	}
}

// --- section extraction ---

func TestSection_StopsAtNextHeading(t *testing.T) {
	t.Parallel()
	content := "## First\nalpha\nbeta\n## Second\ngamma"
	got := section(content, "## First", 15)
	if !strings.Contains(got, "alpha") || !strings.Contains(got, "beta") {
		t.Errorf("section lost body lines: %q", got)
	}
	if strings.Contains(got, "gamma") {
		t.Errorf("section crossed into the next heading: %q", got)
	}
}

func TestSection_CapsBodyLines(t *testing.T) {
	t.Parallel()
	content := "## Long\n" + numberedLines(40)
	got := section(content, "## Long", 5)
	lines := strings.Split(got, "\n")
	// Heading plus five body lines.
	if len(lines) != 6 {
		t.Errorf("section kept %d lines, want 6", len(lines))
	}
}

func TestSection_CaseInsensitiveMarker(t *testing.T) {
	t.Parallel()
	content := "## Current Phase\ndetails"
	if got := section(content, "## current phase", 15); got == "" {
		t.Error("marker matching should be case-insensitive")
	}
}

// --- minimal ---

func TestApply_MinimalStateLikeIsEmpty(t *testing.T) {
	t.Parallel()
	res := Apply(StrategyMinimal, numberedLines(20), SectionSpec{})
	if res.ExtractedText != "" || res.CharCount != 0 {
		t.Errorf("minimal with no fields = %q, want empty", res.ExtractedText)
	}
}

func TestApply_MinimalKeepsPlanFields(t *testing.T) {
	t.Parallel()
	content := "title: wire the parser\nphase: 3\naction: implement section extraction\n\nlong body\nmore body"
	spec := SectionSpec{MinimalFields: []string{"title", "action"}}
	res := Apply(StrategyMinimal, content, spec)
	want := "title: wire the parser\naction: implement section extraction"
	if res.ExtractedText != want {
		t.Errorf("minimal = %q, want %q", res.ExtractedText, want)
	}
}

func TestApply_MinimalIgnoresFieldsOutsideFrontmatter(t *testing.T) {
	t.Parallel()
	content := numberedLines(40) + "\ntitle: too deep"
	spec := SectionSpec{MinimalFields: []string{"title"}}
	res := Apply(StrategyMinimal, content, spec)
	if res.ExtractedText != "" {
		t.Errorf("minimal matched beyond the frontmatter region: %q", res.ExtractedText)
	}
}

// --- char counting ---

func TestApply_CountsRunesNotBytes(t *testing.T) {
	t.Parallel()
	res := Apply(StrategyFull, "héllo", SectionSpec{})
	if res.CharCount != 5 {
		t.Errorf("CharCount = %d, want 5 runes", res.CharCount)
	}
}
