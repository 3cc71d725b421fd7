// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package budget

import "path/filepath"

// Role identifies which delegation role consumes a component set.
type Role string

const (
	// RoleExecutor receives a single phase's plan plus working state.
	RoleExecutor Role = "executor"
	// RolePlanner receives the project-level planning documents.
	RolePlanner Role = "planner"
)

// Valid reports whether r is a known delegation role.
func (r Role) Valid() bool {
	return r == RoleExecutor || r == RolePlanner
}

// Component is a named category of planning content consumed by a
// delegated role. SourcePath may not exist: absent documents are
// estimated as empty, never as errors, so optional notes do not break
// a budget check.
type Component struct {
	Role       Role
	Key        string
	SourcePath string
	Spec       SectionSpec
}

// Planning document filenames under the planning directory.
const (
	filePlan         = "PLAN.md"
	fileState        = "STATE.md"
	fileConfig       = "CONFIG.yaml"
	fileRoadmap      = "ROADMAP.md"
	fileRequirements = "REQUIREMENTS.md"
	fileContext      = "CONTEXT.md"
	fileResearch     = "RESEARCH.md"
)

// DefaultComponents returns the fixed component set for a role, rooted
// at dir. The enumeration is versioned configuration: executor gets
// plan, state, config; planner gets state, roadmap, requirements,
// context, research.
func DefaultComponents(role Role, dir string) []Component {
	switch role {
	case RoleExecutor:
		return []Component{
			{
				Role:       role,
				Key:        "plan",
				SourcePath: filepath.Join(dir, filePlan),
				Spec: SectionSpec{
					Sections:      []string{"## Objective", "## Tasks", "## Verification"},
					MinimalFields: []string{"title", "action"},
				},
			},
			{
				Role:       role,
				Key:        "state",
				SourcePath: filepath.Join(dir, fileState),
				Spec: SectionSpec{
					Sections: []string{"## Current Phase", "## Decisions", "## Blockers"},
				},
			},
			{
				Role:       role,
				Key:        "config",
				SourcePath: filepath.Join(dir, fileConfig),
			},
		}
	case RolePlanner:
		return []Component{
			{
				Role:       role,
				Key:        "state",
				SourcePath: filepath.Join(dir, fileState),
				Spec: SectionSpec{
					Sections: []string{"## Current Phase", "## Decisions", "## Blockers"},
				},
			},
			{
				Role:       role,
				Key:        "roadmap",
				SourcePath: filepath.Join(dir, fileRoadmap),
				Spec: SectionSpec{
					Sections: []string{"## Phases", "## Milestones"},
				},
			},
			{
				Role:       role,
				Key:        "requirements",
				SourcePath: filepath.Join(dir, fileRequirements),
				Spec: SectionSpec{
					Sections: []string{"## Must Have", "## Out Of Scope"},
				},
			},
			{
				Role:       role,
				Key:        "context",
				SourcePath: filepath.Join(dir, fileContext),
				Spec: SectionSpec{
					Sections: []string{"## Constraints", "## Preferences"},
				},
			},
			{
				Role:       role,
				Key:        "research",
				SourcePath: filepath.Join(dir, fileResearch),
				Spec: SectionSpec{
					Sections: []string{"## Findings", "## References"},
				},
			},
		}
	}
	return nil
}

// ComponentKeys returns the expected component keys for a role, in
// enumeration order.
func ComponentKeys(role Role) []string {
	comps := DefaultComponents(role, "")
	keys := make([]string, 0, len(comps))
	for _, c := range comps {
		keys = append(keys, c.Key)
	}
	return keys
}
