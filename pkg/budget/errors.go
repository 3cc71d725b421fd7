// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package budget

import "fmt"

// UnknownProfileError reports an explicit request for a profile name
// that is not present in the registry. Auto-detection never produces
// this error; only a caller-supplied override can.
type UnknownProfileError struct {
	Name string
}

func (e *UnknownProfileError) Error() string {
	return fmt.Sprintf("unknown profile %q", e.Name)
}

// InvalidProfileError reports a profile registration with out-of-range
// fields. It indicates a configuration mistake, not an environmental
// condition, and is fatal to the call that triggered it.
type InvalidProfileError struct {
	Name   string
	Reason string
}

func (e *InvalidProfileError) Error() string {
	return fmt.Sprintf("invalid profile %q: %s", e.Name, e.Reason)
}
