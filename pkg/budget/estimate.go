// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package budget

import "fmt"

// DefaultCharsPerToken is the character-to-token heuristic ratio.
// 4:1 is a rough average for English prose with code; real tokenizers
// vary by model family, so estimates are order-of-magnitude guides,
// not billing-accurate counts.
const DefaultCharsPerToken = 4

// Estimator converts character counts into approximate token counts
// using a fixed ratio.
type Estimator struct {
	CharsPerToken int
}

// NewEstimator returns an Estimator with the given ratio. A
// nonpositive ratio falls back to DefaultCharsPerToken.
func NewEstimator(charsPerToken int) Estimator {
	if charsPerToken <= 0 {
		charsPerToken = DefaultCharsPerToken
	}
	return Estimator{CharsPerToken: charsPerToken}
}

// Estimate returns ceil(chars / CharsPerToken). A negative character
// count is a programming error and panics.
func (e Estimator) Estimate(chars int) int {
	if chars < 0 {
		panic(fmt.Sprintf("budget: negative char count %d", chars))
	}
	return (chars + e.CharsPerToken - 1) / e.CharsPerToken
}
