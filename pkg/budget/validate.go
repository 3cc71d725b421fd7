// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package budget

// Validate fills the verdict fields of an estimate against a profile's
// budget and returns the result. Pure and deterministic, no I/O. The
// budget is an inclusive upper bound: a total exactly at budget passes.
func Validate(est Estimate, profile Profile) Estimate {
	est.BudgetTokens = profile.BudgetTokens()
	est.WithinBudget = est.TotalTokens <= est.BudgetTokens
	est.HeadroomTokens = est.BudgetTokens - est.TotalTokens
	return est
}
