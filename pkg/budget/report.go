// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package budget

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/fatih/color"
)

var (
	passLabel = color.New(color.FgGreen, color.Bold).SprintFunc()
	failLabel = color.New(color.FgRed, color.Bold).SprintFunc()
	warnLabel = color.New(color.FgYellow).SprintFunc()
)

// WriteReport prints the per-component estimate table: component key,
// backing document, estimated tokens, then the total. Components are
// listed alphabetically. Degraded components are flagged after the
// table.
func WriteReport(w io.Writer, est Estimate, components []Component) {
	sources := make(map[string]string, len(components))
	for _, comp := range components {
		if comp.Role == est.Role {
			sources[comp.Key] = comp.SourcePath
		}
	}

	keys := make([]string, 0, len(est.PerComponentTokens))
	for key := range est.PerComponentTokens {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "COMPONENT\tSOURCE\tTOKENS")
	fmt.Fprintln(tw, "---------\t------\t------")
	for _, key := range keys {
		fmt.Fprintf(tw, "%s\t%s\t%d\n", key, sources[key], est.PerComponentTokens[key])
	}
	fmt.Fprintln(tw, "\t\t")
	fmt.Fprintf(tw, "TOTAL\t%s/%s\t%d\n", string(est.Role), est.Profile, est.TotalTokens)
	tw.Flush()

	for _, key := range keys {
		if msg, ok := est.Degraded[key]; ok {
			fmt.Fprintf(w, "%s %s estimated as empty: %s\n", warnLabel("warning:"), key, msg)
		}
	}
}

// WriteVerdict prints the budget pass/fail line with the headroom or
// overage amount. On failure it names the remediation categories;
// rewriting the plan itself is the caller's job.
func WriteVerdict(w io.Writer, est Estimate) {
	if est.WithinBudget {
		fmt.Fprintf(w, "%s %d/%d tokens, headroom %d\n",
			passLabel("PASS"), est.TotalTokens, est.BudgetTokens, est.HeadroomTokens)
		return
	}
	fmt.Fprintf(w, "%s %d/%d tokens, over by %d\n",
		failLabel("FAIL"), est.TotalTokens, est.BudgetTokens, -est.HeadroomTokens)
	fmt.Fprintf(w, "Switch to a sparser profile strategy, or split the task into smaller delegations.\n")
}
