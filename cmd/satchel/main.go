// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// satchel checks whether a delegation of planning context fits the
// active model's token budget. It is the CLI surface over pkg/budget:
// it loads satchel.yaml, resolves a profile from a model identifier or
// an explicit override, estimates the role's components, and sets the
// exit code from the verdict.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/satchel/pkg/budget"
)

// errOverBudget signals a failed budget check without extra output;
// main translates it into exit code 1.
var errOverBudget = fmt.Errorf("context estimate exceeds the profile budget")

var (
	cfgFile     string
	dirFlag     string
	modelFlag   string
	profileFlag string
	jsonFlag    bool
	verboseFlag bool
)

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		if err != errOverBudget {
			fmt.Fprintln(os.Stderr, "satchel:", err)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "satchel",
		Short: "Context budget checks for agent delegation",
		Long: "satchel estimates how many tokens a delegation's planning context\n" +
			"will cost under the active model's capacity profile and reports\n" +
			"whether it fits the profile's budget.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verboseFlag {
				budget.SetLogSink(os.Stderr)
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVarP(&cfgFile, "config", "c", "satchel.yaml", "config file path")
	root.PersistentFlags().StringVarP(&dirFlag, "dir", "d", "", "planning directory (overrides config)")
	root.PersistentFlags().StringVarP(&modelFlag, "model", "m", "", "model identifier for profile detection")
	root.PersistentFlags().StringVarP(&profileFlag, "profile", "p", "", "explicit profile name (skips detection)")
	root.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "log estimation steps to stderr")

	root.AddCommand(newCheckCmd())
	root.AddCommand(newEstimateCmd())
	root.AddCommand(newDetectCmd())
	root.AddCommand(newProfilesCmd())
	return root
}

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <role>",
		Short: "Estimate a role's context and verify it fits the budget",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			est, comps, err := runEstimate(args[0])
			if err != nil {
				return err
			}
			if jsonFlag {
				if err := writeJSON(cmd.OutOrStdout(), est); err != nil {
					return err
				}
			} else {
				budget.WriteReport(cmd.OutOrStdout(), est, comps)
				budget.WriteVerdict(cmd.OutOrStdout(), est)
			}
			if !est.WithinBudget {
				return errOverBudget
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonFlag, "json", false, "emit the estimate as JSON")
	return cmd
}

func newEstimateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "estimate <role>",
		Short: "Print a role's per-component token estimate without a verdict",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			est, comps, err := runEstimate(args[0])
			if err != nil {
				return err
			}
			if jsonFlag {
				return writeJSON(cmd.OutOrStdout(), est)
			}
			budget.WriteReport(cmd.OutOrStdout(), est, comps)
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonFlag, "json", false, "emit the estimate as JSON")
	return cmd
}

func newDetectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "detect <model>",
		Short: "Print the profile a model identifier resolves to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), budget.DetectProfile(args[0]))
			return nil
		},
	}
}

func newProfilesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profiles",
		Short: "List registered capacity profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, _, err := loadSetup()
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "PROFILE\tCAPACITY\tTARGET\tBUDGET\tSTRATEGY")
			for _, name := range reg.Names() {
				p, err := reg.Resolve(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(tw, "%s\t%d\t%d%%\t%d\t%s\n",
					p.Name, p.CapacityTokens, p.TargetPercent, p.BudgetTokens(), p.Strategy)
			}
			return tw.Flush()
		},
	}
}

// loadSetup loads the config file and builds the profile registry with
// any config-supplied overrides applied.
func loadSetup() (*budget.Registry, budget.Config, error) {
	cfg, err := budget.LoadConfig(cfgFile)
	if err != nil {
		return nil, budget.Config{}, err
	}
	if dirFlag != "" {
		cfg.PlanningDir = dirFlag
	}
	reg := budget.NewRegistry()
	if err := cfg.ApplyProfiles(reg); err != nil {
		return nil, budget.Config{}, err
	}
	return reg, cfg, nil
}

// runEstimate performs the full pipeline for one role: config, profile
// resolution, component estimation, validation.
func runEstimate(roleArg string) (budget.Estimate, []budget.Component, error) {
	role := budget.Role(roleArg)
	if !role.Valid() {
		return budget.Estimate{}, nil, fmt.Errorf("unknown role %q (want executor or planner)", roleArg)
	}

	reg, cfg, err := loadSetup()
	if err != nil {
		return budget.Estimate{}, nil, err
	}

	profile, err := resolveProfile(reg, cfg)
	if err != nil {
		return budget.Estimate{}, nil, err
	}

	comps := cfg.ComponentsFor(role)
	calc := budget.NewCalculator(budget.NewEstimator(cfg.Estimator.CharsPerToken))
	est := calc.Calculate(role, profile, comps)
	est = budget.Validate(est, profile)
	return est, comps, nil
}

// resolveProfile picks the active profile: the explicit override when
// given (flag beats config, unknown names are fatal), otherwise
// auto-detection from the model identifier, which always lands on a
// registered profile.
func resolveProfile(reg *budget.Registry, cfg budget.Config) (budget.Profile, error) {
	name := profileFlag
	if name == "" {
		name = cfg.Profile
	}
	if name != "" {
		return reg.Resolve(name)
	}

	model := modelFlag
	if model == "" {
		model = cfg.Model
	}
	detected := budget.DetectProfile(model)
	if verboseFlag {
		fmt.Fprintf(os.Stderr, "satchel: detected profile %s for model %q\n", detected, model)
	}
	return reg.Resolve(detected)
}

func writeJSON(w io.Writer, est budget.Estimate) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(est)
}
