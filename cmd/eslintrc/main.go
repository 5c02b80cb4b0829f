// Package main provides the eslintrc CLI for inspecting and validating
// configuration records.
package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jokarl/eslintrc-sdk/eslintrc"
	"github.com/jokarl/eslintrc-sdk/jsonext"
	_ "github.com/jokarl/eslintrc-sdk/plugins/react"      // register the react rule set
	_ "github.com/jokarl/eslintrc-sdk/plugins/typescript" // register the @typescript-eslint rule set
	"github.com/jokarl/eslintrc-sdk/rules"
)

var verbose bool

func main() {
	root := &cobra.Command{
		Use:           "eslintrc",
		Short:         "Inspect and validate eslintrc configuration records",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newValidateCommand())
	root.AddCommand(newPrintCommand())
	root.AddCommand(newRulesCommand())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newLogger() hclog.Logger {
	level := hclog.Warn
	if verbose {
		level = hclog.Debug
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "eslintrc",
		Level:  level,
		Output: os.Stderr,
	})
}

func startDir(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "."
}

func newValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [dir]",
		Short: "Load a record and report everything that would fail the lint run",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			cfg, err := eslintrc.Load(startDir(args))
			if err != nil {
				return err
			}
			logger.Debug("loaded record", "dir", cfg.Dir())

			runner := newRecorder(cfg)
			if err := rules.Check(runner); err != nil {
				return err
			}
			for _, issue := range runner.issues {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s (%s)\n", issue.path, issue.message, issue.rule)
			}
			if len(runner.issues) > 0 {
				return fmt.Errorf("%d configuration problem(s)", len(runner.issues))
			}

			if _, err := eslintrc.Resolve(cfg); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "configuration OK")
			return nil
		},
	}
}

func newPrintCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "print [dir]",
		Short: "Print the loaded record as canonical JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := eslintrc.Load(startDir(args))
			if err != nil {
				return err
			}
			data, err := eslintrc.Marshal(cfg)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}

func newRulesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rules [dir]",
		Short: "Print effective rule severities after preset expansion",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := eslintrc.Load(startDir(args))
			if err != nil {
				return err
			}
			resolved, err := eslintrc.Resolve(cfg)
			if err != nil {
				return err
			}
			merged := resolved.Merged()
			names := make([]string, 0, len(merged.Rules))
			for name := range merged.Rules {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				fmt.Fprintf(cmd.OutOrStdout(), "%-50s %s\n", name, resolved.EffectiveSeverity(name))
			}
			return nil
		},
	}
}

// recorder is the CLI's eslintrc.Runner: it collects findings instead of
// aborting on the first one, so validate can report them all.
type recorder struct {
	config *eslintrc.Config
	issues []recordedIssue
}

type recordedIssue struct {
	rule    string
	message string
	path    string
}

var _ eslintrc.Runner = (*recorder)(nil)

func newRecorder(cfg *eslintrc.Config) *recorder {
	return &recorder{config: cfg}
}

func (r *recorder) Config() *eslintrc.Config {
	return r.config
}

func (r *recorder) EmitIssue(rule eslintrc.Rule, message string, path string) error {
	r.issues = append(r.issues, recordedIssue{rule: rule.Name(), message: message, path: path})
	return nil
}

func (r *recorder) DecodeRuleConfig(ruleName string, target any) error {
	rc, ok := r.config.Rules[ruleName]
	if !ok || len(rc.Options) == 0 {
		return nil
	}
	return jsonext.DecodeOption(rc.Options, 0, target)
}
