// Package helper provides testing utilities for configuration rules.
// Use TestRunner to test rules without a host.
//
// Example:
//
//	func TestMyRule(t *testing.T) {
//	    runner := helper.TestRunner(t, `{"parser": "@typescript-eslint/parser"}`)
//
//	    rule := &MyRule{}
//	    if err := rule.Check(runner); err != nil {
//	        t.Fatal(err)
//	    }
//
//	    helper.AssertIssues(t, helper.Issues{
//	        {Rule: rule, Message: "...", Path: "parser"},
//	    }, runner.Issues)
//	}
package helper

import (
	"testing"

	"github.com/jokarl/eslintrc-sdk/eslintrc"
	"github.com/jokarl/eslintrc-sdk/jsonext"
)

// Runner is a mock eslintrc.Runner for testing.
// Use TestRunner to create an instance.
type Runner struct {
	t      *testing.T
	config *eslintrc.Config
	// Issues contains all issues emitted during rule execution.
	Issues Issues
}

// Ensure Runner implements eslintrc.Runner.
var _ eslintrc.Runner = (*Runner)(nil)

// TestRunner creates a new Runner from a literal JSON record.
//
// Example:
//
//	runner := helper.TestRunner(t, `{
//	    "env": {"browser": true},
//	    "rules": {"no-undef": 2}
//	}`)
func TestRunner(t *testing.T, configJSON string) *Runner {
	t.Helper()

	cfg, err := eslintrc.ParseJSON([]byte(configJSON))
	if err != nil {
		t.Fatalf("failed to parse config: %s", err)
	}
	return TestRunnerFromConfig(t, cfg)
}

// TestRunnerFromConfig creates a new Runner from an in-memory record.
func TestRunnerFromConfig(t *testing.T, cfg *eslintrc.Config) *Runner {
	t.Helper()

	return &Runner{
		t:      t,
		config: cfg,
		Issues: make(Issues, 0),
	}
}

// Config returns the record under check.
func (r *Runner) Config() *eslintrc.Config {
	return r.config
}

// EmitIssue records an issue.
func (r *Runner) EmitIssue(rule eslintrc.Rule, message string, path string) error {
	r.Issues = append(r.Issues, Issue{
		Rule:    rule,
		Message: message,
		Path:    path,
	})
	return nil
}

// DecodeRuleConfig decodes the first option of the named rule's entry.
func (r *Runner) DecodeRuleConfig(ruleName string, target any) error {
	rc, ok := r.config.Rules[ruleName]
	if !ok || len(rc.Options) == 0 {
		return nil
	}
	return jsonext.DecodeOption(rc.Options, 0, target)
}
