package helper

import (
	"testing"

	"github.com/jokarl/eslintrc-sdk/eslintrc"
)

type testRule struct {
	eslintrc.DefaultRule
	name string
}

func (r *testRule) Name() string                  { return r.name }
func (r *testRule) Link() string                  { return "https://example.com/" + r.name }
func (r *testRule) Check(_ eslintrc.Runner) error { return nil }

func TestTestRunner(t *testing.T) {
	runner := TestRunner(t, `{
		"parser": "@typescript-eslint/parser",
		"rules": {"semi": [2, "never"]}
	}`)

	cfg := runner.Config()
	if cfg.Parser != "@typescript-eslint/parser" {
		t.Errorf("Parser = %q, want @typescript-eslint/parser", cfg.Parser)
	}
	if got := cfg.Rules["semi"].Severity; got != eslintrc.Error {
		t.Errorf("semi severity = %v, want Error", got)
	}
	if len(runner.Issues) != 0 {
		t.Errorf("new runner has %d issues, want none", len(runner.Issues))
	}
}

func TestRunner_EmitIssue(t *testing.T) {
	runner := TestRunner(t, `{}`)
	rule := &testRule{name: "test-rule"}

	if err := runner.EmitIssue(rule, "something is wrong", "parser"); err != nil {
		t.Fatalf("EmitIssue() error = %v", err)
	}
	if err := runner.EmitIssue(rule, "something else", "extends[0]"); err != nil {
		t.Fatalf("EmitIssue() error = %v", err)
	}

	if len(runner.Issues) != 2 {
		t.Fatalf("Issues = %d, want 2", len(runner.Issues))
	}
	if runner.Issues[0].Message != "something is wrong" || runner.Issues[0].Path != "parser" {
		t.Errorf("Issues[0] = %+v", runner.Issues[0])
	}
}

func TestRunner_DecodeRuleConfig(t *testing.T) {
	runner := TestRunner(t, `{
		"rules": {
			"@typescript-eslint/naming-convention": [2, {
				"selector": "variable",
				"format": ["camelCase", "PascalCase"]
			}],
			"no-undef": 2
		}
	}`)

	var opt struct {
		Selector string   `mapstructure:"selector"`
		Format   []string `mapstructure:"format"`
	}
	if err := runner.DecodeRuleConfig("@typescript-eslint/naming-convention", &opt); err != nil {
		t.Fatalf("DecodeRuleConfig() error = %v", err)
	}
	if opt.Selector != "variable" || len(opt.Format) != 2 {
		t.Errorf("decoded option = %+v", opt)
	}

	// Rules without options and unconfigured rules are no-ops.
	var empty struct{}
	if err := runner.DecodeRuleConfig("no-undef", &empty); err != nil {
		t.Errorf("DecodeRuleConfig(no-undef) error = %v", err)
	}
	if err := runner.DecodeRuleConfig("not-configured", &empty); err != nil {
		t.Errorf("DecodeRuleConfig(not-configured) error = %v", err)
	}
}

func TestAssertIssues(t *testing.T) {
	rule := &testRule{name: "test-rule"}
	issues := Issues{
		{Rule: rule, Message: "b", Path: "extends[1]"},
		{Rule: rule, Message: "a", Path: "extends[0]"},
	}

	// Order must not matter.
	AssertIssues(t, Issues{
		{Rule: rule, Message: "a", Path: "extends[0]"},
		{Rule: rule, Message: "b", Path: "extends[1]"},
	}, issues)
}

func TestAssertIssuesWithoutPath(t *testing.T) {
	rule := &testRule{name: "test-rule"}
	AssertIssuesWithoutPath(t, Issues{
		{Rule: rule, Message: "a"},
	}, Issues{
		{Rule: rule, Message: "a", Path: "rules.no-undef"},
	})
}

func TestAssertNoIssues(t *testing.T) {
	AssertNoIssues(t, Issues{})
	AssertNoIssues(t, nil)
}
