package rules

import (
	"fmt"

	"github.com/jokarl/eslintrc-sdk/eslintrc"
)

// KnownRules checks that every rules key is provided by an extended
// preset or a declared plugin.
type KnownRules struct {
	eslintrc.DefaultRule
}

func (r *KnownRules) Name() string { return "known-rules" }

func (r *KnownRules) Link() string { return docBase + "known-rules.md" }

func (r *KnownRules) Check(runner eslintrc.Runner) error {
	cfg := runner.Config()
	known := eslintrc.KnownRuleNames(cfg)
	for name := range cfg.Rules {
		if !known[name] {
			msg := fmt.Sprintf("rule %q is not provided by any extended preset or declared plugin", name)
			if err := runner.EmitIssue(r, msg, "rules."+name); err != nil {
				return err
			}
		}
	}
	return nil
}

// KnownEnvironments checks that every env key is a recognized
// environment identifier.
type KnownEnvironments struct {
	eslintrc.DefaultRule
}

func (r *KnownEnvironments) Name() string { return "known-environments" }

func (r *KnownEnvironments) Link() string { return docBase + "known-environments.md" }

func (r *KnownEnvironments) Check(runner eslintrc.Runner) error {
	cfg := runner.Config()
	for name := range cfg.Env {
		if !eslintrc.KnownEnvironment(name) {
			if err := runner.EmitIssue(r, fmt.Sprintf("unknown environment %q", name), "env."+name); err != nil {
				return err
			}
		}
	}
	return nil
}

// ValidIgnorePatterns checks that every ignore pattern compiles.
type ValidIgnorePatterns struct {
	eslintrc.DefaultRule
}

func (r *ValidIgnorePatterns) Name() string { return "valid-ignore-patterns" }

func (r *ValidIgnorePatterns) Link() string { return docBase + "valid-ignore-patterns.md" }

func (r *ValidIgnorePatterns) Check(runner eslintrc.Runner) error {
	cfg := runner.Config()
	for i, pattern := range cfg.IgnorePatterns {
		if _, err := eslintrc.NewIgnoreMatcher([]string{pattern}); err != nil {
			if emitErr := runner.EmitIssue(r, err.Error(), fmt.Sprintf("ignorePatterns[%d]", i)); emitErr != nil {
				return emitErr
			}
		}
	}
	return nil
}
