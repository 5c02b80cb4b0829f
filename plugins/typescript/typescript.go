// Package typescript provides the built-in @typescript-eslint rule set.
//
// The rule set registers the @typescript-eslint/* rule names, offers the
// "recommended" preset, and implements the configuration-side check of
// the naming-convention rule: its option objects are validated against
// the recognized selector formats when the record is checked.
package typescript

import (
	"fmt"

	"github.com/jokarl/eslintrc-sdk/eslintrc"
	"github.com/jokarl/eslintrc-sdk/jsonext"
)

func init() {
	eslintrc.RegisterRuleSet(NewRuleSet())
}

// NewRuleSet returns the @typescript-eslint rule set.
func NewRuleSet() *eslintrc.BuiltinRuleSet {
	rules := []eslintrc.Rule{
		&NamingConvention{},
		&sourceRule{name: "@typescript-eslint/no-unused-vars", severity: eslintrc.Error},
		&sourceRule{name: "@typescript-eslint/no-explicit-any", severity: eslintrc.Warn},
		&sourceRule{name: "@typescript-eslint/explicit-function-return-type", severity: eslintrc.Warn},
		&sourceRule{name: "@typescript-eslint/strict-boolean-expressions", severity: eslintrc.Error},
	}
	recommended := &eslintrc.Config{
		Plugins: []string{"@typescript-eslint"},
		Parser:  "@typescript-eslint/parser",
		Rules: map[string]*eslintrc.RuleConfig{
			"@typescript-eslint/no-unused-vars":  eslintrc.NewRuleConfig(eslintrc.Error),
			"@typescript-eslint/no-explicit-any": eslintrc.NewRuleConfig(eslintrc.Warn),
		},
	}
	return &eslintrc.BuiltinRuleSet{
		Name:    "@typescript-eslint",
		Version: "0.1.0",
		Rules:   rules,
		Presets: map[string]*eslintrc.Config{"recommended": recommended},
	}
}

// NamingConvention checks the naming-convention rule's own configuration:
// every option object must name a selector and recognized formats.
// Identifier matching itself is exposed through
// eslintrc.NamingConventionFor for hosts that need it.
type NamingConvention struct {
	eslintrc.DefaultRule
}

func (r *NamingConvention) Name() string { return eslintrc.NamingConventionRule }

func (r *NamingConvention) Link() string {
	return "https://typescript-eslint.io/rules/naming-convention"
}

func (r *NamingConvention) Check(runner eslintrc.Runner) error {
	cfg := runner.Config()
	rc, ok := cfg.Rules[eslintrc.NamingConventionRule]
	if !ok || rc.Severity == eslintrc.Off {
		return nil
	}
	for i := range rc.Options {
		var opt eslintrc.NamingConventionOption
		if err := jsonext.DecodeOption(rc.Options, i, &opt); err != nil {
			if emitErr := runner.EmitIssue(r, err.Error(), rulePath(i)); emitErr != nil {
				return emitErr
			}
			continue
		}
		if opt.Selector == "" {
			if err := runner.EmitIssue(r, "option without a selector", rulePath(i)); err != nil {
				return err
			}
			continue
		}
		for _, format := range opt.Format {
			if !eslintrc.KnownNamingFormat(format) {
				if err := runner.EmitIssue(r, "unknown naming format "+format, rulePath(i)); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// rulePath addresses one option of the rule's tuple entry; option i sits
// at tuple position i+1, after the severity.
func rulePath(option int) string {
	return fmt.Sprintf("rules.%s[%d]", eslintrc.NamingConventionRule, option+1)
}

// sourceRule is a rule evaluated by the external engine against source
// text; the SDK carries its metadata so records referencing it resolve.
type sourceRule struct {
	eslintrc.DefaultRule
	name     string
	severity eslintrc.Severity
}

func (r *sourceRule) Name() string { return r.name }

func (r *sourceRule) DefaultSeverity() eslintrc.Severity { return r.severity }

func (r *sourceRule) Link() string {
	return "https://typescript-eslint.io/rules/" + r.name[len("@typescript-eslint/"):]
}

func (r *sourceRule) Check(_ eslintrc.Runner) error { return nil }
