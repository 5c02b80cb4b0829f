// Package rules provides the built-in configuration checks.
//
// Each rule covers one way a record can fail at load: a reference that
// does not resolve (extends, parser, plugins), a rules key nothing
// provides, an unrecognized environment, or an ignore pattern that does
// not compile. Hosts run them through a Runner before handing the record
// to the engine; every finding here would otherwise abort the lint run.
package rules

import "github.com/jokarl/eslintrc-sdk/eslintrc"

// All returns the built-in configuration rules.
func All() []eslintrc.Rule {
	return []eslintrc.Rule{
		&ResolvableExtends{},
		&ResolvableParser{},
		&ResolvablePlugins{},
		&KnownRules{},
		&KnownEnvironments{},
		&ValidIgnorePatterns{},
	}
}

// NewRuleSet returns the built-in rules bundled as a rule set, for hosts
// that drive checks through the RuleSet interface.
func NewRuleSet() *eslintrc.BuiltinRuleSet {
	return &eslintrc.BuiltinRuleSet{
		Name:    "eslintrc",
		Version: "0.1.0",
		Rules:   All(),
	}
}

// Check runs every built-in rule against the runner's record.
func Check(runner eslintrc.Runner) error {
	for _, rule := range All() {
		if err := rule.Check(runner); err != nil {
			return err
		}
	}
	return nil
}
