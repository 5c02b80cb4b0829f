// Package react provides the built-in react rule set.
//
// The rule set registers the react/* rule names, offers the "recommended"
// preset resolvable as "plugin:react/recommended", and reads the
// settings.react.version metadata the record shares with it. The rules
// themselves run in the external engine; what lives here is everything a
// configuration record can reference.
package react

import (
	"fmt"
	"regexp"

	"github.com/jokarl/eslintrc-sdk/eslintrc"
)

func init() {
	eslintrc.RegisterRuleSet(NewRuleSet())
}

// versionPattern accepts the "major.minor" form used by
// settings.react.version (e.g. "18.2"), with an optional patch.
var versionPattern = regexp.MustCompile(`^\d+\.\d+(\.\d+)?$`)

// RuleSet is the react plugin rule set. It captures the configured
// framework version when the record is applied.
type RuleSet struct {
	eslintrc.BuiltinRuleSet

	// version is settings.react.version after ApplyGlobalConfig.
	version string
}

// NewRuleSet returns the react rule set with its rules and presets.
func NewRuleSet() *RuleSet {
	rules := []eslintrc.Rule{
		&sourceRule{name: "react/jsx-uses-react", severity: eslintrc.Error},
		&sourceRule{name: "react/react-in-jsx-scope", severity: eslintrc.Error},
		&sourceRule{name: "react/jsx-key", severity: eslintrc.Error},
		&sourceRule{name: "react/display-name", severity: eslintrc.Warn},
		&sourceRule{name: "react/no-deprecated", severity: eslintrc.Warn},
	}
	recommended := &eslintrc.Config{
		Plugins: []string{"react"},
		Rules: map[string]*eslintrc.RuleConfig{
			"react/jsx-uses-react":     eslintrc.NewRuleConfig(eslintrc.Error),
			"react/react-in-jsx-scope": eslintrc.NewRuleConfig(eslintrc.Error),
			"react/jsx-key":            eslintrc.NewRuleConfig(eslintrc.Error),
			"react/display-name":       eslintrc.NewRuleConfig(eslintrc.Error),
		},
	}
	return &RuleSet{
		BuiltinRuleSet: eslintrc.BuiltinRuleSet{
			Name:    "react",
			Version: "0.1.0",
			Rules:   rules,
			Presets: map[string]*eslintrc.Config{"recommended": recommended},
		},
	}
}

// ApplyGlobalConfig applies the record and captures settings.react.version.
// A version that is present but not of the major.minor form is rejected,
// since every rule consuming it would misbehave.
func (rs *RuleSet) ApplyGlobalConfig(config *eslintrc.Config) error {
	if err := rs.BuiltinRuleSet.ApplyGlobalConfig(config); err != nil {
		return err
	}
	if config == nil {
		return nil
	}
	version := config.ReactVersion()
	if version != "" && !versionPattern.MatchString(version) {
		return fmt.Errorf("settings.react.version %q is not a version", version)
	}
	rs.version = version
	return nil
}

// ConfiguredVersion returns settings.react.version from the applied
// record, or the empty string before ApplyGlobalConfig.
func (rs *RuleSet) ConfiguredVersion() string {
	return rs.version
}

// sourceRule is a rule evaluated by the external engine against source
// text. The SDK carries its name, default severity and documentation so
// records referencing it resolve and validate.
type sourceRule struct {
	eslintrc.DefaultRule
	name     string
	severity eslintrc.Severity
}

func (r *sourceRule) Name() string { return r.name }

func (r *sourceRule) DefaultSeverity() eslintrc.Severity { return r.severity }

func (r *sourceRule) Link() string {
	return "https://github.com/jsx-eslint/eslint-plugin-react/blob/master/docs/rules/" + r.name[len("react/"):] + ".md"
}

// Check is a no-op: source evaluation happens in the external engine.
func (r *sourceRule) Check(_ eslintrc.Runner) error { return nil }
