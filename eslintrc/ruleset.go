package eslintrc

// BuiltinRuleSet provides default implementations for the RuleSet
// interface. Plugin authors embed this struct and override methods as
// needed.
//
// Example:
//
//	rs := &eslintrc.BuiltinRuleSet{
//	    Name:       "react",
//	    Version:    "0.1.0",
//	    Constraint: ">= 0.1.0",
//	    Rules:      []eslintrc.Rule{&JSXUsesReact{}},
//	    Presets:    map[string]*eslintrc.Config{"recommended": recommended},
//	}
type BuiltinRuleSet struct {
	// Name is the plugin name (e.g. "react").
	Name string
	// Version is the rule set version (e.g. "0.1.0").
	Version string
	// Constraint is the host version constraint (e.g. ">= 0.1.0").
	Constraint string
	// Rules is the list of rules in this rule set.
	Rules []Rule
	// Presets maps preset names to the configuration they contribute.
	Presets map[string]*Config
	// enabledRules tracks which rules are enabled after configuration.
	enabledRules map[string]bool
}

// RuleSetName returns the plugin name.
func (rs *BuiltinRuleSet) RuleSetName() string {
	return rs.Name
}

// RuleSetVersion returns the version of the rule set.
func (rs *BuiltinRuleSet) RuleSetVersion() string {
	return rs.Version
}

// RuleNames returns the names of all rules in this rule set.
func (rs *BuiltinRuleSet) RuleNames() []string {
	names := make([]string, len(rs.Rules))
	for i, rule := range rs.Rules {
		names[i] = rule.Name()
	}
	return names
}

// VersionConstraint returns the host version constraint.
func (rs *BuiltinRuleSet) VersionConstraint() string {
	if rs.Constraint == "" {
		return ">= 0.1.0"
	}
	return rs.Constraint
}

// PresetNames returns the names of the presets this rule set offers.
func (rs *BuiltinRuleSet) PresetNames() []string {
	names := make([]string, 0, len(rs.Presets))
	for name := range rs.Presets {
		names = append(names, name)
	}
	return names
}

// Preset returns the configuration contributed by the named preset.
func (rs *BuiltinRuleSet) Preset(name string) *Config {
	return rs.Presets[name]
}

// ApplyGlobalConfig applies the record to the rule set: a rule configured
// Off in the record is disabled, a rule configured Warn or Error is
// enabled, and unconfigured rules keep their defaults.
func (rs *BuiltinRuleSet) ApplyGlobalConfig(config *Config) error {
	rs.enabledRules = make(map[string]bool)

	for _, rule := range rs.Rules {
		rs.enabledRules[rule.Name()] = rule.Enabled()
	}

	if config == nil {
		return nil
	}

	for name, ruleConfig := range config.Rules {
		if _, ok := rs.enabledRules[name]; ok {
			rs.enabledRules[name] = ruleConfig.Severity != Off
		}
	}

	return nil
}

// NewRunner returns the runner unchanged by default.
// Override this method to wrap the runner with custom behavior.
func (rs *BuiltinRuleSet) NewRunner(runner Runner) (Runner, error) {
	return runner, nil
}

// BuiltinImpl returns the BuiltinRuleSet itself.
func (rs *BuiltinRuleSet) BuiltinImpl() *BuiltinRuleSet {
	return rs
}

// IsRuleEnabled returns whether a rule is enabled.
// Call this after ApplyGlobalConfig.
func (rs *BuiltinRuleSet) IsRuleEnabled(name string) bool {
	if rs.enabledRules == nil {
		// Not yet configured; use rule default
		for _, rule := range rs.Rules {
			if rule.Name() == name {
				return rule.Enabled()
			}
		}
		return false
	}
	return rs.enabledRules[name]
}

// GetRule returns a rule by name, or nil if not found.
func (rs *BuiltinRuleSet) GetRule(name string) Rule {
	for _, rule := range rs.Rules {
		if rule.Name() == name {
			return rule
		}
	}
	return nil
}

// EnabledRules returns all currently enabled rules.
func (rs *BuiltinRuleSet) EnabledRules() []Rule {
	var enabled []Rule
	for _, rule := range rs.Rules {
		if rs.IsRuleEnabled(rule.Name()) {
			enabled = append(enabled, rule)
		}
	}
	return enabled
}
