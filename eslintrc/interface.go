package eslintrc

// Rule is the interface implemented for each named check.
//
// Rules in this SDK check configuration records, not source text: the
// external lint engine owns source evaluation, and the record is the only
// artifact in scope here. Rule authors typically embed DefaultRule for the
// Enabled and DefaultSeverity defaults, then implement the rest.
//
// Example:
//
//	type ResolvableParser struct {
//	    eslintrc.DefaultRule
//	}
//
//	func (r *ResolvableParser) Name() string { return "resolvable-parser" }
//	func (r *ResolvableParser) Link() string { return "https://example.com/resolvable-parser" }
//	func (r *ResolvableParser) Check(runner eslintrc.Runner) error {
//	    cfg := runner.Config()
//	    if cfg.Parser != "" && !eslintrc.KnownParser(cfg.Parser) {
//	        return runner.EmitIssue(r, "unresolvable parser "+cfg.Parser, "parser")
//	    }
//	    return nil
//	}
type Rule interface {
	// Name returns the unique name of the rule.
	// Plugin rules are prefixed with the plugin name
	// (e.g. "react/jsx-uses-react").
	Name() string

	// Enabled returns whether the rule is enabled by default.
	// Most rules return true; embed DefaultRule for this behavior.
	Enabled() bool

	// DefaultSeverity returns the severity applied when the record does
	// not configure the rule. Embed DefaultRule for the Error default.
	DefaultSeverity() Severity

	// Link returns a URL to documentation about the rule.
	Link() string

	// Check executes the rule against the record accessible via runner.
	// Call runner.EmitIssue() for each finding.
	// Return an error only for unexpected failures, not for findings.
	Check(runner Runner) error
}

// Runner provides access to the configuration record during rule execution.
type Runner interface {
	// Config returns the record under check.
	Config() *Config

	// EmitIssue reports a finding from the rule. The path identifies the
	// offending record key, dot-separated (e.g. "rules.no-undef" or
	// "extends[1]").
	EmitIssue(rule Rule, message string, path string) error

	// DecodeRuleConfig decodes the first option of the named rule's entry
	// in the record into target, a pointer to a struct with mapstructure
	// tags. It is a no-op when the record does not configure the rule or
	// the entry carries no options.
	DecodeRuleConfig(ruleName string, target any) error
}

// RuleSet is implemented by plugins to provide a collection of rules and
// presets. Plugins typically embed BuiltinRuleSet and override methods as
// needed.
//
// Example:
//
//	func main() {
//	    plugin.Serve(&plugin.ServeOpts{
//	        RuleSet: &eslintrc.BuiltinRuleSet{
//	            Name:    "react",
//	            Version: "0.1.0",
//	            Rules:   rules.Rules,
//	        },
//	    })
//	}
type RuleSet interface {
	// RuleSetName returns the plugin name used in the record's plugins
	// list (e.g. "react" or "@typescript-eslint").
	RuleSetName() string

	// RuleSetVersion returns the version of the rule set.
	RuleSetVersion() string

	// RuleNames returns the names of all rules this rule set provides.
	RuleNames() []string

	// VersionConstraint returns the host version constraint
	// (e.g. ">= 0.1.0").
	VersionConstraint() string

	// PresetNames returns the names of the presets this rule set offers
	// through "plugin:<name>/<preset>" extends entries.
	PresetNames() []string

	// Preset returns the configuration contributed by the named preset,
	// or nil when the rule set does not offer it.
	Preset(name string) *Config

	// ApplyGlobalConfig applies the resolved record to the rule set,
	// deciding which rules are enabled. Called once per load.
	ApplyGlobalConfig(*Config) error

	// NewRunner optionally wraps the runner with custom behavior.
	// Return the runner unchanged if no customization is needed.
	NewRunner(Runner) (Runner, error)

	// BuiltinImpl returns the embedded BuiltinRuleSet.
	// Used internally for rule iteration.
	BuiltinImpl() *BuiltinRuleSet
}
