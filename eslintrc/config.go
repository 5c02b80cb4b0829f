package eslintrc

import (
	"bytes"
	"encoding/json"

	"github.com/jokarl/eslintrc-sdk/jsonext"
)

// Config represents an eslintrc configuration record.
//
// The record is immutable after loading: hosts read it, Resolve produces a
// derived view, and nothing mutates a loaded Config. Field names follow the
// eslintrc key vocabulary so existing records load unchanged.
type Config struct {
	// Root stops the upward search for further configuration files.
	// A record with Root set is the last one considered in a cascade.
	Root bool `koanf:"root" json:"root,omitempty"`
	// Env declares named environments whose globals are assumed available
	// (e.g. "browser", "es2021"). Keys must be recognized environments.
	Env map[string]bool `koanf:"env" json:"env,omitempty"`
	// Extends lists preset names applied in order.
	// Later entries override earlier ones on conflicting rules.
	Extends []string `koanf:"extends" json:"extends,omitempty"`
	// Parser names the syntax parser to use.
	Parser string `koanf:"parser" json:"parser,omitempty"`
	// ParserOptions configures the parser.
	ParserOptions *ParserOptions `koanf:"parserOptions" json:"parserOptions,omitempty"`
	// Plugins lists plugins contributing additional rules.
	Plugins []string `koanf:"plugins" json:"plugins,omitempty"`
	// Rules maps rule names to per-rule overrides. Rule names must be
	// provided by an extended preset or a declared plugin.
	Rules map[string]*RuleConfig `koanf:"rules" json:"rules,omitempty"`
	// IgnorePatterns lists path globs excluded from all checks,
	// relative to the directory of this record.
	IgnorePatterns []string `koanf:"ignorePatterns" json:"ignorePatterns,omitempty"`
	// Settings carries shared metadata consumed by plugins.
	Settings map[string]any `koanf:"settings" json:"settings,omitempty"`

	// dir is the directory the record was loaded from. Empty for records
	// constructed in memory. Ignore patterns resolve against it.
	dir string
}

// ParserOptions configures the configured parser.
type ParserOptions struct {
	// TsconfigRootDir is the root directory for type information.
	// The loader fills it with the record's directory when empty.
	TsconfigRootDir string `koanf:"tsconfigRootDir" json:"tsconfigRootDir,omitempty"`
	// Project is the path to the project descriptor, relative to
	// TsconfigRootDir.
	Project string `koanf:"project" json:"project,omitempty"`
}

// RuleConfig represents configuration for a single rule: a severity and
// optional rule-specific option values.
type RuleConfig struct {
	// Severity is the action taken when the rule matches.
	Severity Severity
	// Options are rule-specific option values, in order.
	Options []any
}

// NewRuleConfig returns a RuleConfig with the given severity and options.
func NewRuleConfig(severity Severity, options ...any) *RuleConfig {
	return &RuleConfig{Severity: severity, Options: options}
}

// MarshalJSON encodes the entry in its canonical eslintrc form: a bare
// integer severity when there are no options, otherwise a tuple of the
// severity followed by the options.
func (rc *RuleConfig) MarshalJSON() ([]byte, error) {
	if len(rc.Options) == 0 {
		return rc.Severity.MarshalJSON()
	}
	tuple := make([]any, 0, len(rc.Options)+1)
	tuple = append(tuple, rc.Severity)
	tuple = append(tuple, rc.Options...)
	return json.Marshal(tuple)
}

// UnmarshalJSON decodes any accepted rule entry encoding.
func (rc *RuleConfig) UnmarshalJSON(data []byte) error {
	var v any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return err
	}
	entry, err := jsonext.Normalize(v)
	if err != nil {
		return err
	}
	severity, err := ParseSeverity(entry.Severity)
	if err != nil {
		return err
	}
	rc.Severity = severity
	rc.Options = entry.Options
	return nil
}

// Dir returns the directory the record was loaded from, or the empty
// string for records constructed in memory.
func (c *Config) Dir() string {
	return c.dir
}

// Setting returns the settings value at the given key path.
//
// Example:
//
//	v, ok := cfg.Setting("react", "version")
func (c *Config) Setting(keys ...string) (any, bool) {
	var cur any = c.Settings
	for _, key := range keys {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = m[key]
		if !ok {
			return nil, false
		}
	}
	if len(keys) == 0 {
		return nil, false
	}
	return cur, true
}

// ReactVersion returns settings.react.version, the UI-framework version
// consumed by the react plugin. Empty when unset.
func (c *Config) ReactVersion() string {
	v, ok := c.Setting("react", "version")
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

// clone returns a deep copy of the record. Merging never mutates inputs.
func (c *Config) clone() *Config {
	out := &Config{
		Root:   c.Root,
		Parser: c.Parser,
		dir:    c.dir,
	}
	if c.Env != nil {
		out.Env = make(map[string]bool, len(c.Env))
		for k, v := range c.Env {
			out.Env[k] = v
		}
	}
	if c.Extends != nil {
		out.Extends = append([]string(nil), c.Extends...)
	}
	if c.ParserOptions != nil {
		po := *c.ParserOptions
		out.ParserOptions = &po
	}
	if c.Plugins != nil {
		out.Plugins = append([]string(nil), c.Plugins...)
	}
	if c.Rules != nil {
		out.Rules = make(map[string]*RuleConfig, len(c.Rules))
		for name, rc := range c.Rules {
			out.Rules[name] = &RuleConfig{
				Severity: rc.Severity,
				Options:  cloneOptions(rc.Options),
			}
		}
	}
	if c.IgnorePatterns != nil {
		out.IgnorePatterns = append([]string(nil), c.IgnorePatterns...)
	}
	if c.Settings != nil {
		out.Settings = cloneSettings(c.Settings)
	}
	return out
}

func cloneSettings(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneOptions(options []any) []any {
	if options == nil {
		return nil
	}
	out := make([]any, len(options))
	for i, v := range options {
		out[i] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return cloneSettings(t)
	case []any:
		return cloneOptions(t)
	default:
		return v
	}
}
