package eslintrc

import (
	"errors"
	"fmt"
	"sort"
)

// Load-failure categories. Every failure aborts the consuming run; there
// is no local recovery. Errors wrap these sentinels and carry the
// offending name, so callers can both classify and report.
var (
	// ErrMalformed reports a record with missing, mistyped or
	// unrecognized keys (e.g. an unknown environment identifier).
	ErrMalformed = errors.New("malformed configuration")
	// ErrUnresolvedReference reports an extends, parser or plugins entry
	// naming something unavailable.
	ErrUnresolvedReference = errors.New("unresolved reference")
	// ErrUnknownRule reports a rules key not provided by any extended
	// preset or declared plugin.
	ErrUnknownRule = errors.New("unknown rule")
)

// Resolved is the derived view of a record after preset expansion.
// It answers the questions a host asks of a configuration: the effective
// severity of a rule, whether a global name is declared, and whether a
// path is ignored. The underlying record stays untouched.
type Resolved struct {
	config  *Config
	merged  *Config
	globals map[string]bool
	ignore  *IgnoreMatcher
	known   map[string]bool
}

// Resolve expands the record's extends chain, validates every reference
// and returns the resolved view.
//
// Precedence, lowest to highest: earlier extends entries, later extends
// entries, the record's own rules. A preset's own extends chain expands
// before the preset itself applies.
func Resolve(cfg *Config) (*Resolved, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: nil record", ErrMalformed)
	}

	for name := range cfg.Env {
		if !KnownEnvironment(name) {
			return nil, fmt.Errorf("%w: unknown environment %q", ErrMalformed, name)
		}
	}

	merged, err := expandExtends(cfg, map[string]bool{})
	if err != nil {
		return nil, err
	}
	// Presets are expanded away; the merged view keeps the record's own
	// extends list for reporting.
	merged.Extends = append([]string(nil), cfg.Extends...)

	if merged.Parser != "" && !KnownParser(merged.Parser) {
		return nil, fmt.Errorf("%w: parser %q", ErrUnresolvedReference, merged.Parser)
	}

	known := make(map[string]bool)
	for _, pluginName := range merged.Plugins {
		rs, ok := LookupRuleSet(pluginName)
		if !ok {
			return nil, fmt.Errorf("%w: plugin %q", ErrUnresolvedReference, pluginName)
		}
		for _, ruleName := range rs.RuleNames() {
			known[ruleName] = true
		}
	}
	// Every rule a preset configures is by definition recognized.
	collectPresetRules(cfg, map[string]bool{}, known)

	for name := range cfg.Rules {
		if !known[name] {
			return nil, fmt.Errorf("%w: %q", ErrUnknownRule, name)
		}
	}

	ignore, err := NewIgnoreMatcher(merged.IgnorePatterns)
	if err != nil {
		return nil, err
	}

	globals := make(map[string]bool)
	for name, enabled := range merged.Env {
		if !enabled {
			continue
		}
		for _, g := range EnvironmentGlobals(name) {
			globals[g] = true
		}
	}

	return &Resolved{
		config:  cfg,
		merged:  merged,
		globals: globals,
		ignore:  ignore,
		known:   known,
	}, nil
}

// expandExtends folds the record's presets in order and overlays the
// record itself on top. The visiting set guards against extends cycles.
func expandExtends(cfg *Config, visiting map[string]bool) (*Config, error) {
	var base *Config
	for i, entry := range cfg.Extends {
		presetCfg, err := resolveExtendsEntry(entry, i)
		if err != nil {
			return nil, err
		}
		if visiting[entry] {
			return nil, fmt.Errorf("%w: extends cycle through %q", ErrMalformed, entry)
		}
		visiting[entry] = true
		expanded, err := expandExtends(presetCfg, visiting)
		delete(visiting, entry)
		if err != nil {
			return nil, err
		}
		base = mergeRecords(base, expanded)
	}
	return mergeRecords(base, cfg), nil
}

func resolveExtendsEntry(entry string, pos int) (*Config, error) {
	if pluginName, presetName, ok := SplitPluginPreset(entry); ok {
		rs, found := LookupRuleSet(pluginName)
		if !found {
			return nil, fmt.Errorf("%w: extends[%d] %q: plugin %q", ErrUnresolvedReference, pos, entry, pluginName)
		}
		presetCfg := rs.Preset(presetName)
		if presetCfg == nil {
			return nil, fmt.Errorf("%w: extends[%d] %q: plugin %q has no preset %q", ErrUnresolvedReference, pos, entry, pluginName, presetName)
		}
		return presetCfg, nil
	}
	preset, found := LookupPreset(entry)
	if !found {
		return nil, fmt.Errorf("%w: extends[%d] %q", ErrUnresolvedReference, pos, entry)
	}
	return preset.Config, nil
}

// collectPresetRules gathers every rule name configured anywhere in the
// record's extends chain into known. Resolution errors are ignored here:
// they were already surfaced by expandExtends.
func collectPresetRules(cfg *Config, visiting map[string]bool, known map[string]bool) {
	for i, entry := range cfg.Extends {
		if visiting[entry] {
			continue
		}
		presetCfg, err := resolveExtendsEntry(entry, i)
		if err != nil {
			continue
		}
		visiting[entry] = true
		collectPresetRules(presetCfg, visiting, known)
		delete(visiting, entry)
		for name := range presetCfg.Rules {
			known[name] = true
		}
		// A preset's plugins also make their rules recognized.
		for _, pluginName := range presetCfg.Plugins {
			if rs, ok := LookupRuleSet(pluginName); ok {
				for _, ruleName := range rs.RuleNames() {
					known[ruleName] = true
				}
			}
		}
	}
}

// KnownRuleNames returns every rule name recognized by the record's
// extends chain and declared plugins. Unresolvable entries are skipped
// rather than reported; use Resolve to surface them.
func KnownRuleNames(cfg *Config) map[string]bool {
	known := make(map[string]bool)
	collectPresetRules(cfg, map[string]bool{}, known)
	for _, pluginName := range cfg.Plugins {
		if rs, ok := LookupRuleSet(pluginName); ok {
			for _, name := range rs.RuleNames() {
				known[name] = true
			}
		}
	}
	return known
}

// Config returns the original record the view was resolved from.
func (r *Resolved) Config() *Config {
	return r.config
}

// Merged returns a copy of the record after preset expansion and local
// overrides.
func (r *Resolved) Merged() *Config {
	return r.merged.clone()
}

// EffectiveSeverity returns the severity of the named rule after preset
// precedence and local overrides. Unconfigured rules are Off.
func (r *Resolved) EffectiveSeverity(ruleName string) Severity {
	rc, ok := r.merged.Rules[ruleName]
	if !ok {
		return Off
	}
	return rc.Severity
}

// RuleConfig returns the effective entry for the named rule, or nil when
// the rule is unconfigured.
func (r *Resolved) RuleConfig(ruleName string) *RuleConfig {
	rc, ok := r.merged.Rules[ruleName]
	if !ok {
		return nil
	}
	return &RuleConfig{Severity: rc.Severity, Options: append([]any(nil), rc.Options...)}
}

// RuleEnabled reports whether the named rule has a severity other than
// Off. An off rule never produces a diagnostic.
func (r *Resolved) RuleEnabled(ruleName string) bool {
	return r.EffectiveSeverity(ruleName) != Off
}

// IsDefinedGlobal reports whether the name is declared by any enabled
// environment. A reference to an undeclared global is what the no-undef
// rule reports.
func (r *Resolved) IsDefinedGlobal(name string) bool {
	return r.globals[name]
}

// Ignored reports whether the path, relative to the record's directory,
// is excluded from all checks. An ignored file yields zero diagnostics
// regardless of content.
func (r *Resolved) Ignored(path string) bool {
	return r.ignore.Match(path)
}

// KnownRules returns the sorted names of every rule recognized by the
// extended presets and declared plugins.
func (r *Resolved) KnownRules() []string {
	names := make([]string, 0, len(r.known))
	for name := range r.known {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
