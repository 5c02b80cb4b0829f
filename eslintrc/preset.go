package eslintrc

import "strings"

// Preset is a named, pre-packaged bundle of rule configuration that a
// record can merge in via its extends list. A preset carries the same
// shape as a record: rules, environments, a parser, plugins.
type Preset struct {
	// Name is the identifier used in extends.
	Name string
	// Config is the configuration the preset contributes.
	Config *Config
}

// pluginPresetPrefix marks extends entries resolved through a plugin,
// e.g. "plugin:react/recommended".
const pluginPresetPrefix = "plugin:"

// SplitPluginPreset splits a "plugin:<name>/<preset>" extends entry.
// The preset name is everything after the last slash, because plugin
// names may themselves contain slashes (e.g. "@typescript-eslint").
func SplitPluginPreset(entry string) (pluginName, presetName string, ok bool) {
	if !strings.HasPrefix(entry, pluginPresetPrefix) {
		return "", "", false
	}
	rest := strings.TrimPrefix(entry, pluginPresetPrefix)
	i := strings.LastIndex(rest, "/")
	if i <= 0 || i == len(rest)-1 {
		return "", "", false
	}
	return rest[:i], rest[i+1:], true
}

// mergeRecords layers override on top of base and returns a new record.
// Scalar fields take the override's value when set; env and settings
// merge key-wise; rules merge entry-wise with the override's entry
// replacing the base entry completely (severity and options together);
// plugins and ignore patterns are unioned in order.
func mergeRecords(base, override *Config) *Config {
	if base == nil {
		return override.clone()
	}
	out := base.clone()
	if override == nil {
		return out
	}

	if override.Root {
		out.Root = true
	}
	if override.Parser != "" {
		out.Parser = override.Parser
	}
	if override.ParserOptions != nil {
		po := *override.ParserOptions
		if out.ParserOptions != nil {
			if po.TsconfigRootDir == "" {
				po.TsconfigRootDir = out.ParserOptions.TsconfigRootDir
			}
			if po.Project == "" {
				po.Project = out.ParserOptions.Project
			}
		}
		out.ParserOptions = &po
	}
	if override.dir != "" {
		out.dir = override.dir
	}

	for name, enabled := range override.Env {
		if out.Env == nil {
			out.Env = make(map[string]bool)
		}
		out.Env[name] = enabled
	}

	for _, entry := range override.Extends {
		if !containsString(out.Extends, entry) {
			out.Extends = append(out.Extends, entry)
		}
	}

	for _, name := range override.Plugins {
		if !containsString(out.Plugins, name) {
			out.Plugins = append(out.Plugins, name)
		}
	}

	for name, rc := range override.Rules {
		if out.Rules == nil {
			out.Rules = make(map[string]*RuleConfig)
		}
		out.Rules[name] = &RuleConfig{
			Severity: rc.Severity,
			Options:  cloneOptions(rc.Options),
		}
	}

	for _, pattern := range override.IgnorePatterns {
		if !containsString(out.IgnorePatterns, pattern) {
			out.IgnorePatterns = append(out.IgnorePatterns, pattern)
		}
	}

	for key, value := range override.Settings {
		if out.Settings == nil {
			out.Settings = make(map[string]any)
		}
		out.Settings[key] = value
	}

	return out
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func init() {
	// eslint:recommended: the external tool's built-in baseline.
	RegisterPreset(&Preset{
		Name: "eslint:recommended",
		Config: &Config{
			Rules: map[string]*RuleConfig{
				"no-undef":       NewRuleConfig(Error),
				"no-unused-vars": NewRuleConfig(Error),
				"no-dupe-keys":   NewRuleConfig(Error),
				"no-unreachable": NewRuleConfig(Error),
			},
		},
	})

	// standard-with-typescript: the standard style on top of the
	// TypeScript parser. Stylistic severities here are the ones the
	// prettier preset exists to turn back off.
	RegisterPreset(&Preset{
		Name: "standard-with-typescript",
		Config: &Config{
			Env:     map[string]bool{"es2021": true},
			Extends: []string{"eslint:recommended"},
			Parser:  "@typescript-eslint/parser",
			Plugins: []string{"@typescript-eslint"},
			Rules: map[string]*RuleConfig{
				"semi":      NewRuleConfig(Error, "never"),
				"quotes":    NewRuleConfig(Error, "single"),
				"indent":    NewRuleConfig(Error, 2),
				"camelcase": NewRuleConfig(Off),
				// The TypeScript-aware replacements for core rules.
				"no-unused-vars":                    NewRuleConfig(Off),
				"@typescript-eslint/no-unused-vars": NewRuleConfig(Error),
				"@typescript-eslint/naming-convention": NewRuleConfig(Error,
					map[string]any{"selector": "variable", "format": []any{"camelCase"}}),
			},
		},
	})

	// prettier: disables everything a formatter owns.
	RegisterPreset(&Preset{
		Name: "prettier",
		Config: &Config{
			Rules: map[string]*RuleConfig{
				"semi":                     NewRuleConfig(Off),
				"quotes":                   NewRuleConfig(Off),
				"indent":                   NewRuleConfig(Off),
				"no-mixed-spaces-and-tabs": NewRuleConfig(Off),
				"comma-dangle":             NewRuleConfig(Off),
			},
		},
	})
}
