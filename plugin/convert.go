// Package plugin provides the entry point for external rule set plugins.
//
// This file contains conversion functions between the wire types carried
// over the plugin connection and the native eslintrc types. Rule options
// and settings are arbitrary decoded values, so they travel as JSON text
// rather than as typed fields.

package plugin

import (
	"encoding/json"
	"fmt"

	"github.com/jokarl/eslintrc-sdk/eslintrc"
)

// WireConfig is the gob-safe form of an eslintrc.Config.
type WireConfig struct {
	Root            bool
	Env             map[string]bool
	Extends         []string
	Parser          string
	TsconfigRootDir string
	Project         string
	Plugins         []string
	Rules           map[string]WireRuleConfig
	IgnorePatterns  []string
	SettingsJSON    []byte
}

// WireRuleConfig is the gob-safe form of an eslintrc.RuleConfig.
type WireRuleConfig struct {
	Severity    int
	OptionsJSON []byte
}

// toWireConfig converts an eslintrc.Config to its wire form.
func toWireConfig(cfg *eslintrc.Config) (*WireConfig, error) {
	if cfg == nil {
		return nil, nil
	}
	w := &WireConfig{
		Root:           cfg.Root,
		Env:            cfg.Env,
		Extends:        cfg.Extends,
		Parser:         cfg.Parser,
		Plugins:        cfg.Plugins,
		IgnorePatterns: cfg.IgnorePatterns,
	}
	if cfg.ParserOptions != nil {
		w.TsconfigRootDir = cfg.ParserOptions.TsconfigRootDir
		w.Project = cfg.ParserOptions.Project
	}
	if cfg.Rules != nil {
		w.Rules = make(map[string]WireRuleConfig, len(cfg.Rules))
		for name, rc := range cfg.Rules {
			wrc := WireRuleConfig{Severity: int(rc.Severity)}
			if len(rc.Options) > 0 {
				data, err := json.Marshal(rc.Options)
				if err != nil {
					return nil, fmt.Errorf("encoding options of rule %q: %w", name, err)
				}
				wrc.OptionsJSON = data
			}
			w.Rules[name] = wrc
		}
	}
	if cfg.Settings != nil {
		data, err := json.Marshal(cfg.Settings)
		if err != nil {
			return nil, fmt.Errorf("encoding settings: %w", err)
		}
		w.SettingsJSON = data
	}
	return w, nil
}

// fromWireConfig converts a wire form back to an eslintrc.Config.
func fromWireConfig(w *WireConfig) (*eslintrc.Config, error) {
	if w == nil {
		return nil, nil
	}
	cfg := &eslintrc.Config{
		Root:           w.Root,
		Env:            w.Env,
		Extends:        w.Extends,
		Parser:         w.Parser,
		Plugins:        w.Plugins,
		IgnorePatterns: w.IgnorePatterns,
	}
	if w.TsconfigRootDir != "" || w.Project != "" {
		cfg.ParserOptions = &eslintrc.ParserOptions{
			TsconfigRootDir: w.TsconfigRootDir,
			Project:         w.Project,
		}
	}
	if w.Rules != nil {
		cfg.Rules = make(map[string]*eslintrc.RuleConfig, len(w.Rules))
		for name, wrc := range w.Rules {
			severity, err := eslintrc.ParseSeverity(wrc.Severity)
			if err != nil {
				return nil, fmt.Errorf("rule %q: %w", name, err)
			}
			rc := &eslintrc.RuleConfig{Severity: severity}
			if len(wrc.OptionsJSON) > 0 {
				if err := json.Unmarshal(wrc.OptionsJSON, &rc.Options); err != nil {
					return nil, fmt.Errorf("decoding options of rule %q: %w", name, err)
				}
			}
			cfg.Rules[name] = rc
		}
	}
	if len(w.SettingsJSON) > 0 {
		if err := json.Unmarshal(w.SettingsJSON, &cfg.Settings); err != nil {
			return nil, fmt.Errorf("decoding settings: %w", err)
		}
	}
	return cfg, nil
}
