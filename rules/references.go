package rules

import (
	"fmt"

	"github.com/jokarl/eslintrc-sdk/eslintrc"
)

const docBase = "https://github.com/jokarl/eslintrc-sdk/blob/main/docs/rules/"

// ResolvableExtends checks that every extends entry names a registered
// preset, or a registered plugin offering the named preset.
type ResolvableExtends struct {
	eslintrc.DefaultRule
}

func (r *ResolvableExtends) Name() string { return "resolvable-extends" }

func (r *ResolvableExtends) Link() string { return docBase + "resolvable-extends.md" }

func (r *ResolvableExtends) Check(runner eslintrc.Runner) error {
	cfg := runner.Config()
	for i, entry := range cfg.Extends {
		path := fmt.Sprintf("extends[%d]", i)
		pluginName, presetName, isPlugin := eslintrc.SplitPluginPreset(entry)
		if isPlugin {
			rs, ok := eslintrc.LookupRuleSet(pluginName)
			if !ok {
				if err := runner.EmitIssue(r, fmt.Sprintf("plugin %q is not installed", pluginName), path); err != nil {
					return err
				}
				continue
			}
			if rs.Preset(presetName) == nil {
				if err := runner.EmitIssue(r, fmt.Sprintf("plugin %q has no preset %q", pluginName, presetName), path); err != nil {
					return err
				}
			}
			continue
		}
		if _, ok := eslintrc.LookupPreset(entry); !ok {
			if err := runner.EmitIssue(r, fmt.Sprintf("preset %q is not installed", entry), path); err != nil {
				return err
			}
		}
	}
	return nil
}

// ResolvableParser checks that the parser names an installed parser.
type ResolvableParser struct {
	eslintrc.DefaultRule
}

func (r *ResolvableParser) Name() string { return "resolvable-parser" }

func (r *ResolvableParser) Link() string { return docBase + "resolvable-parser.md" }

func (r *ResolvableParser) Check(runner eslintrc.Runner) error {
	cfg := runner.Config()
	if cfg.Parser != "" && !eslintrc.KnownParser(cfg.Parser) {
		return runner.EmitIssue(r, fmt.Sprintf("parser %q is not installed", cfg.Parser), "parser")
	}
	return nil
}

// ResolvablePlugins checks that every plugins entry names a registered
// rule set.
type ResolvablePlugins struct {
	eslintrc.DefaultRule
}

func (r *ResolvablePlugins) Name() string { return "resolvable-plugins" }

func (r *ResolvablePlugins) Link() string { return docBase + "resolvable-plugins.md" }

func (r *ResolvablePlugins) Check(runner eslintrc.Runner) error {
	cfg := runner.Config()
	for i, name := range cfg.Plugins {
		if _, ok := eslintrc.LookupRuleSet(name); !ok {
			if err := runner.EmitIssue(r, fmt.Sprintf("plugin %q is not installed", name), fmt.Sprintf("plugins[%d]", i)); err != nil {
				return err
			}
		}
	}
	return nil
}
