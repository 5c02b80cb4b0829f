package plugin

import (
	"reflect"
	"testing"

	"github.com/jokarl/eslintrc-sdk/eslintrc"
)

func TestWireConfig_RoundTrip(t *testing.T) {
	cfg := eslintrc.ReactTypeScriptProject("/proj")

	w, err := toWireConfig(cfg)
	if err != nil {
		t.Fatalf("toWireConfig() error = %v", err)
	}
	got, err := fromWireConfig(w)
	if err != nil {
		t.Fatalf("fromWireConfig() error = %v", err)
	}

	if got.Root != cfg.Root {
		t.Errorf("Root = %v, want %v", got.Root, cfg.Root)
	}
	if !reflect.DeepEqual(got.Env, cfg.Env) {
		t.Errorf("Env = %v, want %v", got.Env, cfg.Env)
	}
	if !reflect.DeepEqual(got.Extends, cfg.Extends) {
		t.Errorf("Extends = %v, want %v", got.Extends, cfg.Extends)
	}
	if got.Parser != cfg.Parser {
		t.Errorf("Parser = %q, want %q", got.Parser, cfg.Parser)
	}
	if !reflect.DeepEqual(got.ParserOptions, cfg.ParserOptions) {
		t.Errorf("ParserOptions = %+v, want %+v", got.ParserOptions, cfg.ParserOptions)
	}
	if !reflect.DeepEqual(got.Plugins, cfg.Plugins) {
		t.Errorf("Plugins = %v, want %v", got.Plugins, cfg.Plugins)
	}
	if !reflect.DeepEqual(got.IgnorePatterns, cfg.IgnorePatterns) {
		t.Errorf("IgnorePatterns = %v, want %v", got.IgnorePatterns, cfg.IgnorePatterns)
	}

	if len(got.Rules) != len(cfg.Rules) {
		t.Fatalf("Rules = %d entries, want %d", len(got.Rules), len(cfg.Rules))
	}
	for name, rc := range cfg.Rules {
		grc, ok := got.Rules[name]
		if !ok {
			t.Errorf("Rules missing %q", name)
			continue
		}
		if grc.Severity != rc.Severity {
			t.Errorf("rule %q severity = %v, want %v", name, grc.Severity, rc.Severity)
		}
		if len(grc.Options) != len(rc.Options) {
			t.Errorf("rule %q options = %v, want %v", name, grc.Options, rc.Options)
		}
	}

	naming := got.Rules[eslintrc.NamingConventionRule]
	opt, ok := naming.Options[0].(map[string]any)
	if !ok {
		t.Fatalf("naming option type = %T, want map", naming.Options[0])
	}
	if opt["selector"] != "variable" {
		t.Errorf("naming selector = %v, want variable", opt["selector"])
	}

	if got.ReactVersion() != "18.2" {
		t.Errorf("ReactVersion() = %q, want 18.2", got.ReactVersion())
	}
}

func TestWireConfig_Nil(t *testing.T) {
	w, err := toWireConfig(nil)
	if err != nil {
		t.Fatalf("toWireConfig(nil) error = %v", err)
	}
	if w != nil {
		t.Errorf("toWireConfig(nil) = %v, want nil", w)
	}

	cfg, err := fromWireConfig(nil)
	if err != nil {
		t.Fatalf("fromWireConfig(nil) error = %v", err)
	}
	if cfg != nil {
		t.Errorf("fromWireConfig(nil) = %v, want nil", cfg)
	}
}

func TestWireConfig_EmptyRecord(t *testing.T) {
	w, err := toWireConfig(&eslintrc.Config{})
	if err != nil {
		t.Fatalf("toWireConfig() error = %v", err)
	}
	got, err := fromWireConfig(w)
	if err != nil {
		t.Fatalf("fromWireConfig() error = %v", err)
	}
	if got.ParserOptions != nil {
		t.Errorf("ParserOptions = %v, want nil for empty record", got.ParserOptions)
	}
	if got.Rules != nil {
		t.Errorf("Rules = %v, want nil for empty record", got.Rules)
	}
	if got.Settings != nil {
		t.Errorf("Settings = %v, want nil for empty record", got.Settings)
	}
}

func TestFromWireConfig_InvalidSeverity(t *testing.T) {
	w := &WireConfig{
		Rules: map[string]WireRuleConfig{
			"semi": {Severity: 9},
		},
	}
	if _, err := fromWireConfig(w); err == nil {
		t.Fatal("fromWireConfig() error = nil, want severity error")
	}
}
