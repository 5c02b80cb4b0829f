package typescript_test

import (
	"strings"
	"testing"

	"github.com/jokarl/eslintrc-sdk/eslintrc"
	"github.com/jokarl/eslintrc-sdk/helper"
	"github.com/jokarl/eslintrc-sdk/plugins/typescript"
)

func TestNewRuleSet(t *testing.T) {
	rs := typescript.NewRuleSet()

	if rs.RuleSetName() != "@typescript-eslint" {
		t.Errorf("RuleSetName() = %q, want @typescript-eslint", rs.RuleSetName())
	}

	names := rs.RuleNames()
	found := false
	for _, name := range names {
		if name == eslintrc.NamingConventionRule {
			found = true
		}
	}
	if !found {
		t.Errorf("RuleNames() = %v, missing %q", names, eslintrc.NamingConventionRule)
	}
}

func TestRuleSet_RegisteredAtInit(t *testing.T) {
	if _, ok := eslintrc.LookupRuleSet("@typescript-eslint"); !ok {
		t.Fatal("rule set not registered under @typescript-eslint")
	}
}

func TestRuleSet_RecommendedPreset(t *testing.T) {
	rs := typescript.NewRuleSet()
	preset := rs.Preset("recommended")
	if preset == nil {
		t.Fatal("Preset(recommended) = nil")
	}
	if preset.Parser != "@typescript-eslint/parser" {
		t.Errorf("preset parser = %q, want @typescript-eslint/parser", preset.Parser)
	}
	if rc := preset.Rules["@typescript-eslint/no-unused-vars"]; rc == nil || rc.Severity != eslintrc.Error {
		t.Errorf("preset no-unused-vars = %v, want Error", rc)
	}
}

func TestNamingConvention_Check(t *testing.T) {
	rule := &typescript.NamingConvention{}

	tests := []struct {
		name     string
		config   string
		messages []string
	}{
		{
			name: "valid options",
			config: `{"rules": {"@typescript-eslint/naming-convention": [2, {
				"selector": "variable",
				"format": ["camelCase", "PascalCase", "UPPER_CASE", "snake_case"]
			}]}}`,
		},
		{
			name: "several valid options",
			config: `{"rules": {"@typescript-eslint/naming-convention": [2,
				{"selector": "variable", "format": ["camelCase"]},
				{"selector": "function", "format": ["PascalCase"]}
			]}}`,
		},
		{
			name:   "rule off is not checked",
			config: `{"rules": {"@typescript-eslint/naming-convention": [0, {"format": ["kebab-case"]}]}}`,
		},
		{
			name:   "rule unconfigured",
			config: `{}`,
		},
		{
			name: "unknown format",
			config: `{"rules": {"@typescript-eslint/naming-convention": [2, {
				"selector": "variable",
				"format": ["camelCase", "kebab-case"]
			}]}}`,
			messages: []string{"unknown naming format kebab-case"},
		},
		{
			name: "missing selector",
			config: `{"rules": {"@typescript-eslint/naming-convention": [2, {
				"format": ["camelCase"]
			}]}}`,
			messages: []string{"option without a selector"},
		},
		{
			name: "second option flagged at its position",
			config: `{"rules": {"@typescript-eslint/naming-convention": [2,
				{"selector": "variable", "format": ["camelCase"]},
				{"selector": "function", "format": ["shouting"]}
			]}}`,
			messages: []string{"unknown naming format shouting"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := helper.TestRunner(t, tt.config)
			if err := rule.Check(runner); err != nil {
				t.Fatalf("Check() error = %v", err)
			}
			if len(runner.Issues) != len(tt.messages) {
				t.Fatalf("issues = %d (%v), want %d", len(runner.Issues), runner.Issues, len(tt.messages))
			}
			for i, want := range tt.messages {
				if got := runner.Issues[i].Message; got != want {
					t.Errorf("issue[%d] message = %q, want %q", i, got, want)
				}
			}
		})
	}
}

func TestNamingConvention_IssuePath(t *testing.T) {
	rule := &typescript.NamingConvention{}
	runner := helper.TestRunner(t, `{"rules": {"@typescript-eslint/naming-convention": [2,
		{"selector": "variable", "format": ["camelCase"]},
		{"selector": "function", "format": ["shouting"]}
	]}}`)
	if err := rule.Check(runner); err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	if len(runner.Issues) != 1 {
		t.Fatalf("issues = %v, want one", runner.Issues)
	}
	// The second option sits at tuple position 2, after the severity.
	if got := runner.Issues[0].Path; !strings.HasSuffix(got, "[2]") {
		t.Errorf("issue path = %q, want tuple position 2", got)
	}
}
