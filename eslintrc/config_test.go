package eslintrc

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestRuleConfig_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name        string
		data        string
		want        *RuleConfig
		wantOptions int
		wantErr     bool
	}{
		{
			name: "bare integer severity",
			data: "2",
			want: NewRuleConfig(Error),
		},
		{
			name: "bare string severity",
			data: `"warn"`,
			want: NewRuleConfig(Warn),
		},
		{
			name: "tuple without options",
			data: "[2]",
			want: NewRuleConfig(Error),
		},
		{
			name: "tuple with option object",
			data: `[2, {"selector": "variable"}]`,
			want: NewRuleConfig(Error, map[string]any{"selector": "variable"}),
		},
		{
			name: "tuple with scalar option",
			data: `[2, "never"]`,
			want: NewRuleConfig(Error, "never"),
		},
		{
			name:    "empty tuple",
			data:    "[]",
			wantErr: true,
		},
		{
			name:    "object entry",
			data:    `{"severity": 2}`,
			wantErr: true,
		},
		{
			name:    "invalid severity in tuple",
			data:    `[7, "never"]`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rc RuleConfig
			err := json.Unmarshal([]byte(tt.data), &rc)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Unmarshal(%s) error = nil, want error", tt.data)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unmarshal(%s) error = %v", tt.data, err)
			}
			if rc.Severity != tt.want.Severity {
				t.Errorf("Severity = %v, want %v", rc.Severity, tt.want.Severity)
			}
			if !reflect.DeepEqual(normalizeOptions(rc.Options), normalizeOptions(tt.want.Options)) {
				t.Errorf("Options = %#v, want %#v", rc.Options, tt.want.Options)
			}
		})
	}
}

// normalizeOptions round-trips options through encoding/json so that
// json.Number and float64 representations of the same value compare equal.
func normalizeOptions(options []any) []any {
	if len(options) == 0 {
		return nil
	}
	data, err := json.Marshal(options)
	if err != nil {
		return options
	}
	var out []any
	if err := json.Unmarshal(data, &out); err != nil {
		return options
	}
	return out
}

func TestRuleConfig_MarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		rc   *RuleConfig
		want string
	}{
		{
			name: "severity only marshals bare",
			rc:   NewRuleConfig(Off),
			want: "0",
		},
		{
			name: "options marshal as tuple",
			rc:   NewRuleConfig(Error, "never"),
			want: `[2,"never"]`,
		},
		{
			name: "object option",
			rc:   NewRuleConfig(Error, map[string]any{"selector": "variable"}),
			want: `[2,{"selector":"variable"}]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.rc)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			if string(data) != tt.want {
				t.Errorf("Marshal() = %s, want %s", data, tt.want)
			}
		})
	}
}

func TestConfig_Setting(t *testing.T) {
	cfg := &Config{
		Settings: map[string]any{
			"react": map[string]any{
				"version": "18.2",
			},
		},
	}

	tests := []struct {
		name  string
		keys  []string
		want  any
		found bool
	}{
		{"top level", []string{"react"}, cfg.Settings["react"], true},
		{"nested", []string{"react", "version"}, "18.2", true},
		{"missing top level", []string{"vue"}, nil, false},
		{"missing nested", []string{"react", "pragma"}, nil, false},
		{"descend through scalar", []string{"react", "version", "major"}, nil, false},
		{"no keys", nil, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := cfg.Setting(tt.keys...)
			if found != tt.found {
				t.Fatalf("Setting(%v) found = %v, want %v", tt.keys, found, tt.found)
			}
			if found && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Setting(%v) = %#v, want %#v", tt.keys, got, tt.want)
			}
		})
	}
}

func TestConfig_ReactVersion(t *testing.T) {
	cfg := ReactTypeScriptProject(".")
	if got := cfg.ReactVersion(); got != "18.2" {
		t.Errorf("ReactVersion() = %q, want %q", got, "18.2")
	}

	empty := &Config{}
	if got := empty.ReactVersion(); got != "" {
		t.Errorf("ReactVersion() on empty record = %q, want empty", got)
	}
}

func TestConfig_Clone(t *testing.T) {
	cfg := ReactTypeScriptProject("/proj")
	dup := cfg.clone()

	dup.Root = false
	dup.Env["node"] = true
	dup.Extends[0] = "changed"
	dup.Rules["semi"] = NewRuleConfig(Error)
	dup.Rules[NamingConventionRule].Options[0].(map[string]any)["selector"] = "function"
	dup.ParserOptions.Project = "./other.json"
	dup.IgnorePatterns[0] = "changed"
	dup.Settings["react"].(map[string]any)["version"] = "17.0"

	if !cfg.Root {
		t.Error("clone mutation leaked into Root")
	}
	if cfg.Env["node"] {
		t.Error("clone mutation leaked into Env")
	}
	if cfg.Extends[0] == "changed" {
		t.Error("clone mutation leaked into Extends")
	}
	if _, ok := cfg.Rules["semi"]; ok {
		t.Error("clone mutation leaked into Rules")
	}
	opt := cfg.Rules[NamingConventionRule].Options[0].(map[string]any)
	if opt["selector"] != "variable" {
		t.Error("clone mutation leaked into rule options")
	}
	if cfg.ParserOptions.Project != "./tsconfig.json" {
		t.Error("clone mutation leaked into ParserOptions")
	}
	if cfg.IgnorePatterns[0] == "changed" {
		t.Error("clone mutation leaked into IgnorePatterns")
	}
	if cfg.ReactVersion() != "18.2" {
		t.Error("clone mutation leaked into Settings")
	}
}
