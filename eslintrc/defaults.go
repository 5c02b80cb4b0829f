package eslintrc

// ReactTypeScriptProject returns the canonical record for a React +
// TypeScript project: browser and es2021 environments, the react,
// standard-with-typescript and prettier presets in that order, the
// TypeScript parser with type information rooted at tsconfigRootDir,
// JSX-transform rules off, and variable naming constrained to camelCase,
// PascalCase, UPPER_CASE or snake_case.
//
// Pass the directory holding tsconfig.json; the loader fills the same
// field from the record's directory when loading from disk.
func ReactTypeScriptProject(tsconfigRootDir string) *Config {
	return &Config{
		Root: true,
		Env: map[string]bool{
			"browser": true,
			"es2021":  true,
		},
		Extends: []string{
			"plugin:react/recommended",
			"standard-with-typescript",
			"prettier",
		},
		Parser: "@typescript-eslint/parser",
		ParserOptions: &ParserOptions{
			TsconfigRootDir: tsconfigRootDir,
			Project:         "./tsconfig.json",
		},
		Plugins: []string{"react", "@typescript-eslint"},
		Rules: map[string]*RuleConfig{
			"react/jsx-uses-react":     NewRuleConfig(Off),
			"react/react-in-jsx-scope": NewRuleConfig(Off),
			NamingConventionRule: NewRuleConfig(Error, map[string]any{
				"selector": "variable",
				"format":   []any{"camelCase", "PascalCase", "UPPER_CASE", "snake_case"},
			}),
		},
		IgnorePatterns: []string{"src/api/client.ts"},
		Settings: map[string]any{
			"react": map[string]any{"version": "18.2"},
		},
	}
}
