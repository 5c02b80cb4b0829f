package eslintrc

import (
	"errors"
	"testing"
)

func TestIgnoreMatcher_Match(t *testing.T) {
	tests := []struct {
		name     string
		patterns []string
		path     string
		want     bool
	}{
		{
			name:     "exact relative path",
			patterns: []string{"src/api/client.ts"},
			path:     "src/api/client.ts",
			want:     true,
		},
		{
			name:     "dot-slash prefix normalized",
			patterns: []string{"src/api/client.ts"},
			path:     "./src/api/client.ts",
			want:     true,
		},
		{
			name:     "backslash separators normalized",
			patterns: []string{"src/api/client.ts"},
			path:     `src\api\client.ts`,
			want:     true,
		},
		{
			name:     "leading slash in pattern stripped",
			patterns: []string{"/src/api/client.ts"},
			path:     "src/api/client.ts",
			want:     true,
		},
		{
			name:     "different file not matched",
			patterns: []string{"src/api/client.ts"},
			path:     "src/api/client.tsx",
			want:     false,
		},
		{
			name:     "sibling file not matched",
			patterns: []string{"src/api/client.ts"},
			path:     "src/api/server.ts",
			want:     false,
		},
		{
			name:     "directory pattern matches contents",
			patterns: []string{"dist/"},
			path:     "dist/bundle.js",
			want:     true,
		},
		{
			name:     "directory pattern matches nested contents",
			patterns: []string{"dist/"},
			path:     "dist/assets/app.js",
			want:     true,
		},
		{
			name:     "bare name matches at root",
			patterns: []string{"*.min.js"},
			path:     "app.min.js",
			want:     true,
		},
		{
			name:     "bare name matches in subdirectory",
			patterns: []string{"*.min.js"},
			path:     "dist/app.min.js",
			want:     true,
		},
		{
			name:     "single star does not cross separators",
			patterns: []string{"src/*.ts"},
			path:     "src/api/client.ts",
			want:     false,
		},
		{
			name:     "double star crosses separators",
			patterns: []string{"src/**/*.ts"},
			path:     "src/api/client.ts",
			want:     true,
		},
		{
			name:     "negation re-includes",
			patterns: []string{"src/**", "!src/keep.ts"},
			path:     "src/keep.ts",
			want:     false,
		},
		{
			name:     "negation leaves others ignored",
			patterns: []string{"src/**", "!src/keep.ts"},
			path:     "src/drop.ts",
			want:     true,
		},
		{
			name:     "last pattern wins",
			patterns: []string{"!src/file.ts", "src/file.ts"},
			path:     "src/file.ts",
			want:     true,
		},
		{
			name:     "no patterns",
			patterns: nil,
			path:     "src/api/client.ts",
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewIgnoreMatcher(tt.patterns)
			if err != nil {
				t.Fatalf("NewIgnoreMatcher(%v) error = %v", tt.patterns, err)
			}
			if got := m.Match(tt.path); got != tt.want {
				t.Errorf("Match(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestNewIgnoreMatcher_InvalidPattern(t *testing.T) {
	_, err := NewIgnoreMatcher([]string{"["})
	if err == nil {
		t.Fatal("NewIgnoreMatcher([) error = nil, want error")
	}
	if !errors.Is(err, ErrMalformed) {
		t.Errorf("error = %v, want ErrMalformed", err)
	}
}

func TestIgnoreMatcher_Patterns(t *testing.T) {
	patterns := []string{"dist/", "!dist/keep.js"}
	m, err := NewIgnoreMatcher(patterns)
	if err != nil {
		t.Fatalf("NewIgnoreMatcher() error = %v", err)
	}
	got := m.Patterns()
	if len(got) != len(patterns) {
		t.Fatalf("Patterns() = %v, want %v", got, patterns)
	}
	for i := range patterns {
		if got[i] != patterns[i] {
			t.Errorf("Patterns()[%d] = %q, want %q", i, got[i], patterns[i])
		}
	}
}
