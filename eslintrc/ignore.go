package eslintrc

import (
	"fmt"
	"path"
	"strings"

	"github.com/gobwas/glob"
)

// IgnoreMatcher matches paths against a record's ignorePatterns.
//
// Patterns are slash-separated globs relative to the record's directory,
// with the ignore-file conventions: "**" crosses directories, a pattern
// without a slash matches the base name at any depth, a trailing slash
// matches everything under a directory, and a leading "!" re-includes
// paths matched by an earlier pattern. The last matching pattern wins.
type IgnoreMatcher struct {
	patterns []ignorePattern
}

type ignorePattern struct {
	raw     string
	negated bool
	// globs holds the compiled forms of the pattern; the pattern
	// matches when any of them does.
	globs []glob.Glob
}

// NewIgnoreMatcher compiles the patterns. A pattern that does not
// compile is a malformed record.
func NewIgnoreMatcher(patterns []string) (*IgnoreMatcher, error) {
	m := &IgnoreMatcher{patterns: make([]ignorePattern, 0, len(patterns))}
	for _, raw := range patterns {
		p := ignorePattern{raw: raw}
		spec := raw
		if strings.HasPrefix(spec, "!") {
			p.negated = true
			spec = spec[1:]
		}
		spec = strings.TrimPrefix(spec, "/")
		if spec == "" {
			return nil, fmt.Errorf("%w: empty ignore pattern %q", ErrMalformed, raw)
		}
		specs := []string{spec}
		switch {
		case strings.HasSuffix(spec, "/"):
			// Directory pattern: everything underneath.
			specs = []string{spec + "**"}
		case !strings.Contains(spec, "/"):
			// Bare name: match at any depth.
			specs = []string{spec, "**/" + spec}
		}
		for _, s := range specs {
			g, err := glob.Compile(s, '/')
			if err != nil {
				return nil, fmt.Errorf("%w: ignore pattern %q: %v", ErrMalformed, raw, err)
			}
			p.globs = append(p.globs, g)
		}
		m.patterns = append(m.patterns, p)
	}
	return m, nil
}

// Match reports whether the path is ignored. The path is interpreted
// relative to the record's directory; separators are normalized and a
// leading "./" is stripped before matching.
func (m *IgnoreMatcher) Match(p string) bool {
	candidate := normalizePath(p)
	if candidate == "" {
		return false
	}
	ignored := false
	for _, pattern := range m.patterns {
		for _, g := range pattern.globs {
			if g.Match(candidate) {
				ignored = !pattern.negated
				break
			}
		}
	}
	return ignored
}

// Patterns returns the raw patterns the matcher was built from.
func (m *IgnoreMatcher) Patterns() []string {
	out := make([]string, len(m.patterns))
	for i, p := range m.patterns {
		out[i] = p.raw
	}
	return out
}

func normalizePath(p string) string {
	candidate := strings.ReplaceAll(p, "\\", "/")
	candidate = strings.TrimPrefix(candidate, "./")
	candidate = path.Clean(candidate)
	if candidate == "." || candidate == "/" {
		return ""
	}
	return strings.TrimPrefix(candidate, "/")
}
