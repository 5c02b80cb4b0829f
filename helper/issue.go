package helper

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/jokarl/eslintrc-sdk/eslintrc"
)

// Issue represents a finding from a rule for test assertions.
type Issue struct {
	// Rule is the rule that emitted the issue.
	Rule eslintrc.Rule
	// Message is the issue message.
	Message string
	// Path is the record key the issue points at.
	Path string
}

// Issues is a slice of Issue for convenience.
type Issues []Issue

// AssertIssues compares expected and actual issues.
// It ignores issue order and compares rules by name only.
//
// Example:
//
//	helper.AssertIssues(t, helper.Issues{
//	    {Rule: rule, Message: `parser "x" is not installed`, Path: "parser"},
//	}, runner.Issues)
func AssertIssues(t *testing.T, want, got Issues) {
	t.Helper()

	opts := []cmp.Option{
		// Ignore issue order
		cmpopts.SortSlices(func(a, b Issue) bool {
			if a.Message != b.Message {
				return a.Message < b.Message
			}
			return a.Path < b.Path
		}),
		// Compare rules by name only
		cmp.Comparer(func(a, b eslintrc.Rule) bool {
			if a == nil && b == nil {
				return true
			}
			if a == nil || b == nil {
				return false
			}
			return a.Name() == b.Name()
		}),
	}

	if diff := cmp.Diff(want, got, opts...); diff != "" {
		t.Errorf("issues mismatch (-want +got):\n%s", diff)
	}
}

// AssertIssuesWithoutPath compares issues ignoring the Path field
// entirely. Use this when exact record locations are not important for
// the test.
func AssertIssuesWithoutPath(t *testing.T, want, got Issues) {
	t.Helper()

	opts := []cmp.Option{
		// Ignore Path field entirely
		cmpopts.IgnoreFields(Issue{}, "Path"),
		// Ignore issue order
		cmpopts.SortSlices(func(a, b Issue) bool {
			return a.Message < b.Message
		}),
		// Compare rules by name only
		cmp.Comparer(func(a, b eslintrc.Rule) bool {
			if a == nil && b == nil {
				return true
			}
			if a == nil || b == nil {
				return false
			}
			return a.Name() == b.Name()
		}),
	}

	if diff := cmp.Diff(want, got, opts...); diff != "" {
		t.Errorf("issues mismatch (-want +got):\n%s", diff)
	}
}

// AssertNoIssues verifies that no issues were emitted.
func AssertNoIssues(t *testing.T, got Issues) {
	t.Helper()
	if len(got) > 0 {
		t.Errorf("expected no issues, got %d:", len(got))
		for i, issue := range got {
			t.Errorf("  [%d] %s: %s", i, issue.Rule.Name(), issue.Message)
		}
	}
}
