package eslintrc

// DefaultRule provides default implementations for optional Rule interface
// methods. Rule authors can embed this struct to get sensible defaults for
// Enabled() and DefaultSeverity().
//
// Example:
//
//	type MyRule struct {
//	    eslintrc.DefaultRule
//	}
//
//	func (r *MyRule) Name() string { return "myplugin/my-rule" }
//	func (r *MyRule) Link() string { return "https://example.com/my-rule" }
//	func (r *MyRule) Check(runner eslintrc.Runner) error { ... }
//
// With DefaultRule embedded, MyRule automatically gets:
//   - Enabled() returning true (rules are enabled by default)
//   - DefaultSeverity() returning Error (the default severity)
//
// Override these methods if your rule needs different defaults:
//
//	func (r *MyRule) DefaultSeverity() eslintrc.Severity {
//	    return eslintrc.Warn
//	}
type DefaultRule struct{}

// Enabled returns true, indicating rules are enabled by default.
// Override this method to disable a rule by default.
func (r DefaultRule) Enabled() bool {
	return true
}

// DefaultSeverity returns Error, the default severity for rules.
// Override this method to specify a different default severity.
func (r DefaultRule) DefaultSeverity() Severity {
	return Error
}
