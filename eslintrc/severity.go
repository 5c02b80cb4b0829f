// Package eslintrc provides the configuration model for eslintrc-style linters.
//
// This package contains the typed configuration record, the loader, and the
// resolution semantics shared by hosts and plugins. The naming and structure
// follow the eslintrc configuration format so existing records load unchanged.
//
// Key types:
//   - Severity: Rule severity levels (Off, Warn, Error) with the 0/1/2 encoding
//   - Config: The immutable configuration record (env, extends, parser, rules, ...)
//   - RuleConfig: Per-rule severity plus rule-specific options
//   - Rule: Interface implemented for each configuration check
//   - Runner: Interface providing record access and issue emission
//   - RuleSet: Interface for plugin registration and rule enumeration
//   - BuiltinRuleSet: Embeddable struct providing default RuleSet implementations
package eslintrc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Severity represents the severity of a rule.
// Values use the eslintrc integer encoding: 0 is off, 1 is warn, 2 is error.
type Severity int

const (
	// Off disables the rule. An off rule never produces a diagnostic.
	Off Severity = iota
	// Warn reports findings without failing the run.
	Warn
	// Error reports findings and fails the run.
	Error
)

// String returns the string vocabulary form of the severity.
func (s Severity) String() string {
	switch s {
	case Off:
		return "off"
	case Warn:
		return "warn"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// IsValid reports whether the severity is one of Off, Warn or Error.
func (s Severity) IsValid() bool {
	return s >= Off && s <= Error
}

// ParseSeverity converts an eslintrc severity value to a Severity.
// Both encodings are accepted: the integers 0, 1, 2 and the strings
// "off", "warn", "error". Decoded numeric types (int, int64, float64)
// are all recognized because JSON and YAML decoders disagree on them.
func ParseSeverity(v any) (Severity, error) {
	switch t := v.(type) {
	case Severity:
		if !t.IsValid() {
			return Off, fmt.Errorf("severity out of range: %d", int(t))
		}
		return t, nil
	case int:
		return severityFromInt(int64(t))
	case int64:
		return severityFromInt(t)
	case float64:
		if t != float64(int64(t)) {
			return Off, fmt.Errorf("severity must be an integer, got %v", t)
		}
		return severityFromInt(int64(t))
	case string:
		switch t {
		case "off":
			return Off, nil
		case "warn":
			return Warn, nil
		case "error":
			return Error, nil
		}
		return Off, fmt.Errorf("unknown severity %q", t)
	case json.Number:
		n, err := t.Int64()
		if err != nil {
			return Off, fmt.Errorf("severity must be an integer, got %q", t.String())
		}
		return severityFromInt(n)
	default:
		return Off, fmt.Errorf("severity must be a number or string, got %T", v)
	}
}

func severityFromInt(n int64) (Severity, error) {
	if n < 0 || n > 2 {
		return Off, fmt.Errorf("severity out of range: %d", n)
	}
	return Severity(n), nil
}

// MarshalJSON encodes the severity in the integer form. The canonical
// record uses raw integers, so serialization preserves that encoding.
func (s Severity) MarshalJSON() ([]byte, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("cannot marshal severity %d", int(s))
	}
	return []byte(strconv.Itoa(int(s))), nil
}

// UnmarshalJSON decodes either encoding of a severity.
func (s *Severity) UnmarshalJSON(data []byte) error {
	var v any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return err
	}
	parsed, err := ParseSeverity(v)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
